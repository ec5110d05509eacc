package ecs

// SystemManager 保存每个系统的签名，并在实体签名变化时重新计算系统成员
type SystemManager struct {
	systems    []System // 注册顺序
	byName     map[string]int
	signatures []Signature
}

// NewSystemManager 创建空的 SystemManager
func NewSystemManager() *SystemManager {
	return &SystemManager{
		systems:    make([]System, 0, 8),
		byName:     make(map[string]int, 8),
		signatures: make([]Signature, 0, 8),
	}
}

// RegisterSystem 按名称注册系统，同名系统已注册时 panic
func (sm *SystemManager) RegisterSystem(s System) System {
	if _, ok := sm.byName[s.Name()]; ok {
		fatalf(ErrSystemRegistered, "cannot register system %s", s.Name())
	}
	sm.byName[s.Name()] = len(sm.systems)
	sm.systems = append(sm.systems, s)
	sm.signatures = append(sm.signatures, 0)
	return s
}

// SetSignature 设置系统需要的组件，系统未注册时 panic
func (sm *SystemManager) SetSignature(s System, sig Signature) {
	sm.signatures[sm.mustIndex(s)] = sig
}

// Signature 返回系统需要的组件，系统未注册时 panic
func (sm *SystemManager) Signature(s System) Signature {
	return sm.signatures[sm.mustIndex(s)]
}

// IsRegistered 检查同名系统是否已注册
func (sm *SystemManager) IsRegistered(s System) bool {
	_, ok := sm.byName[s.Name()]
	return ok
}

// EntitySignatureChanged 把实体加入签名被 sig 包含的系统，并从其余系统中移除
func (sm *SystemManager) EntitySignatureChanged(e Entity, sig Signature) {
	for i, s := range sm.systems {
		if sig.Contains(sm.signatures[i]) {
			s.base().entities.Insert(e)
		} else {
			s.base().entities.Erase(e)
		}
	}
}

// EntityDestroyed 从所有系统中移除实体
func (sm *SystemManager) EntityDestroyed(e Entity) {
	for _, s := range sm.systems {
		s.base().entities.Erase(e)
	}
}

// Systems 按注册顺序返回所有系统
func (sm *SystemManager) Systems() []System {
	out := make([]System, len(sm.systems))
	copy(out, sm.systems)
	return out
}

// Update 按注册顺序调用每个 Updater
func (sm *SystemManager) Update(deltaTime float64) {
	for _, s := range sm.systems {
		if u, ok := s.(Updater); ok {
			u.Update(deltaTime)
		}
	}
}

// SystemSignatureChanged 按新的系统签名重新计算 s 的成员
// each 遍历所有存活实体及其签名。
func (sm *SystemManager) SystemSignatureChanged(s System, each func(fn func(e Entity, sig Signature))) {
	sysSig := sm.Signature(s)
	set := &s.base().entities
	each(func(e Entity, sig Signature) {
		if sig.Contains(sysSig) {
			set.Insert(e)
		} else {
			set.Erase(e)
		}
	})
}

func (sm *SystemManager) mustIndex(s System) int {
	idx, ok := sm.byName[s.Name()]
	if !ok {
		fatalf(ErrSystemNotRegistered, "cannot use system %s", s.Name())
	}
	return idx
}
