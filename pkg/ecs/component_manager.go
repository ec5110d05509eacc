package ecs

// Component 标识一种组件类型
// 唯一的实现是 *ComponentType[T]：每种类型用 NewComponentType 创建一次，使用前注册到 Coordinator。
type Component interface {
	Name() string
	newStore() componentStore
}

// ComponentType T 类型组件的注册键
//
//	var Position = ecs.NewComponentType[PositionComponent]("Position")
type ComponentType[T any] struct {
	name string
}

// NewComponentType 创建未注册的组件类型
func NewComponentType[T any](name string) *ComponentType[T] {
	return &ComponentType[T]{name: name}
}

// Name 返回创建时的名称
func (ct *ComponentType[T]) Name() string {
	return ct.name
}

func (ct *ComponentType[T]) newStore() componentStore {
	return NewComponentHandler[T](ct.name)
}

// ComponentMetadata 已注册组件类型的描述
type ComponentMetadata struct {
	ID   ComponentID
	Name string
}

// ComponentManager 为组件类型分配位索引，并为每种已注册类型持有一个 ComponentHandler
type ComponentManager struct {
	ids    map[Component]ComponentID
	stores []componentStore // 按 ComponentID 索引
	names  []string
}

// NewComponentManager 创建空的 ComponentManager
func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		ids:    make(map[Component]ComponentID, 16),
		stores: make([]componentStore, 0, 16),
		names:  make([]string, 0, 16),
	}
}

// RegisterType 为 ct 分配下一个位索引并创建存储
// 索引不会复用。ct 已注册或已注册 MaxComponents 种类型时 panic。
func (cm *ComponentManager) RegisterType(ct Component) ComponentID {
	if _, ok := cm.ids[ct]; ok {
		fatalf(ErrComponentRegistered, "cannot register %s", ct.Name())
	}
	if len(cm.stores) >= MaxComponents {
		fatalf(ErrTooManyComponents, "cannot register %s: limit is %d", ct.Name(), MaxComponents)
	}

	id := ComponentID(len(cm.stores))
	cm.ids[ct] = id
	cm.stores = append(cm.stores, ct.newStore())
	cm.names = append(cm.names, ct.Name())
	return id
}

// TypeID 返回 ct 的位索引，未注册时 panic
func (cm *ComponentManager) TypeID(ct Component) ComponentID {
	id, ok := cm.ids[ct]
	if !ok {
		fatalf(ErrComponentNotRegistered, "cannot look up %s", ct.Name())
	}
	return id
}

// IsRegistered 检查 ct 是否已注册
func (cm *ComponentManager) IsRegistered(ct Component) bool {
	_, ok := cm.ids[ct]
	return ok
}

// EntityDestroyed 从所有存储中删除实体的组件
func (cm *ComponentManager) EntityDestroyed(e Entity) {
	for _, store := range cm.stores {
		store.EntityDestroyed(e)
	}
}

// Registered 按ID顺序列出已注册的组件类型
func (cm *ComponentManager) Registered() []ComponentMetadata {
	out := make([]ComponentMetadata, len(cm.names))
	for i, name := range cm.names {
		out[i] = ComponentMetadata{ID: ComponentID(i), Name: name}
	}
	return out
}

// Handler 返回 ct 的存储，未注册时 panic
func Handler[T any](cm *ComponentManager, ct *ComponentType[T]) *ComponentHandler[T] {
	return cm.stores[cm.TypeID(ct)].(*ComponentHandler[T])
}
