package ecs

import (
	"github.com/rs/zerolog"
)

// Option 配置 Coordinator
type Option func(*Coordinator)

// WithMaxEntities 设置允许同时存活的实体数量
func WithMaxEntities(n int) Option {
	return func(c *Coordinator) {
		c.maxEntities = n
	}
}

// WithLogger 设置输出注册事件的日志
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// Coordinator 组合实体、组件和系统管理器，游戏代码只需要和它交互
type Coordinator struct {
	entities   *EntityManager
	components *ComponentManager
	systems    *SystemManager

	maxEntities int
	logger      zerolog.Logger
}

// NewCoordinator 创建注册表为空的 Coordinator
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{
		maxEntities: DefaultMaxEntities,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With().Str("module", "ecs").Logger()
	c.entities = NewEntityManager(c.maxEntities)
	c.components = NewComponentManager()
	c.systems = NewSystemManager()
	return c
}

// CreateEntity 创建没有组件的实体
// 签名为空的系统立即拥有新实体。
func (c *Coordinator) CreateEntity() Entity {
	e := c.entities.CreateEntity()
	c.systems.EntitySignatureChanged(e, 0)
	return e
}

// DestroyEntity 释放实体，删除其所有组件并从所有系统中移除
func (c *Coordinator) DestroyEntity(e Entity) {
	c.entities.DestroyEntity(e)
	c.components.EntityDestroyed(e)
	c.systems.EntityDestroyed(e)
}

// IsAlive 检查实体是否存活
func (c *Coordinator) IsAlive(e Entity) bool {
	return c.entities.IsAlive(e)
}

// LivingCount 返回存活实体数量
func (c *Coordinator) LivingCount() int {
	return c.entities.LivingCount()
}

// EntitySignature 返回实体签名，实体未存活时 panic
func (c *Coordinator) EntitySignature(e Entity) Signature {
	return c.entities.Signature(e)
}

// RegisterComponent 注册组件类型并返回其位索引
func (c *Coordinator) RegisterComponent(ct Component) ComponentID {
	id := c.components.RegisterType(ct)
	c.logger.Debug().Str("component", ct.Name()).Int("component_id", int(id)).Msg("component registered")
	return id
}

// ComponentID 返回已注册组件类型的位索引
func (c *Coordinator) ComponentID(ct Component) ComponentID {
	return c.components.TypeID(ct)
}

// SignatureOf 构造包含给定组件类型的签名
func (c *Coordinator) SignatureOf(cts ...Component) Signature {
	var sig Signature
	for _, ct := range cts {
		sig = sig.Set(c.components.TypeID(ct))
	}
	return sig
}

// RegisterSystem 注册系统
// 调用 SetSystemSignature 之前系统签名为空，拥有所有存活实体。
func (c *Coordinator) RegisterSystem(s System) System {
	c.systems.RegisterSystem(s)
	c.systems.SystemSignatureChanged(s, c.entities.Each)
	c.logger.Debug().Str("system", s.Name()).Msg("system registered")
	return s
}

// SetSystemSignature 设置系统需要的组件
// 已存在的实体立即按新签名重新计算成员，系统可以在实体创建之后安装。
func (c *Coordinator) SetSystemSignature(s System, sig Signature) {
	c.systems.SetSignature(s, sig)
	c.systems.SystemSignatureChanged(s, c.entities.Each)
	c.logger.Debug().Str("system", s.Name()).Stringer("signature", sig).Msg("system signature set")
}

// SystemSignature 返回系统需要的组件
func (c *Coordinator) SystemSignature(s System) Signature {
	return c.systems.Signature(s)
}

// Systems 按注册顺序返回所有系统
func (c *Coordinator) Systems() []System {
	return c.systems.Systems()
}

// Components 按位索引返回已注册的组件类型
func (c *Coordinator) Components() []ComponentMetadata {
	return c.components.Registered()
}

// Update 运行一帧，调用每个实现了 Updater 的系统
func (c *Coordinator) Update(deltaTime float64) {
	c.systems.Update(deltaTime)
}

func (c *Coordinator) signatureChanged(e Entity, sig Signature) {
	c.entities.SetSignature(e, sig)
	c.systems.EntitySignatureChanged(e, sig)
}

// AddComponent 为实体添加组件并更新系统成员
// 实体未存活、组件类型未注册或实体已有该组件时 panic。
func AddComponent[T any](c *Coordinator, ct *ComponentType[T], e Entity, value T) {
	sig := c.entities.Signature(e)
	Handler(c.components, ct).Add(e, value)
	c.signatureChanged(e, sig.Set(c.components.TypeID(ct)))
}

// RemoveComponent 移除实体的组件并更新系统成员
// 实体未存活、组件类型未注册或实体没有该组件时 panic。
func RemoveComponent[T any](c *Coordinator, ct *ComponentType[T], e Entity) {
	sig := c.entities.Signature(e)
	Handler(c.components, ct).Remove(e)
	c.signatureChanged(e, sig.Unset(c.components.TypeID(ct)))
}

// GetComponent 返回实体组件的指针，实体没有该组件时 panic
// 指针在该类型组件下一次添加或删除之前有效。
func GetComponent[T any](c *Coordinator, ct *ComponentType[T], e Entity) *T {
	return Handler(c.components, ct).Get(e)
}

// HasComponent 检查实体是否拥有该组件
func HasComponent[T any](c *Coordinator, ct *ComponentType[T], e Entity) bool {
	return Handler(c.components, ct).Has(e)
}

// EachComponent 按存储顺序对该类型的每个组件调用 fn
func EachComponent[T any](c *Coordinator, ct *ComponentType[T], fn func(e Entity, value *T)) {
	Handler(c.components, ct).Each(fn)
}
