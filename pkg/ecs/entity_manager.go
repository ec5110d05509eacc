package ecs

import (
	"maps"
	"slices"
)

// Entity 是实体的唯一标识符
// 实体本身不携带数据，只在其 EntityManager 中存活期间有效。
type Entity uint32

// NoEntity 保留为无效ID，分配从1开始
const NoEntity Entity = 0

// DefaultMaxEntities 未配置时允许同时存活的实体数量
const DefaultMaxEntities = 5000

// EntityManager 分配和回收实体ID，并保存每个存活实体的签名
type EntityManager struct {
	maxEntities int
	nextID      Entity
	// 已销毁的ID，按销毁顺序重新分配
	free       []Entity
	signatures map[Entity]Signature
}

// NewEntityManager 创建最多同时存活 maxEntities 个实体的 EntityManager
// maxEntities 不大于0时使用 DefaultMaxEntities。
func NewEntityManager(maxEntities int) *EntityManager {
	if maxEntities <= 0 {
		maxEntities = DefaultMaxEntities
	}
	return &EntityManager{
		maxEntities: maxEntities,
		nextID:      1,
		free:        make([]Entity, 0),
		signatures:  make(map[Entity]Signature, 64),
	}
}

// CreateEntity 创建签名为空的新实体
// 优先复用 DestroyEntity 释放的ID。
func (em *EntityManager) CreateEntity() Entity {
	if len(em.signatures) >= em.maxEntities {
		fatalf(ErrTooManyEntities, "cannot create entity: %d of %d alive", len(em.signatures), em.maxEntities)
	}

	var id Entity
	if len(em.free) > 0 {
		id = em.free[0]
		em.free = em.free[1:]
	} else {
		id = em.nextID
		em.nextID++
	}
	em.signatures[id] = 0
	return id
}

// DestroyEntity 清除实体签名并回收其ID
func (em *EntityManager) DestroyEntity(id Entity) {
	em.mustBeAlive(id, "destroy")
	delete(em.signatures, id)
	em.free = append(em.free, id)
}

// Signature 返回实体当前的签名
func (em *EntityManager) Signature(id Entity) Signature {
	em.mustBeAlive(id, "read signature of")
	return em.signatures[id]
}

// SetSignature 替换实体的签名
func (em *EntityManager) SetSignature(id Entity, sig Signature) {
	em.mustBeAlive(id, "write signature of")
	em.signatures[id] = sig
}

// IsAlive 检查实体是否存活
func (em *EntityManager) IsAlive(id Entity) bool {
	_, ok := em.signatures[id]
	return ok
}

// LivingCount 返回存活实体数量
func (em *EntityManager) LivingCount() int {
	return len(em.signatures)
}

// Capacity 返回允许同时存活的实体数量
func (em *EntityManager) Capacity() int {
	return em.maxEntities
}

// Each 按ID升序对每个存活实体调用 fn
func (em *EntityManager) Each(fn func(e Entity, sig Signature)) {
	for _, e := range slices.Sorted(maps.Keys(em.signatures)) {
		fn(e, em.signatures[e])
	}
}

func (em *EntityManager) mustBeAlive(id Entity, op string) {
	if _, ok := em.signatures[id]; !ok {
		fatalf(ErrEntityNotAlive, "cannot %s entity %d", op, id)
	}
}
