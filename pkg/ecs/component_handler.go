package ecs

// componentStore ComponentHandler 去掉类型参数后的视图
// ComponentManager 通过它转发实体销毁，不需要知道 T。
type componentStore interface {
	EntityDestroyed(e Entity)
	Has(e Entity) bool
	Len() int
}

// ComponentHandler 用紧凑数组保存一种组件类型的所有值
//
// 删除时把最后一个值移入空位，数组中没有空洞，添加、删除和查询都是 O(1)。
type ComponentHandler[T any] struct {
	name          string
	data          []T
	entityToIndex map[Entity]int
	indexToEntity []Entity
}

// NewComponentHandler 创建空的存储，name 用于错误信息
func NewComponentHandler[T any](name string) *ComponentHandler[T] {
	return &ComponentHandler[T]{
		name:          name,
		data:          make([]T, 0, 16),
		entityToIndex: make(map[Entity]int, 16),
		indexToEntity: make([]Entity, 0, 16),
	}
}

// Add 为实体保存组件值，实体已有该类型组件时 panic
func (h *ComponentHandler[T]) Add(e Entity, value T) {
	if _, ok := h.entityToIndex[e]; ok {
		fatalf(ErrComponentExists, "cannot add %s to entity %d", h.name, e)
	}
	h.entityToIndex[e] = len(h.data)
	h.data = append(h.data, value)
	h.indexToEntity = append(h.indexToEntity, e)
}

// Remove 删除实体的组件值，实体没有该类型组件时 panic
func (h *ComponentHandler[T]) Remove(e Entity) {
	removed, ok := h.entityToIndex[e]
	if !ok {
		fatalf(ErrComponentMissing, "cannot remove %s from entity %d", h.name, e)
	}

	last := len(h.data) - 1
	if removed != last {
		moved := h.indexToEntity[last]
		h.data[removed] = h.data[last]
		h.indexToEntity[removed] = moved
		h.entityToIndex[moved] = removed
	}

	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	h.indexToEntity = h.indexToEntity[:last]
	delete(h.entityToIndex, e)
}

// Get 返回实体组件值的指针，实体没有该组件时 panic
// 指针在下一次 Add 或 Remove 之前有效。
func (h *ComponentHandler[T]) Get(e Entity) *T {
	idx, ok := h.entityToIndex[e]
	if !ok {
		fatalf(ErrComponentMissing, "cannot get %s of entity %d", h.name, e)
	}
	return &h.data[idx]
}

// Has 检查实体是否拥有该类型组件
func (h *ComponentHandler[T]) Has(e Entity) bool {
	_, ok := h.entityToIndex[e]
	return ok
}

// EntityDestroyed 删除实体的组件值（如果存在）
func (h *ComponentHandler[T]) EntityDestroyed(e Entity) {
	if _, ok := h.entityToIndex[e]; ok {
		h.Remove(e)
	}
}

// Len 返回保存的组件数量
func (h *ComponentHandler[T]) Len() int {
	return len(h.data)
}

// Each 按存储顺序对每个组件值调用 fn
// fn 中不能添加或删除该类型的组件。
func (h *ComponentHandler[T]) Each(fn func(e Entity, value *T)) {
	for i := range h.data {
		fn(h.indexToEntity[i], &h.data[i])
	}
}
