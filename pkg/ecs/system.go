package ecs

import "slices"

// System 每帧运行的逻辑单元，处理签名包含系统签名的实体
// 具体系统嵌入 SystemBase，由 SystemManager 维护其中的实体集合。
type System interface {
	// Name 在同一个 Coordinator 中必须唯一
	Name() string
	base() *SystemBase
}

// Updater 需要每帧由 Coordinator.Update 调用的系统实现此接口
type Updater interface {
	Update(deltaTime float64)
}

// SystemBase 保存系统当前拥有的实体
type SystemBase struct {
	entities EntitySet
}

func (s *SystemBase) base() *SystemBase {
	return s
}

// Entities 按升序返回系统拥有的实体
func (s *SystemBase) Entities() []Entity {
	return s.entities.Sorted()
}

// HasEntity 检查实体是否属于该系统
func (s *SystemBase) HasEntity(e Entity) bool {
	return s.entities.Contains(e)
}

// EntityCount 返回系统拥有的实体数量
func (s *SystemBase) EntityCount() int {
	return s.entities.Len()
}

// EntitySet 无序实体集合，插入、删除和查询都是 O(1)
// 零值可直接使用。
type EntitySet struct {
	index map[Entity]int
	items []Entity
}

// Insert 添加实体，已存在时返回 false
func (s *EntitySet) Insert(e Entity) bool {
	if s.index == nil {
		s.index = make(map[Entity]int)
	}
	if _, ok := s.index[e]; ok {
		return false
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)
	return true
}

// Erase 删除实体，不存在时返回 false
func (s *EntitySet) Erase(e Entity) bool {
	idx, ok := s.index[e]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if idx != last {
		moved := s.items[last]
		s.items[idx] = moved
		s.index[moved] = idx
	}
	s.items = s.items[:last]
	delete(s.index, e)
	return true
}

// Contains 检查实体是否在集合中
func (s *EntitySet) Contains(e Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Len 返回集合大小
func (s *EntitySet) Len() int {
	return len(s.items)
}

// Sorted 返回按升序排列的副本
func (s *EntitySet) Sorted() []Entity {
	out := slices.Clone(s.items)
	slices.Sort(out)
	return out
}
