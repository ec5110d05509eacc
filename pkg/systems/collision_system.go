package systems

import (
	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
)

type contactKey struct {
	a, b ecs.Entity
}

// CollisionSystem 检测碰撞盒重叠的实体对
//
// 两个实体开始接触的那一帧发送一次 COLLISION 消息；保持接触期间不重复发送。
type CollisionSystem struct {
	ecs.SystemBase
	c         *ecs.Coordinator
	publisher *message.PlayerEventPublisher
	contacts  map[contactKey]struct{}
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(c *ecs.Coordinator, publisher *message.PlayerEventPublisher) *CollisionSystem {
	return &CollisionSystem{
		c:         c,
		publisher: publisher,
		contacts:  make(map[contactKey]struct{}),
	}
}

// Name 系统名称
func (s *CollisionSystem) Name() string {
	return "collision"
}

// Requires 系统需要的组件
func (s *CollisionSystem) Requires() []ecs.Component {
	return []ecs.Component{components.Position, components.Collider}
}

// Contacts 返回当前处于接触状态的实体对数量
func (s *CollisionSystem) Contacts() int {
	return len(s.contacts)
}

// Update 检测所有实体对
//
// 处理函数可能在分发时销毁实体，已不在系统中的实体直接跳过。
func (s *CollisionSystem) Update(deltaTime float64) {
	entities := s.Entities()
	current := make(map[contactKey]struct{}, len(s.contacts))

	for i, a := range entities {
		for _, b := range entities[i+1:] {
			if !s.HasEntity(a) {
				break
			}
			if !s.HasEntity(b) || !s.overlaps(a, b) {
				continue
			}
			key := contactKey{a: a, b: b}
			current[key] = struct{}{}
			if _, ok := s.contacts[key]; !ok {
				s.publisher.NotifyCollision(a, b)
			}
		}
	}

	// 本帧被销毁的实体不再保留接触记录
	for key := range current {
		if !s.HasEntity(key.a) || !s.HasEntity(key.b) {
			delete(current, key)
		}
	}
	s.contacts = current
}

// overlaps 检查两个实体的AABB（轴对齐边界框）是否重叠，边缘接触也算重叠
func (s *CollisionSystem) overlaps(a, b ecs.Entity) bool {
	pos1 := ecs.GetComponent(s.c, components.Position, a)
	col1 := ecs.GetComponent(s.c, components.Collider, a)
	pos2 := ecs.GetComponent(s.c, components.Position, b)
	col2 := ecs.GetComponent(s.c, components.Collider, b)

	left1, top1, right1, bottom1 := col1.Bounds(pos1.X, pos1.Y)
	left2, top2, right2, bottom2 := col2.Bounds(pos2.X, pos2.Y)

	// 任一轴上没有重叠，则没有碰撞
	return right1 >= left2 &&
		left1 <= right2 &&
		bottom1 >= top2 &&
		top1 <= bottom2
}
