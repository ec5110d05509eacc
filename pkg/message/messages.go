package message

import "github.com/finily1203/monkeybrother-sub001/pkg/ecs"

// FallMessage 空中实体开始向下运动时发送
type FallMessage struct {
	Entity ecs.Entity
}

// Kind 返回 KindFall
func (FallMessage) Kind() Kind {
	return KindFall
}

// JumpMessage 实体起跳离开地面时发送
type JumpMessage struct {
	Entity ecs.Entity
}

// Kind 返回 KindJump
func (JumpMessage) Kind() Kind {
	return KindJump
}

// CollisionMessage 两个实体的碰撞盒重叠时发送
// Entity 总是两个ID中较小的一个。
type CollisionMessage struct {
	Entity ecs.Entity
	Other  ecs.Entity
}

// NewCollisionMessage 排列 a 和 b，保证 Entity < Other
func NewCollisionMessage(a, b ecs.Entity) CollisionMessage {
	if b < a {
		a, b = b, a
	}
	return CollisionMessage{Entity: a, Other: b}
}

// Kind 返回 KindCollision
func (CollisionMessage) Kind() Kind {
	return KindCollision
}

// Involves 检查 e 是否是碰撞的一方
func (m CollisionMessage) Involves(e ecs.Entity) bool {
	return m.Entity == e || m.Other == e
}

// Partner 返回与 e 碰撞的实体，e 不是碰撞方时返回 ecs.NoEntity
func (m CollisionMessage) Partner(e ecs.Entity) ecs.Entity {
	switch e {
	case m.Entity:
		return m.Other
	case m.Other:
		return m.Entity
	default:
		return ecs.NoEntity
	}
}
