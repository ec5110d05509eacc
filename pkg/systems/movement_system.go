package systems

import (
	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
)

// MovementSystem 积分重力和速度，并把实体限制在地面以上
//
// 实体底边（有碰撞盒时取碰撞盒底边，否则取位置）不会低于 floorY。
// 对玩家实体：落地时标记 Grounded；空中垂直速度转为向下时发送一次 FALL 消息。
type MovementSystem struct {
	ecs.SystemBase
	c         *ecs.Coordinator
	publisher *message.PlayerEventPublisher
	floorY    float64
}

// NewMovementSystem 创建移动系统
func NewMovementSystem(c *ecs.Coordinator, publisher *message.PlayerEventPublisher, floorY float64) *MovementSystem {
	return &MovementSystem{
		c:         c,
		publisher: publisher,
		floorY:    floorY,
	}
}

// Name 系统名称
func (s *MovementSystem) Name() string {
	return "movement"
}

// Requires 系统需要的组件
func (s *MovementSystem) Requires() []ecs.Component {
	return []ecs.Component{components.Position, components.Velocity, components.Gravity}
}

// Update 移动所有实体
func (s *MovementSystem) Update(deltaTime float64) {
	for _, e := range s.Entities() {
		// 消息处理函数可能已销毁该实体
		if !s.HasEntity(e) {
			continue
		}
		pos := ecs.GetComponent(s.c, components.Position, e)
		vel := ecs.GetComponent(s.c, components.Velocity, e)
		gravity := ecs.GetComponent(s.c, components.Gravity, e)

		vel.VY += gravity.Acceleration * deltaTime
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		landed := false
		if bottom := s.bottom(e, pos); bottom >= s.floorY && vel.VY >= 0 {
			pos.Y -= bottom - s.floorY
			vel.VY = 0
			landed = true
		}

		if ecs.HasComponent(s.c, components.Player, e) {
			s.updatePlayer(e, ecs.GetComponent(s.c, components.Player, e), vel, landed)
		}
	}
}

func (s *MovementSystem) bottom(e ecs.Entity, pos *components.PositionComponent) float64 {
	if !ecs.HasComponent(s.c, components.Collider, e) {
		return pos.Y
	}
	_, _, _, bottom := ecs.GetComponent(s.c, components.Collider, e).Bounds(pos.X, pos.Y)
	return bottom
}

func (s *MovementSystem) updatePlayer(e ecs.Entity, player *components.PlayerComponent, vel *components.VelocityComponent, landed bool) {
	if landed {
		player.Grounded = true
		player.Falling = false
		return
	}

	player.Grounded = false
	if vel.VY > 0 && !player.Falling {
		player.Falling = true
		player.Falls++
		s.publisher.NotifyFall(e)
	}
}
