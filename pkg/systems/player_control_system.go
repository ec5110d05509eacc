package systems

import (
	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
	"github.com/finily1203/monkeybrother-sub001/pkg/utils"
)

// PlayerControlSystem 把玩家操作转换为速度
//
// 左右移动直接设置水平速度；站在地面上时按下跳跃会起跳并发送 JUMP 消息。
type PlayerControlSystem struct {
	ecs.SystemBase
	c         *ecs.Coordinator
	publisher *message.PlayerEventPublisher
	actions   utils.Actions
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(c *ecs.Coordinator, publisher *message.PlayerEventPublisher) *PlayerControlSystem {
	return &PlayerControlSystem{
		c:         c,
		publisher: publisher,
	}
}

// Name 系统名称
func (s *PlayerControlSystem) Name() string {
	return "player_control"
}

// Requires 系统需要的组件
func (s *PlayerControlSystem) Requires() []ecs.Component {
	return []ecs.Component{components.Player, components.Velocity, components.Jump}
}

// SetActions 设置本帧的玩家操作，在 Update 之前调用
func (s *PlayerControlSystem) SetActions(a utils.Actions) {
	s.actions = a
}

// Update 应用本帧操作
func (s *PlayerControlSystem) Update(deltaTime float64) {
	for _, e := range s.Entities() {
		// 消息处理函数可能已销毁该实体
		if !s.HasEntity(e) {
			continue
		}
		player := ecs.GetComponent(s.c, components.Player, e)
		vel := ecs.GetComponent(s.c, components.Velocity, e)
		jump := ecs.GetComponent(s.c, components.Jump, e)

		vel.VX = s.actions.Horizontal() * vel.Speed

		if !s.actions.Jump || !player.Grounded {
			continue
		}
		vel.VY = -jump.Speed
		player.Grounded = false
		player.Falling = false
		player.Jumps++
		s.publisher.NotifyJump(e)
	}
}
