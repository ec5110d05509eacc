package systems

import (
	"testing"

	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
)

const testDT = 1.0 / 60.0

// testEnv 测试用的协调器、发布者和消息记录
type testEnv struct {
	c         *ecs.Coordinator
	publisher *message.PlayerEventPublisher
	received  []message.Message
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		c:         ecs.NewCoordinator(),
		publisher: message.NewPlayerEventPublisher(),
	}
	components.RegisterAll(env.c)

	recorder := message.NewObserver("recorder")
	for _, kind := range []message.Kind{message.KindFall, message.KindJump, message.KindCollision} {
		recorder.AttachFunc(kind, func(msg message.Message) {
			env.received = append(env.received, msg)
		})
		env.publisher.Register(kind, recorder)
	}
	return env
}

// kinds 返回已收到消息的类型序列
func (env *testEnv) kinds() []message.Kind {
	out := make([]message.Kind, 0, len(env.received))
	for _, msg := range env.received {
		out = append(out, msg.Kind())
	}
	return out
}

// newPlayer 创建一个站在 floorY 上的玩家（碰撞盒 20x40）
func (env *testEnv) newPlayer(x, floorY float64) ecs.Entity {
	e := env.c.CreateEntity()
	ecs.AddComponent(env.c, components.Position, e, components.PositionComponent{X: x, Y: floorY - 20})
	ecs.AddComponent(env.c, components.Velocity, e, components.VelocityComponent{Speed: 120})
	ecs.AddComponent(env.c, components.Gravity, e, components.GravityComponent{Acceleration: 1200})
	ecs.AddComponent(env.c, components.Collider, e, components.ColliderComponent{Width: 20, Height: 40})
	ecs.AddComponent(env.c, components.Player, e, components.PlayerComponent{Grounded: true})
	ecs.AddComponent(env.c, components.Jump, e, components.JumpComponent{Speed: 600})
	return e
}

func (env *testEnv) newBox(x, y, w, h float64) ecs.Entity {
	e := env.c.CreateEntity()
	ecs.AddComponent(env.c, components.Position, e, components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(env.c, components.Collider, e, components.ColliderComponent{Width: w, Height: h})
	return e
}
