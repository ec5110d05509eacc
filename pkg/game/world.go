package game

import (
	"github.com/rs/zerolog"

	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/config"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
	"github.com/finily1203/monkeybrother-sub001/pkg/systems"
)

// World 游戏世界
//
// 拥有协调器、消息发布者、所有系统、玩家实体和玩家监听器。
// 系统按 玩家控制 → 移动 → 碰撞 的顺序运行。
type World struct {
	coordinator *ecs.Coordinator
	publisher   *message.PlayerEventPublisher

	control   *systems.PlayerControlSystem
	movement  *systems.MovementSystem
	collision *systems.CollisionSystem

	player    ecs.Entity
	obstacles []ecs.Entity
	listener  *PlayerListener

	logger zerolog.Logger
}

// NewWorld 按配置创建游戏世界
// cfg 必须已通过 Validate
func NewWorld(cfg *config.GameConfig, logger zerolog.Logger) *World {
	w := &World{
		coordinator: ecs.NewCoordinator(
			ecs.WithMaxEntities(cfg.ECS.MaxEntities),
			ecs.WithLogger(logger),
		),
		publisher: message.NewPlayerEventPublisher(message.WithPublisherLogger(logger)),
		logger:    logger.With().Str("module", "world").Logger(),
	}

	components.RegisterAll(w.coordinator)

	w.control = systems.Install(w.coordinator, systems.NewPlayerControlSystem(w.coordinator, w.publisher))
	w.movement = systems.Install(w.coordinator, systems.NewMovementSystem(w.coordinator, w.publisher, cfg.Physics.FloorY))
	w.collision = systems.Install(w.coordinator, systems.NewCollisionSystem(w.coordinator, w.publisher))

	w.player = w.spawnPlayer(cfg)
	for _, o := range cfg.Obstacles {
		w.obstacles = append(w.obstacles, w.spawnObstacle(o))
	}

	w.listener = NewPlayerListener(w.player, logger)
	w.listener.Subscribe(w.publisher)

	w.logger.Info().
		Uint32("player_id", uint32(w.player)).
		Int("obstacles", len(w.obstacles)).
		Int("living_entities", w.coordinator.LivingCount()).
		Msg("world created")
	return w
}

func (w *World) spawnPlayer(cfg *config.GameConfig) ecs.Entity {
	c := w.coordinator
	e := c.CreateEntity()
	ecs.AddComponent(c, components.Position, e, components.PositionComponent{X: cfg.Player.StartX, Y: cfg.Player.StartY})
	ecs.AddComponent(c, components.Velocity, e, components.VelocityComponent{Speed: cfg.Player.MoveSpeed})
	ecs.AddComponent(c, components.Gravity, e, components.GravityComponent{Acceleration: cfg.Physics.Gravity})
	ecs.AddComponent(c, components.Collider, e, components.ColliderComponent{Width: cfg.Player.Width, Height: cfg.Player.Height})
	ecs.AddComponent(c, components.Player, e, components.PlayerComponent{})
	ecs.AddComponent(c, components.Jump, e, components.JumpComponent{Speed: cfg.Player.JumpSpeed})
	return e
}

func (w *World) spawnObstacle(o config.ObstacleConfig) ecs.Entity {
	c := w.coordinator
	e := c.CreateEntity()
	ecs.AddComponent(c, components.Position, e, components.PositionComponent{X: o.X, Y: o.Y})
	ecs.AddComponent(c, components.Collider, e, components.ColliderComponent{Width: o.Width, Height: o.Height})
	return e
}

// Update 运行一帧
func (w *World) Update(ctx *Context) {
	w.control.SetActions(ctx.Actions)
	w.coordinator.Update(ctx.DeltaTime)
}

// Close 取消玩家监听器的订阅
func (w *World) Close() {
	w.listener.Unsubscribe(w.publisher)
}

// Coordinator 返回 ECS 协调器
func (w *World) Coordinator() *ecs.Coordinator {
	return w.coordinator
}

// Publisher 返回消息发布者，可用于登记额外的观察者
func (w *World) Publisher() *message.PlayerEventPublisher {
	return w.publisher
}

// Player 返回玩家实体
func (w *World) Player() ecs.Entity {
	return w.player
}

// Obstacles 返回障碍物实体
func (w *World) Obstacles() []ecs.Entity {
	return w.obstacles
}

// PlayerPosition 返回玩家当前位置
func (w *World) PlayerPosition() components.PositionComponent {
	return *ecs.GetComponent(w.coordinator, components.Position, w.player)
}

// PlayerState 返回玩家当前状态
func (w *World) PlayerState() components.PlayerComponent {
	return *ecs.GetComponent(w.coordinator, components.Player, w.player)
}

// Stats 返回玩家事件计数
func (w *World) Stats() PlayerStats {
	return w.listener.Stats()
}
