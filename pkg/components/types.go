package components

import "github.com/finily1203/monkeybrother-sub001/pkg/ecs"

// Component type tokens. Each must be registered with a coordinator before use.
var (
	Position = ecs.NewComponentType[PositionComponent]("position")
	Velocity = ecs.NewComponentType[VelocityComponent]("velocity")
	Gravity  = ecs.NewComponentType[GravityComponent]("gravity")
	Collider = ecs.NewComponentType[ColliderComponent]("collider")
	Player   = ecs.NewComponentType[PlayerComponent]("player")
	Jump     = ecs.NewComponentType[JumpComponent]("jump")
)

// All lists every gameplay component token in registration order.
func All() []ecs.Component {
	return []ecs.Component{Position, Velocity, Gravity, Collider, Player, Jump}
}

// RegisterAll registers every gameplay component type with c.
func RegisterAll(c *ecs.Coordinator) {
	for _, ct := range All() {
		c.RegisterComponent(ct)
	}
}
