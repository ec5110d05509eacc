// Profiling:
// go build ./cmd/profile
// ./profile -mode mem
// go tool pprof -http=":8000" -nodefraction=0.001 ./profile mem.pprof

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
	"github.com/finily1203/monkeybrother-sub001/pkg/systems"
)

func main() {
	mode := flag.String("mode", "mem", "profile mode: mem or cpu")
	rounds := flag.Int("rounds", 50, "number of coordinators to build")
	iters := flag.Int("iters", 1000, "create/update/destroy cycles per coordinator")
	entities := flag.Int("entities", 1000, "entities created per cycle")
	flag.Parse()

	var p interface{ Stop() }
	switch *mode {
	case "mem":
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
	events := run(*rounds, *iters, *entities)
	p.Stop()

	fmt.Printf("dispatched %d messages\n", events)
}

// run churns entities through a coordinator with the gameplay systems installed
// and returns the number of messages dispatched.
func run(rounds, iters, numEntities int) int {
	events := 0
	for range rounds {
		c := ecs.NewCoordinator(ecs.WithMaxEntities(numEntities))
		components.RegisterAll(c)

		publisher := message.NewPlayerEventPublisher()
		counter := message.NewObserver("counter")
		count := func(message.Message) { events++ }
		for _, kind := range []message.Kind{message.KindFall, message.KindCollision} {
			counter.AttachFunc(kind, count)
			publisher.Register(kind, counter)
		}

		systems.Install(c, systems.NewMovementSystem(c, publisher, 1000))
		systems.Install(c, systems.NewCollisionSystem(c, publisher))

		batch := make([]ecs.Entity, 0, numEntities)
		for range iters {
			for i := range numEntities {
				e := c.CreateEntity()
				ecs.AddComponent(c, components.Position, e, components.PositionComponent{X: float64(i * 4)})
				ecs.AddComponent(c, components.Velocity, e, components.VelocityComponent{VX: 1})
				ecs.AddComponent(c, components.Gravity, e, components.GravityComponent{Acceleration: 100})
				if i%10 == 0 {
					ecs.AddComponent(c, components.Collider, e, components.ColliderComponent{Width: 8, Height: 8})
				}
				batch = append(batch, e)
			}
			c.Update(1.0 / 60.0)
			for _, e := range batch {
				c.DestroyEntity(e)
			}
			batch = batch[:0]
		}
	}
	return events
}
