package ecs

import (
	"github.com/rs/zerolog"
)

func componentsArray(metas []ComponentMetadata) *zerolog.Array {
	arr := zerolog.Arr()
	for _, meta := range metas {
		arr = arr.Dict(zerolog.Dict().
			Int("component_id", int(meta.ID)).
			Str("component_name", meta.Name))
	}
	return arr
}

// LogComponents 输出所有已注册的组件类型
func LogComponents(logger *zerolog.Logger, c *Coordinator, level zerolog.Level) {
	metas := c.components.Registered()
	logger.WithLevel(level).
		Int("total_components", len(metas)).
		Array("components", componentsArray(metas)).
		Send()
}

// LogSystems 输出所有系统及其签名和实体数量
func LogSystems(logger *zerolog.Logger, c *Coordinator, level zerolog.Level) {
	arr := zerolog.Arr()
	systems := c.systems.Systems()
	for _, s := range systems {
		arr = arr.Dict(zerolog.Dict().
			Str("system_name", s.Name()).
			Stringer("signature", c.systems.Signature(s)).
			Int("entities", s.base().EntityCount()))
	}
	logger.WithLevel(level).
		Int("total_systems", len(systems)).
		Array("systems", arr).
		Send()
}

// LogEntity 输出实体的组件和所属系统
// 实体已销毁时只输出一条 "alive": false 记录。
func LogEntity(logger *zerolog.Logger, c *Coordinator, level zerolog.Level, e Entity) {
	event := logger.WithLevel(level).Uint32("entity_id", uint32(e))
	if !c.entities.IsAlive(e) {
		event.Bool("alive", false).Send()
		return
	}

	sig := c.entities.Signature(e)
	registered := c.components.Registered()
	metas := make([]ComponentMetadata, 0, sig.Len())
	for _, id := range sig.IDs() {
		metas = append(metas, registered[id])
	}

	owners := zerolog.Arr()
	for _, s := range c.systems.Systems() {
		if s.base().HasEntity(e) {
			owners = owners.Str(s.Name())
		}
	}

	event.Bool("alive", true).
		Stringer("signature", sig).
		Array("components", componentsArray(metas)).
		Array("systems", owners).
		Send()
}

// LogCoordinator 输出组件和系统注册表以及存活实体数量
func LogCoordinator(logger *zerolog.Logger, c *Coordinator, level zerolog.Level) {
	logger.WithLevel(level).
		Int("living_entities", c.entities.LivingCount()).
		Int("max_entities", c.entities.Capacity()).
		Send()
	LogComponents(logger, c, level)
	LogSystems(logger, c, level)
}
