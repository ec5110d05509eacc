package game

import (
	"github.com/rs/zerolog"

	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/message"
)

// PlayerStats 玩家事件计数
type PlayerStats struct {
	Jumps      int
	Falls      int
	Collisions int
}

// PlayerListener 监听某个玩家实体的跳跃、下落和碰撞消息
//
// 监听器拥有自己的 Observer；Subscribe/Unsubscribe 只在发布者中登记或移除引用。
type PlayerListener struct {
	player   ecs.Entity
	observer *message.Observer
	stats    PlayerStats
	logger   zerolog.Logger
}

var listenedKinds = []message.Kind{message.KindJump, message.KindFall, message.KindCollision}

// NewPlayerListener 创建玩家监听器
func NewPlayerListener(player ecs.Entity, logger zerolog.Logger) *PlayerListener {
	l := &PlayerListener{
		player:   player,
		observer: message.NewObserver("player_listener"),
		logger:   logger.With().Str("module", "player").Uint32("entity_id", uint32(player)).Logger(),
	}
	return l
}

func (l *PlayerListener) attach() {
	l.observer.AttachFunc(message.KindJump, l.onJump)
	l.observer.AttachFunc(message.KindFall, l.onFall)
	l.observer.AttachFunc(message.KindCollision, l.onCollision)
}

// Subscribe 在 p 中登记所有监听的消息类型
func (l *PlayerListener) Subscribe(p *message.PlayerEventPublisher) {
	// Unsubscribe 会摘除处理函数，每次订阅时重新挂上
	l.attach()
	for _, kind := range listenedKinds {
		p.Register(kind, l.observer)
	}
}

// Unsubscribe 从 p 中移除所有登记
func (l *PlayerListener) Unsubscribe(p *message.PlayerEventPublisher) {
	for _, kind := range listenedKinds {
		p.Unregister(kind, l.observer)
	}
}

// Stats 返回累计的事件计数
func (l *PlayerListener) Stats() PlayerStats {
	return l.stats
}

func (l *PlayerListener) onJump(msg message.Message) {
	if m, ok := msg.(message.JumpMessage); !ok || m.Entity != l.player {
		return
	}
	l.stats.Jumps++
	l.logger.Debug().Int("jumps", l.stats.Jumps).Msg("player jumped")
}

func (l *PlayerListener) onFall(msg message.Message) {
	if m, ok := msg.(message.FallMessage); !ok || m.Entity != l.player {
		return
	}
	l.stats.Falls++
	l.logger.Debug().Int("falls", l.stats.Falls).Msg("player falling")
}

func (l *PlayerListener) onCollision(msg message.Message) {
	m, ok := msg.(message.CollisionMessage)
	if !ok || !m.Involves(l.player) {
		return
	}
	l.stats.Collisions++
	l.logger.Info().Uint32("other_id", uint32(m.Partner(l.player))).Msg("player collided")
}
