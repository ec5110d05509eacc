package message

import (
	"errors"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
)

// ErrNilObserver 注册了 nil 观察者
var ErrNilObserver = errors.New("observer is nil")

// PublisherOption 配置 PlayerEventPublisher
type PublisherOption func(*PlayerEventPublisher)

// WithPublisherLogger 设置日志：注册以 debug 级别输出，每次分发以 trace 级别输出
func WithPublisherLogger(logger zerolog.Logger) PublisherOption {
	return func(p *PlayerEventPublisher) {
		p.logger = logger
	}
}

// PlayerEventPublisher 把游戏消息分发给注册了该消息类型的观察者
//
// 同一个 (kind, observer) 可以重复注册，每次注册都会收到一次该类型的消息。
type PlayerEventPublisher struct {
	observers map[Kind][]*Observer
	logger    zerolog.Logger
}

// NewPlayerEventPublisher 创建没有注册的发布者
func NewPlayerEventPublisher(opts ...PublisherOption) *PlayerEventPublisher {
	p := &PlayerEventPublisher{
		observers: make(map[Kind][]*Observer, 4),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With().Str("module", "publisher").Logger()
	return p
}

// Register 为 o 订阅 kind 类型的消息，o 为 nil 时 panic
func (p *PlayerEventPublisher) Register(kind Kind, o *Observer) {
	if o == nil {
		panic(eris.Wrapf(ErrNilObserver, "cannot register for %s", kind))
	}
	p.observers[kind] = append(p.observers[kind], o)
	p.logger.Debug().Stringer("kind", kind).Str("observer", o.Name()).Msg("observer registered")
}

// Unregister 移除 o 对 kind 的一次注册，并移除 o 上 kind 的处理函数
// o 未注册 kind 时不做任何事。
func (p *PlayerEventPublisher) Unregister(kind Kind, o *Observer) {
	list := p.observers[kind]
	idx := slices.Index(list, o)
	if idx < 0 {
		return
	}

	// 创建新切片，进行中的 Dispatch 继续遍历原来的快照
	list = slices.Delete(slices.Clone(list), idx, idx+1)
	if len(list) == 0 {
		delete(p.observers, kind)
	} else {
		p.observers[kind] = list
	}
	o.Detach(kind)
	p.logger.Debug().Stringer("kind", kind).Str("observer", o.Name()).Msg("observer unregistered")
}

// Observers 返回 kind 的注册数量
func (p *PlayerEventPublisher) Observers(kind Kind) int {
	return len(p.observers[kind])
}

// Dispatch 按注册顺序把 msg 发送给注册了 msg.Kind() 的每个观察者
// 没有该类型处理函数的观察者会被跳过。处理函数中对注册的修改从下一次 Dispatch 生效。
func (p *PlayerEventPublisher) Dispatch(msg Message) {
	kind := msg.Kind()
	list := p.observers[kind]
	p.logger.Trace().Stringer("kind", kind).Int("observers", len(list)).Msg("dispatch")

	for _, o := range list {
		h, ok := o.Handler(kind)
		if !ok {
			continue
		}
		h.Handle(msg)
	}
}

// NotifyFall 为 e 分发 FallMessage
func (p *PlayerEventPublisher) NotifyFall(e ecs.Entity) {
	p.Dispatch(FallMessage{Entity: e})
}

// NotifyJump 为 e 分发 JumpMessage
func (p *PlayerEventPublisher) NotifyJump(e ecs.Entity) {
	p.Dispatch(JumpMessage{Entity: e})
}

// NotifyCollision 为 a 和 b 分发 CollisionMessage
func (p *PlayerEventPublisher) NotifyCollision(a, b ecs.Entity) {
	p.Dispatch(NewCollisionMessage(a, b))
}
