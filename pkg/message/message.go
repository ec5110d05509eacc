// Package message 把系统产生的离散游戏事件（下落、跳跃、碰撞）发送给观察者
//
// PlayerEventPublisher 按消息类型保存已注册的观察者。分发是同步的：
// Dispatch 返回前，每个观察者的处理函数都按注册顺序执行完毕。
// 消息是临时值，不会被保存。
package message

// Kind 消息类型
type Kind int

const (
	KindNone Kind = iota
	KindFall
	KindJump
	KindCollision
)

// String 返回小写的类型名称
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFall:
		return "fall"
	case KindJump:
		return "jump"
	case KindCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Message 一个游戏事件
type Message interface {
	Kind() Kind
}

// Handler 处理其挂载类型的消息
type Handler interface {
	Handle(msg Message)
}

// HandlerFunc 把普通函数适配为 Handler
type HandlerFunc func(msg Message)

// Handle 调用 f(msg)
func (f HandlerFunc) Handle(msg Message) {
	f(msg)
}
