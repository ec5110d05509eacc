package message

// Observer 每种消息类型最多挂载一个处理函数
//
// 观察者归创建者所有（通常是游戏世界），发布者只引用，不负责释放。
type Observer struct {
	name     string
	handlers map[Kind]Handler
}

// NewObserver 创建没有处理函数的观察者，name 用于日志
func NewObserver(name string) *Observer {
	return &Observer{
		name:     name,
		handlers: make(map[Kind]Handler, 4),
	}
}

// Name 返回观察者名称
func (o *Observer) Name() string {
	return o.name
}

// Attach 设置 kind 的处理函数，替换已有的处理函数
func (o *Observer) Attach(kind Kind, h Handler) {
	o.handlers[kind] = h
}

// AttachFunc 用普通函数调用 Attach
func (o *Observer) AttachFunc(kind Kind, fn func(msg Message)) {
	o.Attach(kind, HandlerFunc(fn))
}

// Handler 返回 kind 的处理函数（如果有）
func (o *Observer) Handler(kind Kind) (Handler, bool) {
	h, ok := o.handlers[kind]
	return h, ok
}

// Detach 移除 kind 的处理函数，没有处理函数时不做任何事
func (o *Observer) Detach(kind Kind) {
	delete(o.handlers, kind)
}
