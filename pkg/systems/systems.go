// Package systems 包含每帧运行的游戏系统
//
// 每个系统声明自己需要的组件，由 Install 注册到协调器并设置签名。
// 系统只处理签名匹配的实体，事件通过 message.PlayerEventPublisher 发出。
package systems

import "github.com/finily1203/monkeybrother-sub001/pkg/ecs"

// Installable 声明了所需组件的系统
type Installable interface {
	ecs.System
	Requires() []ecs.Component
}

// Install 把 s 注册到 c，并用 s.Requires() 设置系统签名
//
// 所需的组件类型必须已经注册。已存在的实体会立即按签名加入系统。
func Install[S Installable](c *ecs.Coordinator, s S) S {
	c.RegisterSystem(s)
	c.SetSystemSignature(s, c.SignatureOf(s.Requires()...))
	return s
}
