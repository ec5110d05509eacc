// Package game 把 ECS、消息和游戏系统组装成可运行的游戏世界
//
// 宿主（pkg/app）每帧构造一个 Context 传入 World.Update，
// 游戏逻辑不读取任何窗口或输入全局状态。
package game

import "github.com/finily1203/monkeybrother-sub001/pkg/utils"

// Context 单帧的运行上下文
type Context struct {
	Actions   utils.Actions // 本帧玩家操作
	DeltaTime float64       // 距上一帧的时间（秒）
	FPS       float64       // 最近一秒的平均帧率
	Frame     uint64        // 帧序号，从 1 开始
}
