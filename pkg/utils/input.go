// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Actions 存储当前帧的玩家操作
// 由宿主每帧采样一次，再经 game.Context 传给各系统
type Actions struct {
	Left  bool // 向左移动（按住）
	Right bool // 向右移动（按住）
	Jump  bool // 本帧刚按下跳跃键
}

// Horizontal returns -1, 0 or 1 for the requested horizontal direction.
// Holding both directions cancels out.
func (a Actions) Horizontal() float64 {
	switch {
	case a.Left && !a.Right:
		return -1
	case a.Right && !a.Left:
		return 1
	default:
		return 0
	}
}

// KeyBindings 按键绑定，每个操作可绑定多个按键
type KeyBindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
	Jump  []ebiten.Key
}

// DefaultKeyBindings 返回默认按键：方向键和 WASD，空格跳跃
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Jump:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
	}
}

// Sample 读取当前帧的键盘状态
// 只能在 ebiten 的 Update 中调用
func (kb KeyBindings) Sample() Actions {
	return Actions{
		Left:  anyPressed(kb.Left),
		Right: anyPressed(kb.Right),
		Jump:  anyJustPressed(kb.Jump),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
