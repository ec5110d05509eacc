package utils

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestActionsHorizontal(t *testing.T) {
	tests := []struct {
		name    string
		actions Actions
		want    float64
	}{
		{"无输入", Actions{}, 0},
		{"向左", Actions{Left: true}, -1},
		{"向右", Actions{Right: true}, 1},
		{"同时按下左右", Actions{Left: true, Right: true}, 0},
		{"跳跃不影响水平方向", Actions{Right: true, Jump: true}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actions.Horizontal())
		})
	}
}

func TestDefaultKeyBindings(t *testing.T) {
	kb := DefaultKeyBindings()
	assert.Contains(t, kb.Left, ebiten.KeyArrowLeft)
	assert.Contains(t, kb.Right, ebiten.KeyD)
	assert.Contains(t, kb.Jump, ebiten.KeySpace)
}
