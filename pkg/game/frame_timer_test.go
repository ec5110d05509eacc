package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimerFirstTick(t *testing.T) {
	ft := NewFrameTimer(1.0 / 60.0)
	dt := ft.Tick(time.Unix(100, 0))

	assert.Equal(t, 1.0/60.0, dt)
	assert.Equal(t, uint64(1), ft.Frame())
	assert.Zero(t, ft.FPS())
}

func TestFrameTimerDelta(t *testing.T) {
	start := time.Unix(100, 0)
	tests := []struct {
		name string
		gap  time.Duration
		want float64
	}{
		{"正常帧", 20 * time.Millisecond, 0.02},
		{"超长帧被截断", 2 * time.Second, MaxDeltaTime},
		{"时间倒退", -time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := NewFrameTimer(0)
			ft.Tick(start)
			assert.InDelta(t, tt.want, ft.Tick(start.Add(tt.gap)), 1e-9)
			assert.Equal(t, uint64(2), ft.Frame())
		})
	}
}

func TestFrameTimerFPS(t *testing.T) {
	start := time.Unix(100, 0)
	ft := NewFrameTimer(0)
	ft.Tick(start)

	for k := 1; k < 100; k++ {
		ft.Tick(start.Add(time.Duration(k) * 10 * time.Millisecond))
	}
	// 不足一秒，尚未统计
	assert.Zero(t, ft.FPS())

	ft.Tick(start.Add(time.Second))
	assert.InDelta(t, 100.0, ft.FPS(), 1e-9)

	// 下一个窗口：一秒内 50 帧
	for k := 1; k <= 50; k++ {
		ft.Tick(start.Add(time.Second + time.Duration(k)*20*time.Millisecond))
	}
	assert.InDelta(t, 50.0, ft.FPS(), 1e-9)
}
