package game

import "time"

// MaxDeltaTime 单帧时间上限（秒），防止窗口被拖动或暂停后一次积分过多
const MaxDeltaTime = 0.25

// FrameTimer 计算帧间隔和 FPS
//
// FPS 按一秒的窗口统计：窗口结束时取该窗口内的平均帧率。
type FrameTimer struct {
	fallback float64

	last    time.Time
	started bool
	frame   uint64

	windowStart  time.Time
	windowFrames int
	fps          float64
}

// NewFrameTimer 创建帧计时器，fallback 为第一帧使用的时间间隔（秒）
func NewFrameTimer(fallback float64) *FrameTimer {
	return &FrameTimer{fallback: fallback}
}

// Tick 记录一帧并返回距上一帧的时间（秒）
func (ft *FrameTimer) Tick(now time.Time) float64 {
	ft.frame++
	if !ft.started {
		ft.started = true
		ft.last = now
		ft.windowStart = now
		return ft.fallback
	}

	dt := now.Sub(ft.last).Seconds()
	ft.last = now
	if dt < 0 {
		dt = 0
	}
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}

	ft.windowFrames++
	if elapsed := now.Sub(ft.windowStart); elapsed >= time.Second {
		ft.fps = float64(ft.windowFrames) / elapsed.Seconds()
		ft.windowFrames = 0
		ft.windowStart = now
	}
	return dt
}

// FPS 返回最近一个完整统计窗口的平均帧率，第一秒内为 0
func (ft *FrameTimer) FPS() float64 {
	return ft.fps
}

// Frame 返回已记录的帧数
func (ft *FrameTimer) Frame() uint64 {
	return ft.frame
}
