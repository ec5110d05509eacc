// Package app 提供游戏应用的核心包装器
//
// App 实现 ebiten.Game：每个 tick 采样键盘输入，构造 game.Context 并推进游戏世界。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/finily1203/monkeybrother-sub001/pkg/components"
	"github.com/finily1203/monkeybrother-sub001/pkg/config"
	"github.com/finily1203/monkeybrother-sub001/pkg/ecs"
	"github.com/finily1203/monkeybrother-sub001/pkg/game"
	"github.com/finily1203/monkeybrother-sub001/pkg/utils"
)

var (
	backgroundColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	floorColor      = color.RGBA{R: 96, G: 72, B: 48, A: 255}
	playerColor     = color.RGBA{R: 160, G: 82, B: 45, A: 255}
	obstacleColor   = color.RGBA{R: 60, G: 120, B: 60, A: 255}
)

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg      *config.GameConfig
	world    *game.World
	timer    *game.FrameTimer
	settings *game.SettingsManager
	keys     utils.KeyBindings
	ctx      game.Context
	logger   zerolog.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建游戏应用
// cfg 必须已通过 Validate；settings 可以处于降级模式
func NewApp(cfg *config.GameConfig, settings *game.SettingsManager, logger zerolog.Logger) *App {
	return &App{
		cfg:      cfg,
		world:    game.NewWorld(cfg, logger),
		timer:    game.NewFrameTimer(1.0 / float64(cfg.Window.TPS)),
		settings: settings,
		keys:     utils.DefaultKeyBindings(),
		logger:   logger.With().Str("module", "app").Logger(),
	}
}

// World 返回游戏世界
func (a *App) World() *game.World {
	return a.world
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	// F1 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.settings.SetShowFPS(!a.settings.GetSettings().ShowFPS)
	}
	// F3 输出 ECS 状态
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.DumpState(zerolog.InfoLevel)
	}

	a.step(a.keys.Sample(), time.Now())
	return nil
}

// step 构造本帧上下文并推进游戏世界
func (a *App) step(actions utils.Actions, now time.Time) {
	a.ctx.Actions = actions
	a.ctx.DeltaTime = a.timer.Tick(now)
	a.ctx.FPS = a.timer.FPS()
	a.ctx.Frame = a.timer.Frame()
	a.world.Update(&a.ctx)
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.logger.Debug().Bool("fullscreen", a.settings.GetSettings().Fullscreen).Msg("fullscreen toggled")
}

// DumpState 把协调器和玩家实体的状态写入日志
func (a *App) DumpState(level zerolog.Level) {
	c := a.world.Coordinator()
	ecs.LogCoordinator(&a.logger, c, level)
	ecs.LogEntity(&a.logger, c, level, a.world.Player())
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	floorY := float32(a.cfg.Physics.FloorY)
	vector.DrawFilledRect(screen, 0, floorY, float32(a.cfg.Window.Width), float32(a.cfg.Window.Height)-floorY, floorColor, false)

	c := a.world.Coordinator()
	for _, e := range a.world.Obstacles() {
		drawBox(screen, c, e, obstacleColor)
	}
	drawBox(screen, c, a.world.Player(), playerColor)

	if a.settings.GetSettings().ShowFPS {
		ebitenutil.DebugPrint(screen, a.overlayText())
	}
}

func drawBox(screen *ebiten.Image, c *ecs.Coordinator, e ecs.Entity, clr color.Color) {
	pos := ecs.GetComponent(c, components.Position, e)
	col := ecs.GetComponent(c, components.Collider, e)
	left, top, right, bottom := col.Bounds(pos.X, pos.Y)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), clr, false)
}

// overlayText 调试信息文本
func (a *App) overlayText() string {
	pos := a.world.PlayerPosition()
	state := a.world.PlayerState()
	stats := a.world.Stats()
	return fmt.Sprintf("FPS: %.1f  Frame: %d\nPlayer: (%.0f, %.0f) grounded=%t\nJumps: %d  Falls: %d  Collisions: %d\nEntities: %d",
		a.ctx.FPS, a.ctx.Frame,
		pos.X, pos.Y, state.Grounded,
		stats.Jumps, stats.Falls, stats.Collisions,
		a.world.Coordinator().LivingCount())
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// Close 取消订阅并保存设置
func (a *App) Close() error {
	a.world.Close()
	return a.settings.Save()
}
