package config

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏配置
//
// 配置文件位置: data/game.yaml
// 文件中未出现的字段保留 Default() 中的值。
type GameConfig struct {
	Window    WindowConfig     `yaml:"window"`
	ECS       ECSConfig        `yaml:"ecs"`
	Physics   PhysicsConfig    `yaml:"physics"`
	Player    PlayerConfig     `yaml:"player"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	TPS    int    `yaml:"tps"`    // 每秒逻辑帧数
}

// ECSConfig ECS 容量配置
type ECSConfig struct {
	MaxEntities int `yaml:"maxEntities"`
}

// PhysicsConfig 物理参数
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // 重力加速度（像素/秒²），正值向下
	FloorY  float64 `yaml:"floorY"`  // 地面高度，实体底边不会低于此值
}

// PlayerConfig 玩家初始状态
type PlayerConfig struct {
	StartX    float64 `yaml:"startX"`
	StartY    float64 `yaml:"startY"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"moveSpeed"` // 水平移动速度（像素/秒）
	JumpSpeed float64 `yaml:"jumpSpeed"` // 起跳初速度（像素/秒）
}

// ObstacleConfig 静态障碍物，只参与碰撞检测
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Default 返回内置默认配置
func Default() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:  "Monkey Brother",
			Width:  800,
			Height: 600,
			TPS:    60,
		},
		ECS: ECSConfig{
			MaxEntities: 5000,
		},
		Physics: PhysicsConfig{
			Gravity: 1800,
			FloorY:  560,
		},
		Player: PlayerConfig{
			StartX:    100,
			StartY:    536,
			Width:     32,
			Height:    48,
			MoveSpeed: 240,
			JumpSpeed: 720,
		},
	}
}

// Load reads and validates the YAML game configuration at path.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "failed to read game config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "game config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default() and validates the result.
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, eris.Wrap(err, "failed to parse game config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid game config")
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 窗口尺寸和 TPS 为正
//   - 实体上限为正，且至少能容纳玩家和所有障碍物
//   - 重力、起跳速度、玩家尺寸为正，移动速度非负
//   - 障碍物尺寸为正
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return eris.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return eris.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}

	if c.ECS.MaxEntities <= 0 {
		return eris.Errorf("ecs maxEntities must be positive, got %d", c.ECS.MaxEntities)
	}
	if need := 1 + len(c.Obstacles); c.ECS.MaxEntities < need {
		return eris.Errorf("ecs maxEntities %d cannot hold the player and %d obstacles",
			c.ECS.MaxEntities, len(c.Obstacles))
	}

	if c.Physics.Gravity <= 0 {
		return eris.Errorf("physics gravity must be positive, got %.1f", c.Physics.Gravity)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return eris.Errorf("player size must be positive, got %.1fx%.1f", c.Player.Width, c.Player.Height)
	}
	if c.Player.MoveSpeed < 0 {
		return eris.Errorf("player moveSpeed must not be negative, got %.1f", c.Player.MoveSpeed)
	}
	if c.Player.JumpSpeed <= 0 {
		return eris.Errorf("player jumpSpeed must be positive, got %.1f", c.Player.JumpSpeed)
	}

	for i, o := range c.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			return eris.Errorf("obstacle %d size must be positive, got %.1fx%.1f", i, o.Width, o.Height)
		}
	}

	return nil
}
