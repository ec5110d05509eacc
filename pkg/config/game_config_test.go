package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  title: test
  width: 640
  height: 480
ecs:
  maxEntities: 16
physics:
  gravity: 1000
  floorY: 400
player:
  startX: 10
  startY: 20
  jumpSpeed: 500
obstacles:
  - {x: 300, y: 380, width: 40, height: 40}
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, "test", cfg.Window.Title)
				assert.Equal(t, 640, cfg.Window.Width)
				assert.Equal(t, 16, cfg.ECS.MaxEntities)
				assert.Equal(t, 1000.0, cfg.Physics.Gravity)
				assert.Equal(t, 500.0, cfg.Player.JumpSpeed)
				require.Len(t, cfg.Obstacles, 1)
				assert.Equal(t, ObstacleConfig{X: 300, Y: 380, Width: 40, Height: 40}, cfg.Obstacles[0])
				// 未配置的字段保留默认值
				assert.Equal(t, 60, cfg.Window.TPS)
				assert.Equal(t, Default().Player.MoveSpeed, cfg.Player.MoveSpeed)
			},
		},
		{
			name:        "empty document keeps defaults",
			yamlContent: "",
			validate: func(t *testing.T, cfg *GameConfig) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:        "invalid max entities",
			yamlContent: "ecs:\n  maxEntities: 0\n",
			wantErr:     true,
			errContains: "maxEntities must be positive",
		},
		{
			name: "too many obstacles",
			yamlContent: `
ecs:
  maxEntities: 2
obstacles:
  - {x: 0, y: 0, width: 1, height: 1}
  - {x: 5, y: 0, width: 1, height: 1}
`,
			wantErr:     true,
			errContains: "cannot hold the player",
		},
		{
			name:        "negative window",
			yamlContent: "window:\n  width: -1\n",
			wantErr:     true,
			errContains: "window size",
		},
		{
			name:        "zero gravity",
			yamlContent: "physics:\n  gravity: 0\n",
			wantErr:     true,
			errContains: "gravity",
		},
		{
			name:        "zero jump speed",
			yamlContent: "player:\n  jumpSpeed: 0\n",
			wantErr:     true,
			errContains: "jumpSpeed",
		},
		{
			name:        "degenerate obstacle",
			yamlContent: "obstacles:\n  - {x: 0, y: 0, width: 0, height: 1}\n",
			wantErr:     true,
			errContains: "obstacle 0",
		},
		{
			name:        "malformed yaml",
			yamlContent: "window: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yamlContent))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  floorY: 300\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300.0, cfg.Physics.FloorY)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read game config")
}

func TestLoadShippedConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "data", "game.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Obstacles)
}
