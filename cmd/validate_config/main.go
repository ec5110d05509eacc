// validate_config 检查游戏配置文件
//
// 用法:
//
//	go run ./cmd/validate_config [data/game.yaml ...]
package main

import (
	"fmt"
	"os"

	"github.com/finily1203/monkeybrother-sub001/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{"data/game.yaml"}
	}

	failed := 0
	for _, path := range paths {
		if err := validate(path); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func validate(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}

	fmt.Printf("✅ %s\n", path)
	fmt.Printf("   窗口: %dx%d @ %d TPS\n", cfg.Window.Width, cfg.Window.Height, cfg.Window.TPS)
	fmt.Printf("   实体上限: %d\n", cfg.ECS.MaxEntities)
	fmt.Printf("   重力: %.1f  地面: %.1f\n", cfg.Physics.Gravity, cfg.Physics.FloorY)
	fmt.Printf("   障碍物数量: %d\n", len(cfg.Obstacles))
	return nil
}
