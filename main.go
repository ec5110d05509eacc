package main

import (
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/finily1203/monkeybrother-sub001/pkg/app"
	"github.com/finily1203/monkeybrother-sub001/pkg/config"
	"github.com/finily1203/monkeybrother-sub001/pkg/game"
)

const appName = "monkeybrother"

type rootFlags struct {
	configPath string
	verbose    bool
	pretty     bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:          appName,
		Short:        "Run the Monkey Brother platformer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), flags.verbose, flags.pretty)
			return run(flags, logger)
		},
	}
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "game config YAML (defaults to the embedded data/game.yaml)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&flags.pretty, "pretty", false, "human-readable console logs instead of JSON")
	return cmd
}

func newLogger(w io.Writer, verbose, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// loadConfig 读取配置文件（为空时使用嵌入的默认配置）并应用环境变量覆盖
func loadConfig(path string) (*config.GameConfig, error) {
	var (
		cfg *config.GameConfig
		err error
	)
	if path == "" {
		cfg, err = config.Parse(defaultConfigYAML)
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(flags rootFlags, logger zerolog.Logger) error {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return err
	}

	settings, err := game.OpenSettingsManager(appName, logger)
	if err != nil {
		// 存储不可用时仍可运行，只是设置不会保存
		logger.Warn().Err(err).Msg("settings will not be persisted")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	a := app.NewApp(cfg, settings, logger)
	logger.Info().Str("title", cfg.Window.Title).Int("max_entities", cfg.ECS.MaxEntities).Msg("starting game loop")

	runErr := ebiten.RunGame(a)
	if err := a.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to save settings")
	}
	if runErr != nil {
		return eris.Wrap(runErr, "game loop")
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
