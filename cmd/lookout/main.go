package main

import (
	"flag"
	"log/slog"
	"os"

	"chosenoffset.com/lookout/internal/app"
	"chosenoffset.com/lookout/internal/clock"
	"chosenoffset.com/lookout/internal/config"
	ebitenrender "chosenoffset.com/lookout/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.ReadConfig(*configPath)
	if err != nil {
		slog.Error("failed to read config", "path", *configPath, "error", err)
		os.Exit(1)
	}

	level, err := config.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		slog.Warn("invalid log level, using info", "error", err)
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager, err := app.NewManager(cfg, renderer, inputMgr, clock.NewSystemClock(), log)
	if err != nil {
		log.Error("failed to create app", "error", err)
		os.Exit(1)
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Info("starting", "config", *configPath, "shapes", len(cfg.Shapes))
	if err := engine.RunGame(manager); err != nil {
		manager.Close()
		log.Error("loop ended with error", "error", err)
		os.Exit(1)
	}
	manager.Close()
}
