// Package main is the entry point for the water demo.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-water/internal/assets"
	"github.com/Faultbox/midgard-water/internal/config"
	"github.com/Faultbox/midgard-water/internal/game"
	"github.com/Faultbox/midgard-water/internal/logger"
)

const title = "Water project"

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("water demo failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("closed normally")
	logger.Sync()
}

func run(cfg *config.Config) error {
	logger.Info("=== " + title + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(game.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, logger.Named("game"))
	if err != nil {
		return err
	}
	defer g.Close()

	am := assets.NewManager()
	if err := am.AddRoot(cfg.Assets.Root); err != nil {
		return err
	}
	defer am.Close()

	width, height := g.Size()
	demo, err := game.NewWaterDemo(cfg, am, g.Input(), width, height, logger.Named("water"))
	if err != nil {
		return fmt.Errorf("creating water demo: %w", err)
	}

	fps := game.NewFrameRateCounter(g.Window(), title, demo.Status, logger.Named("fps"))
	g.Add(demo, fps)

	return g.Run()
}
