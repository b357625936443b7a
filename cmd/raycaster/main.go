// Package main is the entry point for the raycaster.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/config"
	"github.com/Faultbox/raycaster/internal/engine/input"
	"github.com/Faultbox/raycaster/internal/engine/window"
	"github.com/Faultbox/raycaster/internal/game"
	"github.com/Faultbox/raycaster/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.DumpPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Raycaster ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	in, err := input.New(cfg.Controls)
	if err != nil {
		return err
	}

	g, err := game.New(cfg, game.Platform{Surface: win, Input: in, Clock: win})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := g.Run(); err != nil {
		return err
	}

	logger.Info("game closed normally", zap.Uint64("frames", g.Frames()))
	return nil
}
