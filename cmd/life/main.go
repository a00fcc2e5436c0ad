//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifebox/internal/app"
	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	for _, msg := range cfg.Normalize() {
		core.Logger().Warn("invalid flag clamped", "change", msg)
	}

	ctrl := cfg.NewController()
	game := app.New(ctrl, cfg.TPS)

	ebiten.SetWindowTitle("lifebox: window scale letterbox")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(320, 240, -1, -1)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
