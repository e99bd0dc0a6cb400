package main

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/orb-burst/internal/anim"
	"github.com/iburimskiy/orb-burst/internal/config"
	"github.com/iburimskiy/orb-burst/internal/fetch"
	"github.com/iburimskiy/orb-burst/internal/game"
	"github.com/iburimskiy/orb-burst/internal/sound"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("bad built-in config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The fetch runs beside the loop; the placeholder shows until it lands.
	images := make(chan image.Image, 1)
	fetcher := fetch.New(cfg.Image, nil, logger)
	go func() {
		images <- fetcher.Load(ctx, cfg.Image.URL)
	}()

	g, err := game.New(cfg, anim.Options{
		Sound:  sound.NewPlayer(cfg.Sound, logger),
		Logger: logger,
		Images: images,
	})
	if err != nil {
		logger.Error("init failed", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
}
