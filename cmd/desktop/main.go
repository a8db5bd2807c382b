//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/gfx"
	"github.com/tomz197/roadrush/internal/loop"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/server"
)

const windowScale = 8

func main() {
	opts := config.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
	})
	if err := opts.Validate(); err != nil {
		logger.Fatal("invalid options", "err", err)
	}

	seed := opts.ResolvedSeed()
	logger.Info("starting", "seed", seed, "quality", opts.Quality)

	hub := server.NewServer(lc.BestRunsKept)
	game := gfx.New(hub, os.Getenv("USER"), loop.SettingsFromOptions(opts), seed, gfx.NewSound(1), logger)
	defer game.Close()

	ebiten.SetWindowTitle("Road Rush")
	ebiten.SetTPS(opts.TPS)
	ebiten.SetWindowSize(lc.ViewWidth*windowScale, lc.ViewHeight*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game error", "err", err)
	}
}
