package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/loop"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/client"
	"github.com/tomz197/roadrush/internal/loop/server"
)

func main() {
	opts := config.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid options: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(opts.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(opts, logger); err != nil {
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *config.Options, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	var sink audio.Sink = audio.Nop{}
	if opts.Sound || opts.Music {
		speaker, err := audio.NewSpeaker(1)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			sink = speaker
		}
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed := opts.ResolvedSeed()
	logger.Info("starting", "seed", seed, "quality", opts.Quality)

	hub := server.NewServer(lc.BestRunsKept)
	c := client.NewClient(hub, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: os.Getenv("USER"),
		Settings: loop.SettingsFromOptions(opts),
		Seed:     seed,
		TPS:      opts.TPS,
		Sink:     sink,
		Styles:   lipgloss.NewRenderer(os.Stdout),
		Logger:   logger,
	})
	if err := c.Run(ctx); err != nil {
		return err
	}
	if best := hub.BestRuns(); len(best) > 0 {
		logger.Info("session over", "best", best[0].Score)
	}
	return nil
}

// newLogger writes to path, or discards when it is empty: stdout is the game screen.
func newLogger(path string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closer := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush",
		Level:           log.DebugLevel,
	})
	return logger, closer, nil
}
