//go:build ebiten

package gfx

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/loop"
	"github.com/tomz197/roadrush/internal/loop/server"
)

// Game adapts a loop.State to the ebiten.Game interface. ebiten calls Update
// at a fixed TPS, so every Update is one simulation tick.
type Game struct {
	state   *loop.State
	hub     server.SessionHub
	handle  *server.ClientHandle
	sink    audio.Sink
	logger  *log.Logger
	painter *Painter
	monitor loop.PerfMonitor
	board   []string

	lastDraw time.Time
}

// New constructs a Game for one local driver registered with hub.
func New(hub server.SessionHub, username string, settings loop.Settings, seed int64, sink audio.Sink, logger *log.Logger) *Game {
	if sink == nil {
		sink = audio.Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		state:   loop.NewState(settings, seed),
		hub:     hub,
		handle:  hub.RegisterClient(username),
		sink:    sink,
		logger:  logger,
		painter: NewPainter(),
	}
	g.board = server.BoardLines(hub.BestRuns())
	return g
}

// Close unregisters the driver and releases the audio sink.
func (g *Game) Close() error {
	g.hub.UnregisterClient(g.handle.ID)
	return g.sink.Close()
}

func (g *Game) Update() error {
	in := pollInput()
	if in.Quit {
		return ebiten.Termination
	}
	if err := g.state.Update(in); err != nil {
		return err
	}
	events := g.state.DrainEvents()
	loop.Dispatch(g.sink, events, g.state.Settings)
	for _, e := range events {
		switch e.Kind {
		case loop.EventGameOver:
			g.logger.Info("run finished", "score", e.Summary.Score, "distance", e.Summary.Distance)
			g.hub.ReportRun(g.handle.ID, server.Run{
				Score:    e.Summary.Score,
				Distance: e.Summary.Distance,
				Combo:    e.Summary.BestCombo,
				At:       time.Now(),
			})
			g.board = server.BoardLines(g.hub.BestRuns())
		case loop.EventAchievement:
			g.logger.Debug("achievement unlocked", "id", e.Achievement.ID)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.monitor.Apply(g.state, now.Sub(g.lastDraw))
	}
	g.lastDraw = now

	g.painter.Begin(screen)
	if err := g.state.Draw(g.painter, g.board); err != nil {
		g.logger.Error("draw failed", "err", err)
	}
	g.painter.End()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
