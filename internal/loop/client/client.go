// Package client runs one player's game over a terminal connection.
package client

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/input"
	"github.com/tomz197/roadrush/internal/loop"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/server"
)

// maxTicksPerFrame caps catch-up after a stalled frame.
const maxTicksPerFrame = 5

// Client handles rendering, input and audio for a single connection.
type Client struct {
	hub          server.SessionHub
	handle       *server.ClientHandle
	game         *loop.State
	state        *ClientState
	sink         audio.Sink
	canvas       *draw.Canvas
	out          *draw.Output // Frame buffer sent in packet-sized writes
	frame        *draw.Frame
	writer       io.Writer
	inputStream  *input.Stream
	pending      input.Input // Input not yet consumed by a tick
	clock        *loop.Clock
	monitor      loop.PerfMonitor
	lastInput    time.Time
	idleKick     bool
	username     string
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	now          func() time.Time
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Settings     loop.Settings
	Seed         int64
	TPS          int                // Simulation ticks per wall second
	Sink         audio.Sink         // Defaults to audio.Nop
	Styles       *lipgloss.Renderer // Menu panel renderer bound to the output
	Logger       *log.Logger
	IdleKick     bool // Warn and then disconnect an idle player (remote sessions)
}

// NewClient creates a new client registered with hub.
func NewClient(hub server.SessionHub, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	sink := opts.Sink
	if sink == nil {
		sink = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tps := opts.TPS
	if tps == 0 {
		tps = config.TickRate
	}

	handle := hub.RegisterClient(opts.Username)

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ViewWidth, config.ViewHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	out := draw.NewOutput(w, offsetCol, offsetRow)

	c := &Client{
		hub:          hub,
		handle:       handle,
		game:         loop.NewState(opts.Settings, opts.Seed),
		state:        NewClientState(),
		sink:         sink,
		canvas:       canvas,
		out:          out,
		frame:        draw.NewFrame(canvas, out, opts.Styles),
		writer:       w,
		inputStream:  input.StartStream(r),
		pending:      input.Input{Number: -1},
		clock:        loop.NewClock(tps, maxTicksPerFrame),
		idleKick:     opts.IdleKick,
		username:     opts.Username,
		termSizeFunc: termSizeFunc,
		logger:       logger.With("client", handle.ID),
		now:          time.Now,
	}
	c.lastInput = c.now()
	c.refreshBoard()
	return c
}

// Game returns the client's game state.
func (c *Client) Game() *loop.State {
	return c.game
}

// Run starts the client loop. Blocks until the client quits, its input
// closes, ctx is cancelled or the server shutdown countdown ends.
func (c *Client) Run(ctx context.Context) error {
	draw.EnterScreen(c.writer)
	defer draw.LeaveScreen(c.writer)
	defer c.hub.UnregisterClient(c.handle.ID)
	defer c.sink.StopMusic()

	lastTime := c.now()

	for c.state.Running {
		select {
		case <-ctx.Done():
			c.state.Running = false
			continue
		default:
		}

		frameStart := c.now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		c.processInput()
		c.processServerEvents()
		c.updateScreen()

		if c.state.shutdown {
			c.updateShutdownState(delta)
		} else if err := c.updateGame(delta); err != nil {
			return err
		}
		c.monitor.Apply(c.game, delta)

		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := c.now().Sub(frameStart)
		if elapsed < config.ClientTargetFrameTime {
			time.Sleep(config.ClientTargetFrameTime - elapsed)
		}
	}
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	in := input.ReadInput(c.inputStream)
	c.pending = mergeInput(c.pending, in)

	idle := c.now().Sub(c.lastInput).Seconds()
	switch {
	case len(in.Pressed) > 0:
		c.lastInput = c.now()
		c.state.isInactive = false
	case !c.idleKick:
	case idle > config.InactivityDisconnectUser:
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	case idle > config.InactivityWarnUser:
		c.state.isInactive = true
	}

	if in.Quit || in.Closed {
		c.state.Running = false
	}
}

// mergeInput folds next into pending so presses between ticks are not lost.
func mergeInput(pending, next input.Input) input.Input {
	pending.Quit = pending.Quit || next.Quit
	pending.LeftTaps += next.LeftTaps
	pending.RightTaps += next.RightTaps
	pending.Accelerate = next.Accelerate
	pending.Brake = next.Brake
	pending.Space = pending.Space || next.Space
	pending.Enter = pending.Enter || next.Enter
	pending.Escape = pending.Escape || next.Escape
	pending.Options = pending.Options || next.Options
	if next.Number >= 0 {
		pending.Number = next.Number
	}
	pending.Closed = pending.Closed || next.Closed
	pending.Pressed = append(pending.Pressed, next.Pressed...)
	return pending
}

// processServerEvents handles events from the hub.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Hub closed the channel
				c.state.Running = false
				return
			}
			switch event.Type {
			case server.EventServerShutdown:
				if !c.state.shutdown {
					c.state.shutdown = true
					c.state.shutdownTimer = config.ShutdownDisplaySeconds
					c.sink.StopMusic()
				}
			case server.EventBoardChanged:
				c.refreshBoard()
			}
		default:
			return
		}
	}
}

// updateGame runs the ticks owed for delta and reacts to the events they emit.
func (c *Client) updateGame(delta time.Duration) error {
	if c.state.isInactive {
		return nil
	}
	ticks := c.clock.Advance(delta)
	for i := 0; i < ticks; i++ {
		before := c.game.GameState
		if err := c.game.Update(c.pending); err != nil {
			return err
		}
		// Edge presses apply to the first tick only; held keys persist.
		c.pending = input.Input{Accelerate: c.pending.Accelerate, Brake: c.pending.Brake, Number: -1}

		if before != loop.GameStatePlaying && c.game.GameState == loop.GameStatePlaying {
			input.ResetKeyInput(c.inputStream)
			c.pending.Accelerate, c.pending.Brake = false, false
			c.logger.Debug("run started")
		}
		c.handleEvents(c.game.DrainEvents())
	}
	return nil
}

func (c *Client) handleEvents(events []loop.Event) {
	loop.Dispatch(c.sink, events, c.game.Settings)
	for _, e := range events {
		switch e.Kind {
		case loop.EventGameOver:
			c.logger.Info("run finished", "score", e.Summary.Score, "distance", e.Summary.Distance)
			c.hub.ReportRun(c.handle.ID, server.Run{
				Score:    e.Summary.Score,
				Distance: e.Summary.Distance,
				Combo:    e.Summary.BestCombo,
				At:       c.now(),
			})
			c.refreshBoard()
		case loop.EventAchievement:
			c.logger.Debug("achievement unlocked", "id", e.Achievement.ID)
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
		c.canvas.ForceRedraw()
	}

	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.out.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, config.MaxTermWidth)
	renderHeight = min(termHeight, config.MaxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// updateShutdownState handles the shutdown screen countdown.
func (c *Client) updateShutdownState(delta time.Duration) {
	c.state.shutdownTimer -= delta.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.Running = false
	}
}
