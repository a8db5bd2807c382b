package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/roadrush/internal/input"
	"github.com/tomz197/roadrush/internal/loop"
	"github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/server"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func newTestClient(t *testing.T, hub *server.Server, r io.Reader, w io.Writer) *Client {
	t.Helper()
	return NewClient(hub, bufio.NewReader(r), w, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Username:     "tester",
		Settings:     loop.DefaultSettings(),
		Seed:         7,
		IdleKick:     true,
	})
}

func runWithTimeout(t *testing.T, c *Client, ctx context.Context) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("client did not stop")
		return nil
	}
}

func TestRunQuitsOnQ(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	var out bytes.Buffer
	c := newTestClient(t, hub, strings.NewReader("q"), &out)
	assert.Equal(t, 1, hub.Players())

	require.NoError(t, runWithTimeout(t, c, context.Background()))
	assert.Zero(t, hub.Players())
	assert.Contains(t, out.String(), "\033[?25l")
	assert.Contains(t, out.String(), "ROAD RUSH")
}

func TestRunStopsOnClosedInput(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	c := newTestClient(t, hub, strings.NewReader(""), io.Discard)
	require.NoError(t, runWithTimeout(t, c, context.Background()))
	assert.Zero(t, hub.Players())
}

func TestRunStopsOnCancel(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, hub, pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)
	require.NoError(t, runWithTimeout(t, c, ctx))
}

func TestShutdownEventStartsCountdown(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, hub, pr, io.Discard)

	c.handle.EventsCh <- server.ClientEvent{Type: server.EventServerShutdown}
	c.processServerEvents()
	assert.True(t, c.state.shutdown)
	assert.Equal(t, float64(config.ShutdownDisplaySeconds), c.state.shutdownTimer)

	c.updateShutdownState(time.Duration(config.ShutdownDisplaySeconds) * time.Second)
	assert.False(t, c.state.Running)
}

func TestClosedEventsStopClient(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, hub, pr, io.Discard)

	hub.UnregisterClient(c.handle.ID)
	c.processServerEvents()
	assert.False(t, c.state.Running)
}

func TestUpdateGameStartsRunAndReportsGameOver(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, hub, pr, io.Discard)

	c.pending = input.Input{Space: true, Number: -1}
	require.NoError(t, c.updateGame(config.TickTime))
	assert.Equal(t, loop.GameStatePlaying, c.Game().GameState)
	assert.False(t, c.pending.Space)

	c.Game().Score = 900
	c.Game().GameOver()
	c.handleEvents(c.Game().DrainEvents())

	runs := hub.BestRuns()
	require.Len(t, runs, 1)
	assert.Equal(t, "tester", runs[0].Username)
	assert.Equal(t, 900, runs[0].Score)
	assert.Contains(t, strings.Join(c.state.board, "\n"), "tester")
}

func TestInactiveClientPausesGame(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := newTestClient(t, hub, pr, io.Discard)

	c.Game().StartGame()
	now := time.Now()
	c.now = func() time.Time { return now }
	c.lastInput = now.Add(-time.Duration(config.InactivityWarnUser+1) * time.Second)
	c.processInput()
	assert.True(t, c.state.isInactive)
	assert.True(t, c.state.Running)

	before := c.Game().Distance
	require.NoError(t, c.updateGame(config.TickTime))
	assert.Equal(t, before, c.Game().Distance)

	c.lastInput = now.Add(-time.Duration(config.InactivityDisconnectUser+1) * time.Second)
	c.processInput()
	assert.False(t, c.state.Running)
}

func TestLocalClientIsNeverKicked(t *testing.T) {
	hub := server.NewServer(config.BestRunsKept)
	pr, pw := io.Pipe()
	defer pw.Close()
	c := NewClient(hub, bufio.NewReader(pr), io.Discard, ClientOptions{
		TermSizeFunc: fixedSize(100, 40),
		Settings:     loop.DefaultSettings(),
	})

	now := time.Now()
	c.now = func() time.Time { return now }
	c.lastInput = now.Add(-time.Duration(config.InactivityDisconnectUser+1) * time.Second)
	c.processInput()
	assert.True(t, c.state.Running)
	assert.False(t, c.state.isInactive)
}

func TestMergeInput(t *testing.T) {
	a := input.Input{LeftTaps: 1, Space: true, Number: -1, Accelerate: true}
	b := input.Input{LeftTaps: 2, RightTaps: 1, Number: 3, Pressed: []byte("x")}
	m := mergeInput(a, b)
	assert.Equal(t, 3, m.LeftTaps)
	assert.Equal(t, 1, m.RightTaps)
	assert.True(t, m.Space)
	assert.False(t, m.Accelerate)
	assert.Equal(t, 3, m.Number)
	assert.Equal(t, []byte("x"), m.Pressed)

	m = mergeInput(m, input.Input{Number: -1})
	assert.Equal(t, 3, m.Number)
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := clampTermSize(80, 24)
	assert.Equal(t, []int{80, 24, 0, 0}, []int{w, h, col, row})

	w, h, col, row = clampTermSize(config.MaxTermWidth+20, config.MaxTermHeight+10)
	assert.Equal(t, config.MaxTermWidth, w)
	assert.Equal(t, config.MaxTermHeight, h)
	assert.Equal(t, 10, col)
	assert.Equal(t, 5, row)
}
