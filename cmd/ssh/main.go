package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/draw"
	"github.com/tomz197/roadrush/internal/loop"
	lc "github.com/tomz197/roadrush/internal/loop/config"
	"github.com/tomz197/roadrush/internal/loop/client"
	"github.com/tomz197/roadrush/internal/loop/server"
)

const (
	driverGrace  = 15 * time.Second // Time drivers get to finish after SIGTERM
	listenerStop = 5 * time.Second
)

func main() {
	opts := config.NewOptions()
	opts.Bind(flag.CommandLine)
	addr := flag.String("addr", net.JoinHostPort(config.GetEnv("SSH_HOST", "::"), config.GetEnv("SSH_PORT", "2222")),
		"listen address for driver sessions")
	hostKey := flag.String("host-key", config.GetEnv("SSH_HOST_KEY", "/app/keys/host_key"),
		"path of the SSH host key, created if missing")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "roadrush-ssh",
	})
	if err := opts.Validate(); err != nil {
		logger.Fatal("invalid options", "err", err)
	}

	track := &raceway{
		hub:    server.NewServer(lc.BestRunsKept),
		opts:   opts,
		logger: logger,
	}
	srv, err := newSSHServer(*addr, *hostKey, track, logger)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Road Rush is open", "addr", *addr, "quality", opts.Quality)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Closing the track", "drivers", track.hub.Players())
	track.hub.Shutdown(driverGrace)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), listenerStop)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
	if best := track.hub.BestRuns(); len(best) > 0 {
		logger.Info("Best run of the day", "driver", best[0].Username, "score", best[0].Score)
	}
}

// newSSHServer wires the wish middleware chain. Middleware runs bottom up:
// log the connection, require a PTY, then hand the session to the track.
func newSSHServer(addr, hostKey string, track *raceway, logger *log.Logger) (*ssh.Server, error) {
	options := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			track.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Lane taps are single bytes; don't let Nagle hold them back.
		ssh.WrapConn(func(_ ssh.Context, conn net.Conn) net.Conn {
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetNoDelay(true)
			}
			return conn
		}),
	}
	if hostKey != "" {
		options = append(options, wish.WithHostKeyPath(hostKey))
	}
	return wish.NewServer(options...)
}

// raceway gives every SSH session its own run. Sessions share only the hub:
// the connection registry and the best runs board.
type raceway struct {
	hub    *server.Server
	opts   *config.Options
	logger *log.Logger
}

func (r *raceway) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		defer next(sess)

		pty, resizes, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Road Rush needs a terminal. Connect with: ssh -t <host>")
			return
		}
		driver := sess.User()
		logger := r.logger.With("driver", driver)
		logger.Info("Driver joined", "term", pty.Term, "cols", pty.Window.Width, "rows", pty.Window.Height)

		win := newWindowSize(pty.Window.Width, pty.Window.Height)
		go func() {
			for w := range resizes {
				win.set(w.Width, w.Height)
			}
		}()

		// Session renderers can't probe the remote terminal; assume 256 colours
		// like the canvas does.
		styles := lipgloss.NewRenderer(sess)
		styles.SetColorProfile(termenv.ANSI256)

		c := client.NewClient(r.hub, bufio.NewReader(sess), sess, client.ClientOptions{
			TermSizeFunc: win.get,
			Username:     driver,
			Settings:     loop.SettingsFromOptions(r.opts),
			Seed:         time.Now().UnixNano(),
			TPS:          r.opts.TPS,
			Sink:         audio.NewBell(sess),
			Styles:       styles,
			Logger:       logger,
			IdleKick:     true,
		})
		if err := c.Run(sess.Context()); err != nil {
			logger.Error("Run aborted", "err", err)
		}
		logger.Info("Driver left")
	}
}

// windowSize is the latest PTY size reported by the SSH client.
type windowSize struct {
	mu   sync.RWMutex
	cols int
	rows int
}

func newWindowSize(cols, rows int) *windowSize {
	return &windowSize{cols: cols, rows: rows}
}

func (w *windowSize) set(cols, rows int) {
	w.mu.Lock()
	w.cols, w.rows = cols, rows
	w.mu.Unlock()
}

func (w *windowSize) get() (int, int, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.cols, w.rows, nil
}

var _ draw.TermSizeFunc = (*windowSize)(nil).get
