// Package server is the session hub behind the SSH front-end. Every session
// plays its own game; the hub only tracks who is connected, keeps the best
// runs board and tells sessions when the server is going down.
package server

import (
	"sync"
	"time"

	"github.com/kamstrup/intmap"
)

// SessionHub is the interface clients use to talk to the hub.
// Decouples the Client from the concrete Server implementation.
type SessionHub interface {
	RegisterClient(username string) *ClientHandle
	UnregisterClient(clientID int)
	ReportRun(clientID int, run Run)
	BestRuns() []Run
}

// Server tracks connected sessions and finished runs.
type Server struct {
	mu           sync.RWMutex
	clients      *intmap.Map[int, *ClientHandle]
	nextClientID int
	board        *Board
	closing      bool
}

// Compile-time check that Server implements SessionHub.
var _ SessionHub = (*Server)(nil)

// ClientHandle represents a client's registration with the hub.
type ClientHandle struct {
	ID       int
	Username string           // Display name for this client
	EventsCh chan ClientEvent // Events sent to client (shutdown, etc.)
}

// ClientEvent represents an event sent from the hub to a client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
	EventBoardChanged
)

// NewServer creates an empty hub keeping the best limit runs.
func NewServer(limit int) *Server {
	return &Server{
		clients:      intmap.New[int, *ClientHandle](16),
		nextClientID: 1,
		board:        NewBoard(limit),
	}
}

// RegisterClient adds a session and returns its handle. Sessions that
// register after Shutdown started get the shutdown event straight away.
func (s *Server) RegisterClient(username string) *ClientHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients.Put(handle.ID, handle)
	if s.closing {
		handle.EventsCh <- ClientEvent{Type: EventServerShutdown}
	}
	return handle
}

// UnregisterClient removes a session and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients.Get(clientID); ok {
		close(handle.EventsCh)
		s.clients.Del(clientID)
	}
}

// Players returns the number of connected sessions.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients.Len()
}

// ReportRun records a finished run. Other sessions are told when it made the board.
func (s *Server) ReportRun(clientID int, run Run) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients.Get(clientID); ok && run.Username == "" {
		run.Username = handle.Username
	}
	run.clientID = clientID
	if !s.board.Add(run) {
		return
	}
	s.broadcastLocked(ClientEvent{Type: EventBoardChanged}, clientID)
}

// BestRuns returns a copy of the board, best first.
func (s *Server) BestRuns() []Run {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Runs()
}

// broadcastLocked sends ev to every client except skip without blocking.
func (s *Server) broadcastLocked(ev ClientEvent, skip int) {
	s.clients.ForEach(func(id int, handle *ClientHandle) bool {
		if id == skip {
			return true
		}
		select {
		case handle.EventsCh <- ev:
		default:
		}
		return true
	})
}

// Shutdown notifies all sessions and waits until they have disconnected or
// timeout elapses.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.Lock()
	s.closing = true
	s.broadcastLocked(ClientEvent{Type: EventServerShutdown}, 0)
	s.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
