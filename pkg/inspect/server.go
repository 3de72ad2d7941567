// Package inspect exposes the current panel layout over HTTP so
// external tooling can watch how a window is partitioned without
// attaching a debugger. The frame loop captures a Snapshot after each
// frame; the server serves the most recent one as JSON.
package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	dockerrors "github.com/go-drift/dock/pkg/errors"
)

// Server serves layout snapshots over HTTP.
type Server struct {
	source func() (Snapshot, bool)

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates a server reading snapshots from source, typically
// the Load method of a Latest slot.
func NewServer(source func() (Snapshot, bool)) *Server {
	return &Server{source: source}
}

// Start binds addr and serves in the background. Returns the bound port,
// which is useful when addr asks for an ephemeral one (":0"). Starting
// an already-running server returns its current port.
func (s *Server) Start(addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.port(), nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("inspect server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/layout", s.handleLayout)
	mux.HandleFunc("/health", handleHealth)

	server := &http.Server{Handler: mux}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			// Clear state so the server can be restarted.
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
			dockerrors.Report(&dockerrors.Error{Op: "inspect.Serve", Err: err})
		}
	}()

	return s.port(), nil
}

// Addr returns the listener address, or "" when the server is stopped.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// port returns the bound TCP port. Callers must hold mu.
func (s *Server) port() int {
	if s.listener == nil {
		return 0
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// handleLayout returns the most recent layout snapshot as JSON.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.source == nil {
		http.Error(w, "no snapshot source", http.StatusServiceUnavailable)
		return
	}
	snap, ok := s.source()
	if !ok {
		http.Error(w, "no frame captured", http.StatusServiceUnavailable)
		return
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
