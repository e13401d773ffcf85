package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/getjsond/jsond/pkg/config"
	"github.com/getjsond/jsond/pkg/logging"
	"github.com/getjsond/jsond/pkg/resource"
)

// Server hosts the REST API over a resource store.
type Server struct {
	cfg        *config.Config
	store      *resource.Store
	log        *slog.Logger
	handler    *Handler
	httpServer *http.Server
	mu         sync.RWMutex
	running    bool
	startTime  time.Time
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Server over the given store. The store may still be loading;
// requests are suspended at the ready-gate until it publishes.
func New(cfg *config.Config, store *resource.Store, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		cfg:   cfg,
		store: store,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.handler = NewHandler(store)
	s.handler.SetLogger(s.log)
	return s
}

// Handler returns the fully wrapped HTTP handler (CORS + request logging
// around the REST routes). Exposed for tests and embedding.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.handler
	h = NewCORSMiddleware(h, s.cfg.CORS)
	h = NewLoggingMiddleware(h, s.log)
	return h
}

// Start starts the HTTP server. It returns once the listener is bound;
// serving continues in the background until Stop is called.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.log.Info("starting HTTP server", "addr", listener.Addr().String())
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	return nil
}

// Stop gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.running = false
	s.log.Info("server stopped")
	return err
}

// IsRunning reports whether the server is currently serving.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns the seconds since the server started, or 0 when stopped.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, fmt.Sprintf("%d", s.cfg.Port))
}
