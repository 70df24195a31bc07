package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/dispatch/core/logger"
)

// Server wraps http.Server with a restartable lifecycle: Start binds the
// listener before returning, Stop drains in-flight requests and waits for
// the serve loop to exit. Both are idempotent. Safe for concurrent use.
type Server struct {
	mu              sync.Mutex
	addr            string
	handler         http.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	maxHeaderBytes  int
	tlsConfig       *tls.Config

	srv      *http.Server
	listener net.Listener
	// done is closed by the serve goroutine after Serve returns. serveErr
	// is written before the close and must only be read after <-done.
	done     chan struct{}
	serveErr error
}

// New creates a Server for the given address and handler.
// The server does not listen until Start is called.
func New(addr string, handler http.Handler, opts ...Option) *Server {
	s := &Server{
		addr:            addr,
		handler:         handler,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		shutdownTimeout: DefaultShutdownTimeout,
		idleTimeout:     DefaultIdleTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start binds the listener and launches the serve loop in a background
// goroutine. When Start returns nil the socket is accepting connections
// and Addr reports the bound address. Calling Start on a running server
// has no effect.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv != nil {
		return nil
	}
	if s.handler == nil {
		return ErrMissingHandler
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToListen, err)
	}
	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}

	// Fresh http.Server per start so the instance survives restarts;
	// a shut-down http.Server rejects further use.
	srv := &http.Server{
		Handler:        s.handler,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
	}
	done := make(chan struct{})

	s.srv = srv
	s.listener = ln
	s.done = done
	s.serveErr = nil

	s.logger.InfoContext(ctx, "server started", logger.Key("addr", ln.Addr().String()))

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr = err
		}
		close(done)
	}()

	return nil
}

// Stop gracefully shuts down the server, waiting up to the configured
// shutdown timeout for in-flight requests to complete and for the serve
// loop to exit. Connections still alive after the timeout are closed
// forcibly. Calling Stop on a stopped server has no effect.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.srv == nil {
		return nil
	}

	s.logger.InfoContext(ctx, "server stopping", logger.Key("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(shutdownCtx)
	if err != nil {
		_ = s.srv.Close()
	}
	<-s.done

	s.srv = nil
	s.listener = nil
	s.done = nil

	if err != nil {
		return fmt.Errorf("%w: %v", ErrHTTPShutdown, err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Addr reports the address the listener is bound to, or nil when the
// server is not running. With a ":0" address this is how the assigned
// port is discovered.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Running reports whether the serve loop is active.
func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.srv != nil
}

// Run starts the server and blocks until the context is canceled or the
// serve loop fails, then stops the server gracefully. Compatible with
// errgroup.Group.Go:
//
//	g.Go(func() error { return srv.Run(ctx) })
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return s.Stop(context.Background())
	case <-done:
		s.mu.Lock()
		err := s.serveErr
		s.mu.Unlock()

		stopErr := s.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrHTTPServer, err)
		}
		return stopErr
	}
}

// Run creates a server with default settings and runs it until the
// context is canceled.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	return New(addr, handler).Run(ctx)
}
