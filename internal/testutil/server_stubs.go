package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
)

// StubHTTPServer is a scriptable stand-in for the server package's listener abstraction.
// ListenAndServe returns ListenErr immediately. Shutdown returns ShutdownErr, first waiting for
// ShutdownBlock to close (or ctx to end) when it is set.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenErr     error
	ShutdownErr   error
	ShutdownBlock chan struct{}

	listenCalls   atomic.Int32
	shutdownCalls atomic.Int32
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listenCalls.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls.Add(1)
	if s.ShutdownBlock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ShutdownBlock:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int { return int(s.listenCalls.Load()) }

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int { return int(s.shutdownCalls.Load()) }
