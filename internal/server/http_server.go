package server

import (
	"context"
	"net"
	"net/http"
	"time"
)

// httpServer is the listener surface Server drives; tests substitute stubs.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// netHTTPServer adapts *http.Server. A preset listener is served instead of binding Addr.
type netHTTPServer struct {
	srv      *http.Server
	listener net.Listener
}

// newNetHTTPServer applies the shared header/idle timeouts. A zero writeTimeout leaves
// responses unbounded, which suits the scrape endpoint.
func newNetHTTPServer(addr string, handler http.Handler, writeTimeout time.Duration) netHTTPServer {
	return netHTTPServer{srv: &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}}
}

func (s netHTTPServer) ListenAndServe() error {
	if s.listener == nil {
		return s.srv.ListenAndServe()
	}
	return s.srv.Serve(s.listener)
}

func (s netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }

// Addr reports the bound address when serving a preset listener.
func (s netHTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

func (s netHTTPServer) Handler() http.Handler { return s.srv.Handler }
