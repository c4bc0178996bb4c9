package infra

import (
	"context"
	"net/http"
	"time"
)

// HTTPServer owns the listener lifecycle so main can start it in a goroutine
// and drain it on shutdown signals.
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer builds the server from config. The write timeout must outlast
// the upstream generation call, which can run for most of a minute; the
// defaults in LoadConfig keep that margin.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{server: &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
	}}
}

// Start blocks serving requests until the listener closes.
func (s *HTTPServer) Start() error {
	if s.server == nil {
		return nil
	}
	return s.server.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
