package server

import (
	"context"
	"net/http"
	"time"
)

// Server wraps http.Server with a channel surfacing the ListenAndServe
// result, so the app can select between it and OS signals.
type Server struct {
	httpServer *http.Server
	notify     chan error
}

func New(address string, timeout, idleTimeout time.Duration, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         address,
			Handler:      handler,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			IdleTimeout:  idleTimeout,
		},
		notify: make(chan error, 1),
	}
}

func (s *Server) Start() {
	go func() {
		s.notify <- s.httpServer.ListenAndServe()
		close(s.notify)
	}()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
