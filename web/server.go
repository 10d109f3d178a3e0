package web

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"

	"github.com/mogaika/scene3d/status"
)

// Server exposes published snapshots, it never touches the scene graph
type Server struct {
	pub      *status.Publisher
	upgrader websocket.Upgrader
	router   *mux.Router
}

func NewServer(pub *status.Publisher) *Server {
	s := &Server{
		pub: pub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/json/scene", s.HandlerScene).Methods(http.MethodGet)
	r.HandleFunc("/json/node/{id}", s.HandlerNode).Methods(http.MethodGet)
	r.HandleFunc("/yaml/scene", s.HandlerSceneYaml).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.HandlerWs)
	s.router = r
	return s
}

// Handler wraps the router with panic recovery and access log written to out
func (s *Server) Handler(out io.Writer) http.Handler {
	h := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(s.router)
	return handlers.LoggingHandler(out, h)
}

// ListenAndServe serves until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(accessLog),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[web] Starting server %v", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrapf(err, "Failed to serve %v", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	// hijacked websocket connections are not tracked by Shutdown
	s.pub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrapf(err, "Failed to shutdown server")
	}
	return nil
}
