// Package httpapi exposes the geopolymer mix design engine as a JSON API.
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server hosts the mix design API on a single address.
type Server struct {
	addr   string
	router *mux.Router
}

// NewServer wires the API routes under /api/v1 with per-IP rate limiting.
func NewServer(addr string) *Server {
	s := &Server{
		addr:   addr,
		router: mux.NewRouter(),
	}

	limiter := NewIPRateLimiter(10, 20)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/mix/design", handleDesign).Methods("POST")
	api.HandleFunc("/mix/check", handleCheck).Methods("POST")
	api.HandleFunc("/mix/report", handleReport).Methods("POST")
	api.HandleFunc("/materials", handleMaterials).Methods("GET")
	api.HandleFunc("/version", handleVersion).Methods("GET")

	return s
}

// Handler returns the full request handler, including CORS headers.
func (s *Server) Handler() http.Handler {
	return corsMiddleware(s.router)
}

// Run serves requests until ctx is cancelled, then drains open connections.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Mix design API listening on %s", s.addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Println("Server shutdown complete")
	return nil
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
