package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-tracker/config"
	"github.com/theoremus-urban-solutions/transit-tracker/store"
)

// Server serves the tracker API for one shared Manager instance.
type Server struct {
	cfg     *config.AppConfig
	manager *store.Manager
	httpSrv *http.Server
}

// New creates the API server.
func New(cfg *config.AppConfig, manager *store.Manager) *Server {
	s := &Server{cfg: cfg, manager: manager}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/agencies", s.handleAgencies)
	mux.HandleFunc("GET /api/{agency}/stations.geojson", s.handleStations)
	mux.HandleFunc("GET /api/{agency}/vehicles.geojson", s.handleVehicles)
	mux.HandleFunc("GET /api/{agency}/stations/{station}/arrivals", s.handleArrivals)
	mux.HandleFunc("GET /api/{agency}/lastUpdated", s.handleLastUpdated)
	mux.HandleFunc("GET /api/{agency}/status", s.handleStatus)

	s.httpSrv = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler exposes the route table, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// Start begins listening in a background goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()
	log.Info().Str("addr", s.httpSrv.Addr).Msg("Server listening")
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
