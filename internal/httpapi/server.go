// Package httpapi exposes the JSON API the single-page UI consumes.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/healthnews/curator/internal/enrich"
	"github.com/healthnews/curator/internal/feed"
	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/pipeline"
	"github.com/healthnews/curator/internal/state"
	"github.com/healthnews/curator/internal/store"
)

// Server hosts the news API.
type Server struct {
	state     *state.Store
	articles  *store.Store
	adapter   *feed.Adapter
	enricher  *enrich.Client
	processor *pipeline.Processor
	logger    *logging.Logger
	server    *http.Server

	// processing guards against overlapping enrichment sessions; one
	// runs at a time.
	processing atomic.Bool

	// baseCtx scopes background processing runs to the application
	// lifetime rather than a single request.
	baseCtx context.Context
}

// New creates the API server.
func New(baseCtx context.Context, st *state.Store, articles *store.Store, adapter *feed.Adapter, enricher *enrich.Client, processor *pipeline.Processor, logger *logging.Logger) *Server {
	return &Server{
		state:     st,
		articles:  articles,
		adapter:   adapter,
		enricher:  enricher,
		processor: processor,
		logger:    logger,
		baseCtx:   baseCtx,
	}
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/state", s.corsMiddleware(s.handleGetState))
	mux.HandleFunc("/api/load", s.corsMiddleware(s.handleLoad))
	mux.HandleFunc("/api/articles", s.corsMiddleware(s.handleGetArticles))
	mux.HandleFunc("/api/articles/select", s.corsMiddleware(s.handleSelectArticle))
	mux.HandleFunc("/api/navigate", s.corsMiddleware(s.handleNavigate))
	mux.HandleFunc("/api/filter", s.corsMiddleware(s.handleSetFilter))
	mux.HandleFunc("/api/refresh", s.corsMiddleware(s.handleRefresh))
	mux.HandleFunc("/api/feeds/popular", s.corsMiddleware(s.handlePopularFeeds))
	mux.HandleFunc("/api/feeds/probe", s.corsMiddleware(s.handleProbeFeed))

	mux.HandleFunc("/health", s.handleHealth)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("HTTP API server starting", logging.WithField("addr", addr))
	return s.server.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
