package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/healthnews/curator/internal/feed"
	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/models"
	"github.com/healthnews/curator/internal/state"
)

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	s.writeJSON(w, http.StatusOK, s.state.Snapshot())
}

type loadRequest struct {
	Source string `json:"source"`
	URL    string `json:"url,omitempty"`
}

// handleLoad loads articles from the demo set or a feed URL, then starts a
// processing session in the background. Feed failures block the processing
// transition and surface as the state's error message.
func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req loadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	if !s.processing.CompareAndSwap(false, true) {
		s.writeJSON(w, http.StatusConflict, map[string]string{"error": "a processing session is already running"})
		return
	}

	var articles []models.Article
	switch req.Source {
	case "rss":
		fetched, err := s.adapter.Fetch(r.Context(), req.URL)
		if err != nil {
			s.processing.Store(false)
			message := feedErrorMessage(err)
			s.state.SetError(message)
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": message})
			return
		}
		articles = fetched
	case "demo", "":
		articles = s.articles.ListAll()
	default:
		s.processing.Store(false)
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "source must be \"demo\" or \"rss\""})
		return
	}

	s.state.SetError("")
	s.state.Dispatch(state.SetArticles{Articles: articles})
	s.state.Dispatch(state.StartProcessing{Total: len(articles)})

	go func() {
		defer s.processing.Store(false)
		s.processor.Run(s.baseCtx)
	}()

	s.writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"status":   "processing",
		"articles": len(articles),
	})
}

// handleGetArticles serves the seed store's pure queries: ?q= search,
// ?category= exact match, ?days= recency window.
func (s *Server) handleGetArticles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	query := r.URL.Query()

	var articles []models.Article
	switch {
	case query.Get("q") != "":
		articles = s.articles.Search(query.Get("q"))
	case query.Get("category") != "":
		articles = s.articles.ByCategory(models.HealthCategory(query.Get("category")))
	case query.Get("days") != "":
		days, err := strconv.Atoi(query.Get("days"))
		if err != nil || days <= 0 {
			s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "days must be a positive integer"})
			return
		}
		articles = s.articles.Recent(days)
	default:
		articles = s.articles.ListAll()
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"articles": articles,
		"count":    len(articles),
	})
}

type selectRequest struct {
	ID string `json:"id"`
}

// handleSelectArticle selects an article by id and forces the article
// screen. Selecting an un-enriched article kicks off its enrichment in the
// background; the result merges back by id.
func (s *Server) handleSelectArticle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "article id required"})
		return
	}

	snap := s.state.Snapshot()
	var selected *models.Article
	for i := range snap.Articles {
		if snap.Articles[i].ID == req.ID {
			selected = &snap.Articles[i]
			break
		}
	}
	if selected == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "article not found"})
		return
	}

	s.state.SelectArticle(selected)

	if !selected.Enriched() {
		article := *selected
		go func() {
			enriched := s.enricher.Enrich(s.baseCtx, article)
			s.state.Dispatch(state.UpdateArticle{Article: enriched})
		}()
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "selected",
		"id":     req.ID,
	})
}

type navigateRequest struct {
	Screen models.Screen `json:"screen"`
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	switch req.Screen {
	case models.ScreenLoader, models.ScreenProcessing, models.ScreenFeed, models.ScreenArticle:
	default:
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown screen"})
		return
	}

	// Navigating away from the article screen drops the selection.
	if req.Screen != models.ScreenArticle {
		s.state.Dispatch(state.SetSelectedArticle{})
	}
	s.state.SetScreen(req.Screen)

	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"screen": string(req.Screen),
	})
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var filter models.NewsFilter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	s.state.SetFilter(filter)
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	s.state.ToggleRefresh()
	s.writeJSON(w, http.StatusOK, map[string]bool{
		"isRefreshing": s.state.Snapshot().IsRefreshing,
	})
}

func (s *Server) handlePopularFeeds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	feeds := feed.PopularFeeds()
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"feeds": feeds,
		"count": len(feeds),
	})
}

type probeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleProbeFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req probeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "feed url required"})
		return
	}

	start := time.Now()
	count, err := s.adapter.Probe(r.Context(), req.URL)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": feedErrorMessage(err)})
		return
	}

	s.logger.Info("Feed probe succeeded", logging.WithFields(map[string]interface{}{
		"url":         req.URL,
		"articles":    count,
		"duration_ms": time.Since(start).Milliseconds(),
	}))
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "valid",
		"articles": count,
	})
}

// feedErrorMessage maps the feed error taxonomy to the single user-visible
// message the UI displays inline.
func feedErrorMessage(err error) string {
	switch {
	case errors.Is(err, feed.ErrInvalidURL):
		return "Please enter a valid HTTP/HTTPS feed URL."
	case errors.Is(err, feed.ErrNoArticles):
		return "No articles found in the feed. Please check the URL and try again."
	case errors.Is(err, feed.ErrParse):
		return "The feed could not be parsed. It may not be valid RSS or Atom."
	case errors.Is(err, feed.ErrFetchFailed):
		return "Unable to reach the feed. Please check the URL and try again."
	default:
		return err.Error()
	}
}
