package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/healthnews/curator/internal/config"
	"github.com/healthnews/curator/internal/enrich"
	"github.com/healthnews/curator/internal/feed"
	"github.com/healthnews/curator/internal/models"
	"github.com/healthnews/curator/internal/pipeline"
	"github.com/healthnews/curator/internal/ratelimit"
	"github.com/healthnews/curator/internal/state"
	"github.com/healthnews/curator/internal/store"
	"github.com/healthnews/curator/internal/testutil"
)

// newTestServer wires a server with no enrichment credential, so all
// enrichment degrades to fallback content without network calls.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	logger := testutil.NullLogger()
	adapter := feed.New(feed.Config{
		MaxItems:     10,
		FetchTimeout: time.Second,
	}, ratelimit.New(0), logger)
	enricher := enrich.New(config.EnrichmentConfig{
		Timeout:    time.Second,
		MaxRetries: 1,
		BaseDelay:  time.Millisecond,
	}, logger)
	st := state.NewStore()
	processor := pipeline.New(st, enricher, config.PipelineConfig{}, logger)

	return New(context.Background(), st, store.New(), adapter, enricher, processor, logger)
}

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func get(t *testing.T, handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestHandleGetState(t *testing.T) {
	s := newTestServer(t)

	rr := get(t, s.handleGetState, "/api/state")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var snap state.AppState
	if err := json.Unmarshal(rr.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.CurrentScreen != models.ScreenLoader {
		t.Errorf("currentScreen = %q, want loader", snap.CurrentScreen)
	}
}

func TestHandleLoad_Demo(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleLoad, "/api/load", `{"source":"demo"}`)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rr.Code, rr.Body.String())
	}

	snap := s.state.Snapshot()
	if len(snap.Articles) != 8 {
		t.Errorf("len(Articles) = %d, want 8", len(snap.Articles))
	}
	if snap.CurrentScreen != models.ScreenProcessing {
		t.Errorf("CurrentScreen = %q, want processing", snap.CurrentScreen)
	}
	if snap.ProcessingState.TotalArticles != 8 {
		t.Errorf("TotalArticles = %d, want 8", snap.ProcessingState.TotalArticles)
	}
}

func TestHandleLoad_RejectsConcurrentSessions(t *testing.T) {
	s := newTestServer(t)

	first := postJSON(t, s.handleLoad, "/api/load", `{"source":"demo"}`)
	if first.Code != http.StatusAccepted {
		t.Fatalf("first load status = %d, want 202", first.Code)
	}

	second := postJSON(t, s.handleLoad, "/api/load", `{"source":"demo"}`)
	if second.Code != http.StatusConflict {
		t.Errorf("second load status = %d, want 409", second.Code)
	}
}

func TestHandleLoad_BadSourceReleasesGuard(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleLoad, "/api/load", `{"source":"carrier-pigeon"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if s.processing.Load() {
		t.Error("processing guard still held after rejected request")
	}
}

func TestHandleLoad_FeedFailureSetsError(t *testing.T) {
	s := newTestServer(t)

	// No relays are configured, so a valid URL still cannot be fetched.
	rr := postJSON(t, s.handleLoad, "/api/load", `{"source":"rss","url":"https://example.org/feed.xml"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	snap := s.state.Snapshot()
	if snap.Error == nil {
		t.Fatal("state error not set after feed failure")
	}
	if snap.CurrentScreen != models.ScreenLoader {
		t.Errorf("CurrentScreen = %q, failed load must not leave the loader", snap.CurrentScreen)
	}
	if s.processing.Load() {
		t.Error("processing guard still held after feed failure")
	}
}

func TestHandleLoad_InvalidFeedURL(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleLoad, "/api/load", `{"source":"rss","url":"not-a-url"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(body["error"], "valid HTTP/HTTPS feed URL") {
		t.Errorf("error message = %q", body["error"])
	}
}

func TestHandleLoad_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rr := get(t, s.handleLoad, "/api/load")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestHandleGetArticles(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{"all", "/api/articles", 8},
		{"search", "/api/articles?q=CRISPR", 1},
		{"category", "/api/articles?category=Medical+Breakthroughs", 2},
		{"unknown category", "/api/articles?category=Astronomy", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := get(t, s.handleGetArticles, tt.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rr.Code)
			}

			var body struct {
				Count int `json:"count"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", body.Count, tt.wantCount)
			}
		})
	}
}

func TestHandleGetArticles_BadDays(t *testing.T) {
	s := newTestServer(t)

	for _, days := range []string{"zero", "-3", "0"} {
		rr := get(t, s.handleGetArticles, "/api/articles?days="+days)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("days=%s status = %d, want 400", days, rr.Code)
		}
	}
}

func TestHandleSelectArticle(t *testing.T) {
	s := newTestServer(t)
	s.state.Dispatch(state.SetArticles{Articles: []models.Article{
		{ID: "a1", Title: "First", Summary: &models.Summary{Confidence: 0.9}},
		{ID: "a2", Title: "Second", Summary: &models.Summary{Confidence: 0.9}},
	}})

	rr := postJSON(t, s.handleSelectArticle, "/api/articles/select", `{"id":"a2"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	snap := s.state.Snapshot()
	if snap.CurrentScreen != models.ScreenArticle {
		t.Errorf("CurrentScreen = %q, want article", snap.CurrentScreen)
	}
	if snap.SelectedArticle == nil || snap.SelectedArticle.ID != "a2" {
		t.Errorf("SelectedArticle = %+v, want a2", snap.SelectedArticle)
	}
}

func TestHandleSelectArticle_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.state.Dispatch(state.SetArticles{Articles: []models.Article{{ID: "a1"}}})

	rr := postJSON(t, s.handleSelectArticle, "/api/articles/select", `{"id":"missing"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandleSelectArticle_MissingID(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleSelectArticle, "/api/articles/select", `{}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleNavigate(t *testing.T) {
	s := newTestServer(t)
	s.state.Dispatch(state.SetArticles{Articles: []models.Article{
		{ID: "a1", Summary: &models.Summary{}},
	}})
	s.state.SelectArticle(&models.Article{ID: "a1"})

	rr := postJSON(t, s.handleNavigate, "/api/navigate", `{"screen":"feed"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	snap := s.state.Snapshot()
	if snap.CurrentScreen != models.ScreenFeed {
		t.Errorf("CurrentScreen = %q, want feed", snap.CurrentScreen)
	}
	if snap.SelectedArticle != nil {
		t.Error("leaving the article screen must drop the selection")
	}
}

func TestHandleNavigate_UnknownScreen(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleNavigate, "/api/navigate", `{"screen":"settings"}`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleSetFilter(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleSetFilter, "/api/filter", `{"category":"Mental Health","searchTerm":"sleep"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	filter := s.state.Snapshot().Filter
	if filter.Category != models.CategoryMentalHealth || filter.SearchTerm != "sleep" {
		t.Errorf("Filter = %+v", filter)
	}
}

func TestHandleRefresh_Toggles(t *testing.T) {
	s := newTestServer(t)

	rr := postJSON(t, s.handleRefresh, "/api/refresh", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !s.state.Snapshot().IsRefreshing {
		t.Error("IsRefreshing = false after first toggle")
	}

	postJSON(t, s.handleRefresh, "/api/refresh", "")
	if s.state.Snapshot().IsRefreshing {
		t.Error("IsRefreshing = true after second toggle")
	}
}

func TestHandlePopularFeeds(t *testing.T) {
	s := newTestServer(t)

	rr := get(t, s.handlePopularFeeds, "/api/feeds/popular")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var body struct {
		Count int `json:"count"`
		Feeds []feed.Suggestion
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Count < 2 {
		t.Errorf("count = %d, want at least 2 suggestions", body.Count)
	}
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rr := get(t, s.handleHealth, "/health")
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "healthy") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	s := newTestServer(t)
	handler := s.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight reached the wrapped handler")
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/state", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestFeedErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: %q", feed.ErrInvalidURL, "x"), "Please enter a valid HTTP/HTTPS feed URL."},
		{feed.ErrNoArticles, "No articles found in the feed. Please check the URL and try again."},
		{fmt.Errorf("%w: bad xml", feed.ErrParse), "The feed could not be parsed. It may not be valid RSS or Atom."},
		{fmt.Errorf("%w: relay down", feed.ErrFetchFailed), "Unable to reach the feed. Please check the URL and try again."},
		{errors.New("something else"), "something else"},
	}

	for _, tt := range tests {
		if got := feedErrorMessage(tt.err); got != tt.want {
			t.Errorf("feedErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
