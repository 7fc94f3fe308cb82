// Package feed turns an RSS or Atom feed URL into normalized articles by
// fetching the document through a chain of public relay endpoints and parsing
// it with format fallbacks.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/models"
	"github.com/healthnews/curator/internal/ratelimit"
)

const (
	// minBodyLength guards against relays answering 200 with an error page
	// or an empty payload.
	minBodyLength = 50
	maxBodyBytes  = 4 << 20
)

// Config controls fetch behavior.
type Config struct {
	// Relays are URL templates; the encoded target feed address is
	// appended to each. Tried in order, first success wins.
	Relays       []string
	MaxItems     int
	FetchTimeout time.Duration
}

// DefaultConfig returns the standard adapter settings.
func DefaultConfig() Config {
	return Config{
		MaxItems:     10,
		FetchTimeout: 15 * time.Second,
	}
}

// Adapter fetches and normalizes one feed per call. It keeps no state across
// calls beyond the shared HTTP client and rate limiter.
type Adapter struct {
	config  Config
	client  *http.Client
	parser  *gofeed.Parser
	limiter *ratelimit.Limiter
	logger  *logging.Logger
	now     func() time.Time
}

// New creates a feed adapter.
func New(config Config, limiter *ratelimit.Limiter, logger *logging.Logger) *Adapter {
	return &Adapter{
		config:  config,
		client:  &http.Client{Timeout: config.FetchTimeout},
		parser:  gofeed.NewParser(),
		limiter: limiter,
		logger:  logger,
		now:     time.Now,
	}
}

// Validate reports whether raw is a syntactically valid HTTP/HTTPS URL.
func Validate(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch retrieves feedURL through the relay chain and returns normalized
// articles. It fails with ErrInvalidURL, ErrFetchFailed, ErrNoArticles, or
// ErrParse; no network call happens for an invalid URL.
func (a *Adapter) Fetch(ctx context.Context, feedURL string) ([]models.Article, error) {
	feedURL = strings.TrimSpace(feedURL)
	if !Validate(feedURL) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, feedURL)
	}

	var lastErr error
	for _, relay := range a.config.Relays {
		body, err := a.fetchViaRelay(ctx, relay, feedURL)
		if err != nil {
			a.logger.Warn("Relay fetch failed", logging.WithFields(map[string]interface{}{
				"relay": relay,
				"error": err.Error(),
			}))
			lastErr = err
			continue
		}

		articles, err := a.parseDocument(body, feedURL)
		if err != nil {
			a.logger.Warn("Feed document unusable", logging.WithFields(map[string]interface{}{
				"relay": relay,
				"error": err.Error(),
			}))
			lastErr = err
			continue
		}

		a.logger.Info("Feed fetched", logging.WithFields(map[string]interface{}{
			"url":      feedURL,
			"articles": len(articles),
		}))
		return articles, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no relay endpoints configured")
	}
	// A relay that delivered a document but produced no usable articles is
	// reported as such, not as a transport failure.
	if errors.Is(lastErr, ErrNoArticles) || errors.Is(lastErr, ErrParse) {
		return nil, lastErr
	}
	return nil, fmt.Errorf("%w: %v", ErrFetchFailed, lastErr)
}

func (a *Adapter) fetchViaRelay(ctx context.Context, relay, feedURL string) (string, error) {
	target := relay + url.QueryEscape(feedURL)

	if host := relayHost(target); host != "" && a.limiter != nil {
		a.limiter.Wait(host)
	}

	reqCtx, cancel := context.WithTimeout(ctx, a.config.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml, text/xml, application/atom+xml, */*")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("relay returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read relay response: %w", err)
	}
	if len(body) < minBodyLength {
		return "", errors.New("empty or invalid response body")
	}

	return string(body), nil
}

// parseDocument parses RSS 2.0 items, falling back to Atom entries and
// namespaced RSS via the universal parser, then normalizes up to MaxItems
// elements in document order.
func (a *Adapter) parseDocument(body, feedURL string) ([]models.Article, error) {
	parsed, err := a.parser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	loadedAt := a.now()
	source := sourceFromURL(feedURL)

	articles := make([]models.Article, 0, a.config.MaxItems)
	for i, item := range parsed.Items {
		if i >= a.config.MaxItems {
			break
		}

		title := cleanText(item.Title)
		if title == "" {
			// Titleless items are dropped, never fatal.
			continue
		}

		content := firstNonEmpty(item.Description, item.Content)
		content = cleanText(content)
		if content == "" {
			content = title
		}

		link := item.Link
		if link == "" && len(item.Links) > 0 {
			link = item.Links[0]
		}
		if link == "" {
			link = feedURL
		}

		articles = append(articles, models.Article{
			ID:          fmt.Sprintf("rss-%d-%d", loadedAt.UnixMilli(), i),
			Title:       title,
			Content:     content,
			Source:      source,
			PublishedAt: publishedAt(item, loadedAt),
			Category:    models.CategoryPublicHealth,
			URL:         link,
		})
	}

	if len(articles) == 0 {
		return nil, ErrNoArticles
	}
	return articles, nil
}

// publishedAt prefers pubDate/published over updated; a missing or
// unparsable date falls back to the load time rather than failing the item.
func publishedAt(item *gofeed.Item, fallback time.Time) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return fallback
}

// sourceFromURL derives a display source from the feed host: leading "www."
// stripped, reduced to the first DNS label.
func sourceFromURL(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Hostname() == "" {
		return "RSS Feed"
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	if i := strings.Index(host, "."); i > 0 {
		host = host[:i]
	}
	return host
}

func relayHost(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
