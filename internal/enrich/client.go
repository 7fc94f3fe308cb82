// Package enrich produces the AI-derived view of an article: a two-line
// summary, three ranked takeaways, and a plain-language rewrite. The client
// never fails outward; any internal failure degrades to deterministic
// fallback content so the pipeline always completes.
package enrich

import (
	"context"
	"sync"
	"time"

	"github.com/healthnews/curator/internal/config"
	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/models"
)

// Completer issues one prompt to the external model.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// Client wraps the enrichment transport with retries, response validation,
// and fallbacks.
type Client struct {
	transport  Completer
	available  bool
	maxRetries int
	baseDelay  time.Duration
	logger     *logging.Logger
	now        func() time.Time
}

// New builds a client from configuration. A missing API key switches the
// whole client into fallback mode; that is a recognized condition, not an
// error.
func New(cfg config.EnrichmentConfig, logger *logging.Logger) *Client {
	available := cfg.APIKey != ""
	if !available {
		logger.Warn("No enrichment API key configured, running in fallback mode")
	}
	return &Client{
		transport:  NewTransport(cfg.Endpoint, cfg.APIKey, cfg.Model, cfg.Timeout),
		available:  available,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
		logger:     logger,
		now:        time.Now,
	}
}

// NewWithTransport builds a client over a caller-supplied transport.
func NewWithTransport(transport Completer, maxRetries int, baseDelay time.Duration, logger *logging.Logger) *Client {
	return &Client{
		transport:  transport,
		available:  true,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		logger:     logger,
		now:        time.Now,
	}
}

// Enrich returns the article with summary, takeaways, and simplified content
// populated and IsProcessing cleared. The three sub-operations run
// concurrently; each falls back independently, so Enrich never fails.
func (c *Client) Enrich(ctx context.Context, article models.Article) models.Article {
	start := c.now()

	var (
		wg         sync.WaitGroup
		summary    *models.Summary
		takeaways  []models.Takeaway
		simplified string
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary = c.Summarize(ctx, article)
	}()
	go func() {
		defer wg.Done()
		takeaways = c.ExtractTakeaways(ctx, article)
	}()
	go func() {
		defer wg.Done()
		simplified = c.Simplify(ctx, article)
	}()
	wg.Wait()

	article.Summary = summary
	article.Takeaways = takeaways
	article.SimplifiedContent = simplified
	article.IsProcessing = false

	c.logger.Info("Article enriched", logging.WithFields(map[string]interface{}{
		"id":          article.ID,
		"duration_ms": c.now().Sub(start).Milliseconds(),
	}))
	return article
}

// Summarize produces the two-line synopsis. The result always holds exactly
// two lines, real or fallback.
func (c *Client) Summarize(ctx context.Context, article models.Article) *models.Summary {
	start := c.now()
	if !c.available {
		return fallbackSummary(start, c.now)
	}

	payload, err := withRetry(ctx, c.maxRetries, c.baseDelay, func() (string, error) {
		return c.transport.Complete(ctx, summaryPrompt(article), summaryTemperature, summaryMaxTokens)
	})
	if err != nil {
		c.logger.Warn("Summary generation failed, using fallback", logging.WithFields(map[string]interface{}{
			"id":    article.ID,
			"error": err.Error(),
		}))
		return fallbackSummary(start, c.now)
	}

	tldr, confidence, err := parseSummary(payload)
	if err != nil {
		c.logger.Warn("Summary response malformed, using fallback", logging.WithFields(map[string]interface{}{
			"id":    article.ID,
			"error": err.Error(),
		}))
		return fallbackSummary(start, c.now)
	}

	return &models.Summary{
		TLDR:           tldr,
		Confidence:     confidence,
		ProcessingTime: c.now().Sub(start).Milliseconds(),
		CreatedAt:      c.now(),
	}
}

// ExtractTakeaways produces exactly three importance-ranked points, real or
// fallback.
func (c *Client) ExtractTakeaways(ctx context.Context, article models.Article) []models.Takeaway {
	if !c.available {
		return fallbackTakeaways()
	}

	payload, err := withRetry(ctx, c.maxRetries, c.baseDelay, func() (string, error) {
		return c.transport.Complete(ctx, takeawaysPrompt(article), takeawaysTemperature, takeawaysMaxTokens)
	})
	if err != nil {
		c.logger.Warn("Takeaway extraction failed, using fallback", logging.WithFields(map[string]interface{}{
			"id":    article.ID,
			"error": err.Error(),
		}))
		return fallbackTakeaways()
	}

	takeaways, err := parseTakeaways(payload)
	if err != nil {
		c.logger.Warn("Takeaways response malformed, using fallback", logging.WithFields(map[string]interface{}{
			"id":    article.ID,
			"error": err.Error(),
		}))
		return fallbackTakeaways()
	}
	return takeaways
}

// Simplify produces the plain-language rewrite. On failure or a missing
// credential it returns the original content unchanged; it never fabricates
// simplified text it cannot produce.
func (c *Client) Simplify(ctx context.Context, article models.Article) string {
	if !c.available {
		return article.Content
	}

	payload, err := withRetry(ctx, c.maxRetries, c.baseDelay, func() (string, error) {
		return c.transport.Complete(ctx, simplifyPrompt(article), simplifyTemperature, simplifyMaxTokens)
	})
	if err != nil {
		c.logger.Warn("Simplification failed, keeping original content", logging.WithFields(map[string]interface{}{
			"id":    article.ID,
			"error": err.Error(),
		}))
		return article.Content
	}

	simplified := payload
	if simplified == "" {
		return article.Content
	}
	return simplified
}
