// Package pipeline orchestrates enrichment: it walks un-enriched articles one
// at a time, feeds them through the enrichment client, and reports progress
// through the state store.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthnews/curator/internal/config"
	"github.com/healthnews/curator/internal/logging"
	"github.com/healthnews/curator/internal/models"
	"github.com/healthnews/curator/internal/state"
)

// Enricher produces the AI-derived view of one article. It must always
// return a completed article; the pipeline has no failure path for it.
type Enricher interface {
	Enrich(ctx context.Context, article models.Article) models.Article
}

// phase is one conceptual step of an article's enrichment. The weights form
// an explicit progress table decoupled from the actual call structure: the
// enrichment itself is a single combined operation, but the UI contract
// reports three steps per article.
type phase struct {
	label  string
	weight float64
	pause  time.Duration
}

var phases = []phase{
	{label: "Generating AI summary", weight: 1.0 / 3},
	{label: "Extracting key insights", weight: 1.0 / 3, pause: 500 * time.Millisecond},
	{label: "Simplifying medical language", weight: 1.0 / 3, pause: 300 * time.Millisecond},
}

// progressCeiling caps loop-time progress so the bar never reads 100% before
// work is truly finished, even under rounding.
const progressCeiling = 95

// Processor runs one enrichment session at a time over the state store.
type Processor struct {
	store           *state.Store
	enricher        Enricher
	completionDelay time.Duration
	logger          *logging.Logger
	sleep           func(time.Duration)
}

// New creates a processor.
func New(store *state.Store, enricher Enricher, cfg config.PipelineConfig, logger *logging.Logger) *Processor {
	return &Processor{
		store:           store,
		enricher:        enricher,
		completionDelay: cfg.CompletionDelay,
		logger:          logger,
		sleep:           time.Sleep,
	}
}

// Run enriches every article currently lacking a summary, strictly one at a
// time, then fires the completion transition. Progress only ever moves
// forward; it reaches 100 exactly once, after the last article.
func (p *Processor) Run(ctx context.Context) {
	session := uuid.NewString()
	pending := p.pendingArticles()

	p.logger.Info("Processing session started", logging.WithFields(map[string]interface{}{
		"session":  session,
		"articles": len(pending),
	}))

	totalWeight := float64(len(pending))
	for i, article := range pending {
		if ctx.Err() != nil {
			p.logger.Warn("Processing session aborted", logging.WithField("session", session))
			return
		}

		article.IsProcessing = true
		p.store.Dispatch(state.UpdateArticle{Article: article})

		completedWeight := float64(i)
		for phaseIdx, ph := range phases {
			completedWeight += ph.weight
			p.store.UpdateProcessingProgress(
				fmt.Sprintf("%s for %q...", ph.label, truncateTitle(article.Title)),
				scaleProgress(completedWeight, totalWeight),
				i,
			)

			if phaseIdx == 0 {
				enriched := p.enricher.Enrich(ctx, article)
				p.store.Dispatch(state.UpdateArticle{Article: enriched})
			} else if ph.pause > 0 {
				p.sleep(ph.pause)
			}
		}
	}

	p.store.UpdateProcessingProgress("All articles processed successfully!", 100, len(pending))
	p.sleep(p.completionDelay)
	p.store.Dispatch(state.CompleteProcessing{})

	p.logger.Info("Processing session complete", logging.WithFields(map[string]interface{}{
		"session":  session,
		"articles": len(pending),
	}))
}

func (p *Processor) pendingArticles() []models.Article {
	snap := p.store.Snapshot()
	pending := make([]models.Article, 0, len(snap.Articles))
	for _, a := range snap.Articles {
		if !a.Enriched() {
			pending = append(pending, a)
		}
	}
	return pending
}

func scaleProgress(completedWeight, totalWeight float64) int {
	if totalWeight <= 0 {
		return progressCeiling
	}
	progress := int(completedWeight / totalWeight * 100)
	if progress > progressCeiling {
		return progressCeiling
	}
	return progress
}

func truncateTitle(title string) string {
	const max = 50
	if len(title) <= max {
		return title
	}
	return title[:max]
}
