// Package store supplies the bundled demo article set and pure query filters
// over it. The seed set is immutable; every query returns copies.
package store

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/healthnews/curator/internal/models"
)

// Store holds the immutable seed articles.
type Store struct {
	articles []models.Article
	now      func() time.Time
}

// New creates a store backed by the bundled demo set.
func New() *Store {
	return &Store{
		articles: seedArticles(),
		now:      time.Now,
	}
}

// ListAll returns the full seed sequence in load order.
func (s *Store) ListAll() []models.Article {
	out := make([]models.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// ByCategory returns articles whose category matches exactly.
func (s *Store) ByCategory(category models.HealthCategory) []models.Article {
	out := make([]models.Article, 0)
	for _, a := range s.articles {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// Recent returns articles published within the last N days.
func (s *Store) Recent(days int) []models.Article {
	cutoff := s.now().AddDate(0, 0, -days)
	out := make([]models.Article, 0)
	for _, a := range s.articles {
		if a.PublishedAt.After(cutoff) {
			out = append(out, a)
		}
	}
	return out
}

// Search returns articles whose title, content, or category contains the
// term, compared case-insensitively with Unicode case folding.
func (s *Store) Search(term string) []models.Article {
	folder := cases.Fold()
	needle := folder.String(strings.TrimSpace(term))
	if needle == "" {
		return s.ListAll()
	}

	out := make([]models.Article, 0)
	for _, a := range s.articles {
		if strings.Contains(folder.String(a.Title), needle) ||
			strings.Contains(folder.String(a.Content), needle) ||
			strings.Contains(folder.String(string(a.Category)), needle) {
			out = append(out, a)
		}
	}
	return out
}
