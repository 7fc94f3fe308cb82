// Package state holds the single source of truth for the application. All
// mutation is routed through one dispatch gate; the reducer is a pure
// function of (state, action) and performs no I/O.
package state

import (
	"sync"

	"github.com/healthnews/curator/internal/models"
)

// AppState is the aggregate the UI renders. Screens derive views from
// snapshots of it and hold no independent copies.
type AppState struct {
	Articles        []models.Article       `json:"articles"`
	CurrentScreen   models.Screen          `json:"currentScreen"`
	SelectedArticle *models.Article        `json:"selectedArticle"`
	ProcessingState models.ProcessingState `json:"processingState"`
	Filter          models.NewsFilter      `json:"filter"`
	IsRefreshing    bool                   `json:"isRefreshing"`
	Error           *string                `json:"error"`
}

func initialState() AppState {
	return AppState{
		Articles:      []models.Article{},
		CurrentScreen: models.ScreenLoader,
	}
}

// Store serializes all state mutation through Dispatch.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

// NewStore creates a store in the loader screen with no articles.
func NewStore() *Store {
	return &Store{state: initialState()}
}

// Dispatch applies one action through the reducer.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, action)
}

// Snapshot returns a copy of the current state safe for concurrent readers.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	snap.Articles = make([]models.Article, len(s.state.Articles))
	copy(snap.Articles, s.state.Articles)
	if s.state.SelectedArticle != nil {
		selected := *s.state.SelectedArticle
		snap.SelectedArticle = &selected
	}
	return snap
}

// SetScreen switches the current screen.
func (s *Store) SetScreen(screen models.Screen) {
	s.Dispatch(SetScreen{Screen: screen})
}

// SelectArticle sets the selection; a non-nil article also forces the
// article screen.
func (s *Store) SelectArticle(article *models.Article) {
	s.Dispatch(SetSelectedArticle{Article: article})
	if article != nil {
		s.Dispatch(SetScreen{Screen: models.ScreenArticle})
	}
}

// UpdateProcessingProgress is the sole externally exposed progress mutator.
// The reducer clamps the new value so progress never decreases within a
// session; only StartProcessing resets it.
func (s *Store) UpdateProcessingProgress(step string, progress, articlesProcessed int) {
	s.Dispatch(UpdateProgress{Step: step, Progress: progress, Processed: articlesProcessed})
}

// SetFilter replaces the stored filter.
func (s *Store) SetFilter(filter models.NewsFilter) {
	s.Dispatch(SetFilter{Filter: filter})
}

// ToggleRefresh flips the refresh flag.
func (s *Store) ToggleRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduce(s.state, SetRefreshing{Refreshing: !s.state.IsRefreshing})
}

// SetError sets the user-visible error message; empty clears it.
func (s *Store) SetError(message string) {
	if message == "" {
		s.Dispatch(SetError{})
		return
	}
	s.Dispatch(SetError{Message: &message})
}

func reduce(state AppState, action Action) AppState {
	switch a := action.(type) {
	case SetScreen:
		state.CurrentScreen = a.Screen

	case SetArticles:
		state.Articles = a.Articles

	case SetSelectedArticle:
		state.SelectedArticle = a.Article

	case UpdateArticle:
		articles := make([]models.Article, len(state.Articles))
		for i, existing := range state.Articles {
			if existing.ID == a.Article.ID {
				articles[i] = a.Article
			} else {
				articles[i] = existing
			}
		}
		state.Articles = articles
		if state.SelectedArticle != nil && state.SelectedArticle.ID == a.Article.ID {
			updated := a.Article
			state.SelectedArticle = &updated
		}

	case SetProcessingState:
		state.ProcessingState = a.State

	case UpdateProgress:
		ps := state.ProcessingState
		ps.CurrentStep = a.Step
		if a.Progress > ps.Progress {
			ps.Progress = a.Progress
		}
		ps.ArticlesProcessed = a.Processed
		state.ProcessingState = ps

	case SetFilter:
		state.Filter = a.Filter

	case SetRefreshing:
		state.IsRefreshing = a.Refreshing

	case SetError:
		state.Error = a.Message

	case StartProcessing:
		state.CurrentScreen = models.ScreenProcessing
		state.ProcessingState = models.ProcessingState{
			IsLoading:     true,
			CurrentStep:   "Analyzing articles...",
			TotalArticles: a.Total,
		}

	case CompleteProcessing:
		state.CurrentScreen = models.ScreenFeed
		state.ProcessingState.IsLoading = false
		state.ProcessingState.CurrentStep = "Complete!"
		state.ProcessingState.Progress = 100
	}

	return state
}
