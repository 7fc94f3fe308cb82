package state

import "github.com/healthnews/curator/internal/models"

// Action is a named state transition. The reducer is the only code that
// interprets actions; nothing else mutates AppState.
type Action interface {
	isAction()
}

// SetScreen switches the current screen.
type SetScreen struct {
	Screen models.Screen
}

// SetArticles replaces the article list.
type SetArticles struct {
	Articles []models.Article
}

// SetSelectedArticle replaces the selection. A nil article clears it.
type SetSelectedArticle struct {
	Article *models.Article
}

// UpdateArticle replaces one article by id match, refreshing the selection
// when it points at the same article.
type UpdateArticle struct {
	Article models.Article
}

// SetProcessingState replaces the processing state wholesale.
type SetProcessingState struct {
	State models.ProcessingState
}

// UpdateProgress advances the processing step label, progress, and processed
// count. Progress is clamped so it never decreases within a session.
type UpdateProgress struct {
	Step      string
	Progress  int
	Processed int
}

// SetFilter replaces the stored filter selection.
type SetFilter struct {
	Filter models.NewsFilter
}

// SetRefreshing sets the refresh flag.
type SetRefreshing struct {
	Refreshing bool
}

// SetError sets or clears the user-visible error message.
type SetError struct {
	Message *string
}

// StartProcessing seeds a new processing session and switches to the
// processing screen. It is the only action that resets progress.
type StartProcessing struct {
	Total int
}

// CompleteProcessing finishes the session: feed screen, progress forced to
// 100, completion step label.
type CompleteProcessing struct{}

func (SetScreen) isAction()          {}
func (SetArticles) isAction()        {}
func (SetSelectedArticle) isAction() {}
func (UpdateArticle) isAction()      {}
func (SetProcessingState) isAction() {}
func (UpdateProgress) isAction()     {}
func (SetFilter) isAction()          {}
func (SetRefreshing) isAction()      {}
func (SetError) isAction()           {}
func (StartProcessing) isAction()    {}
func (CompleteProcessing) isAction() {}
