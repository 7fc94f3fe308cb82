package models

import "time"

// HealthCategory is the fixed set of health-news categories.
type HealthCategory string

const (
	CategoryMedicalBreakthroughs HealthCategory = "Medical Breakthroughs"
	CategoryPublicHealth         HealthCategory = "Public Health"
	CategoryTreatmentAdvances    HealthCategory = "Treatment Advances"
	CategoryPreventionTips       HealthCategory = "Prevention Tips"
	CategoryMentalHealth         HealthCategory = "Mental Health"
	CategoryNutritionResearch    HealthCategory = "Nutrition Research"
	CategoryHealthcareTechnology HealthCategory = "Healthcare Technology"
	CategoryDrugDevelopment      HealthCategory = "Drug Development"
	CategoryClinicalTrials       HealthCategory = "Clinical Trials"
	CategoryWellness             HealthCategory = "Wellness"
)

// Article is a single news item, enriched or not. Summary, Takeaways, and
// SimplifiedContent stay empty until the enrichment pipeline has run.
type Article struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Content           string         `json:"content"`
	Source            string         `json:"source"`
	PublishedAt       time.Time      `json:"publishedAt"`
	Category          HealthCategory `json:"category"`
	URL               string         `json:"url,omitempty"`
	ImageURL          string         `json:"imageUrl,omitempty"`
	Summary           *Summary       `json:"summary,omitempty"`
	Takeaways         []Takeaway     `json:"takeaways,omitempty"`
	SimplifiedContent string         `json:"simplifiedContent,omitempty"`
	IsProcessing      bool           `json:"isProcessing,omitempty"`
}

// Enriched reports whether the article already carries a summary.
func (a Article) Enriched() bool {
	return a.Summary != nil
}

// Summary is a two-line synopsis. TLDR always holds exactly two lines;
// the enrichment client enforces this even for malformed model output.
type Summary struct {
	TLDR           [2]string `json:"tldr"`
	Confidence     float64   `json:"confidence"`
	ProcessingTime int64     `json:"processingTime"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Importance ranks a takeaway.
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Takeaway is one key point extracted from an article. An enriched article
// carries exactly three, enforced by construction and fallback.
type Takeaway struct {
	Point       string     `json:"point"`
	Importance  Importance `json:"importance"`
	Category    string     `json:"category"`
	Explanation string     `json:"explanation,omitempty"`
}

// Screen identifies one of the four top-level UI states.
type Screen string

const (
	ScreenLoader     Screen = "loader"
	ScreenProcessing Screen = "processing"
	ScreenFeed       Screen = "feed"
	ScreenArticle    Screen = "article"
)

// ProcessingState tracks one enrichment session. Progress is 0-100 and
// monotonically non-decreasing within a session.
type ProcessingState struct {
	IsLoading         bool   `json:"isLoading"`
	CurrentStep       string `json:"currentStep"`
	Progress          int    `json:"progress"`
	ArticlesProcessed int    `json:"articlesProcessed"`
	TotalArticles     int    `json:"totalArticles"`
}

// DateRange bounds a filter by publication date.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewsFilter holds the user's filter selection. The fields are stored and
// round-tripped to the UI but not yet applied to the rendered feed; feed
// filtering is pending a product decision.
type NewsFilter struct {
	Category   HealthCategory `json:"category,omitempty"`
	DateRange  *DateRange     `json:"dateRange,omitempty"`
	SearchTerm string         `json:"searchTerm,omitempty"`
}
