package enrich

import (
	"time"

	"github.com/healthnews/curator/internal/models"
)

// Deterministic substitute content used whenever the external model cannot be
// reached or returns an unusable payload. A degraded result is always
// preferred over a blocked pipeline.

func fallbackSummary(start time.Time, now func() time.Time) *models.Summary {
	return &models.Summary{
		TLDR: [2]string{
			"Health research continues to advance medical understanding.",
			"This development may impact patient care and treatment options.",
		},
		Confidence:     0.5,
		ProcessingTime: now().Sub(start).Milliseconds(),
		CreatedAt:      now(),
	}
}

func fallbackTakeaways() []models.Takeaway {
	return []models.Takeaway{
		{
			Point:       "New research provides insights into health and wellness",
			Importance:  models.ImportanceHigh,
			Category:    "Research",
			Explanation: "Understanding these findings can help inform healthcare decisions",
		},
		{
			Point:       "Medical professionals recommend staying informed about developments",
			Importance:  models.ImportanceMedium,
			Category:    "Professional Advice",
			Explanation: "Staying current with medical news helps patients make informed choices",
		},
		{
			Point:       "Further research may be needed to confirm these findings",
			Importance:  models.ImportanceMedium,
			Category:    "Research Status",
			Explanation: "Medical research is ongoing and findings continue to evolve",
		},
	}
}
