package enrich

import (
	"fmt"

	"github.com/healthnews/curator/internal/models"
)

// Per-operation model parameters. Summaries want tight, deterministic output;
// the rewrite tolerates more variation and needs a larger budget.
const (
	summaryTemperature = 0.3
	summaryMaxTokens   = 200

	takeawaysTemperature = 0.4
	takeawaysMaxTokens   = 400

	simplifyTemperature = 0.5
	simplifyMaxTokens   = 1000
)

func summaryPrompt(article models.Article) string {
	return fmt.Sprintf(`As a medical news expert, create a concise 2-line summary of this health article.

Article Title: %s
Content: %s

Requirements:
- Exactly 2 sentences
- First line: Main finding or development
- Second line: Why it matters or impact
- Use simple, clear language
- Avoid medical jargon
- Keep each line under 80 characters

Format your response as JSON:
{
  "line1": "First summary line",
  "line2": "Second summary line",
  "confidence": 0.95
}`, article.Title, article.Content)
}

func takeawaysPrompt(article models.Article) string {
	return fmt.Sprintf(`Extract exactly 3 key medical takeaways from this health article.

Article: %s
Content: %s

Requirements:
- Identify the 3 most important medical insights
- Rate importance: high, medium, or low
- Categorize each takeaway
- Use patient-friendly language
- Focus on practical implications

Format as JSON array:
[
  {
    "point": "Clear, actionable takeaway",
    "importance": "high",
    "category": "Treatment",
    "explanation": "Brief explanation why this matters"
  }
]`, article.Title, article.Content)
}

func simplifyPrompt(article models.Article) string {
	return fmt.Sprintf(`Rewrite this medical article in simple, friendly language that anyone can understand.

Original Article:
Title: %s
Content: %s

Requirements:
- Use everyday language, avoid medical jargon
- Maintain scientific accuracy
- Make it engaging and easy to read
- Include why this matters to regular people
- Keep the same key information but make it accessible
- Use short paragraphs and clear explanations

Write a complete, simplified article:`, article.Title, article.Content)
}
