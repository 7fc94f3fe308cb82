package feed

import "context"

// Suggestion is a curated feed the UI offers as a starting point.
type Suggestion struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// PopularFeeds returns the curated health feed suggestions.
func PopularFeeds() []Suggestion {
	return []Suggestion{
		{
			Name:        "ScienceDaily Health",
			URL:         "https://www.sciencedaily.com/rss/health_medicine.xml",
			Description: "Latest health and medicine research",
		},
		{
			Name:        "Reuters Health",
			URL:         "https://www.reuters.com/arc/outboundfeeds/rss/category/health/?outputType=xml",
			Description: "Global health news and medical research",
		},
	}
}

// Probe validates a feed URL by fetching it and reports how many articles it
// yields. Used by the UI's feed-test action before committing to a load.
func (a *Adapter) Probe(ctx context.Context, feedURL string) (int, error) {
	articles, err := a.Fetch(ctx, feedURL)
	if err != nil {
		return 0, err
	}
	return len(articles), nil
}
