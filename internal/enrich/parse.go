package enrich

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/healthnews/curator/internal/models"
)

// Models routinely wrap JSON in markdown fences or prose. extractJSON pulls
// the first object or array out of the payload before decoding.
func extractJSON(payload string) string {
	payload = strings.TrimSpace(payload)
	if fenced, ok := stripFences(payload); ok {
		payload = fenced
	}

	objStart := strings.IndexByte(payload, '{')
	arrStart := strings.IndexByte(payload, '[')

	start, end := objStart, strings.LastIndexByte(payload, '}')
	if objStart == -1 || (arrStart != -1 && arrStart < objStart) {
		start, end = arrStart, strings.LastIndexByte(payload, ']')
	}
	if start == -1 || end <= start {
		return payload
	}
	return payload[start : end+1]
}

func stripFences(payload string) (string, bool) {
	if !strings.HasPrefix(payload, "```") {
		return "", false
	}
	body := strings.TrimPrefix(payload, "```")
	if i := strings.IndexByte(body, '\n'); i != -1 {
		body = body[i+1:]
	}
	if i := strings.LastIndex(body, "```"); i != -1 {
		body = body[:i]
	}
	return strings.TrimSpace(body), true
}

type summaryPayload struct {
	Line1      string  `json:"line1"`
	Line2      string  `json:"line2"`
	Confidence float64 `json:"confidence"`
}

// parseSummary decodes and shape-checks the summarize response: exactly two
// non-empty lines; confidence defaults to 0.8 when absent and is clamped to
// [0,1]. Any violation is an error so the caller can fall back.
func parseSummary(payload string) ([2]string, float64, error) {
	var decoded summaryPayload
	if err := json.Unmarshal([]byte(extractJSON(payload)), &decoded); err != nil {
		return [2]string{}, 0, err
	}

	line1 := strings.TrimSpace(decoded.Line1)
	line2 := strings.TrimSpace(decoded.Line2)
	if line1 == "" || line2 == "" {
		return [2]string{}, 0, errors.New("summary must contain exactly two non-empty lines")
	}

	confidence := decoded.Confidence
	if confidence == 0 {
		confidence = 0.8
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return [2]string{line1, line2}, confidence, nil
}

type takeawayPayload struct {
	Point       string `json:"point"`
	Importance  string `json:"importance"`
	Category    string `json:"category"`
	Explanation string `json:"explanation"`
}

// parseTakeaways decodes and shape-checks the takeaways response: exactly
// three items, each with a non-empty point. Unknown importance values are
// normalized to medium rather than rejected.
func parseTakeaways(payload string) ([]models.Takeaway, error) {
	var decoded []takeawayPayload
	if err := json.Unmarshal([]byte(extractJSON(payload)), &decoded); err != nil {
		return nil, err
	}
	if len(decoded) != 3 {
		return nil, errors.New("takeaways response must contain exactly three items")
	}

	out := make([]models.Takeaway, 0, 3)
	for _, t := range decoded {
		point := strings.TrimSpace(t.Point)
		if point == "" {
			return nil, errors.New("takeaway with empty point")
		}
		out = append(out, models.Takeaway{
			Point:       point,
			Importance:  normalizeImportance(t.Importance),
			Category:    strings.TrimSpace(t.Category),
			Explanation: strings.TrimSpace(t.Explanation),
		})
	}
	return out, nil
}

func normalizeImportance(raw string) models.Importance {
	switch models.Importance(strings.ToLower(strings.TrimSpace(raw))) {
	case models.ImportanceHigh:
		return models.ImportanceHigh
	case models.ImportanceLow:
		return models.ImportanceLow
	default:
		return models.ImportanceMedium
	}
}
