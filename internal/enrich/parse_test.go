package enrich

import (
	"testing"

	"github.com/healthnews/curator/internal/models"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"bare array", `[1,2]`, `[1,2]`},
		{"fenced with language", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced without language", "```\n[1]\n```", `[1]`},
		{"prose around object", `Sure! Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"array before object", `[{"a":1}] trailing`, `[{"a":1}]`},
		{"no json at all", "just words", "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSummary(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		wantErr        bool
		wantLine1      string
		wantConfidence float64
	}{
		{
			name:           "valid",
			payload:        `{"line1":"Finding.","line2":"Impact.","confidence":0.9}`,
			wantLine1:      "Finding.",
			wantConfidence: 0.9,
		},
		{
			name:           "confidence defaults when absent",
			payload:        `{"line1":"Finding.","line2":"Impact."}`,
			wantLine1:      "Finding.",
			wantConfidence: 0.8,
		},
		{
			name:           "confidence clamped high",
			payload:        `{"line1":"A.","line2":"B.","confidence":3.5}`,
			wantLine1:      "A.",
			wantConfidence: 1,
		},
		{
			name:           "confidence clamped low",
			payload:        `{"line1":"A.","line2":"B.","confidence":-0.2}`,
			wantLine1:      "A.",
			wantConfidence: 0,
		},
		{
			name:           "fenced payload",
			payload:        "```json\n{\"line1\":\"A.\",\"line2\":\"B.\",\"confidence\":0.7}\n```",
			wantLine1:      "A.",
			wantConfidence: 0.7,
		},
		{name: "missing second line", payload: `{"line1":"Only one."}`, wantErr: true},
		{name: "blank line", payload: `{"line1":"A.","line2":"   "}`, wantErr: true},
		{name: "not json", payload: "plain prose answer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tldr, confidence, err := parseSummary(tt.payload)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tldr[0] != tt.wantLine1 {
				t.Errorf("line1 = %q, want %q", tldr[0], tt.wantLine1)
			}
			if tldr[1] == "" {
				t.Error("line2 is empty")
			}
			if confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", confidence, tt.wantConfidence)
			}
		})
	}
}

func TestParseTakeaways(t *testing.T) {
	valid := `[
		{"point":"First","importance":"high","category":"Treatment","explanation":"x"},
		{"point":"Second","importance":"medium","category":"Research","explanation":"y"},
		{"point":"Third","importance":"low","category":"Prevention","explanation":"z"}
	]`

	takeaways, err := parseTakeaways(valid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(takeaways) != 3 {
		t.Fatalf("len = %d, want 3", len(takeaways))
	}
	if takeaways[0].Importance != models.ImportanceHigh || takeaways[2].Importance != models.ImportanceLow {
		t.Errorf("importance ranks not preserved: %v", takeaways)
	}
}

func TestParseTakeaways_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"two items", `[{"point":"a"},{"point":"b"}]`},
		{"four items", `[{"point":"a"},{"point":"b"},{"point":"c"},{"point":"d"}]`},
		{"empty point", `[{"point":"a"},{"point":"  "},{"point":"c"}]`},
		{"not json", "no structure here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseTakeaways(tt.payload); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestNormalizeImportance(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Importance
	}{
		{"high", models.ImportanceHigh},
		{"HIGH", models.ImportanceHigh},
		{" low ", models.ImportanceLow},
		{"medium", models.ImportanceMedium},
		{"critical", models.ImportanceMedium},
		{"", models.ImportanceMedium},
	}

	for _, tt := range tests {
		if got := normalizeImportance(tt.raw); got != tt.want {
			t.Errorf("normalizeImportance(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
