package store

import (
	"testing"
	"time"

	"github.com/healthnews/curator/internal/models"
)

func TestListAll_ReturnsFullSeedSet(t *testing.T) {
	s := New()

	articles := s.ListAll()
	if len(articles) != 8 {
		t.Fatalf("len = %d, want 8", len(articles))
	}
	if articles[0].ID != "1" || articles[7].ID != "8" {
		t.Errorf("load order broken: first %q, last %q", articles[0].ID, articles[7].ID)
	}
	for _, a := range articles {
		if a.Enriched() {
			t.Errorf("seed article %s should not be pre-enriched", a.ID)
		}
	}
}

func TestListAll_ReturnsCopy(t *testing.T) {
	s := New()

	first := s.ListAll()
	first[0].Title = "mutated"

	if s.ListAll()[0].Title == "mutated" {
		t.Error("mutating a query result leaked into the store")
	}
}

func TestByCategory(t *testing.T) {
	s := New()

	tests := []struct {
		category models.HealthCategory
		wantIDs  []string
	}{
		{models.CategoryMedicalBreakthroughs, []string{"1", "8"}},
		{models.CategoryHealthcareTechnology, []string{"3", "6"}},
		{models.CategoryMentalHealth, []string{"2"}},
		{models.CategoryDrugDevelopment, nil},
	}

	for _, tt := range tests {
		got := s.ByCategory(tt.category)
		if len(got) != len(tt.wantIDs) {
			t.Errorf("ByCategory(%q) returned %d articles, want %d", tt.category, len(got), len(tt.wantIDs))
			continue
		}
		for i, a := range got {
			if a.ID != tt.wantIDs[i] {
				t.Errorf("ByCategory(%q)[%d].ID = %q, want %q", tt.category, i, a.ID, tt.wantIDs[i])
			}
		}
	}
}

func TestRecent(t *testing.T) {
	s := New()
	s.now = func() time.Time {
		return time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		days int
		want int
	}{
		{1, 1},  // only the Jan 15 article
		{7, 3},  // Jan 15, 12, 10
		{30, 8}, // everything
	}

	for _, tt := range tests {
		if got := s.Recent(tt.days); len(got) != tt.want {
			t.Errorf("Recent(%d) returned %d articles, want %d", tt.days, len(got), tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		term string
		want int
	}{
		{"content match", "CRISPR", 1},
		{"case insensitive", "crispr", 1},
		{"category match", "mental health", 1},
		{"title match", "Wearable", 1},
		{"no match", "astronomy", 0},
		{"empty term returns all", "", 8},
		{"whitespace term returns all", "   ", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Search(tt.term); len(got) != tt.want {
				t.Errorf("Search(%q) returned %d articles, want %d", tt.term, len(got), tt.want)
			}
		})
	}
}
