package models

import "testing"

// TestValidPostCategory verifies that only the four known categories are
// accepted; anything else falls back to an unfiltered listing.
func TestValidPostCategory(t *testing.T) {
	tests := []struct {
		name     string
		category PostCategory
		want     bool
	}{
		{"notice", PostCategoryNotice, true},
		{"activity", PostCategoryActivity, true},
		{"press", PostCategoryPress, true},
		{"story", PostCategoryStory, true},
		{"empty", PostCategory(""), false},
		{"unknown", PostCategory("gossip"), false},
		{"uppercase NOTICE", PostCategory("NOTICE"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidPostCategory(tt.category); got != tt.want {
				t.Errorf("ValidPostCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

// TestPostCategoriesOrder pins the display order of the category filter.
func TestPostCategoriesOrder(t *testing.T) {
	want := []string{"notice", "activity", "press", "story"}
	if len(PostCategories) != len(want) {
		t.Fatalf("got %d categories, want %d", len(PostCategories), len(want))
	}
	for i, c := range PostCategories {
		if string(c) != want[i] {
			t.Errorf("category %d: got %q, want %q", i, c, want[i])
		}
	}
}
