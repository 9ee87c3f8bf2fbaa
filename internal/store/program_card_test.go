package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

// The card set is saved whole: SaveAll inserts new rows, updates existing
// ones, deletes the missing ones and renumbers display_order. Each test
// snapshots the current set and restores it afterwards.
func snapshotCards(t *testing.T, s *ProgramCardStore) []models.ProgramCard {
	t.Helper()
	existing, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("snapshot cards: %v", err)
	}
	t.Cleanup(func() {
		// Re-insert rather than update: the test may have deleted the
		// original rows, so the old IDs cannot be assumed to exist.
		restore := make([]models.ProgramCard, len(existing))
		copy(restore, existing)
		for i := range restore {
			restore[i].ID = uuid.Nil
		}
		if err := s.SaveAll(context.Background(), restore); err != nil {
			t.Errorf("restore cards: %v", err)
		}
	})
	return existing
}

func TestProgramCardSaveAllInsertUpdateDelete(t *testing.T) {
	db := testDB(t)
	s := NewProgramCardStore(db)
	ctx := context.Background()

	existing := snapshotCards(t, s)

	marker := "test-card-" + uuid.NewString()[:8]

	// Insert two new cards at the end of the current set.
	set := append(append([]models.ProgramCard{}, existing...),
		models.ProgramCard{Title: marker + "-a", Description: "first"},
		models.ProgramCard{Title: marker + "-b", Description: "second"},
	)
	if err := s.SaveAll(ctx, set); err != nil {
		t.Fatalf("SaveAll (insert): %v", err)
	}

	cards, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cards) != len(existing)+2 {
		t.Fatalf("got %d cards, want %d", len(cards), len(existing)+2)
	}

	// display_order follows row position.
	for i, c := range cards {
		if c.DisplayOrder != i {
			t.Errorf("card %d: display_order = %d, want %d", i, c.DisplayOrder, i)
		}
	}

	// Update one, drop the other, swap into first position.
	var cardA models.ProgramCard
	for _, c := range cards {
		if c.Title == marker+"-a" {
			cardA = c
		}
	}
	if cardA.ID == uuid.Nil {
		t.Fatal("inserted card not found")
	}
	cardA.Description = "rewritten"

	set = append([]models.ProgramCard{cardA}, existing...)
	if err := s.SaveAll(ctx, set); err != nil {
		t.Fatalf("SaveAll (update+delete): %v", err)
	}

	cards, err = s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cards) != len(existing)+1 {
		t.Fatalf("got %d cards after prune, want %d", len(cards), len(existing)+1)
	}
	if cards[0].ID != cardA.ID {
		t.Errorf("reordered card should be first, got %q", cards[0].Title)
	}
	if cards[0].Description != "rewritten" {
		t.Errorf("description: got %q, want %q", cards[0].Description, "rewritten")
	}
	for _, c := range cards {
		if c.Title == marker+"-b" {
			t.Error("dropped card should have been deleted")
		}
	}
}

func TestProgramCardSaveAllEmptySetClearsTable(t *testing.T) {
	db := testDB(t)
	s := NewProgramCardStore(db)
	ctx := context.Background()

	snapshotCards(t, s)

	if err := s.SaveAll(ctx, nil); err != nil {
		t.Fatalf("SaveAll (empty): %v", err)
	}

	cards, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("expected empty set, got %d cards", len(cards))
	}
}
