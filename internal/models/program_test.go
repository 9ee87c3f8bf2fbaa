package models

import (
	"testing"
	"time"
)

// TestRecruitmentClosed covers the deadline logic: a notice stays open
// until its deadline passes or an admin clears is_open.
func TestRecruitmentClosed(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name string
		rec  Recruitment
		want bool
	}{
		{"open no deadline", Recruitment{IsOpen: true}, false},
		{"open future deadline", Recruitment{IsOpen: true, Deadline: &future}, false},
		{"open past deadline", Recruitment{IsOpen: true, Deadline: &past}, true},
		{"open deadline is now", Recruitment{IsOpen: true, Deadline: &now}, false},
		{"closed by admin", Recruitment{IsOpen: false, Deadline: &future}, true},
		{"closed no deadline", Recruitment{IsOpen: false}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Closed(now); got != tt.want {
				t.Errorf("Closed() = %v, want %v", got, tt.want)
			}
		})
	}
}
