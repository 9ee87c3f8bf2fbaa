package slug

import "testing"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"punctuation", "Winter Food Drive 2026!", "winter-food-drive-2026"},
		{"extra spaces", "  Annual   Report  ", "annual-report"},
		{"already slugged", "community-kitchen", "community-kitchen"},
		{"mixed case", "VoLuNtEeR Day", "volunteer-day"},
		{"consecutive hyphens", "one -- two", "one-two"},
		{"leading trailing symbols", "!!urgent!!", "urgent"},
		{"digits only", "2026", "2026"},
		{"non-ascii only", "후원 안내", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
