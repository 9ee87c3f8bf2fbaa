package handlers

import (
	"strings"
	"testing"

	"charitypress/internal/models"
)

func TestCheckRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []rule
		wantError bool
	}{
		{"empty rule set", nil, false},
		{"required present", []rule{{Label: "Name", Value: "Kim", Required: true}}, false},
		{"required missing", []rule{{Label: "Name", Value: "", Required: true}}, true},
		{"required whitespace only", []rule{{Label: "Name", Value: "   ", Required: true}}, true},
		{"optional missing", []rule{{Label: "Subject", Value: ""}}, false},
		{"max length ok", []rule{{Label: "Title", Value: strings.Repeat("a", 300), MaxLen: 300}}, false},
		{"max length exceeded", []rule{{Label: "Title", Value: strings.Repeat("a", 301), MaxLen: 300}}, true},
		{"multibyte counted as runes", []rule{{Label: "Title", Value: strings.Repeat("가", 10), MaxLen: 10}}, false},
		{"valid email", []rule{{Label: "Email", Value: "donor@example.org", Kind: "email"}}, false},
		{"invalid email", []rule{{Label: "Email", Value: "not-an-email", Kind: "email"}}, true},
		{"email without tld", []rule{{Label: "Email", Value: "a@b", Kind: "email"}}, true},
		{"valid phone", []rule{{Label: "Phone", Value: "+82 (10) 1234-5678", Kind: "phone"}}, false},
		{"invalid phone", []rule{{Label: "Phone", Value: "call me", Kind: "phone"}}, true},
		{"absolute url", []rule{{Label: "Link", Value: "https://example.org/give", Kind: "url"}}, false},
		{"relative url", []rule{{Label: "Link", Value: "/programs", Kind: "url"}}, false},
		{"bad url", []rule{{Label: "Link", Value: "javascript:alert(1)", Kind: "url"}}, true},
		{"choice accepted", []rule{{Label: "Type", Value: "goods", Choices: []string{"regular", "one_time", "goods"}}}, false},
		{"choice rejected", []rule{{Label: "Type", Value: "stocks", Choices: []string{"regular", "one_time", "goods"}}}, true},
		{"empty optional skips choices", []rule{{Label: "Type", Value: "", Choices: []string{"regular"}}}, false},
		{
			"first failure wins",
			[]rule{
				{Label: "Name", Value: "", Required: true},
				{Label: "Email", Value: "bad", Kind: "email"},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checkRules(tt.rules)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

// TestCheckRulesMessageNamesField verifies the message leads with the
// field label so forms can show it directly.
func TestCheckRulesMessageNamesField(t *testing.T) {
	msg := checkRules([]rule{{Label: "Email", Value: "", Required: true}})
	if !strings.HasPrefix(msg, "Email ") {
		t.Errorf("message should start with the label, got %q", msg)
	}
}

func TestTitleBodyRules(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		slug      string
		body      string
		wantError bool
	}{
		{"valid", "Winter Drive", "winter-drive", "Body text", false},
		{"empty title", "", "slug", "body", true},
		{"whitespace title", "   ", "slug", "body", true},
		{"title too long", strings.Repeat("a", 301), "slug", "body", true},
		{"slug too long", "title", strings.Repeat("a", 301), "body", true},
		{"body too long", "title", "slug", strings.Repeat("a", 100_001), true},
		{"empty body allowed", "title", "slug", "", false},
		{"empty slug allowed", "title", "", "body", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := checkRules(titleBodyRules(tt.title, tt.slug, tt.body))
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestChoiceStringsTracksModelEnums(t *testing.T) {
	got := choiceStrings(models.DonationTypes)
	want := []string{"regular", "one_time", "goods"}
	if len(got) != len(want) {
		t.Fatalf("donation types: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("donation types[%d]: got %q, want %q", i, got[i], want[i])
		}
	}

	// Every declared post category must pass its own validation rule.
	for _, c := range models.PostCategories {
		r := rule{Label: "Category", Value: string(c), Required: true,
			Choices: choiceStrings(models.PostCategories)}
		if msg := checkRules([]rule{r}); msg != "" {
			t.Errorf("category %q rejected: %s", c, msg)
		}
	}
}
