package models

import "testing"

func TestSiteSettingsGet(t *testing.T) {
	s := SiteSettings{
		"site_name":    "Helping Hands",
		"bank_account": "",
	}

	tests := []struct {
		name     string
		key      string
		fallback string
		want     string
	}{
		{"existing key", "site_name", "Default", "Helping Hands"},
		{"missing key", "contact_email", "hello@example.org", "hello@example.org"},
		{"empty value uses fallback", "bank_account", "not set", "not set"},
		{"missing key empty fallback", "sns_twitter", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Get(tt.key, tt.fallback); got != tt.want {
				t.Errorf("Get(%q, %q) = %q, want %q", tt.key, tt.fallback, got, tt.want)
			}
		})
	}
}
