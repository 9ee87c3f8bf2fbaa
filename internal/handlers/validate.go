package handlers

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation limits shared across the admin and public forms.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxBodyLen    = 100_000
	maxExcerptLen = 1_000
	maxNameLen    = 200
	maxEmailLen   = 320
	maxPhoneLen   = 40
	maxURLLen     = 2_000
	maxMessageLen = 10_000
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]+$`)
)

// rule is one declarative field constraint. Every form (admin and public)
// validates through the same table-driven checker, so a field behaves the
// same wherever it appears.
type rule struct {
	Label    string
	Value    string
	Required bool
	MaxLen   int
	Kind     string   // "", "email", "phone", "url"
	Choices  []string // non-empty value must be one of these
}

// checkRules evaluates rules in order and returns the first failing
// field's message, or "" when everything passes.
func checkRules(rules []rule) string {
	for _, f := range rules {
		v := strings.TrimSpace(f.Value)
		if v == "" {
			if f.Required {
				return f.Label + " is required."
			}
			continue
		}
		if f.MaxLen > 0 && utf8.RuneCountInString(v) > f.MaxLen {
			return f.Label + " is too long."
		}
		switch f.Kind {
		case "email":
			if !emailPattern.MatchString(v) {
				return f.Label + " must be a valid email address."
			}
		case "phone":
			if !phonePattern.MatchString(v) {
				return f.Label + " must be a valid phone number."
			}
		case "url":
			if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") && !strings.HasPrefix(v, "/") {
				return f.Label + " must be a link."
			}
		}
		if len(f.Choices) > 0 {
			ok := false
			for _, c := range f.Choices {
				if v == c {
					ok = true
					break
				}
			}
			if !ok {
				return f.Label + " has an unknown value."
			}
		}
	}
	return ""
}

// choiceStrings converts a model enum slice into the Choices form, so
// the valid values live in one place per enum.
func choiceStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// titleBodyRules covers the common title/slug/body trio of posts, pages
// and programs.
func titleBodyRules(title, slug, body string) []rule {
	return []rule{
		{Label: "Title", Value: title, Required: true, MaxLen: maxTitleLen},
		{Label: "Slug", Value: slug, MaxLen: maxSlugLen},
		{Label: "Body", Value: body, MaxLen: maxBodyLen},
	}
}
