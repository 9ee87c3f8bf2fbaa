// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing implements the public archive refinements (category
// filter, search, pagination) as pure functions over a fetched
// collection. The page works on the full published set, so refinement
// never re-queries the database.
package listing

import (
	"regexp"
	"strings"

	"charitypress/internal/models"
)

// NewsPageSize is how many posts a news archive page shows.
const NewsPageSize = 10

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes markup from a rendered body so search matches
// visible text only.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// FilterCategory keeps posts of the given category. An empty category
// keeps everything.
func FilterCategory(posts []models.Post, category models.PostCategory) []models.Post {
	if category == "" {
		return posts
	}
	var out []models.Post
	for _, p := range posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps posts whose title or body contains the query,
// case-insensitive. Markup in the body is stripped before matching.
// An empty or whitespace-only query keeps everything.
func Search(posts []models.Post, query string) []models.Post {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return posts
	}
	var out []models.Post
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(StripTags(p.Body)), q) {
			out = append(out, p)
		}
	}
	return out
}

// FilterResourceCategory keeps resources of the given category. An empty
// category keeps everything.
func FilterResourceCategory(resources []models.Resource, category models.ResourceCategory) []models.Resource {
	if category == "" {
		return resources
	}
	var out []models.Resource
	for _, res := range resources {
		if res.Category == category {
			out = append(out, res)
		}
	}
	return out
}

// SearchResources keeps resources whose title or description contains
// the query, case-insensitive. An empty or whitespace-only query keeps
// everything.
func SearchResources(resources []models.Resource, query string) []models.Resource {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return resources
	}
	var out []models.Resource
	for _, res := range resources {
		desc := ""
		if res.Description != nil {
			desc = *res.Description
		}
		if strings.Contains(strings.ToLower(res.Title), q) ||
			strings.Contains(strings.ToLower(desc), q) {
			out = append(out, res)
		}
	}
	return out
}

// Page is one slice of a paginated collection.
type Page struct {
	Items      []models.Post
	Number     int // 1-based
	TotalPages int
	Total      int
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// Paginate slices posts into the requested 1-based page. Pages before the
// first clamp to page one; a page past the end comes back empty rather
// than clamping, so a stale link shows "no results" instead of silently
// jumping backwards. Total always reflects the filtered set, letting the
// caller distinguish an empty archive from an out-of-range page.
func Paginate(posts []models.Post, page, size int) Page {
	if size <= 0 {
		size = NewsPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(posts)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start >= total {
		return Page{Number: page, TotalPages: totalPages, Total: total}
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page{Items: posts[start:end], Number: page, TotalPages: totalPages, Total: total}
}
