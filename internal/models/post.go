// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// PostCategory classifies news posts for the public category filter.
type PostCategory string

const (
	PostCategoryNotice   PostCategory = "notice"
	PostCategoryActivity PostCategory = "activity"
	PostCategoryPress    PostCategory = "press"
	PostCategoryStory    PostCategory = "story"
)

// PostCategories lists the valid categories in display order.
var PostCategories = []PostCategory{
	PostCategoryNotice, PostCategoryActivity, PostCategoryPress, PostCategoryStory,
}

// ValidPostCategory reports whether c names a known category.
func ValidPostCategory(c PostCategory) bool {
	for _, known := range PostCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Post is a news article. The public listing orders pinned posts first,
// then newest first; only published posts are visible to readers.
type Post struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Slug         string       `json:"slug"`
	Body         string       `json:"body"` // Markdown source
	Excerpt      *string      `json:"excerpt,omitempty"`
	Category     PostCategory `json:"category"`
	ThumbnailURL *string      `json:"thumbnail_url,omitempty"`
	IsPinned     bool         `json:"is_pinned"`
	IsPublished  bool         `json:"is_published"`
	AuthorID     *uuid.UUID   `json:"author_id,omitempty"`
	PublishedAt  *time.Time   `json:"published_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
