// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryAlbum groups photos from one event or activity.
// ImageURLs holds the public URLs of every photo in the album; CoverURL
// is the thumbnail shown on the gallery index.
type GalleryAlbum struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	CoverURL    *string    `json:"cover_url,omitempty"`
	ImageURLs   []string   `json:"image_urls"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Cover returns the album cover URL, falling back to the first photo.
func (a *GalleryAlbum) Cover() string {
	if a.CoverURL != nil && *a.CoverURL != "" {
		return *a.CoverURL
	}
	if len(a.ImageURLs) > 0 {
		return a.ImageURLs[0]
	}
	return ""
}
