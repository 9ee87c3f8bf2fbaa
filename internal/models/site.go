// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a homepage hero slide. Active banners render in display order.
type Banner struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subtitle     *string   `json:"subtitle,omitempty"`
	ImageURL     string    `json:"image_url"`
	LinkURL      *string   `json:"link_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProgramCard is one of the small program teasers shown on the homepage.
// Cards are batch-edited: the whole ordered set is saved in one action.
type ProgramCard struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IconURL      *string   `json:"icon_url,omitempty"`
	LinkURL      *string   `json:"link_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Partner is a supporting organization shown in the partner logo strip.
// Like program cards, partners are batch-edited as an ordered set.
type Partner struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logo_url"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Video is an embedded promotional video (YouTube link).
type Video struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	YouTubeURL   string    `json:"youtube_url"`
	Description  *string   `json:"description,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
