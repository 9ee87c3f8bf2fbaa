// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Program describes one of the organization's ongoing programs.
// The public listing shows active programs in display order; ties break
// newest first.
type Program struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary"`
	Body         string    `json:"body"` // Markdown source
	ImageURL     *string   `json:"image_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Recruitment is a staff or activist recruitment notice.
type Recruitment struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Body      string     `json:"body"` // Markdown source
	Deadline  *time.Time `json:"deadline,omitempty"`
	IsOpen    bool       `json:"is_open"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Closed reports whether the notice has passed its deadline. A notice
// with no deadline stays open until is_open is cleared.
func (r *Recruitment) Closed(now time.Time) bool {
	if !r.IsOpen {
		return true
	}
	return r.Deadline != nil && now.After(*r.Deadline)
}
