// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ResourceCategory classifies downloadable resources.
type ResourceCategory string

const (
	ResourceCategoryReport     ResourceCategory = "report"
	ResourceCategoryNewsletter ResourceCategory = "newsletter"
	ResourceCategoryForm       ResourceCategory = "form"
	ResourceCategoryEtc        ResourceCategory = "etc"
)

// ResourceCategories lists the valid categories in display order.
var ResourceCategories = []ResourceCategory{
	ResourceCategoryReport, ResourceCategoryNewsletter, ResourceCategoryForm, ResourceCategoryEtc,
}

// ValidResourceCategory reports whether c names a known category.
func ValidResourceCategory(c ResourceCategory) bool {
	for _, known := range ResourceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Resource is a downloadable document (annual report, newsletter, form).
type Resource struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Category    ResourceCategory `json:"category"`
	Description *string          `json:"description,omitempty"`
	FileURL     string           `json:"file_url"`
	FileName    string           `json:"file_name"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
