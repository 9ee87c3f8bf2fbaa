// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

// BannerStore manages homepage hero banners.
type BannerStore struct {
	db *sql.DB
}

// NewBannerStore returns a new BannerStore.
func NewBannerStore(db *sql.DB) *BannerStore {
	return &BannerStore{db: db}
}

const bannerColumns = `id, title, subtitle, image_url, link_url, display_order, is_active, created_at, updated_at`

func scanBanner(scanner interface{ Scan(...any) error }) (*models.Banner, error) {
	b := &models.Banner{}
	err := scanner.Scan(
		&b.ID, &b.Title, &b.Subtitle, &b.ImageURL, &b.LinkURL,
		&b.DisplayOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanBannerRows(rows *sql.Rows) (models.Banner, error) {
	b, err := scanBanner(rows)
	if err != nil {
		return models.Banner{}, err
	}
	return *b, nil
}

// List returns every banner for the admin listing in display order,
// newest first within the same order value.
func (s *BannerStore) List(ctx context.Context) ([]models.Banner, error) {
	q := newListQuery("banners", bannerColumns).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanBannerRows)
}

// ListActive returns active banners for the public homepage slider.
func (s *BannerStore) ListActive(ctx context.Context) ([]models.Banner, error) {
	q := newListQuery("banners", bannerColumns).
		Where("is_active", true).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanBannerRows)
}

// FindByID retrieves a banner by ID. Returns nil if not found.
func (s *BannerStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id)
	b, err := scanBanner(row)
	return queryOne(err, b, "find banner by id")
}

// Create inserts a new banner and returns it.
func (s *BannerStore) Create(ctx context.Context, b *models.Banner) (*models.Banner, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO banners (title, subtitle, image_url, link_url, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+bannerColumns,
		b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.DisplayOrder, b.IsActive,
	)
	created, err := scanBanner(row)
	if err != nil {
		return nil, fmt.Errorf("create banner: %w", err)
	}
	return created, nil
}

// Update modifies an existing banner.
func (s *BannerStore) Update(ctx context.Context, b *models.Banner) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE banners SET
			title = $1, subtitle = $2, image_url = $3, link_url = $4,
			display_order = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`, b.Title, b.Subtitle, b.ImageURL, b.LinkURL, b.DisplayOrder, b.IsActive, b.ID)
	if err != nil {
		return fmt.Errorf("update banner: %w", err)
	}
	return nil
}

// Delete removes a banner by ID.
func (s *BannerStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", err)
	}
	return nil
}
