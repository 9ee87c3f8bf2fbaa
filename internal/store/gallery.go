// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

// GalleryStore manages photo albums. Album photos live in a jsonb column
// as an ordered URL array, so an album round-trips in one row.
type GalleryStore struct {
	db *sql.DB
}

// NewGalleryStore returns a new GalleryStore.
func NewGalleryStore(db *sql.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

const galleryColumns = `id, title, description, cover_url, image_urls, taken_at, created_at, updated_at`

func scanAlbum(scanner interface{ Scan(...any) error }) (*models.GalleryAlbum, error) {
	a := &models.GalleryAlbum{}
	var urls []byte
	err := scanner.Scan(
		&a.ID, &a.Title, &a.Description, &a.CoverURL, &urls,
		&a.TakenAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(urls) > 0 {
		if err := json.Unmarshal(urls, &a.ImageURLs); err != nil {
			return nil, fmt.Errorf("decode album image urls: %w", err)
		}
	}
	return a, nil
}

func encodeImageURLs(urls []string) ([]byte, error) {
	if urls == nil {
		urls = []string{}
	}
	return json.Marshal(urls)
}

// List returns all albums, most recent event first. Albums without a
// taken_at date sort by creation time.
func (s *GalleryStore) List(ctx context.Context) ([]models.GalleryAlbum, error) {
	q := newListQuery("gallery_albums", galleryColumns).
		OrderBy("COALESCE(taken_at, created_at)", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.GalleryAlbum, error) {
		a, err := scanAlbum(rows)
		if err != nil {
			return models.GalleryAlbum{}, err
		}
		return *a, nil
	})
}

// FindByID retrieves an album by ID. Returns nil if not found.
func (s *GalleryStore) FindByID(ctx context.Context, id uuid.UUID) (*models.GalleryAlbum, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+galleryColumns+` FROM gallery_albums WHERE id = $1`, id)
	a, err := scanAlbum(row)
	return queryOne(err, a, "find album by id")
}

// Create inserts a new album and returns it.
func (s *GalleryStore) Create(ctx context.Context, a *models.GalleryAlbum) (*models.GalleryAlbum, error) {
	urls, err := encodeImageURLs(a.ImageURLs)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO gallery_albums (title, description, cover_url, image_urls, taken_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+galleryColumns,
		a.Title, a.Description, a.CoverURL, urls, a.TakenAt,
	)
	created, err := scanAlbum(row)
	if err != nil {
		return nil, fmt.Errorf("create album: %w", err)
	}
	return created, nil
}

// Update modifies an existing album, replacing its photo list whole.
func (s *GalleryStore) Update(ctx context.Context, a *models.GalleryAlbum) error {
	urls, err := encodeImageURLs(a.ImageURLs)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE gallery_albums SET
			title = $1, description = $2, cover_url = $3, image_urls = $4,
			taken_at = $5, updated_at = NOW()
		WHERE id = $6
	`, a.Title, a.Description, a.CoverURL, urls, a.TakenAt, a.ID)
	if err != nil {
		return fmt.Errorf("update album: %w", err)
	}
	return nil
}

// Delete removes an album by ID.
func (s *GalleryStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM gallery_albums WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete album: %w", err)
	}
	return nil
}
