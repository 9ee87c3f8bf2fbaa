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

// VideoStore manages embedded promotional videos.
type VideoStore struct {
	db *sql.DB
}

// NewVideoStore returns a new VideoStore.
func NewVideoStore(db *sql.DB) *VideoStore {
	return &VideoStore{db: db}
}

const videoColumns = `id, title, youtube_url, description, display_order, created_at, updated_at`

func scanVideo(scanner interface{ Scan(...any) error }) (*models.Video, error) {
	v := &models.Video{}
	err := scanner.Scan(
		&v.ID, &v.Title, &v.YouTubeURL, &v.Description,
		&v.DisplayOrder, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// List returns all videos in display order, newest first on ties.
func (s *VideoStore) List(ctx context.Context) ([]models.Video, error) {
	q := newListQuery("videos", videoColumns).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.Video, error) {
		v, err := scanVideo(rows)
		if err != nil {
			return models.Video{}, err
		}
		return *v, nil
	})
}

// FindByID retrieves a video by ID. Returns nil if not found.
func (s *VideoStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id)
	v, err := scanVideo(row)
	return queryOne(err, v, "find video by id")
}

// Create inserts a new video and returns it.
func (s *VideoStore) Create(ctx context.Context, v *models.Video) (*models.Video, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO videos (title, youtube_url, description, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+videoColumns,
		v.Title, v.YouTubeURL, v.Description, v.DisplayOrder,
	)
	created, err := scanVideo(row)
	if err != nil {
		return nil, fmt.Errorf("create video: %w", err)
	}
	return created, nil
}

// Update modifies an existing video.
func (s *VideoStore) Update(ctx context.Context, v *models.Video) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE videos SET
			title = $1, youtube_url = $2, description = $3,
			display_order = $4, updated_at = NOW()
		WHERE id = $5
	`, v.Title, v.YouTubeURL, v.Description, v.DisplayOrder, v.ID)
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	return nil
}

// Delete removes a video by ID.
func (s *VideoStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete video: %w", err)
	}
	return nil
}
