// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

// PostStore handles all news post database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, slug, body, excerpt, category, thumbnail_url,
	is_pinned, is_published, author_id, published_at, created_at, updated_at`

// scanPost scans a row into a Post struct.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	p := &models.Post{}
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Body, &p.Excerpt, &p.Category, &p.ThumbnailURL,
		&p.IsPinned, &p.IsPublished, &p.AuthorID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanPostRows(rows *sql.Rows) (models.Post, error) {
	p, err := scanPost(rows)
	if err != nil {
		return models.Post{}, err
	}
	return *p, nil
}

// List returns every post for the admin listing, pinned first then newest.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	q := newListQuery("posts", postColumns).
		OrderBy("is_pinned", true).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanPostRows)
}

// ListPublished returns published posts for public pages, pinned first then
// newest. A zero limit returns the whole collection.
func (s *PostStore) ListPublished(ctx context.Context, limit int) ([]models.Post, error) {
	q := newListQuery("posts", postColumns).
		Where("is_published", true).
		OrderBy("is_pinned", true).
		OrderBy("created_at", true).
		Limit(limit)
	return queryList(ctx, s.db, q, scanPostRows)
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	return queryOne(err, p, "find post by id")
}

// FindBySlug retrieves a published post by its slug for public rendering.
func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1 AND is_published = TRUE`, slug)
	p, err := scanPost(row)
	return queryOne(err, p, "find post by slug")
}

// Create inserts a new post and returns it with the generated ID.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, body, excerpt, category, thumbnail_url,
		                   is_pinned, is_published, author_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Body, p.Excerpt, p.Category, p.ThumbnailURL,
		p.IsPinned, p.IsPublished, p.AuthorID, p.PublishedAt,
	)
	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update replaces an existing post whole; there are no partial patches.
func (s *PostStore) Update(ctx context.Context, p *models.Post) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	_, err := s.db.ExecContext(ctx, `
		UPDATE posts SET
			title = $1, slug = $2, body = $3, excerpt = $4, category = $5,
			thumbnail_url = $6, is_pinned = $7, is_published = $8,
			published_at = $9, updated_at = NOW()
		WHERE id = $10
	`, p.Title, p.Slug, p.Body, p.Excerpt, p.Category,
		p.ThumbnailURL, p.IsPinned, p.IsPublished, p.PublishedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	return nil
}

// Delete removes a post by ID.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// Count returns the number of posts.
func (s *PostStore) Count(ctx context.Context) (int, error) {
	return countRows(ctx, s.db, "posts", nil)
}
