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

// PageStore manages static CMS pages in the database.
type PageStore struct {
	db *sql.DB
}

// NewPageStore returns a new PageStore.
func NewPageStore(db *sql.DB) *PageStore {
	return &PageStore{db: db}
}

const pageColumns = `id, slug, title, body, created_at, updated_at`

func scanPage(scanner interface{ Scan(...any) error }) (*models.Page, error) {
	p := &models.Page{}
	err := scanner.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all pages ordered by slug.
func (s *PageStore) List(ctx context.Context) ([]models.Page, error) {
	q := newListQuery("pages", pageColumns).OrderBy("slug", false)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.Page, error) {
		p, err := scanPage(rows)
		if err != nil {
			return models.Page{}, err
		}
		return *p, nil
	})
}

// FindByID retrieves a page by ID. Returns nil if not found.
func (s *PageStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Page, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE id = $1`, id)
	p, err := scanPage(row)
	return queryOne(err, p, "find page by id")
}

// FindBySlug retrieves a page by its slug. Returns nil if not found.
func (s *PageStore) FindBySlug(ctx context.Context, slug string) (*models.Page, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE slug = $1`, slug)
	p, err := scanPage(row)
	return queryOne(err, p, "find page by slug")
}

// Create inserts a new page and returns it.
func (s *PageStore) Create(ctx context.Context, p *models.Page) (*models.Page, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO pages (slug, title, body)
		VALUES ($1, $2, $3)
		RETURNING `+pageColumns,
		p.Slug, p.Title, p.Body,
	)
	created, err := scanPage(row)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// Update modifies an existing page.
func (s *PageStore) Update(ctx context.Context, p *models.Page) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE pages SET slug = $1, title = $2, body = $3, updated_at = NOW()
		WHERE id = $4
	`, p.Slug, p.Title, p.Body, p.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// Delete removes a page by ID.
func (s *PageStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}
