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

// ProgramStore manages the organization's program pages.
type ProgramStore struct {
	db *sql.DB
}

// NewProgramStore returns a new ProgramStore.
func NewProgramStore(db *sql.DB) *ProgramStore {
	return &ProgramStore{db: db}
}

const programColumns = `id, title, slug, summary, body, image_url, display_order, is_active, created_at, updated_at`

func scanProgram(scanner interface{ Scan(...any) error }) (*models.Program, error) {
	p := &models.Program{}
	err := scanner.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Summary, &p.Body, &p.ImageURL,
		&p.DisplayOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanProgramRows(rows *sql.Rows) (models.Program, error) {
	p, err := scanProgram(rows)
	if err != nil {
		return models.Program{}, err
	}
	return *p, nil
}

// List returns every program for the admin listing in display order.
func (s *ProgramStore) List(ctx context.Context) ([]models.Program, error) {
	q := newListQuery("programs", programColumns).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanProgramRows)
}

// ListActive returns active programs for the public listing.
func (s *ProgramStore) ListActive(ctx context.Context) ([]models.Program, error) {
	q := newListQuery("programs", programColumns).
		Where("is_active", true).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanProgramRows)
}

// FindByID retrieves a program by ID. Returns nil if not found.
func (s *ProgramStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Program, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+programColumns+` FROM programs WHERE id = $1`, id)
	p, err := scanProgram(row)
	return queryOne(err, p, "find program by id")
}

// FindBySlug retrieves an active program by slug for the public detail page.
// Returns nil if not found or inactive.
func (s *ProgramStore) FindBySlug(ctx context.Context, slug string) (*models.Program, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+programColumns+` FROM programs
		WHERE slug = $1 AND is_active = TRUE`, slug)
	p, err := scanProgram(row)
	return queryOne(err, p, "find program by slug")
}

// Create inserts a new program and returns it.
func (s *ProgramStore) Create(ctx context.Context, p *models.Program) (*models.Program, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO programs (title, slug, summary, body, image_url, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+programColumns,
		p.Title, p.Slug, p.Summary, p.Body, p.ImageURL, p.DisplayOrder, p.IsActive,
	)
	created, err := scanProgram(row)
	if err != nil {
		return nil, fmt.Errorf("create program: %w", err)
	}
	return created, nil
}

// Update modifies an existing program.
func (s *ProgramStore) Update(ctx context.Context, p *models.Program) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE programs SET
			title = $1, slug = $2, summary = $3, body = $4, image_url = $5,
			display_order = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`, p.Title, p.Slug, p.Summary, p.Body, p.ImageURL, p.DisplayOrder, p.IsActive, p.ID)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	return nil
}

// Delete removes a program by ID.
func (s *ProgramStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	return nil
}
