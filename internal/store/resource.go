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

// ResourceStore manages downloadable documents.
type ResourceStore struct {
	db *sql.DB
}

// NewResourceStore returns a new ResourceStore.
func NewResourceStore(db *sql.DB) *ResourceStore {
	return &ResourceStore{db: db}
}

const resourceColumns = `id, title, category, description, file_url, file_name, created_at, updated_at`

func scanResource(scanner interface{ Scan(...any) error }) (*models.Resource, error) {
	r := &models.Resource{}
	err := scanner.Scan(
		&r.ID, &r.Title, &r.Category, &r.Description,
		&r.FileURL, &r.FileName, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// List returns all resources, newest first.
func (s *ResourceStore) List(ctx context.Context) ([]models.Resource, error) {
	q := newListQuery("resources", resourceColumns).OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.Resource, error) {
		r, err := scanResource(rows)
		if err != nil {
			return models.Resource{}, err
		}
		return *r, nil
	})
}

// FindByID retrieves a resource by ID. Returns nil if not found.
func (s *ResourceStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+resourceColumns+` FROM resources WHERE id = $1`, id)
	r, err := scanResource(row)
	return queryOne(err, r, "find resource by id")
}

// Create inserts a new resource and returns it.
func (s *ResourceStore) Create(ctx context.Context, r *models.Resource) (*models.Resource, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO resources (title, category, description, file_url, file_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+resourceColumns,
		r.Title, r.Category, r.Description, r.FileURL, r.FileName,
	)
	created, err := scanResource(row)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}
	return created, nil
}

// Update modifies an existing resource.
func (s *ResourceStore) Update(ctx context.Context, r *models.Resource) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE resources SET
			title = $1, category = $2, description = $3,
			file_url = $4, file_name = $5, updated_at = NOW()
		WHERE id = $6
	`, r.Title, r.Category, r.Description, r.FileURL, r.FileName, r.ID)
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	return nil
}

// Delete removes a resource by ID.
func (s *ResourceStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	return nil
}
