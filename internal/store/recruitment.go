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

// RecruitmentStore manages staff and activist recruitment notices.
type RecruitmentStore struct {
	db *sql.DB
}

// NewRecruitmentStore returns a new RecruitmentStore.
func NewRecruitmentStore(db *sql.DB) *RecruitmentStore {
	return &RecruitmentStore{db: db}
}

const recruitmentColumns = `id, title, body, deadline, is_open, created_at, updated_at`

func scanRecruitment(scanner interface{ Scan(...any) error }) (*models.Recruitment, error) {
	r := &models.Recruitment{}
	err := scanner.Scan(&r.ID, &r.Title, &r.Body, &r.Deadline, &r.IsOpen, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanRecruitmentRows(rows *sql.Rows) (models.Recruitment, error) {
	r, err := scanRecruitment(rows)
	if err != nil {
		return models.Recruitment{}, err
	}
	return *r, nil
}

// List returns every notice, newest first.
func (s *RecruitmentStore) List(ctx context.Context) ([]models.Recruitment, error) {
	q := newListQuery("recruitments", recruitmentColumns).OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanRecruitmentRows)
}

// ListOpen returns open notices for the public listing, newest first.
// Deadline filtering happens at render time so a notice that expired an
// hour ago still shows as closed rather than vanishing.
func (s *RecruitmentStore) ListOpen(ctx context.Context) ([]models.Recruitment, error) {
	q := newListQuery("recruitments", recruitmentColumns).
		Where("is_open", true).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, scanRecruitmentRows)
}

// FindByID retrieves a notice by ID. Returns nil if not found.
func (s *RecruitmentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Recruitment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+recruitmentColumns+` FROM recruitments WHERE id = $1`, id)
	r, err := scanRecruitment(row)
	return queryOne(err, r, "find recruitment by id")
}

// Create inserts a new notice and returns it.
func (s *RecruitmentStore) Create(ctx context.Context, r *models.Recruitment) (*models.Recruitment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO recruitments (title, body, deadline, is_open)
		VALUES ($1, $2, $3, $4)
		RETURNING `+recruitmentColumns,
		r.Title, r.Body, r.Deadline, r.IsOpen,
	)
	created, err := scanRecruitment(row)
	if err != nil {
		return nil, fmt.Errorf("create recruitment: %w", err)
	}
	return created, nil
}

// Update modifies an existing notice.
func (s *RecruitmentStore) Update(ctx context.Context, r *models.Recruitment) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE recruitments SET
			title = $1, body = $2, deadline = $3, is_open = $4, updated_at = NOW()
		WHERE id = $5
	`, r.Title, r.Body, r.Deadline, r.IsOpen, r.ID)
	if err != nil {
		return fmt.Errorf("update recruitment: %w", err)
	}
	return nil
}

// Delete removes a notice by ID.
func (s *RecruitmentStore) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM recruitments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recruitment: %w", err)
	}
	return nil
}
