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

// ProgramCardStore manages the homepage program teaser cards.
// Cards are edited as one ordered set: SaveAll persists the whole array
// in a single transaction, recomputing display_order from row position.
type ProgramCardStore struct {
	db *sql.DB
}

// NewProgramCardStore returns a new ProgramCardStore.
func NewProgramCardStore(db *sql.DB) *ProgramCardStore {
	return &ProgramCardStore{db: db}
}

const programCardColumns = `id, title, description, icon_url, link_url, display_order, created_at, updated_at`

func scanProgramCard(scanner interface{ Scan(...any) error }) (*models.ProgramCard, error) {
	c := &models.ProgramCard{}
	err := scanner.Scan(
		&c.ID, &c.Title, &c.Description, &c.IconURL, &c.LinkURL,
		&c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns all cards in display order.
func (s *ProgramCardStore) List(ctx context.Context) ([]models.ProgramCard, error) {
	q := newListQuery("program_cards", programCardColumns).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.ProgramCard, error) {
		c, err := scanProgramCard(rows)
		if err != nil {
			return models.ProgramCard{}, err
		}
		return *c, nil
	})
}

// SaveAll persists the full ordered card set in one transaction. Rows with
// an ID are updated, rows without are inserted, and rows missing from the
// set are deleted. display_order comes from the row's position. All writes
// commit together or not at all.
func (s *ProgramCardStore) SaveAll(ctx context.Context, cards []models.ProgramCard) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	keep := make([]uuid.UUID, 0, len(cards))
	for i, c := range cards {
		c.DisplayOrder = i
		if c.ID == uuid.Nil {
			var id uuid.UUID
			err = tx.QueryRowContext(ctx, `
				INSERT INTO program_cards (title, description, icon_url, link_url, display_order)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				c.Title, c.Description, c.IconURL, c.LinkURL, c.DisplayOrder,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("insert program card %d: %w", i, err)
			}
			keep = append(keep, id)
			continue
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE program_cards SET
				title = $1, description = $2, icon_url = $3, link_url = $4,
				display_order = $5, updated_at = NOW()
			WHERE id = $6`,
			c.Title, c.Description, c.IconURL, c.LinkURL, c.DisplayOrder, c.ID,
		)
		if err != nil {
			return fmt.Errorf("update program card %s: %w", c.ID, err)
		}
		keep = append(keep, c.ID)
	}

	// Remove cards the admin deleted from the set.
	if err := pruneMissing(ctx, tx, "program_cards", keep); err != nil {
		return err
	}

	return tx.Commit()
}
