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

// PartnerStore manages the partner logo strip. Like program cards,
// partners are batch-edited and saved transactionally as one ordered set.
type PartnerStore struct {
	db *sql.DB
}

// NewPartnerStore returns a new PartnerStore.
func NewPartnerStore(db *sql.DB) *PartnerStore {
	return &PartnerStore{db: db}
}

const partnerColumns = `id, name, logo_url, website_url, display_order, created_at, updated_at`

func scanPartner(scanner interface{ Scan(...any) error }) (*models.Partner, error) {
	p := &models.Partner{}
	err := scanner.Scan(
		&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL,
		&p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all partners in display order.
func (s *PartnerStore) List(ctx context.Context) ([]models.Partner, error) {
	q := newListQuery("partners", partnerColumns).
		OrderBy("display_order", false).
		OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.Partner, error) {
		p, err := scanPartner(rows)
		if err != nil {
			return models.Partner{}, err
		}
		return *p, nil
	})
}

// SaveAll persists the full ordered partner set in one transaction,
// recomputing display_order from row position. Rows removed from the set
// are deleted. All writes commit together or not at all.
func (s *PartnerStore) SaveAll(ctx context.Context, partners []models.Partner) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	keep := make([]uuid.UUID, 0, len(partners))
	for i, p := range partners {
		p.DisplayOrder = i
		if p.ID == uuid.Nil {
			var id uuid.UUID
			err = tx.QueryRowContext(ctx, `
				INSERT INTO partners (name, logo_url, website_url, display_order)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				p.Name, p.LogoURL, p.WebsiteURL, p.DisplayOrder,
			).Scan(&id)
			if err != nil {
				return fmt.Errorf("insert partner %d: %w", i, err)
			}
			keep = append(keep, id)
			continue
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE partners SET
				name = $1, logo_url = $2, website_url = $3,
				display_order = $4, updated_at = NOW()
			WHERE id = $5`,
			p.Name, p.LogoURL, p.WebsiteURL, p.DisplayOrder, p.ID,
		)
		if err != nil {
			return fmt.Errorf("update partner %s: %w", p.ID, err)
		}
		keep = append(keep, p.ID)
	}

	if err := pruneMissing(ctx, tx, "partners", keep); err != nil {
		return err
	}

	return tx.Commit()
}
