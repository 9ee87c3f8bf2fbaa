// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// audit_log.go records admin mutations in the database. Deletes are hard
// deletes everywhere in the panel, so the audit trail is the only record
// that a row ever existed.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

// AuditLogStore handles the admin audit trail.
type AuditLogStore struct {
	db *sql.DB
}

// NewAuditLogStore creates a new AuditLogStore.
func NewAuditLogStore(db *sql.DB) *AuditLogStore {
	return &AuditLogStore{db: db}
}

// Log records an admin mutation.
func (s *AuditLogStore) Log(ctx context.Context, entity string, entityID uuid.UUID, action string, actorID uuid.UUID) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO audit_log (entity, entity_id, action, actor_id)
		VALUES ($1, $2, $3, $4)
	`, entity, entityID, action, actorID)
	if err != nil {
		// Log but don't fail. Audit logging is best-effort.
		slog.Warn("failed to write audit entry",
			"entity", entity,
			"entity_id", entityID,
			"action", action,
			"error", err,
		)
		return
	}
	slog.Debug("audit entry written",
		"entity", entity,
		"entity_id", entityID,
		"action", action,
	)
}

// Recent returns the most recent audit entries for the dashboard,
// limited to the specified count.
func (s *AuditLogStore) Recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entity, entity_id, action, actor_id, created_at
		FROM audit_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ID, &e.Entity, &e.EntityID, &e.Action, &e.ActorID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
