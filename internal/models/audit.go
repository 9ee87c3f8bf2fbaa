// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry records one admin mutation: who created, updated or deleted
// which entity. Deletes are hard deletes, so the audit trail is the only
// record that a row ever existed.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Entity    string    `json:"entity"` // e.g. "post", "banner"
	EntityID  uuid.UUID `json:"entity_id"`
	Action    string    `json:"action"` // "create", "update", "delete"
	ActorID   uuid.UUID `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}
