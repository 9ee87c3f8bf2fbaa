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

// InboxStore holds the three public form inboxes. Submissions arrive
// from the public site and are read-only in the admin panel apart from
// the contact read flag and deletion.
type InboxStore struct {
	db *sql.DB
}

// NewInboxStore returns a new InboxStore.
func NewInboxStore(db *sql.DB) *InboxStore {
	return &InboxStore{db: db}
}

const donationColumns = `id, name, phone, email, donation_type, message, created_at`
const volunteerColumns = `id, name, phone, email, availability, message, created_at`
const contactColumns = `id, name, email, subject, message, is_read, created_at`

// CreateDonation records a donation inquiry.
func (s *InboxStore) CreateDonation(ctx context.Context, d *models.DonationInquiry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donation_inquiries (name, phone, email, donation_type, message)
		VALUES ($1, $2, $3, $4, $5)
	`, d.Name, d.Phone, d.Email, d.DonationType, d.Message)
	if err != nil {
		return fmt.Errorf("create donation inquiry: %w", err)
	}
	return nil
}

// ListDonations returns all donation inquiries, newest first.
// An empty type lists everything.
func (s *InboxStore) ListDonations(ctx context.Context, donationType models.DonationType) ([]models.DonationInquiry, error) {
	q := newListQuery("donation_inquiries", donationColumns).OrderBy("created_at", true)
	if donationType != "" {
		q.Where("donation_type", donationType)
	}
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.DonationInquiry, error) {
		var d models.DonationInquiry
		err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.Email, &d.DonationType, &d.Message, &d.CreatedAt)
		return d, err
	})
}

// DeleteDonation removes a donation inquiry by ID.
func (s *InboxStore) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM donation_inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete donation inquiry: %w", err)
	}
	return nil
}

// CreateVolunteer records a volunteer application.
func (s *InboxStore) CreateVolunteer(ctx context.Context, v *models.VolunteerApplication) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO volunteer_applications (name, phone, email, availability, message)
		VALUES ($1, $2, $3, $4, $5)
	`, v.Name, v.Phone, v.Email, v.Availability, v.Message)
	if err != nil {
		return fmt.Errorf("create volunteer application: %w", err)
	}
	return nil
}

// ListVolunteers returns all volunteer applications, newest first.
func (s *InboxStore) ListVolunteers(ctx context.Context) ([]models.VolunteerApplication, error) {
	q := newListQuery("volunteer_applications", volunteerColumns).OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.VolunteerApplication, error) {
		var v models.VolunteerApplication
		err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.Availability, &v.Message, &v.CreatedAt)
		return v, err
	})
}

// DeleteVolunteer removes a volunteer application by ID.
func (s *InboxStore) DeleteVolunteer(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM volunteer_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete volunteer application: %w", err)
	}
	return nil
}

// CreateContact records a contact message.
func (s *InboxStore) CreateContact(ctx context.Context, m *models.ContactMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
	`, m.Name, m.Email, m.Subject, m.Message)
	if err != nil {
		return fmt.Errorf("create contact message: %w", err)
	}
	return nil
}

// ListContacts returns all contact messages, newest first.
func (s *InboxStore) ListContacts(ctx context.Context) ([]models.ContactMessage, error) {
	q := newListQuery("contact_messages", contactColumns).OrderBy("created_at", true)
	return queryList(ctx, s.db, q, func(rows *sql.Rows) (models.ContactMessage, error) {
		var m models.ContactMessage
		err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
		return m, err
	})
}

// FindContact retrieves a contact message by ID. Returns nil if not found.
func (s *InboxStore) FindContact(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contact_messages WHERE id = $1`, id)
	m := &models.ContactMessage{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	return queryOne(err, m, "find contact message")
}

// MarkContactRead flags a contact message as read.
func (s *InboxStore) MarkContactRead(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark contact read: %w", err)
	}
	return nil
}

// DeleteContact removes a contact message by ID.
func (s *InboxStore) DeleteContact(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

// CountUnreadContacts reports how many contact messages are unread,
// for the dashboard badge.
func (s *InboxStore) CountUnreadContacts(ctx context.Context) (int, error) {
	return countRows(ctx, s.db, "contact_messages", map[string]any{"is_read": false})
}
