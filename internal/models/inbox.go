// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DonationType distinguishes the kinds of giving a donor can ask about.
type DonationType string

const (
	DonationTypeRegular DonationType = "regular"
	DonationTypeOneTime DonationType = "one_time"
	DonationTypeGoods   DonationType = "goods"
)

// DonationTypes lists the valid donation types in display order.
var DonationTypes = []DonationType{
	DonationTypeRegular, DonationTypeOneTime, DonationTypeGoods,
}

// ValidDonationType reports whether t names a known donation type.
func ValidDonationType(t DonationType) bool {
	for _, known := range DonationTypes {
		if t == known {
			return true
		}
	}
	return false
}

// DonationInquiry is a public donation-interest form submission.
// Inquiries are read-only in the admin panel apart from deletion.
type DonationInquiry struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Phone        *string      `json:"phone,omitempty"`
	Email        *string      `json:"email,omitempty"`
	DonationType DonationType `json:"donation_type"`
	Message      *string      `json:"message,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// VolunteerApplication is a public volunteer sign-up form submission.
type VolunteerApplication struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Availability *string   `json:"availability,omitempty"`
	Message      *string   `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContactMessage is a public contact form submission. IsRead tracks
// whether an admin has opened it.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
