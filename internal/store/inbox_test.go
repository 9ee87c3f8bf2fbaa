package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

func strptr(s string) *string { return &s }

func TestInboxStoreDonations(t *testing.T) {
	db := testDB(t)
	s := NewInboxStore(db)
	ctx := context.Background()

	name := "test-donor-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanInbox(t, db, name) })

	err := s.CreateDonation(ctx, &models.DonationInquiry{
		Name:         name,
		Phone:        strptr("010-1234-5678"),
		DonationType: models.DonationTypeRegular,
	})
	if err != nil {
		t.Fatalf("CreateDonation: %v", err)
	}

	// Unfiltered list includes it.
	all, err := s.ListDonations(ctx, "")
	if err != nil {
		t.Fatalf("ListDonations: %v", err)
	}
	var found *models.DonationInquiry
	for i := range all {
		if all[i].Name == name {
			found = &all[i]
		}
	}
	if found == nil {
		t.Fatal("expected inquiry in unfiltered list")
	}
	if found.Email != nil {
		t.Error("expected nil email")
	}

	// Type filter.
	regular, err := s.ListDonations(ctx, models.DonationTypeRegular)
	if err != nil {
		t.Fatalf("ListDonations(regular): %v", err)
	}
	ok := false
	for _, d := range regular {
		if d.Name == name {
			ok = true
		}
	}
	if !ok {
		t.Error("expected inquiry in regular-filtered list")
	}

	goods, err := s.ListDonations(ctx, models.DonationTypeGoods)
	if err != nil {
		t.Fatalf("ListDonations(goods): %v", err)
	}
	for _, d := range goods {
		if d.Name == name {
			t.Error("regular inquiry should not appear in goods filter")
		}
	}

	// Delete.
	if err := s.DeleteDonation(ctx, found.ID); err != nil {
		t.Fatalf("DeleteDonation: %v", err)
	}
}

func TestInboxStoreVolunteers(t *testing.T) {
	db := testDB(t)
	s := NewInboxStore(db)
	ctx := context.Background()

	name := "test-volunteer-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanInbox(t, db, name) })

	err := s.CreateVolunteer(ctx, &models.VolunteerApplication{
		Name:         name,
		Phone:        "010-9876-5432",
		Email:        "vol@example.org",
		Availability: strptr("weekends"),
	})
	if err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}

	apps, err := s.ListVolunteers(ctx)
	if err != nil {
		t.Fatalf("ListVolunteers: %v", err)
	}
	found := false
	for _, a := range apps {
		if a.Name == name {
			found = true
			if a.Email != "vol@example.org" {
				t.Errorf("email: got %q", a.Email)
			}
		}
	}
	if !found {
		t.Error("expected application in list")
	}
}

func TestInboxStoreContactReadFlag(t *testing.T) {
	db := testDB(t)
	s := NewInboxStore(db)
	ctx := context.Background()

	name := "test-contact-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanInbox(t, db, name) })

	err := s.CreateContact(ctx, &models.ContactMessage{
		Name:    name,
		Email:   "writer@example.org",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	msgs, err := s.ListContacts(ctx)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	var id uuid.UUID
	for _, m := range msgs {
		if m.Name == name {
			id = m.ID
			if m.IsRead {
				t.Error("new message should be unread")
			}
		}
	}
	if id == uuid.Nil {
		t.Fatal("expected message in list")
	}

	unreadBefore, err := s.CountUnreadContacts(ctx)
	if err != nil {
		t.Fatalf("CountUnreadContacts: %v", err)
	}
	if unreadBefore < 1 {
		t.Error("expected at least one unread message")
	}

	if err := s.MarkContactRead(ctx, id); err != nil {
		t.Fatalf("MarkContactRead: %v", err)
	}

	found, err := s.FindContact(ctx, id)
	if err != nil {
		t.Fatalf("FindContact: %v", err)
	}
	if found == nil {
		t.Fatal("expected message")
	}
	if !found.IsRead {
		t.Error("expected message marked read")
	}

	// Not found.
	missing, _ := s.FindContact(ctx, uuid.New())
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}
