package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

func TestUserStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	email := "test-" + uuid.NewString()[:8] + "@example.org"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	u, err := s.Create(ctx, email, "correct horse battery", "Test Editor", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if u.PasswordHash == "correct horse battery" {
		t.Error("password must not be stored in plaintext")
	}
	if u.TOTPEnabled {
		t.Error("new user should not have 2FA enabled")
	}

	// FindByEmail.
	found, err := s.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if found == nil || found.ID != u.ID {
		t.Fatal("expected the created user")
	}

	// Password checks.
	if !s.CheckPassword(found, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if s.CheckPassword(found, "wrong password") {
		t.Error("wrong password accepted")
	}

	// Unknown email.
	missing, err := s.FindByEmail(ctx, "nobody@example.org")
	if err != nil {
		t.Fatalf("FindByEmail (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown email")
	}
}

func TestUserStoreTOTPLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	email := "test-totp-" + uuid.NewString()[:8] + "@example.org"
	t.Cleanup(func() { cleanUsers(t, db, email) })

	u, err := s.Create(ctx, email, "password123", "TOTP User", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.SetTOTPSecret(ctx, u.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(ctx, u.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}

	found, _ := s.FindByID(ctx, u.ID)
	if !found.TOTPEnabled {
		t.Error("expected 2FA enabled")
	}
	if found.TOTPSecret == nil || *found.TOTPSecret != "JBSWY3DPEHPK3PXP" {
		t.Error("expected stored TOTP secret")
	}
	if found.Needs2FASetup() {
		t.Error("enrolled user should not need setup")
	}

	// Reset forces re-enrollment on next login.
	if err := s.ResetTOTP(ctx, u.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	found, _ = s.FindByID(ctx, u.ID)
	if found.TOTPEnabled {
		t.Error("expected 2FA disabled after reset")
	}
	if found.TOTPSecret != nil {
		t.Error("expected cleared secret after reset")
	}
	if !found.Needs2FASetup() {
		t.Error("reset user should need setup again")
	}
}

func TestUserStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	ctx := context.Background()

	email := "test-del-" + uuid.NewString()[:8] + "@example.org"

	u, err := s.Create(ctx, email, "password123", "Doomed", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := s.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, _ := s.FindByID(ctx, u.ID)
	if found != nil {
		t.Error("expected nil after delete")
	}
}
