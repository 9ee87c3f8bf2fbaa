package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSiteSettingStoreSetAndGet(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)
	ctx := context.Background()

	key := "test_setting_" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanSettings(t, db, key) })

	// Missing key returns the fallback.
	val, err := s.Get(ctx, key, "fallback")
	if err != nil {
		t.Fatalf("Get (missing): %v", err)
	}
	if val != "fallback" {
		t.Errorf("got %q, want fallback", val)
	}

	// Set then read back.
	if err := s.Set(ctx, key, "hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err = s.Get(ctx, key, "fallback")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "hello" {
		t.Errorf("got %q, want hello", val)
	}

	// Upsert overwrites.
	if err := s.Set(ctx, key, "world"); err != nil {
		t.Fatalf("Set (upsert): %v", err)
	}
	val, _ = s.Get(ctx, key, "fallback")
	if val != "world" {
		t.Errorf("got %q, want world", val)
	}

	// Empty stored value falls back.
	if err := s.Set(ctx, key, ""); err != nil {
		t.Fatalf("Set (empty): %v", err)
	}
	val, _ = s.Get(ctx, key, "fallback")
	if val != "fallback" {
		t.Errorf("got %q, want fallback for empty value", val)
	}
}

func TestSiteSettingStoreSetMany(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)
	ctx := context.Background()

	suffix := uuid.NewString()[:8]
	keyA := "test_many_a_" + suffix
	keyB := "test_many_b_" + suffix
	t.Cleanup(func() { cleanSettings(t, db, keyA, keyB) })

	err := s.SetMany(ctx, map[string]string{keyA: "one", keyB: "two"})
	if err != nil {
		t.Fatalf("SetMany: %v", err)
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if all[keyA] != "one" {
		t.Errorf("%s: got %q, want one", keyA, all[keyA])
	}
	if all[keyB] != "two" {
		t.Errorf("%s: got %q, want two", keyB, all[keyB])
	}
}
