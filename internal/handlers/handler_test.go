// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"charitypress/internal/database"
	"charitypress/internal/render"
	"charitypress/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "charitypress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "charitypress")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds the dependencies handler integration tests need. The
// session store and page cache are left nil: handlers treat a nil page
// cache as "render every time", and the tested paths never touch Valkey.
type testEnv struct {
	DB       *sql.DB
	Renderer *render.Renderer
	Stores   *Stores
	Public   *Public
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	stores := &Stores{
		Users:        store.NewUserStore(db),
		Settings:     store.NewSiteSettingStore(db),
		Posts:        store.NewPostStore(db),
		Pages:        store.NewPageStore(db),
		Banners:      store.NewBannerStore(db),
		ProgramCards: store.NewProgramCardStore(db),
		Partners:     store.NewPartnerStore(db),
		Programs:     store.NewProgramStore(db),
		Recruitments: store.NewRecruitmentStore(db),
		Gallery:      store.NewGalleryStore(db),
		Videos:       store.NewVideoStore(db),
		Resources:    store.NewResourceStore(db),
		Inbox:        store.NewInboxStore(db),
		Audit:        store.NewAuditLogStore(db),
	}

	return &testEnv{
		DB:       db,
		Renderer: renderer,
		Stores:   stores,
		Public:   NewPublic(renderer, stores, nil),
	}
}

// cleanInbox removes test form submissions by submitter name.
func cleanInbox(t *testing.T, db *sql.DB, names ...string) {
	t.Helper()
	for _, name := range names {
		db.Exec("DELETE FROM donation_inquiries WHERE name = $1", name)
		db.Exec("DELETE FROM volunteer_applications WHERE name = $1", name)
		db.Exec("DELETE FROM contact_messages WHERE name = $1", name)
	}
}

// cleanResources empties the resources table. No other test suite seeds
// it, so a wholesale delete keeps the listing assertions deterministic.
func cleanResources(t *testing.T, db *sql.DB) {
	t.Helper()
	db.Exec("DELETE FROM resources")
}

// cleanPosts removes test posts by slug.
func cleanPosts(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	for _, s := range slugs {
		db.Exec("DELETE FROM posts WHERE slug = $1", s)
	}
}
