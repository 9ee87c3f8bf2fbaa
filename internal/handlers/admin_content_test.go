// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"database/sql"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"charitypress/internal/middleware"
	"charitypress/internal/models"
	"charitypress/internal/session"
	"charitypress/internal/store"
)

// adminRequest builds a request with a chi {id} parameter and a
// completed admin session, the state every admin mutation runs under.
func adminRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req = withChiURLParam(req, "id", id)

	sess := &session.Data{
		UserID:    uuid.New(),
		Email:     "admin@example.org",
		Role:      string(models.RoleAdmin),
		TwoFADone: true,
	}
	return req.WithContext(context.WithValue(req.Context(), middleware.SessionKey, sess))
}

// flashType decodes the queued flash cookie from a response, or "".
func flashType(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name != "cp_flash" || c.MaxAge < 0 {
			continue
		}
		raw, err := base64.RawURLEncoding.DecodeString(c.Value)
		if err != nil {
			t.Fatalf("decode flash cookie: %v", err)
		}
		typ, _, _ := strings.Cut(string(raw), "|")
		return typ
	}
	return ""
}

func TestPostDeleteAuditsAndFlashesSuccess(t *testing.T) {
	env := newTestEnv(t)
	admin := NewAdmin(env.Renderer, nil, env.Stores, nil, nil)

	slug := "test-delete-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, env.DB, slug) })

	created, err := env.Stores.Posts.Create(context.Background(), &models.Post{
		Title: "Short Lived", Slug: slug, Body: "gone soon",
		Category: models.PostCategoryNotice,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM audit_log WHERE entity_id = $1", created.ID)
	})

	rr := httptest.NewRecorder()
	admin.PostDelete(rr, adminRequest(http.MethodPost, "/admin/posts/"+created.ID.String()+"/delete", created.ID.String()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rr.Code)
	}
	if got := flashType(t, rr); got != "success" {
		t.Errorf("flash type: got %q, want success", got)
	}

	if p, _ := env.Stores.Posts.FindByID(context.Background(), created.ID); p != nil {
		t.Error("post should be gone")
	}

	var n int
	err = env.DB.QueryRow(
		"SELECT COUNT(*) FROM audit_log WHERE entity = 'post' AND entity_id = $1 AND action = 'delete'",
		created.ID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("count audit entries: %v", err)
	}
	if n != 1 {
		t.Errorf("audit entries: got %d, want 1", n)
	}
}

func TestPostDeleteFailureFlashesErrorWithoutAudit(t *testing.T) {
	env := newTestEnv(t)

	// A closed connection makes every post query fail while the audit
	// store stays live, so an erroneous audit write would be visible.
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "charitypress")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "charitypress")
	broken, err := sql.Open("pgx", "postgres://"+user+":"+pass+"@"+host+":"+port+"/"+name+"?sslmode=disable")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	broken.Close()

	admin := NewAdmin(env.Renderer, nil, &Stores{
		Posts: store.NewPostStore(broken),
		Audit: env.Stores.Audit,
	}, nil, nil)

	id := uuid.New()
	rr := httptest.NewRecorder()
	admin.PostDelete(rr, adminRequest(http.MethodPost, "/admin/posts/"+id.String()+"/delete", id.String()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rr.Code)
	}
	if got := flashType(t, rr); got != "error" {
		t.Errorf("flash type: got %q, want error", got)
	}

	var n int
	if err := env.DB.QueryRow(
		"SELECT COUNT(*) FROM audit_log WHERE entity_id = $1", id,
	).Scan(&n); err != nil {
		t.Fatalf("count audit entries: %v", err)
	}
	if n != 0 {
		t.Errorf("failed delete must not be audited, got %d entries", n)
	}
}
