// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	rr := httptest.NewRecorder()
	SetFlash(rr, Flash{Type: "success", Message: "Post deleted."})

	req := httptest.NewRequest(http.MethodGet, "/admin/posts", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	rr2 := httptest.NewRecorder()
	got := takeFlash(rr2, req)
	if len(got) != 1 {
		t.Fatalf("expected 1 flash, got %d", len(got))
	}
	if got[0].Type != "success" || got[0].Message != "Post deleted." {
		t.Errorf("flash: got %+v", got[0])
	}

	// The cookie must be cleared so the flash shows exactly once.
	cleared := false
	for _, c := range rr2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the flash cookie to be cleared")
	}
}

func TestTakeFlashMissingOrMangledCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if got := takeFlash(httptest.NewRecorder(), req); got != nil {
		t.Errorf("no cookie: got %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "not-valid-content"})
	if got := takeFlash(httptest.NewRecorder(), req); got != nil {
		t.Errorf("mangled cookie: got %+v", got)
	}
}

func TestPageRendersPendingFlash(t *testing.T) {
	renderer, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set := httptest.NewRecorder()
	SetFlash(set, Flash{Type: "success", Message: "Banner deleted."})

	req := httptest.NewRequest(http.MethodGet, "/admin/banners", nil)
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	renderer.Page(rr, req, "dashboard", &PageData{
		Title: "Dashboard",
		Data:  map[string]any{"PostCount": 0, "UnreadContacts": 0, "DonationCount": 0, "VolunteerCount": 0},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Banner deleted.") {
		t.Error("expected the flash message in the rendered page")
	}
}

func TestPageSkipsFlashForPartials(t *testing.T) {
	renderer, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set := httptest.NewRecorder()
	SetFlash(set, Flash{Type: "success", Message: "Video saved."})

	req := httptest.NewRequest(http.MethodGet, "/admin/videos", nil)
	req.Header.Set("HX-Request", "true")
	for _, c := range set.Result().Cookies() {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	renderer.Page(rr, req, "dashboard", &PageData{
		Title: "Dashboard",
		Data:  map[string]any{"PostCount": 0, "UnreadContacts": 0, "DonationCount": 0, "VolunteerCount": 0},
	})

	// Partials render only the content block; the flash stays queued for
	// the next full page load.
	for _, c := range rr.Result().Cookies() {
		if c.Name == flashCookie {
			t.Error("partial render should not consume the flash cookie")
		}
	}
}
