// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the CharityPress site.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"charitypress/internal/cache"
	"charitypress/internal/middleware"
	"charitypress/internal/models"
	"charitypress/internal/render"
	"charitypress/internal/session"
	"charitypress/internal/storage"
	"charitypress/internal/store"
)

// Stores bundles every store the admin panel touches. One struct keeps
// the handler constructors readable as the entity count grows.
type Stores struct {
	Users        *store.UserStore
	Settings     *store.SiteSettingStore
	Posts        *store.PostStore
	Pages        *store.PageStore
	Banners      *store.BannerStore
	ProgramCards *store.ProgramCardStore
	Partners     *store.PartnerStore
	Programs     *store.ProgramStore
	Recruitments *store.RecruitmentStore
	Gallery      *store.GalleryStore
	Videos       *store.VideoStore
	Resources    *store.ResourceStore
	Inbox        *store.InboxStore
	Audit        *store.AuditLogStore
}

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer      *render.Renderer
	sessions      *session.Store
	stores        *Stores
	storageClient *storage.Client
	pageCache     *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
// storageClient may be nil if S3 is not configured.
func NewAdmin(renderer *render.Renderer, sessions *session.Store, stores *Stores, storageClient *storage.Client, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:      renderer,
		sessions:      sessions,
		stores:        stores,
		storageClient: storageClient,
		pageCache:     pageCache,
	}
}

// Dashboard renders the admin dashboard with content counts, the unread
// contact badge and the recent audit trail.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	postCount, _ := a.stores.Posts.Count(ctx)
	unread, _ := a.stores.Inbox.CountUnreadContacts(ctx)
	donations, _ := a.stores.Inbox.ListDonations(ctx, "")
	volunteers, _ := a.stores.Inbox.ListVolunteers(ctx)
	recent, err := a.stores.Audit.Recent(ctx, 20)
	if err != nil {
		slog.Error("load audit trail failed", "error", err)
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"PostCount":      postCount,
			"UnreadContacts": unread,
			"DonationCount":  len(donations),
			"VolunteerCount": len(volunteers),
			"AuditEntries":   recent,
		},
	})
}

// SettingsForm renders the site settings form.
func (a *Admin) SettingsForm(w http.ResponseWriter, r *http.Request) {
	settings, err := a.stores.Settings.All(r.Context())
	if err != nil {
		slog.Error("load settings failed", "error", err)
	}

	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Site Settings",
		Section: "settings",
		Data:    map[string]any{"Settings": settings},
	})
}

// settingKeys lists the editable site settings, which doubles as the
// whitelist for the save handler.
var settingKeys = []string{
	"site_name", "tagline", "contact_email", "contact_phone", "address",
	"bank_account", "sns_facebook", "sns_instagram", "sns_youtube",
	"footer_text",
}

// SettingsSave persists the settings form atomically.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	values := make(map[string]string, len(settingKeys))
	for _, key := range settingKeys {
		values[key] = r.FormValue(key)
	}

	if err := a.stores.Settings.SetMany(r.Context(), values); err != nil {
		slog.Error("save settings failed", "error", err)
		a.renderer.Page(w, r, "settings", &render.PageData{
			Title:   "Site Settings",
			Section: "settings",
			Data: map[string]any{
				"Settings": models.SiteSettings(values),
				"Error":    "Failed to save settings.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "site_settings", uuid.Nil, "update")
	a.flashAndRedirect(w, r, "success", "Settings saved.", "/admin/settings")
}

// flashAndRedirect queues a one-shot toast and redirects back to the
// given admin screen. Every mutation ends here so the outcome is
// visible after the post-redirect-get cycle.
func (a *Admin) flashAndRedirect(w http.ResponseWriter, r *http.Request, typ, msg, to string) {
	render.SetFlash(w, render.Flash{Type: typ, Message: msg})
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// invalidateAndAudit flushes the public page cache and records the
// mutation in the audit trail. Called after every successful admin write.
func (a *Admin) invalidateAndAudit(r *http.Request, entity string, entityID uuid.UUID, action string) {
	ctx := r.Context()
	if a.pageCache != nil {
		a.pageCache.InvalidateAll(ctx)
	}
	if sess := middleware.SessionFromCtx(ctx); sess != nil {
		a.stores.Audit.Log(ctx, entity, entityID, action, sess.UserID)
	}
}

// parseID reads and parses the {id} URL parameter. On failure it writes
// a 400 and returns false.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// optional converts a form value to a nullable column, treating empty
// strings as NULL.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// deref reads a nullable column value for validation.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// shortID returns a short random identifier for slug fallbacks when a
// title contains no sluggable characters.
func shortID() string {
	return uuid.NewString()[:8]
}
