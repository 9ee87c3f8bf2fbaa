// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_site.go holds the homepage furniture handlers: hero banners,
// program teaser cards, the partner logo strip and promotional videos.
// Cards and partners are batch-edited; the whole ordered set posts back
// in one transactional save.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"charitypress/internal/models"
	"charitypress/internal/render"
)

// --- Banners CRUD ---

// BannersList renders the banner management page.
func (a *Admin) BannersList(w http.ResponseWriter, r *http.Request) {
	banners, err := a.stores.Banners.List(r.Context())
	if err != nil {
		slog.Error("list banners failed", "error", err)
	}

	a.renderer.Page(w, r, "banners_list", &render.PageData{
		Title:   "Banners",
		Section: "banners",
		Data:    map[string]any{"Items": banners},
	})
}

// BannerNew renders the new banner form.
func (a *Admin) BannerNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "banner_form", &render.PageData{
		Title:   "New Banner",
		Section: "banners",
		Data:    map[string]any{"IsNew": true},
	})
}

func bannerFromForm(r *http.Request) *models.Banner {
	order, _ := strconv.Atoi(r.FormValue("display_order"))
	return &models.Banner{
		Title:        r.FormValue("title"),
		Subtitle:     optional(r.FormValue("subtitle")),
		ImageURL:     r.FormValue("image_url"),
		LinkURL:      optional(r.FormValue("link_url")),
		DisplayOrder: order,
		IsActive:     r.FormValue("is_active") == "on",
	}
}

func validateBanner(b *models.Banner) string {
	return checkRules([]rule{
		{Label: "Title", Value: b.Title, Required: true, MaxLen: maxTitleLen},
		{Label: "Subtitle", Value: deref(b.Subtitle), MaxLen: maxTitleLen},
		{Label: "Image", Value: b.ImageURL, Required: true, MaxLen: maxURLLen, Kind: "url"},
		{Label: "Link", Value: deref(b.LinkURL), MaxLen: maxURLLen, Kind: "url"},
	})
}

// BannerCreate handles the new banner form submission.
func (a *Admin) BannerCreate(w http.ResponseWriter, r *http.Request) {
	b := bannerFromForm(r)

	if errMsg := validateBanner(b); errMsg != "" {
		a.renderer.Page(w, r, "banner_form", &render.PageData{
			Title:   "New Banner",
			Section: "banners",
			Data:    map[string]any{"IsNew": true, "Item": b, "Error": errMsg},
		})
		return
	}

	created, err := a.stores.Banners.Create(r.Context(), b)
	if err != nil {
		slog.Error("create banner failed", "error", err)
		a.renderer.Page(w, r, "banner_form", &render.PageData{
			Title:   "New Banner",
			Section: "banners",
			Data:    map[string]any{"IsNew": true, "Item": b, "Error": "Failed to create banner."},
		})
		return
	}

	a.invalidateAndAudit(r, "banner", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Banner created.", "/admin/banners")
}

// BannerEdit renders the edit banner form.
func (a *Admin) BannerEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b, err := a.stores.Banners.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find banner failed", "error", err)
	}
	if b == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "banner_form", &render.PageData{
		Title:   "Edit Banner",
		Section: "banners",
		Data:    map[string]any{"Item": b},
	})
}

// BannerUpdate handles the edit banner form submission.
func (a *Admin) BannerUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	b := bannerFromForm(r)
	b.ID = id

	if errMsg := validateBanner(b); errMsg != "" {
		a.renderer.Page(w, r, "banner_form", &render.PageData{
			Title:   "Edit Banner",
			Section: "banners",
			Data:    map[string]any{"Item": b, "Error": errMsg},
		})
		return
	}

	if err := a.stores.Banners.Update(r.Context(), b); err != nil {
		slog.Error("update banner failed", "error", err)
		a.renderer.Page(w, r, "banner_form", &render.PageData{
			Title:   "Edit Banner",
			Section: "banners",
			Data:    map[string]any{"Item": b, "Error": "Failed to save banner."},
		})
		return
	}

	a.invalidateAndAudit(r, "banner", id, "update")
	a.flashAndRedirect(w, r, "success", "Banner saved.", "/admin/banners")
}

// BannerDelete handles banner deletion.
func (a *Admin) BannerDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Banners.Delete(r.Context(), id); err != nil {
		slog.Error("delete banner failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete banner.", "/admin/banners")
		return
	}

	a.invalidateAndAudit(r, "banner", id, "delete")
	a.flashAndRedirect(w, r, "success", "Banner deleted.", "/admin/banners")
}

// --- Program cards (batch edit) ---

// ProgramCardsForm renders the batch editor for homepage program cards.
func (a *Admin) ProgramCardsForm(w http.ResponseWriter, r *http.Request) {
	cards, err := a.stores.ProgramCards.List(r.Context())
	if err != nil {
		slog.Error("list program cards failed", "error", err)
	}

	a.renderer.Page(w, r, "program_cards", &render.PageData{
		Title:   "Homepage Cards",
		Section: "program-cards",
		Data:    map[string]any{"Items": cards},
	})
}

// ProgramCardsSave persists the whole card set. Row order in the form is
// the display order; rows the admin removed are deleted.
func (a *Admin) ProgramCardsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ids := r.PostForm["row_id"]
	titles := r.PostForm["title"]
	descriptions := r.PostForm["description"]
	icons := r.PostForm["icon_url"]
	links := r.PostForm["link_url"]

	var cards []models.ProgramCard
	for i := range titles {
		if titles[i] == "" {
			continue // blank row from the "add row" template
		}
		card := models.ProgramCard{
			Title:       titles[i],
			Description: formAt(descriptions, i),
		}
		if v := formAt(icons, i); v != "" {
			card.IconURL = &v
		}
		if v := formAt(links, i); v != "" {
			card.LinkURL = &v
		}
		if id, err := uuid.Parse(formAt(ids, i)); err == nil {
			card.ID = id
		}
		if errMsg := checkRules([]rule{
			{Label: "Card title", Value: card.Title, Required: true, MaxLen: maxTitleLen},
			{Label: "Card description", Value: card.Description, MaxLen: maxExcerptLen},
			{Label: "Card link", Value: deref(card.LinkURL), MaxLen: maxURLLen, Kind: "url"},
		}); errMsg != "" {
			a.renderer.Page(w, r, "program_cards", &render.PageData{
				Title:   "Homepage Cards",
				Section: "program-cards",
				Data:    map[string]any{"Items": cards, "Error": errMsg},
			})
			return
		}
		cards = append(cards, card)
	}

	if err := a.stores.ProgramCards.SaveAll(r.Context(), cards); err != nil {
		slog.Error("save program cards failed", "error", err)
		a.renderer.Page(w, r, "program_cards", &render.PageData{
			Title:   "Homepage Cards",
			Section: "program-cards",
			Data:    map[string]any{"Items": cards, "Error": "Failed to save cards. Nothing was changed."},
		})
		return
	}

	a.invalidateAndAudit(r, "program_card", uuid.Nil, "update")
	a.flashAndRedirect(w, r, "success", "Program cards saved.", "/admin/program-cards")
}

// --- Partners (batch edit) ---

// PartnersForm renders the batch editor for the partner logo strip.
func (a *Admin) PartnersForm(w http.ResponseWriter, r *http.Request) {
	partners, err := a.stores.Partners.List(r.Context())
	if err != nil {
		slog.Error("list partners failed", "error", err)
	}

	a.renderer.Page(w, r, "partners", &render.PageData{
		Title:   "Partners",
		Section: "partners",
		Data:    map[string]any{"Items": partners},
	})
}

// PartnersSave persists the whole partner set transactionally.
func (a *Admin) PartnersSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	ids := r.PostForm["row_id"]
	names := r.PostForm["name"]
	logos := r.PostForm["logo_url"]
	sites := r.PostForm["website_url"]

	var partners []models.Partner
	for i := range names {
		if names[i] == "" {
			continue
		}
		p := models.Partner{
			Name:    names[i],
			LogoURL: formAt(logos, i),
		}
		if v := formAt(sites, i); v != "" {
			p.WebsiteURL = &v
		}
		if id, err := uuid.Parse(formAt(ids, i)); err == nil {
			p.ID = id
		}
		if errMsg := checkRules([]rule{
			{Label: "Partner name", Value: p.Name, Required: true, MaxLen: maxNameLen},
			{Label: "Partner logo", Value: p.LogoURL, Required: true, MaxLen: maxURLLen, Kind: "url"},
			{Label: "Partner website", Value: deref(p.WebsiteURL), MaxLen: maxURLLen, Kind: "url"},
		}); errMsg != "" {
			a.renderer.Page(w, r, "partners", &render.PageData{
				Title:   "Partners",
				Section: "partners",
				Data:    map[string]any{"Items": partners, "Error": errMsg},
			})
			return
		}
		partners = append(partners, p)
	}

	if err := a.stores.Partners.SaveAll(r.Context(), partners); err != nil {
		slog.Error("save partners failed", "error", err)
		a.renderer.Page(w, r, "partners", &render.PageData{
			Title:   "Partners",
			Section: "partners",
			Data:    map[string]any{"Items": partners, "Error": "Failed to save partners. Nothing was changed."},
		})
		return
	}

	a.invalidateAndAudit(r, "partner", uuid.Nil, "update")
	a.flashAndRedirect(w, r, "success", "Partners saved.", "/admin/partners")
}

// --- Videos CRUD ---

// VideosList renders the video management page.
func (a *Admin) VideosList(w http.ResponseWriter, r *http.Request) {
	videos, err := a.stores.Videos.List(r.Context())
	if err != nil {
		slog.Error("list videos failed", "error", err)
	}

	a.renderer.Page(w, r, "videos_list", &render.PageData{
		Title:   "Videos",
		Section: "videos",
		Data:    map[string]any{"Items": videos},
	})
}

// VideoNew renders the new video form.
func (a *Admin) VideoNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "video_form", &render.PageData{
		Title:   "New Video",
		Section: "videos",
		Data:    map[string]any{"IsNew": true},
	})
}

func videoFromForm(r *http.Request) *models.Video {
	order, _ := strconv.Atoi(r.FormValue("display_order"))
	return &models.Video{
		Title:        r.FormValue("title"),
		YouTubeURL:   r.FormValue("youtube_url"),
		Description:  optional(r.FormValue("description")),
		DisplayOrder: order,
	}
}

func validateVideo(v *models.Video) string {
	return checkRules([]rule{
		{Label: "Title", Value: v.Title, Required: true, MaxLen: maxTitleLen},
		{Label: "YouTube URL", Value: v.YouTubeURL, Required: true, MaxLen: maxURLLen, Kind: "url"},
		{Label: "Description", Value: deref(v.Description), MaxLen: maxExcerptLen},
	})
}

// VideoCreate handles the new video form submission.
func (a *Admin) VideoCreate(w http.ResponseWriter, r *http.Request) {
	v := videoFromForm(r)

	if errMsg := validateVideo(v); errMsg != "" {
		a.renderer.Page(w, r, "video_form", &render.PageData{
			Title:   "New Video",
			Section: "videos",
			Data:    map[string]any{"IsNew": true, "Item": v, "Error": errMsg},
		})
		return
	}

	created, err := a.stores.Videos.Create(r.Context(), v)
	if err != nil {
		slog.Error("create video failed", "error", err)
		a.renderer.Page(w, r, "video_form", &render.PageData{
			Title:   "New Video",
			Section: "videos",
			Data:    map[string]any{"IsNew": true, "Item": v, "Error": "Failed to create video."},
		})
		return
	}

	a.invalidateAndAudit(r, "video", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Video created.", "/admin/videos")
}

// VideoEdit renders the edit video form.
func (a *Admin) VideoEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	v, err := a.stores.Videos.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find video failed", "error", err)
	}
	if v == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "video_form", &render.PageData{
		Title:   "Edit Video",
		Section: "videos",
		Data:    map[string]any{"Item": v},
	})
}

// VideoUpdate handles the edit video form submission.
func (a *Admin) VideoUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	v := videoFromForm(r)
	v.ID = id

	if errMsg := validateVideo(v); errMsg != "" {
		a.renderer.Page(w, r, "video_form", &render.PageData{
			Title:   "Edit Video",
			Section: "videos",
			Data:    map[string]any{"Item": v, "Error": errMsg},
		})
		return
	}

	if err := a.stores.Videos.Update(r.Context(), v); err != nil {
		slog.Error("update video failed", "error", err)
		a.renderer.Page(w, r, "video_form", &render.PageData{
			Title:   "Edit Video",
			Section: "videos",
			Data:    map[string]any{"Item": v, "Error": "Failed to save video."},
		})
		return
	}

	a.invalidateAndAudit(r, "video", id, "update")
	a.flashAndRedirect(w, r, "success", "Video saved.", "/admin/videos")
}

// VideoDelete handles video deletion.
func (a *Admin) VideoDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Videos.Delete(r.Context(), id); err != nil {
		slog.Error("delete video failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete video.", "/admin/videos")
		return
	}

	a.invalidateAndAudit(r, "video", id, "delete")
	a.flashAndRedirect(w, r, "success", "Video deleted.", "/admin/videos")
}

// formAt reads index i from a parallel form array, tolerating short rows.
func formAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
