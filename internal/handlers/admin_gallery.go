// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_gallery.go holds the photo album and downloadable resource
// handlers. Album photo lists arrive as one URL per line from the form
// textarea and are stored as an ordered array.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"charitypress/internal/models"
	"charitypress/internal/render"
)

// --- Gallery albums CRUD ---

// AlbumsList renders the album management page.
func (a *Admin) AlbumsList(w http.ResponseWriter, r *http.Request) {
	albums, err := a.stores.Gallery.List(r.Context())
	if err != nil {
		slog.Error("list albums failed", "error", err)
	}

	a.renderer.Page(w, r, "albums_list", &render.PageData{
		Title:   "Gallery",
		Section: "gallery",
		Data:    map[string]any{"Items": albums},
	})
}

// AlbumNew renders the new album form.
func (a *Admin) AlbumNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "album_form", &render.PageData{
		Title:   "New Album",
		Section: "gallery",
		Data:    map[string]any{"IsNew": true},
	})
}

func albumFromForm(r *http.Request) *models.GalleryAlbum {
	a := &models.GalleryAlbum{
		Title:       r.FormValue("title"),
		Description: optional(r.FormValue("description")),
		CoverURL:    optional(r.FormValue("cover_url")),
		ImageURLs:   splitLines(r.FormValue("image_urls")),
	}
	if d := r.FormValue("taken_at"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			a.TakenAt = &t
		}
	}
	return a
}

func validateAlbum(al *models.GalleryAlbum) string {
	rules := []rule{
		{Label: "Title", Value: al.Title, Required: true, MaxLen: maxTitleLen},
		{Label: "Description", Value: deref(al.Description), MaxLen: maxExcerptLen},
		{Label: "Cover", Value: deref(al.CoverURL), MaxLen: maxURLLen, Kind: "url"},
	}
	for _, u := range al.ImageURLs {
		rules = append(rules, rule{Label: "Photo", Value: u, MaxLen: maxURLLen, Kind: "url"})
	}
	return checkRules(rules)
}

// AlbumCreate handles the new album form submission.
func (a *Admin) AlbumCreate(w http.ResponseWriter, r *http.Request) {
	al := albumFromForm(r)

	if errMsg := validateAlbum(al); errMsg != "" {
		a.renderer.Page(w, r, "album_form", &render.PageData{
			Title:   "New Album",
			Section: "gallery",
			Data: map[string]any{
				"IsNew": true, "Item": al, "Error": errMsg,
				"ImageText": strings.Join(al.ImageURLs, "\n"),
			},
		})
		return
	}

	created, err := a.stores.Gallery.Create(r.Context(), al)
	if err != nil {
		slog.Error("create album failed", "error", err)
		a.renderer.Page(w, r, "album_form", &render.PageData{
			Title:   "New Album",
			Section: "gallery",
			Data: map[string]any{
				"IsNew": true, "Item": al, "Error": "Failed to create album.",
				"ImageText": strings.Join(al.ImageURLs, "\n"),
			},
		})
		return
	}

	a.invalidateAndAudit(r, "gallery_album", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Album created.", "/admin/gallery")
}

// AlbumEdit renders the edit album form.
func (a *Admin) AlbumEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	al, err := a.stores.Gallery.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find album failed", "error", err)
	}
	if al == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "album_form", &render.PageData{
		Title:   "Edit Album",
		Section: "gallery",
		Data: map[string]any{
			"Item":      al,
			"ImageText": strings.Join(al.ImageURLs, "\n"),
		},
	})
}

// AlbumUpdate handles the edit album form submission. The photo list is
// replaced whole.
func (a *Admin) AlbumUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	al := albumFromForm(r)
	al.ID = id

	if errMsg := validateAlbum(al); errMsg != "" {
		a.renderer.Page(w, r, "album_form", &render.PageData{
			Title:   "Edit Album",
			Section: "gallery",
			Data: map[string]any{
				"Item": al, "Error": errMsg,
				"ImageText": strings.Join(al.ImageURLs, "\n"),
			},
		})
		return
	}

	if err := a.stores.Gallery.Update(r.Context(), al); err != nil {
		slog.Error("update album failed", "error", err)
		a.renderer.Page(w, r, "album_form", &render.PageData{
			Title:   "Edit Album",
			Section: "gallery",
			Data: map[string]any{
				"Item": al, "Error": "Failed to save album.",
				"ImageText": strings.Join(al.ImageURLs, "\n"),
			},
		})
		return
	}

	a.invalidateAndAudit(r, "gallery_album", id, "update")
	a.flashAndRedirect(w, r, "success", "Album saved.", "/admin/gallery")
}

// AlbumDelete handles album deletion.
func (a *Admin) AlbumDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Gallery.Delete(r.Context(), id); err != nil {
		slog.Error("delete album failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete album.", "/admin/gallery")
		return
	}

	a.invalidateAndAudit(r, "gallery_album", id, "delete")
	a.flashAndRedirect(w, r, "success", "Album deleted.", "/admin/gallery")
}

// --- Resources CRUD ---

// ResourcesList renders the resource management page.
func (a *Admin) ResourcesList(w http.ResponseWriter, r *http.Request) {
	resources, err := a.stores.Resources.List(r.Context())
	if err != nil {
		slog.Error("list resources failed", "error", err)
	}

	a.renderer.Page(w, r, "resources_list", &render.PageData{
		Title:   "Resources",
		Section: "resources",
		Data:    map[string]any{"Items": resources},
	})
}

// ResourceNew renders the new resource form.
func (a *Admin) ResourceNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "resource_form", &render.PageData{
		Title:   "New Resource",
		Section: "resources",
		Data: map[string]any{
			"IsNew":      true,
			"Categories": models.ResourceCategories,
		},
	})
}

func resourceFromForm(r *http.Request) *models.Resource {
	return &models.Resource{
		Title:       r.FormValue("title"),
		Category:    models.ResourceCategory(r.FormValue("category")),
		Description: optional(r.FormValue("description")),
		FileURL:     r.FormValue("file_url"),
		FileName:    r.FormValue("file_name"),
	}
}

func validateResource(res *models.Resource) string {
	return checkRules([]rule{
		{Label: "Title", Value: res.Title, Required: true, MaxLen: maxTitleLen},
		{Label: "Category", Value: string(res.Category), Required: true,
			Choices: choiceStrings(models.ResourceCategories)},
		{Label: "Description", Value: deref(res.Description), MaxLen: maxExcerptLen},
		{Label: "File", Value: res.FileURL, Required: true, MaxLen: maxURLLen, Kind: "url"},
		{Label: "File name", Value: res.FileName, Required: true, MaxLen: maxNameLen},
	})
}

// ResourceCreate handles the new resource form submission.
func (a *Admin) ResourceCreate(w http.ResponseWriter, r *http.Request) {
	res := resourceFromForm(r)

	if errMsg := validateResource(res); errMsg != "" {
		a.renderer.Page(w, r, "resource_form", &render.PageData{
			Title:   "New Resource",
			Section: "resources",
			Data: map[string]any{
				"IsNew":      true,
				"Categories": models.ResourceCategories,
				"Item":       res,
				"Error":      errMsg,
			},
		})
		return
	}

	created, err := a.stores.Resources.Create(r.Context(), res)
	if err != nil {
		slog.Error("create resource failed", "error", err)
		a.renderer.Page(w, r, "resource_form", &render.PageData{
			Title:   "New Resource",
			Section: "resources",
			Data: map[string]any{
				"IsNew":      true,
				"Categories": models.ResourceCategories,
				"Item":       res,
				"Error":      "Failed to create resource.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "resource", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Resource created.", "/admin/resources")
}

// ResourceEdit renders the edit resource form.
func (a *Admin) ResourceEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	res, err := a.stores.Resources.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find resource failed", "error", err)
	}
	if res == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "resource_form", &render.PageData{
		Title:   "Edit Resource",
		Section: "resources",
		Data: map[string]any{
			"Categories": models.ResourceCategories,
			"Item":       res,
		},
	})
}

// ResourceUpdate handles the edit resource form submission.
func (a *Admin) ResourceUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	res := resourceFromForm(r)
	res.ID = id

	if errMsg := validateResource(res); errMsg != "" {
		a.renderer.Page(w, r, "resource_form", &render.PageData{
			Title:   "Edit Resource",
			Section: "resources",
			Data: map[string]any{
				"Categories": models.ResourceCategories,
				"Item":       res,
				"Error":      errMsg,
			},
		})
		return
	}

	if err := a.stores.Resources.Update(r.Context(), res); err != nil {
		slog.Error("update resource failed", "error", err)
		a.renderer.Page(w, r, "resource_form", &render.PageData{
			Title:   "Edit Resource",
			Section: "resources",
			Data: map[string]any{
				"Categories": models.ResourceCategories,
				"Item":       res,
				"Error":      "Failed to save resource.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "resource", id, "update")
	a.flashAndRedirect(w, r, "success", "Resource saved.", "/admin/resources")
}

// ResourceDelete handles resource deletion.
func (a *Admin) ResourceDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Resources.Delete(r.Context(), id); err != nil {
		slog.Error("delete resource failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete resource.", "/admin/resources")
		return
	}

	a.invalidateAndAudit(r, "resource", id, "delete")
	a.flashAndRedirect(w, r, "success", "Resource deleted.", "/admin/resources")
}

// splitLines parses a textarea of one URL per line into an ordered list,
// dropping blank lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
