// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_content.go holds the posts and pages CRUD handlers. Both follow
// the same shape: list, new/edit form, validate against the shared rule
// table, single insert/update, flash redirect. A failed save re-renders
// the form with the entered values.
package handlers

import (
	"log/slog"
	"net/http"

	"charitypress/internal/middleware"
	"charitypress/internal/models"
	"charitypress/internal/render"
	"charitypress/internal/slug"
)

// --- Posts CRUD ---

// PostsList renders the posts management page.
func (a *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	posts, err := a.stores.Posts.List(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
	}

	a.renderer.Page(w, r, "posts_list", &render.PageData{
		Title:   "News Posts",
		Section: "posts",
		Data:    map[string]any{"Items": posts},
	})
}

// PostNew renders the new post form.
func (a *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:   "New Post",
		Section: "posts",
		Data: map[string]any{
			"IsNew":      true,
			"Categories": models.PostCategories,
		},
	})
}

// postFromForm builds a Post from the submitted form values.
func postFromForm(r *http.Request) *models.Post {
	p := &models.Post{
		Title:        r.FormValue("title"),
		Slug:         r.FormValue("slug"),
		Body:         r.FormValue("body"),
		Category:     models.PostCategory(r.FormValue("category")),
		Excerpt:      optional(r.FormValue("excerpt")),
		ThumbnailURL: optional(r.FormValue("thumbnail_url")),
		IsPinned:     r.FormValue("is_pinned") == "on",
		IsPublished:  r.FormValue("is_published") == "on",
	}
	return p
}

// validatePost runs the shared rule table over a post form.
func validatePost(p *models.Post) string {
	rules := titleBodyRules(p.Title, p.Slug, p.Body)
	rules = append(rules,
		rule{Label: "Category", Value: string(p.Category), Required: true,
			Choices: choiceStrings(models.PostCategories)},
		rule{Label: "Excerpt", Value: deref(p.Excerpt), MaxLen: maxExcerptLen},
		rule{Label: "Thumbnail", Value: deref(p.ThumbnailURL), MaxLen: maxURLLen, Kind: "url"},
	)
	return checkRules(rules)
}

// PostCreate handles the new post form submission.
func (a *Admin) PostCreate(w http.ResponseWriter, r *http.Request) {
	p := postFromForm(r)

	if errMsg := validatePost(p); errMsg != "" {
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "New Post",
			Section: "posts",
			Data: map[string]any{
				"IsNew":      true,
				"Categories": models.PostCategories,
				"Item":       p,
				"Error":      errMsg,
			},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.Slug == "" {
		// Title had no sluggable characters.
		p.Slug = "post-" + shortID()
	}

	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		p.AuthorID = &sess.UserID
	}

	created, err := a.stores.Posts.Create(r.Context(), p)
	if err != nil {
		slog.Error("create post failed", "error", err)
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "New Post",
			Section: "posts",
			Data: map[string]any{
				"IsNew":      true,
				"Categories": models.PostCategories,
				"Item":       p,
				"Error":      "Failed to create. The slug may already exist.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "post", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Post created.", "/admin/posts")
}

// PostEdit renders the edit post form.
func (a *Admin) PostEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := a.stores.Posts.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find post failed", "error", err)
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "post_form", &render.PageData{
		Title:   "Edit Post",
		Section: "posts",
		Data: map[string]any{
			"Categories": models.PostCategories,
			"Item":       p,
		},
	})
}

// PostUpdate handles the edit post form submission.
func (a *Admin) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing, err := a.stores.Posts.FindByID(r.Context(), id)
	if err != nil || existing == nil {
		http.NotFound(w, r)
		return
	}

	p := postFromForm(r)
	p.ID = id
	p.AuthorID = existing.AuthorID
	p.PublishedAt = existing.PublishedAt

	if errMsg := validatePost(p); errMsg != "" {
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "Edit Post",
			Section: "posts",
			Data: map[string]any{
				"Categories": models.PostCategories,
				"Item":       p,
				"Error":      errMsg,
			},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = existing.Slug
	}

	if err := a.stores.Posts.Update(r.Context(), p); err != nil {
		slog.Error("update post failed", "error", err)
		a.renderer.Page(w, r, "post_form", &render.PageData{
			Title:   "Edit Post",
			Section: "posts",
			Data: map[string]any{
				"Categories": models.PostCategories,
				"Item":       p,
				"Error":      "Failed to save. The slug may already exist.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "post", id, "update")
	a.flashAndRedirect(w, r, "success", "Post saved.", "/admin/posts")
}

// PostDelete handles post deletion. Routed on POST/DELETE only; the
// confirmation step lives in the listing template.
func (a *Admin) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Posts.Delete(r.Context(), id); err != nil {
		slog.Error("delete post failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete post.", "/admin/posts")
		return
	}

	a.invalidateAndAudit(r, "post", id, "delete")
	a.flashAndRedirect(w, r, "success", "Post deleted.", "/admin/posts")
}

// --- Pages CRUD ---

// PagesList renders the CMS pages management screen.
func (a *Admin) PagesList(w http.ResponseWriter, r *http.Request) {
	pages, err := a.stores.Pages.List(r.Context())
	if err != nil {
		slog.Error("list pages failed", "error", err)
	}

	a.renderer.Page(w, r, "pages_list", &render.PageData{
		Title:   "Pages",
		Section: "pages",
		Data:    map[string]any{"Items": pages},
	})
}

// PageNew renders the new page form.
func (a *Admin) PageNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "page_form", &render.PageData{
		Title:   "New Page",
		Section: "pages",
		Data:    map[string]any{"IsNew": true},
	})
}

// PageCreate handles the new page form submission.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	p := &models.Page{
		Slug:  r.FormValue("slug"),
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	if errMsg := checkRules(titleBodyRules(p.Title, p.Slug, p.Body)); errMsg != "" {
		a.renderer.Page(w, r, "page_form", &render.PageData{
			Title:   "New Page",
			Section: "pages",
			Data:    map[string]any{"IsNew": true, "Item": p, "Error": errMsg},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.Slug == "" {
		p.Slug = "page-" + shortID()
	}

	created, err := a.stores.Pages.Create(r.Context(), p)
	if err != nil {
		slog.Error("create page failed", "error", err)
		a.renderer.Page(w, r, "page_form", &render.PageData{
			Title:   "New Page",
			Section: "pages",
			Data: map[string]any{
				"IsNew": true,
				"Item":  p,
				"Error": "Failed to create. The slug may already exist.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "page", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Page created.", "/admin/pages")
}

// PageEdit renders the edit page form.
func (a *Admin) PageEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := a.stores.Pages.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find page failed", "error", err)
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "page_form", &render.PageData{
		Title:   "Edit Page",
		Section: "pages",
		Data:    map[string]any{"Item": p},
	})
}

// PageUpdate handles the edit page form submission.
func (a *Admin) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing, err := a.stores.Pages.FindByID(r.Context(), id)
	if err != nil || existing == nil {
		http.NotFound(w, r)
		return
	}

	p := &models.Page{
		ID:    id,
		Slug:  r.FormValue("slug"),
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	if errMsg := checkRules(titleBodyRules(p.Title, p.Slug, p.Body)); errMsg != "" {
		a.renderer.Page(w, r, "page_form", &render.PageData{
			Title:   "Edit Page",
			Section: "pages",
			Data:    map[string]any{"Item": p, "Error": errMsg},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = existing.Slug
	}

	if err := a.stores.Pages.Update(r.Context(), p); err != nil {
		slog.Error("update page failed", "error", err)
		a.renderer.Page(w, r, "page_form", &render.PageData{
			Title:   "Edit Page",
			Section: "pages",
			Data:    map[string]any{"Item": p, "Error": "Failed to save. The slug may already exist."},
		})
		return
	}

	a.invalidateAndAudit(r, "page", id, "update")
	a.flashAndRedirect(w, r, "success", "Page saved.", "/admin/pages")
}

// PageDelete handles page deletion.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Pages.Delete(r.Context(), id); err != nil {
		slog.Error("delete page failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete page.", "/admin/pages")
		return
	}

	a.invalidateAndAudit(r, "page", id, "delete")
	a.flashAndRedirect(w, r, "success", "Page deleted.", "/admin/pages")
}
