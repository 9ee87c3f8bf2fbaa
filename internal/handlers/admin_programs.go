// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_programs.go holds the program pages and recruitment notice
// handlers.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"charitypress/internal/models"
	"charitypress/internal/render"
	"charitypress/internal/slug"
)

// --- Programs CRUD ---

// ProgramsList renders the program management page.
func (a *Admin) ProgramsList(w http.ResponseWriter, r *http.Request) {
	programs, err := a.stores.Programs.List(r.Context())
	if err != nil {
		slog.Error("list programs failed", "error", err)
	}

	a.renderer.Page(w, r, "programs_list", &render.PageData{
		Title:   "Programs",
		Section: "programs",
		Data:    map[string]any{"Items": programs},
	})
}

// ProgramNew renders the new program form.
func (a *Admin) ProgramNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "program_form", &render.PageData{
		Title:   "New Program",
		Section: "programs",
		Data:    map[string]any{"IsNew": true},
	})
}

func programFromForm(r *http.Request) *models.Program {
	order, _ := strconv.Atoi(r.FormValue("display_order"))
	return &models.Program{
		Title:        r.FormValue("title"),
		Slug:         r.FormValue("slug"),
		Summary:      r.FormValue("summary"),
		Body:         r.FormValue("body"),
		ImageURL:     optional(r.FormValue("image_url")),
		DisplayOrder: order,
		IsActive:     r.FormValue("is_active") == "on",
	}
}

func validateProgram(p *models.Program) string {
	rules := titleBodyRules(p.Title, p.Slug, p.Body)
	rules = append(rules,
		rule{Label: "Summary", Value: p.Summary, MaxLen: maxExcerptLen},
		rule{Label: "Image", Value: deref(p.ImageURL), MaxLen: maxURLLen, Kind: "url"},
	)
	return checkRules(rules)
}

// ProgramCreate handles the new program form submission.
func (a *Admin) ProgramCreate(w http.ResponseWriter, r *http.Request) {
	p := programFromForm(r)

	if errMsg := validateProgram(p); errMsg != "" {
		a.renderer.Page(w, r, "program_form", &render.PageData{
			Title:   "New Program",
			Section: "programs",
			Data:    map[string]any{"IsNew": true, "Item": p, "Error": errMsg},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.Slug == "" {
		p.Slug = "program-" + shortID()
	}

	created, err := a.stores.Programs.Create(r.Context(), p)
	if err != nil {
		slog.Error("create program failed", "error", err)
		a.renderer.Page(w, r, "program_form", &render.PageData{
			Title:   "New Program",
			Section: "programs",
			Data: map[string]any{
				"IsNew": true,
				"Item":  p,
				"Error": "Failed to create. The slug may already exist.",
			},
		})
		return
	}

	a.invalidateAndAudit(r, "program", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Program created.", "/admin/programs")
}

// ProgramEdit renders the edit program form.
func (a *Admin) ProgramEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	p, err := a.stores.Programs.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find program failed", "error", err)
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "program_form", &render.PageData{
		Title:   "Edit Program",
		Section: "programs",
		Data:    map[string]any{"Item": p},
	})
}

// ProgramUpdate handles the edit program form submission.
func (a *Admin) ProgramUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing, err := a.stores.Programs.FindByID(r.Context(), id)
	if err != nil || existing == nil {
		http.NotFound(w, r)
		return
	}

	p := programFromForm(r)
	p.ID = id

	if errMsg := validateProgram(p); errMsg != "" {
		a.renderer.Page(w, r, "program_form", &render.PageData{
			Title:   "Edit Program",
			Section: "programs",
			Data:    map[string]any{"Item": p, "Error": errMsg},
		})
		return
	}

	if p.Slug == "" {
		p.Slug = existing.Slug
	}

	if err := a.stores.Programs.Update(r.Context(), p); err != nil {
		slog.Error("update program failed", "error", err)
		a.renderer.Page(w, r, "program_form", &render.PageData{
			Title:   "Edit Program",
			Section: "programs",
			Data:    map[string]any{"Item": p, "Error": "Failed to save. The slug may already exist."},
		})
		return
	}

	a.invalidateAndAudit(r, "program", id, "update")
	a.flashAndRedirect(w, r, "success", "Program saved.", "/admin/programs")
}

// ProgramDelete handles program deletion.
func (a *Admin) ProgramDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Programs.Delete(r.Context(), id); err != nil {
		slog.Error("delete program failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete program.", "/admin/programs")
		return
	}

	a.invalidateAndAudit(r, "program", id, "delete")
	a.flashAndRedirect(w, r, "success", "Program deleted.", "/admin/programs")
}

// --- Recruitment CRUD ---

// RecruitmentsList renders the recruitment notice management page.
func (a *Admin) RecruitmentsList(w http.ResponseWriter, r *http.Request) {
	notices, err := a.stores.Recruitments.List(r.Context())
	if err != nil {
		slog.Error("list recruitments failed", "error", err)
	}

	a.renderer.Page(w, r, "recruitments_list", &render.PageData{
		Title:   "Recruitment",
		Section: "recruitments",
		Data:    map[string]any{"Items": notices, "Now": time.Now()},
	})
}

// RecruitmentNew renders the new notice form.
func (a *Admin) RecruitmentNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "recruitment_form", &render.PageData{
		Title:   "New Notice",
		Section: "recruitments",
		Data:    map[string]any{"IsNew": true},
	})
}

func recruitmentFromForm(r *http.Request) *models.Recruitment {
	n := &models.Recruitment{
		Title:  r.FormValue("title"),
		Body:   r.FormValue("body"),
		IsOpen: r.FormValue("is_open") == "on",
	}
	if d := r.FormValue("deadline"); d != "" {
		if t, err := time.Parse("2006-01-02", d); err == nil {
			n.Deadline = &t
		}
	}
	return n
}

// RecruitmentCreate handles the new notice form submission.
func (a *Admin) RecruitmentCreate(w http.ResponseWriter, r *http.Request) {
	n := recruitmentFromForm(r)

	if errMsg := checkRules(titleBodyRules(n.Title, "", n.Body)); errMsg != "" {
		a.renderer.Page(w, r, "recruitment_form", &render.PageData{
			Title:   "New Notice",
			Section: "recruitments",
			Data:    map[string]any{"IsNew": true, "Item": n, "Error": errMsg},
		})
		return
	}

	created, err := a.stores.Recruitments.Create(r.Context(), n)
	if err != nil {
		slog.Error("create recruitment failed", "error", err)
		a.renderer.Page(w, r, "recruitment_form", &render.PageData{
			Title:   "New Notice",
			Section: "recruitments",
			Data:    map[string]any{"IsNew": true, "Item": n, "Error": "Failed to create notice."},
		})
		return
	}

	a.invalidateAndAudit(r, "recruitment", created.ID, "create")
	a.flashAndRedirect(w, r, "success", "Notice created.", "/admin/recruitments")
}

// RecruitmentEdit renders the edit notice form.
func (a *Admin) RecruitmentEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	n, err := a.stores.Recruitments.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find recruitment failed", "error", err)
	}
	if n == nil {
		http.NotFound(w, r)
		return
	}

	a.renderer.Page(w, r, "recruitment_form", &render.PageData{
		Title:   "Edit Notice",
		Section: "recruitments",
		Data:    map[string]any{"Item": n},
	})
}

// RecruitmentUpdate handles the edit notice form submission.
func (a *Admin) RecruitmentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	n := recruitmentFromForm(r)
	n.ID = id

	if errMsg := checkRules(titleBodyRules(n.Title, "", n.Body)); errMsg != "" {
		a.renderer.Page(w, r, "recruitment_form", &render.PageData{
			Title:   "Edit Notice",
			Section: "recruitments",
			Data:    map[string]any{"Item": n, "Error": errMsg},
		})
		return
	}

	if err := a.stores.Recruitments.Update(r.Context(), n); err != nil {
		slog.Error("update recruitment failed", "error", err)
		a.renderer.Page(w, r, "recruitment_form", &render.PageData{
			Title:   "Edit Notice",
			Section: "recruitments",
			Data:    map[string]any{"Item": n, "Error": "Failed to save notice."},
		})
		return
	}

	a.invalidateAndAudit(r, "recruitment", id, "update")
	a.flashAndRedirect(w, r, "success", "Notice saved.", "/admin/recruitments")
}

// RecruitmentDelete handles notice deletion.
func (a *Admin) RecruitmentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.stores.Recruitments.Delete(r.Context(), id); err != nil {
		slog.Error("delete recruitment failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete notice.", "/admin/recruitments")
		return
	}

	a.invalidateAndAudit(r, "recruitment", id, "delete")
	a.flashAndRedirect(w, r, "success", "Notice deleted.", "/admin/recruitments")
}
