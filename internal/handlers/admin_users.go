// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// admin_users.go holds the user management handlers. These routes sit
// behind the admin role gate; editors never reach them.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"charitypress/internal/middleware"
	"charitypress/internal/models"
	"charitypress/internal/render"
)

// UsersList renders the user management page.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.stores.Users.List(r.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
	}

	a.renderer.Page(w, r, "users_list", &render.PageData{
		Title:   "Users",
		Section: "users",
		Data:    map[string]any{"Users": users},
	})
}

// UserNew renders the new user creation form.
func (a *Admin) UserNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "user_form", &render.PageData{
		Title:   "New User",
		Section: "users",
		Data:    map[string]any{},
	})
}

// UserCreate handles the new user form submission.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	password := r.FormValue("password")
	role := models.Role(r.FormValue("role"))

	// Validate inputs.
	var errMsg string
	switch {
	case email == "":
		errMsg = "Email is required."
	case displayName == "":
		errMsg = "Display name is required."
	case len(password) < 8:
		errMsg = "Password must be at least 8 characters."
	case role != models.RoleAdmin && role != models.RoleEditor:
		errMsg = "Invalid role."
	}
	if errMsg == "" {
		errMsg = checkRules([]rule{
			{Label: "Email", Value: email, Required: true, MaxLen: maxEmailLen, Kind: "email"},
			{Label: "Display name", Value: displayName, Required: true, MaxLen: maxNameLen},
		})
	}

	if errMsg != "" {
		a.renderer.Page(w, r, "user_form", &render.PageData{
			Title:   "New User",
			Section: "users",
			Data: map[string]any{
				"Error":       errMsg,
				"Email":       email,
				"DisplayName": displayName,
				"Role":        string(role),
			},
		})
		return
	}

	// Check for duplicate email.
	existing, _ := a.stores.Users.FindByEmail(r.Context(), email)
	if existing != nil {
		a.renderer.Page(w, r, "user_form", &render.PageData{
			Title:   "New User",
			Section: "users",
			Data: map[string]any{
				"Error":       "A user with this email already exists.",
				"Email":       email,
				"DisplayName": displayName,
				"Role":        string(role),
			},
		})
		return
	}

	created, err := a.stores.Users.Create(r.Context(), email, password, displayName, role)
	if err != nil {
		slog.Error("create user failed", "error", err)
		a.renderer.Page(w, r, "user_form", &render.PageData{
			Title:   "New User",
			Section: "users",
			Data: map[string]any{
				"Error":       "Failed to create user.",
				"Email":       email,
				"DisplayName": displayName,
				"Role":        string(role),
			},
		})
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	slog.Info("user created", "admin", sess.Email, "new_user", email, "role", role)
	a.invalidateAndAudit(r, "user", created.ID, "create")

	render.SetFlash(w, render.Flash{Type: "success", Message: "User created."})
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/admin/users")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserResetTwoFA resets another user's 2FA, forcing re-setup on next login.
func (a *Admin) UserResetTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, ok := parseID(w, r)
	if !ok {
		return
	}

	// Cannot reset your own 2FA.
	if targetID == sess.UserID {
		http.Error(w, "Cannot reset your own 2FA", http.StatusForbidden)
		return
	}

	if err := a.stores.Users.ResetTOTP(r.Context(), targetID); err != nil {
		slog.Error("reset 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", targetID)
	a.invalidateAndAudit(r, "user", targetID, "update")
	a.flashAndRedirect(w, r, "success", "Two-factor auth reset.", "/admin/users")
}

// UserDelete removes a user account.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, ok := parseID(w, r)
	if !ok {
		return
	}

	// Cannot delete yourself.
	if targetID == sess.UserID {
		http.Error(w, "Cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := a.stores.Users.Delete(r.Context(), targetID); err != nil {
		slog.Error("delete user failed", "error", err)
		a.flashAndRedirect(w, r, "error", "Failed to delete user.", "/admin/users")
		return
	}

	slog.Info("user deleted by admin", "admin", sess.Email, "target_user", targetID)
	a.invalidateAndAudit(r, "user", targetID, "delete")
	a.flashAndRedirect(w, r, "success", "User deleted.", "/admin/users")
}
