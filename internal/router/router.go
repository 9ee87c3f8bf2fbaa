// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Routes
// are organized into the public site, the auth flow and the admin panel,
// each with its own middleware stack.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"charitypress/internal/handlers"
	"charitypress/internal/middleware"
	"charitypress/internal/session"
	"charitypress/web"
)

// formRateLimit allows this many public form submissions per client IP
// per window.
const formRateLimit = 5

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned rate limiter must be stopped
// on shutdown.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check. No auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets. The embedded tree already carries the static/ prefix.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Admin routes: CSRF protection on the whole subtree.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		// Auth pages, accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated, 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			// News posts
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", admin.PostsList)
				r.Get("/new", admin.PostNew)
				r.Post("/", admin.PostCreate)
				r.Get("/{id}", admin.PostEdit)
				r.Post("/{id}", admin.PostUpdate)
				r.Post("/{id}/delete", admin.PostDelete)
			})

			// Standalone pages
			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.PagesList)
				r.Get("/new", admin.PageNew)
				r.Post("/", admin.PageCreate)
				r.Get("/{id}", admin.PageEdit)
				r.Post("/{id}", admin.PageUpdate)
				r.Post("/{id}/delete", admin.PageDelete)
			})

			// Hero banners
			r.Route("/banners", func(r chi.Router) {
				r.Get("/", admin.BannersList)
				r.Get("/new", admin.BannerNew)
				r.Post("/", admin.BannerCreate)
				r.Get("/{id}", admin.BannerEdit)
				r.Post("/{id}", admin.BannerUpdate)
				r.Post("/{id}/delete", admin.BannerDelete)
			})

			// Homepage collections, saved whole in one transaction.
			r.Get("/program-cards", admin.ProgramCardsForm)
			r.Post("/program-cards", admin.ProgramCardsSave)
			r.Get("/partners", admin.PartnersForm)
			r.Post("/partners", admin.PartnersSave)

			// Programs
			r.Route("/programs", func(r chi.Router) {
				r.Get("/", admin.ProgramsList)
				r.Get("/new", admin.ProgramNew)
				r.Post("/", admin.ProgramCreate)
				r.Get("/{id}", admin.ProgramEdit)
				r.Post("/{id}", admin.ProgramUpdate)
				r.Post("/{id}/delete", admin.ProgramDelete)
			})

			// Recruitment notices
			r.Route("/recruitments", func(r chi.Router) {
				r.Get("/", admin.RecruitmentsList)
				r.Get("/new", admin.RecruitmentNew)
				r.Post("/", admin.RecruitmentCreate)
				r.Get("/{id}", admin.RecruitmentEdit)
				r.Post("/{id}", admin.RecruitmentUpdate)
				r.Post("/{id}/delete", admin.RecruitmentDelete)
			})

			// Gallery albums
			r.Route("/gallery", func(r chi.Router) {
				r.Get("/", admin.AlbumsList)
				r.Get("/new", admin.AlbumNew)
				r.Post("/", admin.AlbumCreate)
				r.Get("/{id}", admin.AlbumEdit)
				r.Post("/{id}", admin.AlbumUpdate)
				r.Post("/{id}/delete", admin.AlbumDelete)
			})

			// Videos
			r.Route("/videos", func(r chi.Router) {
				r.Get("/", admin.VideosList)
				r.Get("/new", admin.VideoNew)
				r.Post("/", admin.VideoCreate)
				r.Get("/{id}", admin.VideoEdit)
				r.Post("/{id}", admin.VideoUpdate)
				r.Post("/{id}/delete", admin.VideoDelete)
			})

			// Downloadable resources
			r.Route("/resources", func(r chi.Router) {
				r.Get("/", admin.ResourcesList)
				r.Get("/new", admin.ResourceNew)
				r.Post("/", admin.ResourceCreate)
				r.Get("/{id}", admin.ResourceEdit)
				r.Post("/{id}", admin.ResourceUpdate)
				r.Post("/{id}/delete", admin.ResourceDelete)
			})

			// Form inboxes: read, export, delete.
			r.Route("/donations", func(r chi.Router) {
				r.Get("/", admin.DonationsList)
				r.Get("/export.csv", admin.DonationsExport)
				r.Post("/{id}/delete", admin.DonationDelete)
			})
			r.Route("/volunteers", func(r chi.Router) {
				r.Get("/", admin.VolunteersList)
				r.Get("/export.csv", admin.VolunteersExport)
				r.Post("/{id}/delete", admin.VolunteerDelete)
			})
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", admin.ContactsList)
				r.Get("/export.csv", admin.ContactsExport)
				r.Get("/{id}", admin.ContactShow)
				r.Post("/{id}/delete", admin.ContactDelete)
			})

			// Media upload
			r.Post("/media", admin.MediaUpload)

			// Site settings
			r.Get("/settings", admin.SettingsForm)
			r.Post("/settings", admin.SettingsSave)

			// User management, admin role only.
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", admin.UsersList)
				r.Get("/new", admin.UserNew)
				r.Post("/", admin.UserCreate)
				r.Post("/{id}/reset-2fa", admin.UserResetTwoFA)
				r.Post("/{id}/delete", admin.UserDelete)
			})
		})
	})

	// Public site.
	r.Get("/", public.Home)
	r.Get("/about", public.StaticPage("about"))
	r.Get("/about/{slug}", public.AboutPage)
	r.Get("/privacy", public.StaticPage("privacy"))
	r.Get("/terms", public.StaticPage("terms"))
	r.Get("/programs", public.Programs)
	r.Get("/programs/{slug}", public.ProgramDetail)
	r.Get("/news", public.News)
	r.Get("/news/{slug}", public.NewsDetail)
	r.Get("/gallery", public.Gallery)
	r.Get("/gallery/{id}", public.GalleryDetail)
	r.Get("/videos", public.Videos)
	r.Get("/resources", public.Resources)
	r.Get("/recruitment", public.Recruitment)
	r.Get("/recruitment/{id}", public.RecruitmentDetail)
	r.Get("/donate", public.DonatePage)
	r.Get("/volunteer", public.VolunteerPage)
	r.Get("/contact", public.ContactPage)

	// Public form POSTs sit behind a per-IP rate limiter instead of CSRF:
	// the pages are cached, so they cannot embed per-visitor tokens.
	limiter := middleware.NewRateLimiter(formRateLimit, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/donate", public.DonateSubmit)
		r.Post("/volunteer", public.VolunteerSubmit)
		r.Post("/contact", public.ContactSubmit)
	})

	r.NotFound(public.NotFound)

	return r, limiter
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
