// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin panel and
// the public site. Admin pages support full-page and HTMX partial
// rendering, automatically detecting the request type via the HX-Request
// header. Public pages render to bytes so the page cache can store them.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"charitypress/internal/markdown"
	"charitypress/internal/middleware"
	"charitypress/internal/models"
	"charitypress/internal/session"
)

//go:embed templates/admin/*.html templates/public/*.html
var templatesFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title     string              // Page title for <title> tag
	Section   string              // Active nav section (e.g., "dashboard", "posts")
	Session   *session.Data       // Current user session (nil if unauthenticated)
	CSRFToken string              // CSRF token for forms and HTMX headers
	Settings  models.SiteSettings // Site settings for public chrome (name, contact, SNS)
	Data      map[string]any      // Page-specific data
	Flashes   []Flash             // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution for both template sets.
type Renderer struct {
	admin   map[string]*template.Template
	public  map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its set's base layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS,
// HTMX); when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin:  make(map[string]*template.Template),
		public: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// markdown renders a Markdown body to HTML for detail pages.
			"markdown": func(source string) template.HTML {
				html, err := markdown.ToHTML(source)
				if err != nil {
					return ""
				}
				return template.HTML(html)
			},
			// fmtDate formats a timestamp for listings.
			"fmtDate": func(t time.Time) string {
				return t.Format("2006-01-02")
			},
			// fmtDatePtr formats an optional timestamp, blank when unset.
			"fmtDatePtr": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("2006-01-02")
			},
			// add and sub build pagination links.
			"add": func(a, b int) int { return a + b },
			"sub": func(a, b int) int { return a - b },
		},
	}

	if err := r.parseSet("admin", r.admin); err != nil {
		return nil, err
	}
	if err := r.parseSet("public", r.public); err != nil {
		return nil, err
	}

	return r, nil
}

// parseSet parses every page template of one set, pairing it with the
// set's base layout unless it is standalone.
func (rn *Renderer) parseSet(set string, dst map[string]*template.Template) error {
	entries, err := templatesFS.ReadDir("templates/" + set)
	if err != nil {
		return fmt.Errorf("read %s templates: %w", set, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		// Strip .html extension for the template name.
		tmplName := name[:len(name)-len(".html")]

		var tmpl *template.Template
		var parseErr error

		if set == "admin" && standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templatesFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templatesFS, "templates/"+set+"/base.html", "templates/"+set+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s/%s: %w", set, name, parseErr)
		}

		dst[tmplName] = tmpl
	}

	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	if data.CSRFToken == "" {
		data.CSRFToken = middleware.GetCSRFToken(r)
	}
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout. Pending flashes
	// are consumed here; HTMX partials leave them for the next full
	// load since the flash block lives in the base layout.
	if len(data.Flashes) == 0 {
		data.Flashes = takeFlash(w, r)
	}

	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// PublicHTML renders a public page to bytes so the caller can both serve
// and cache it.
func (rn *Renderer) PublicHTML(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.public[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, "base.html", data); err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
