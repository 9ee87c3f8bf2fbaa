// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// public.go holds the read-only public site handlers. Every page here is
// cacheable: the handler renders to bytes, stores the result in the page
// cache keyed by path and query string, and serves the cached copy until
// an admin save flushes it or the TTL expires.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"charitypress/internal/cache"
	"charitypress/internal/listing"
	"charitypress/internal/models"
	"charitypress/internal/render"
)

// homeNewsCount is how many recent posts the homepage shows.
const homeNewsCount = 6

// Public groups the public site handlers.
type Public struct {
	renderer  *render.Renderer
	stores    *Stores
	pageCache *cache.PageCache
}

// NewPublic creates the public handler group.
func NewPublic(renderer *render.Renderer, stores *Stores, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		stores:    stores,
		pageCache: pageCache,
	}
}

// serveCached runs the render-and-cache cycle for a public GET page.
// build returns the page template name, title, and data; a nil data map
// with no error means "not found".
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request,
	build func() (name, title string, data map[string]any, err error)) {

	ctx := r.Context()
	key := cache.RequestKey(r.URL.Path, r.URL.Query())

	if p.pageCache != nil {
		if html, ok := p.pageCache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	name, title, data, err := build()
	if err != nil {
		slog.Error("public page build failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		p.NotFound(w, r)
		return
	}

	settings, err := p.stores.Settings.All(ctx)
	if err != nil {
		slog.Warn("load settings failed", "error", err)
		settings = models.SiteSettings{}
	}

	html, err := p.renderer.PublicHTML(name, &render.PageData{
		Title:    title,
		Settings: settings,
		Data:     data,
	})
	if err != nil {
		slog.Error("public page render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, key, html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// NotFound renders the public 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	settings, err := p.stores.Settings.All(r.Context())
	if err != nil {
		settings = models.SiteSettings{}
	}
	html, err := p.renderer.PublicHTML("not_found", &render.PageData{
		Title:    "Page Not Found",
		Settings: settings,
		Data:     map[string]any{},
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(html)
}

// Home renders the homepage: hero banners, program cards, latest news and
// the partner strip.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		banners, err := p.stores.Banners.ListActive(ctx)
		if err != nil {
			return "", "", nil, err
		}
		cards, err := p.stores.ProgramCards.List(ctx)
		if err != nil {
			return "", "", nil, err
		}
		posts, err := p.stores.Posts.ListPublished(ctx, homeNewsCount)
		if err != nil {
			return "", "", nil, err
		}
		partners, err := p.stores.Partners.List(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "home", "Home", map[string]any{
			"Banners":  banners,
			"Cards":    cards,
			"Posts":    posts,
			"Partners": partners,
		}, nil
	})
}

// StaticPage renders a CMS page by slug (about sections, privacy, terms).
func (p *Public) StaticPage(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.servePageBySlug(w, r, slug)
	}
}

// AboutPage renders an about-section page addressed by URL slug.
func (p *Public) AboutPage(w http.ResponseWriter, r *http.Request) {
	p.servePageBySlug(w, r, "about-"+chi.URLParam(r, "slug"))
}

func (p *Public) servePageBySlug(w http.ResponseWriter, r *http.Request, slug string) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		page, err := p.stores.Pages.FindBySlug(ctx, slug)
		if err != nil {
			return "", "", nil, err
		}
		if page == nil {
			return "", "", nil, nil
		}
		return "page", page.Title, map[string]any{"Page": page}, nil
	})
}

// Programs renders the active program listing.
func (p *Public) Programs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		programs, err := p.stores.Programs.ListActive(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "programs", "Programs", map[string]any{"Programs": programs}, nil
	})
}

// ProgramDetail renders one active program by slug.
func (p *Public) ProgramDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		prog, err := p.stores.Programs.FindBySlug(ctx, slug)
		if err != nil {
			return "", "", nil, err
		}
		if prog == nil {
			return "", "", nil, nil
		}
		return "program_detail", prog.Title, map[string]any{"Program": prog}, nil
	})
}

// News renders the news archive with category filter, search and
// pagination. All three refine the same fetched collection in memory.
func (p *Public) News(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := models.PostCategory(r.URL.Query().Get("category"))
	if category != "" && !models.ValidPostCategory(category) {
		category = ""
	}
	query := r.URL.Query().Get("q")
	pageNum, _ := strconv.Atoi(r.URL.Query().Get("page"))

	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		posts, err := p.stores.Posts.ListPublished(ctx, 0)
		if err != nil {
			return "", "", nil, err
		}

		filtered := listing.Search(listing.FilterCategory(posts, category), query)
		page := listing.Paginate(filtered, pageNum, listing.NewsPageSize)

		return "news", "News", map[string]any{
			"Page":       page,
			"Category":   string(category),
			"Query":      query,
			"Categories": models.PostCategories,
		}, nil
	})
}

// NewsDetail renders one published post by slug.
func (p *Public) NewsDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		post, err := p.stores.Posts.FindBySlug(ctx, slug)
		if err != nil {
			return "", "", nil, err
		}
		if post == nil {
			return "", "", nil, nil
		}
		return "news_detail", post.Title, map[string]any{"Post": post}, nil
	})
}

// Gallery renders the album grid.
func (p *Public) Gallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		albums, err := p.stores.Gallery.List(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "gallery", "Gallery", map[string]any{"Albums": albums}, nil
	})
}

// GalleryDetail renders one album's photos.
func (p *Public) GalleryDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		album, err := p.stores.Gallery.FindByID(ctx, id)
		if err != nil {
			return "", "", nil, err
		}
		if album == nil {
			return "", "", nil, nil
		}
		return "gallery_detail", album.Title, map[string]any{"Album": album}, nil
	})
}

// Videos renders the video listing.
func (p *Public) Videos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		videos, err := p.stores.Videos.List(ctx)
		if err != nil {
			return "", "", nil, err
		}
		return "videos", "Videos", map[string]any{"Videos": videos}, nil
	})
}

// Resources renders the downloadable resource listing with category
// filter and search, refined in memory like the news archive.
func (p *Public) Resources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := models.ResourceCategory(r.URL.Query().Get("category"))
	if category != "" && !models.ValidResourceCategory(category) {
		category = ""
	}
	query := r.URL.Query().Get("q")

	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		resources, err := p.stores.Resources.List(ctx)
		if err != nil {
			return "", "", nil, err
		}

		filtered := listing.SearchResources(listing.FilterResourceCategory(resources, category), query)

		return "resources", "Resources", map[string]any{
			"Resources":  filtered,
			"Categories": models.ResourceCategories,
			"Category":   string(category),
			"Query":      query,
			"HasAny":     len(resources) > 0,
		}, nil
	})
}

// Recruitment renders open recruitment notices. Closed and past-deadline
// notices are filtered at render time so expiry needs no background job.
func (p *Public) Recruitment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		all, err := p.stores.Recruitments.ListOpen(ctx)
		if err != nil {
			return "", "", nil, err
		}
		now := time.Now()
		var open []models.Recruitment
		for _, rec := range all {
			if !rec.Closed(now) {
				open = append(open, rec)
			}
		}
		return "recruitment", "Join Us", map[string]any{"Recruitments": open}, nil
	})
}

// RecruitmentDetail renders one recruitment notice. Expired notices stay
// reachable by direct link but render with a closed marker.
func (p *Public) RecruitmentDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		rec, err := p.stores.Recruitments.FindByID(ctx, id)
		if err != nil {
			return "", "", nil, err
		}
		if rec == nil || !rec.IsOpen {
			return "", "", nil, nil
		}
		return "recruitment_detail", rec.Title, map[string]any{
			"Recruitment": rec,
			"Closed":      rec.Closed(time.Now()),
		}, nil
	})
}

// DonatePage renders the donation inquiry form.
func (p *Public) DonatePage(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		return "donate", "Donate", map[string]any{}, nil
	})
}

// VolunteerPage renders the volunteer application form.
func (p *Public) VolunteerPage(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		return "volunteer", "Volunteer", map[string]any{}, nil
	})
}

// ContactPage renders the contact form.
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	p.serveCached(w, r, func() (string, string, map[string]any, error) {
		return "contact", "Contact", map[string]any{}, nil
	})
}
