package store

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"charitypress/internal/models"
)

func TestPostStoreCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "test-create-post-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	post := &models.Post{
		Title:    "Test Post",
		Slug:     slug,
		Body:     "Test body",
		Category: models.PostCategoryNotice,
	}

	created, err := s.Create(ctx, post)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == uuid.Nil {
		t.Error("expected non-nil UUID")
	}
	if created.Title != "Test Post" {
		t.Errorf("title: got %q, want %q", created.Title, "Test Post")
	}
	if created.PublishedAt != nil {
		t.Error("expected nil published_at for a draft")
	}

	// FindByID.
	found, err := s.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil {
		t.Fatal("expected post, got nil")
	}
	if found.Slug != slug {
		t.Errorf("slug: got %q, want %q", found.Slug, slug)
	}
}

func TestPostStoreCreatePublishedStampsDate(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "test-pub-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, err := s.Create(ctx, &models.Post{
		Title: "Published Post", Slug: slug, Body: "body",
		Category: models.PostCategoryActivity, IsPublished: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.PublishedAt == nil {
		t.Error("expected non-nil published_at for a published post")
	}
}

func TestPostStoreFindBySlugOnlyPublished(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "test-slug-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	// Create draft. It should NOT be findable by slug.
	s.Create(ctx, &models.Post{
		Title: "Draft", Slug: slug, Body: "draft", Category: models.PostCategoryNotice,
	})

	found, err := s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug (draft): %v", err)
	}
	if found != nil {
		t.Error("expected nil for a draft via FindBySlug")
	}

	// Publish it.
	db.Exec("UPDATE posts SET is_published = TRUE, published_at = NOW() WHERE slug = $1", slug)

	found, err = s.FindBySlug(ctx, slug)
	if err != nil {
		t.Fatalf("FindBySlug (published): %v", err)
	}
	if found == nil {
		t.Fatal("expected post after publishing")
	}

	// Not found.
	found, _ = s.FindBySlug(ctx, "nonexistent-slug-xyz")
	if found != nil {
		t.Error("expected nil for nonexistent slug")
	}
}

func TestPostStoreListPublishedPinnedFirst(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slugPlain := "test-order-plain-" + uuid.NewString()[:8]
	slugPinned := "test-order-pinned-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slugPlain, slugPinned) })

	// Plain post created first, pinned post second: the pinned one must
	// still come out ahead of it.
	s.Create(ctx, &models.Post{
		Title: "Plain", Slug: slugPlain, Body: "b",
		Category: models.PostCategoryNotice, IsPublished: true,
	})
	s.Create(ctx, &models.Post{
		Title: "Pinned", Slug: slugPinned, Body: "b",
		Category: models.PostCategoryNotice, IsPublished: true, IsPinned: true,
	})

	posts, err := s.ListPublished(ctx, 0)
	if err != nil {
		t.Fatalf("ListPublished: %v", err)
	}

	plainIdx, pinnedIdx := -1, -1
	for i, p := range posts {
		switch p.Slug {
		case slugPlain:
			plainIdx = i
		case slugPinned:
			pinnedIdx = i
		}
	}
	if plainIdx == -1 || pinnedIdx == -1 {
		t.Fatal("expected both test posts in the published list")
	}
	if pinnedIdx > plainIdx {
		t.Errorf("pinned post at %d should come before plain post at %d", pinnedIdx, plainIdx)
	}
}

func TestPostStoreUpdate(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "test-update-" + uuid.NewString()[:8]
	t.Cleanup(func() { cleanPosts(t, db, slug) })

	created, _ := s.Create(ctx, &models.Post{
		Title: "Original", Slug: slug, Body: "original", Category: models.PostCategoryNotice,
	})

	created.Title = "Updated Title"
	created.Body = "updated body"
	created.IsPublished = true

	if err := s.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, _ := s.FindByID(ctx, created.ID)
	if found.Title != "Updated Title" {
		t.Errorf("title: got %q, want %q", found.Title, "Updated Title")
	}
	if !found.IsPublished {
		t.Error("expected post to be published after update")
	}
	if found.PublishedAt == nil {
		t.Error("expected published_at set after publishing")
	}
}

func TestPostStoreDelete(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)
	ctx := context.Background()

	slug := "test-delete-" + uuid.NewString()[:8]

	created, _ := s.Create(ctx, &models.Post{
		Title: "Delete", Slug: slug, Body: "body", Category: models.PostCategoryNotice,
	})

	if err := s.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	found, _ := s.FindByID(ctx, created.ID)
	if found != nil {
		t.Error("expected nil after delete")
	}
}

func TestPostStoreCount(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	count, err := s.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count < 0 {
		t.Error("expected non-negative count")
	}
}
