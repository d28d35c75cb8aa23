package store

import (
	"database/sql"
	"testing"

	"github.com/muzads/muzads/internal/database"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPosts(t *testing.T) {
	s := NewContentStore(testDB(t))

	posts, err := s.Posts()
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) == 0 {
		t.Fatal("expected seeded posts")
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			t.Errorf("posts not ordered newest first at index %d", i)
		}
	}
	for _, p := range posts {
		if p.Slug == "" || p.Title == "" || p.Body == "" {
			t.Errorf("incomplete post: %+v", p)
		}
	}
}

func TestPostBySlug(t *testing.T) {
	s := NewContentStore(testDB(t))

	posts, err := s.Posts()
	if err != nil {
		t.Fatalf("posts: %v", err)
	}

	got, err := s.PostBySlug(posts[0].Slug)
	if err != nil {
		t.Fatalf("post by slug: %v", err)
	}
	if got == nil || got.Title != posts[0].Title {
		t.Errorf("got = %+v, want %+v", got, posts[0])
	}

	missing, err := s.PostBySlug("no-such-post")
	if err != nil {
		t.Fatalf("unknown slug: %v", err)
	}
	if missing != nil {
		t.Errorf("got = %+v, want nil for unknown slug", missing)
	}
}

func TestUseCases(t *testing.T) {
	s := NewContentStore(testDB(t))

	cases, err := s.UseCases()
	if err != nil {
		t.Fatalf("use cases: %v", err)
	}
	if len(cases) != 5 {
		t.Fatalf("got %d use cases, want 5", len(cases))
	}

	slugs := map[string]bool{}
	for _, u := range cases {
		slugs[u.Slug] = true
	}
	for _, want := range []string{"saas", "agencies", "digital-products", "mobile-apps", "services"} {
		if !slugs[want] {
			t.Errorf("missing use case %q", want)
		}
	}
}

func TestUseCaseBySlug(t *testing.T) {
	s := NewContentStore(testDB(t))

	got, err := s.UseCaseBySlug("saas")
	if err != nil {
		t.Fatalf("use case by slug: %v", err)
	}
	if got == nil || got.Slug != "saas" {
		t.Errorf("got = %+v", got)
	}

	missing, err := s.UseCaseBySlug("unknown")
	if err != nil {
		t.Fatalf("unknown slug: %v", err)
	}
	if missing != nil {
		t.Errorf("got = %+v, want nil", missing)
	}
}
