package store

import (
	"database/sql"
	"fmt"

	"github.com/muzads/muzads/internal/model"
)

// ContentStore serves the marketing site's editorial content: blog posts and
// use-case pages. Content is seeded by migrations and read-only at runtime.
type ContentStore struct {
	db *sql.DB
}

func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const postCols = `id, slug, title, summary, body, author, published_at`

func scanPost(scanner interface{ Scan(...any) error }) (*model.BlogPost, error) {
	var p model.BlogPost
	err := scanner.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Body, &p.Author, &p.PublishedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Posts returns all blog posts, newest first.
func (s *ContentStore) Posts() ([]model.BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + postCols + ` FROM posts ORDER BY published_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// PostBySlug returns one post, or nil if the slug is unknown.
func (s *ContentStore) PostBySlug(slug string) (*model.BlogPost, error) {
	row := s.db.QueryRow(`SELECT `+postCols+` FROM posts WHERE slug = ?`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return p, nil
}

const useCaseCols = `id, slug, title, audience, body`

func scanUseCase(scanner interface{ Scan(...any) error }) (*model.UseCase, error) {
	var u model.UseCase
	err := scanner.Scan(&u.ID, &u.Slug, &u.Title, &u.Audience, &u.Body)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UseCases returns all use-case pages in insertion order.
func (s *ContentStore) UseCases() ([]model.UseCase, error) {
	rows, err := s.db.Query(`SELECT ` + useCaseCols + ` FROM use_cases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list use cases: %w", err)
	}
	defer rows.Close()

	var cases []model.UseCase
	for rows.Next() {
		u, err := scanUseCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan use case: %w", err)
		}
		cases = append(cases, *u)
	}
	return cases, rows.Err()
}

// UseCaseBySlug returns one use-case page, or nil if the slug is unknown.
func (s *ContentStore) UseCaseBySlug(slug string) (*model.UseCase, error) {
	row := s.db.QueryRow(`SELECT `+useCaseCols+` FROM use_cases WHERE slug = ?`, slug)
	u, err := scanUseCase(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get use case: %w", err)
	}
	return u, nil
}
