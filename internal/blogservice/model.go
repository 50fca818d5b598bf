package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sushihentaime/portfolio/internal/common"
)

var (
	ErrDuplicateSlug = errors.New("duplicate slug")
)

const postColumns = `id, title, slug, excerpt, content, author, tags, image_url, featured, published, read_time, views, created_at, updated_at, version`

func newBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(row scanner) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Author, pq.Array(&p.Tags), &p.ImageURL,
		&p.Featured, &p.Published, &p.ReadTime, &p.Views, &p.CreatedAt, &p.UpdatedAt, &p.Version)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *BlogModel) insert(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, excerpt, content, author, tags, image_url, featured, published, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING views, created_at, updated_at, version`

	args := []any{p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Author, pq.Array(p.Tags), p.ImageURL, p.Featured, p.Published, p.ReadTime}

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&p.Views, &p.CreatedAt, &p.UpdatedAt, &p.Version)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "blog_posts_slug_key"):
			return ErrDuplicateSlug
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) getPostByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	p, err := scanPost(m.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return p, nil
}

// viewPublishedPost reads a published post by slug and counts the view in the same statement.
func (m *BlogModel) viewPublishedPost(ctx context.Context, slug string) (*Post, error) {
	query := `
		UPDATE blog_posts
		SET views = views + 1
		WHERE slug = $1 AND published
		RETURNING ` + postColumns

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	p, err := scanPost(m.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return p, nil
}

func (m *BlogModel) updatePost(ctx context.Context, p *Post) error {
	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, author = $5, tags = $6, image_url = $7,
			featured = $8, published = $9, read_time = $10, updated_at = NOW(), version = version + 1
		WHERE id = $11 AND version = $12
		RETURNING views, updated_at, version`

	args := []any{p.Title, p.Slug, p.Excerpt, p.Content, p.Author, pq.Array(p.Tags), p.ImageURL, p.Featured, p.Published, p.ReadTime, p.ID, p.Version}

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&p.Views, &p.UpdatedAt, &p.Version)
	if err != nil {
		switch {
		case common.UniqueViolation(err, "blog_posts_slug_key"):
			return ErrDuplicateSlug
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrEditConflict
		default:
			return err
		}
	}

	return nil
}

func (m *BlogModel) deletePost(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM blog_posts
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

// getPosts returns posts newest first. The result is never nil.
func (m *BlogModel) getPosts(ctx context.Context, f Filter) ([]Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE ($1 = false OR published) AND ($2 = false OR featured)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, query, f.PublishedOnly, f.FeaturedOnly, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
