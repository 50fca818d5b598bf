package projectservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/sushihentaime/portfolio/internal/common"
)

func newProjectModel(db *sql.DB) *ProjectModel {
	return &ProjectModel{db: db}
}

func (m *ProjectModel) insert(ctx context.Context, p *Project) error {
	query := `
		INSERT INTO projects (id, title, description, technologies, github_url, live_url, image_url, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at, version`

	args := []any{p.ID, p.Title, p.Description, pq.Array(p.Technologies), p.GithubURL, p.LiveURL, p.ImageURL, p.Featured}

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	return m.db.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt, &p.Version)
}

func (m *ProjectModel) get(ctx context.Context, id uuid.UUID) (*Project, error) {
	query := `
		SELECT id, title, description, technologies, github_url, live_url, image_url, featured, created_at, updated_at, version
		FROM projects
		WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	var p Project
	err := m.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, pq.Array(&p.Technologies), &p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt, &p.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &p, nil
}

// update writes p back only if nobody changed it since it was read.
func (m *ProjectModel) update(ctx context.Context, p *Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, technologies = $3, github_url = $4, live_url = $5, image_url = $6,
			featured = $7, updated_at = NOW(), version = version + 1
		WHERE id = $8 AND version = $9
		RETURNING updated_at, version`

	args := []any{p.Title, p.Description, pq.Array(p.Technologies), p.GithubURL, p.LiveURL, p.ImageURL, p.Featured, p.ID, p.Version}

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	err := m.db.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt, &p.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return common.ErrEditConflict
		default:
			return err
		}
	}

	return nil
}

func (m *ProjectModel) delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM projects
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

// list returns projects newest first. The result is never nil.
func (m *ProjectModel) list(ctx context.Context, f Filter) ([]Project, error) {
	query := `
		SELECT id, title, description, technologies, github_url, live_url, image_url, featured, created_at, updated_at, version
		FROM projects
		WHERE ($1 = false OR featured)
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, query, f.FeaturedOnly, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var p Project
		err := rows.Scan(&p.ID, &p.Title, &p.Description, pq.Array(&p.Technologies), &p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Featured, &p.CreatedAt, &p.UpdatedAt, &p.Version)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
