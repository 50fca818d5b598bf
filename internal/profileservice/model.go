package profileservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/portfolio/internal/common"
)

const profileColumns = `id, name, title, bio, email, phone, location, profile_image, skills, social_links, created_at, updated_at, version`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func newProfileModel(db *sql.DB) *ProfileModel {
	return &ProfileModel{db: db}
}

// latest returns the most recently updated profile.
func (m *ProfileModel) latest(ctx context.Context, q querier) (*Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY updated_at DESC, created_at DESC
		LIMIT 1`

	var p Profile
	err := q.QueryRowContext(ctx, query).Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.Email, &p.Phone, &p.Location,
		&p.ProfileImage, &p.Skills, &p.SocialLinks, &p.CreatedAt, &p.UpdatedAt, &p.Version)
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

func (m *ProfileModel) get(ctx context.Context) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	return m.latest(ctx, m.db)
}

func (m *ProfileModel) insert(ctx context.Context, tx *sql.Tx, p *Profile) error {
	query := `
		INSERT INTO profiles (id, name, title, bio, email, phone, location, profile_image, skills, social_links)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at, version`

	args := []any{p.ID, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.ProfileImage, p.Skills, p.SocialLinks}

	return tx.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt, &p.Version)
}

func (m *ProfileModel) update(ctx context.Context, tx *sql.Tx, p *Profile) error {
	query := `
		UPDATE profiles
		SET name = $1, title = $2, bio = $3, email = $4, phone = $5, location = $6, profile_image = $7,
			skills = $8, social_links = $9, updated_at = NOW(), version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING updated_at, version`

	args := []any{p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.ProfileImage, p.Skills, p.SocialLinks, p.ID, p.Version}

	err := tx.QueryRowContext(ctx, query, args...).Scan(&p.UpdatedAt, &p.Version)
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
