package resumeservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/portfolio/internal/common"
)

func newResumeModel(db *sql.DB) *ResumeModel {
	return &ResumeModel{db: db}
}

// activate records r as the only active resume. Both statements run in one transaction under the
// resume advisory lock, so readers never observe zero or two active rows.
func (m *ResumeModel) activate(ctx context.Context, r *Resume) error {
	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	return common.WithTx(ctx, m.db, func(tx *sql.Tx) error {
		if err := common.AdvisoryLock(ctx, tx, common.LockKeyResume); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE resumes SET active = false WHERE active`); err != nil {
			return err
		}

		query := `
			INSERT INTO resumes (id, file_url, file_name, object_key, active)
			VALUES ($1, $2, $3, $4, true)
			RETURNING uploaded_at, active`

		return tx.QueryRowContext(ctx, query, r.ID, r.FileURL, r.FileName, r.ObjectKey).Scan(&r.UploadedAt, &r.Active)
	})
}

func (m *ResumeModel) current(ctx context.Context) (*Resume, error) {
	query := `
		SELECT id, file_url, file_name, object_key, uploaded_at, active
		FROM resumes
		WHERE active`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	var r Resume
	err := m.db.QueryRowContext(ctx, query).Scan(&r.ID, &r.FileURL, &r.FileName, &r.ObjectKey, &r.UploadedAt, &r.Active)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &r, nil
}

// list returns the upload history, newest first. The result is never nil.
func (m *ResumeModel) list(ctx context.Context, limit, offset int) ([]Resume, error) {
	query := `
		SELECT id, file_url, file_name, object_key, uploaded_at, active
		FROM resumes
		ORDER BY uploaded_at DESC, active DESC, id
		LIMIT $1 OFFSET $2`

	ctx, cancel := context.WithTimeout(ctx, common.QueryTimeout)
	defer cancel()

	rows, err := m.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	resumes := []Resume{}
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.FileURL, &r.FileName, &r.ObjectKey, &r.UploadedAt, &r.Active); err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resumes, nil
}
