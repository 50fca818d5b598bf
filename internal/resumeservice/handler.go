package resumeservice

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

func NewResumeService(db *sql.DB, store common.ObjectStore, cache *common.Cache, logger *slog.Logger) *ResumeService {
	return &ResumeService{
		m:      newResumeModel(db),
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Upload stores the PDF and makes it the active resume. Nothing is written to the database when
// the object store fails, and the stored object is removed again when the database write fails.
func (s *ResumeService) Upload(ctx context.Context, req *UploadRequest) (*Resume, error) {
	req.FileName = filepath.Base(strings.TrimSpace(req.FileName))

	v := common.NewValidator()
	validateUpload(v, req)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	id := uuid.New()
	r := &Resume{
		ID:        id,
		FileName:  req.FileName,
		ObjectKey: "resume/" + id.String() + ".pdf",
	}

	uctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	url, err := s.store.Upload(uctx, r.ObjectKey, req.Data, PDFType)
	if err != nil {
		return nil, common.NewDependencyError("object storage", err)
	}
	r.FileURL = url

	if err := s.m.activate(ctx, r); err != nil {
		s.removeObject(r.ObjectKey)
		return nil, err
	}

	s.cache.Invalidate(common.CacheKeyCurrentResume)
	return r, nil
}

func (s *ResumeService) removeObject(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), UploadTimeout)
	defer cancel()

	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Error("failed to remove orphaned resume object", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// GetCurrent returns the active resume.
func (s *ResumeService) GetCurrent(ctx context.Context) (*Resume, error) {
	if v, ok := s.cache.Get(common.CacheKeyCurrentResume); ok {
		r := v.(Resume)
		return &r, nil
	}

	gen := s.cache.Generation(common.CacheKeyCurrentResume)

	r, err := s.m.current(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetIfCurrent(common.CacheKeyCurrentResume, gen, *r)
	return r, nil
}

// GetResumes lists every uploaded resume, newest first.
func (s *ResumeService) GetResumes(ctx context.Context, limit, offset *int) ([]Resume, error) {
	l, o := common.Page(limit, offset)
	return s.m.list(ctx, l, o)
}
