package projectservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

func NewProjectService(db *sql.DB) *ProjectService {
	return &ProjectService{m: newProjectModel(db)}
}

// CreateProject validates and stores a new project. featured defaults to false.
func (s *ProjectService) CreateProject(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	p := &Project{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(req.Title),
		Description:  req.Description,
		Technologies: trimAll(req.Technologies),
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		ImageURL:     req.ImageURL,
		Featured:     req.Featured,
	}

	v := common.NewValidator()
	validateProject(v, p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *ProjectService) GetProject(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.m.get(ctx, id)
}

// UpdateProject merges req into the stored project and persists the result.
func (s *ProjectService) UpdateProject(ctx context.Context, id uuid.UUID, req *UpdateProjectRequest) (*Project, error) {
	p, err := s.m.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Technologies != nil {
		p.Technologies = trimAll(*req.Technologies)
	}
	if req.GithubURL != nil {
		p.GithubURL = *req.GithubURL
	}
	if req.LiveURL != nil {
		p.LiveURL = *req.LiveURL
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}

	v := common.NewValidator()
	validateProject(v, p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return s.m.delete(ctx, id)
}

// GetProjects lists projects newest first, optionally only the featured ones.
func (s *ProjectService) GetProjects(ctx context.Context, featuredOnly bool, limit, offset *int) ([]Project, error) {
	l, o := common.Page(limit, offset)
	return s.m.list(ctx, Filter{FeaturedOnly: featuredOnly, Limit: l, Offset: o})
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, len(values))
	for i, s := range values {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
