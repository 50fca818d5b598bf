package blogservice

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/sushihentaime/portfolio/internal/common"
)

func NewBlogService(db *sql.DB, defaultAuthor string) *BlogService {
	return &BlogService{m: newBlogModel(db), defaultAuthor: strings.TrimSpace(defaultAuthor)}
}

// CreatePost validates and stores a new post. Author and readTime fall back to the configured
// author and a word count estimate.
func (s *BlogService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	p := &Post{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Slug:      strings.TrimSpace(req.Slug),
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   sanitizeMarkdown(req.Content),
		Author:    strings.TrimSpace(req.Author),
		Tags:      normalizeTags(req.Tags),
		ImageURL:  req.ImageURL,
		Featured:  req.Featured,
		Published: req.Published,
		ReadTime:  strings.TrimSpace(req.ReadTime),
	}

	if p.Author == "" {
		p.Author = s.defaultAuthor
	}
	if p.ReadTime == "" {
		p.ReadTime = estimateReadTime(p.Content)
	}

	v := common.NewValidator()
	validatePost(v, p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetPublishedPost returns a published post by slug with its rendered HTML and counts the view.
func (s *BlogService) GetPublishedPost(ctx context.Context, slug string) (*Post, error) {
	p, err := s.m.viewPublishedPost(ctx, slug)
	if err != nil {
		return nil, err
	}

	p.ContentHTML, err = renderMarkdown(p.Content)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// GetPost returns any post by id, published or not.
func (s *BlogService) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.m.getPostByID(ctx, id)
}

// UpdatePost merges req into the stored post and persists the result. A readTime that was
// estimated from the old content is re-estimated when the content changes.
func (s *BlogService) UpdatePost(ctx context.Context, id uuid.UUID, req *UpdatePostRequest) (*Post, error) {
	p, err := s.m.getPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	estimated := p.ReadTime == estimateReadTime(p.Content)

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		p.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Excerpt != nil {
		p.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Content != nil {
		p.Content = sanitizeMarkdown(*req.Content)
		if estimated {
			p.ReadTime = estimateReadTime(p.Content)
		}
	}
	if req.Author != nil {
		p.Author = strings.TrimSpace(*req.Author)
		if p.Author == "" {
			p.Author = s.defaultAuthor
		}
	}
	if req.Tags != nil {
		p.Tags = normalizeTags(*req.Tags)
	}
	if req.ImageURL != nil {
		p.ImageURL = *req.ImageURL
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil {
		p.Published = *req.Published
	}
	if req.ReadTime != nil {
		p.ReadTime = strings.TrimSpace(*req.ReadTime)
		if p.ReadTime == "" {
			p.ReadTime = estimateReadTime(p.Content)
		}
	}

	v := common.NewValidator()
	validatePost(v, p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.updatePost(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id uuid.UUID) error {
	return s.m.deletePost(ctx, id)
}

// GetPosts lists published posts newest first, optionally only the featured ones.
func (s *BlogService) GetPosts(ctx context.Context, featuredOnly bool, limit, offset *int) ([]Post, error) {
	l, o := common.Page(limit, offset)
	return s.m.getPosts(ctx, Filter{PublishedOnly: true, FeaturedOnly: featuredOnly, Limit: l, Offset: o})
}

// GetAllPosts lists drafts and published posts alike.
func (s *BlogService) GetAllPosts(ctx context.Context, limit, offset *int) ([]Post, error) {
	l, o := common.Page(limit, offset)
	return s.m.getPosts(ctx, Filter{Limit: l, Offset: o})
}

// normalizeTags trims tags and drops repeats, keeping the first occurrence.
func normalizeTags(tags []string) []string {
	if tags == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
