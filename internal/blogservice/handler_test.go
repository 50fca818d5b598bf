package blogservice

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/portfolio/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM blog_posts")
		return err
	}

	return NewBlogService(db, "Jane Doe"), db, cleanup
}

func strptr(s string) *string {
	return &s
}

func boolptr(b bool) *bool {
	return &b
}

func newPostRequest(slug string, published bool) *CreatePostRequest {
	return &CreatePostRequest{
		Title:     "Hello",
		Slug:      slug,
		Excerpt:   "A short intro",
		Content:   "# Hello\n\nSome *markdown* text.",
		Tags:      []string{"go"},
		Published: published,
	}
}

func TestCreatePost(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	req := newPostRequest("hello-world", true)
	req.Content = "Intro <script>alert(1)</script> text"
	req.Tags = []string{" go ", "go", "web"}

	p, err := s.CreatePost(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Jane Doe", p.Author)
	assert.Equal(t, "1 min read", p.ReadTime)
	assert.Equal(t, "Intro  text", p.Content)
	assert.Equal(t, []string{"go", "web"}, p.Tags)
	assert.Equal(t, int64(0), p.Views)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	_, err = s.CreatePost(ctx, newPostRequest("hello-world", false))
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	_, err = s.CreatePost(ctx, &CreatePostRequest{Title: "X", Slug: "Not A Slug"})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"slug":    "must only contain lowercase letters, numbers, and single hyphens",
		"excerpt": "must be provided",
		"content": "must be provided",
		"tags":    "must contain at least one tag",
	}}, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM blog_posts").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetPublishedPostCountsViews(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	p, err := s.CreatePost(ctx, newPostRequest("counted", true))
	require.NoError(t, err)

	var last *Post
	for i := 0; i < 3; i++ {
		last, err = s.GetPublishedPost(ctx, "counted")
		require.NoError(t, err)
	}
	assert.Equal(t, int64(3), last.Views)
	assert.Contains(t, last.ContentHTML, "<h1>Hello</h1>")
	assert.Contains(t, last.ContentHTML, "<em>markdown</em>")
	assert.Equal(t, p.UpdatedAt, last.UpdatedAt)
	assert.Equal(t, p.Version, last.Version)

	_, err = s.GetPublishedPost(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestGetPublishedPostHidesDrafts(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	draft, err := s.CreatePost(ctx, newPostRequest("draft", false))
	require.NoError(t, err)

	_, err = s.GetPublishedPost(ctx, "draft")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)

	got, err := s.GetPost(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Views)
}

func TestUpdatePost(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	p, err := s.CreatePost(ctx, newPostRequest("first", false))
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, newPostRequest("taken", false))
	require.NoError(t, err)

	testCases := []struct {
		name    string
		id      uuid.UUID
		req     *UpdatePostRequest
		check   func(t *testing.T, got *Post)
		wantErr error
	}{
		{
			name: "publish",
			id:   p.ID,
			req:  &UpdatePostRequest{Published: boolptr(true)},
			check: func(t *testing.T, got *Post) {
				assert.True(t, got.Published)
				assert.Equal(t, "first", got.Slug)
				assert.Equal(t, 2, got.Version)
			},
		},
		{
			name: "long content re-estimates read time",
			id:   p.ID,
			req:  &UpdatePostRequest{Content: strptr(strings.Repeat("word ", 450))},
			check: func(t *testing.T, got *Post) {
				assert.Equal(t, "3 min read", got.ReadTime)
			},
		},
		{
			name: "explicit read time",
			id:   p.ID,
			req:  &UpdatePostRequest{ReadTime: strptr("7 min read"), Content: strptr("short")},
			check: func(t *testing.T, got *Post) {
				assert.Equal(t, "7 min read", got.ReadTime)
			},
		},
		{
			name: "blank author falls back",
			id:   p.ID,
			req:  &UpdatePostRequest{Author: strptr("  ")},
			check: func(t *testing.T, got *Post) {
				assert.Equal(t, "Jane Doe", got.Author)
			},
		},
		{
			name:    "slug taken",
			id:      p.ID,
			req:     &UpdatePostRequest{Slug: strptr("taken")},
			wantErr: ErrDuplicateSlug,
		},
		{
			name:    "empty tags",
			id:      p.ID,
			req:     &UpdatePostRequest{Tags: &[]string{}},
			wantErr: common.ValidationError{Errors: map[string]string{"tags": "must contain at least one tag"}},
		},
		{
			name:    "unknown post",
			id:      uuid.New(),
			req:     &UpdatePostRequest{Published: boolptr(true)},
			wantErr: common.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.UpdatePost(ctx, tc.id, tc.req)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr, err)
				return
			}

			require.NoError(t, err)
			tc.check(t, got)
		})
	}
}

func TestUpdatePostEditConflict(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	p, err := s.CreatePost(ctx, newPostRequest("conflict", true))
	require.NoError(t, err)

	stale := *p
	_, err = s.UpdatePost(ctx, p.ID, &UpdatePostRequest{Title: strptr("Newer")})
	require.NoError(t, err)

	stale.Title = "Older"
	assert.ErrorIs(t, s.m.updatePost(ctx, &stale), common.ErrEditConflict)
}

func TestDeletePostTwice(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	p, err := s.CreatePost(ctx, newPostRequest("gone", true))
	require.NoError(t, err)

	assert.NoError(t, s.DeletePost(ctx, p.ID))
	assert.ErrorIs(t, s.DeletePost(ctx, p.ID), common.ErrRecordNotFound)

	_, err = s.GetPublishedPost(ctx, "gone")
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestGetPosts(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	posts, err := s.GetPosts(ctx, false, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	_, err = s.CreatePost(ctx, newPostRequest("draft", false))
	require.NoError(t, err)
	_, err = s.CreatePost(ctx, newPostRequest("plain", true))
	require.NoError(t, err)
	featuredReq := newPostRequest("featured", true)
	featuredReq.Featured = true
	featured, err := s.CreatePost(ctx, featuredReq)
	require.NoError(t, err)

	published, err := s.GetPosts(ctx, false, nil, nil)
	require.NoError(t, err)
	assert.Len(t, published, 2)
	for _, p := range published {
		assert.True(t, p.Published)
	}

	onlyFeatured, err := s.GetPosts(ctx, true, nil, nil)
	require.NoError(t, err)
	require.Len(t, onlyFeatured, 1)
	assert.Equal(t, featured.ID, onlyFeatured[0].ID)

	all, err := s.GetAllPosts(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	offset := 2
	rest, err := s.GetAllPosts(ctx, nil, &offset)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}
