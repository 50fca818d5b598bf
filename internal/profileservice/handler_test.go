package profileservice

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/portfolio/internal/common"
)

func setupTestEnvironment(t *testing.T) (*ProfileService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)
	cache := common.NewCache(5*time.Minute, 10*time.Minute)

	cleanup := func() error {
		cache.Flush()
		_, err := db.Exec("DELETE FROM profiles")
		return err
	}

	return NewProfileService(db, cache), db, cleanup
}

func strptr(s string) *string {
	return &s
}

func fullRequest() *ProfileRequest {
	return &ProfileRequest{
		Name:   strptr("Jane Doe"),
		Title:  strptr("Backend Engineer"),
		Bio:    strptr("Builds things."),
		Email:  strptr("jane@example.com"),
		Skills: &[]Skill{{Name: "Go", Level: LevelExpert}, {Name: "SQL", Level: LevelAdvanced}},
	}
}

func TestGetProfileNotFound(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	_, err := s.GetProfile(context.Background())
	assert.ErrorIs(t, err, common.ErrRecordNotFound)
}

func TestSaveProfile(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	_, _, err := s.SaveProfile(ctx, &ProfileRequest{Name: strptr("Jane")})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"title": "must be provided",
		"bio":   "must be provided",
		"email": "must be provided",
	}}, err)

	p, created, err := s.SaveProfile(ctx, fullRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, p.Version)
	assert.Equal(t, Skills{{Name: "Go", Level: LevelExpert}, {Name: "SQL", Level: LevelAdvanced}}, p.Skills)

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Jane Doe", got.Name)

	updated, created, err := s.SaveProfile(ctx, &ProfileRequest{
		Location:    strptr("Berlin"),
		SocialLinks: &SocialLinks{GitHub: "https://github.com/jane"},
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, 2, updated.Version)
	assert.Len(t, updated.Skills, 2)

	got, err = s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", got.Location)
	assert.Equal(t, "https://github.com/jane", got.SocialLinks.GitHub)

	_, _, err = s.SaveProfile(ctx, &ProfileRequest{Email: strptr("not-an-email")})
	assert.Equal(t, common.ValidationError{Errors: map[string]string{"email": "must be a valid email address"}}, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSaveProfileConcurrentFirstWrites(t *testing.T) {
	s, db, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	const writers = 5

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		creates int
	)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, created, err := s.SaveProfile(ctx, fullRequest())
			assert.NoError(t, err)
			if created {
				mu.Lock()
				creates++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, creates)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM profiles").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetProfileIgnoresFillOlderThanSave(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)
	ctx := context.Background()

	t.Cleanup(func() {
		assert.NoError(t, cleanup())
	})

	_, _, err := s.SaveProfile(ctx, fullRequest())
	require.NoError(t, err)

	// a reader misses the cache and loads the profile before the next save commits
	gen := s.cache.Generation(common.CacheKeyProfile)
	old, err := s.m.get(ctx)
	require.NoError(t, err)

	_, _, err = s.SaveProfile(ctx, &ProfileRequest{Location: strptr("Berlin")})
	require.NoError(t, err)

	assert.False(t, s.cache.SetIfCurrent(common.CacheKeyProfile, gen, *old))

	p, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", p.Location)
}
