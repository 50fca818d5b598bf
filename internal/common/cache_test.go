package common

import "testing"

func setupTestEnvironment(t *testing.T) (*Cache, func()) {
	t.Helper()

	cache := NewCache(0, 0)

	cleanup := func() {
		cache.Flush()
	}

	return cache, cleanup
}

func TestCache_Set(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set(CacheKeyProfile, "value")

	if _, ok := cache.Get(CacheKeyProfile); !ok {
		t.Error("expected key to be set")
	}
}

func TestCache_Delete(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set(CacheKeyCurrentResume, "value")
	cache.Delete(CacheKeyCurrentResume)

	if _, ok := cache.Get(CacheKeyCurrentResume); ok {
		t.Error("expected key to be deleted")
	}
}

func TestCache_Flush(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	cache.Set(CacheKeyProfile, "value")
	cache.Set(CacheKeyCurrentResume, "value")
	cache.Flush()

	if _, ok := cache.Get(CacheKeyProfile); ok {
		t.Error("expected cache to be flushed")
	}
}

func TestCache_SetIfCurrent(t *testing.T) {
	cache, cleanup := setupTestEnvironment(t)
	defer cleanup()

	gen := cache.Generation(CacheKeyCurrentResume)
	if !cache.SetIfCurrent(CacheKeyCurrentResume, gen, "fresh") {
		t.Fatal("expected fill to be stored")
	}

	// a reader loads the old value, then a write invalidates before the reader fills
	gen = cache.Generation(CacheKeyCurrentResume)
	cache.Invalidate(CacheKeyCurrentResume)

	if cache.SetIfCurrent(CacheKeyCurrentResume, gen, "stale") {
		t.Error("expected stale fill to be rejected")
	}
	if _, ok := cache.Get(CacheKeyCurrentResume); ok {
		t.Error("expected key to stay empty after invalidation")
	}

	gen = cache.Generation(CacheKeyCurrentResume)
	if !cache.SetIfCurrent(CacheKeyCurrentResume, gen, "fresh") {
		t.Error("expected fill after invalidation to be stored")
	}
}
