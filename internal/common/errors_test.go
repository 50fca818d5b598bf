package common

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestDependencyError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDependencyError("object storage", cause)

	var depErr DependencyError
	assert.True(t, errors.As(err, &depErr))
	assert.Equal(t, "object storage", depErr.Dependency)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Contains(t, depErr.Stack(), "connection refused")
}

func TestUniqueViolation(t *testing.T) {
	err := &pq.Error{Code: "23505", Constraint: "blog_posts_slug_key"}

	assert.True(t, UniqueViolation(err, "blog_posts_slug_key"))
	assert.False(t, UniqueViolation(err, "projects_pkey"))
	assert.False(t, UniqueViolation(errors.New("boom"), "blog_posts_slug_key"))
}
