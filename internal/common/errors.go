package common

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mdobak/go-xerrors"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrEditConflict   = errors.New("edit conflict")
)

// DependencyError reports a failure of an external collaborator such as object storage or the
// message broker. Err carries a stack trace for logging; callers only see a generic message.
type DependencyError struct {
	Dependency string
	Err        error
}

func NewDependencyError(dependency string, err error) error {
	return DependencyError{Dependency: dependency, Err: xerrors.New(err)}
}

func (e DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dependency, e.Err)
}

func (e DependencyError) Unwrap() error {
	return e.Err
}

// Stack renders the wrapped error together with the stack captured when it was created.
func (e DependencyError) Stack() string {
	return xerrors.Sprint(e.Err)
}

// UniqueViolation reports whether err is a postgres unique violation on the named constraint.
func UniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" && pqErr.Constraint == constraint
	}

	return false
}
