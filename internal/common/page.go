package common

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Page resolves optional limit and offset query values. Missing or out of range values fall back
// to the defaults.
func Page(limit, offset *int) (int, int) {
	l, o := DefaultPageSize, 0

	if limit != nil && *limit > 0 {
		l = min(*limit, MaxPageSize)
	}

	if offset != nil && *offset > 0 {
		o = *offset
	}

	return l, o
}
