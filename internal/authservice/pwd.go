package authservice

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	passwordCost = 12
	// bcrypt only reads the first 72 bytes of its input.
	maxPasswordLength = 72
)

// set hashes the configured admin password; the plaintext is not retained.
func (p *Password) set(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), passwordCost)
	if err != nil {
		return err
	}

	p.hash = hash
	return nil
}

// matches reports whether pwd is the admin password. Input longer than bcrypt reads never
// matches, otherwise anything sharing the first 72 bytes would.
func (p *Password) matches(pwd string) (bool, error) {
	if len(pwd) > maxPasswordLength {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(p.hash, []byte(pwd))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
