package authservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTime is the fixed lifetime of an admin token.
	AccessTokenTime time.Duration = 24 * time.Hour

	minSecretLength = 32
)

var (
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	ErrInvalidToken       = errors.New("invalid or missing authentication token")
)

type Config struct {
	AdminEmail    string
	AdminPassword string
	Secret        string
	Issuer        string
}

type AuthService struct {
	email    string
	password Password
	secret   []byte
	issuer   string
	now      func() time.Time
}

type Password struct {
	hash []byte
}

// Claims identify the admin the token was issued to.
type Claims struct {
	jwt.RegisteredClaims
}

type Token struct {
	Plain  string    `json:"token"`
	Expiry time.Time `json:"expiry"`
}
