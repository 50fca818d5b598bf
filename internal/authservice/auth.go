package authservice

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sushihentaime/portfolio/internal/common"
)

// NewAuthService builds the credential gate for the single configured admin. The admin password
// is only kept as a bcrypt hash.
func NewAuthService(cfg Config) (*AuthService, error) {
	v := common.NewValidator()
	v.Check(common.NotBlank(cfg.AdminEmail), "admin_email", "must be provided")
	v.Check(cfg.AdminPassword != "", "admin_password", "must be provided")
	v.Check(len(cfg.AdminPassword) <= maxPasswordLength, "admin_password", "must not be more than 72 bytes long")
	v.Check(len(cfg.Secret) >= minSecretLength, "jwt_secret", "must be at least 32 bytes long")
	v.Check(common.NotBlank(cfg.Issuer), "jwt_issuer", "must be provided")
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	s := &AuthService{
		email:  cfg.AdminEmail,
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		now:    time.Now,
	}

	if err := s.password.set(cfg.AdminPassword); err != nil {
		return nil, err
	}

	return s, nil
}

// Login exchanges the admin credentials for a signed token valid for AccessTokenTime. Any
// mismatch yields ErrInvalidCredentials without saying which field was wrong.
func (s *AuthService) Login(identifier, secret string) (*Token, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(identifier), []byte(s.email)) == 1

	passwordOK, err := s.password.matches(secret)
	if err != nil {
		return nil, err
	}

	if !emailOK || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	return s.issue()
}

func (s *AuthService) issue() (*Token, error) {
	now := s.now()
	expiry := now.Add(AccessTokenTime)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   s.email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}

	plain, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &Token{Plain: plain, Expiry: expiry}, nil
}

// Verify checks signature, algorithm, issuer, subject and expiry of a presented token.
func (s *AuthService) Verify(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject != s.email {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
