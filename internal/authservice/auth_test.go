package authservice

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushihentaime/portfolio/internal/common"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setupTestService(t *testing.T) *AuthService {
	t.Helper()

	s, err := NewAuthService(Config{
		AdminEmail:    "admin@portfolio.com",
		AdminPassword: "admin123",
		Secret:        testSecret,
		Issuer:        "portfolio",
	})
	require.NoError(t, err)

	return s
}

func TestNewAuthServiceRejectsIncompleteConfig(t *testing.T) {
	_, err := NewAuthService(Config{AdminEmail: "admin@portfolio.com", Secret: "short", Issuer: "portfolio"})

	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"admin_password": "must be provided",
		"jwt_secret":     "must be at least 32 bytes long",
	}}, err)
}

func TestNewAuthServiceRejectsLongPassword(t *testing.T) {
	_, err := NewAuthService(Config{
		AdminEmail:    "admin@portfolio.com",
		AdminPassword: strings.Repeat("a", maxPasswordLength+1),
		Secret:        testSecret,
		Issuer:        "portfolio",
	})

	assert.Equal(t, common.ValidationError{Errors: map[string]string{
		"admin_password": "must not be more than 72 bytes long",
	}}, err)
}

func TestPasswordMatches(t *testing.T) {
	full := strings.Repeat("p", maxPasswordLength)

	var p Password
	require.NoError(t, p.set(full))

	testCases := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact", input: full, want: true},
		{name: "different", input: "admin123", want: false},
		{name: "shares the first 72 bytes", input: full + "x", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := p.matches(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestLogin(t *testing.T) {
	s := setupTestService(t)

	testCases := []struct {
		name       string
		identifier string
		secret     string
		wantErr    error
	}{
		{name: "valid credentials", identifier: "admin@portfolio.com", secret: "admin123"},
		{name: "wrong password", identifier: "admin@portfolio.com", secret: "admin1234", wantErr: ErrInvalidCredentials},
		{name: "wrong identifier", identifier: "root@portfolio.com", secret: "admin123", wantErr: ErrInvalidCredentials},
		{name: "identifier case differs", identifier: "Admin@portfolio.com", secret: "admin123", wantErr: ErrInvalidCredentials},
		{name: "empty", wantErr: ErrInvalidCredentials},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			token, err := s.Login(tc.identifier, tc.secret)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, token)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.Plain)

			claims, err := s.Verify(token.Plain)
			require.NoError(t, err)
			assert.Equal(t, "admin@portfolio.com", claims.Subject)
		})
	}
}

func TestTokenExpiresAfter24Hours(t *testing.T) {
	s := setupTestService(t)

	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return issuedAt }

	token, err := s.Login("admin@portfolio.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), token.Expiry)

	s.now = func() time.Time { return issuedAt.Add(23*time.Hour + 59*time.Minute) }
	_, err = s.Verify(token.Plain)
	assert.NoError(t, err)

	s.now = func() time.Time { return issuedAt.Add(24*time.Hour + time.Second) }
	_, err = s.Verify(token.Plain)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignTokens(t *testing.T) {
	s := setupTestService(t)
	now := time.Now()

	sign := func(method jwt.SigningMethod, key any, claims Claims) string {
		plain, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return plain
	}

	valid := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "portfolio",
		Subject:   "admin@portfolio.com",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}}

	otherIssuer := valid
	otherIssuer.Issuer = "someone-else"

	otherSubject := valid
	otherSubject.Subject = "intruder@portfolio.com"

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "malformed", token: "not-a-token"},
		{name: "wrong key", token: sign(jwt.SigningMethodHS256, []byte("ffffffffffffffffffffffffffffffff"), valid)},
		{name: "wrong algorithm", token: sign(jwt.SigningMethodHS512, []byte(testSecret), valid)},
		{name: "unsigned", token: sign(jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid)},
		{name: "wrong issuer", token: sign(jwt.SigningMethodHS256, []byte(testSecret), otherIssuer)},
		{name: "wrong subject", token: sign(jwt.SigningMethodHS256, []byte(testSecret), otherSubject)},
		{name: "no expiry", token: sign(jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := s.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}

	_, err := s.Verify(sign(jwt.SigningMethodHS256, []byte(testSecret), valid))
	assert.NoError(t, err)
}

func TestPassword(t *testing.T) {
	var p Password
	require.NoError(t, p.set("admin123"))

	ok, err := p.matches("admin123")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.matches("wrong")
	assert.NoError(t, err)
	assert.False(t, ok)
}
