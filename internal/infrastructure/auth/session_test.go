package auth

import (
	"context"
	"testing"
	"time"

	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService() *SessionService {
	return NewSessionService(config.SessionConfig{
		Secret: testSecret,
		Issuer: "commercehub",
	})
}

func mintToken(t *testing.T, claims *SessionClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() *SessionClaims {
	now := time.Now()
	return &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "commercehub",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:     11,
		BusinessID: 42,
		Email:      "ops@example.com",
	}
}

func TestValidate_ValidToken(t *testing.T) {
	svc := newTestService()
	token := mintToken(t, validClaims(), testSecret)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(11), claims.UserID)
	assert.Equal(t, int64(42), claims.BusinessID)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := newTestService()
	token := mintToken(t, validClaims(), "another-secret-another-secret-ab")

	_, err := svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := newTestService()
	claims := validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	token := mintToken(t, claims, testSecret)

	_, err := svc.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_WrongIssuer(t *testing.T) {
	svc := newTestService()
	claims := validClaims()
	claims.Issuer = "somebody-else"
	token := mintToken(t, claims, testSecret)

	_, err := svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MissingClaims(t *testing.T) {
	svc := newTestService()

	noBusiness := validClaims()
	noBusiness.BusinessID = 0
	_, err := svc.Validate(mintToken(t, noBusiness, testSecret))
	assert.ErrorIs(t, err, ErrMissingBusinessID)

	noUser := validClaims()
	noUser.UserID = 0
	_, err = svc.Validate(mintToken(t, noUser, testSecret))
	assert.ErrorIs(t, err, ErrMissingUserID)
}

func TestValidate_Garbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenContext(t *testing.T) {
	ctx := WithToken(context.Background(), "raw-token")
	assert.Equal(t, "raw-token", TokenFrom(ctx))
	assert.Empty(t, TokenFrom(context.Background()))
}
