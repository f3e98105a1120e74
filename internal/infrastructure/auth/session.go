package auth

import (
	"context"
	"errors"

	"github.com/commercehub/console/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
)

// Common errors
var (
	ErrInvalidToken      = errors.New("invalid session token")
	ErrExpiredToken      = errors.New("session token has expired")
	ErrInvalidClaims     = errors.New("invalid session token claims")
	ErrMissingBusinessID = errors.New("missing business_id in claims")
	ErrMissingUserID     = errors.New("missing user_id in claims")
)

// SessionClaims represents the claims carried by a console session token.
// Tokens are minted by the platform at login; the console only verifies them
// and forwards the raw token on every platform API call.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"user_id"`
	BusinessID int64  `json:"business_id"`
	Email      string `json:"email,omitempty"`
}

// SessionService verifies session tokens
type SessionService struct {
	secret []byte
	issuer string
}

// NewSessionService creates a new session service
func NewSessionService(cfg config.SessionConfig) *SessionService {
	return &SessionService{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
	}
}

// Validate parses and verifies a session token and returns its claims
func (s *SessionService) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return nil, ErrMissingUserID
	}
	if claims.BusinessID == 0 {
		return nil, ErrMissingBusinessID
	}

	return claims, nil
}

// tokenContextKey carries the caller's raw session token through the request
type tokenContextKey struct{}

// WithToken attaches the caller's raw session token to the context so the
// platform client can forward it
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFrom retrieves the caller's raw session token from the context
func TokenFrom(ctx context.Context) string {
	if token, ok := ctx.Value(tokenContextKey{}).(string); ok {
		return token
	}
	return ""
}
