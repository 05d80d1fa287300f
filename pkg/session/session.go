// Package session implements cookie sessions carried as signed tokens.
// The cookie value is an HS256 JWT holding the session ID, user ID,
// username and role; the session ID is additionally tracked server-side
// (Redis when configured, in-process otherwise) so logout revokes it.
package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on login.
const CookieName = "riseup_session"

var (
	ErrInvalidToken = errors.New("session: invalid token")
	ErrRevoked      = errors.New("session: revoked or expired")
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	SessionID string
	UserID    int64
	Username  string
	Role      string
}

type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a session for the user and returns the signed cookie value.
func (m *Manager) Issue(ctx context.Context, userID int64, username, role string) (string, error) {
	sid := uuid.NewString()
	now := time.Now()

	claims := sessionClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", err
	}

	if err := m.store.Put(ctx, sid, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Validate parses the token, verifies the signature and expiry, and checks
// the session has not been revoked.
func (m *Manager) Validate(ctx context.Context, token string) (*Principal, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	live, err := m.store.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrRevoked
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Principal{
		SessionID: claims.ID,
		UserID:    userID,
		Username:  claims.Username,
		Role:      claims.Role,
	}, nil
}

// Revoke ends the session server-side. The cookie itself is cleared by the
// logout handler.
func (m *Manager) Revoke(ctx context.Context, sid string) error {
	return m.store.Delete(ctx, sid)
}
