package session_test

import (
	"context"
	"testing"
	"time"

	"riseup-backend/pkg/session"

	"github.com/stretchr/testify/assert"
)

func newManager(ttl time.Duration) *session.Manager {
	return session.NewManager("test-secret", ttl, session.NewMemoryStore())
}

func TestIssueAndValidate(t *testing.T) {
	m := newManager(time.Hour)
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "amina", "student")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	principal, err := m.Validate(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), principal.UserID)
	assert.Equal(t, "amina", principal.Username)
	assert.Equal(t, "student", principal.Role)
	assert.NotEmpty(t, principal.SessionID)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := newManager(time.Hour)

	_, err := m.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	issuer := session.NewManager("secret-a", time.Hour, session.NewMemoryStore())
	verifier := session.NewManager("secret-b", time.Hour, session.NewMemoryStore())

	token, err := issuer.Issue(ctx, 7, "amina", "student")
	assert.NoError(t, err)

	_, err = verifier.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestRevoke(t *testing.T) {
	m := newManager(time.Hour)
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "amina", "student")
	assert.NoError(t, err)

	principal, err := m.Validate(ctx, token)
	assert.NoError(t, err)

	assert.NoError(t, m.Revoke(ctx, principal.SessionID))

	// Token is still cryptographically valid but the session is gone
	_, err = m.Validate(ctx, token)
	assert.ErrorIs(t, err, session.ErrRevoked)
}

func TestExpiredSession(t *testing.T) {
	m := newManager(-time.Minute) // already expired at issue time
	ctx := context.Background()

	token, err := m.Issue(ctx, 7, "amina", "student")
	assert.NoError(t, err)

	_, err = m.Validate(ctx, token)
	assert.Error(t, err)
}
