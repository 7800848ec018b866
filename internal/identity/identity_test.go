// ABOUTME: Tests for the identity service
// ABOUTME: Covers signup, login, logout, session persistence, and listener notification

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillworks/storywizard/internal/kv"
)

var testSecret = []byte("test-session-secret")

func newTestService(t *testing.T, store kv.Store) *Service {
	t.Helper()
	s, err := NewService(context.Background(), store, testSecret)
	require.NoError(t, err)
	return s
}

func TestSignupEstablishesSession(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	u, err := s.Signup(ctx, "ada@example.com", "Ada", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, DeriveID("ada@example.com"), u.ID)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, "Ada", u.Name)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.ID, current.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Signup(ctx, "ada@example.com", "Ada", "hunter2")
	require.NoError(t, err)

	// Case-insensitive collision
	_, err = s.Signup(ctx, "ADA@Example.COM", "Other", "secret")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestSignupRejectsDisposableEmail(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())

	_, err := s.Signup(context.Background(), "spam@mailinator.com", "", "pw")
	assert.ErrorIs(t, err, ErrDisposableEmail)
}

func TestLoginSuccess(t *testing.T) {
	store := kv.NewMemoryStore()
	s := newTestService(t, store)
	ctx := context.Background()

	_, err := s.Signup(ctx, "ada@example.com", "Ada", "hunter2")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	u, err := s.Login(ctx, "Ada@Example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)

	_, ok := s.CurrentUser()
	assert.True(t, ok)
}

func TestLoginFailures(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Signup(ctx, "ada@example.com", "Ada", "hunter2")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "hunter2"},
		{"wrong password", "ada@example.com", "wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			// Failed login leaves the session unchanged
			_, ok := s.CurrentUser()
			assert.False(t, ok)
		})
	}
}

func TestLogoutClearsSession(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	_, err := s.Signup(ctx, "ada@example.com", "", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	_, ok := s.CurrentUser()
	assert.False(t, ok)

	// Logout is unconditional and idempotent
	require.NoError(t, s.Logout(ctx))

	// The account survives logout
	_, err = s.Login(ctx, "ada@example.com", "pw")
	assert.NoError(t, err)
}

func TestSessionSurvivesRestart(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	s := newTestService(t, store)
	u, err := s.Signup(ctx, "ada@example.com", "Ada", "pw")
	require.NoError(t, err)

	// A new service over the same store resumes the session
	restarted := newTestService(t, store)
	current, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, u.ID, current.ID)
}

func TestTamperedSessionReadsAsLoggedOut(t *testing.T) {
	store := kv.NewMemoryStore()
	ctx := context.Background()

	s := newTestService(t, store)
	_, err := s.Signup(ctx, "ada@example.com", "", "pw")
	require.NoError(t, err)

	require.NoError(t, kv.SetJSON(ctx, store, sessionKey, "not-a-real-token"))

	restarted := newTestService(t, store)
	_, ok := restarted.CurrentUser()
	assert.False(t, ok)
}

func TestListenersNotifiedOnTransitions(t *testing.T) {
	s := newTestService(t, kv.NewMemoryStore())
	ctx := context.Background()

	var events []*User
	s.Subscribe(func(u *User) { events = append(events, u) })

	u, err := s.Signup(ctx, "ada@example.com", "", "pw")
	require.NoError(t, err)
	require.NoError(t, s.Logout(ctx))
	_, err = s.Login(ctx, "ada@example.com", "pw")
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, u.ID, events[0].ID)
	assert.Nil(t, events[1])
	assert.Equal(t, u.ID, events[2].ID)
}

func TestDeriveIDIsStableAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, DeriveID("ada@example.com"), DeriveID("ADA@EXAMPLE.COM"))
	assert.NotEqual(t, DeriveID("ada@example.com"), DeriveID("bob@example.com"))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	tokens := NewSessionTokens(testSecret)

	tok, err := tokens.Issue("user-1")
	require.NoError(t, err)

	id, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	// Wrong secret fails verification
	_, err = NewSessionTokens([]byte("other")).Verify(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
