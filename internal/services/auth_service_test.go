package services

import (
	"folio/internal/structures"
	"folio/internal/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T, email, password string) *structures.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &structures.Config{Auth: structures.AuthConfig{
		OwnerEmail:   email,
		PasswordHash: string(hash),
		SessionTTL:   time.Hour,
	}}
}

func TestAuthService_SignInAndCurrentUser(t *testing.T) {
	auth := NewAuthService(authConfig(t, "owner@example.com", "s3cret"), &testutil.MockLogger{})

	session, err := auth.SignIn("Owner@Example.com ", "s3cret")
	require.NoError(t, err)
	assert.Len(t, session.Token, 64)
	assert.Equal(t, "owner@example.com", session.User.Email)

	user, ok := auth.CurrentUser(session.Token)
	require.True(t, ok)
	assert.Equal(t, "owner@example.com", user.Email)
}

func TestAuthService_RejectsWrongPassword(t *testing.T) {
	auth := NewAuthService(authConfig(t, "owner@example.com", "s3cret"), &testutil.MockLogger{})

	_, err := auth.SignIn("owner@example.com", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.SignIn("someone@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_SignOutEndsSession(t *testing.T) {
	auth := NewAuthService(authConfig(t, "owner@example.com", "s3cret"), &testutil.MockLogger{})
	session, err := auth.SignIn("owner@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, auth.SignOut(session.Token))

	_, ok := auth.CurrentUser(session.Token)
	assert.False(t, ok)
	assert.ErrorIs(t, auth.SignOut(session.Token), ErrSessionNotFound)
}

func TestAuthService_NotConfigured(t *testing.T) {
	auth := NewAuthService(&structures.Config{}, &testutil.MockLogger{})

	_, err := auth.SignIn("owner@example.com", "anything")
	assert.ErrorIs(t, err, ErrAuthNotConfigured)

	_, ok := auth.CurrentUser("")
	assert.False(t, ok)
}
