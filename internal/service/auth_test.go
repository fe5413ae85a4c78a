package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, 100, "test-secret", time.Hour)
}

func TestRegisterDefaultsProgression(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register("wayfarer", "wayfarer@example.com", "a-long-enough-passphrase")
	require.NoError(t, err)
	require.Equal(t, 1, user.Level)
	require.Equal(t, 0, user.ExperiencePoints)
	require.Equal(t, 100, user.EnergyPoints)
	require.False(t, user.EnergyLastReset.IsZero())
	require.True(t, user.HasPassword())
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	_, err := svc.Register("wayfarer", "not-an-email", "a-long-enough-passphrase")
	require.ErrorIs(t, err, ErrInvalidEmail)

	_, err = svc.Register("w", "wayfarer@example.com", "a-long-enough-passphrase")
	require.Error(t, err)

	_, err = svc.Register("wayfarer", "wayfarer@example.com", "short")
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	_, err := svc.Register("first", "same@example.com", "a-long-enough-passphrase")
	require.NoError(t, err)

	_, err = svc.Register("second", "same@example.com", "a-long-enough-passphrase")
	require.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	registered, err := svc.Register("wayfarer", "Wayfarer@Example.com", "a-long-enough-passphrase")
	require.NoError(t, err)

	user, err := svc.Login("wayfarer@example.com", "a-long-enough-passphrase")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.NotNil(t, user.LastLogin)

	_, err = svc.Login("wayfarer@example.com", "the-wrong-passphrase")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "a-long-enough-passphrase")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register("wayfarer", "wayfarer@example.com", "a-long-enough-passphrase")
	require.NoError(t, err)

	token, err := svc.GenerateJWT(user)
	require.NoError(t, err)

	claims, err := svc.VerifyJWT(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims["user_id"])

	_, err = svc.VerifyJWT(token + "tampered")
	require.Error(t, err)
}
