package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()
	users := newFakeUsers()
	s := NewAuthService(users, "k", time.Minute)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NotEmpty(t, u.PasswordHash)
	require.NotEqual(t, "pw1", u.PasswordHash)

	_, err = s.Register(ctx, RegisterInput{Username: "alice", Password: "pw2"})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	users := newFakeUsers()
	s := NewAuthService(users, "k", time.Minute)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	token, err := s.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Wrong password and unknown username are the same failure.
	_, err = s.Login(ctx, LoginInput{Username: "alice", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCreds)

	_, err = s.Login(ctx, LoginInput{Username: "nobody", Password: "pw1"})
	require.ErrorIs(t, err, ErrInvalidCreds)
}

func TestAuthService_TokenCarriesSubjectAndExpiry(t *testing.T) {
	t.Parallel()
	users := newFakeUsers()
	s := NewAuthService(users, "k", time.Minute)
	ctx := context.Background()

	u, err := s.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	tokenStr, err := s.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte("k"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, u.ID.String(), sub)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Minute), exp.Time, 5*time.Second)
}

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	t.Parallel()

	h1, err := hashPassword("pw")
	require.NoError(t, err)
	h2, err := hashPassword("pw")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "same password must hash differently per salt")

	require.True(t, verifyPassword("pw", h1))
	require.True(t, verifyPassword("pw", h2))
	require.False(t, verifyPassword("other", h1))
	require.False(t, verifyPassword("pw", "not-an-encoded-hash"))
}
