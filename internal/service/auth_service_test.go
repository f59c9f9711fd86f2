package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"resto-backend/internal/config"
	"resto-backend/internal/domain"
	"resto-backend/internal/store/memory"
)

func setupAuth(t *testing.T) AuthService {
	t.Helper()
	s := memory.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	h := string(hash)
	_, err = s.AddStaff(context.Background(), domain.StaffMember{
		Name: "Admin", Email: "admin@resto.local", Role: domain.RoleAdmin,
		Status: domain.StaffActive, PasswordHash: &h,
	})
	require.NoError(t, err)
	_, err = s.AddStaff(context.Background(), domain.StaffMember{
		Name: "Omar", Email: "omar@resto.local", Role: domain.RoleWaiter,
		Status: domain.StaffActive,
	})
	require.NoError(t, err)

	return AuthService{
		Config: config.Config{JWTSecret: "test-secret", AccessTokenTTL: time.Hour, RefreshTokenTTL: 24 * time.Hour},
		Staff:  s,
	}
}

func TestLogin(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		res, err := svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "secret123"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Equal(t, domain.RoleAdmin, res.Staff.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "nope"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "ghost@resto.local", Password: "secret123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("no password hash", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Email: "omar@resto.local", Password: "anything"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestRefresh(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "secret123"})
	require.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		next, err := svc.Refresh(ctx, RefreshInput{RefreshToken: res.RefreshToken})
		require.NoError(t, err)
		assert.Equal(t, res.Staff.ID, next.Staff.ID)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, RefreshInput{RefreshToken: res.AccessToken})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, RefreshInput{RefreshToken: "not.a.jwt"})
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestChangePassword(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "secret123"})
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, res.Staff.ID, "secret123", "changed456"))

	_, err = svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, LoginInput{Email: "admin@resto.local", Password: "changed456"})
	assert.NoError(t, err)
}
