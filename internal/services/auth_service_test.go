package services

import (
	"context"
	"testing"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/testutil"
	"celobuddy/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.AuthService.Register(ctx, env.db, &dto.RegisterRequest{
		Email:    "  Founder@Example.com ",
		Password: "passw0rd!",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, "founder@example.com", resp.User.Email)
	assert.Equal(t, string(models.UserRoleUser), resp.User.Role)
	assert.Equal(t, "profile", resp.User.OnboardingStep)

	login, err := env.svc.AuthService.Login(ctx, env.db, &dto.LoginRequest{
		Email:    "founder@example.com",
		Password: "passw0rd!",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = env.svc.AuthService.Register(ctx, env.db, &dto.RegisterRequest{
		Email:    "founder@example.com",
		Password: "passw0rd!",
	})
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuth_Failures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	testutil.CreateFounder(t, env.db, "founder@example.com")

	_, err := env.svc.AuthService.Login(ctx, env.db, &dto.LoginRequest{Email: "founder@example.com", Password: "wrong-pass1"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.svc.AuthService.Login(ctx, env.db, &dto.LoginRequest{Email: "nobody@example.com", Password: "passw0rd!"})
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = env.svc.AuthService.Register(ctx, env.db, &dto.RegisterRequest{Email: "weak@example.com", Password: "password"})
	require.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuth_LoginWithoutOnboardingRecord(t *testing.T) {
	env := newTestEnv(t)

	testutil.CreateFounder(t, env.db, "admin@example.com", testutil.WithRole(models.UserRoleAdmin))

	resp, err := env.svc.AuthService.Login(context.Background(), env.db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "passw0rd!",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.UserRoleAdmin), resp.User.Role)
	assert.Equal(t, "complete", resp.User.OnboardingStep)
}
