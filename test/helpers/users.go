package helpers

import (
	"net/http"
	"testing"

	"celobuddy/internal/models"
	"celobuddy/internal/services/dto"
	"celobuddy/internal/testutil"

	"github.com/stretchr/testify/require"
)

// RegisterFounder регистрирует основателя через API и возвращает токен и ID
func RegisterFounder(t *testing.T, ts *TestServer, email string) (string, string) {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"password": "passw0rd!",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var auth dto.AuthResponse
	DecodeJSON(t, body, &auth)
	return auth.AccessToken, auth.User.ID
}

// OnboardFounder регистрирует основателя и проходит онбординг с указанными потребностями
func OnboardFounder(t *testing.T, ts *TestServer, email string, categories ...models.NeedCategory) (string, string) {
	t.Helper()

	token, userID := RegisterFounder(t, ts, email)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/onboarding/profile", token, map[string]string{
		"full_name":     "Founder",
		"company_name":  "Project " + email,
		"company_stage": string(models.CompanyStageMVP),
		"github_url":    "https://github.com/example/repo",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/onboarding/needs", token, map[string]interface{}{
		"categories":  categories,
		"description": "Looking for help",
		"urgency":     models.UrgencyMedium,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/onboarding/complete", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	return token, userID
}

// LoginAdmin создает админа напрямую в базе и логинится через API
func LoginAdmin(t *testing.T, ts *TestServer, email string) (string, string) {
	t.Helper()

	admin := testutil.CreateFounder(t, ts.DB, email, testutil.WithRole(models.UserRoleAdmin))

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": "passw0rd!",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var auth dto.AuthResponse
	DecodeJSON(t, body, &auth)
	return auth.AccessToken, admin.ID
}
