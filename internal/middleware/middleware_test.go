package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"celobuddy/internal/auth"
	"celobuddy/internal/models"
	"celobuddy/internal/repositories"
	"celobuddy/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testServiceKey = "service-secret"
	testAnonKey    = "anon-public"
)

type fixture struct {
	db     *gorm.DB
	tokens *auth.TokenManager
	router *gin.Engine
}

func newFixture(t *testing.T, capability auth.Capability) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	guards := NewGuards(tokens, repositories.NewProfileRepository(), testAnonKey, testServiceKey)

	r := gin.New()
	r.Use(RequestIDMiddleware(), DBMiddleware(db))

	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	}
	r.GET("/public", guards.AnonKey(), ok)
	r.GET("/me", guards.Auth(), ok)
	r.GET("/admin", guards.Auth(), guards.RequireCapability(capability), ok)
	r.POST("/opportunities", guards.ServiceKeyOrAuth(), guards.RequireCapability(capability), ok)

	return &fixture{db: db, tokens: tokens, router: r}
}

func (f *fixture) do(t *testing.T, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) bearer(t *testing.T, userID string) map[string]string {
	t.Helper()
	token, _, err := f.tokens.GenerateToken(userID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestAuth(t *testing.T) {
	f := newFixture(t, auth.CapOpportunitiesWrite)
	founder := testutil.CreateFounder(t, f.db, "founder@example.com")

	w := f.do(t, http.MethodGet, "/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	errBody := errorBody(t, w)
	assert.Equal(t, "UNAUTHORIZED", errBody["code"])
	assert.Equal(t, map[string]any{"redirect": "/auth/login"}, errBody["details"])

	w = f.do(t, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer garbage"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", errorBody(t, w)["code"])

	w = f.do(t, http.MethodGet, "/me", f.bearer(t, founder.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), founder.ID)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequireCapability_RoleIsReadOnEveryRequest(t *testing.T) {
	f := newFixture(t, auth.CapAnalyticsRead)
	admin := testutil.CreateFounder(t, f.db, "admin@example.com", testutil.WithRole(models.UserRoleAdmin))
	founder := testutil.CreateFounder(t, f.db, "founder@example.com")

	w := f.do(t, http.MethodGet, "/admin", f.bearer(t, founder.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, map[string]any{"redirect": "/dashboard"}, errorBody(t, w)["details"])

	adminHeaders := f.bearer(t, admin.ID)
	w = f.do(t, http.MethodGet, "/admin", adminHeaders)
	assert.Equal(t, http.StatusOK, w.Code)

	// тот же токен после понижения роли
	require.NoError(t, f.db.Model(&models.Profile{}).Where("id = ?", admin.ID).Update("role", models.UserRoleUser).Error)
	w = f.do(t, http.MethodGet, "/admin", adminHeaders)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestServiceKeyOrAuth(t *testing.T) {
	f := newFixture(t, auth.CapOpportunitiesWrite)
	founder := testutil.CreateFounder(t, f.db, "founder@example.com")
	admin := testutil.CreateFounder(t, f.db, "admin@example.com", testutil.WithRole(models.UserRoleAdmin))

	w := f.do(t, http.MethodPost, "/opportunities", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, "/opportunities", map[string]string{ServiceKeyHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, "/opportunities", map[string]string{ServiceKeyHeader: testServiceKey})
	assert.Equal(t, http.StatusOK, w.Code)

	// anon key не повышает привилегии
	w = f.do(t, http.MethodPost, "/opportunities", map[string]string{ServiceKeyHeader: testAnonKey})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodPost, "/opportunities", f.bearer(t, founder.ID))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(t, http.MethodPost, "/opportunities", f.bearer(t, admin.ID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServiceKeyIsLimitedToOpportunityWrites(t *testing.T) {
	f := newFixture(t, auth.CapDataExport)

	w := f.do(t, http.MethodPost, "/opportunities", map[string]string{ServiceKeyHeader: testServiceKey})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAnonKey(t *testing.T) {
	f := newFixture(t, auth.CapFeedRead)

	w := f.do(t, http.MethodGet, "/public", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(t, http.MethodGet, "/public", map[string]string{AnonKeyHeader: testAnonKey})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newFixture(t, auth.CapFeedRead)

	w := f.do(t, http.MethodGet, "/public", map[string]string{"X-Request-ID": "req-42", AnonKeyHeader: testAnonKey})
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
