package services

import (
	"testing"
	"time"

	"celobuddy/internal/auth"
	"celobuddy/internal/email"
	"celobuddy/internal/storage"
	"celobuddy/internal/testutil"
	"celobuddy/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db     *gorm.DB
	svc    *ServiceContainer
	mailer *email.NoopProvider
	dir    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "http://localhost/files"})
	require.NoError(t, err)

	mailer := email.NewNoopProvider()
	svc := NewServiceContainer(NewRepositories(), Deps{
		Tokens:        auth.NewTokenManager("test-secret", time.Hour),
		Storage:       store,
		EmailProvider: mailer,
		Avatar: AvatarPolicy{
			MaxSize:      2 << 20,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
		},
		FeedLimit:    20,
		PreviewLimit: 12,
	})

	return &testEnv{db: testutil.NewDB(t), svc: svc, mailer: mailer, dir: dir}
}

// requireAppError проверяет, что err - AppError с нужным кодом
func requireAppError(t *testing.T, err error, code apperrors.ErrorCode) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code, appErr.Error())
	return appErr
}

func intPtr(v int) *int { return &v }
