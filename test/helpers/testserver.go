// Package helpers поднимает полный HTTP-стек на in-memory SQLite
// для интеграционных тестов.
package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"celobuddy/internal/app"
	"celobuddy/internal/config"
	"celobuddy/internal/logger"
	"celobuddy/internal/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AnonKey    = "test-anon-key"
	ServiceKey = "test-service-key"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

// NewTestServer - отдельный сервер и база на каждый тест
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)

	cfg := TestConfig(t)
	db := testutil.NewDB(t)

	router, err := app.SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("Не удалось собрать роутер: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

// TestConfig - конфиг без файла и окружения
func TestConfig(t *testing.T) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Auth.JWTSecret = "integration-secret"
	cfg.Auth.JWTTTLMinutes = 60
	cfg.Auth.AnonKey = AnonKey
	cfg.Auth.ServiceKey = ServiceKey
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/files"
	cfg.Upload.MaxAvatarSize = 2 << 20
	cfg.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	cfg.Feed.Limit = 20
	cfg.Feed.PreviewLimit = 12
	return cfg
}

// SendRequest отправляет JSON и всегда прикладывает публичный ключ,
// как это делает фронтенд
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	headers := map[string]string{"apikey": AnonKey}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return ts.SendRequestWithHeaders(t, method, path, headers, body)
}

func (ts *TestServer) SendRequestWithHeaders(t *testing.T, method, path string, headers map[string]string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBody)
}

// DecodeJSON разбирает тело ответа в out
func DecodeJSON(t *testing.T, body string, out interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("Не удалось разобрать ответ %q: %v", body, err)
	}
}
