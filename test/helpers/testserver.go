package helpers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"networknode/internal/app"
	"networknode/internal/config"
	"networknode/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// TestServer - приложение целиком поверх in-memory sqlite,
// с подменными провайдерами аутентификации и почты
type TestServer struct {
	Server   *httptest.Server
	DB       *gorm.DB
	Identity *identity.MockProvider
	Email    *app.MockEmailProvider
	Config   *config.Config

	client *http.Client
}

// NewTestConfig - конфигурация для тестов без файлов и окружения
func NewTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Site.URL = "http://networknode.test"
	cfg.Database.Driver = "sqlite"
	cfg.Identity.URL = "http://identity.test"
	cfg.Identity.AnonKey = "anon-key"
	cfg.Identity.TimeoutSec = 1
	cfg.Completion.CacheTTLSec = 30
	return cfg
}

// NewTestServer поднимает httptest сервер; закрывается через t.Cleanup
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)
	cfg := NewTestConfig()
	provider := identity.NewMockProvider()
	mailer := &app.MockEmailProvider{}

	router := app.SetupRouter(cfg, db, app.Dependencies{
		Identity: provider,
		Email:    mailer,
	})
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:   server,
		DB:       db,
		Identity: provider,
		Email:    mailer,
		Config:   cfg,
		client: &http.Client{
			// редиректы проверяются тестами, не выполняются
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// LoginAs регистрирует пользователя у провайдера и возвращает access токен
func (ts *TestServer) LoginAs(t *testing.T, id, email string) string {
	t.Helper()
	ts.Identity.AddUser(id, email, "password-"+id)
	return "token-" + id
}

// SendRequest - API запрос (Accept: application/json); token уходит в cookie сессии
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.Do(t, req, token)
}

// SendPage - навигация браузера (Accept: text/html)
func (ts *TestServer) SendPage(t *testing.T, method, path, token string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.Server.URL+path, nil)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	return ts.Do(t, req, token)
}

// Do выполняет запрос без следования редиректам
func (ts *TestServer) Do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.AddCookie(&http.Cookie{Name: identity.AccessTokenCookie, Value: token})
	}

	res, err := ts.client.Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// FindCookie ищет cookie в ответе
func FindCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
