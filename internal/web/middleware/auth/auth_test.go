package auth

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfolio-cms/webfolio/internal/db/models"
	"github.com/webfolio-cms/webfolio/internal/web/handler/login"
	websess "github.com/webfolio-cms/webfolio/internal/web/session"
)

// testStorage is a minimal in-memory implementation of storage.Storage for tests.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	websess.Init(&testStorage{data: make(map[string][]byte)})

	app := fiber.New()
	app.Use(Middleware)

	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/", ok)
	app.Get("/api/sections", ok)
	app.Get(login.Path, ok)
	app.Get(AdminPath, ok)
	app.Get(AdminPath+"/sections", ok)

	return app
}

func loggedInCookie(t *testing.T) string {
	t.Helper()

	sessionID, err := websess.GenerateSessionID()
	require.NoError(t, err)

	data := &websess.Data{User: models.User{ID: 1, Active: true, Username: "admin"}}
	require.NoError(t, data.Write(sessionID, time.Minute))

	return sessionID
}

func get(t *testing.T, app *fiber.App, target, sessionCookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if sessionCookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: sessionCookie})
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestMiddleware_PublicAndAPIPassThrough(t *testing.T) {
	app := setupTestApp(t)

	resp := get(t, app, "/", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = get(t, app, "/api/sections", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMiddleware_AdminRequiresSession(t *testing.T) {
	app := setupTestApp(t)

	resp := get(t, app, AdminPath, "")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))

	resp = get(t, app, AdminPath+"/sections", "bogus-session-id")
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, login.Path, resp.Header.Get("Location"))
}

func TestMiddleware_ValidSessionPasses(t *testing.T) {
	app := setupTestApp(t)
	cookie := loggedInCookie(t)

	resp := get(t, app, AdminPath, cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// a logged-in user on the login page is sent to the panel
	resp = get(t, app, login.Path, cookie)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, AdminPath, resp.Header.Get("Location"))
}
