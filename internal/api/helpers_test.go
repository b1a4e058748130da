package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quietfawn/nestling/internal/db"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	handler := NewHandler(database, "test-secret-key", time.Hour, false, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

// createFamilyAndCookie registers a family through the real endpoint and
// returns the session cookie the response sets.
func createFamilyAndCookie(t *testing.T, app *fiber.App, familyKey string) string {
	t.Helper()

	response := postJSON(t, app, "", "/api/auth/family", map[string]any{
		"familyKey":   familyKey,
		"name":        "Test Family",
		"passphrase":  "hushlittlebaby",
		"deviceLabel": "test device",
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected family creation status 200, got %d", response.StatusCode)
	}

	cookie := response.Header.Get("Set-Cookie")
	if cookie == "" {
		t.Fatalf("expected session cookie on family creation")
	}
	if index := strings.Index(cookie, ";"); index > 0 {
		cookie = cookie[:index]
	}
	return cookie
}

func postJSON(t *testing.T, app *fiber.App, cookie string, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return response
}

func getWithCookie(t *testing.T, app *fiber.App, cookie string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return response
}

func httptestDelete(t *testing.T, app *fiber.App, cookie string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodDelete, path, nil)
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return response
}

func newAuthorizedGet(t *testing.T, path string, token string) *http.Request {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	content, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(content, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(content), err)
	}
}
