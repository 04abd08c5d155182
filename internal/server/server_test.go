package server

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/encryptcookie"
	"github.com/gofiber/fiber/v3/middleware/session"

	"askfun/internal/catalog"
	"askfun/internal/middleware"
	"askfun/internal/services"
	"askfun/internal/testutil"
)

// TestEncryptCookieSessionRoundTrip verifies that the encryptcookie +
// session middleware stack does not panic when a client replays encrypted
// session cookies across multiple requests.  This was broken in Fiber
// v3.0.0-rc.3 (index-out-of-range in encryptcookie decryption).
func TestEncryptCookieSessionRoundTrip(t *testing.T) {
	encryptionKey := deriveEncryptionKey("test-secret-that-is-long-enough-for-production")

	app := fiber.New()

	// Mirror the production middleware order:
	// 1. encryptcookie  2. session  3. route handler
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key: encryptionKey,
	}))

	sessionMiddleware, _ := session.NewWithStore(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	app.Use(sessionMiddleware)

	app.Post("/session-set", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		sess.Set("prev_label:mmcm", "General")
		return c.SendString("ok")
	})
	app.Get("/session-get", func(c fiber.Ctx) error {
		sess := session.FromContext(c)
		if sess == nil {
			return c.Status(500).SendString("no session")
		}
		val, _ := sess.Get("prev_label:mmcm").(string)
		return c.SendString(val)
	})

	req, _ := http.NewRequest("POST", "/session-set", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request 1 failed: %v", err)
	}
	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("request 1: expected 200, got %d: %s", resp.StatusCode, body)
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		t.Fatal("request 1: no cookies returned")
	}

	for i := 2; i <= 3; i++ {
		req, _ := http.NewRequest("GET", "/session-get", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %d failed (possible encryptcookie panic): %v", i, err)
		}
		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode != 200 {
			t.Fatalf("request %d: expected 200, got %d: %s", i, resp.StatusCode, body)
		}
		if string(body) != "General" {
			t.Errorf("request %d: expected session value 'General', got %q", i, body)
		}
		if next := resp.Cookies(); len(next) > 0 {
			cookies = next
		}
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	mmcm := testutil.NewProfile("mmcm", "Mapúa Malayan Colleges Mindanao")
	profiles := services.NewProfileService(testutil.NewProfileStore(mmcm), nil)

	srv := New(testutil.TestConfig(), nil)
	srv.RegisterRoutes(testutil.Pinger{}, profiles, catalog.Default())
	return srv
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/healthz", fiber.StatusOK, `"status":"ok"`},
		{"/readyz", fiber.StatusOK, `"status":"ok"`},
		{"/metrics", fiber.StatusOK, "go_goroutines"},
		{"/api/v1/send-options", fiber.StatusOK, `"key":"general"`},
		{"/api/v1/profiles/mmcm", fiber.StatusOK, `"handle":"mmcm"`},
		{"/communities/mmcm", fiber.StatusOK, "Mapúa Malayan Colleges Mindanao"},
		{"/communities/unknown", fiber.StatusNotFound, "does not exist"},
		{"/nowhere", fiber.StatusNotFound, "AskFun"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req, _ := http.NewRequest("GET", tt.path, nil)
			resp, err := srv.App.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			body := readBody(t, resp)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if !strings.Contains(body, tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
		})
	}
}

func TestProfilePage_RequestsClientHints(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest("GET", "/communities/mmcm?send=general", nil)
	req.Header.Set(middleware.HeaderViewportWidth, "1024")
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	body := readBody(t, resp)

	if got := resp.Header.Get("Accept-CH"); !strings.Contains(got, middleware.HeaderViewportWidth) {
		t.Errorf("Accept-CH = %q", got)
	}
	if !strings.Contains(body, "send-dialog") || !strings.Contains(body, `data-state="open"`) {
		t.Error("desktop request should render the open dialog")
	}
}

func TestProfilePage_CloseAndReload(t *testing.T) {
	srv := newTestServer(t)

	form := url.Values{"send": {"suggestion"}, "open": {"false"}}
	req, _ := http.NewRequest("POST", "/communities/mmcm/send", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("close request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("close status = %d, want 303", resp.StatusCode)
	}

	cookies := resp.Cookies()
	req, _ = http.NewRequest("GET", resp.Header.Get("Location"), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = srv.App.Test(req)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	body := readBody(t, resp)

	if !strings.Contains(body, `data-state="closed"`) {
		t.Error("modal should be closed after reload")
	}
	if !strings.Contains(body, `class="send-title">Suggestion</h2>`) {
		t.Error("closed modal should keep the previous title")
	}

	if next := resp.Cookies(); len(next) > 0 {
		cookies = next
	}
	req, _ = http.NewRequest("GET", "/communities/mmcm", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err = srv.App.Test(req)
	if err != nil {
		t.Fatalf("second reload failed: %v", err)
	}
	if body := readBody(t, resp); strings.Contains(body, `id="send-modal"`) {
		t.Error("second reload should render no modal")
	}
}

func TestStaticAssets(t *testing.T) {
	srv := newTestServer(t)

	req, _ := http.NewRequest("GET", "/static/app.css", nil)
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, ".send-auto") {
		t.Error("stylesheet missing responsive shell rules")
	}
}
