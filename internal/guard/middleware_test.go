package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func newPagesApp() *fiber.App {
	app := fiber.New()
	pages := app.Group("/admin", Pages(New()))
	pages.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	pages.Get("/unauthorized", func(c *fiber.Ctx) error { return c.SendString("unauthorized") })
	pages.Get("/users", func(c *fiber.Ctx) error { return c.SendString("users") })
	return app
}

func pagesRequest(t *testing.T, app *fiber.App, path, adminToken string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if adminToken != "" {
		req.AddCookie(&http.Cookie{Name: "adminAccessToken", Value: adminToken})
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestPagesRedirectsAnonymousToLogin(t *testing.T) {
	resp := pagesRequest(t, newPagesApp(), "/admin/users", "")
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status: got %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != LoginPath {
		t.Fatalf("location: got %q, want %q", loc, LoginPath)
	}
}

func TestPagesRedirectsMemberToUnauthorized(t *testing.T) {
	tok := mintToken(t, "user", time.Now().Add(time.Hour))
	resp := pagesRequest(t, newPagesApp(), "/admin/users", tok)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status: got %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != UnauthorizedPath {
		t.Fatalf("location: got %q, want %q", loc, UnauthorizedPath)
	}
}

func TestPagesAdmitsStaff(t *testing.T) {
	tok := mintToken(t, "admin", time.Now().Add(time.Hour))
	resp := pagesRequest(t, newPagesApp(), "/admin/users", tok)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want 200", resp.StatusCode)
	}
}

func TestPagesLeavesExemptPagesAlone(t *testing.T) {
	app := newPagesApp()
	for _, path := range []string{"/admin/login", "/admin/unauthorized"} {
		resp := pagesRequest(t, app, path, "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("path %q: got %d, want 200", path, resp.StatusCode)
		}
	}
}
