package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PagesHandler serves the console page shells. Admission to the protected
// pages is decided by the guard middleware before these run; the handlers
// themselves only render.
type PagesHandler struct{}

// NewPagesHandler constructs handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// Login handles GET /admin/login. Always reachable.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return renderPage(c, "Sign in", `<form method="post" action="/admin/login">
  <input type="email" name="email" placeholder="Email" autocomplete="username">
  <input type="password" name="password" placeholder="Password" autocomplete="current-password">
  <button type="submit">Sign in</button>
</form>`)
}

// Unauthorized handles GET /admin/unauthorized. Always reachable.
func (h *PagesHandler) Unauthorized(c *fiber.Ctx) error {
	c.Status(fiber.StatusForbidden)
	return renderPage(c, "Not authorized", `<p>Your account does not have console access.</p>
<p><a href="/admin/login">Sign in with a different account</a></p>`)
}

// Dashboard handles GET /admin.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return renderPage(c, "Dashboard", consoleNav+`<div id="app" data-page="dashboard"></div>`)
}

// Users handles GET /admin/users.
func (h *PagesHandler) Users(c *fiber.Ctx) error {
	return renderPage(c, "Members", consoleNav+`<div id="app" data-page="users"></div>`)
}

// Posts handles GET /admin/posts.
func (h *PagesHandler) Posts(c *fiber.Ctx) error {
	return renderPage(c, "Posts", consoleNav+`<div id="app" data-page="posts"></div>`)
}

// Reports handles GET /admin/reports.
func (h *PagesHandler) Reports(c *fiber.Ctx) error {
	return renderPage(c, "Reports", consoleNav+`<div id="app" data-page="reports"></div>`)
}

// Settings handles GET /admin/settings.
func (h *PagesHandler) Settings(c *fiber.Ctx) error {
	return renderPage(c, "Settings", consoleNav+`<div id="app" data-page="settings"></div>`)
}

const consoleNav = `<nav>
  <a href="/admin">Dashboard</a>
  <a href="/admin/users">Members</a>
  <a href="/admin/posts">Posts</a>
  <a href="/admin/reports">Reports</a>
  <a href="/admin/settings">Settings</a>
</nav>`

func renderPage(c *fiber.Ctx, title, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>%s · CampusLink Console</title></head>
<body>
<h1>%s</h1>
%s
</body>
</html>`, title, title, body))
}
