package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/api/http/handlers"
	"github.com/campuslink/community-service/internal/auth"
	"github.com/campuslink/community-service/internal/guard"
	"github.com/campuslink/community-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Posts         *handlers.PostsHandler
	Comments      *handlers.CommentsHandler
	Categories    *handlers.CategoriesHandler
	Notifications *handlers.NotificationsHandler
	Reports       *handlers.ReportsHandler
	Admin         *handlers.AdminHandler
	Pages         *handlers.PagesHandler

	AuthMiddleware *auth.Middleware
	PageGuard      *guard.Guard
	LoginLimiter   *LoginRateLimiter
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.LoginLimiter.Handle, cfg.Auth.Register)
	authGroup.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Auth.Logout)

	// Console pages. The guard middleware decides admission per request;
	// /admin/login and /admin/unauthorized are exempt inside the guard, so
	// they render even without a session.
	pages := app.Group("/admin", guard.Pages(cfg.PageGuard))
	pages.Get("/login", cfg.Pages.Login)
	pages.Post("/login", cfg.LoginLimiter.Handle, cfg.Auth.AdminLogin)
	pages.Post("/logout", cfg.Auth.AdminLogout)
	pages.Get("/unauthorized", cfg.Pages.Unauthorized)
	pages.Get("/", cfg.Pages.Dashboard)
	pages.Get("/users", cfg.Pages.Users)
	pages.Get("/posts", cfg.Pages.Posts)
	pages.Get("/reports", cfg.Pages.Reports)
	pages.Get("/settings", cfg.Pages.Settings)

	api := app.Group("/api/v1")

	// Public reads.
	api.Get("/posts", cfg.Posts.List)
	api.Get("/posts/:id", cfg.Posts.Get)
	api.Get("/posts/:id/comments", cfg.Comments.List)
	api.Get("/categories", cfg.Categories.List)

	// Member routes require a verified bearer token.
	member := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	member.Post("/posts", cfg.Posts.Create)
	member.Put("/posts/:id", cfg.Posts.Update)
	member.Delete("/posts/:id", cfg.Posts.Delete)
	member.Post("/posts/:id/like", cfg.Posts.Like)
	member.Delete("/posts/:id/like", cfg.Posts.Unlike)
	member.Post("/posts/:id/bookmark", cfg.Posts.Bookmark)
	member.Delete("/posts/:id/bookmark", cfg.Posts.Unbookmark)
	member.Get("/bookmarks", cfg.Posts.Bookmarks)
	member.Post("/posts/:id/comments", cfg.Comments.Create)
	member.Delete("/comments/:commentId", cfg.Comments.Delete)
	member.Get("/notifications", cfg.Notifications.List)
	member.Post("/notifications/read-all", cfg.Notifications.MarkAllRead)
	member.Post("/notifications/:notificationId/read", cfg.Notifications.MarkRead)
	member.Post("/reports", cfg.Reports.Create)

	// Console API requires an admitted role on top of authentication.
	console := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireStaff())
	console.Get("/users", cfg.Admin.ListUsers)
	console.Put("/users/:userId/status", cfg.Admin.SetUserStatus)
	console.Put("/users/:userId/role", cfg.Admin.SetUserRole)
	console.Put("/posts/:id/status", cfg.Admin.SetPostStatus)
	console.Put("/posts/:id/scam-score", cfg.Admin.SetScamScore)
	console.Get("/reports", cfg.Reports.List)
	console.Put("/reports/:reportId/status", cfg.Reports.Resolve)
	console.Post("/categories", cfg.Categories.Create)
	console.Put("/categories/:categoryId", cfg.Categories.Update)
	console.Delete("/categories/:categoryId", cfg.Categories.Delete)
	console.Get("/config", cfg.Admin.ListConfig)
	console.Get("/config/:key", cfg.Admin.GetConfig)
	console.Put("/config", cfg.Admin.SetConfig)
	console.Get("/statistics", cfg.Admin.Statistics)
	console.Get("/metrics", metricsHandler(cfg.Metrics))
}

func metricsHandler(metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, errs := metrics.Snapshot()
		return c.JSON(dto.OK("metrics", fiber.Map{
			"requests": requests,
			"errors":   errs,
		}))
	}
}
