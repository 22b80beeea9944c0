package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/campuslink/community-service/internal/api/dto"
	"github.com/campuslink/community-service/internal/persistence"
	"github.com/campuslink/community-service/internal/service"
	"github.com/campuslink/community-service/internal/session"
)

const sessionIDCookie = "sessionId"

// AuthHandler exposes login, registration and logout endpoints. On login the
// access token is written to the namespace cookie and mirrored into Redis so
// storage-change watchers can follow session state.
type AuthHandler struct {
	auth          *service.AuthService
	redis         *persistence.Redis
	cookieTTLDays int
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, redis *persistence.Redis, cookieTTLDays int) *AuthHandler {
	return &AuthHandler{auth: authService, redis: redis, cookieTTLDays: cookieTTLDays}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name, email, password required")
	}

	user, accessToken, exp, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	h.storeToken(c, session.NamespaceUser, accessToken)

	return c.Status(http.StatusCreated).JSON(dto.OK("registered", fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{AccessToken: accessToken, Expires: exp},
	}))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	_, accessToken, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	h.storeToken(c, session.NamespaceUser, accessToken)

	return c.JSON(dto.OK("logged in", dto.AuthResponse{AccessToken: accessToken, Expires: exp}))
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearToken(c, session.NamespaceUser)
	return c.JSON(dto.OK("logged out", nil))
}

// AdminLogin handles POST /admin/login. The issued token lands in the admin
// namespace; the member session slot is untouched.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	user, accessToken, exp, err := h.auth.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	h.storeToken(c, session.NamespaceAdmin, accessToken)

	return c.JSON(dto.OK("logged in", fiber.Map{
		"user": dto.NewUserResponse(user),
		"auth": dto.AuthResponse{AccessToken: accessToken, Expires: exp},
	}))
}

// AdminLogout handles POST /admin/logout.
func (h *AuthHandler) AdminLogout(c *fiber.Ctx) error {
	h.clearToken(c, session.NamespaceAdmin)
	return c.JSON(dto.OK("logged out", nil))
}

func parseLogin(c *fiber.Ctx) (*dto.LoginRequest, error) {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return nil, fiber.NewError(http.StatusBadRequest, "email and password required")
	}
	return &req, nil
}

func (h *AuthHandler) storeToken(c *fiber.Ctx, ns session.Namespace, accessToken string) {
	_ = session.NewCookieStore(c).Set(c.Context(), ns, accessToken, h.cookieTTLDays)
	if mirror := h.mirror(c); mirror != nil {
		_ = mirror.Set(c.Context(), ns, accessToken, h.cookieTTLDays)
	}
}

func (h *AuthHandler) clearToken(c *fiber.Ctx, ns session.Namespace) {
	_ = session.NewCookieStore(c).Remove(c.Context(), ns)
	if mirror := h.mirror(c); mirror != nil {
		_ = mirror.Remove(c.Context(), ns)
	}
}

// mirror returns the Redis-backed store for this client's session, creating
// a session ID cookie on first use.
func (h *AuthHandler) mirror(c *fiber.Ctx) *session.RedisStore {
	if h.redis == nil || h.redis.Client == nil {
		return nil
	}
	sid := c.Cookies(sessionIDCookie)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     sessionIDCookie,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return session.NewRedisStore(h.redis.Client, sid)
}
