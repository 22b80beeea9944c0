package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/auth"
	"github.com/campuslink/community-service/internal/config"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/guard"
	"github.com/campuslink/community-service/internal/repository"
	"github.com/campuslink/community-service/internal/token"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *token.Manager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the signer for middleware wiring.
func (s *AuthService) TokenManager() *token.Manager {
	return s.tokenMgr
}

// Register creates a new member account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered", nil)
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	accessToken, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, accessToken, exp, nil
}

// Login authenticates a member.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	accessToken, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, accessToken, exp, nil
}

// AdminLogin authenticates a console user; accounts outside the admitted
// roles are rejected before a token is issued.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.authenticate(ctx, email, password)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !guard.IsAdmitted(string(user.Role)) {
		return nil, "", time.Time{}, apperrors.NewForbidden("console access requires a staff role")
	}
	accessToken, exp, err := s.tokenMgr.Issue(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, accessToken, exp, nil
}

// FetchProfile resolves the account behind an access token. It satisfies
// session.ProfileFetcher for the session watcher.
func (s *AuthService) FetchProfile(ctx context.Context, tokenStr string) (*domain.User, error) {
	claims, err := s.tokenMgr.Parse(tokenStr)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewUnauthorized("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewForbidden("account suspended")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return user, nil
}
