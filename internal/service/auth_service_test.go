package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/config"
	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[int64]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}, byID: map[int64]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) List(context.Context, repository.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(context.Context, repository.UserFilter) (int64, error) {
	return 0, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id int64, status domain.UserStatus) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Status = status
	return nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	user, ok := f.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Role = role
	return nil
}

func newTestAuthService(repo repository.UserRepository) *AuthService {
	cfg := config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.AccessTokenTTLMinutes = 60
	cfg.Auth.BcryptCost = 4
	return NewAuthService(cfg, repo)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	user, tok, exp, err := svc.Register(ctx, "Alice", "alice@campus.edu", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleUser || user.Status != domain.UserStatusActive {
		t.Fatalf("new account defaults: %+v", user)
	}
	if tok == "" || exp.IsZero() {
		t.Fatalf("register did not issue a token")
	}

	if _, _, _, err := svc.Login(ctx, "alice@campus.edu", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "alice@campus.edu", "wrong"); err == nil {
		t.Fatalf("login accepted wrong password")
	}
	if _, _, _, err := svc.Login(ctx, "nobody@campus.edu", "s3cret"); err == nil {
		t.Fatalf("login accepted unknown email")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(newFakeUserRepo())

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@campus.edu", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, _, err := svc.Register(ctx, "Impostor", "alice@campus.edu", "other")

	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestAdminLoginRequiresStaffRole(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@campus.edu", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, _, err := svc.AdminLogin(ctx, "alice@campus.edu", "s3cret")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "FORBIDDEN" {
		t.Fatalf("member admitted to console: %v", err)
	}

	repo.byEmail["alice@campus.edu"].Role = domain.RoleModerator
	if _, _, _, err := svc.AdminLogin(ctx, "alice@campus.edu", "s3cret"); err != nil {
		t.Fatalf("moderator login: %v", err)
	}
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	if _, _, _, err := svc.Register(ctx, "Alice", "alice@campus.edu", "s3cret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	repo.byEmail["alice@campus.edu"].Status = domain.UserStatusSuspended

	_, _, _, err := svc.Login(ctx, "alice@campus.edu", "s3cret")
	var de *apperrors.DomainError
	if !errors.As(err, &de) || de.Code != "FORBIDDEN" {
		t.Fatalf("suspended account logged in: %v", err)
	}
}

func TestFetchProfile(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	user, tok, _, err := svc.Register(ctx, "Alice", "alice@campus.edu", "s3cret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	fetched, err := svc.FetchProfile(ctx, tok)
	if err != nil {
		t.Fatalf("fetch profile: %v", err)
	}
	if fetched.ID != user.ID || fetched.Email != user.Email {
		t.Fatalf("profile mismatch: %+v", fetched)
	}

	if _, err := svc.FetchProfile(ctx, "not-a-token"); err == nil {
		t.Fatalf("fetch accepted malformed token")
	}
}
