package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/campuslink/community-service/internal/domain"
	"github.com/campuslink/community-service/internal/events"
	"github.com/campuslink/community-service/internal/repository"
	apperrors "github.com/campuslink/community-service/pkg/util"
)

// AdminService backs the console: member management, system configuration
// and dashboard statistics.
type AdminService struct {
	users      repository.UserRepository
	configs    repository.ConfigRepository
	stats      repository.StatsRepository
	dispatcher events.Dispatcher
}

// NewAdminService constructs the service.
func NewAdminService(users repository.UserRepository, configs repository.ConfigRepository, stats repository.StatsRepository, dispatcher events.Dispatcher) *AdminService {
	return &AdminService{users: users, configs: configs, stats: stats, dispatcher: dispatcher}
}

// ListUsers returns members matching the filter plus the total count.
func (s *AdminService) ListUsers(ctx context.Context, filter repository.UserFilter) ([]domain.User, int64, error) {
	users, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.users.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// SetUserStatus suspends or reactivates a member. Admins cannot suspend
// themselves.
func (s *AdminService) SetUserStatus(ctx context.Context, actor *domain.User, userID int64, status domain.UserStatus) error {
	if status != domain.UserStatusActive && status != domain.UserStatusSuspended {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": status})
	}
	if actor.ID == userID {
		return apperrors.NewConflict("cannot change own status", nil)
	}
	if err := s.users.UpdateStatus(ctx, userID, status); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	if status == domain.UserStatusSuspended {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUserSuspended, actor.ID, events.UserSuspendedPayload{
			UserID: userID,
			Status: status,
		}))
	}
	return nil
}

// SetUserRole changes a member's role. Only admins may grant or revoke
// roles, and never their own.
func (s *AdminService) SetUserRole(ctx context.Context, actor *domain.User, userID int64, role domain.Role) error {
	switch role {
	case domain.RoleAdmin, domain.RoleModerator, domain.RoleUser:
	default:
		return apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin role required")
	}
	if actor.ID == userID {
		return apperrors.NewConflict("cannot change own role", nil)
	}
	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	return nil
}

// Statistics collects the dashboard counters.
func (s *AdminService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	return s.stats.Collect(ctx)
}

// GetConfig reads one configuration entry.
func (s *AdminService) GetConfig(ctx context.Context, key string) (*domain.ConfigEntry, error) {
	entry, err := s.configs.Get(ctx, key)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("config entry", map[string]any{"key": key})
		}
		return nil, err
	}
	return entry, nil
}

// ListConfig returns all configuration entries.
func (s *AdminService) ListConfig(ctx context.Context) ([]domain.ConfigEntry, error) {
	return s.configs.List(ctx)
}

// SetConfig upserts a configuration entry.
func (s *AdminService) SetConfig(ctx context.Context, actor *domain.User, key, value string) (*domain.ConfigEntry, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperrors.NewValidationError("key required", nil)
	}

	entry := &domain.ConfigEntry{Key: key, Value: value, UpdatedBy: actor.ID}
	if err := s.configs.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventConfigUpdated, actor.ID, events.ConfigUpdatedPayload{
		Key:   key,
		Value: value,
	}))
	return entry, nil
}
