package dto

import (
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

// SetUserStatusRequest payload.
type SetUserStatusRequest struct {
	Status domain.UserStatus `json:"status"`
}

// SetUserRoleRequest payload.
type SetUserRoleRequest struct {
	RoleName string `json:"roleName"`
}

// SetPostStatusRequest payload.
type SetPostStatusRequest struct {
	Status domain.PostStatus `json:"status"`
}

// SetScamScoreRequest payload.
type SetScamScoreRequest struct {
	Score int `json:"score"`
}

// ConfigRequest payload for system configuration upserts.
type ConfigRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ConfigResponse view.
type ConfigResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy int64     `json:"updatedBy"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewConfigResponse maps a config entry.
func NewConfigResponse(entry *domain.ConfigEntry) ConfigResponse {
	return ConfigResponse{
		Key:       entry.Key,
		Value:     entry.Value,
		UpdatedBy: entry.UpdatedBy,
		UpdatedAt: entry.UpdatedAt,
	}
}

// StatisticsResponse view for the console dashboard.
type StatisticsResponse struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers    int64 `json:"activeUsers"`
	SuspendedUsers int64 `json:"suspendedUsers"`
	TotalPosts     int64 `json:"totalPosts"`
	HiddenPosts    int64 `json:"hiddenPosts"`
	TotalComments  int64 `json:"totalComments"`
	OpenReports    int64 `json:"openReports"`
}

// NewStatisticsResponse maps domain statistics.
func NewStatisticsResponse(stats *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalUsers:     stats.TotalUsers,
		ActiveUsers:    stats.ActiveUsers,
		SuspendedUsers: stats.SuspendedUsers,
		TotalPosts:     stats.TotalPosts,
		HiddenPosts:    stats.HiddenPosts,
		TotalComments:  stats.TotalComments,
		OpenReports:    stats.OpenReports,
	}
}
