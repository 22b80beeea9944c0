package dto

import (
	"time"

	"github.com/campuslink/community-service/internal/domain"
)

// RegisterRequest payload for new members.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for member and console login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the data payload of login endpoints.
type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	Expires     time.Time `json:"expires"`
}

// UserResponse is the public view of a member.
type UserResponse struct {
	ID        int64             `json:"userId"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	RoleName  string            `json:"roleName"`
	Status    domain.UserStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// NewUserResponse maps a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		RoleName:  string(user.Role),
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}
}

// NewUserResponses maps a slice of domain users.
func NewUserResponses(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, NewUserResponse(&users[i]))
	}
	return result
}
