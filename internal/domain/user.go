package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a traveler account. The home timezone is the default origin zone
// for assessments.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HomeTimezone string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"home_timezone"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest is the request body for creating a traveler.
type CreateUserRequest struct {
	HomeTimezone string `json:"home_timezone" validate:"required,timezone"`
}

// UserResponse is the response body for traveler endpoints.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	HomeTimezone string    `json:"home_timezone"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		HomeTimezone: u.HomeTimezone,
		CreatedAt:    u.CreatedAt,
	}
}
