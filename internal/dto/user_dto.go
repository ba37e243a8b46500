package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateRecruiterInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	DailyLimit int    `json:"dailyLimit"`
}

// UpdateRecruiterInput carries partial updates; nil fields are left alone.
type UpdateRecruiterInput struct {
	Active     *bool `json:"active"`
	DailyLimit *int  `json:"dailyLimit"`
}

type UserDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Active     bool      `json:"active"`
	DailyLimit int       `json:"daily_limit"`
	CreatedAt  time.Time `json:"created_at"`
}

type UserDownloadCount struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Count  int64     `json:"count"`
}

type AnalyticsReport struct {
	Candidates      int64               `json:"candidates"`
	Recruiters      int64               `json:"recruiters"`
	DownloadsToday  int64               `json:"downloads_today"`
	SearchesToday   int64               `json:"searches_today"`
	DownloadsByUser []UserDownloadCount `json:"downloads_by_user"`
}
