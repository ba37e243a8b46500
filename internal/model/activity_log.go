package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionLogin           = "login"
	ActionSearch          = "search"
	ActionViewProfile     = "view_profile"
	ActionDownload        = "download"
	ActionAddCandidate    = "add_candidate"
	ActionBulkImport      = "bulk_import"
	ActionCreateRecruiter = "create_recruiter"
)

// ActivityLog is an append-only audit event used by the admin views.
type ActivityLog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Action    string    `gorm:"type:varchar(50);index;not null" json:"action"`
	Payload   string    `gorm:"type:jsonb" json:"payload"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (a *ActivityLog) TableName() string {
	return "activity_logs"
}
