package model

import (
	"time"

	"github.com/google/uuid"
)

// DownloadLog is append-only. Rows are counted against the per-day quota and
// are never updated or deleted.
type DownloadLog struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null" json:"candidate_id"`
	IP          string    `gorm:"type:varchar(64)" json:"ip"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (d *DownloadLog) TableName() string {
	return "download_logs"
}
