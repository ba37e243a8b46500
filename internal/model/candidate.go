package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Candidate is the canonical record shape. Both ingestion paths (manual add
// and bulk upload) are adapted into this shape before storage; UniqueID is
// the natural key all upserts run against.
type Candidate struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UniqueID        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"unique_id"`
	FullName        string         `gorm:"type:varchar(255)" json:"full_name"`
	Email           string         `gorm:"type:varchar(255)" json:"email"`
	Phone           string         `gorm:"type:varchar(50)" json:"phone"`
	Designation     string         `gorm:"type:varchar(255)" json:"designation"`
	Experience      float64        `gorm:"type:float" json:"experience"`
	CurrentCTC      float64        `gorm:"type:float" json:"current_ctc"`
	ExpectedCTC     float64        `gorm:"type:float" json:"expected_ctc"`
	TopSkills       pq.StringArray `gorm:"type:text[]" json:"top_skills"`
	AllSkills       pq.StringArray `gorm:"type:text[]" json:"all_skills"`
	Companies       pq.StringArray `gorm:"type:text[]" json:"companies"`
	Location        string         `gorm:"type:varchar(255)" json:"location"`
	Portal          string         `gorm:"type:varchar(100)" json:"portal"`
	PortalDate      string         `gorm:"type:varchar(50)" json:"portal_date"`
	ApplicationDate string         `gorm:"type:varchar(50)" json:"application_date"`
	Remark          string         `gorm:"type:text" json:"remark"`
	ResumeURL       string         `gorm:"type:text" json:"resume_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
