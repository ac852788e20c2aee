package models

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord keeps track of every resume ingested through /upload_resume.
type ResumeRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID        string    `gorm:"type:text;index" json:"session_id"`
	OriginalFilename string    `gorm:"type:text" json:"original_filename"`
	Filename         string    `gorm:"type:text" json:"filename"`
	StorageLocation  string    `gorm:"type:text" json:"storage_location,omitempty"`
	TextLength       int       `json:"text_length"`
	CreatedAt        time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}

func (r *ResumeRecord) TableName() string {
	return "resumes"
}
