package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SessionID string    `gorm:"type:text;index" json:"-"`
	JobRole   string    `gorm:"type:text" json:"job_role"`
	Question  string    `gorm:"type:text" json:"question"`
	Model     string    `gorm:"type:text" json:"model"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (QuestionRecord) TableName() string {
	return "interview_questions"
}
