package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-assistant/internal/models"
)

type QuestionRepository interface {
	Create(ctx context.Context, record *models.QuestionRecord) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]models.QuestionRecord, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, record *models.QuestionRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create question record: %w", err)
	}
	return nil
}

func (r *questionRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]models.QuestionRecord, error) {
	var records []models.QuestionRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return records, nil
}
