package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/interview-assistant/internal/models"
)

type ResumeRepository interface {
	Create(ctx context.Context, record *models.ResumeRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.ResumeRecord, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(ctx context.Context, record *models.ResumeRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create resume record: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.ResumeRecord, error) {
	var record models.ResumeRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume record not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find resume record: %w", err)
	}

	return &record, nil
}
