package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/mathquest-api/internal/models"
)

// SubmissionRepository defines data operations for graded submissions.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
}

type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository instantiates the repository.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}
