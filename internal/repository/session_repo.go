package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathquest/mathquest-api/internal/models"
)

// SessionRepository defines data operations for problem sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.ProblemSession) error
	GetByID(ctx context.Context, id string) (models.ProblemSession, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository instantiates the repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.ProblemSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (models.ProblemSession, error) {
	var session models.ProblemSession
	if err := r.db.WithContext(ctx).First(&session, "id = ?", id).Error; err != nil {
		return models.ProblemSession{}, err
	}

	return session, nil
}
