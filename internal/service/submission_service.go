package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mathquest/mathquest-api/internal/dto"
	"github.com/mathquest/mathquest-api/internal/models"
	"github.com/mathquest/mathquest-api/internal/repository"
	"github.com/mathquest/mathquest-api/pkg/ai"
)

// ErrSessionNotFound indicates the referenced problem session does not exist.
var ErrSessionNotFound = errors.New("problem session not found")

// ErrFeedback indicates the mandatory feedback generation call failed.
var ErrFeedback = errors.New("feedback generation failed")

// SolutionPlaceholder is returned in place of the detailed solution when the
// generation service fails on that optional sub-call.
const SolutionPlaceholder = "Detailed solution is unavailable right now."

// SubmissionService grades answers against stored problem sessions.
type SubmissionService interface {
	Evaluate(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	sessions    repository.SessionRepository
	submissions repository.SubmissionRepository
	generator   ai.Generator
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(sessionRepo repository.SessionRepository, submissionRepo repository.SubmissionRepository, generator ai.Generator, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		sessions:    sessionRepo,
		submissions: submissionRepo,
		generator:   generator,
		validator:   validate,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "submission_service").Logger(),
	}
}

func (s *submissionService) Evaluate(ctx context.Context, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	session, err := s.sessions.GetByID(ctx, payload.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrSessionNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	userAnswer := *payload.UserAnswer
	isCorrect := session.IsCorrectAnswer(userAnswer)

	// The worked solution is only produced for wrong answers, and any
	// upstream failure degrades to a placeholder instead of failing the
	// whole request.
	detailedSolution := ""
	if !isCorrect {
		steps, err := s.generator.GenerateSolutionSteps(ctx, session.ProblemText, session.CorrectAnswer)
		if err != nil {
			s.logger.Warn().Err(err).Str("session_id", session.ID).Msg("solution generation failed, using placeholder")
			steps = SolutionPlaceholder
		}
		detailedSolution = s.sanitize(steps)
	}

	feedback, err := s.generator.GenerateFeedback(ctx, ai.FeedbackInput{
		ProblemText:   session.ProblemText,
		CorrectAnswer: session.CorrectAnswer,
		UserAnswer:    userAnswer,
		IsCorrect:     isCorrect,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", session.ID).Msg("feedback generation failed")
		return dto.SubmissionResponse{}, fmt.Errorf("%w: %v", ErrFeedback, err)
	}
	feedback = s.sanitize(feedback)

	submission := models.Submission{
		SessionID:        session.ID,
		UserAnswer:       userAnswer,
		IsCorrect:        isCorrect,
		FeedbackText:     feedback,
		DetailedSolution: detailedSolution,
	}

	// Audit trail only: the verdict has already been computed, so a write
	// failure is logged and the response still succeeds.
	if err := s.submissions.Create(ctx, &submission); err != nil {
		s.logger.Warn().Err(err).Str("session_id", session.ID).Msg("failed to record submission")
	}

	return dto.SubmissionResponse{
		IsCorrect:        isCorrect,
		Feedback:         feedback,
		CorrectAnswer:    session.CorrectAnswer,
		DetailedSolution: detailedSolution,
	}, nil
}

func (s *submissionService) sanitize(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}
