package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/mathquest/mathquest-api/internal/dto"
	"github.com/mathquest/mathquest-api/internal/models"
	"github.com/mathquest/mathquest-api/internal/repository"
	"github.com/mathquest/mathquest-api/pkg/ai"
)

// ErrInvalidDifficulty indicates an unknown difficulty selector.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ErrGeneration indicates the external generation service failed or returned
// content that does not match the declared schema.
var ErrGeneration = errors.New("problem generation failed")

// ProblemService orchestrates problem generation workflows.
type ProblemService interface {
	Generate(ctx context.Context, payload dto.ProblemCreateRequest) (dto.ProblemResponse, error)
}

type problemService struct {
	sessions  repository.SessionRepository
	generator ai.Generator
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewProblemService constructs a ProblemService instance.
func NewProblemService(sessionRepo repository.SessionRepository, generator ai.Generator, validate *validator.Validate, logger zerolog.Logger) ProblemService {
	return &problemService{
		sessions:  sessionRepo,
		generator: generator,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "problem_service").Logger(),
	}
}

func (s *problemService) Generate(ctx context.Context, payload dto.ProblemCreateRequest) (dto.ProblemResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ProblemResponse{}, err
	}

	difficulty, err := models.ParseDifficulty(payload.Difficulty)
	if err != nil {
		return dto.ProblemResponse{}, fmt.Errorf("%w: %s", ErrInvalidDifficulty, payload.Difficulty)
	}

	problem, err := s.generator.GenerateProblem(ctx, difficulty)
	if err != nil {
		s.logger.Error().Err(err).Str("difficulty", difficulty).Msg("problem generation failed")
		return dto.ProblemResponse{}, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	session := models.ProblemSession{
		ProblemText:   s.sanitize(problem.ProblemText),
		CorrectAnswer: problem.FinalAnswer,
		Difficulty:    difficulty,
	}

	// The client needs the generated id, so a write failure here is fatal
	// for the request. No compensating action is taken for the tokens
	// already spent on generation.
	if err := s.sessions.Create(ctx, &session); err != nil {
		return dto.ProblemResponse{}, err
	}

	s.logger.Info().Str("session_id", session.ID).Str("difficulty", difficulty).Msg("problem session created")

	return dto.NewProblemResponse(session), nil
}

func (s *problemService) sanitize(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}
