package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/mathquest/mathquest-api/internal/dto"
	"github.com/mathquest/mathquest-api/internal/models"
	"github.com/mathquest/mathquest-api/pkg/ai"
)

func TestProblemServiceGenerate(t *testing.T) {
	sessions := newMemorySessionRepo()
	generator := &stubGenerator{
		problem: ai.GeneratedProblem{ProblemText: "A box holds 6 eggs. How many eggs are in 3 boxes?", FinalAnswer: 18},
	}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	resp, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{Difficulty: "Easy"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	require.Equal(t, "A box holds 6 eggs. How many eggs are in 3 boxes?", resp.ProblemText)
	require.Equal(t, 18.0, resp.FinalAnswer)
	require.Equal(t, models.DifficultyEasy, resp.Difficulty)
	require.Equal(t, models.DifficultyEasy, generator.lastDifficulty)

	stored, err := sessions.GetByID(context.Background(), resp.SessionID)
	require.NoError(t, err)
	require.Equal(t, models.DifficultyEasy, stored.Difficulty)
	require.Equal(t, 18.0, stored.CorrectAnswer)
}

func TestProblemServiceGenerateDefaultsToMedium(t *testing.T) {
	sessions := newMemorySessionRepo()
	generator := &stubGenerator{problem: ai.GeneratedProblem{ProblemText: "p", FinalAnswer: 1}}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	resp, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{})
	require.NoError(t, err)
	require.Equal(t, models.DifficultyMedium, resp.Difficulty)
	require.Equal(t, models.DifficultyMedium, generator.lastDifficulty)
}

func TestProblemServiceGenerateInvalidDifficulty(t *testing.T) {
	sessions := newMemorySessionRepo()
	generator := &stubGenerator{}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{Difficulty: "brutal"})
	require.ErrorIs(t, err, ErrInvalidDifficulty)
	require.Zero(t, generator.problemCalls)
	require.Empty(t, sessions.sessions)
}

func TestProblemServiceGenerateUpstreamFailure(t *testing.T) {
	sessions := newMemorySessionRepo()
	generator := &stubGenerator{problemErr: errUpstream}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{Difficulty: "hard"})
	require.ErrorIs(t, err, ErrGeneration)
	require.Empty(t, sessions.sessions)
}

func TestProblemServiceGeneratePersistenceFailureIsFatal(t *testing.T) {
	sessions := newMemorySessionRepo()
	sessions.createErr = errUpstream
	generator := &stubGenerator{problem: ai.GeneratedProblem{ProblemText: "p", FinalAnswer: 1}}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	_, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrGeneration)
}

func TestProblemServiceGenerateSanitizesModelOutput(t *testing.T) {
	sessions := newMemorySessionRepo()
	generator := &stubGenerator{
		problem: ai.GeneratedProblem{ProblemText: "<script>alert(1)</script>What is 1 + 1?", FinalAnswer: 2},
	}
	svc := NewProblemService(sessions, generator, validator.New(validator.WithRequiredStructEnabled()), testLogger())

	resp, err := svc.Generate(context.Background(), dto.ProblemCreateRequest{})
	require.NoError(t, err)
	require.Equal(t, "What is 1 + 1?", resp.ProblemText)
}
