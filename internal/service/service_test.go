package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mathquest/mathquest-api/internal/models"
	"github.com/mathquest/mathquest-api/pkg/ai"
)

// memorySessionRepo is an in-memory SessionRepository for service tests.
type memorySessionRepo struct {
	sessions  map[string]models.ProblemSession
	createErr error
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{sessions: make(map[string]models.ProblemSession)}
}

func (m *memorySessionRepo) Create(_ context.Context, session *models.ProblemSession) error {
	if m.createErr != nil {
		return m.createErr
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = *session
	return nil
}

func (m *memorySessionRepo) GetByID(_ context.Context, id string) (models.ProblemSession, error) {
	session, ok := m.sessions[id]
	if !ok {
		return models.ProblemSession{}, gorm.ErrRecordNotFound
	}
	return session, nil
}

// memorySubmissionRepo is an in-memory SubmissionRepository for service tests.
type memorySubmissionRepo struct {
	submissions []models.Submission
	createErr   error
}

func (m *memorySubmissionRepo) Create(_ context.Context, submission *models.Submission) error {
	if m.createErr != nil {
		return m.createErr
	}
	submission.ID = uint(len(m.submissions) + 1)
	submission.CreatedAt = time.Now()
	m.submissions = append(m.submissions, *submission)
	return nil
}

// stubGenerator is a scriptable ai.Generator that records its calls.
type stubGenerator struct {
	problem     ai.GeneratedProblem
	problemErr  error
	solution    string
	solutionErr error
	feedback    string
	feedbackErr error

	problemCalls  int
	solutionCalls int
	feedbackCalls int

	lastDifficulty string
	lastFeedback   ai.FeedbackInput
}

func (s *stubGenerator) GenerateProblem(_ context.Context, difficulty string) (ai.GeneratedProblem, error) {
	s.problemCalls++
	s.lastDifficulty = difficulty
	if s.problemErr != nil {
		return ai.GeneratedProblem{}, s.problemErr
	}
	return s.problem, nil
}

func (s *stubGenerator) GenerateSolutionSteps(_ context.Context, _ string, _ float64) (string, error) {
	s.solutionCalls++
	if s.solutionErr != nil {
		return "", s.solutionErr
	}
	return s.solution, nil
}

func (s *stubGenerator) GenerateFeedback(_ context.Context, input ai.FeedbackInput) (string, error) {
	s.feedbackCalls++
	s.lastFeedback = input
	if s.feedbackErr != nil {
		return "", s.feedbackErr
	}
	return s.feedback, nil
}

var errUpstream = errors.New("upstream unavailable")

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
