package ai

import "context"

// GeneratedProblem is the structured output of a problem generation call.
type GeneratedProblem struct {
	ProblemText string  `json:"problem_text"`
	FinalAnswer float64 `json:"final_answer"`
}

// FeedbackInput carries everything the feedback prompt is conditioned on.
type FeedbackInput struct {
	ProblemText   string
	CorrectAnswer float64
	UserAnswer    float64
	IsCorrect     bool
}

// Generator describes the external text-completion service used to produce
// problems, worked solutions, and feedback messages.
type Generator interface {
	GenerateProblem(ctx context.Context, difficulty string) (GeneratedProblem, error)
	GenerateSolutionSteps(ctx context.Context, problemText string, correctAnswer float64) (string, error)
	GenerateFeedback(ctx context.Context, input FeedbackInput) (string, error)
}
