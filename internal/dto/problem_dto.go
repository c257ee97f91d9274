package dto

import "github.com/mathquest/mathquest-api/internal/models"

// ProblemCreateRequest is the payload for requesting a new problem. The
// difficulty selector is optional and defaults to medium.
type ProblemCreateRequest struct {
	Difficulty string `json:"difficulty" validate:"omitempty,max=16"`
}

// ProblemResponse is returned to clients after a problem has been generated
// and persisted.
type ProblemResponse struct {
	ProblemText string  `json:"problem_text"`
	FinalAnswer float64 `json:"final_answer"`
	SessionID   string  `json:"sessionId"`
	Difficulty  string  `json:"difficulty"`
}

// NewProblemResponse converts a persisted session into the wire shape.
func NewProblemResponse(session models.ProblemSession) ProblemResponse {
	return ProblemResponse{
		ProblemText: session.ProblemText,
		FinalAnswer: session.CorrectAnswer,
		SessionID:   session.ID,
		Difficulty:  session.Difficulty,
	}
}
