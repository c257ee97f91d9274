package dto

// SubmissionCreateRequest is the payload for grading an answer. UserAnswer is
// a pointer so an absent field is distinguishable from a literal zero.
type SubmissionCreateRequest struct {
	SessionID  string   `json:"sessionId" validate:"required"`
	UserAnswer *float64 `json:"userAnswer" validate:"required"`
}

// SubmissionResponse is the grading verdict returned to clients.
// DetailedSolution is empty when the answer was correct.
type SubmissionResponse struct {
	IsCorrect        bool    `json:"isCorrect"`
	Feedback         string  `json:"feedback"`
	CorrectAnswer    float64 `json:"correctAnswer"`
	DetailedSolution string  `json:"detailedSolution"`
}
