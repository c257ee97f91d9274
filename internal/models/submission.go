package models

import "time"

// Submission records the outcome of grading one answer against a problem
// session. It is a write-only audit trail: rows are never mutated or read back
// by the service.
type Submission struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SessionID        string    `gorm:"size:36;not null;index" json:"session_id"`
	UserAnswer       float64   `gorm:"not null" json:"user_answer"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	FeedbackText     string    `gorm:"type:text" json:"feedback_text"`
	DetailedSolution string    `gorm:"type:text" json:"detailed_solution"`
	CreatedAt        time.Time `json:"created_at"`
}
