package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DifficultyEasy selects single-step small-integer arithmetic problems.
	DifficultyEasy = "easy"
	// DifficultyMedium selects 2-3 step mixed-operation problems with simple fractions.
	DifficultyMedium = "medium"
	// DifficultyHard selects multi-step problems with unit conversion and mixed number forms.
	DifficultyHard = "hard"
)

// AnswerTolerance is the absolute tolerance for grading numeric answers.
// The comparison is strict: a difference of exactly the tolerance is incorrect.
const AnswerTolerance = 1e-4

// ProblemSession is a generated problem awaiting an answer. Rows are immutable
// after creation and are never deleted.
type ProblemSession struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ProblemText   string    `gorm:"type:text;not null" json:"problem_text"`
	CorrectAnswer float64   `gorm:"not null" json:"correct_answer"`
	Difficulty    string    `gorm:"size:16;not null" json:"difficulty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate assigns the opaque session identifier at insert time.
func (s *ProblemSession) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsCorrectAnswer grades a submitted value against the stored answer.
func (s ProblemSession) IsCorrectAnswer(value float64) bool {
	diff := value - s.CorrectAnswer
	if diff < 0 {
		diff = -diff
	}
	return diff < AnswerTolerance
}

// ParseDifficulty normalises a client-supplied difficulty selector. An empty
// value defaults to medium; unknown values are rejected.
func ParseDifficulty(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", value)
	}
}
