package ai

import (
	"fmt"
	"strings"
)

const problemSystemPrompt = `You are a math tutor writing word problems.

Rules:
- Generate exactly one self-contained word problem matching the requested complexity profile.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions and standard operators.
- The answer must be a single number, correct, and in simplest form.
- Respond with a JSON object containing exactly two fields: "problem_text" (string) and "final_answer" (number). No other fields, no markdown.`

// difficultyProfiles are the three fixed complexity profiles a problem prompt
// can request, keyed by the normalised difficulty value.
var difficultyProfiles = map[string]string{
	"easy":   "Single-step arithmetic with small whole numbers (both operands at most 20). One operation, no fractions, no decimals.",
	"medium": "A 2-3 step problem mixing two different operations, and involving at least one simple fraction such as 1/2 or 3/4.",
	"hard":   "A multi-step problem that requires a unit conversion (for example minutes to hours or grams to kilograms) and combines fraction, decimal, and percentage reasoning.",
}

// buildProblemPrompt constructs the user message for the problem generation
// call for a normalised difficulty value.
func buildProblemPrompt(difficulty string) string {
	profile, ok := difficultyProfiles[difficulty]
	if !ok {
		profile = difficultyProfiles["medium"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Complexity profile: %s\n", profile)
	b.WriteString("\nWrite one word problem for this profile and return JSON.")
	return b.String()
}

const solutionSystemPrompt = `You are a math tutor showing a worked solution.

Rules:
- Output only numbered arithmetic steps, one per line, each of the form "<expression> = <result>".
- No prose, no commentary, no markdown.
- The final step must end in the given correct answer.`

// buildSolutionPrompt constructs the user message for the step-by-step
// derivation call.
func buildSolutionPrompt(problemText string, correctAnswer float64) string {
	var b strings.Builder
	b.WriteString("Problem:\n")
	b.WriteString(problemText)
	fmt.Fprintf(&b, "\n\nCorrect answer: %g\n", correctAnswer)
	b.WriteString("\nShow the numbered arithmetic steps ending in the correct answer.")
	return b.String()
}

const feedbackSystemPrompt = `You are an encouraging math tutor. Reply with a short feedback message of at most 3 sentences. Plain text only.`

// buildFeedbackPrompt constructs the user message for the feedback call.
func buildFeedbackPrompt(input FeedbackInput) string {
	verdict := "incorrect"
	if input.IsCorrect {
		verdict = "correct"
	}

	var b strings.Builder
	b.WriteString("Problem:\n")
	b.WriteString(input.ProblemText)
	fmt.Fprintf(&b, "\n\nCorrect answer: %g\n", input.CorrectAnswer)
	fmt.Fprintf(&b, "Student answer: %g\n", input.UserAnswer)
	fmt.Fprintf(&b, "The student's answer is %s.\n", verdict)
	b.WriteString("\nWrite an encouraging feedback message for the student.")
	return b.String()
}
