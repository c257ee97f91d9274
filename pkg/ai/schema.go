package ai

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// problemSchemaJSON is the required-output schema sent alongside the problem
// prompt and enforced on the model reply before it is accepted.
const problemSchemaJSON = `{
	"type": "object",
	"properties": {
		"problem_text": {"type": "string", "minLength": 1},
		"final_answer": {"type": "number"}
	},
	"required": ["problem_text", "final_answer"],
	"additionalProperties": false
}`

var problemSchema = jsonschema.MustCompileString("problem.schema.json", problemSchemaJSON)

// parseProblemResponse validates the raw model reply against the declared
// schema and decodes it into a GeneratedProblem.
func parseProblemResponse(content string) (GeneratedProblem, error) {
	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return GeneratedProblem{}, fmt.Errorf("parse problem json: %w", err)
	}

	if err := problemSchema.Validate(raw); err != nil {
		return GeneratedProblem{}, fmt.Errorf("problem response does not match schema: %w", err)
	}

	var problem GeneratedProblem
	if err := json.Unmarshal([]byte(content), &problem); err != nil {
		return GeneratedProblem{}, fmt.Errorf("decode problem json: %w", err)
	}

	return problem, nil
}
