package gemini

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"github.com/phrazzld/tutor-api/internal/tutor"
)

// Response schemas passed to the model to constrain its JSON output, plus
// matching draft-07 schemas used to validate what actually came back before
// decoding. The model occasionally returns fenced or otherwise sloppy JSON
// even under a schema constraint, so the response side is validated
// independently.

// quizResponseSchema constrains quiz generation to an array of four-field
// question objects.
var quizResponseSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question":     {Type: genai.TypeString},
			"options":      {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"correctIndex": {Type: genai.TypeInteger},
			"explanation":  {Type: genai.TypeString},
		},
		Required: []string{"question", "options", "correctIndex", "explanation"},
	},
}

// paperResponseSchema constrains mock paper generation to a title plus
// question list. Duration is deliberately absent: the service fixes it.
var paperResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {Type: genai.TypeString},
		"questions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":       {Type: genai.TypeInteger},
					"question": {Type: genai.TypeString},
					"marks":    {Type: genai.TypeInteger},
				},
				Required: []string{"id", "question", "marks"},
			},
		},
	},
	Required: []string{"title", "questions"},
}

// resultResponseSchema constrains mock paper grading.
var resultResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"totalMarks": {Type: genai.TypeInteger},
		"userMarks":  {Type: genai.TypeInteger},
		"grade":      {Type: genai.TypeString},
		"feedback":   {Type: genai.TypeString},
		"questionFeedback": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id":           {Type: genai.TypeInteger},
					"feedback":     {Type: genai.TypeString},
					"marksAwarded": {Type: genai.TypeInteger},
				},
				Required: []string{"id", "feedback", "marksAwarded"},
			},
		},
	},
	Required: []string{"totalMarks", "userMarks", "grade", "feedback", "questionFeedback"},
}

const quizSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question", "options", "correctIndex", "explanation"],
    "properties": {
      "question": { "type": "string" },
      "options": { "type": "array", "items": { "type": "string" } },
      "correctIndex": { "type": "integer" },
      "explanation": { "type": "string" }
    }
  }
}`

const paperSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["title", "questions"],
  "properties": {
    "title": { "type": "string" },
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "question", "marks"],
        "properties": {
          "id": { "type": "integer" },
          "question": { "type": "string" },
          "marks": { "type": "integer" }
        }
      }
    }
  }
}`

const resultSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["totalMarks", "userMarks", "grade", "feedback", "questionFeedback"],
  "properties": {
    "totalMarks": { "type": "integer" },
    "userMarks": { "type": "integer" },
    "grade": { "type": "string" },
    "feedback": { "type": "string" },
    "questionFeedback": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "feedback", "marksAwarded"],
        "properties": {
          "id": { "type": "integer" },
          "feedback": { "type": "string" },
          "marksAwarded": { "type": "integer" }
        }
      }
    }
  }
}`

var (
	quizSchemaLoader   = gojsonschema.NewStringLoader(quizSchemaJSON)
	paperSchemaLoader  = gojsonschema.NewStringLoader(paperSchemaJSON)
	resultSchemaLoader = gojsonschema.NewStringLoader(resultSchemaJSON)
)

// quizQuestionPayload mirrors one element of the quiz response JSON.
type quizQuestionPayload struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// paperPayload mirrors the mock paper response JSON.
type paperPayload struct {
	Title     string                 `json:"title"`
	Questions []paperQuestionPayload `json:"questions"`
}

type paperQuestionPayload struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Marks    int    `json:"marks"`
}

// resultPayload mirrors the grading response JSON.
type resultPayload struct {
	TotalMarks       int                       `json:"totalMarks"`
	UserMarks        int                       `json:"userMarks"`
	Grade            string                    `json:"grade"`
	Feedback         string                    `json:"feedback"`
	QuestionFeedback []questionFeedbackPayload `json:"questionFeedback"`
}

type questionFeedbackPayload struct {
	ID           int    `json:"id"`
	Feedback     string `json:"feedback"`
	MarksAwarded int    `json:"marksAwarded"`
}

// cleanJSONFence strips a surrounding markdown code fence from model output,
// returning the trimmed JSON body.
func cleanJSONFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}

// validateAgainstSchema checks the cleaned JSON document against the given
// draft-07 schema loader and maps any mismatch to tutor.ErrInvalidResponse.
func validateAgainstSchema(schema gojsonschema.JSONLoader, document string) error {
	result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("%w: malformed JSON: %v", tutor.ErrInvalidResponse, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: schema mismatch: %s", tutor.ErrInvalidResponse, result.Errors()[0])
	}
	return nil
}
