package tutor

import "github.com/abhisek/questland/internal/llm"

// ExplanationSchema is the response shape for mistake explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "mistake-explanations",
	Description: "Short child-friendly explanations of wrong quiz answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"encouragement": map[string]any{
				"type":        "string",
				"description": "One warm sentence for the player (Russian)",
			},
			"explanations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_id": map[string]any{
							"type":        "integer",
							"description": "Id of the question being explained",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "1-3 simple sentences explaining the correct answer (Russian)",
						},
					},
					"required":             []any{"question_id", "text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"encouragement", "explanations"},
		"additionalProperties": false,
	},
}
