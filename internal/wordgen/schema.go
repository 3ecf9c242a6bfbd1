package wordgen

import "github.com/abhisek/wordmaster/internal/llm"

// BatchSchema defines the JSON schema for word-supply responses.
var BatchSchema = &llm.Schema{
	Name:        "word-batch",
	Description: "A batch of vocabulary words with definitions, usage, and origins",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"words": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The vocabulary word itself",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "A clear, comprehensive definition",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "An example sentence using the word in context",
						},
						"synonyms": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-3 synonyms, if available",
						},
						"antonyms": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2-3 antonyms, if available",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"beginner", "intermediate", "advanced"},
							"description": "Difficulty level for a vocabulary learner",
						},
						"category": map[string]any{
							"type":        "string",
							"enum":        []any{"general", "academic", "business", "science", "literature"},
							"description": "The domain the word is most used in",
						},
						"etymology": map[string]any{
							"type":        "string",
							"description": "A brief, interesting word origin",
						},
					},
					"required": []any{"word", "definition", "example", "difficulty", "category"},
				},
			},
		},
		"required": []any{"words"},
	},
}
