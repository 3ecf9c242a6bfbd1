package wordgen

import (
	"context"

	"github.com/abhisek/wordmaster/internal/word"
)

// Generator produces a batch of word payloads ready for the repository.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) ([]word.Payload, error)
}

// GenerateInput holds the context for one batch request.
type GenerateInput struct {
	// Count is the number of words requested. 0 falls back to Config.Count.
	Count int

	// RecentWords contains words already in the learner's collection.
	// Included in the prompt so the supply avoids repeating them.
	RecentWords []string
}
