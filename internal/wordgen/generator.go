package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/wordmaster/internal/llm"
	"github.com/abhisek/wordmaster/internal/word"
)

// ErrEmptyBatch is returned when the supply produced no usable payloads.
var ErrEmptyBatch = errors.New("word supply returned no usable words")

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before sanitizing.
type batchOutput struct {
	Words []word.Payload `json:"words"`
}

// Generate requests one batch of words and sanitizes the result. Payloads
// missing a word or definition are dropped; enum fields outside their sets
// are left for the repository to coerce. A batch with nothing usable fails.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) ([]word.Payload, error) {
	ctx = llm.WithPurpose(ctx, "word-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("word generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse word batch: %w", err)
	}

	payloads := sanitize(raw.Words)
	if len(payloads) == 0 {
		return nil, ErrEmptyBatch
	}
	return payloads, nil
}

// sanitize repairs or drops malformed payloads so partially-populated
// records never reach the repository. Word and definition are required;
// whitespace-only values count as missing.
func sanitize(in []word.Payload) []word.Payload {
	out := make([]word.Payload, 0, len(in))
	for _, p := range in {
		p.Word = strings.TrimSpace(p.Word)
		p.Definition = strings.TrimSpace(p.Definition)
		if p.Word == "" || p.Definition == "" {
			continue
		}
		p.Example = strings.TrimSpace(p.Example)
		p.Etymology = strings.TrimSpace(p.Etymology)
		out = append(out, p)
	}
	return out
}
