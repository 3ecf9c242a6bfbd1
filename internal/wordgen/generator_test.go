package wordgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/wordmaster/internal/llm"
)

const sampleBatch = `{
	"words": [
		{
			"word": "Serendipity",
			"definition": "The occurrence of events by chance in a happy way.",
			"example": "Finding that book was pure serendipity.",
			"synonyms": ["fortune", "luck"],
			"antonyms": ["misfortune"],
			"difficulty": "intermediate",
			"category": "general",
			"etymology": "From the Persian tale of the Three Princes of Serendip."
		},
		{
			"word": "Ubiquitous",
			"definition": "Present, appearing, or found everywhere.",
			"example": "Smartphones are ubiquitous.",
			"difficulty": "advanced",
			"category": "academic"
		}
	]
}`

func TestGenerateParsesBatch(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(sampleBatch)},
	)
	g := New(mock, DefaultConfig())

	payloads, err := g.Generate(context.Background(), GenerateInput{Count: 2})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("len = %d, want 2", len(payloads))
	}
	if payloads[0].Word != "Serendipity" || payloads[1].Word != "Ubiquitous" {
		t.Errorf("order not preserved: %q, %q", payloads[0].Word, payloads[1].Word)
	}
	if payloads[0].Synonyms[0] != "fortune" {
		t.Errorf("synonyms lost: %v", payloads[0].Synonyms)
	}

	// Request carried the schema and the system prompt.
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "word-batch" {
		t.Error("batch schema not sent")
	}
	if req.System == "" {
		t.Error("system prompt not sent")
	}
}

func TestGeneratePropagatesProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable in chain, got %v", err)
	}
}

func TestGenerateDropsMalformedEntries(t *testing.T) {
	batch := `{"words": [
		{"word": "", "definition": "orphaned definition"},
		{"word": "   ", "definition": "whitespace word"},
		{"word": "Valid", "definition": "a usable entry", "difficulty": "beginner", "category": "general"},
		{"word": "NoDefinition", "definition": ""}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	g := New(mock, DefaultConfig())

	payloads, err := g.Generate(context.Background(), GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(payloads) != 1 || payloads[0].Word != "Valid" {
		t.Errorf("sanitize kept wrong entries: %v", payloads)
	}
}

func TestGenerateEmptyBatchFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"words": []}`)},
	)
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{})
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("err = %v, want ErrEmptyBatch", err)
	}
}

func TestGenerateMalformedJSONFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{not json`)},
	)
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{}); err == nil {
		t.Fatal("expected parse error")
	}
}
