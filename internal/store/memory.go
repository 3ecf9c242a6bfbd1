package store

import (
	"context"
	"slices"
	"sync"

	"github.com/abhisek/wordmaster/internal/word"
)

// Memory is an in-process Storage used in tests and ephemeral runs.
// Failure injection hooks let tests exercise the repo's absorb-on-fault
// policy without a real broken backend.
type Memory struct {
	mu    sync.Mutex
	words []word.Word

	// LoadErr and SaveErr, when set, are returned by the corresponding call.
	LoadErr error
	SaveErr error
}

var _ Storage = (*Memory)(nil)

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]word.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.words), nil
}

func (m *Memory) Save(_ context.Context, words []word.Word) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.words = slices.Clone(words)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
