package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/wordmaster/internal/navigator"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/word"
	"github.com/abhisek/wordmaster/internal/wordgen"
)

// Phase is the generation session lifecycle state.
type Phase int

const (
	// PhaseIdle means no generated set is active.
	PhaseIdle Phase = iota
	// PhaseGenerating means a word-supply request is in flight.
	PhaseGenerating
	// PhaseReady means a generated view is populated and browsable.
	PhaseReady
)

// String returns the phase name for logs and views.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ErrGenerationInFlight is returned when Generate is called while a
// previous request has not resolved. Overlapping requests would each
// reset the navigator with the later completion winning, so they are
// rejected instead.
var ErrGenerationInFlight = errors.New("a generation request is already in flight")

// GenerationSession orchestrates one word-supply request at a time:
// it calls the generator, persists each payload through the repository
// in batch order, then seeds the navigator with the new entities.
//
// On failure the session returns to its pre-call phase and no entities
// are created. The failure is non-fatal; the caller decides whether to
// surface it and when to retry.
type GenerationSession struct {
	mu        sync.Mutex
	repo      *store.Repo
	generator wordgen.Generator
	nav       *navigator.Navigator
	phase     Phase
}

// New creates an idle GenerationSession.
func New(repo *store.Repo, gen wordgen.Generator) *GenerationSession {
	return &GenerationSession{
		repo:      repo,
		generator: gen,
		nav:       navigator.New(nil),
		phase:     PhaseIdle,
	}
}

// Phase returns the current lifecycle phase.
func (s *GenerationSession) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Navigator returns the navigator seeded by the last successful Generate.
func (s *GenerationSession) Navigator() *navigator.Navigator {
	return s.nav
}

// Generate requests one batch of words, persists them in order, and
// resets the navigator to the freshly created entities. The previous
// view survives a failed request untouched.
func (s *GenerationSession) Generate(ctx context.Context, count int) ([]word.Word, error) {
	if s.generator == nil {
		return nil, errors.New("no word supply configured")
	}

	s.mu.Lock()
	if s.phase == PhaseGenerating {
		s.mu.Unlock()
		return nil, ErrGenerationInFlight
	}
	prev := s.phase
	s.phase = PhaseGenerating
	s.mu.Unlock()

	payloads, err := s.generator.Generate(ctx, wordgen.GenerateInput{
		Count:       count,
		RecentWords: s.recentWords(ctx),
	})
	if err != nil {
		s.mu.Lock()
		s.phase = prev
		s.mu.Unlock()
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	created := make([]word.Word, 0, len(payloads))
	for _, p := range payloads {
		w, err := s.repo.Create(ctx, p)
		if err != nil {
			s.mu.Lock()
			s.phase = prev
			s.mu.Unlock()
			return nil, fmt.Errorf("persisting generated word: %w", err)
		}
		created = append(created, w)
	}

	s.mu.Lock()
	s.nav.Reset(created)
	s.phase = PhaseReady
	s.mu.Unlock()

	return created, nil
}

// Discard drops the current view and returns to idle. The underlying
// persisted entities are kept.
func (s *GenerationSession) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseGenerating {
		return
	}
	s.nav.Reset(nil)
	s.phase = PhaseIdle
}

// recentWords lists existing words, newest first, for the dedup prompt.
func (s *GenerationSession) recentWords(ctx context.Context) []string {
	existing, err := s.repo.List(ctx, store.SortRecentFirst)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(existing))
	for _, w := range existing {
		names = append(names, w.Word)
	}
	return names
}
