package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordmaster/internal/word"
)

// SortRecentFirst orders a listing by created date descending. Any other
// sort key returns insertion order unchanged.
const SortRecentFirst = "-created_date"

// ErrNotFound is returned when an update targets an id that does not exist.
// It is the only repository error that reaches callers; storage faults are
// absorbed at this boundary.
var ErrNotFound = errors.New("word not found")

// Patch carries a partial update. Nil fields are left untouched; the merge is
// shallow. In practice only the status flags are patched, but the full set of
// mutable fields is supported.
type Patch struct {
	Word       *string
	Definition *string
	Example    *string
	Etymology  *string
	Synonyms   *[]string
	Antonyms   *[]string
	Difficulty *word.Difficulty
	Category   *word.Category
	IsFavorite *bool
	IsLearned  *bool
}

// Apply merges the patch over the given entity and returns the result.
func (p Patch) Apply(w word.Word) word.Word {
	if p.Word != nil {
		w.Word = *p.Word
	}
	if p.Definition != nil {
		w.Definition = *p.Definition
	}
	if p.Example != nil {
		w.Example = *p.Example
	}
	if p.Etymology != nil {
		w.Etymology = *p.Etymology
	}
	if p.Synonyms != nil {
		w.Synonyms = *p.Synonyms
	}
	if p.Antonyms != nil {
		w.Antonyms = *p.Antonyms
	}
	if p.Difficulty != nil {
		w.Difficulty = *p.Difficulty
	}
	if p.Category != nil {
		w.Category = *p.Category
	}
	if p.IsFavorite != nil {
		w.IsFavorite = *p.IsFavorite
	}
	if p.IsLearned != nil {
		w.IsLearned = *p.IsLearned
	}
	return w
}

// Repo is the process-wide word collection over a Storage adapter. Every
// mutation is a read-modify-write of the whole collection; the execution
// model is single-writer, so no locking is needed around the cycle.
type Repo struct {
	storage Storage
	now     func() time.Time
	newID   func() string
}

// NewRepo creates a Repo over the given storage. IDs are UUIDs, which keeps
// creates collision-free even with many calls inside the same clock tick.
func NewRepo(storage Storage) *Repo {
	return &Repo{
		storage: storage,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Create fills defaults, assigns identity, appends, and persists. The new
// entity is returned even if the durable write failed (the failure is logged
// and absorbed; a later List may not include it).
func (r *Repo) Create(ctx context.Context, p word.Payload) (word.Word, error) {
	words := r.load(ctx)
	w := word.New(p, r.newID(), r.now())
	words = append(words, w)
	r.persist(ctx, words)
	return w, nil
}

// List returns a snapshot of the collection. SortRecentFirst yields a copy
// ordered by created date descending with ties kept in insertion order;
// other sort keys return insertion order unchanged.
func (r *Repo) List(ctx context.Context, sortKey string) ([]word.Word, error) {
	words := r.load(ctx)
	if sortKey != SortRecentFirst {
		return words, nil
	}
	out := slices.Clone(words)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedDate.After(out[j].CreatedDate)
	})
	return out, nil
}

// Update merges the patch over the entity with the given id and persists the
// collection. Returns ErrNotFound when no entity has that id.
func (r *Repo) Update(ctx context.Context, id string, patch Patch) (word.Word, error) {
	words := r.load(ctx)
	i := slices.IndexFunc(words, func(w word.Word) bool { return w.ID == id })
	if i < 0 {
		return word.Word{}, ErrNotFound
	}
	words[i] = patch.Apply(words[i])
	r.persist(ctx, words)
	return words[i], nil
}

// Delete removes the entity with the given id. Deleting an absent id is a
// no-op, not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	words := r.load(ctx)
	words = slices.DeleteFunc(words, func(w word.Word) bool { return w.ID == id })
	r.persist(ctx, words)
	return nil
}

// Clear empties the collection and persists the empty state.
func (r *Repo) Clear(ctx context.Context) error {
	r.persist(ctx, nil)
	return nil
}

// load reads the collection, treating any storage fault as an empty
// collection. The fault is logged, never surfaced.
func (r *Repo) load(ctx context.Context) []word.Word {
	words, err := r.storage.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: word storage unreadable, treating as empty: %v\n", err)
		return nil
	}
	return words
}

// persist writes the collection, logging and absorbing any fault.
func (r *Repo) persist(ctx context.Context, words []word.Word) {
	if err := r.storage.Save(ctx, words); err != nil {
		fmt.Fprintf(os.Stderr, "warning: word storage write failed, change not durable: %v\n", err)
	}
}
