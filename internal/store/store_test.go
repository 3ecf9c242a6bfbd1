package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/wordmaster/internal/word"
)

func openTestStorage(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "wordmaster.db"))
	if err != nil {
		t.Fatalf("open test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmptySlot(t *testing.T) {
	s := openTestStorage(t)

	words, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if words != nil {
		t.Errorf("expected nil collection for missing slot, got %v", words)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	in := []word.Word{
		{
			ID:          "w-1",
			Word:        "ephemeral",
			Definition:  "lasting a very short time",
			Synonyms:    []string{"transient", "fleeting"},
			Difficulty:  word.DifficultyAdvanced,
			Category:    word.CategoryLiterature,
			IsFavorite:  true,
			CreatedDate: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "w-2",
			Word:        "catalyst",
			Definition:  "a thing that precipitates change",
			Difficulty:  word.DifficultyIntermediate,
			Category:    word.CategoryScience,
			CreatedDate: time.Date(2025, 6, 1, 9, 0, 1, 0, time.UTC),
		},
	}

	if err := s.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].ID != "w-1" || out[1].ID != "w-2" {
		t.Error("order not preserved")
	}
	if !out[0].IsFavorite || out[0].Synonyms[1] != "fleeting" {
		t.Errorf("fields not preserved: %+v", out[0])
	}
	if !out[0].CreatedDate.Equal(in[0].CreatedDate) {
		t.Errorf("created date = %v, want %v", out[0].CreatedDate, in[0].CreatedDate)
	}
}

func TestSaveReplacesWholeCollection(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	s.Save(ctx, []word.Word{{ID: "a"}, {ID: "b"}})
	s.Save(ctx, []word.Word{{ID: "c"}})

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0].ID != "c" {
		t.Errorf("save must replace the slot as a unit, got %v", out)
	}
}

func TestCorruptSlotSurfacesDecodeError(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	_, err := s.DB().Exec(
		`INSERT INTO storage (slot, value) VALUES (?, ?)`, "wordmaster_words", []byte("{not json"),
	)
	if err != nil {
		t.Fatalf("seed corrupt slot: %v", err)
	}

	if _, err := s.Load(ctx); err == nil {
		t.Fatal("expected decode error for corrupt slot")
	}
	// The repo layer is responsible for absorbing this into "empty".
}

func TestMissingOptionalFieldsDefault(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	// A record persisted by an older writer: only required fields present.
	_, err := s.DB().Exec(
		`INSERT INTO storage (slot, value) VALUES (?, ?)`, "wordmaster_words",
		[]byte(`[{"id":"w-1","word":"terse","definition":"brief","created_date":"2025-06-01T09:00:00Z"}]`),
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len = %d, want 1", len(out))
	}
	w := out[0]
	if w.IsFavorite || w.IsLearned {
		t.Error("flags must default to false")
	}
	if len(w.Synonyms) != 0 || len(w.Antonyms) != 0 {
		t.Error("sequences must default to empty")
	}
	if w.Difficulty != word.DefaultDifficulty {
		t.Errorf("difficulty = %q, want default %q", w.Difficulty, word.DefaultDifficulty)
	}
	if w.Category != word.DefaultCategory {
		t.Errorf("category = %q, want default %q", w.Category, word.DefaultCategory)
	}
}
