package word

import (
	"strings"
	"time"
)

// Difficulty classifies how hard a word is for a learner.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// DefaultDifficulty is applied when the input carries no usable value.
const DefaultDifficulty = DifficultyIntermediate

// Category groups words by the domain they are most used in.
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryAcademic   Category = "academic"
	CategoryBusiness   Category = "business"
	CategoryScience    Category = "science"
	CategoryLiterature Category = "literature"
)

// DefaultCategory is applied when the input carries no usable value.
const DefaultCategory = CategoryGeneral

// Word is a single persisted vocabulary record. Identity fields (ID,
// CreatedDate) are fixed at creation; the status flags are the only fields
// mutated in normal use. JSON tags match the persisted layout and must not
// change.
type Word struct {
	ID          string     `json:"id"`
	Word        string     `json:"word"`
	Definition  string     `json:"definition"`
	Example     string     `json:"example"`
	Synonyms    []string   `json:"synonyms"`
	Antonyms    []string   `json:"antonyms"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    Category   `json:"category"`
	Etymology   string     `json:"etymology"`
	IsFavorite  bool       `json:"is_favorite"`
	IsLearned   bool       `json:"is_learned"`
	CreatedDate time.Time  `json:"created_date"`
}

// Payload is the supply-side shape of a word: what a generator produces
// before the repository assigns identity. Word and Definition are required;
// everything else defaults.
type Payload struct {
	Word       string   `json:"word"`
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
	Etymology  string   `json:"etymology"`
}

// New builds a Word from a payload with identity assigned by the caller.
// Missing optional fields take their documented defaults; enum fields outside
// their closed set coerce to the default rather than failing.
func New(p Payload, id string, now time.Time) Word {
	return Word{
		ID:          id,
		Word:        p.Word,
		Definition:  p.Definition,
		Example:     p.Example,
		Synonyms:    p.Synonyms,
		Antonyms:    p.Antonyms,
		Difficulty:  NormalizeDifficulty(p.Difficulty),
		Category:    NormalizeCategory(p.Category),
		Etymology:   p.Etymology,
		CreatedDate: now,
	}
}

// NormalizeDifficulty coerces a raw difficulty string into the closed set.
func NormalizeDifficulty(s string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyBeginner:
		return DifficultyBeginner
	case DifficultyIntermediate:
		return DifficultyIntermediate
	case DifficultyAdvanced:
		return DifficultyAdvanced
	default:
		return DefaultDifficulty
	}
}

// NormalizeCategory coerces a raw category string into the closed set.
func NormalizeCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryGeneral:
		return CategoryGeneral
	case CategoryAcademic:
		return CategoryAcademic
	case CategoryBusiness:
		return CategoryBusiness
	case CategoryScience:
		return CategoryScience
	case CategoryLiterature:
		return CategoryLiterature
	default:
		return DefaultCategory
	}
}
