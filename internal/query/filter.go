// Package query projects collection snapshots into filtered views. All
// functions are pure: they never reorder, never mutate, and derive everything
// from the snapshot and the supplied clock.
package query

import (
	"strings"
	"time"

	"github.com/abhisek/wordmaster/internal/word"
)

// Filter selects which subset of the collection a view shows. Exactly one
// filter is active at a time; Search composes on top of whichever one is.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterToday     Filter = "today"
	FilterWeek      Filter = "week"
	FilterMonth     Filter = "month"
	FilterFavorites Filter = "favorites"
)

// Filters lists all filters in display order.
var Filters = []Filter{FilterAll, FilterToday, FilterWeek, FilterMonth, FilterFavorites}

// Label returns the filter's display name.
func (f Filter) Label() string {
	switch f {
	case FilterToday:
		return "Today"
	case FilterWeek:
		return "This Week"
	case FilterMonth:
		return "This Month"
	case FilterFavorites:
		return "Favorites Only"
	default:
		return "All Words"
	}
}

// Apply returns the words matching the filter, preserving input order.
// Time windows are evaluated against now: today means the same local
// calendar day, week is a rolling 7 days, and month subtracts one calendar
// month (AddDate semantics, not a fixed 30 days).
func Apply(words []word.Word, f Filter, now time.Time) []word.Word {
	var pred func(word.Word) bool

	switch f {
	case FilterToday:
		y, m, d := now.Date()
		pred = func(w word.Word) bool {
			wy, wm, wd := w.CreatedDate.In(now.Location()).Date()
			return wy == y && wm == m && wd == d
		}
	case FilterWeek:
		cutoff := now.AddDate(0, 0, -7)
		pred = func(w word.Word) bool { return !w.CreatedDate.Before(cutoff) }
	case FilterMonth:
		cutoff := now.AddDate(0, -1, 0)
		pred = func(w word.Word) bool { return !w.CreatedDate.Before(cutoff) }
	case FilterFavorites:
		pred = func(w word.Word) bool { return w.IsFavorite }
	default:
		return words
	}

	out := make([]word.Word, 0, len(words))
	for _, w := range words {
		if pred(w) {
			out = append(out, w)
		}
	}
	return out
}

// Search returns the words whose name or definition contains term,
// case-insensitively. An empty term matches everything. Input order is
// preserved.
func Search(words []word.Word, term string) []word.Word {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return words
	}

	out := make([]word.Word, 0, len(words))
	for _, w := range words {
		if strings.Contains(strings.ToLower(w.Word), term) ||
			strings.Contains(strings.ToLower(w.Definition), term) {
			out = append(out, w)
		}
	}
	return out
}
