// Package navigator maintains a cursor into an ordered view of words. The
// view can shrink or be replaced while displayed (un-favoriting the word on
// screen, a new filter) and the cursor stays inside bounds.
package navigator

import "github.com/abhisek/wordmaster/internal/word"

// Navigator pairs a view with a current index. When the view is non-empty
// the index is always in [0, len-1]; when it is empty the index is 0 and no
// element is displayed.
//
// Cursoring is index-based, not identity-based: replacing the view with one
// where an element before the cursor was removed leaves the index unchanged,
// now pointing at a different entity. That is the documented contract, not a
// defect; callers wanting identity stability re-seek by id themselves.
type Navigator struct {
	view  []word.Word
	index int
}

// New creates a navigator over the given view, positioned at the start.
func New(view []word.Word) *Navigator {
	return &Navigator{view: view}
}

// Reset replaces the view and moves the cursor to the start.
func (n *Navigator) Reset(view []word.Word) {
	n.view = view
	n.index = 0
}

// Next advances the cursor. At the last position it is a no-op.
func (n *Navigator) Next() {
	if n.index < len(n.view)-1 {
		n.index++
	}
}

// Previous moves the cursor back. At the first position it is a no-op.
func (n *Navigator) Previous() {
	if n.index > 0 {
		n.index--
	}
}

// CanNext reports whether Next would move the cursor. Callers use this to
// disable the forward affordance at the end of the view.
func (n *Navigator) CanNext() bool {
	return n.index < len(n.view)-1
}

// CanPrevious reports whether Previous would move the cursor.
func (n *Navigator) CanPrevious() bool {
	return n.index > 0
}

// OnViewChange swaps in a view that may have lost elements, clamping the
// cursor against the new length: min(index, len-1), or 0 when empty. The
// clamp is computed from the new view only, never the old length.
func (n *Navigator) OnViewChange(view []word.Word) {
	n.view = view
	if len(view) == 0 {
		n.index = 0
		return
	}
	if n.index > len(view)-1 {
		n.index = len(view) - 1
	}
}

// SetCurrent replaces the word under the cursor in place, keeping the
// cursor where it is. No-op on an empty view. Used for optimistic status
// updates to the displayed card.
func (n *Navigator) SetCurrent(w word.Word) {
	if len(n.view) == 0 {
		return
	}
	n.view[n.index] = w
}

// Current returns the word under the cursor, or ok=false for an empty view.
func (n *Navigator) Current() (word.Word, bool) {
	if len(n.view) == 0 {
		return word.Word{}, false
	}
	return n.view[n.index], true
}

// Index returns the cursor position.
func (n *Navigator) Index() int {
	return n.index
}

// Len returns the view length.
func (n *Navigator) Len() int {
	return len(n.view)
}

// View returns the current view. Callers must not mutate it.
func (n *Navigator) View() []word.Word {
	return n.view
}
