package dice

import "iter"

// MaxHistory caps the roll history. Adding a roll past the cap evicts the
// oldest entry.
const MaxHistory = 50

// History is an ordered roll history, newest first. The zero value is an
// empty history.
type History []Roll

// Add prepends a roll and trims the history to MaxHistory entries.
// Insertion order is resolution order: a roll is added when it resolves,
// not when it was requested.
func (h *History) Add(r Roll) {
	rolls := append(History{r}, *h...)
	if len(rolls) > MaxHistory {
		rolls = rolls[:MaxHistory]
	}
	*h = rolls
}

// Filtered returns a lazy, restartable view over the history, newest first,
// keeping rolls of the given kind. KindAll keeps everything. The underlying
// history is not modified.
func (h History) Filtered(kind Kind) iter.Seq[Roll] {
	return func(yield func(Roll) bool) {
		for _, r := range h {
			if kind != KindAll && r.Kind != kind {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// FilteredSlice materializes Filtered into a slice for callers that need
// one, such as the JSON handlers.
func (h History) FilteredSlice(kind Kind) []Roll {
	out := make([]Roll, 0, len(h))
	for r := range h.Filtered(kind) {
		out = append(out, r)
	}
	return out
}
