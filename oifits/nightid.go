package oifits

// NightIDMatcher decides whether a night-id value is part of a selection.
// A nil/zero-value matcher (Allowed == nil) matches everything.
type NightIDMatcher struct {
	// Allowed holds the set of accepted night ids. A nil map means "match
	// all nights" (no night filtering configured).
	Allowed map[int]bool
}

// NewNightIDMatcher builds a matcher restricted to the given ids. Passing no
// ids produces a matcher that matches every night.
func NewNightIDMatcher(ids ...int) *NightIDMatcher {
	if len(ids) == 0 {
		return &NightIDMatcher{}
	}
	m := &NightIDMatcher{Allowed: make(map[int]bool, len(ids))}
	for _, id := range ids {
		m.Allowed[id] = true
	}
	return m
}

// Match reports whether id is part of the selection.
func (m *NightIDMatcher) Match(id int) bool {
	if m == nil || m.Allowed == nil {
		return true
	}
	return m.Allowed[id]
}

// MatchAll reports whether every id in ids is part of the selection. When
// this is true, no per-row night filtering is needed: the whole table
// already satisfies the night criterion.
func (m *NightIDMatcher) MatchAll(ids []int) bool {
	for _, id := range ids {
		if !m.Match(id) {
			return false
		}
	}
	return true
}
