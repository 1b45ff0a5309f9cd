package oifits

// StationEntry is one row of an OI_ARRAY table: a station's compact index
// and its name.
type StationEntry struct {
	StaIndex Short
	StaName  string
}

// OIArray is a single OIFITS OI_ARRAY table, keyed by ARRNAME. Identity (the
// *OIArray pointer) is what the merger keys maps on.
type OIArray struct {
	ArrName  string
	Stations []StationEntry

	canon *staIndexCanonicalizer
}

// NewOIArray builds an OIArray from its station list and prepares the
// per-array station-index canonicalizer: every StaIndexArray built from this
// array's stations with the same member indexes, in the same order, is the
// same pointer. That is what lets the merger compare baselines by identity
// instead of by slice contents (see StaIndexArray).
func NewOIArray(arrName string, stations []StationEntry) *OIArray {
	return &OIArray{ArrName: arrName, Stations: stations, canon: newStaIndexCanonicalizer()}
}

// DeepCopy returns an independent copy suitable for mutation.
func (a *OIArray) DeepCopy() *OIArray {
	out := NewOIArray(a.ArrName, append([]StationEntry(nil), a.Stations...))
	return out
}

// Canonicalize returns the shared *StaIndexArray for the given station index
// combination, creating one on first sight. Two calls with equal (same
// length, same order) indexes return the same pointer.
func (a *OIArray) Canonicalize(indexes ...Short) *StaIndexArray {
	if a.canon == nil {
		a.canon = newStaIndexCanonicalizer()
	}
	return a.canon.get(indexes)
}

// ArrayStrictEqual is the strict content comparator for two OI_ARRAY
// tables: equal iff their station lists match element for element. Names
// are excluded for the same reason WavelengthStrictEqual excludes them.
func ArrayStrictEqual(a, b *OIArray) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.Stations) != len(b.Stations) {
		return false
	}
	for i := range a.Stations {
		if a.Stations[i] != b.Stations[i] {
			return false
		}
	}
	return true
}

// StaIndexArray is a station-index tuple (a baseline, for 2-station data, or
// a closure triangle, for 3-station data). It is compared by pointer
// identity, never by contents: two logically-equal tuples are only "the
// same" to the merger if they came from the same canonicalizer call, which
// is what OIArray.Canonicalize guarantees for station indexes drawn from a
// single array.
type StaIndexArray struct {
	Indexes []Short
}

type staIndexCanonicalizer struct {
	byKey map[string]*StaIndexArray
}

func newStaIndexCanonicalizer() *staIndexCanonicalizer {
	return &staIndexCanonicalizer{byKey: make(map[string]*StaIndexArray)}
}

func (c *staIndexCanonicalizer) get(indexes []Short) *StaIndexArray {
	key := staIndexKey(indexes)
	if existing, ok := c.byKey[key]; ok {
		return existing
	}
	sa := &StaIndexArray{Indexes: append([]Short(nil), indexes...)}
	c.byKey[key] = sa
	return sa
}

func staIndexKey(indexes []Short) string {
	// A fixed-width encoding avoids ambiguity between e.g. [1, 23] and
	// [12, 3] that a naive separator-free join would introduce.
	buf := make([]byte, 0, len(indexes)*6)
	for _, idx := range indexes {
		buf = append(buf, byte(idx>>8), byte(idx), ',')
	}
	return string(buf)
}
