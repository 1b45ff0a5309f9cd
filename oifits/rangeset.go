package oifits

// Range is a numeric interval. Source material disagreed on whether MJD
// range matching should be point-in-union (closed) or half-open, flagging
// the mismatch against wavelength-range handling as a likely bug (see
// DESIGN.md, "REDESIGN FLAG applied"). This implementation resolves that by
// making every consumer of Range - wavelength ranges, MJD ranges, baseline
// set membership is unrelated and untouched - treat it as half-open [Lo,
// Hi), consistently.
type Range struct {
	Lo float64
	Hi float64
}

// Contains reports whether v falls in [Lo, Hi).
func (r Range) Contains(v float64) bool {
	return v >= r.Lo && v < r.Hi
}

// Intersect returns the overlap of r and other, and whether they overlap at
// all. A zero-width result (Lo == Hi) is reported as no overlap.
func (r Range) Intersect(other Range) (Range, bool) {
	lo := r.Lo
	if other.Lo > lo {
		lo = other.Lo
	}
	hi := r.Hi
	if other.Hi < hi {
		hi = other.Hi
	}
	if lo >= hi {
		return Range{}, false
	}
	return Range{Lo: lo, Hi: hi}, true
}

// Ranges is an ordered set of Range values, e.g. a selector's configured
// wavelength or MJD ranges.
type Ranges []Range

// Contains reports whether v falls within the union of rs.
func (rs Ranges) Contains(v float64) bool {
	for _, r := range rs {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// GetMatchingSelected intersects every range in rs against target and
// returns the non-empty overlaps, in rs order. This is the operation
// MetadataDeduper uses to compute wlRangeMatchings = intersect(selector
// ranges, instrument-mode range): if the result is empty, the wavelength
// table is entirely outside the selection and is skipped.
func (rs Ranges) GetMatchingSelected(target Range) Ranges {
	var out Ranges
	for _, r := range rs {
		if overlap, ok := r.Intersect(target); ok {
			out = append(out, overlap)
		}
	}
	return out
}

// MatchFully reports whether every value in values falls within rs. It
// returns true vacuously for an empty values slice.
func (rs Ranges) MatchFully(values []float64) bool {
	for _, v := range values {
		if !rs.Contains(v) {
			return false
		}
	}
	return true
}

// MatchAny reports whether at least one value in values falls within rs.
func (rs Ranges) MatchAny(values []float64) bool {
	for _, v := range values {
		if rs.Contains(v) {
			return true
		}
	}
	return false
}
