package oifits

// Standard identifies the OIFITS version a file or keyword schema follows.
type Standard int

const (
	// V1 is OIFITS version 1.
	V1 Standard = iota + 1
	// V2 is OIFITS version 2.
	V2
)

// String renders the standard the way it appears in the CONTENT keyword.
func (s Standard) String() string {
	switch s {
	case V1:
		return "OIFITS1"
	case V2:
		return "OIFITS2"
	default:
		return "UNKNOWN"
	}
}

// Max returns the higher of two standards, per the "output version = max of
// inputs" rule. A zero value loses to any valid standard.
func Max(a, b Standard) Standard {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// Short is a 16-bit signed integer, the width OIFITS uses for compact local
// identifiers (target IDs) and station-index entries.
type Short = int16

// UndefinedShort is the sentinel value marking a row that has been filtered
// out of a target-ID or station-index mapping. Historically FITS tools use
// the type's minimum value for this, the same convention Short.MIN_VALUE
// serves in a Java implementation.
const UndefinedShort Short = -1 << 15

// Undefined is the literal sentinel string used for primary-header keywords
// that no source file supplied a value for.
const Undefined = "UNDEFINED"

// ValueMulti is the literal sentinel string used for primary-header keywords
// where source files disagree: "MULTIPLE" source values collapse to one
// output value that signals the disagreement instead of silently picking one.
const ValueMulti = "MULTIPLE"
