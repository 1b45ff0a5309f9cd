package selector

import "github.com/MartinPratoussy/oitools/oifits"

// BaselineSpec names a baseline (2-station) or closure (3-station) by its
// station names, in the order they should match a data table's station-index
// rows. Order matters: an OI_T3 closure triangle (A0, B2, C1) is a different
// identity than (B2, A0, C1) even though the set of stations is the same.
type BaselineSpec struct {
	Stations []string
}

// Selector describes the user-facing criteria a merge should apply. A zero
// value (or nil field) for any criterion means "no filter on that axis":
// everything passes.
type Selector struct {
	// Targets restricts the merge to these logical targets. Nil/empty means
	// every target present across the collection is kept.
	Targets []*oifits.Target

	// InstrumentModes restricts data tables to these INSNAME values
	// (case-insensitively). Nil/empty means every instrument mode is kept.
	InstrumentModes []string

	// Nights restricts the merge to these night ids. Nil/empty means every
	// night is kept.
	Nights []int

	// Baselines restricts data rows to these station combinations. Nil/empty
	// means no baseline filter is applied at all (distinct from "baselines
	// configured but none match", which drops the affected tables).
	Baselines []BaselineSpec

	// MJDRanges restricts data rows to these MJD intervals. Nil/empty means
	// no MJD filter is applied.
	MJDRanges oifits.Ranges

	// WavelengthRanges restricts OI_WAVELENGTH channels (and, transitively,
	// the data tables that reference them) to these spectral intervals.
	// Nil/empty means no wavelength filter is applied.
	WavelengthRanges oifits.Ranges
}
