package oifits

import "github.com/MartinPratoussy/oitools/internal/bitset"

// DataKind identifies which OIFITS measurement table a DataTable represents.
// The merger treats every kind identically (it only touches the common
// reference/filter attributes modeled below); DataKind exists so a single Go
// type can still stand in for "OI_VIS, OI_VIS2, OI_T3, OI_FLUX, several
// concrete measurement types" the way spec.md describes the data model,
// without forcing four near-identical structs. FITS-level column fidelity
// (which named columns each kind actually carries) is the FITS I/O layer's
// concern, out of scope here.
type DataKind int

const (
	KindVis DataKind = iota
	KindVis2
	KindT3
	KindFlux
)

func (k DataKind) String() string {
	switch k {
	case KindVis:
		return "OI_VIS"
	case KindVis2:
		return "OI_VIS2"
	case KindT3:
		return "OI_T3"
	case KindFlux:
		return "OI_FLUX"
	default:
		return "OI_DATA"
	}
}

// DataTable is a single OIFITS measurement table: a row for every
// observation, each referencing one OI_WAVELENGTH, one OI_ARRAY, and
// optionally one OI_CORR.
//
// Values and Flags are channel-indexed: Values[i] and Flags[i] each have
// one entry per spectral channel of the wavelength table the row references,
// i.e. len(Values[i]) == Wavelength().RowCount() for every row i.
type DataTable struct {
	Kind DataKind

	InsName  string
	ArrName  string
	CorrName string // "" means no correlation table referenced

	wavelength *OIWavelength
	array      *OIArray
	corr       *OICorr

	TargetID []Short
	NightID  []int
	MJD      []float64
	StaIndex []*StaIndexArray

	Values [][]float64
	Flags  [][]bool
}

// NewDataTable builds an empty DataTable of the given kind.
func NewDataTable(kind DataKind, insName, arrName, corrName string) *DataTable {
	return &DataTable{Kind: kind, InsName: insName, ArrName: arrName, CorrName: corrName}
}

func (d *DataTable) Wavelength() *OIWavelength    { return d.wavelength }
func (d *DataTable) SetWavelength(w *OIWavelength) { d.wavelength = w }
func (d *DataTable) Array() *OIArray               { return d.array }
func (d *DataTable) SetArray(a *OIArray)            { d.array = a }
func (d *DataTable) Corr() *OICorr                  { return d.corr }
func (d *DataTable) SetCorr(c *OICorr)              { d.corr = c }

// RowCount returns the number of observation rows.
func (d *DataTable) RowCount() int {
	return len(d.TargetID)
}

// AddRow appends one observation row.
func (d *DataTable) AddRow(targetID Short, nightID int, mjd float64, sta *StaIndexArray, values []float64, flags []bool) {
	d.TargetID = append(d.TargetID, targetID)
	d.NightID = append(d.NightID, nightID)
	d.MJD = append(d.MJD, mjd)
	d.StaIndex = append(d.StaIndex, sta)
	d.Values = append(d.Values, values)
	d.Flags = append(d.Flags, flags)
}

// HasSingleNight reports whether every row shares the same night id. When
// true, no per-row night filtering can ever be required: either the whole
// table's single night passes the selector or the whole table doesn't.
func (d *DataTable) HasSingleNight() bool {
	if len(d.NightID) == 0 {
		return true
	}
	first := d.NightID[0]
	for _, n := range d.NightID[1:] {
		if n != first {
			return false
		}
	}
	return true
}

// DistinctTargetIDs returns the distinct local target ids present, in first-
// seen order.
func (d *DataTable) DistinctTargetIDs() []Short {
	seen := make(map[Short]bool, len(d.TargetID))
	var out []Short
	for _, id := range d.TargetID {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// DistinctNightIDs returns the distinct night ids present, in first-seen order.
func (d *DataTable) DistinctNightIDs() []int {
	seen := make(map[int]bool, len(d.NightID))
	var out []int
	for _, id := range d.NightID {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// DistinctMJDs returns the distinct MJD values present, in first-seen order.
func (d *DataTable) DistinctMJDs() []float64 {
	seen := make(map[float64]bool, len(d.MJD))
	var out []float64
	for _, v := range d.MJD {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// DistinctStaIndexes returns the distinct station-index identities present,
// compared by pointer, in first-seen order.
func (d *DataTable) DistinctStaIndexes() []*StaIndexArray {
	seen := make(map[*StaIndexArray]bool, len(d.StaIndex))
	var out []*StaIndexArray
	for _, sa := range d.StaIndex {
		if !seen[sa] {
			seen[sa] = true
			out = append(out, sa)
		}
	}
	return out
}

// DeepCopy returns an independent copy suitable for mutation: row-mask and
// channel-mask resizing, name rewriting, target-id remapping. Station-index
// pointers are shared (identity is the point), wavelength/array/corr
// references are shared until the merger rewrites them explicitly.
func (d *DataTable) DeepCopy() *DataTable {
	out := &DataTable{
		Kind:       d.Kind,
		InsName:    d.InsName,
		ArrName:    d.ArrName,
		CorrName:   d.CorrName,
		wavelength: d.wavelength,
		array:      d.array,
		corr:       d.corr,
		TargetID:   append([]Short(nil), d.TargetID...),
		NightID:    append([]int(nil), d.NightID...),
		MJD:        append([]float64(nil), d.MJD...),
		StaIndex:   append([]*StaIndexArray(nil), d.StaIndex...),
	}
	out.Values = make([][]float64, len(d.Values))
	for i, row := range d.Values {
		out.Values[i] = append([]float64(nil), row...)
	}
	out.Flags = make([][]bool, len(d.Flags))
	for i, row := range d.Flags {
		out.Flags[i] = append([]bool(nil), row...)
	}
	return out
}

// ResizeRows shrinks every row-indexed column to the rows where keep is set,
// preserving order. len(keep) must equal RowCount().
func (d *DataTable) ResizeRows(keep *bitset.BitSet) {
	n := keep.Cardinality()
	targetID := make([]Short, 0, n)
	nightID := make([]int, 0, n)
	mjd := make([]float64, 0, n)
	sta := make([]*StaIndexArray, 0, n)
	values := make([][]float64, 0, n)
	flags := make([][]bool, 0, n)
	for i := 0; i < keep.Len(); i++ {
		if !keep.Get(i) {
			continue
		}
		targetID = append(targetID, d.TargetID[i])
		nightID = append(nightID, d.NightID[i])
		mjd = append(mjd, d.MJD[i])
		sta = append(sta, d.StaIndex[i])
		values = append(values, d.Values[i])
		flags = append(flags, d.Flags[i])
	}
	d.TargetID, d.NightID, d.MJD, d.StaIndex, d.Values, d.Flags = targetID, nightID, mjd, sta, values, flags
}

// ResizeChannels shrinks every row's channel-indexed columns (Values, Flags)
// to the channels where keep is set, the same mask across every row. This is
// how a wavelength-range filter on the referenced OI_WAVELENGTH propagates
// into the data table's own columns.
func (d *DataTable) ResizeChannels(keep *bitset.BitSet) {
	for i := range d.Values {
		d.Values[i] = filterFloats(d.Values[i], keep)
		d.Flags[i] = filterBools(d.Flags[i], keep)
	}
}

func filterFloats(row []float64, keep *bitset.BitSet) []float64 {
	out := make([]float64, 0, keep.Cardinality())
	for i := 0; i < keep.Len() && i < len(row); i++ {
		if keep.Get(i) {
			out = append(out, row[i])
		}
	}
	return out
}

func filterBools(row []bool, keep *bitset.BitSet) []bool {
	out := make([]bool, 0, keep.Cardinality())
	for i := 0; i < keep.Len() && i < len(row); i++ {
		if keep.Get(i) {
			out = append(out, row[i])
		}
	}
	return out
}
