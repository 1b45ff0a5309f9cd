package oifits

// InspolRow is one row of an OI_INSPOL polarization-metadata table.
type InspolRow struct {
	TargetID Short
	JXX      complex128
	JYY      complex128
}

// OIInspol is a single OIFITS v2 OI_INSPOL table, keyed by INSNAME (it
// shares the instrument-mode namespace with OI_WAVELENGTH but is tracked as
// its own table type). The source design marks OI_INSPOL as a TODO and
// drops it; this implementation resolves that Open Question by passing
// OI_INSPOL through with the same name-collision handling as OI_CORR: no
// content deduplication, names always incremented on collision. See
// DESIGN.md.
type OIInspol struct {
	InsName string
	Rows    []InspolRow
}

// NewOIInspol builds an OIInspol from its rows.
func NewOIInspol(insName string, rows []InspolRow) *OIInspol {
	return &OIInspol{InsName: insName, Rows: rows}
}

// DeepCopy returns an independent copy suitable for mutation.
func (p *OIInspol) DeepCopy() *OIInspol {
	return &OIInspol{InsName: p.InsName, Rows: append([]InspolRow(nil), p.Rows...)}
}
