package oifits

// CorrRow is one row of an OI_CORR correlation table.
type CorrRow struct {
	Index1 int
	Index2 int
	Corr   float64
}

// OICorr is a single OIFITS v2 OI_CORR table, keyed by CORRNAME. Identity
// (the *OICorr pointer) is what the merger keys maps on. Unlike
// OI_WAVELENGTH and OI_ARRAY, OI_CORR tables are never deduplicated by
// content in this design.
type OICorr struct {
	CorrName string
	Rows     []CorrRow
}

// NewOICorr builds an OICorr from its rows.
func NewOICorr(corrName string, rows []CorrRow) *OICorr {
	return &OICorr{CorrName: corrName, Rows: rows}
}

// DeepCopy returns an independent copy suitable for mutation.
func (c *OICorr) DeepCopy() *OICorr {
	return &OICorr{CorrName: c.CorrName, Rows: append([]CorrRow(nil), c.Rows...)}
}
