package oifits

// OIFitsFile is an in-memory OIFITS file: a primary HDU, a single OI_TARGET
// table, and ordered lists of OI_WAVELENGTH, OI_ARRAY, OI_CORR, OI_INSPOL and
// OI_DATA tables.
type OIFitsFile struct {
	Standard Standard
	Primary  PrimaryHDU
	Target   *OITarget

	Wavelengths []*OIWavelength
	Arrays      []*OIArray
	Corrs       []*OICorr
	Inspols     []*OIInspol
	Data        []*DataTable
}

// NewOIFitsFile returns an empty file tagged with the given standard. An
// empty file has no Primary HDU set.
func NewOIFitsFile(standard Standard) *OIFitsFile {
	return &OIFitsFile{Standard: standard}
}

// WavelengthByName returns the OI_WAVELENGTH table with the given INSNAME, if any.
func (f *OIFitsFile) WavelengthByName(name string) (*OIWavelength, bool) {
	for _, w := range f.Wavelengths {
		if w.InsName == name {
			return w, true
		}
	}
	return nil, false
}

// ArrayByName returns the OI_ARRAY table with the given ARRNAME, if any.
func (f *OIFitsFile) ArrayByName(name string) (*OIArray, bool) {
	for _, a := range f.Arrays {
		if a.ArrName == name {
			return a, true
		}
	}
	return nil, false
}

// CorrByName returns the OI_CORR table with the given CORRNAME, if any.
func (f *OIFitsFile) CorrByName(name string) (*OICorr, bool) {
	for _, c := range f.Corrs {
		if c.CorrName == name {
			return c, true
		}
	}
	return nil, false
}

// InspolByName returns the OI_INSPOL table with the given INSNAME, if any.
func (f *OIFitsFile) InspolByName(name string) (*OIInspol, bool) {
	for _, p := range f.Inspols {
		if p.InsName == name {
			return p, true
		}
	}
	return nil, false
}

// AddWavelength appends a wavelength table.
func (f *OIFitsFile) AddWavelength(w *OIWavelength) { f.Wavelengths = append(f.Wavelengths, w) }

// AddArray appends an array table.
func (f *OIFitsFile) AddArray(a *OIArray) { f.Arrays = append(f.Arrays, a) }

// AddCorr appends a correlation table.
func (f *OIFitsFile) AddCorr(c *OICorr) { f.Corrs = append(f.Corrs, c) }

// AddInspol appends an inspol table.
func (f *OIFitsFile) AddInspol(p *OIInspol) { f.Inspols = append(f.Inspols, p) }

// AddData appends a data table.
func (f *OIFitsFile) AddData(d *DataTable) { f.Data = append(f.Data, d) }

// AllData returns every data table in the file, across all measurement kinds,
// in insertion order.
func (f *OIFitsFile) AllData() []*DataTable { return f.Data }

// OIFitsCollection is an ordered set of input files to merge. It may be
// empty; see Empty.
type OIFitsCollection struct {
	Files []*OIFitsFile
}

// NewOIFitsCollection builds a collection from one or more files.
func NewOIFitsCollection(files ...*OIFitsFile) *OIFitsCollection {
	return &OIFitsCollection{Files: files}
}

// Empty reports whether the collection carries no files.
func (c *OIFitsCollection) Empty() bool {
	return c == nil || len(c.Files) == 0
}
