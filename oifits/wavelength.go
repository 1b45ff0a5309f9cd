package oifits

// InstrumentMode describes the spectral setup an OI_WAVELENGTH table
// implements: the wavelength range its channels span.
type InstrumentMode struct {
	WavelengthRange Range
}

// OIWavelength is a single OIFITS OI_WAVELENGTH table, keyed by INSNAME.
// Identity (the *OIWavelength pointer) is what the merger keys maps on.
type OIWavelength struct {
	InsName        string
	EffWave        []float64
	EffBand        []float64
	InstrumentMode InstrumentMode
}

// NewOIWavelength builds an OIWavelength from parallel EffWave/EffBand
// columns, deriving the instrument mode's wavelength range as [min, max]
// over EffWave, widened to a half-open upper bound so the table's own
// longest channel is included under the half-open Range convention.
func NewOIWavelength(insName string, effWave, effBand []float64) *OIWavelength {
	w := &OIWavelength{InsName: insName, EffWave: effWave, EffBand: effBand}
	w.InstrumentMode = InstrumentMode{WavelengthRange: wavelengthExtent(effWave)}
	return w
}

func wavelengthExtent(effWave []float64) Range {
	if len(effWave) == 0 {
		return Range{}
	}
	lo, hi := effWave[0], effWave[0]
	for _, v := range effWave[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// Widen the upper bound by an epsilon so the half-open Range convention
	// includes the table's own maximum channel.
	const epsilon = 1e-15
	return Range{Lo: lo, Hi: hi + epsilon}
}

// RowCount returns the number of spectral channels.
func (w *OIWavelength) RowCount() int {
	return len(w.EffWave)
}

// DeepCopy returns an independent copy suitable for mutation (name
// reassignment, row-mask resizing) without touching the source table.
func (w *OIWavelength) DeepCopy() *OIWavelength {
	out := &OIWavelength{
		InsName:        w.InsName,
		EffWave:        append([]float64(nil), w.EffWave...),
		EffBand:        append([]float64(nil), w.EffBand...),
		InstrumentMode: w.InstrumentMode,
	}
	return out
}

// ResizeByMask shrinks EffWave/EffBand to the rows selected by mask, in
// ascending index order, and recomputes the instrument mode's wavelength
// range over the retained channels.
func (w *OIWavelength) ResizeByMask(keep func(i int) bool, n int) {
	newWave := make([]float64, 0, len(w.EffWave))
	newBand := make([]float64, 0, len(w.EffBand))
	for i := 0; i < n; i++ {
		if keep(i) {
			newWave = append(newWave, w.EffWave[i])
			if i < len(w.EffBand) {
				newBand = append(newBand, w.EffBand[i])
			}
		}
	}
	w.EffWave = newWave
	w.EffBand = newBand
	w.InstrumentMode = InstrumentMode{WavelengthRange: wavelengthExtent(w.EffWave)}
}

// WavelengthStrictEqual is the strict content comparator for two
// OI_WAVELENGTH tables: equal iff their EffWave/EffBand columns are
// identical, element for element. Names are deliberately excluded: by the
// time the comparator runs, the candidate's name is still being resolved
// against whatever is already occupying that name in the output.
func WavelengthStrictEqual(a, b *OIWavelength) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return floatSliceEqual(a.EffWave, b.EffWave) && floatSliceEqual(a.EffBand, b.EffBand)
}

func floatSliceEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
