package oifits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWavelengthByName(t *testing.T) {
	f := NewOIFitsFile(V2)
	w := NewOIWavelength("GRAVITY", []float64{2.0}, []float64{0.01})
	f.AddWavelength(w)

	got, ok := f.WavelengthByName("GRAVITY")
	assert.True(t, ok)
	assert.Same(t, w, got)

	_, ok = f.WavelengthByName("MISSING")
	assert.False(t, ok)
}

func TestArrayByName(t *testing.T) {
	f := NewOIFitsFile(V2)
	a := NewOIArray("VLTI", nil)
	f.AddArray(a)

	got, ok := f.ArrayByName("VLTI")
	assert.True(t, ok)
	assert.Same(t, a, got)

	_, ok = f.ArrayByName("MISSING")
	assert.False(t, ok)
}

func TestCorrAndInspolByName(t *testing.T) {
	f := NewOIFitsFile(V2)
	c := &OICorr{CorrName: "CORR1"}
	p := &OIInspol{InsName: "POL1"}
	f.AddCorr(c)
	f.AddInspol(p)

	gotC, ok := f.CorrByName("CORR1")
	assert.True(t, ok)
	assert.Same(t, c, gotC)

	gotP, ok := f.InspolByName("POL1")
	assert.True(t, ok)
	assert.Same(t, p, gotP)

	_, ok = f.CorrByName("MISSING")
	assert.False(t, ok)
	_, ok = f.InspolByName("MISSING")
	assert.False(t, ok)
}

func TestAllData(t *testing.T) {
	f := NewOIFitsFile(V1)
	d1 := NewDataTable(KindVis2, "A", "B", "")
	d2 := NewDataTable(KindT3, "A", "B", "")
	f.AddData(d1)
	f.AddData(d2)

	assert.Equal(t, []*DataTable{d1, d2}, f.AllData())
}

func TestCollectionEmpty(t *testing.T) {
	var nilCollection *OIFitsCollection
	assert.True(t, nilCollection.Empty())

	empty := NewOIFitsCollection()
	assert.True(t, empty.Empty())

	nonEmpty := NewOIFitsCollection(NewOIFitsFile(V1))
	assert.False(t, nonEmpty.Empty())
}
