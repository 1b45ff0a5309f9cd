package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

func newTestWavelength(insName string, effWave []float64) *oifits.OIWavelength {
	effBand := make([]float64, len(effWave))
	for i := range effBand {
		effBand[i] = 1e-8
	}
	return oifits.NewOIWavelength(insName, effWave, effBand)
}

func newTestArray(arrName string, staNames ...string) *oifits.OIArray {
	stations := make([]oifits.StationEntry, len(staNames))
	for i, name := range staNames {
		stations[i] = oifits.StationEntry{StaIndex: oifits.Short(i + 1), StaName: name}
	}
	return oifits.NewOIArray(arrName, stations)
}

func newTestVis2(kind oifits.DataKind, insName, arrName string, wl *oifits.OIWavelength, arr *oifits.OIArray) *oifits.DataTable {
	d := oifits.NewDataTable(kind, insName, arrName, "")
	d.SetWavelength(wl)
	d.SetArray(arr)
	return d
}

func addRow(t *testing.T, d *oifits.DataTable, targetID oifits.Short, nightID int, mjd float64, sta *oifits.StaIndexArray) {
	t.Helper()
	n := d.Wavelength().RowCount()
	values := make([]float64, n)
	flags := make([]bool, n)
	d.AddRow(targetID, nightID, mjd, sta, values, flags)
}

// newSingleTargetFile returns an OIFitsFile with a single OI_TARGET row (local
// id 1), for tests that don't exercise target filtering and just need every
// data row's target id to resolve.
func newSingleTargetFile(std oifits.Standard, tm *oifits.TargetManager, name string) *oifits.OIFitsFile {
	f := oifits.NewOIFitsFile(std)
	ot := oifits.NewOITarget()
	ot.Add(tm.Resolve(name, 0, 0))
	f.Target = ot
	return f
}

func TestMergeOneFileIsIdempotentModuloNaming(t *testing.T) {
	tm := oifits.NewTargetManager()
	target := tm.Resolve("Vega", 1.0, 2.0)

	f := oifits.NewOIFitsFile(oifits.V2)
	ot := oifits.NewOITarget()
	ot.Add(target)
	f.Target = ot

	wl := newTestWavelength("INS_A", []float64{1e-6, 1.5e-6})
	arr := newTestArray("ARR_A", "S1", "S2")
	f.AddWavelength(wl)
	f.AddArray(arr)

	d := newTestVis2(oifits.KindVis2, "INS_A", "ARR_A", wl, arr)
	addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
	f.AddData(d)

	result, err := Merge(oifits.NewOIFitsCollection(f))
	require.NoError(t, err)
	out := result.File

	assert.Len(t, out.Wavelengths, 1)
	assert.Equal(t, "INS_A", out.Wavelengths[0].InsName)
	assert.Len(t, out.Arrays, 1)
	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Data[0].RowCount())
	assert.Equal(t, oifits.Short(1), out.Data[0].TargetID[0])
}

func TestMergeScenarioS1_NameCollisionDifferentContent(t *testing.T) {
	tm := oifits.NewTargetManager()

	wl1 := newTestWavelength("INS_A", []float64{1e-6, 1.5e-6, 2e-6})
	arr1 := newTestArray("ARR", "S1", "S2")
	f1 := newSingleTargetFile(oifits.V1, tm, "Vega")
	f1.AddWavelength(wl1)
	f1.AddArray(arr1)
	d1 := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl1, arr1)
	addRow(t, d1, 1, 1, 55000.0, arr1.Canonicalize(1, 2))
	f1.AddData(d1)

	wl2 := newTestWavelength("INS_A", []float64{1e-6, 1.5e-6})
	arr2 := newTestArray("ARR", "S1", "S2")
	f2 := newSingleTargetFile(oifits.V1, tm, "Altair")
	f2.AddWavelength(wl2)
	f2.AddArray(arr2)
	d2 := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl2, arr2)
	addRow(t, d2, 1, 1, 55000.0, arr2.Canonicalize(1, 2))
	f2.AddData(d2)

	result, err := Merge(oifits.NewOIFitsCollection(f1, f2))
	require.NoError(t, err)
	out := result.File

	require.Len(t, out.Wavelengths, 2)
	assert.Equal(t, "INS_A", out.Wavelengths[0].InsName)
	assert.Equal(t, "INS_A_1", out.Wavelengths[1].InsName)

	require.Len(t, out.Data, 2)
	assert.Equal(t, "INS_A", out.Data[0].InsName)
	assert.Equal(t, "INS_A_1", out.Data[1].InsName)

	collisions := result.Warnings.ByCategory(WarnNameCollision)
	require.Len(t, collisions, 1)
	assert.Equal(t, `Wavelength name "INS_A" collided with an existing table, renamed to "INS_A_1"`, collisions[0].Message)
}

func TestMergeScenarioS2_DedupIdenticalWavelengths(t *testing.T) {
	tm := oifits.NewTargetManager()
	mk := func(name string) *oifits.OIFitsFile {
		wl := newTestWavelength("INS_A", []float64{1e-6, 1.5e-6})
		arr := newTestArray("ARR", "S1", "S2")
		f := newSingleTargetFile(oifits.V1, tm, name)
		f.AddWavelength(wl)
		f.AddArray(arr)
		d := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl, arr)
		addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
		f.AddData(d)
		return f
	}
	f1 := mk("Vega")
	f2 := mk("Altair")

	result, err := Merge(oifits.NewOIFitsCollection(f1, f2))
	require.NoError(t, err)
	out := result.File

	require.Len(t, out.Wavelengths, 1)
	require.Len(t, out.Data, 2)
	assert.Equal(t, "INS_A", out.Data[0].InsName)
	assert.Equal(t, "INS_A", out.Data[1].InsName)

	dedups := result.Warnings.ByCategory(WarnDeduplicated)
	require.Len(t, dedups, 2)
	assert.Equal(t, `Wavelength "INS_A" is structurally identical to one already merged, deduplicated`, dedups[0].Message)
	assert.Equal(t, `Array "ARR" is structurally identical to one already merged, deduplicated`, dedups[1].Message)
}

func TestMergeScenarioS3_TargetSelectionRenumbers(t *testing.T) {
	tm := oifits.NewTargetManager()
	a := tm.Resolve("A", 0, 0)
	b := tm.Resolve("B", 1, 1)
	c := tm.Resolve("C", 2, 2)

	f := oifits.NewOIFitsFile(oifits.V1)
	ot := oifits.NewOITarget()
	ot.Add(a)
	ot.Add(b)
	ot.Add(c)
	f.Target = ot

	wl := newTestWavelength("INS_A", []float64{1e-6})
	arr := newTestArray("ARR", "S1", "S2")
	f.AddWavelength(wl)
	f.AddArray(arr)

	d := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl, arr)
	addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
	addRow(t, d, 2, 1, 55000.0, arr.Canonicalize(1, 2))
	addRow(t, d, 3, 1, 55000.0, arr.Canonicalize(1, 2))
	f.AddData(d)

	sel := &selector.Selector{Targets: []*oifits.Target{b}}
	result, err := MergeWithSelector(oifits.NewOIFitsCollection(f), sel)
	require.NoError(t, err)
	out := result.File

	require.Len(t, out.Target.Rows, 1)
	assert.Equal(t, oifits.Short(1), out.Target.Rows[0].TargetID)
	assert.Same(t, b, out.Target.Rows[0].Target)

	require.Len(t, out.Data, 1)
	assert.Equal(t, 1, out.Data[0].RowCount())
	assert.Equal(t, oifits.Short(1), out.Data[0].TargetID[0])
}

func TestMergeScenarioS4_WavelengthRangeFilter(t *testing.T) {
	tm := oifits.NewTargetManager()
	wl := newTestWavelength("INS_A", []float64{1e-6, 1.3e-6, 1.5e-6, 2e-6})
	arr := newTestArray("ARR", "S1", "S2")
	f := newSingleTargetFile(oifits.V1, tm, "Vega")
	f.AddWavelength(wl)
	f.AddArray(arr)
	d := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl, arr)
	addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
	f.AddData(d)

	sel := &selector.Selector{WavelengthRanges: oifits.Ranges{{Lo: 1.2e-6, Hi: 1.6e-6}}}
	result, err := MergeWithSelector(oifits.NewOIFitsCollection(f), sel)
	require.NoError(t, err)
	out := result.File

	require.Len(t, out.Wavelengths, 1)
	assert.Equal(t, []float64{1.3e-6, 1.5e-6}, out.Wavelengths[0].EffWave)
	require.Len(t, out.Data, 1)
	assert.Len(t, out.Data[0].Values[0], 2)
}

func TestMergeScenarioS5_PrimaryHDUAdoptedByReference(t *testing.T) {
	tm := oifits.NewTargetManager()
	f := newSingleTargetFile(oifits.V2, tm, "Vega")
	primary := oifits.NewOIPrimaryHDU()
	primary.SetKeyword("TELESCOP", "VLTI")
	primary.Cards = append(primary.Cards, oifits.HeaderCard{Name: "COMMENT", Value: "test"})
	f.Primary = primary

	wl := newTestWavelength("INS_A", []float64{1e-6})
	arr := newTestArray("ARR", "S1", "S2")
	f.AddWavelength(wl)
	f.AddArray(arr)
	d := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl, arr)
	addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
	f.AddData(d)

	result, err := Merge(oifits.NewOIFitsCollection(f))
	require.NoError(t, err)
	out := result.File

	outPrimary, ok := out.Primary.(*oifits.OIPrimaryHDU)
	require.True(t, ok)
	v, ok := outPrimary.Keyword("TELESCOP")
	require.True(t, ok)
	assert.Equal(t, "VLTI", v)
	require.Len(t, outPrimary.Cards, 1)
	_, hasDate := outPrimary.Keyword("DATE")
	assert.True(t, hasDate)
	assert.NotEmpty(t, outPrimary.HistoryLines())
}

func TestMergeScenarioS6_ValueMultiSentinel(t *testing.T) {
	tm := oifits.NewTargetManager()

	f1 := newSingleTargetFile(oifits.V2, tm, "Vega")
	p1 := oifits.NewOIPrimaryHDU()
	p1.SetKeyword("TELESCOP", "VLTI")
	p1.SetKeyword("ORIGIN", "ESO")
	p1.SetKeyword("INSTRUME", "GRAVITY")
	p1.SetKeyword("OBSERVER", "obs1")
	p1.SetKeyword("OBJECT", "Vega")
	p1.SetKeyword("INSMODE", "HIGH")
	f1.Primary = p1
	wl1 := newTestWavelength("INS_A", []float64{1e-6})
	arr1 := newTestArray("ARR_A", "S1", "S2")
	f1.AddWavelength(wl1)
	f1.AddArray(arr1)
	d1 := newTestVis2(oifits.KindVis2, "INS_A", "ARR_A", wl1, arr1)
	addRow(t, d1, 1, 1, 55000.0, arr1.Canonicalize(1, 2))
	f1.AddData(d1)

	f2 := newSingleTargetFile(oifits.V2, tm, "Vega")
	p2 := oifits.NewOIPrimaryHDU()
	p2.SetKeyword("TELESCOP", "CHARA")
	p2.SetKeyword("ORIGIN", "ESO")
	p2.SetKeyword("INSTRUME", "GRAVITY")
	p2.SetKeyword("OBSERVER", "obs1")
	p2.SetKeyword("OBJECT", "Vega")
	p2.SetKeyword("INSMODE", "HIGH")
	f2.Primary = p2
	wl2 := newTestWavelength("INS_B", []float64{1e-6})
	arr2 := newTestArray("ARR_B", "S1", "S2")
	f2.AddWavelength(wl2)
	f2.AddArray(arr2)
	d2 := newTestVis2(oifits.KindVis2, "INS_B", "ARR_B", wl2, arr2)
	addRow(t, d2, 1, 1, 55000.0, arr2.Canonicalize(1, 2))
	f2.AddData(d2)

	result, err := Merge(oifits.NewOIFitsCollection(f1, f2))
	require.NoError(t, err)
	out := result.File

	outPrimary, ok := out.Primary.(*oifits.OIPrimaryHDU)
	require.True(t, ok)
	v, ok := outPrimary.Keyword("TELESCOP")
	require.True(t, ok)
	assert.Equal(t, oifits.ValueMulti, v)
	origin, _ := outPrimary.Keyword("ORIGIN")
	assert.Equal(t, "ESO", origin)
}

func TestMergeVersionDominance(t *testing.T) {
	f1 := oifits.NewOIFitsFile(oifits.V1)
	f1.Target = oifits.NewOITarget()
	f2 := oifits.NewOIFitsFile(oifits.V2)
	f2.Target = oifits.NewOITarget()

	result, err := Merge(oifits.NewOIFitsCollection(f1, f2))
	require.NoError(t, err)
	assert.Equal(t, oifits.V2, result.File.Standard)
}

func TestMergeInvalidArgumentOnEmptyCollection(t *testing.T) {
	_, err := Merge(oifits.NewOIFitsCollection())
	require.Error(t, err)

	_, err = Merge(nil)
	require.Error(t, err)
}

func TestMergeNoSideEffectsOnSources(t *testing.T) {
	tm := oifits.NewTargetManager()
	wl := newTestWavelength("INS_A", []float64{1e-6, 1.5e-6})
	arr := newTestArray("ARR", "S1", "S2")
	f := newSingleTargetFile(oifits.V1, tm, "Vega")
	f.AddWavelength(wl)
	f.AddArray(arr)
	d := newTestVis2(oifits.KindVis2, "INS_A", "ARR", wl, arr)
	addRow(t, d, 1, 1, 55000.0, arr.Canonicalize(1, 2))
	f.AddData(d)

	originalEffWave := append([]float64(nil), wl.EffWave...)
	originalRowCount := d.RowCount()

	sel := &selector.Selector{WavelengthRanges: oifits.Ranges{{Lo: 1.2e-6, Hi: 1.6e-6}}}
	_, err := MergeWithSelector(oifits.NewOIFitsCollection(f), sel)
	require.NoError(t, err)

	assert.Equal(t, originalEffWave, wl.EffWave)
	assert.Equal(t, originalRowCount, d.RowCount())
}
