package selector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinPratoussy/oitools/oifits"
)

const sampleConfigYAML = `
targets:
  - Vega
instrumentModes:
  - GRAVITY_SC
nights:
  - 1
  - 2
baselines:
  - [A0, B1]
mjdRanges:
  - lo: 59000
    hi: 59001
wavelengthRanges:
  - lo: 2.0
    hi: 2.4
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "selector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfigYAML), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Vega"}, cfg.Targets)
	assert.Equal(t, []string{"GRAVITY_SC"}, cfg.InstrumentModes)
	assert.Equal(t, []int{1, 2}, cfg.Nights)
	assert.Equal(t, [][]string{{"A0", "B1"}}, cfg.Baselines)
	assert.Equal(t, []rangeConfig{{Lo: 59000, Hi: 59001}}, cfg.MJDRanges)
	assert.Equal(t, []rangeConfig{{Lo: 2.0, Hi: 2.4}}, cfg.WavelengthRanges)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("targets: [unterminated"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigBuildResolvesKnownTargetsOnly(t *testing.T) {
	tm := oifits.NewTargetManager()
	vega := tm.Resolve("Vega", 0, 0)
	tm.Resolve("Altair", 0, 0)

	f := oifits.NewOIFitsFile(oifits.V1)
	ot := oifits.NewOITarget()
	ot.Add(vega)
	f.Target = ot
	collection := oifits.NewOIFitsCollection(f)

	cfg := &Config{Targets: []string{"Vega", "Sirius"}}
	sel := cfg.Build(collection)

	assert.Equal(t, []*oifits.Target{vega}, sel.Targets, "unmatched target names are silently dropped")
}

func TestConfigBuildCarriesThroughFields(t *testing.T) {
	f := oifits.NewOIFitsFile(oifits.V1)
	collection := oifits.NewOIFitsCollection(f)

	cfg := &Config{
		InstrumentModes: []string{"GRAVITY_SC"},
		Nights:          []int{1},
		Baselines:       [][]string{{"A0", "B1"}, {"B1", "C2"}},
		MJDRanges:       []rangeConfig{{Lo: 1, Hi: 2}},
		WavelengthRanges: []rangeConfig{{Lo: 2, Hi: 3}},
	}
	sel := cfg.Build(collection)

	assert.Equal(t, []string{"GRAVITY_SC"}, sel.InstrumentModes)
	assert.Equal(t, []int{1}, sel.Nights)
	assert.Equal(t, []BaselineSpec{{Stations: []string{"A0", "B1"}}, {Stations: []string{"B1", "C2"}}}, sel.Baselines)
	assert.Equal(t, oifits.Ranges{{Lo: 1, Hi: 2}}, sel.MJDRanges)
	assert.Equal(t, oifits.Ranges{{Lo: 2, Hi: 3}}, sel.WavelengthRanges)
}

func TestConfigBuildNoTargetsLeavesNilSelectorTargets(t *testing.T) {
	f := oifits.NewOIFitsFile(oifits.V1)
	collection := oifits.NewOIFitsCollection(f)

	cfg := &Config{}
	sel := cfg.Build(collection)

	assert.Nil(t, sel.Targets)
}
