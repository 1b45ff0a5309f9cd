package selector

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/MartinPratoussy/oitools/oifits"
)

// Config is the serializable description of a Selector, the YAML-facing
// counterpart to the in-memory Selector a caller would otherwise have to
// build by hand. Compare overlay.Overlay in the teacher package: both are a
// declarative transformation/filter description loaded from a file and
// resolved against already-parsed documents.
type Config struct {
	Targets          []string        `yaml:"targets,omitempty"`
	InstrumentModes  []string        `yaml:"instrumentModes,omitempty"`
	Nights           []int           `yaml:"nights,omitempty"`
	Baselines        [][]string      `yaml:"baselines,omitempty"`
	MJDRanges        []rangeConfig   `yaml:"mjdRanges,omitempty"`
	WavelengthRanges []rangeConfig   `yaml:"wavelengthRanges,omitempty"`
}

type rangeConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// LoadConfig reads and parses a YAML selector-config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("selector: failed to read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("selector: failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses raw YAML selector-config bytes, independent of where
// they came from (a file, as in LoadConfig, or an inline string such as the
// MCP server's selector_config input).
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("selector: failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Build resolves a Config into a Selector against collection, looking up
// named targets by name in the rows of the collection's OI_TARGET tables.
// Target names that don't match anything in the collection
// are silently dropped from the resulting Selector.Targets, the same "best
// effort, no hard failure" posture the merger itself takes toward
// unresolved references (see oierrors.MissingReferenceError).
func (c *Config) Build(collection *oifits.OIFitsCollection) *Selector {
	sel := &Selector{
		InstrumentModes: c.InstrumentModes,
		Nights:          c.Nights,
	}

	if len(c.Targets) > 0 {
		wanted := make(map[string]bool, len(c.Targets))
		for _, name := range c.Targets {
			wanted[name] = true
		}
		seen := make(map[*oifits.Target]bool)
		for _, f := range collection.Files {
			if f.Target == nil {
				continue
			}
			for _, row := range f.Target.Rows {
				if row.Target != nil && wanted[row.Target.Name] && !seen[row.Target] {
					seen[row.Target] = true
					sel.Targets = append(sel.Targets, row.Target)
				}
			}
		}
	}

	for _, b := range c.Baselines {
		sel.Baselines = append(sel.Baselines, BaselineSpec{Stations: b})
	}
	for _, r := range c.MJDRanges {
		sel.MJDRanges = append(sel.MJDRanges, oifits.Range{Lo: r.Lo, Hi: r.Hi})
	}
	for _, r := range c.WavelengthRanges {
		sel.WavelengthRanges = append(sel.WavelengthRanges, oifits.Range{Lo: r.Lo, Hi: r.Hi})
	}

	return sel
}
