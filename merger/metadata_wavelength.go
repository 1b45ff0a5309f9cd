package merger

import (
	"fmt"

	"github.com/MartinPratoussy/oitools/internal/bitset"
	"github.com/MartinPratoussy/oitools/oifits"
)

// dedupeWavelengths implements the OI_WAVELENGTH half of P5 MetadataDeduper:
// name-collision resolution with strict-content reuse, deep-copy, and
// wavelength-range row filtering.
func dedupeWavelengths(c *context) {
	byName := make(map[string]*oifits.OIWavelength, c.usedWavelengths.Len())
	ranges := c.selResult.WavelengthRanges

	for _, src := range c.usedWavelengths.Items() {
		name, reused := resolveWavelengthCollision(src, byName)
		if reused != nil {
			c.mapOIWavelengths[src] = reused
			c.maskOIWavelengths[src] = nil
			c.report.addDedup("wavelength", name)
			c.warnings.Add(newDedupWarning("wavelength", name))
			continue
		}
		if name != src.InsName {
			c.report.addRename("wavelength", src.InsName, name)
			c.warnings.Add(newNameCollisionWarning("wavelength", src.InsName, name))
		}

		cp := src.DeepCopy()
		cp.InsName = name

		var mask *bitset.BitSet
		if len(ranges) > 0 {
			matchings := ranges.GetMatchingSelected(cp.InstrumentMode.WavelengthRange)
			if len(matchings) == 0 {
				continue // entirely outside selection, no mapping entry
			}
			n := cp.RowCount()
			b := bitset.New(n)
			for i := 0; i < n; i++ {
				if matchings.Contains(cp.EffWave[i]) {
					b.Set(i)
				}
			}
			switch {
			case b.Cardinality() == 0:
				continue
			case b.All():
				// every row kept, no mask retained
			default:
				mask = b
				cp.ResizeByMask(b.Get, n)
			}
		}

		byName[name] = cp
		c.output.AddWavelength(cp)
		c.mapOIWavelengths[src] = cp
		c.maskOIWavelengths[src] = mask
	}
}

// resolveWavelengthCollision walks src.InsName, src.InsName_1, ... until it
// finds either a free name or an existing table that is strict-equal to src
// (in which case that existing table is returned for reuse).
func resolveWavelengthCollision(src *oifits.OIWavelength, byName map[string]*oifits.OIWavelength) (string, *oifits.OIWavelength) {
	name := src.InsName
	for k := 0; ; k++ {
		if k > 0 {
			name = fmt.Sprintf("%s_%d", src.InsName, k)
		}
		existing, ok := byName[name]
		if !ok {
			return name, nil
		}
		if oifits.WavelengthStrictEqual(existing, src) {
			return name, existing
		}
	}
}
