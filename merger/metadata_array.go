package merger

import (
	"fmt"

	"github.com/MartinPratoussy/oitools/oifits"
)

// dedupeArrays implements the OI_ARRAY half of P5 MetadataDeduper: the same
// name-collision/strict-equal-reuse scaffolding as wavelength, without the
// range filter.
func dedupeArrays(c *context) {
	byName := make(map[string]*oifits.OIArray, c.usedArrays.Len())

	for _, src := range c.usedArrays.Items() {
		name, reused := resolveArrayCollision(src, byName)
		if reused != nil {
			c.mapOIArrays[src] = reused
			c.report.addDedup("array", name)
			c.warnings.Add(newDedupWarning("array", name))
			continue
		}
		if name != src.ArrName {
			c.report.addRename("array", src.ArrName, name)
			c.warnings.Add(newNameCollisionWarning("array", src.ArrName, name))
		}

		cp := src.DeepCopy()
		cp.ArrName = name

		byName[name] = cp
		c.output.AddArray(cp)
		c.mapOIArrays[src] = cp
	}
}

func resolveArrayCollision(src *oifits.OIArray, byName map[string]*oifits.OIArray) (string, *oifits.OIArray) {
	name := src.ArrName
	for k := 0; ; k++ {
		if k > 0 {
			name = fmt.Sprintf("%s_%d", src.ArrName, k)
		}
		existing, ok := byName[name]
		if !ok {
			return name, nil
		}
		if oifits.ArrayStrictEqual(existing, src) {
			return name, existing
		}
	}
}
