package merger

import "github.com/MartinPratoussy/oitools/oifits"

// dedupeCorrs implements the OI_CORR half of P5 MetadataDeduper. Only runs
// when the output is V2. Unlike wavelength/array, correlation tables are
// never deduplicated by content: a name collision is always resolved by
// suffixing, and the table is always copied.
func dedupeCorrs(c *context) {
	if c.output.Standard != oifits.V2 {
		return
	}

	taken := make(map[string]bool, c.usedCorrs.Len())
	for _, src := range c.usedCorrs.Items() {
		name := resolveNameCollision(src.CorrName, taken)
		if name != src.CorrName {
			c.report.addRename("corr", src.CorrName, name)
			c.warnings.Add(newNameCollisionWarning("corr", src.CorrName, name))
		}
		taken[name] = true

		cp := src.DeepCopy()
		cp.CorrName = name
		c.output.AddCorr(cp)
		c.mapOICorrs[src] = cp
	}
}

// dedupeInspols passes OI_INSPOL through with the same no-dedup,
// always-suffix collision handling as OI_CORR, the Open Question resolution
// recorded in oifits.OIInspol's doc comment and DESIGN.md. Only runs when the
// output is V2.
func dedupeInspols(c *context) {
	if c.output.Standard != oifits.V2 {
		return
	}

	taken := make(map[string]bool, c.usedInspols.Len())
	for _, src := range c.usedInspols.Items() {
		name := resolveNameCollision(src.InsName, taken)
		if name != src.InsName {
			c.report.addRename("inspol", src.InsName, name)
			c.warnings.Add(newNameCollisionWarning("inspol", src.InsName, name))
		}
		taken[name] = true

		cp := src.DeepCopy()
		cp.InsName = name
		c.output.AddInspol(cp)
		c.mapOIInspols[src] = cp
	}
}
