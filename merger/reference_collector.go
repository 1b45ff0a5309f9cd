package merger

import (
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// collectReferences implements P2 ReferenceCollector: walk the data-table
// working set and populate the insertion-ordered "used" sets every later
// phase consumes. A data table only references its own OI_WAVELENGTH,
// OI_ARRAY, and (optionally) OI_CORR by identity; the primary HDU and
// OI_TARGET table it traces back to belong to whichever source file
// contributed it, so those two sets are populated via a owning-file lookup
// built once over selResult.SortedOIFitsFiles.
func collectReferences(c *context) {
	if c.selResult == nil {
		return
	}

	owner := ownerIndex(c.selResult.SortedOIFitsFiles)
	c.owner = owner

	for _, d := range c.selResult.SortedOIDatas {
		if f, ok := owner[d]; ok {
			if f.Primary != nil {
				if p, ok := f.Primary.(*oifits.OIPrimaryHDU); ok {
					c.usedPrimaryHDUs.Add(p)
				}
			}
			if f.Target != nil {
				c.usedTargets.Add(f.Target)
			}
		}

		if w := d.Wavelength(); w != nil {
			c.usedWavelengths.Add(w)
		}
		if a := d.Array(); a != nil {
			c.usedArrays.Add(a)
		}
		if cr := d.Corr(); cr != nil {
			c.usedCorrs.Add(cr)
		}
	}

	for _, f := range c.selResult.SortedOIFitsFiles {
		for _, p := range f.Inspols {
			c.usedInspols.Add(p)
		}
	}
}

// ownerIndex maps every data table to the file that contributed it, so P2 can
// trace a selected table back to its file's primary HDU and OI_TARGET.
func ownerIndex(files []*oifits.OIFitsFile) map[*oifits.DataTable]*oifits.OIFitsFile {
	idx := make(map[*oifits.DataTable]*oifits.OIFitsFile)
	for _, f := range files {
		for _, d := range f.AllData() {
			idx[d] = f
		}
	}
	return idx
}
