package merger

import (
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// buildOutput implements P1 OutputBuilder: decide the output standard and
// construct the fresh, empty OIFitsFile every later phase fills in.
//
// Version-selection rule: an explicitly supplied standard always wins; else
// scan selResult.SortedOIFitsFiles for the maximum version present,
// short-circuiting once a V2 is found; a nil or empty SelectorResult
// defaults to V1.
func buildOutput(selResult *selector.SelectorResult, explicit oifits.Standard) *oifits.OIFitsFile {
	if explicit != 0 {
		return oifits.NewOIFitsFile(explicit)
	}

	std := oifits.V1
	if selResult != nil {
		for _, f := range selResult.SortedOIFitsFiles {
			std = oifits.Max(std, f.Standard)
			if std == oifits.V2 {
				break
			}
		}
	}
	return oifits.NewOIFitsFile(std)
}
