package merger

import (
	"fmt"
	"time"

	"github.com/MartinPratoussy/oitools/oifits"
)

const historyLine = "Written by JMMC OITools"

// synthesizePrimaryHeader implements P3 PrimaryHeaderSynthesizer.
func synthesizePrimaryHeader(c *context, now time.Time) {
	if c.output.Standard == oifits.V1 {
		h := oifits.NewFitsImageHDU()
		h.SetKeyword("DATE", fitsDate(now))
		h.AppendHistory(historyLine)
		c.output.Primary = h
		return
	}

	used := c.usedPrimaryHDUs.Items()
	var out *oifits.OIPrimaryHDU
	if len(used) == 1 {
		out = used[0].Clone()
	} else {
		out = synthesizeMandatoryKeywords(used)
	}

	out.SetKeyword("CONTENT", oifits.V2.String())
	out.SetKeyword("DATE", fitsDate(now))
	out.AppendHistory(historyLine)
	c.output.Primary = out
}

// synthesizeMandatoryKeywords builds a fresh OIPrimaryHDU from the mandatory
// keyword values collected across every source primary HDU: unanimous value
// if every source agrees, oifits.Undefined if none supplied it, and
// oifits.ValueMulti if sources disagree. Optional keywords and free-form
// header cards are deliberately not propagated.
func synthesizeMandatoryKeywords(sources []*oifits.OIPrimaryHDU) *oifits.OIPrimaryHDU {
	out := oifits.NewOIPrimaryHDU()
	for _, kw := range oifits.MandatoryKeywordsV2 {
		if kw.Optional {
			continue
		}
		seen := make(map[string]bool)
		var order []string
		for _, src := range sources {
			v, ok := src.Keyword(kw.Name)
			if !ok || v == "" {
				continue
			}
			if !seen[v] {
				seen[v] = true
				order = append(order, v)
			}
		}
		switch len(order) {
		case 0:
			out.SetKeyword(kw.Name, oifits.Undefined)
		case 1:
			out.SetKeyword(kw.Name, order[0])
		default:
			out.SetKeyword(kw.Name, oifits.ValueMulti)
		}
	}
	return out
}

// fitsDate renders t in the FITS DATE keyword's standard form.
func fitsDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}
