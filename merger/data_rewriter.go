package merger

import (
	"github.com/MartinPratoussy/oitools/internal/bitset"
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// rewriteData implements P6 DataRewriter: copy each selected data table,
// resolve and rewrite its metadata references, and filter rows along up to
// five independent axes.
func rewriteData(c *context) {
	for idx, src := range c.selResult.SortedOIDatas {
		rewriteOneDataTable(c, idx, src)
	}
}

func rewriteOneDataTable(c *context, idx int, src *oifits.DataTable) {
	// Step A: resolve references.
	wl, ok := c.mapOIWavelengths[src.Wavelength()]
	if src.Wavelength() == nil || !ok {
		c.report.addMissingReference("wavelength", src.InsName, idx)
		c.warnings.Add(newMissingReferenceWarning("wavelength", src.InsName, idx))
		c.report.addTableDropped(idx)
		c.warnings.Add(newTableDroppedWarning("unresolved wavelength reference", idx))
		c.logger.Warn("dropping data table: unresolved wavelength reference",
			"insname", src.InsName, "table", idx)
		return
	}
	mask := c.maskOIWavelengths[src.Wavelength()]

	var arr *oifits.OIArray
	arrName := oifits.Undefined
	if a := src.Array(); a != nil {
		if mapped, ok := c.mapOIArrays[a]; ok {
			arr, arrName = mapped, mapped.ArrName
		} else {
			c.report.addMissingReference("array", src.ArrName, idx)
			c.warnings.Add(newMissingReferenceWarning("array", src.ArrName, idx))
			c.logger.Warn("rewriting data table arrname to UNDEFINED: unresolved array reference",
				"arrname", src.ArrName, "table", idx)
		}
	}

	var corr *oifits.OICorr
	var corrName string
	if cr := src.Corr(); cr != nil {
		if mapped, ok := c.mapOICorrs[cr]; ok {
			corr, corrName = mapped, mapped.CorrName
		} else {
			c.report.addMissingReference("corr", src.CorrName, idx)
			c.warnings.Add(newMissingReferenceWarning("corr", src.CorrName, idx))
			c.logger.Warn("nulling data table corrname: unresolved correlation reference",
				"corrname", src.CorrName, "table", idx)
		}
	}

	selResult := c.selResult

	// Step B: determine which axes need per-row filtering.
	var idMap map[oifits.Short]oifits.Short
	if f, ok := c.owner[src]; ok && f.Target != nil {
		idMap = c.mapOITargetIDs[f.Target]
	}
	checkWavelengths := mask != nil
	checkTargetID := needsTargetIDCheck(src.DistinctTargetIDs(), idMap)
	checkNightID := !src.HasSingleNight() && !selResult.NightIDMatcher.MatchAll(src.DistinctNightIDs())

	var matchingSta map[*oifits.StaIndexArray]bool
	checkBaselines := false
	if len(selResult.Baselines) > 0 {
		matching := selector.MatchingStaIndexes(src, selResult.Baselines)
		if len(matching) == 0 {
			c.report.addTableDropped(idx)
			c.warnings.Add(newTableDroppedWarning("no rows matched the configured baselines", idx))
			c.logger.Warn("dropping data table: no rows matched the configured baselines",
				"insname", src.InsName, "table", idx)
			return
		}
		distinct := src.DistinctStaIndexes()
		if len(matching) < len(distinct) {
			checkBaselines = true
			matchingSta = make(map[*oifits.StaIndexArray]bool, len(matching))
			for _, sa := range matching {
				matchingSta[sa] = true
			}
		}
	}

	checkMJDRanges := false
	if len(selResult.MJDRanges) > 0 {
		distinctMJDs := src.DistinctMJDs()
		if !selResult.MJDRanges.MatchAny(distinctMJDs) {
			c.report.addTableDropped(idx)
			c.warnings.Add(newTableDroppedWarning("no rows matched the configured MJD ranges", idx))
			c.logger.Warn("dropping data table: no rows matched the configured MJD ranges",
				"insname", src.InsName, "table", idx)
			return
		}
		checkMJDRanges = !selResult.MJDRanges.MatchFully(distinctMJDs)
	}

	// Step C: copy table, rewrite names/references.
	cp := src.DeepCopy()
	cp.InsName = wl.InsName
	cp.SetWavelength(wl)
	cp.ArrName = arrName
	cp.SetArray(arr)
	cp.CorrName = corrName
	cp.SetCorr(corr)

	// Step D: row iteration, only if any filter flag is active.
	if checkWavelengths || checkTargetID || checkNightID || checkBaselines || checkMJDRanges {
		n := cp.RowCount()
		keep := bitset.New(n)
		newTargetIDs := make([]oifits.Short, n)

		for i := 0; i < n; i++ {
			skip := false

			if checkTargetID {
				mapped, ok := idMap[cp.TargetID[i]]
				if !ok {
					mapped = oifits.UndefinedShort
				}
				newTargetIDs[i] = mapped
				if mapped == oifits.UndefinedShort {
					skip = true
				}
			} else {
				newTargetIDs[i] = cp.TargetID[i]
			}

			if !skip && checkNightID && !selResult.NightIDMatcher.Match(cp.NightID[i]) {
				skip = true
			}
			if !skip && checkMJDRanges && !selResult.MJDRanges.Contains(cp.MJD[i]) {
				skip = true
			}
			if !skip && checkBaselines && !matchingSta[cp.StaIndex[i]] {
				skip = true
			}

			if !skip {
				keep.Set(i)
			}
		}

		cp.TargetID = newTargetIDs

		if keep.Cardinality() == 0 {
			c.report.addTableDropped(idx)
			c.warnings.Add(newTableDroppedWarning("all rows were filtered out by the active selection criteria", idx))
			c.logger.Warn("dropping data table: all rows were filtered out by the active selection criteria",
				"insname", src.InsName, "table", idx)
			return
		}
		dropped := n - keep.Cardinality()
		cp.ResizeRows(keep)
		if mask != nil {
			cp.ResizeChannels(mask)
		}
		c.report.addRowsDropped(idx, dropped)
	}

	// Step E: append to output.
	c.output.AddData(cp)
}

// needsTargetIDCheck reports whether any local id among distinctIDs maps to
// something other than itself, or has no mapping at all (which must then be
// forced to oifits.UndefinedShort row by row). When this is false, the
// remapping is the identity on every row, so P6 can skip the per-row
// target-id rewrite entirely.
func needsTargetIDCheck(distinctIDs []oifits.Short, idMap map[oifits.Short]oifits.Short) bool {
	for _, id := range distinctIDs {
		mapped, ok := idMap[id]
		if !ok || mapped != id {
			return true
		}
	}
	return false
}
