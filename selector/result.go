package selector

import (
	"github.com/MartinPratoussy/oitools/internal/naming"
	"github.com/MartinPratoussy/oitools/oifits"
)

// SelectorResult is the precomputed selection the merger consumes: the
// data-table working set, in a fixed deterministic order, plus the optional
// range and baseline criteria row-level filtering in the merger needs.
type SelectorResult struct {
	// SortedOIFitsFiles lists every input file, in collection order. The
	// merger's OutputBuilder scans this (front to back, short-circuiting on
	// the first V2) to pick the output standard.
	SortedOIFitsFiles []*oifits.OIFitsFile

	// SortedOIDatas is the data-table working set, in a stable
	// (file-index, table-index) order. This order is observable: it drives
	// insertion order into the insertion-ordered metadata sets the merger
	// builds in P2.
	SortedOIDatas []*oifits.DataTable

	// DistinctTargets is the ordered list of logical targets the output
	// OI_TARGET table will contain, 0-based position i mapping to output
	// target id i+1.
	DistinctTargets []*oifits.Target

	// Baselines is the resolved baseline filter, nil meaning "not
	// configured". An empty-but-non-nil slice is impossible to construct via
	// Build (a Selector with a non-empty Baselines field that resolves to
	// zero specs is still "configured", so Build always carries at least one
	// entry here when the input Selector carried any).
	Baselines []BaselineSpec

	MJDRanges        oifits.Ranges
	WavelengthRanges oifits.Ranges

	TargetManager  *oifits.TargetManager
	NightIDMatcher *oifits.NightIDMatcher
}

// Build resolves sel (which may be nil, meaning "no filtering at all")
// against collection, producing the working set and identity maps the
// merger needs. collection must be non-nil and non-empty; callers (the four
// Merge* entry points) are responsible for that InvalidArgument check before
// calling Build.
func Build(collection *oifits.OIFitsCollection, sel *Selector) *SelectorResult {
	tm := oifits.NewTargetManager()
	result := &SelectorResult{
		SortedOIFitsFiles: append([]*oifits.OIFitsFile(nil), collection.Files...),
		TargetManager:     tm,
	}

	// First pass: register every logical target referenced by the
	// collection's OI_TARGET tables so DistinctTargets can be computed even
	// when sel doesn't name any targets explicitly.
	allTargets := orderedTargets(collection)

	if sel == nil {
		result.DistinctTargets = allTargets
		result.NightIDMatcher = oifits.NewNightIDMatcher()
		result.SortedOIDatas = allData(collection, nil)
		return result
	}

	if len(sel.Targets) > 0 {
		result.DistinctTargets = append([]*oifits.Target(nil), sel.Targets...)
	} else {
		result.DistinctTargets = allTargets
	}

	result.NightIDMatcher = oifits.NewNightIDMatcher(sel.Nights...)
	result.MJDRanges = sel.MJDRanges
	result.WavelengthRanges = sel.WavelengthRanges
	if len(sel.Baselines) > 0 {
		result.Baselines = sel.Baselines
	}

	var insModes map[string]bool
	if len(sel.InstrumentModes) > 0 {
		insModes = make(map[string]bool, len(sel.InstrumentModes))
		for _, m := range sel.InstrumentModes {
			insModes[naming.FoldInstrumentMode(m)] = true
		}
	}
	datas := allData(collection, insModes)
	if len(sel.Nights) > 0 {
		// A single-night table is never night-filtered row by row in the
		// merger, so one whose night is not selected is left out here.
		kept := make([]*oifits.DataTable, 0, len(datas))
		for _, d := range datas {
			if d.HasSingleNight() && len(d.NightID) > 0 && !result.NightIDMatcher.Match(d.NightID[0]) {
				continue
			}
			kept = append(kept, d)
		}
		datas = kept
	}
	result.SortedOIDatas = datas

	return result
}

// orderedTargets collects every logical target referenced by any OI_TARGET
// table in the collection, in (file order, row order) first-seen order.
func orderedTargets(collection *oifits.OIFitsCollection) []*oifits.Target {
	seen := make(map[*oifits.Target]bool)
	var out []*oifits.Target
	for _, f := range collection.Files {
		if f.Target == nil {
			continue
		}
		for _, row := range f.Target.Rows {
			if row.Target != nil && !seen[row.Target] {
				seen[row.Target] = true
				out = append(out, row.Target)
			}
		}
	}
	return out
}

// allData concatenates every data table in the collection, in
// (file order, table order), optionally restricted to the given
// case-folded instrument-mode set.
func allData(collection *oifits.OIFitsCollection, insModes map[string]bool) []*oifits.DataTable {
	var out []*oifits.DataTable
	for _, f := range collection.Files {
		for _, d := range f.Data {
			if insModes != nil && !insModes[naming.FoldInstrumentMode(d.InsName)] {
				continue
			}
			out = append(out, d)
		}
	}
	return out
}

// MatchingStaIndexes resolves baseline station-name specs against data's own
// OI_ARRAY, returning the subset of data's distinct station-index identities
// that a configured baseline names. Identity, not contents, is what the
// merger compares against DistinctStaIndexes, so this must canonicalize
// through the same *oifits.OIArray the data table itself references.
func MatchingStaIndexes(data *oifits.DataTable, specs []BaselineSpec) []*oifits.StaIndexArray {
	arr := data.Array()
	if arr == nil || len(specs) == 0 {
		return nil
	}
	byName := make(map[string]oifits.Short, len(arr.Stations))
	for _, s := range arr.Stations {
		byName[s.StaName] = s.StaIndex
	}

	distinct := data.DistinctStaIndexes()
	distinctSet := make(map[*oifits.StaIndexArray]bool, len(distinct))
	for _, sa := range distinct {
		distinctSet[sa] = true
	}

	var out []*oifits.StaIndexArray
	outSeen := make(map[*oifits.StaIndexArray]bool)
	for _, spec := range specs {
		indexes := make([]oifits.Short, 0, len(spec.Stations))
		ok := true
		for _, name := range spec.Stations {
			idx, found := byName[name]
			if !found {
				ok = false
				break
			}
			indexes = append(indexes, idx)
		}
		if !ok {
			continue
		}
		candidate := arr.Canonicalize(indexes...)
		if distinctSet[candidate] && !outSeen[candidate] {
			outSeen[candidate] = true
			out = append(out, candidate)
		}
	}
	return out
}
