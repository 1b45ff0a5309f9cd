package merger

import (
	"github.com/MartinPratoussy/oitools/internal/bitset"
	"github.com/MartinPratoussy/oitools/internal/orderedset"
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// context carries every piece of state the six phases share. Every field is
// populated monotonically: a later phase may read a field an earlier phase
// wrote, never the reverse, and no phase mutates a field another phase owns.
//
// The identity-keyed maps below are plain Go maps keyed on pointer types.
// That already gives pointer (reference) equality for free - Go never
// hashes through a pointer to its pointee - which is exactly the identity
// semantics spec.md calls for without needing a dedicated identity-map type.
type context struct {
	runID  string
	logger oifits.Logger

	selResult *selector.SelectorResult
	output    *oifits.OIFitsFile

	// owner traces a selected data table back to the file that contributed
	// it, for P2's primary-HDU/OI_TARGET collection and P6's target-id
	// remapping. Built once by collectReferences.
	owner map[*oifits.DataTable]*oifits.OIFitsFile

	// P2: ReferenceCollector output. Insertion-ordered sets: iteration order
	// here is what drives name-suffix assignment and the observable merge
	// order downstream.
	usedPrimaryHDUs  *orderedset.Set[*oifits.OIPrimaryHDU]
	usedTargets      *orderedset.Set[*oifits.OITarget]
	usedWavelengths  *orderedset.Set[*oifits.OIWavelength]
	usedArrays       *orderedset.Set[*oifits.OIArray]
	usedCorrs        *orderedset.Set[*oifits.OICorr]
	usedInspols      *orderedset.Set[*oifits.OIInspol]

	// P4: TargetRemapper output.
	newTargetIDs   map[*oifits.Target]oifits.Short
	mapOITargetIDs map[*oifits.OITarget]map[oifits.Short]oifits.Short

	// P5: MetadataDeduper output, one set of maps per table type.
	mapOIWavelengths  map[*oifits.OIWavelength]*oifits.OIWavelength
	maskOIWavelengths map[*oifits.OIWavelength]*bitset.BitSet // present key, nil value = "no mask, keep all rows"
	mapOIArrays       map[*oifits.OIArray]*oifits.OIArray
	mapOICorrs        map[*oifits.OICorr]*oifits.OICorr
	mapOIInspols      map[*oifits.OIInspol]*oifits.OIInspol

	report   *MergeReport
	warnings Warnings
}

func newContext(runID string, logger oifits.Logger, selResult *selector.SelectorResult) *context {
	return &context{
		runID:     runID,
		logger:    logger,
		selResult: selResult,

		usedPrimaryHDUs: orderedset.New[*oifits.OIPrimaryHDU](),
		usedTargets:     orderedset.New[*oifits.OITarget](),
		usedWavelengths: orderedset.New[*oifits.OIWavelength](),
		usedArrays:      orderedset.New[*oifits.OIArray](),
		usedCorrs:       orderedset.New[*oifits.OICorr](),
		usedInspols:     orderedset.New[*oifits.OIInspol](),

		newTargetIDs:   make(map[*oifits.Target]oifits.Short),
		mapOITargetIDs: make(map[*oifits.OITarget]map[oifits.Short]oifits.Short),

		mapOIWavelengths:  make(map[*oifits.OIWavelength]*oifits.OIWavelength),
		maskOIWavelengths: make(map[*oifits.OIWavelength]*bitset.BitSet),
		mapOIArrays:       make(map[*oifits.OIArray]*oifits.OIArray),
		mapOICorrs:        make(map[*oifits.OICorr]*oifits.OICorr),
		mapOIInspols:      make(map[*oifits.OIInspol]*oifits.OIInspol),
	}
}
