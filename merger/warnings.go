package merger

import (
	"fmt"

	"github.com/MartinPratoussy/oitools/internal/naming"
	"github.com/MartinPratoussy/oitools/internal/severity"
)

// WarningCategory identifies the type of merge-time warning.
type WarningCategory string

const (
	// WarnNameCollision indicates a wavelength/array/corr/inspol table name
	// collided with one already placed in the output and was resolved by
	// suffixing (_1, _2, ...).
	WarnNameCollision WarningCategory = "name_collision"
	// WarnDeduplicated indicates a wavelength/array table was recognized
	// as identical to one already in the output and merged into it rather
	// than duplicated.
	WarnDeduplicated WarningCategory = "deduplicated"
	// WarnMissingReference indicates a data table's INSNAME/ARRNAME/CORRNAME
	// did not resolve to any table in the merge output.
	WarnMissingReference WarningCategory = "missing_reference"
	// WarnTableDropped indicates an entire data table was dropped, either
	// because its wavelength reference was missing or every row failed the
	// active selection criteria.
	WarnTableDropped WarningCategory = "table_dropped"
	// WarnEmptySelection indicates Merge was invoked with a nil
	// SelectorResult.
	WarnEmptySelection WarningCategory = "empty_selection"
)

// Warning is a structured, non-fatal event raised while merging. The merger
// never returns an error for table- or row-level degradation; instead every
// such event becomes a Warning, the same "collect, don't fail" posture the
// teacher package's JoinWarning takes toward join-time collisions.
type Warning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Message is a human-readable description, already formatted with the
	// relevant names and indices.
	Message string
	// DataTableIndex is the position of the affected table within
	// SelectorResult.SortedOIDatas, or -1 if the warning isn't about a
	// specific data table.
	DataTableIndex int
	// Severity indicates how serious the event is.
	Severity severity.Severity
}

// String returns the warning's message.
func (w Warning) String() string {
	return w.Message
}

// Warnings is an ordered collection of Warning values, in the order the
// merge pipeline produced them.
type Warnings []Warning

// Add appends w to the collection.
func (ws *Warnings) Add(w Warning) {
	*ws = append(*ws, w)
}

// HasCritical reports whether any warning carries SeverityCritical.
func (ws Warnings) HasCritical() bool {
	for _, w := range ws {
		if w.Severity == severity.SeverityCritical {
			return true
		}
	}
	return false
}

// ByCategory returns the subset of warnings matching category.
func (ws Warnings) ByCategory(category WarningCategory) Warnings {
	var out Warnings
	for _, w := range ws {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

func newNameCollisionWarning(tableType, originalName, newName string) Warning {
	return Warning{
		Category:       WarnNameCollision,
		Message:        fmt.Sprintf("%s name %q collided with an existing table, renamed to %q", naming.TableTypeLabel(tableType), originalName, newName),
		DataTableIndex: -1,
		Severity:       severity.SeverityInfo,
	}
}

func newDedupWarning(tableType, name string) Warning {
	return Warning{
		Category:       WarnDeduplicated,
		Message:        fmt.Sprintf("%s %q is structurally identical to one already merged, deduplicated", naming.TableTypeLabel(tableType), name),
		DataTableIndex: -1,
		Severity:       severity.SeverityInfo,
	}
}

func newMissingReferenceWarning(tableType, name string, dataTableIndex int) Warning {
	return Warning{
		Category:       WarnMissingReference,
		Message:        fmt.Sprintf("data table #%d references %s %q, which is not present in the merge output", dataTableIndex, naming.TableTypeLabel(tableType), name),
		DataTableIndex: dataTableIndex,
		Severity:       severity.SeverityWarning,
	}
}

func newTableDroppedWarning(reason string, dataTableIndex int) Warning {
	return Warning{
		Category:       WarnTableDropped,
		Message:        fmt.Sprintf("data table #%d dropped: %s", dataTableIndex, reason),
		DataTableIndex: dataTableIndex,
		Severity:       severity.SeverityCritical,
	}
}

func newEmptySelectionWarning() Warning {
	return Warning{
		Category:       WarnEmptySelection,
		Message:        "selector result is empty, output contains only a primary HDU",
		DataTableIndex: -1,
		Severity:       severity.SeverityWarning,
	}
}
