// Package naming provides small identifier-presentation helpers shared by the
// CLI and the merge report. It does not touch collision-suffix generation
// itself (that is pure string arithmetic in merger/collision.go); it only
// normalizes the human-facing labels that wrap around it.
package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)
var foldCaser = cases.Fold()

// TableTypeLabel renders an internal table-type key ("wavelength", "array",
// "corr", "inspol") as a title-cased diagnostic label ("Wavelength", "Array",
// "Corr", "Inspol") for log messages and CLI reports.
func TableTypeLabel(tableType string) string {
	return titleCaser.String(tableType)
}

// FoldInstrumentMode normalizes an instrument-mode (INSNAME) string for
// case-insensitive selector matching, using the same golang.org/x/text/cases
// case-folding the teacher uses in builder/naming.go rather than a manual
// strings.ToLower, since Fold (unlike ToLower) is defined to make
// case-insensitive comparison correct across the full Unicode case-folding
// table, not just ASCII.
func FoldInstrumentMode(s string) string {
	return foldCaser.String(strings.TrimSpace(s))
}
