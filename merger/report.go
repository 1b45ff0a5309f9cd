package merger

// MergeReport provides detailed analysis of the collision resolutions,
// deduplications, and reference/row drops a merge performed, parallel to
// the teacher package's CollisionReport.
type MergeReport struct {
	RunID string

	TotalCollisions int
	ResolvedByRename int
	ResolvedByDedup  int

	TotalMissingReferences int
	TotalTablesDropped     int
	TotalRowsDropped       int

	Events []MergeEvent
}

// MergeEvent represents a single notable occurrence during a merge, with
// enough detail to reconstruct why the output differs from a naive
// concatenation of the inputs. Parallel to the teacher package's
// CollisionEvent.
type MergeEvent struct {
	// Kind is one of "rename", "dedup", "missing_reference", "table_dropped",
	// "rows_dropped".
	Kind string
	// TableType is "wavelength", "array", "corr", "inspol", or "data".
	TableType string
	// Name is the INSNAME/ARRNAME/CORRNAME the event concerns, where
	// applicable.
	Name string
	// NewName is the renamed value, set only for Kind == "rename".
	NewName string
	// DataTableIndex is the SortedOIDatas position the event concerns, or -1.
	DataTableIndex int
	// RowsDropped is the row count removed, set only for Kind ==
	// "rows_dropped".
	RowsDropped int
}

// newMergeReport creates an empty report for the given run.
func newMergeReport(runID string) *MergeReport {
	return &MergeReport{RunID: runID}
}

// addRename records a name-collision resolved by suffixing.
func (r *MergeReport) addRename(tableType, originalName, newName string) {
	r.Events = append(r.Events, MergeEvent{
		Kind:           "rename",
		TableType:      tableType,
		Name:           originalName,
		NewName:        newName,
		DataTableIndex: -1,
	})
	r.TotalCollisions++
	r.ResolvedByRename++
}

// addDedup records a table merged into an existing one by strict-content
// equality instead of being duplicated.
func (r *MergeReport) addDedup(tableType, name string) {
	r.Events = append(r.Events, MergeEvent{
		Kind:           "dedup",
		TableType:      tableType,
		Name:           name,
		DataTableIndex: -1,
	})
	r.TotalCollisions++
	r.ResolvedByDedup++
}

// addMissingReference records a data table's unresolved metadata reference.
func (r *MergeReport) addMissingReference(tableType, name string, dataTableIndex int) {
	r.Events = append(r.Events, MergeEvent{
		Kind:           "missing_reference",
		TableType:      tableType,
		Name:           name,
		DataTableIndex: dataTableIndex,
	})
	r.TotalMissingReferences++
}

// addTableDropped records an entire data table removed from the output.
func (r *MergeReport) addTableDropped(dataTableIndex int) {
	r.Events = append(r.Events, MergeEvent{
		Kind:           "table_dropped",
		TableType:      "data",
		DataTableIndex: dataTableIndex,
	})
	r.TotalTablesDropped++
}

// addRowsDropped records a count of rows filtered out of a surviving data
// table.
func (r *MergeReport) addRowsDropped(dataTableIndex, count int) {
	if count == 0 {
		return
	}
	r.Events = append(r.Events, MergeEvent{
		Kind:           "rows_dropped",
		TableType:      "data",
		DataTableIndex: dataTableIndex,
		RowsDropped:    count,
	})
	r.TotalRowsDropped += count
}
