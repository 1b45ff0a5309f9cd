package oifits

import "fmt"

// Target is a logical target entity: a star or source, deduplicated across
// input files by a TargetManager. Two OI_TARGET rows in different input
// files that describe "the same star" resolve to the same *Target pointer;
// rows that describe distinct stars never do. The merger keys maps on this
// pointer's identity, not on any field of the struct.
type Target struct {
	Name  string
	RAEp0 float64
	DecEp0 float64
}

// TargetManager resolves (name, position) tuples to a canonical *Target,
// deduplicating targets that describe the same star across input files. It
// is a collaborator the merger consumes; building it belongs to whatever
// constructs an OIFitsCollection (typically the selector front-end or the
// caller), not to the merger itself.
type TargetManager struct {
	byKey map[string]*Target
}

// NewTargetManager returns an empty TargetManager.
func NewTargetManager() *TargetManager {
	return &TargetManager{byKey: make(map[string]*Target)}
}

// Resolve returns the canonical Target for (name, ra, dec), creating one on
// first sight. Subsequent calls with the same name return the same pointer.
func (tm *TargetManager) Resolve(name string, ra, dec float64) *Target {
	if t, ok := tm.byKey[name]; ok {
		return t
	}
	t := &Target{Name: name, RAEp0: ra, DecEp0: dec}
	tm.byKey[name] = t
	return t
}

// TargetRow is one row of an OI_TARGET table: a compact local id (1..N, or
// UndefinedShort once filtered) paired with the logical Target it names.
type TargetRow struct {
	TargetID Short
	Target   *Target
}

// OITarget is a single OIFITS OI_TARGET table. Identity (the *OITarget
// pointer) is what the merger keys maps on.
type OITarget struct {
	Rows []TargetRow
}

// NewOITarget returns an empty OITarget.
func NewOITarget() *OITarget {
	return &OITarget{}
}

// TargetIDs returns the local ids in t that resolve (via tm) to target.
// Per the source design this is usually a single-element set, but a
// malformed table with duplicate rows pointing at the same logical target
// can legitimately yield more than one.
func (t *OITarget) TargetIDs(tm *TargetManager, target *Target) []Short {
	var ids []Short
	for _, row := range t.Rows {
		if row.Target == target {
			ids = append(ids, row.TargetID)
		}
	}
	return ids
}

// TargetIDs is the TargetManager-shaped view of the same operation
// (§6 describes it as "TargetManager.targetIds(OITarget, Target)"); it just
// delegates to OITarget.TargetIDs, since identity comparison needs no state
// from tm beyond what Resolve already established.
func (tm *TargetManager) TargetIDs(t *OITarget, target *Target) []Short {
	return t.TargetIDs(tm, target)
}

// Add appends a row and returns its assigned local id (1-based).
func (t *OITarget) Add(target *Target) Short {
	id := Short(len(t.Rows) + 1)
	t.Rows = append(t.Rows, TargetRow{TargetID: id, Target: target})
	return id
}

// String implements fmt.Stringer for diagnostics.
func (t *OITarget) String() string {
	return fmt.Sprintf("OITarget{rows=%d}", len(t.Rows))
}
