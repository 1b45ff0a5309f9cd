package merger

import "fmt"

// resolveNameCollision returns a name guaranteed not to be in taken, trying
// name itself first and then name_1, name_2, ... in order. This is the
// suffixing half of the rename resolution the teacher package's
// CollisionResolution{Action: ResolutionRename} represents as a decision;
// here the decision is unconditional (metadata tables are never configured
// to fail or accept-left/right on a name collision, only to rename or
// dedupe), so the merger only needs the name-generation step.
func resolveNameCollision(name string, taken map[string]bool) string {
	if !taken[name] {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if !taken[candidate] {
			return candidate
		}
	}
}
