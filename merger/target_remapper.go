package merger

import "github.com/MartinPratoussy/oitools/oifits"

// remapTargets implements P4 TargetRemapper: build the global OI_TARGET table
// in SelectorResult.DistinctTargets order, and a per-source local-id map for
// every OITarget the merge touched.
func remapTargets(c *context) {
	distinct := c.selResult.DistinctTargets
	out := oifits.NewOITarget()
	for _, t := range distinct {
		id := out.Add(t)
		c.newTargetIDs[t] = id
	}
	c.output.Target = out

	for _, src := range c.usedTargets.Items() {
		mapIDs := make(map[oifits.Short]oifits.Short)
		for _, t := range distinct {
			for _, localID := range src.TargetIDs(c.selResult.TargetManager, t) {
				mapIDs[localID] = c.newTargetIDs[t]
			}
		}
		c.mapOITargetIDs[src] = mapIDs
	}
}
