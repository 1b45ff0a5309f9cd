// Package selector builds a SelectorResult: the precomputed working set the
// merger package consumes. Selector itself is a front-end (per spec.md §1 it
// is "treated as an external collaborator" to the Merger), responsible for
// resolving user-facing criteria - target names, instrument-mode names,
// night numbers, baseline station names, MJD and wavelength ranges - against
// an OIFitsCollection into the identity-keyed, order-stable structures the
// merger actually operates on.
package selector
