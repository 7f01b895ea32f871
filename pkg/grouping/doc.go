// Package grouping fuses guests joined by must and adjacent edges into
// atomic placement units (the two relations are unioned at fuse time per
// spec.md's "adjacent implies must" rule, but are never stored together —
// pkg/seatgraph keeps its own Cannot/Adjacent maps intact). Each resulting
// Group aggregates its members' head-count, cannot-neighbors, adjacency
// degree, and admissible-table intersection, and carries the hardest-first
// sort key pkg/placement consumes.
//
// Grounded on pkg/unionfind (the fuse mechanism itself) and the teacher's
// pkg/synthesis/grammar.go, which builds aggregate graph nodes from a raw
// edge list in a single deterministic pass before a constructive search
// consumes them.
package grouping
