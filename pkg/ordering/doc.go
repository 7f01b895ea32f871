// Package ordering implements spec.md 4.G's per-table circular orderer: a
// greedy chain build from the highest local-degree occupant, followed by a
// full-rotation search that keeps the rotation maximizing the fraction of
// local adjacency edges realized as ring-neighbors.
//
// Grounded on the teacher's pkg/embedding force-directed/orthogonal
// layout passes (pkg/embedding/force_directed.go, orthogonal.go): start
// from a seed choice, repeatedly extend by a local scoring rule, then
// choose the best of several candidate finishes.
package ordering
