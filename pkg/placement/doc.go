// Package placement implements spec.md 4.F's two-phase capacity-aware
// backtracking search: preassigned groups are seated first (phase 1), then
// the remaining groups are backtracked into the remaining capacity in
// hardest-first order (phase 2), pruning on cannot-edges and ranking
// admissible tables by an adjacency-overlap/tight-fit score.
//
// Grounded on the teacher's pkg/synthesis/grammar.go: a retry-driven
// constructive pass over a ranked candidate list, consuming an injected RNG
// for tie-break shuffling and a context.Context for deadline/cancellation,
// following pkg/dungeon/dungeon.go's ctx.Done() checks.
package placement
