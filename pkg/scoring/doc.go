// Package scoring implements spec.md 4.H: the three quality metrics
// (adjacency satisfaction, capacity utilization, balance), their weighted
// aggregate, and the rolling-hash occupant-partition key used to
// deduplicate plans while keeping the best-scored representative per key.
//
// Grounded on the teacher's pkg/validation/metrics.go (metrics-from-
// artifact computation) and pkg/dungeon/dungeon.go's scalar-score-of-a-run
// idiom.
package scoring
