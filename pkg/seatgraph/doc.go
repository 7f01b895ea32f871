// Package seatgraph builds the cannot/adjacent undirected constraint
// graphs over guests and performs the structural validations of
// spec.md 4.D: adjacency degree checks, closed adjacency ring
// capacity-exactness, and (once pkg/grouping has fused guests into
// groups) intra-group contradiction, group-oversize, and
// assignment-intersection checks.
//
// The graphs here are plain maps, never pointer-linked nodes, following
// the teacher's graph.Graph adjacency-list convention
// (pkg/graph/graph.go) and the staged Check* functions of
// pkg/validation/constraints.go, each returning independent Issues rather
// than aborting on the first problem.
package seatgraph
