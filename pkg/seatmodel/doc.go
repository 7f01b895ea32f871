// Package seatmodel defines the canonical typed entities of the seating
// solver — Guest, Table, ConstraintEdge, AdjacentEdge, PreAssignments — and
// the Normalize entry point that turns loose external input shapes into
// those canonical collections plus a list of Issues.
//
// External callers hand the solver permissive, loosely-typed data: strings
// that might represent numbers, assignment lists separated by commas or
// whitespace, constraint maps that may be asymmetric. Normalize is the
// single place that resolves that looseness into typed, immutable values;
// every other package in this module only ever sees the canonical form.
package seatmodel
