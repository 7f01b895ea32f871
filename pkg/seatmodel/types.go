package seatmodel

import "fmt"

// GuestID and TableID are opaque, stable, externally-supplied identifiers.
type GuestID = string
type TableID = string

// Guest is a canonical party record: a stable id, a display name, and a
// head-count of how many contiguous seats it occupies.
type Guest struct {
	ID    GuestID
	Name  string
	Count int
}

// Table is a canonical table record: a stable id, an optional display
// name, and a seating capacity.
type Table struct {
	ID       TableID
	Name     string
	Capacity int
}

// Relation is the label carried by a ConstraintEdge.
type Relation int

const (
	// Must means the two guests must share a table.
	Must Relation = iota
	// Cannot means the two guests must not share a table.
	Cannot
)

// String returns the textual form of a Relation.
func (r Relation) String() string {
	switch r {
	case Must:
		return "must"
	case Cannot:
		return "cannot"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// ConstraintEdge is a symmetric, deduplicated pair of guests carrying
// exactly one Relation. A and B are stored in a canonical order (A < B)
// so that {X,Y} and {Y,X} always compare equal.
type ConstraintEdge struct {
	A, B     GuestID
	Relation Relation
}

// AdjacentEdge is a symmetric pair meaning "these two parties should be
// circular neighbors at a shared table." A and B are canonically ordered.
type AdjacentEdge struct {
	A, B GuestID
}

// PreAssignments maps a guest to its ordered, deduplicated list of
// admissible table ids. An absent key or an empty slice means
// "admissible anywhere."
type PreAssignments map[GuestID][]TableID

// IssueKind is the closed taxonomy of validation issues the solver can
// report. Values never change meaning across releases; new kinds are only
// ever appended.
type IssueKind int

const (
	// InvalidInputData marks malformed input: a duplicate guest or table
	// id, an unrecognized or conflicting constraint label, or an unknown
	// pre-assignment table token. Blank names and non-integer or
	// out-of-range counts are repaired by Normalize without an issue.
	InvalidInputData IssueKind = iota
	// SelfReferenceIgnored marks a reflexive edge that was discarded.
	// Non-fatal: reported for visibility only.
	SelfReferenceIgnored
	// UnknownGuest marks an edge or assignment referencing a guest id not
	// present in the input.
	UnknownGuest
	// AdjacencyDegreeViolation marks a guest with more than two adjacency
	// partners.
	AdjacencyDegreeViolation
	// AdjacencyClosedLoopTooBig marks a closed adjacency ring whose
	// aggregate size exceeds every table's capacity.
	AdjacencyClosedLoopTooBig
	// AdjacencyClosedLoopNotExact marks a closed adjacency ring whose
	// aggregate size matches no table's capacity exactly.
	AdjacencyClosedLoopNotExact
	// CantWithinMustGroup marks two guests joined transitively by
	// must/adjacent edges who also carry a cannot edge.
	CantWithinMustGroup
	// GroupTooBigForAnyTable marks a group whose aggregate head-count
	// exceeds the largest single table's capacity.
	GroupTooBigForAnyTable
	// AssignmentConflict marks a group whose members' non-empty
	// pre-assignments have an empty intersection.
	AssignmentConflict
)

// String returns the textual form of an IssueKind, matching the wire
// vocabulary named in the spec's closed taxonomy.
func (k IssueKind) String() string {
	switch k {
	case InvalidInputData:
		return "invalid_input_data"
	case SelfReferenceIgnored:
		return "self_reference_ignored"
	case UnknownGuest:
		return "unknown_guest"
	case AdjacencyDegreeViolation:
		return "adjacency_degree_violation"
	case AdjacencyClosedLoopTooBig:
		return "adjacency_closed_loop_too_big"
	case AdjacencyClosedLoopNotExact:
		return "adjacency_closed_loop_not_exact"
	case CantWithinMustGroup:
		return "cant_within_must_group"
	case GroupTooBigForAnyTable:
		return "group_too_big_for_any_table"
	case AssignmentConflict:
		return "assignment_conflict"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Fatal reports whether an issue of this kind prevents the search from
// running. Every kind is fatal except SelfReferenceIgnored.
func (k IssueKind) Fatal() bool {
	return k != SelfReferenceIgnored
}

// AdjacencyFamily reports whether this kind belongs to the adjacency-only
// error family used by the adjacency-only conflict query.
func (k IssueKind) AdjacencyFamily() bool {
	switch k {
	case AdjacencyDegreeViolation, AdjacencyClosedLoopTooBig, AdjacencyClosedLoopNotExact:
		return true
	default:
		return false
	}
}

// Issue is a tagged validation finding: a kind, a human-readable message,
// and optional structured details (e.g. the offending guest ids).
type Issue struct {
	Kind    IssueKind
	Message string
	Details map[string]string
}

// AnyFatal reports whether issues contains at least one fatal issue.
func AnyFatal(issues []Issue) bool {
	for _, it := range issues {
		if it.Kind.Fatal() {
			return true
		}
	}
	return false
}

// FilterAdjacencyIssues returns only the issues whose kind is in the
// adjacency-only family, preserving order.
func FilterAdjacencyIssues(issues []Issue) []Issue {
	out := make([]Issue, 0, len(issues))
	for _, it := range issues {
		if it.Kind.AdjacencyFamily() {
			out = append(out, it)
		}
	}
	return out
}

func canonicalPair(a, b GuestID) (GuestID, GuestID) {
	if a <= b {
		return a, b
	}
	return b, a
}
