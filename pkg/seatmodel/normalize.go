package seatmodel

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
)

// GuestInput is the loose external shape for a guest party record.
type GuestInput struct {
	ID    string
	Name  string
	Count float64
}

// TableInput is the loose external shape for a table record. Capacity and
// Seats are pointers because "field present vs. absent" matters: an absent
// Capacity falls back to Seats per spec.md 4.C.
type TableInput struct {
	ID       string
	Name     string
	Capacity *float64
	Seats    *float64
}

// Normalized holds every canonical collection produced by Normalize, ready
// for pkg/seatgraph and downstream components.
type Normalized struct {
	Guests      []Guest
	GuestByID   map[GuestID]Guest
	Tables      []Table
	TableByID   map[TableID]Table
	Constraints []ConstraintEdge
	Adjacents   []AdjacentEdge
	Assignments PreAssignments
}

var tokenSplitter = regexp.MustCompile(`[,\s.]+`)

// Normalize converts loose external input into canonical typed
// collections plus an accumulated Issue list. It never panics on
// malformed input; every problem becomes a structured Issue.
//
// constraints maps GuestID -> GuestID -> "must"|"cannot"; symmetry is
// tolerated (a label declared on either side is authoritative).
// adjacents maps GuestID -> set of GuestID (represented as a slice;
// duplicates within a guest's list are ignored); symmetry tolerated.
// assignments maps GuestID -> a comma/whitespace/period separated list of
// table identifiers or display names.
func Normalize(
	guestsIn []GuestInput,
	tablesIn []TableInput,
	constraintsIn map[string]map[string]string,
	adjacentsIn map[string][]string,
	assignmentsIn map[string]string,
) (Normalized, []Issue) {
	var issues []Issue

	guests, guestByID := normalizeGuests(guestsIn, &issues)
	tables, tableByID := normalizeTables(tablesIn, &issues)

	constraints := normalizeConstraints(constraintsIn, guestByID, &issues)
	adjacents := normalizeAdjacents(adjacentsIn, guestByID, &issues)
	assignments := normalizeAssignments(assignmentsIn, guestByID, tableByID, &issues)

	return Normalized{
		Guests:      guests,
		GuestByID:   guestByID,
		Tables:      tables,
		TableByID:   tableByID,
		Constraints: constraints,
		Adjacents:   adjacents,
		Assignments: assignments,
	}, issues
}

func clampCount(n float64) int {
	c := int(math.Floor(n))
	if c < 1 {
		c = 1
	}
	return c
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func normalizeGuests(in []GuestInput, issues *[]Issue) ([]Guest, map[GuestID]Guest) {
	byID := make(map[GuestID]Guest, len(in))
	order := make([]GuestID, 0, len(in))

	for _, g := range in {
		if _, dup := byID[g.ID]; dup {
			*issues = append(*issues, Issue{
				Kind:    InvalidInputData,
				Message: fmt.Sprintf("duplicate guest id %q ignored", g.ID),
				Details: map[string]string{"guest_id": g.ID},
			})
			continue
		}

		name := g.Name
		if isBlank(g.ID) || isBlank(name) {
			name = fmt.Sprintf("Guest %s", g.ID)
		}

		byID[g.ID] = Guest{
			ID:    g.ID,
			Name:  name,
			Count: clampCount(g.Count),
		}
		order = append(order, g.ID)
	}

	out := make([]Guest, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out, byID
}

func normalizeTables(in []TableInput, issues *[]Issue) ([]Table, map[TableID]Table) {
	byID := make(map[TableID]Table, len(in))
	order := make([]TableID, 0, len(in))

	for _, tbl := range in {
		if _, dup := byID[tbl.ID]; dup {
			*issues = append(*issues, Issue{
				Kind:    InvalidInputData,
				Message: fmt.Sprintf("duplicate table id %q ignored", tbl.ID),
				Details: map[string]string{"table_id": tbl.ID},
			})
			continue
		}

		var source float64
		switch {
		case tbl.Capacity != nil:
			source = *tbl.Capacity
		case tbl.Seats != nil:
			source = *tbl.Seats
		}

		byID[tbl.ID] = Table{
			ID:       tbl.ID,
			Name:     tbl.Name,
			Capacity: clampCount(source),
		}
		order = append(order, tbl.ID)
	}

	out := make([]Table, 0, len(order))
	for _, id := range order {
		out = append(out, byID[id])
	}
	return out, byID
}

func normalizeConstraints(in map[string]map[string]string, guestByID map[GuestID]Guest, issues *[]Issue) []ConstraintEdge {
	type pairState struct {
		relation Relation
		set      bool
		conflict bool
	}
	seen := make(map[[2]GuestID]*pairState)

	order := make([][2]GuestID, 0)
	record := func(a, b GuestID, relStr string) {
		if a == b {
			*issues = append(*issues, Issue{
				Kind:    SelfReferenceIgnored,
				Message: fmt.Sprintf("self-referential constraint on %q ignored", a),
				Details: map[string]string{"guest_id": a},
			})
			return
		}
		if _, ok := guestByID[a]; !ok {
			*issues = append(*issues, Issue{
				Kind:    UnknownGuest,
				Message: fmt.Sprintf("constraint references unknown guest %q", a),
				Details: map[string]string{"guest_id": a},
			})
			return
		}
		if _, ok := guestByID[b]; !ok {
			*issues = append(*issues, Issue{
				Kind:    UnknownGuest,
				Message: fmt.Sprintf("constraint references unknown guest %q", b),
				Details: map[string]string{"guest_id": b},
			})
			return
		}

		var rel Relation
		switch relStr {
		case "must":
			rel = Must
		case "cannot":
			rel = Cannot
		default:
			*issues = append(*issues, Issue{
				Kind:    InvalidInputData,
				Message: fmt.Sprintf("unrecognized constraint label %q between %q and %q", relStr, a, b),
				Details: map[string]string{"a": a, "b": b, "label": relStr},
			})
			return
		}

		ca, cb := canonicalPair(a, b)
		key := [2]GuestID{ca, cb}
		st, ok := seen[key]
		if !ok {
			st = &pairState{}
			seen[key] = st
			order = append(order, key)
		}
		if st.set && st.relation != rel && !st.conflict {
			st.conflict = true
			*issues = append(*issues, Issue{
				Kind:    InvalidInputData,
				Message: fmt.Sprintf("conflicting must/cannot labels between %q and %q", ca, cb),
				Details: map[string]string{"a": ca, "b": cb},
			})
		}
		st.relation = rel
		st.set = true
	}

	outerKeys := make([]string, 0, len(in))
	for a := range in {
		outerKeys = append(outerKeys, a)
	}
	sort.Strings(outerKeys)
	for _, a := range outerKeys {
		row := in[a]
		innerKeys := make([]string, 0, len(row))
		for b := range row {
			innerKeys = append(innerKeys, b)
		}
		sort.Strings(innerKeys)
		for _, b := range innerKeys {
			record(a, b, row[b])
		}
	}

	out := make([]ConstraintEdge, 0, len(order))
	for _, key := range order {
		st := seen[key]
		if st.conflict || !st.set {
			continue
		}
		out = append(out, ConstraintEdge{A: key[0], B: key[1], Relation: st.relation})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

func normalizeAdjacents(in map[string][]string, guestByID map[GuestID]Guest, issues *[]Issue) []AdjacentEdge {
	seen := make(map[[2]GuestID]struct{})
	order := make([][2]GuestID, 0)

	record := func(a, b GuestID) {
		if a == b {
			*issues = append(*issues, Issue{
				Kind:    SelfReferenceIgnored,
				Message: fmt.Sprintf("self-referential adjacency on %q ignored", a),
				Details: map[string]string{"guest_id": a},
			})
			return
		}
		if _, ok := guestByID[a]; !ok {
			*issues = append(*issues, Issue{
				Kind:    UnknownGuest,
				Message: fmt.Sprintf("adjacency references unknown guest %q", a),
				Details: map[string]string{"guest_id": a},
			})
			return
		}
		if _, ok := guestByID[b]; !ok {
			*issues = append(*issues, Issue{
				Kind:    UnknownGuest,
				Message: fmt.Sprintf("adjacency references unknown guest %q", b),
				Details: map[string]string{"guest_id": b},
			})
			return
		}
		ca, cb := canonicalPair(a, b)
		key := [2]GuestID{ca, cb}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		order = append(order, key)
	}

	outerKeys := make([]string, 0, len(in))
	for a := range in {
		outerKeys = append(outerKeys, a)
	}
	sort.Strings(outerKeys)
	for _, a := range outerKeys {
		for _, b := range in[a] {
			record(a, b)
		}
	}

	out := make([]AdjacentEdge, 0, len(order))
	for _, key := range order {
		out = append(out, AdjacentEdge{A: key[0], B: key[1]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

func normalizeAssignments(in map[string]string, guestByID map[GuestID]Guest, tableByID map[TableID]Table, issues *[]Issue) PreAssignments {
	nameToID := make(map[string]TableID, len(tableByID))
	for id, tbl := range tableByID {
		if tbl.Name != "" {
			nameToID[strings.ToLower(tbl.Name)] = id
		}
	}

	out := make(PreAssignments, len(in))
	guestIDs := make([]string, 0, len(in))
	for guestID := range in {
		guestIDs = append(guestIDs, guestID)
	}
	sort.Strings(guestIDs)
	for _, guestID := range guestIDs {
		raw := in[guestID]
		if _, ok := guestByID[guestID]; !ok {
			*issues = append(*issues, Issue{
				Kind:    UnknownGuest,
				Message: fmt.Sprintf("assignment references unknown guest %q", guestID),
				Details: map[string]string{"guest_id": guestID},
			})
			continue
		}
		if isBlank(raw) {
			continue
		}

		tokens := tokenSplitter.Split(strings.TrimSpace(raw), -1)
		seen := make(map[TableID]struct{})
		var resolved []TableID
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			var tableID TableID
			if _, ok := tableByID[tok]; ok {
				tableID = tok
			} else if id, ok := nameToID[strings.ToLower(tok)]; ok {
				tableID = id
			} else {
				*issues = append(*issues, Issue{
					Kind:    InvalidInputData,
					Message: fmt.Sprintf("assignment for guest %q references unknown table token %q", guestID, tok),
					Details: map[string]string{"guest_id": guestID, "token": tok},
				})
				continue
			}
			if _, dup := seen[tableID]; dup {
				continue
			}
			seen[tableID] = struct{}{}
			resolved = append(resolved, tableID)
		}
		if len(resolved) > 0 {
			out[guestID] = resolved
		}
	}
	return out
}
