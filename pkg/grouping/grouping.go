package grouping

import (
	"sort"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatgraph"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/unionfind"
)

// Group is an atomic placement unit: a set of guests fused by must and/or
// adjacent edges, plus the aggregates pkg/placement and pkg/seatgraph need
// to reason about it as a whole.
type Group struct {
	RootID seatmodel.GuestID
	// Members is sorted ascending for deterministic downstream iteration.
	Members []seatmodel.GuestID
	// Size is the sum of every member's head-count.
	Size int
	// CannotNeighbors is the set of guest ids outside this group that any
	// member carries a cannot edge with.
	CannotNeighbors map[seatmodel.GuestID]struct{}
	// RingDegree is the sum of every member's intra-group adjacency
	// degree; a proxy for how internally constrained the eventual seat
	// ordering will be.
	RingDegree int
	// AllowedTables is the intersection of every member's non-empty
	// pre-assignment table lists. Empty means "admissible anywhere"
	// unless HadRestrictions is set, in which case it means "no table
	// satisfies every member's restriction."
	AllowedTables []seatmodel.TableID
	// HadRestrictions is true when at least one member carried a
	// nonempty pre-assignment.
	HadRestrictions bool
	// Preassigned is true only when AllowedTables narrows to exactly one
	// table: the group has a single binding table and can be pinned
	// greedily in placement's phase 1. A group restricted to two or more
	// tables is not Preassigned — its table choice among AllowedTables
	// still needs phase 2's backtracking search, since a greedy pin could
	// pick the one table that later makes some other group infeasible.
	Preassigned bool
}

// Build fuses guests into groups using must and adjacent edges (adjacent
// implies must, unioned here only — pkg/seatgraph's Cannot/Adjacent maps
// are left untouched) and computes every aggregate pkg/placement needs.
func Build(n seatmodel.Normalized, cg *seatgraph.ConstraintGraph) []Group {
	ids := make([]string, 0, len(n.Guests))
	for _, g := range n.Guests {
		ids = append(ids, g.ID)
	}
	ds := unionfind.New(ids)

	for _, e := range n.Constraints {
		if e.Relation == seatmodel.Must {
			ds.Union(e.A, e.B)
		}
	}
	for _, e := range n.Adjacents {
		ds.Union(e.A, e.B)
	}

	guestByID := n.GuestByID
	components := ds.Components()

	roots := make([]string, 0, len(components))
	for r := range components {
		roots = append(roots, r)
	}
	sort.Strings(roots)

	groups := make([]Group, 0, len(roots))
	for _, root := range roots {
		members := append([]string(nil), components[root]...)
		sort.Strings(members)

		size := 0
		ringDegree := 0
		cannotNeighbors := make(map[seatmodel.GuestID]struct{})
		memberSet := make(map[seatmodel.GuestID]struct{}, len(members))
		for _, m := range members {
			memberSet[m] = struct{}{}
		}

		for _, m := range members {
			size += guestByID[m].Count
			ringDegree += cg.AdjacencyDegree(m)
			for other := range cg.Cannot[m] {
				if _, inGroup := memberSet[other]; !inGroup {
					cannotNeighbors[other] = struct{}{}
				}
			}
		}

		allowed, hadRestrictions := intersectAssignments(members, n.Assignments)

		groups = append(groups, Group{
			RootID:          root,
			Members:         members,
			Size:            size,
			CannotNeighbors: cannotNeighbors,
			RingDegree:      ringDegree,
			AllowedTables:   allowed,
			HadRestrictions: hadRestrictions,
			Preassigned:     hadRestrictions && len(allowed) == 1,
		})
	}

	return groups
}

// intersectAssignments intersects every member's nonempty pre-assignment
// list. If no member carries a restriction, it returns (nil, false)
// meaning "admissible anywhere." If at least one member does, it returns
// the (possibly empty) intersection and true.
func intersectAssignments(members []seatmodel.GuestID, assignments seatmodel.PreAssignments) ([]seatmodel.TableID, bool) {
	var current map[seatmodel.TableID]struct{}
	hadRestrictions := false

	for _, m := range members {
		tables := assignments[m]
		if len(tables) == 0 {
			continue
		}
		hadRestrictions = true
		set := make(map[seatmodel.TableID]struct{}, len(tables))
		for _, t := range tables {
			set[t] = struct{}{}
		}
		if current == nil {
			current = set
			continue
		}
		next := make(map[seatmodel.TableID]struct{})
		for t := range current {
			if _, ok := set[t]; ok {
				next[t] = struct{}{}
			}
		}
		current = next
	}

	if !hadRestrictions {
		return nil, false
	}

	out := make([]seatmodel.TableID, 0, len(current))
	for t := range current {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, true
}

// CheckInputs projects groups into pkg/seatgraph's GroupCheckInput shape
// for checks 3-5.
func CheckInputs(groups []Group) []seatgraph.GroupCheckInput {
	out := make([]seatgraph.GroupCheckInput, 0, len(groups))
	for _, g := range groups {
		out = append(out, seatgraph.GroupCheckInput{
			RootID:          g.RootID,
			Members:         g.Members,
			Size:            g.Size,
			AllowedTables:   g.AllowedTables,
			HadRestrictions: g.HadRestrictions,
		})
	}
	return out
}

// difficulty is the hardest-first sort key: larger groups, groups with more
// external cannot-constraints, and groups with tighter internal adjacency
// structure sort earlier. A group Preassigned to its single allowed table
// (exactly one element in AllowedTables) carries a -1000 bias, which under
// the descending sort moves it to the very end. pkg/placement seats
// Preassigned groups in phase 1, before it sorts the remaining groups, so
// they are still placed first. A group restricted to two or more tables is
// not Preassigned and sorts purely on size/constraint difficulty like any
// other group in phase 2's backtrack.
func difficulty(g Group) int {
	d := g.Size + len(g.CannotNeighbors) + g.RingDegree
	if g.Preassigned {
		d -= 1000
	}
	return d
}

// SortHardestFirst orders groups by descending difficulty (hardest/most
// constrained first), breaking ties lexicographically by root id so the
// ordering is stable across repeated runs over the same input.
func SortHardestFirst(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		di, dj := difficulty(groups[i]), difficulty(groups[j])
		if di != dj {
			return di > dj
		}
		return groups[i].RootID < groups[j].RootID
	})
}
