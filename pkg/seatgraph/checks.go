package seatgraph

import (
	"fmt"
	"sort"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// AdjacencyDegreeIssues implements check 1: no guest may have more than two
// adjacency partners, since a guest can only have two neighbors at a round
// table.
func AdjacencyDegreeIssues(cg *ConstraintGraph, guests []seatmodel.Guest) []seatmodel.Issue {
	var issues []seatmodel.Issue
	for _, g := range guests {
		if cg.AdjacencyDegree(g.ID) > 2 {
			issues = append(issues, seatmodel.Issue{
				Kind:    seatmodel.AdjacencyDegreeViolation,
				Message: fmt.Sprintf("guest %q has more than two adjacency partners", g.ID),
				Details: map[string]string{"guest_id": g.ID},
			})
		}
	}
	return issues
}

// isSimpleRing reports whether comp forms a closed ring: every member has
// adjacency degree exactly 2 and the component has at least three members.
func isSimpleRing(cg *ConstraintGraph, comp []seatmodel.GuestID) bool {
	if len(comp) < 3 {
		return false
	}
	for _, id := range comp {
		if cg.AdjacencyDegree(id) != 2 {
			return false
		}
	}
	return true
}

// ClosedAdjacencyCycleIssues implements check 2: every closed adjacency ring
// (a connected component where every member has exactly two adjacency
// partners and the component has at least three members) must have an
// aggregate head-count that exactly matches some table's capacity.
func ClosedAdjacencyCycleIssues(cg *ConstraintGraph, guests []seatmodel.Guest, tables []seatmodel.Table) []seatmodel.Issue {
	guestByID := make(map[seatmodel.GuestID]seatmodel.Guest, len(guests))
	for _, g := range guests {
		guestByID[g.ID] = g
	}

	maxCapacity := 0
	capacities := make(map[int]struct{}, len(tables))
	for _, t := range tables {
		capacities[t.Capacity] = struct{}{}
		if t.Capacity > maxCapacity {
			maxCapacity = t.Capacity
		}
	}

	var issues []seatmodel.Issue
	for _, comp := range cg.adjacentComponents() {
		if !isSimpleRing(cg, comp) {
			continue
		}

		size := 0
		for _, id := range comp {
			size += guestByID[id].Count
		}

		memberIDs := make([]string, len(comp))
		copy(memberIDs, comp)
		sort.Strings(memberIDs)

		switch {
		case size > maxCapacity:
			issues = append(issues, seatmodel.Issue{
				Kind:    seatmodel.AdjacencyClosedLoopTooBig,
				Message: fmt.Sprintf("closed adjacency ring of size %d exceeds every table's capacity (max %d)", size, maxCapacity),
				Details: map[string]string{"ring_size": fmt.Sprint(size), "members": fmt.Sprint(memberIDs)},
			})
		default:
			if _, exact := capacities[size]; !exact {
				issues = append(issues, seatmodel.Issue{
					Kind:    seatmodel.AdjacencyClosedLoopNotExact,
					Message: fmt.Sprintf("closed adjacency ring of size %d matches no table's capacity exactly", size),
					Details: map[string]string{"ring_size": fmt.Sprint(size), "members": fmt.Sprint(memberIDs)},
				})
			}
		}
	}
	return issues
}

// GroupCheckInput is the projection pkg/grouping hands back into this
// package so checks 3-5 can run without seatgraph importing grouping
// (which would create an import cycle, since grouping itself uses the
// Cannot graph built here).
type GroupCheckInput struct {
	RootID        seatmodel.GuestID
	Members       []seatmodel.GuestID
	Size          int
	AllowedTables []seatmodel.TableID // empty means "admissible anywhere"

	// HadRestrictions is true when at least one member carried a
	// nonempty pre-assignment before intersection. Distinguishes a
	// genuinely unrestricted group (AllowedTables empty, HadRestrictions
	// false) from a restricted group whose members' restrictions do not
	// overlap (AllowedTables empty, HadRestrictions true).
	HadRestrictions bool
}

// GroupIssues implements checks 3-5: a group whose members contradict each
// other (cant_within_must_group), a group too large for any table
// (group_too_big_for_any_table), and a group whose members' pre-assignment
// restrictions have an empty intersection (assignment_conflict).
func GroupIssues(cg *ConstraintGraph, groups []GroupCheckInput, maxTableCapacity int) []seatmodel.Issue {
	var issues []seatmodel.Issue

	for _, grp := range groups {
		members := make([]string, len(grp.Members))
		copy(members, grp.Members)
		sort.Strings(members)

		for i := 0; i < len(grp.Members); i++ {
			for j := i + 1; j < len(grp.Members); j++ {
				a, b := grp.Members[i], grp.Members[j]
				if cg.AreCannotPartners(a, b) {
					ca, cb := a, b
					if cb < ca {
						ca, cb = cb, ca
					}
					issues = append(issues, seatmodel.Issue{
						Kind:    seatmodel.CantWithinMustGroup,
						Message: fmt.Sprintf("guests %q and %q are fused into the same group but carry a cannot constraint", ca, cb),
						Details: map[string]string{"a": ca, "b": cb, "root": grp.RootID},
					})
				}
			}
		}

		if grp.Size > maxTableCapacity {
			issues = append(issues, seatmodel.Issue{
				Kind:    seatmodel.GroupTooBigForAnyTable,
				Message: fmt.Sprintf("group rooted at %q has size %d, exceeding every table's capacity (max %d)", grp.RootID, grp.Size, maxTableCapacity),
				Details: map[string]string{"root": grp.RootID, "size": fmt.Sprint(grp.Size), "members": fmt.Sprint(members)},
			})
		}

		if len(grp.AllowedTables) == 0 && groupHasEmptyAssignmentIntersection(grp) {
			issues = append(issues, seatmodel.Issue{
				Kind:    seatmodel.AssignmentConflict,
				Message: fmt.Sprintf("group rooted at %q has members whose pre-assignments share no common table", grp.RootID),
				Details: map[string]string{"root": grp.RootID, "members": fmt.Sprint(members)},
			})
		}
	}
	return issues
}

// groupHasEmptyAssignmentIntersection exists only as a documented seam: the
// actual per-member pre-assignment sets are intersected by pkg/grouping
// before GroupCheckInput is constructed, so by the time AllowedTables is
// empty with HadRestrictions set it already signals conflict. Kept here
// rather than inlined so the rule has one named, testable site.
func groupHasEmptyAssignmentIntersection(grp GroupCheckInput) bool {
	return grp.HadRestrictions
}
