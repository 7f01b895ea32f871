package seatgraph

import (
	"testing"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
	"pgregory.net/rapid"
)

func guest(id string, count int) seatmodel.Guest {
	return seatmodel.Guest{ID: id, Name: id, Count: count}
}

func table(id string, cap int) seatmodel.Table {
	return seatmodel.Table{ID: id, Name: id, Capacity: cap}
}

func TestBuild_PopulatesBothMaps(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1)},
		Constraints: []seatmodel.ConstraintEdge{
			{A: "A", B: "B", Relation: seatmodel.Cannot},
			{A: "B", B: "C", Relation: seatmodel.Must},
		},
		Adjacents: []seatmodel.AdjacentEdge{{A: "A", B: "C"}},
	}
	cg := Build(n)
	if !cg.AreCannotPartners("A", "B") || !cg.AreCannotPartners("B", "A") {
		t.Fatalf("expected A/B cannot edge both directions")
	}
	if cg.AreCannotPartners("B", "C") {
		t.Fatalf("must edge should not appear in Cannot map")
	}
	if !cg.AreAdjacentPartners("A", "C") {
		t.Fatalf("expected A/C adjacency edge")
	}
	if cg.AdjacencyDegree("A") != 1 {
		t.Fatalf("expected degree 1 for A, got %d", cg.AdjacencyDegree("A"))
	}
}

func TestAdjacencyDegreeIssues_FlagsDegreeAboveTwo(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1), guest("D", 1)},
		Adjacents: []seatmodel.AdjacentEdge{
			{A: "A", B: "B"},
			{A: "A", B: "C"},
			{A: "A", B: "D"},
		},
	}
	cg := Build(n)
	issues := AdjacencyDegreeIssues(cg, n.Guests)
	if len(issues) != 1 || issues[0].Kind != seatmodel.AdjacencyDegreeViolation {
		t.Fatalf("expected single adjacency_degree_violation for A, got %v", issues)
	}
	if issues[0].Details["guest_id"] != "A" {
		t.Fatalf("expected violation on A, got %v", issues[0].Details)
	}
}

func TestClosedAdjacencyCycleIssues_ExactMatchProducesNoIssue(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1), guest("D", 1)},
		Adjacents: []seatmodel.AdjacentEdge{
			{A: "A", B: "B"},
			{A: "B", B: "C"},
			{A: "C", B: "D"},
			{A: "D", B: "A"},
		},
	}
	cg := Build(n)
	tables := []seatmodel.Table{table("T1", 4), table("T2", 6)}
	issues := ClosedAdjacencyCycleIssues(cg, n.Guests, tables)
	if len(issues) != 0 {
		t.Fatalf("expected no issues for exact ring match, got %v", issues)
	}
}

func TestClosedAdjacencyCycleIssues_TooBig(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1)},
		Adjacents: []seatmodel.AdjacentEdge{
			{A: "A", B: "B"},
			{A: "B", B: "C"},
			{A: "C", B: "A"},
		},
	}
	cg := Build(n)
	tables := []seatmodel.Table{table("T1", 2)}
	issues := ClosedAdjacencyCycleIssues(cg, n.Guests, tables)
	if len(issues) != 1 || issues[0].Kind != seatmodel.AdjacencyClosedLoopTooBig {
		t.Fatalf("expected adjacency_closed_loop_too_big, got %v", issues)
	}
}

func TestClosedAdjacencyCycleIssues_NotExact(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1)},
		Adjacents: []seatmodel.AdjacentEdge{
			{A: "A", B: "B"},
			{A: "B", B: "C"},
			{A: "C", B: "A"},
		},
	}
	cg := Build(n)
	tables := []seatmodel.Table{table("T1", 8)}
	issues := ClosedAdjacencyCycleIssues(cg, n.Guests, tables)
	if len(issues) != 1 || issues[0].Kind != seatmodel.AdjacencyClosedLoopNotExact {
		t.Fatalf("expected adjacency_closed_loop_not_exact, got %v", issues)
	}
}

func TestClosedAdjacencyCycleIssues_NonRingChainIgnored(t *testing.T) {
	// A-B-C open chain: B has degree 2 but A and C have degree 1, so this
	// is not a simple ring and should never be capacity-checked.
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1), guest("C", 1)},
		Adjacents: []seatmodel.AdjacentEdge{
			{A: "A", B: "B"},
			{A: "B", B: "C"},
		},
	}
	cg := Build(n)
	tables := []seatmodel.Table{table("T1", 1)}
	issues := ClosedAdjacencyCycleIssues(cg, n.Guests, tables)
	if len(issues) != 0 {
		t.Fatalf("expected no issues for open chain, got %v", issues)
	}
}

func TestGroupIssues_CantWithinMustGroup(t *testing.T) {
	n := seatmodel.Normalized{
		Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1)},
		Constraints: []seatmodel.ConstraintEdge{
			{A: "A", B: "B", Relation: seatmodel.Cannot},
		},
	}
	cg := Build(n)
	groups := []GroupCheckInput{{RootID: "A", Members: []seatmodel.GuestID{"A", "B"}, Size: 2}}
	issues := GroupIssues(cg, groups, 10)
	found := false
	for _, it := range issues {
		if it.Kind == seatmodel.CantWithinMustGroup {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected cant_within_must_group, got %v", issues)
	}
}

func TestGroupIssues_TooBigForAnyTable(t *testing.T) {
	cg := Build(seatmodel.Normalized{Guests: []seatmodel.Guest{guest("A", 1)}})
	groups := []GroupCheckInput{{RootID: "A", Members: []seatmodel.GuestID{"A"}, Size: 12}}
	issues := GroupIssues(cg, groups, 10)
	if len(issues) != 1 || issues[0].Kind != seatmodel.GroupTooBigForAnyTable {
		t.Fatalf("expected group_too_big_for_any_table, got %v", issues)
	}
}

func TestGroupIssues_AssignmentConflict(t *testing.T) {
	cg := Build(seatmodel.Normalized{Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1)}})
	groups := []GroupCheckInput{{
		RootID:          "A",
		Members:         []seatmodel.GuestID{"A", "B"},
		Size:            2,
		AllowedTables:   nil,
		HadRestrictions: true,
	}}
	issues := GroupIssues(cg, groups, 10)
	if len(issues) != 1 || issues[0].Kind != seatmodel.AssignmentConflict {
		t.Fatalf("expected assignment_conflict, got %v", issues)
	}
}

func TestGroupIssues_NoRestrictionsNoConflict(t *testing.T) {
	cg := Build(seatmodel.Normalized{Guests: []seatmodel.Guest{guest("A", 1), guest("B", 1)}})
	groups := []GroupCheckInput{{RootID: "A", Members: []seatmodel.GuestID{"A", "B"}, Size: 2}}
	issues := GroupIssues(cg, groups, 10)
	if len(issues) != 0 {
		t.Fatalf("expected no issues for unrestricted group, got %v", issues)
	}
}

// TestProperty_AdjacencyDegreeNeverExceedsTwoWithoutViolation generates
// random adjacency edge sets and asserts AdjacencyDegreeIssues flags
// exactly the guests whose computed degree exceeds two.
func TestProperty_AdjacencyDegreeNeverExceedsTwoWithoutViolation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		numGuests := rapid.IntRange(2, 8).Draw(t, "numGuests")
		guests := make([]seatmodel.Guest, numGuests)
		ids := make([]string, numGuests)
		for i := 0; i < numGuests; i++ {
			ids[i] = string(rune('A' + i))
			guests[i] = guest(ids[i], 1)
		}

		numEdges := rapid.IntRange(0, numGuests*2).Draw(t, "numEdges")
		var adjacents []seatmodel.AdjacentEdge
		for i := 0; i < numEdges; i++ {
			a := ids[rapid.IntRange(0, numGuests-1).Draw(t, "a")]
			b := ids[rapid.IntRange(0, numGuests-1).Draw(t, "b")]
			if a == b {
				continue
			}
			adjacents = append(adjacents, seatmodel.AdjacentEdge{A: a, B: b})
		}

		cg := Build(seatmodel.Normalized{Guests: guests, Adjacents: adjacents})
		issues := AdjacencyDegreeIssues(cg, guests)

		flagged := make(map[string]bool)
		for _, it := range issues {
			flagged[it.Details["guest_id"]] = true
		}
		for _, id := range ids {
			want := cg.AdjacencyDegree(id) > 2
			if flagged[id] != want {
				t.Fatalf("guest %s: degree %d, flagged=%v want=%v", id, cg.AdjacencyDegree(id), flagged[id], want)
			}
		}
	})
}
