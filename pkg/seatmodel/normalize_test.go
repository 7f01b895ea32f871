package seatmodel

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

func f64(v float64) *float64 { return &v }

func TestNormalize_DuplicateGuestKeepsFirst(t *testing.T) {
	in := []GuestInput{
		{ID: "A", Name: "Alice", Count: 1},
		{ID: "A", Name: "Impostor", Count: 5},
	}
	norm, issues := Normalize(in, nil, nil, nil, nil)

	if len(norm.Guests) != 1 {
		t.Fatalf("expected 1 guest, got %d", len(norm.Guests))
	}
	if norm.Guests[0].Name != "Alice" {
		t.Fatalf("expected first guest to win, got %q", norm.Guests[0].Name)
	}

	found := false
	for _, it := range issues {
		if it.Kind == InvalidInputData {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid_input_data issue for duplicate guest, got %v", issues)
	}
}

func TestNormalize_BlankNameSynthesized(t *testing.T) {
	in := []GuestInput{{ID: "G1", Name: "", Count: 2}}
	norm, _ := Normalize(in, nil, nil, nil, nil)
	if norm.GuestByID["G1"].Name != "Guest G1" {
		t.Fatalf("expected synthesized name, got %q", norm.GuestByID["G1"].Name)
	}
}

func TestNormalize_CountClampedToAtLeastOne(t *testing.T) {
	in := []GuestInput{
		{ID: "A", Name: "A", Count: 0},
		{ID: "B", Name: "B", Count: -5},
		{ID: "C", Name: "C", Count: 3.9},
	}
	norm, _ := Normalize(in, nil, nil, nil, nil)
	if norm.GuestByID["A"].Count != 1 {
		t.Fatalf("expected count clamp to 1, got %d", norm.GuestByID["A"].Count)
	}
	if norm.GuestByID["B"].Count != 1 {
		t.Fatalf("expected count clamp to 1, got %d", norm.GuestByID["B"].Count)
	}
	if norm.GuestByID["C"].Count != 3 {
		t.Fatalf("expected floor(3.9)=3, got %d", norm.GuestByID["C"].Count)
	}
}

func TestNormalize_TableCapacityFallsBackToSeats(t *testing.T) {
	in := []TableInput{
		{ID: "T1", Seats: f64(6)},
		{ID: "T2", Capacity: f64(4), Seats: f64(99)},
	}
	norm, _ := Normalize(nil, in, nil, nil, nil)
	if norm.TableByID["T1"].Capacity != 6 {
		t.Fatalf("expected capacity fallback to seats=6, got %d", norm.TableByID["T1"].Capacity)
	}
	if norm.TableByID["T2"].Capacity != 4 {
		t.Fatalf("expected explicit capacity=4 to win over seats, got %d", norm.TableByID["T2"].Capacity)
	}
}

func TestNormalize_SelfReferenceIgnored(t *testing.T) {
	guests := []GuestInput{{ID: "A", Name: "A", Count: 1}}
	constraints := map[string]map[string]string{"A": {"A": "must"}}
	norm, issues := Normalize(guests, nil, constraints, nil, nil)
	if len(norm.Constraints) != 0 {
		t.Fatalf("expected self-loop dropped, got %v", norm.Constraints)
	}
	if len(issues) != 1 || issues[0].Kind != SelfReferenceIgnored {
		t.Fatalf("expected single self_reference_ignored issue, got %v", issues)
	}
}

func TestNormalize_UnknownGuestReference(t *testing.T) {
	guests := []GuestInput{{ID: "A", Name: "A", Count: 1}}
	constraints := map[string]map[string]string{"A": {"Ghost": "must"}}
	_, issues := Normalize(guests, nil, constraints, nil, nil)
	if len(issues) != 1 || issues[0].Kind != UnknownGuest {
		t.Fatalf("expected unknown_guest issue, got %v", issues)
	}
}

func TestNormalize_ConflictingLabelsDropped(t *testing.T) {
	guests := []GuestInput{
		{ID: "A", Name: "A", Count: 1},
		{ID: "B", Name: "B", Count: 1},
	}
	constraints := map[string]map[string]string{
		"A": {"B": "must"},
		"B": {"A": "cannot"},
	}
	norm, issues := Normalize(guests, nil, constraints, nil, nil)
	if len(norm.Constraints) != 0 {
		t.Fatalf("expected conflicting edge dropped, got %v", norm.Constraints)
	}
	found := false
	for _, it := range issues {
		if it.Kind == InvalidInputData {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected invalid_input_data for conflicting labels, got %v", issues)
	}
}

func TestNormalize_AsymmetricConstraintIsAuthoritative(t *testing.T) {
	guests := []GuestInput{
		{ID: "A", Name: "A", Count: 1},
		{ID: "B", Name: "B", Count: 1},
	}
	// Only declared on one side.
	constraints := map[string]map[string]string{"A": {"B": "must"}}
	norm, _ := Normalize(guests, nil, constraints, nil, nil)
	if len(norm.Constraints) != 1 {
		t.Fatalf("expected one constraint edge, got %d", len(norm.Constraints))
	}
	if norm.Constraints[0].Relation != Must {
		t.Fatalf("expected must relation")
	}
}

func TestNormalize_DuplicateUndirectedEdgeCoalesced(t *testing.T) {
	guests := []GuestInput{
		{ID: "A", Name: "A", Count: 1},
		{ID: "B", Name: "B", Count: 1},
	}
	constraints := map[string]map[string]string{
		"A": {"B": "must"},
		"B": {"A": "must"},
	}
	norm, _ := Normalize(guests, nil, constraints, nil, nil)
	if len(norm.Constraints) != 1 {
		t.Fatalf("expected duplicate edge coalesced to one, got %d", len(norm.Constraints))
	}
}

func TestNormalize_AssignmentParsesMixedSeparators(t *testing.T) {
	guests := []GuestInput{{ID: "A", Name: "A", Count: 1}}
	tables := []TableInput{
		{ID: "1", Seats: f64(4)},
		{ID: "2", Seats: f64(4)},
		{ID: "3", Seats: f64(4)},
	}
	assignments := map[string]string{"A": "1, 2.3"}
	norm, issues := Normalize(guests, tables, nil, nil, assignments)
	for _, it := range issues {
		t.Fatalf("unexpected issue: %v", it)
	}
	want := []string{"1", "2", "3"}
	got := norm.Assignments["A"]
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNormalize_AssignmentByTableName(t *testing.T) {
	guests := []GuestInput{{ID: "A", Name: "A", Count: 1}}
	tables := []TableInput{{ID: "1", Name: "HeadTable", Seats: f64(4)}}
	assignments := map[string]string{"A": "headtable"}
	norm, issues := Normalize(guests, tables, nil, nil, assignments)
	for _, it := range issues {
		t.Fatalf("unexpected issue: %v", it)
	}
	if len(norm.Assignments["A"]) != 1 || norm.Assignments["A"][0] != "1" {
		t.Fatalf("expected resolved assignment to table 1, got %v", norm.Assignments["A"])
	}
}

func TestNormalize_AssignmentUnknownTokenReported(t *testing.T) {
	guests := []GuestInput{{ID: "A", Name: "A", Count: 1}}
	assignments := map[string]string{"A": "nonexistent"}
	_, issues := Normalize(guests, nil, nil, nil, assignments)
	if len(issues) != 1 || issues[0].Kind != InvalidInputData {
		t.Fatalf("expected invalid_input_data for unknown assignment token, got %v", issues)
	}
}

// TestNormalize_IssueOrderIsDeterministicAcrossRepeatedCalls guards against
// Go's randomized map iteration leaking into the returned Issue order: the
// constraints/adjacents/assignments inputs are maps, and repeated calls with
// the identical input must yield byte-identical issue lists every time.
func TestNormalize_IssueOrderIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	guests := []GuestInput{
		{ID: "A", Name: "A", Count: 1},
		{ID: "B", Name: "B", Count: 1},
		{ID: "C", Name: "C", Count: 1},
	}
	constraints := map[string]map[string]string{
		"A": {"Ghost1": "must", "Ghost2": "must", "C": "bogus"},
		"B": {"Ghost3": "cannot"},
		"C": {"Ghost4": "must"},
	}
	adjacents := map[string][]string{
		"A": {"Ghost5", "Ghost6"},
		"B": {"Ghost7"},
		"C": {"Ghost8", "Ghost9"},
	}
	assignments := map[string]string{
		"A": "nonexistent1",
		"B": "nonexistent2",
		"C": "nonexistent3",
	}

	_, first := Normalize(guests, nil, constraints, adjacents, assignments)
	if len(first) == 0 {
		t.Fatalf("expected at least one issue to compare ordering against")
	}

	for i := 0; i < 20; i++ {
		_, issues := Normalize(guests, nil, constraints, adjacents, assignments)
		if len(issues) != len(first) {
			t.Fatalf("run %d: expected %d issues, got %d", i, len(first), len(issues))
		}
		for j := range first {
			if issues[j].Kind != first[j].Kind || issues[j].Message != first[j].Message {
				t.Fatalf("run %d: issue order diverged at index %d: got %+v, want %+v", i, j, issues[j], first[j])
			}
		}
	}
}

// TestProperty_NormalizeNeverPanicsAndClampsCounts generates random guest
// lists and asserts Normalize never panics and every resulting guest has a
// head-count of at least 1, per spec.md 4.C.
func TestProperty_NormalizeNeverPanicsAndClampsCounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		guests := make([]GuestInput, n)
		for i := 0; i < n; i++ {
			guests[i] = GuestInput{
				ID:    fmt.Sprintf("G%d", i),
				Name:  rapid.StringN(0, 10, -1).Draw(t, fmt.Sprintf("name_%d", i)),
				Count: rapid.Float64Range(-10, 10).Draw(t, fmt.Sprintf("count_%d", i)),
			}
		}

		norm, _ := Normalize(guests, nil, nil, nil, nil)
		if len(norm.Guests) != n {
			t.Fatalf("expected %d guests, got %d", n, len(norm.Guests))
		}
		for _, g := range norm.Guests {
			if g.Count < 1 {
				t.Fatalf("guest %s has count %d < 1", g.ID, g.Count)
			}
		}
	})
}
