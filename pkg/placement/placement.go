package placement

import (
	"context"
	"sort"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/grouping"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatgraph"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatrng"
)

// Result is the outcome of a successful placement run: a flat per-guest
// table assignment plus, per table, the members seated there in the order
// phase 1/2 placed their groups (not yet the final ring order — that is
// pkg/ordering's job).
type Result struct {
	Placed         map[seatmodel.GuestID]seatmodel.TableID
	TableOccupants map[seatmodel.TableID][]seatmodel.GuestID
}

type tableState struct {
	table     seatmodel.Table
	remaining int
	occupants []seatmodel.GuestID
}

// searchState is one run's mutable search state. Its aborted flag is set
// when the deadline or attempt cap is hit; it is never exposed to callers,
// only a private sentinel distinguishing "budget exhausted" from "provably
// no admissible table."
type searchState struct {
	ctx         context.Context
	rng         *seatrng.RNG
	cg          *seatgraph.ConstraintGraph
	tables      []*tableState
	attempts    int
	maxAttempts int
	aborted     bool
}

// Run executes phase 1 (preassignment) then phase 2 (hardest-first
// backtrack) for a single search attempt. ok is false if phase 1 fails
// outright, the backtrack search exhausts every branch, or the deadline
// /attempt budget is exceeded before a full assignment is found — in every
// such case the caller (pkg/solver) simply tries the next seed.
func Run(ctx context.Context, rng *seatrng.RNG, groups []grouping.Group, tables []seatmodel.Table, cg *seatgraph.ConstraintGraph, maxAttempts int) (Result, bool) {
	states := make([]*tableState, len(tables))
	for i, t := range tables {
		states[i] = &tableState{table: t, remaining: t.Capacity}
	}

	st := &searchState{ctx: ctx, rng: rng, cg: cg, tables: states, maxAttempts: maxAttempts}

	placed := make(map[seatmodel.GuestID]seatmodel.TableID)

	var preassigned, rest []grouping.Group
	for _, g := range groups {
		if g.Preassigned {
			preassigned = append(preassigned, g)
		} else {
			rest = append(rest, g)
		}
	}

	for _, g := range preassigned {
		ts := st.bestPreassignedTable(g)
		if ts == nil {
			return Result{}, false
		}
		seatGroup(ts, g, placed)
	}

	grouping.SortHardestFirst(rest)

	if !st.backtrack(rest, 0, placed) {
		return Result{}, false
	}

	occupants := make(map[seatmodel.TableID][]seatmodel.GuestID, len(states))
	for _, ts := range states {
		if len(ts.occupants) > 0 {
			occupants[ts.table.ID] = ts.occupants
		}
	}
	return Result{Placed: placed, TableOccupants: occupants}, true
}

// bestPreassignedTable picks, among g.AllowedTables, the first admissible
// table with sufficient remaining capacity and no cannot violation, in
// the order the tables were passed to Run. A preassigned group with no admissible table is a fatal
// input condition per spec.md 4.F phase 1 and fails the run immediately.
func (st *searchState) bestPreassignedTable(g grouping.Group) *tableState {
	for _, ts := range st.tables {
		if !contains(g.AllowedTables, ts.table.ID) {
			continue
		}
		if admissible(ts, g) {
			return ts
		}
	}
	return nil
}

func contains(ids []seatmodel.TableID, id seatmodel.TableID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func admissible(ts *tableState, g grouping.Group) bool {
	if ts.remaining < g.Size {
		return false
	}
	for _, o := range ts.occupants {
		if _, bad := g.CannotNeighbors[o]; bad {
			return false
		}
	}
	return true
}

func seatGroup(ts *tableState, g grouping.Group, placed map[seatmodel.GuestID]seatmodel.TableID) {
	ts.remaining -= g.Size
	ts.occupants = append(ts.occupants, g.Members...)
	for _, m := range g.Members {
		placed[m] = ts.table.ID
	}
}

func unseatGroup(ts *tableState, g grouping.Group, placed map[seatmodel.GuestID]seatmodel.TableID) {
	ts.remaining += g.Size
	ts.occupants = ts.occupants[:len(ts.occupants)-len(g.Members)]
	for _, m := range g.Members {
		delete(placed, m)
	}
}

// backtrack attempts to seat groups[idx:] given the tables' current state,
// trying ranked candidates for groups[idx] and recursing, unwinding on
// failure. It returns false if the deadline/attempt budget was exhausted
// or every branch failed.
func (st *searchState) backtrack(groups []grouping.Group, idx int, placed map[seatmodel.GuestID]seatmodel.TableID) bool {
	if idx == len(groups) {
		return true
	}
	select {
	case <-st.ctx.Done():
		st.aborted = true
		return false
	default:
	}

	g := groups[idx]
	for _, ts := range st.rankedCandidates(g) {
		st.attempts++
		if st.attempts > st.maxAttempts {
			st.aborted = true
			return false
		}
		seatGroup(ts, g, placed)
		if st.backtrack(groups, idx+1, placed) {
			return true
		}
		unseatGroup(ts, g, placed)
		if st.aborted {
			return false
		}
	}
	return false
}

type scoredCandidate struct {
	ts    *tableState
	score int
}

// rankedCandidates returns the admissible tables for g, ordered by
// descending score with ties broken lexicographically by table id, then
// shuffled within each equal-score bucket using the search's RNG.
func (st *searchState) rankedCandidates(g grouping.Group) []*tableState {
	var scored []scoredCandidate
	for _, ts := range st.tables {
		if !admissible(ts, g) {
			continue
		}
		if len(g.AllowedTables) > 0 && !contains(g.AllowedTables, ts.table.ID) {
			continue
		}
		scored = append(scored, scoredCandidate{ts: ts, score: overlapScore(st.cg, ts, g)})
	}

	// Baseline order: score descending, table id ascending.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].ts.table.ID < scored[j].ts.table.ID
	})

	// Shuffle within each equal-score run so distinct seeds explore
	// different orderings among ties.
	start := 0
	for i := 1; i <= len(scored); i++ {
		if i == len(scored) || scored[i].score != scored[start].score {
			seatrng.Shuffle(st.rng, scored[start:i])
			start = i
		}
	}

	out := make([]*tableState, len(scored))
	for i, sc := range scored {
		out[i] = sc.ts
	}
	return out
}

func overlapScore(cg *seatgraph.ConstraintGraph, ts *tableState, g grouping.Group) int {
	overlap := 0
	for _, o := range ts.occupants {
		for _, m := range g.Members {
			if cg.AreAdjacentPartners(o, m) {
				overlap++
				break
			}
		}
	}
	return overlap*10 - (ts.remaining - g.Size)
}
