package solver

import (
	"context"
	"sort"
	"time"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/grouping"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/ordering"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/placement"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/scoring"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatgraph"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatrng"
)

// Options configures GeneratePlans. Every zero-valued field, including a
// zero Weights, is replaced with the DefaultOptions value, so a zero
// Options runs with the defaults.
type Options struct {
	Seed              uint32
	TimeBudgetMs      int
	TargetPlans       int
	MaxAttemptsPerRun int
	RunsMultiplier    int
	Weights           scoring.Weights
}

// DefaultOptions returns the specification's free-mode defaults. Premium
// mode overrides TimeBudgetMs to 3500 and TargetPlans to 30; every other
// field is shared between the two tiers.
func DefaultOptions() Options {
	return Options{
		Seed:              seatrng.DefaultSeed,
		TimeBudgetMs:      1500,
		TargetPlans:       10,
		MaxAttemptsPerRun: 7500,
		RunsMultiplier:    3,
		Weights:           scoring.DefaultWeights(),
	}
}

// withDefaults fills any zero-valued field with DefaultOptions' value so
// callers may supply a partially populated Options.
func withDefaults(o Options) Options {
	d := DefaultOptions()
	if o.Seed == 0 {
		o.Seed = d.Seed
	}
	if o.TimeBudgetMs == 0 {
		o.TimeBudgetMs = d.TimeBudgetMs
	}
	if o.TargetPlans == 0 {
		o.TargetPlans = d.TargetPlans
	}
	if o.MaxAttemptsPerRun == 0 {
		o.MaxAttemptsPerRun = d.MaxAttemptsPerRun
	}
	if o.RunsMultiplier == 0 {
		o.RunsMultiplier = d.RunsMultiplier
	}
	if o.Weights == (scoring.Weights{}) {
		o.Weights = d.Weights
	}
	return o
}

// Input bundles the five loose external collections GeneratePlans and
// DetectConflicts both normalize before doing anything else.
type Input struct {
	Guests      []seatmodel.GuestInput
	Tables      []seatmodel.TableInput
	Constraints map[string]map[string]string
	Adjacents   map[string][]string
	Assignments map[string]string
}

func validate(n seatmodel.Normalized, cg *seatgraph.ConstraintGraph) []seatmodel.Issue {
	var issues []seatmodel.Issue
	issues = append(issues, seatgraph.AdjacencyDegreeIssues(cg, n.Guests)...)
	issues = append(issues, seatgraph.ClosedAdjacencyCycleIssues(cg, n.Guests, n.Tables)...)
	return issues
}

func maxTableCapacity(tables []seatmodel.Table) int {
	max := 0
	for _, t := range tables {
		if t.Capacity > max {
			max = t.Capacity
		}
	}
	return max
}

// DetectConflicts runs §4.C-§4.E's validations (normalize, graph checks,
// and the grouping-derived intra-group/assignment checks) and returns the
// accumulated issues without ever invoking the placement search.
func DetectConflicts(in Input) []seatmodel.Issue {
	n, issues := seatmodel.Normalize(in.Guests, in.Tables, in.Constraints, in.Adjacents, in.Assignments)
	cg := seatgraph.Build(n)
	issues = append(issues, validate(n, cg)...)

	groups := grouping.Build(n, cg)
	maxCap := maxTableCapacity(n.Tables)
	issues = append(issues, seatgraph.GroupIssues(cg, grouping.CheckInputs(groups), maxCap)...)
	return issues
}

// DetectAdjacencyConflicts is DetectConflicts filtered to the adjacency-only
// error family, for UIs that want to surface only ring/degree problems.
func DetectAdjacencyConflicts(in Input) []seatmodel.Issue {
	return seatmodel.FilterAdjacencyIssues(DetectConflicts(in))
}

// GeneratePlans runs the full pipeline: normalize, validate, group, then a
// multi-seed search loop that places, orders, scores, and deduplicates
// candidate plans within a wall-clock budget. If validation produced any
// fatal issue, the search never runs and GeneratePlans returns (nil,
// issues).
func GeneratePlans(in Input, opts Options) ([]seatmodel.Plan, []seatmodel.Issue) {
	opts = withDefaults(opts)

	n, issues := seatmodel.Normalize(in.Guests, in.Tables, in.Constraints, in.Adjacents, in.Assignments)
	cg := seatgraph.Build(n)
	issues = append(issues, validate(n, cg)...)

	groups := grouping.Build(n, cg)
	maxCap := maxTableCapacity(n.Tables)
	issues = append(issues, seatgraph.GroupIssues(cg, grouping.CheckInputs(groups), maxCap)...)

	if seatmodel.AnyFatal(issues) {
		return nil, issues
	}

	maxRuns := opts.TargetPlans * opts.RunsMultiplier
	if floor := opts.TargetPlans + 5; floor > maxRuns {
		maxRuns = floor
	}
	if maxRuns < 1 {
		maxRuns = 1
	}

	baseRNG := seatrng.New(opts.Seed)
	deadline := time.Now().Add(time.Duration(opts.TimeBudgetMs) * time.Millisecond)
	perRunBudget := opts.TimeBudgetMs / maxRuns
	if perRunBudget < 60 {
		perRunBudget = 60
	}

	dedup := scoring.NewDeduper()

	for run := 0; run < maxRuns; run++ {
		if time.Now().After(deadline) {
			break
		}
		if len(dedup.Plans()) >= opts.TargetPlans {
			break
		}

		seedOffset := baseRNG.NextU32()
		runRNG := seatrng.New(seedOffset)

		runDeadline := time.Now().Add(time.Duration(perRunBudget) * time.Millisecond)
		if runDeadline.After(deadline) {
			runDeadline = deadline
		}
		ctx, cancel := context.WithDeadline(context.Background(), runDeadline)
		result, ok := placement.Run(ctx, runRNG, groups, n.Tables, cg, opts.MaxAttemptsPerRun)
		cancel()
		if !ok {
			continue
		}

		plan := buildPlan(result, n, cg, opts.Weights)
		dedup.Offer(plan)
	}

	plans := dedup.Plans()
	sort.SliceStable(plans, func(i, j int) bool { return plans[i].Score > plans[j].Score })
	return plans, issues
}

func buildPlan(result placement.Result, n seatmodel.Normalized, cg *seatgraph.ConstraintGraph, weights scoring.Weights) seatmodel.Plan {
	var tableSeatings []seatmodel.TableSeating
	seatsUsed := make(map[seatmodel.TableID]int, len(n.Tables))

	sortedTableIDs := make([]seatmodel.TableID, 0, len(n.Tables))
	for _, t := range n.Tables {
		sortedTableIDs = append(sortedTableIDs, t.ID)
	}
	sort.Strings(sortedTableIDs)

	for _, tableID := range sortedTableIDs {
		occupants, ok := result.TableOccupants[tableID]
		if !ok || len(occupants) == 0 {
			continue
		}
		ord := ordering.OrderTable(tableID, occupants, cg)
		tableSeatings = append(tableSeatings, seatmodel.TableSeating{
			TableID:               ord.TableID,
			Order:                 ord.Order,
			AdjacencySatisfaction: ord.AdjacencySatisfaction,
		})

		used := 0
		for _, g := range occupants {
			used += n.GuestByID[g].Count
		}
		seatsUsed[tableID] = used
	}

	adj := scoring.AdjacencySatisfaction(tableSeatings)
	util := scoring.CapacityUtilization(result.Placed, n.GuestByID, n.Tables)
	bal := scoring.Balance(n.Tables, seatsUsed)
	score := scoring.Score(weights, adj, util, bal)

	return seatmodel.Plan{
		Placed:                result.Placed,
		Tables:                tableSeatings,
		AdjacencySatisfaction: adj,
		CapacityUtilization:   util,
		Balance:               bal,
		Score:                 score,
	}
}
