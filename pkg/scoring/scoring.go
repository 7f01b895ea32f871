package scoring

import (
	"sort"
	"strings"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// Weights parameterizes the aggregate score. The defaults are a load-
// bearing contract: changing them changes the public ordering of returned
// plans, so callers that care about reproducibility across versions should
// pin them explicitly rather than rely on DefaultWeights.
type Weights struct {
	Adjacency   float64
	Utilization float64
	Balance     float64
}

// DefaultWeights returns the specification's fixed default weighting.
func DefaultWeights() Weights {
	return Weights{Adjacency: 0.6, Utilization: 0.3, Balance: 0.1}
}

// AdjacencySatisfaction averages per-table adjacency ratios over every
// table with at least one occupant. A plan with no occupied tables scores
// 1 (vacuously satisfied).
func AdjacencySatisfaction(tables []seatmodel.TableSeating) float64 {
	if len(tables) == 0 {
		return 1
	}
	sum := 0.0
	for _, ts := range tables {
		sum += ts.AdjacencySatisfaction
	}
	return sum / float64(len(tables))
}

// CapacityUtilization is total seats used divided by total capacity across
// every table in the input (occupied or not).
func CapacityUtilization(placed map[seatmodel.GuestID]seatmodel.TableID, guestByID map[seatmodel.GuestID]seatmodel.Guest, tables []seatmodel.Table) float64 {
	totalCapacity := 0
	for _, t := range tables {
		totalCapacity += t.Capacity
	}
	if totalCapacity == 0 {
		return 0
	}
	used := 0
	for g := range placed {
		used += guestByID[g].Count
	}
	return float64(used) / float64(totalCapacity)
}

// Balance rewards tables filled close to 80% capacity: 1 minus the mean
// absolute deviation of each non-empty table's fill fraction from 0.8.
// Tables with zero occupants are excluded (an empty table has no fill
// fraction to penalize or reward).
func Balance(tables []seatmodel.Table, seatsUsed map[seatmodel.TableID]int) float64 {
	var deviations []float64
	for _, t := range tables {
		used, ok := seatsUsed[t.ID]
		if !ok || used == 0 || t.Capacity == 0 {
			continue
		}
		fill := float64(used) / float64(t.Capacity)
		dev := fill - 0.8
		if dev < 0 {
			dev = -dev
		}
		deviations = append(deviations, dev)
	}
	if len(deviations) == 0 {
		return 1
	}
	sum := 0.0
	for _, d := range deviations {
		sum += d
	}
	return 1 - sum/float64(len(deviations))
}

// Score computes the weighted aggregate.
func Score(w Weights, adjacency, utilization, balance float64) float64 {
	return w.Adjacency*adjacency + w.Utilization*utilization + w.Balance*balance
}

// DedupKey computes the stable 32-bit rolling hash of a plan's occupant
// partition: tables are folded in ascending TableId order, each table's
// occupants sorted before folding, so two plans assigning the same guests
// to the same tables collide regardless of intra-table ordering.
func DedupKey(tables []seatmodel.TableSeating) uint32 {
	sorted := make([]seatmodel.TableSeating, len(tables))
	copy(sorted, tables)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TableID < sorted[j].TableID })

	var h uint32
	for _, ts := range sorted {
		occupants := append([]string(nil), ts.Order...)
		sort.Strings(occupants)
		s := ts.TableID + "|" + strings.Join(occupants, ",")
		for _, r := range s {
			h = h*31 + uint32(r)
		}
	}
	return h
}

// Deduper accumulates plans keyed by DedupKey, keeping only the best-scored
// plan seen per key. It is single-invocation, per-search scratch state: not
// safe for concurrent use.
type Deduper struct {
	bestByKey map[uint32]int
	plans     []seatmodel.Plan
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{bestByKey: make(map[uint32]int)}
}

// Offer inserts p if its key is new, or replaces the stored plan for that
// key if p's score strictly improves on it. Returns true if p was stored.
func (d *Deduper) Offer(p seatmodel.Plan) bool {
	key := DedupKey(p.Tables)
	if idx, ok := d.bestByKey[key]; ok {
		if p.Score > d.plans[idx].Score {
			d.plans[idx] = p
			return true
		}
		return false
	}
	d.bestByKey[key] = len(d.plans)
	d.plans = append(d.plans, p)
	return true
}

// Plans returns every retained plan, in first-encountered-wins order (the
// caller is responsible for a final score-descending sort per spec.md 4.I).
func (d *Deduper) Plans() []seatmodel.Plan {
	return d.plans
}
