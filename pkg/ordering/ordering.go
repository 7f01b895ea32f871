package ordering

import (
	"sort"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatgraph"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// TableOrder is the circular seating order computed for one table, plus
// the adjacency-satisfaction ratio that order achieves.
type TableOrder struct {
	TableID               seatmodel.TableID
	Order                 []seatmodel.GuestID
	AdjacencySatisfaction float64
}

// Seat is one physical chair assigned to a party, with the party's
// zero-based index within its own head-count.
type Seat struct {
	GuestID    seatmodel.GuestID
	PartyIndex int
}

type localEdge struct{ a, b seatmodel.GuestID }

func localEdges(occupants []seatmodel.GuestID, cg *seatgraph.ConstraintGraph) []localEdge {
	var edges []localEdge
	for i := 0; i < len(occupants); i++ {
		for j := i + 1; j < len(occupants); j++ {
			if cg.AreAdjacentPartners(occupants[i], occupants[j]) {
				a, b := occupants[i], occupants[j]
				if b < a {
					a, b = b, a
				}
				edges = append(edges, localEdge{a, b})
			}
		}
	}
	return edges
}

func localDegree(id seatmodel.GuestID, occupants []seatmodel.GuestID, cg *seatgraph.ConstraintGraph) int {
	d := 0
	for _, o := range occupants {
		if o != id && cg.AreAdjacentPartners(id, o) {
			d++
		}
	}
	return d
}

// OrderTable computes the circular order for a single table's occupants
// per spec.md 4.G. Tables with fewer than two occupants have a trivial
// ratio of 1 and the occupants (if any) in their given order.
func OrderTable(tableID seatmodel.TableID, occupants []seatmodel.GuestID, cg *seatgraph.ConstraintGraph) TableOrder {
	if len(occupants) < 2 {
		return TableOrder{TableID: tableID, Order: append([]seatmodel.GuestID(nil), occupants...), AdjacencySatisfaction: 1}
	}

	order := greedyChain(occupants, cg)
	edges := localEdges(occupants, cg)
	if len(edges) == 0 {
		return TableOrder{TableID: tableID, Order: order, AdjacencySatisfaction: 1}
	}

	bestOrder := order
	bestRatio := ratioOf(order, edges)
	for shift := 1; shift < len(order); shift++ {
		rotated := rotate(order, shift)
		r := ratioOf(rotated, edges)
		if r > bestRatio {
			bestRatio = r
			bestOrder = rotated
		}
	}

	return TableOrder{TableID: tableID, Order: bestOrder, AdjacencySatisfaction: bestRatio}
}

func greedyChain(occupants []seatmodel.GuestID, cg *seatgraph.ConstraintGraph) []seatmodel.GuestID {
	start := occupants[0]
	bestDeg := -1
	sorted := append([]seatmodel.GuestID(nil), occupants...)
	sort.Strings(sorted)
	for _, id := range sorted {
		d := localDegree(id, occupants, cg)
		if d > bestDeg {
			bestDeg = d
			start = id
		}
	}

	visited := make(map[seatmodel.GuestID]bool, len(occupants))
	order := []seatmodel.GuestID{start}
	visited[start] = true
	first, last := start, start

	for len(order) < len(occupants) {
		var unvisitedNeighborsOfLast []seatmodel.GuestID
		for _, o := range occupants {
			if visited[o] || o == last {
				continue
			}
			if cg.AreAdjacentPartners(last, o) {
				unvisitedNeighborsOfLast = append(unvisitedNeighborsOfLast, o)
			}
		}
		sort.Strings(unvisitedNeighborsOfLast)

		var next seatmodel.GuestID
		if len(unvisitedNeighborsOfLast) > 0 {
			next = unvisitedNeighborsOfLast[0]
		} else {
			var unvisited []seatmodel.GuestID
			for _, o := range occupants {
				if !visited[o] {
					unvisited = append(unvisited, o)
				}
			}
			sort.Strings(unvisited)

			bestScore := -1.0
			for _, c := range unvisited {
				score := 0.0
				if cg.AreAdjacentPartners(last, c) {
					score += 1
				}
				if cg.AreAdjacentPartners(first, c) {
					score += 1
				}
				score += 0.01 * float64(localDegree(c, occupants, cg))
				if score > bestScore {
					bestScore = score
					next = c
				}
			}
		}

		order = append(order, next)
		visited[next] = true
		last = next
	}

	return order
}

func rotate(order []seatmodel.GuestID, shift int) []seatmodel.GuestID {
	n := len(order)
	out := make([]seatmodel.GuestID, n)
	for i := 0; i < n; i++ {
		out[i] = order[(i+shift)%n]
	}
	return out
}

// ratioOf computes satisfied/total_local_pairs for a given ring order,
// including the wrap-around closing edge.
func ratioOf(order []seatmodel.GuestID, edges []localEdge) float64 {
	n := len(order)
	neighbor := make(map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}, n)
	for i := 0; i < n; i++ {
		a, b := order[i], order[(i+1)%n]
		if neighbor[a] == nil {
			neighbor[a] = make(map[seatmodel.GuestID]struct{})
		}
		if neighbor[b] == nil {
			neighbor[b] = make(map[seatmodel.GuestID]struct{})
		}
		neighbor[a][b] = struct{}{}
		neighbor[b][a] = struct{}{}
	}

	satisfied := 0
	for _, e := range edges {
		if _, ok := neighbor[e.a][e.b]; ok {
			satisfied++
		}
	}
	return float64(satisfied) / float64(len(edges))
}

// ExpandSeats turns a circular order into the physical seat list, giving
// each unit of a party's head-count a zero-based PartyIndex.
func ExpandSeats(order []seatmodel.GuestID, guestByID map[seatmodel.GuestID]seatmodel.Guest) []Seat {
	var seats []Seat
	for _, id := range order {
		count := guestByID[id].Count
		for i := 0; i < count; i++ {
			seats = append(seats, Seat{GuestID: id, PartyIndex: i})
		}
	}
	return seats
}
