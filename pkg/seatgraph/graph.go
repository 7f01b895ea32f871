package seatgraph

import (
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/seatmodel"
)

// ConstraintGraph holds the two undirected adjacency maps the solver
// reasons about: cannot-sit-together and adjacent-to-each-other.
type ConstraintGraph struct {
	Cannot   map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}
	Adjacent map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}
}

func addUndirected(m map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}, a, b seatmodel.GuestID) {
	if m[a] == nil {
		m[a] = make(map[seatmodel.GuestID]struct{})
	}
	if m[b] == nil {
		m[b] = make(map[seatmodel.GuestID]struct{})
	}
	m[a][b] = struct{}{}
	m[b][a] = struct{}{}
}

// Build constructs the constraint graph from a Normalized input. Every
// guest id present in the input gets an (possibly empty) entry in both
// maps so degree lookups never require an existence check.
func Build(n seatmodel.Normalized) *ConstraintGraph {
	cg := &ConstraintGraph{
		Cannot:   make(map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}, len(n.Guests)),
		Adjacent: make(map[seatmodel.GuestID]map[seatmodel.GuestID]struct{}, len(n.Guests)),
	}
	for _, g := range n.Guests {
		cg.Cannot[g.ID] = make(map[seatmodel.GuestID]struct{})
		cg.Adjacent[g.ID] = make(map[seatmodel.GuestID]struct{})
	}
	for _, e := range n.Constraints {
		if e.Relation == seatmodel.Cannot {
			addUndirected(cg.Cannot, e.A, e.B)
		}
	}
	for _, e := range n.Adjacents {
		addUndirected(cg.Adjacent, e.A, e.B)
	}
	return cg
}

// AdjacencyDegree returns the number of adjacency partners of g.
func (cg *ConstraintGraph) AdjacencyDegree(g seatmodel.GuestID) int {
	return len(cg.Adjacent[g])
}

// AreCannotPartners reports whether a and b carry a cannot edge.
func (cg *ConstraintGraph) AreCannotPartners(a, b seatmodel.GuestID) bool {
	_, ok := cg.Cannot[a][b]
	return ok
}

// AreAdjacentPartners reports whether a and b carry an adjacent edge.
func (cg *ConstraintGraph) AreAdjacentPartners(a, b seatmodel.GuestID) bool {
	_, ok := cg.Adjacent[a][b]
	return ok
}

// adjacentComponents returns the connected components of the adjacency
// graph restricted to guests that have at least one adjacency partner.
// Guests with no adjacency edges are omitted; they play no role in
// closed-ring detection.
func (cg *ConstraintGraph) adjacentComponents() [][]seatmodel.GuestID {
	visited := make(map[seatmodel.GuestID]bool)
	var components [][]seatmodel.GuestID

	// Deterministic iteration order: sort guest ids before walking.
	ids := make([]seatmodel.GuestID, 0, len(cg.Adjacent))
	for id, partners := range cg.Adjacent {
		if len(partners) > 0 {
			ids = append(ids, id)
		}
	}
	sortStrings(ids)

	for _, start := range ids {
		if visited[start] {
			continue
		}
		var comp []seatmodel.GuestID
		queue := []seatmodel.GuestID{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)

			neighbors := make([]seatmodel.GuestID, 0, len(cg.Adjacent[cur]))
			for nb := range cg.Adjacent[cur] {
				neighbors = append(neighbors, nb)
			}
			sortStrings(neighbors)
			for _, nb := range neighbors {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		sortStrings(comp)
		components = append(components, comp)
	}
	return components
}

func sortStrings(s []seatmodel.GuestID) {
	// Small-N insertion sort keeps this allocation-free for typical guest
	// lists and avoids importing sort for a handful of callers; components
	// it sorts neighbor lists, components, and the list of guests that have
	// at least one adjacency partner.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
