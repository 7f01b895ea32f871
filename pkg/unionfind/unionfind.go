package unionfind

// DisjointSet is a union-find structure over string keys. The zero value
// is not usable; construct with New.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
}

// New creates a DisjointSet with every key in keys in its own singleton set.
func New(keys []string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(keys)),
		rank:   make(map[string]int, len(keys)),
	}
	for _, k := range keys {
		d.parent[k] = k
		d.rank[k] = 0
	}
	return d
}

// Add inserts k as a new singleton set if it is not already known. It is a
// no-op if k is already present.
func (d *DisjointSet) Add(k string) {
	if _, ok := d.parent[k]; !ok {
		d.parent[k] = k
		d.rank[k] = 0
	}
}

// Find returns the representative (root) of k's set, compressing the path
// from k to the root as it walks up.
func (d *DisjointSet) Find(k string) string {
	root := k
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: repoint every visited node directly at root.
	for d.parent[k] != root {
		next := d.parent[k]
		d.parent[k] = root
		k = next
	}
	return root
}

// Union merges the sets containing a and b. Ties in rank are broken toward
// the lexicographically smaller root so that repeated runs over the same
// edge set produce the same component roots.
func (d *DisjointSet) Union(a, b string) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		if ra < rb {
			d.parent[rb] = ra
			d.rank[ra]++
		} else {
			d.parent[ra] = rb
			d.rank[rb]++
		}
	}
}

// Components groups every known key by its root representative. The
// returned map's iteration order is unspecified; callers that need a
// stable order should sort the keys.
func (d *DisjointSet) Components() map[string][]string {
	out := make(map[string][]string)
	for k := range d.parent {
		r := d.Find(k)
		out[r] = append(out[r], k)
	}
	return out
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSet) Connected(a, b string) bool {
	return d.Find(a) == d.Find(b)
}
