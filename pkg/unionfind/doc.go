// Package unionfind provides a disjoint-set (union-find) data structure
// over string keys, used by pkg/grouping to fuse guests linked by
// "must-sit-together" or "adjacent-to" edges into atomic placement groups.
//
// The implementation follows the classic path-compression + union-by-rank
// scheme, adapted from the inline disjoint-set used by Kruskal's MST in
// the lvlath graph library's prim_kruskal package: iterative Find (no
// recursion, so no stack-depth concerns on large guest lists) and
// union-by-rank with equal-rank ties broken toward the lexicographically
// smaller root.
package unionfind
