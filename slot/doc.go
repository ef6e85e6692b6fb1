// Package slot assigns one integer slot per (method, virtual-parameter)
// to each participating class, and the compact per-class index array
// that will later hold that class's dispatch-group coordinates (spec
// §4.3).
//
// Allocate walks classes bases-first. For each (method, param) a class
// declares, it claims the next free slot on that class and then
// propagates a reservation of that slot number through its conforming
// cone (every class reachable by derived edges) and the ancestors of each
// class in that cone; classes reached only by walking up are not expanded
// downward again, so siblings are not reserved (a paired up/down walk with
// an identity-keyed visited set, arena-style per spec §9's Design Notes:
// since core.Class nodes are addressed by Go pointer identity, no
// separate bitset-by-index is needed). This guarantees two methods that
// could ever see the same object as a virtual argument receive different
// slots, while methods whose applicable sets are provably disjoint may
// share a slot number — keeping per-class index arrays short.
//
// Complexity: O(classes * average reservation fan-out).
package slot
