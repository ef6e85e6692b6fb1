// Package conform computes the conformance closure of a layered class
// list: for each class C, the set of all classes D assignable to C (spec
// §3 "Conforming set", §4.2).
//
// Build traverses the layered list in reverse (leaves first), seeding
// each class's conforming set with itself and unioning in each direct
// derived class's already-completed set. Because leaves are processed
// first, every merge reads a completed set — the same post-order
// traversal shape as lvlath's dfs package, turned upward instead of
// downward.
//
// Complexity: O(sum over C of |conforming(C)|) = O(classes times average
// conforming fan-in).
package conform
