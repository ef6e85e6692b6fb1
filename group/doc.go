// Package group partitions, per method and per virtual parameter, the
// concrete classes conforming to that parameter's declared type into
// groups that select the same set of candidate overrides (spec §4.4).
//
// For a virtual parameter i declared as class V, every concrete class
// X in conforming(V) gets a bitmask over the method's overrides: bit j
// set iff override j applies to X at position i (X conforms to the
// override's declared class at that position). Classes with identical
// bitmasks are bucketed into one group and share a dense group index —
// this is the dispatch table's compression: one column per group, not
// per class. Group index 0 is assigned to the first bucket encountered
// in Name-sorted class order, for determinism.
//
// Applicability masks use math/big.Int rather than a fixed machine word:
// a method may have an unbounded number of overrides, and a uint64 mask
// would silently cap that at 64.
package group
