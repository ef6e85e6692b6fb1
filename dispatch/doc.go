// Package dispatch implements the runtime call path: given a Method and
// its arguments' dynamic classes, compute the flat dispatch-table offset
// in O(k) and invoke the resolved core.Fn (spec §4.7).
//
// Call performs no reflection and takes no locks; it only reads state
// package table has already frozen (Method.Slots/Strides/DispatchTable,
// Class.IndexVector). The sealed flag it checks is a lock-free
// sync/atomic.Bool, mirroring lvlath's read-only-after-build guarantee
// for its adjacency structures once a Graph stops mutating.
package dispatch
