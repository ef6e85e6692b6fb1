// Package specificity implements the "more specific than" partial order
// over overrides, selects the most specific applicable set, and
// precomputes each override's next-most-specific link (spec §4.6).
//
// MoreSpecific compares two overrides position-by-position using their
// parameters' conforming sets. Best accumulates a maximal antichain over
// a candidate list — the same "compare the new candidate against the
// kept frontier, drop what it dominates, discard it if dominated" shape
// as a greedy frontier-relaxation algorithm (structurally the loop
// lvlath's Prim/Kruskal MST code uses to keep only the cheapest crossing
// edge per cut). FindNext looks up the unique next-most-specific override
// of a given Spec among all of its method's overrides, for the "super"
// chaining exposed via Spec.NextPf.
package specificity
