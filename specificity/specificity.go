package specificity

import "github.com/go-openmethods/openmethods/core"

// MoreSpecific reports whether a is more specific than b: a ≤ b in every
// parameter position (a's declared class conforms to b's) and a < b in
// at least one position (spec §4.6).
func MoreSpecific(a, b *core.Spec) bool {
	strictSomewhere := false
	for i := range a.Params {
		ai, bi := a.Params[i], b.Params[i]
		if _, ok := bi.Conforming[ai]; !ok {
			// ai does not conform to bi: a is not at-least-as-specific at
			// this position, so a cannot be more specific than b overall.
			return false
		}
		if ai != bi {
			strictSomewhere = true
		}
	}

	return strictSomewhere
}

// Best returns the maximal antichain of candidates under MoreSpecific:
// the set of overrides no other candidate is more specific than.
// Incremental accumulation: each candidate is compared against the kept
// frontier; elements the new candidate dominates are dropped, and the
// candidate itself is skipped if any kept element dominates it.
func Best(candidates []*core.Spec) []*core.Spec {
	kept := make([]*core.Spec, 0, len(candidates))

	for _, c := range candidates {
		dominated := false
		for _, k := range kept {
			if MoreSpecific(k, c) {
				dominated = true
				break
			}
		}
		if dominated {
			continue
		}

		survivors := kept[:0]
		for _, k := range kept {
			if !MoreSpecific(c, k) {
				survivors = append(survivors, k)
			}
		}
		kept = append(survivors, c)
	}

	return kept
}

// FindNext computes the unique next-most-specific override of spec among
// allSpecs (every override of spec's method, spec included) and writes
// its Pf into spec.NextPf. If there is no strictly-less-specific
// candidate, or more than one maximal one (an ambiguous "super"), NextPf
// is set to nil. Returns the chosen Spec, or nil.
func FindNext(spec *core.Spec, allSpecs []*core.Spec) *core.Spec {
	var lessSpecific []*core.Spec
	for _, other := range allSpecs {
		if other == spec {
			continue
		}
		if MoreSpecific(spec, other) {
			lessSpecific = append(lessSpecific, other)
		}
	}

	best := Best(lessSpecific)
	if len(best) != 1 {
		spec.NextPf = nil
		return nil
	}

	spec.NextPf = best[0].Pf

	return best[0]
}
