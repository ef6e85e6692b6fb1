// Package conform implements the conformance-closure algorithm of
// spec §4.2 over a classgraph-layered class list.
package conform

import "github.com/go-openmethods/openmethods/core"

// Build computes Conforming for every class in layered, populating each
// Class.Conforming map in place. layered must be ordered bases-before-
// derived, as produced by classgraph.Builder.Layer; Build walks it in
// reverse so every direct-derived class's set is already complete by the
// time its bases are processed (spec invariant I4).
func Build(layered []*core.Class) {
	for i := len(layered) - 1; i >= 0; i-- {
		c := layered[i]
		if c.Conforming == nil {
			c.Conforming = make(map[*core.Class]*core.Class, 1)
		}
		c.Conforming[c] = c

		for _, derived := range c.DirectDerived {
			for d := range derived.Conforming {
				c.Conforming[d] = d
			}
		}
	}
}
