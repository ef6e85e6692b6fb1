package slot

import "github.com/go-openmethods/openmethods/core"

// Allocate assigns slots to every (method, param) declared across
// layered (bases-first order, as produced by classgraph.Builder.Layer)
// and materializes each concrete class's compact IndexVector.
//
// Precondition: layered is ordered bases-before-derived and DirectBases/
// DirectDerived have already been wired by classgraph.Builder.InitBases.
func Allocate(layered []*core.Class) {
	for _, c := range layered {
		for _, mp := range c.MethodParams {
			s := c.NextSlot
			c.NextSlot++
			mp.Method.Slots[mp.Param] = s

			visited := make(map[*core.Class]bool)
			walkDown(c, s, visited)
		}
	}

	size := 0
	for _, c := range layered {
		if c.IsConcrete && c.FirstUsedSlot != core.NoSlot {
			size += c.NextSlot - c.FirstUsedSlot
		}
	}
	giv := make([]int32, size)

	offset := 0
	for _, c := range layered {
		if !c.IsConcrete {
			continue
		}
		if c.FirstUsedSlot == core.NoSlot {
			c.IndexVector = nil
			continue
		}
		n := c.NextSlot - c.FirstUsedSlot
		c.IndexVector = giv[offset : offset+n : offset+n]
		offset += n
	}
}

// walkDown reserves s on c and on c's entire conforming cone (every class
// transitively reachable via DirectDerived), and — for every node the
// downward walk reaches — also reserves s on that node's ancestors via
// walkUp. It is the "paired up/down walk" of spec §4.3: down-discovered
// nodes explore both directions, but nodes discovered only by walking up
// never re-expand downward, so two classes with no common descendant
// never contaminate each other's reservations (only a genuine shared
// descendant — reached by walking up from it into both subtrees — links
// them). This is what lets disjoint sub-hierarchies reuse slot numbers
// while hierarchies with a common descendant are forced apart (spec §8
// scenario 4).
func walkDown(c *core.Class, s int, visited map[*core.Class]bool) {
	if visited[c] {
		return
	}
	visited[c] = true
	reserveSlot(c, s)

	for _, base := range c.DirectBases {
		walkUp(base, s, visited)
	}
	for _, derived := range c.DirectDerived {
		walkDown(derived, s, visited)
	}
}

// walkUp reserves s on c and recurses to c's bases, but never back down
// into a base's other derived classes — see walkDown.
func walkUp(c *core.Class, s int, visited map[*core.Class]bool) {
	if visited[c] {
		return
	}
	visited[c] = true
	reserveSlot(c, s)

	for _, base := range c.DirectBases {
		walkUp(base, s, visited)
	}
}

// reserveSlot raises c.NextSlot past s if it wasn't already, and widens
// c.FirstUsedSlot down to s if s is the lowest slot c has reserved so
// far. The latter matters for any class reached only through
// propagation (never itself the declared owner of a MethodParam): its
// first touch here may not be its lowest-numbered reservation, since
// different owners assign slot numbers from independent per-class
// counters.
func reserveSlot(c *core.Class, s int) {
	if c.FirstUsedSlot == core.NoSlot || s < c.FirstUsedSlot {
		c.FirstUsedSlot = s
	}
	if c.NextSlot <= s {
		c.NextSlot = s + 1
	}
}
