package classgraph

import (
	"sort"

	"github.com/go-openmethods/openmethods/core"
)

// Builder accumulates the participating class set for a batch of methods
// and produces a layered, base-before-derived ordering of it (spec §4.1).
//
// Concurrency: Builder is setup-phase-only state; it is not safe for
// concurrent use and is expected to be discarded after Layer returns.
type Builder struct {
	source  core.ClassSource
	classes map[core.ClassInfo]*core.Class

	// derivedOf inverts DirectBases/Interfaces across every class the
	// source knows about, so Scoop can walk descendants in O(1) per edge
	// instead of rescanning the whole source per candidate.
	derivedOf map[core.ClassInfo][]core.ClassInfo
	inverted  bool
}

// NewBuilder creates a Builder that will draw candidate descendants from
// source when Scoop is called.
func NewBuilder(source core.ClassSource) *Builder {
	return &Builder{
		source:  source,
		classes: make(map[core.ClassInfo]*core.Class),
	}
}

// classFor returns the Class node for desc, creating it if this is the
// first time desc has been seen.
func (b *Builder) classFor(desc core.ClassInfo) *core.Class {
	if c, ok := b.classes[desc]; ok {
		return c
	}
	c := core.NewClass(desc)
	b.classes[desc] = c

	return c
}

// ClassFor returns the Class node for desc, creating it (with no bases,
// derived classes, or conforming set yet computed) if this is the first
// time desc has been seen. Exposed for callers (the Runtime facade) that
// need to materialize a Class node before a method declaring it exists.
func (b *Builder) ClassFor(desc core.ClassInfo) *core.Class {
	return b.classFor(desc)
}

// Lookup returns the Class node already known for desc, or nil if desc is
// outside the participating set. Used by override registration to reject
// parameter types unreachable from any method's declared virtual types
// (spec §7, Setup misuse).
func (b *Builder) Lookup(desc core.ClassInfo) *core.Class {
	return b.classes[desc]
}

// Seed creates or fetches a Class node for each of paramDescs and wires it
// into m.Params and that Class's MethodParams (spec §4.1 "seed").
// len(paramDescs) must equal the method's declared arity.
func (b *Builder) Seed(m *core.Method, paramDescs []core.ClassInfo) {
	m.Params = make([]*core.Class, len(paramDescs))
	for i, desc := range paramDescs {
		c := b.classFor(desc)
		m.Params[i] = c
		c.MethodParams = append(c.MethodParams, core.MethodParam{Method: m, Param: i})
	}
}

// buildInvertedIndex scans every class the source knows about once and
// records, for each class, its immediate derived classes (the inverse of
// DirectBases/Interfaces). Scoop then needs only to follow these edges
// outward from the seeded set.
func (b *Builder) buildInvertedIndex() {
	if b.inverted {
		return
	}
	b.inverted = true
	b.derivedOf = make(map[core.ClassInfo][]core.ClassInfo)

	for _, desc := range b.source.Classes() {
		for _, base := range desc.DirectBases() {
			b.derivedOf[base] = append(b.derivedOf[base], desc)
		}
		for _, iface := range desc.Interfaces() {
			b.derivedOf[iface] = append(b.derivedOf[iface], desc)
		}
	}
}

// Scoop recursively pulls every class transitively derived from the
// already-seeded classes into the participating set (spec §4.1 "scoop").
// A class is added iff an ancestor (base or interface) is already seeded
// or participating — which Scoop realizes directly by walking the
// inverted base→derived index outward from the seeds, yielding exactly
// the transitive closure of descendants of seeded classes.
//
// Complexity: O(C + R) over the classes/relations the index touches.
func (b *Builder) Scoop() {
	b.buildInvertedIndex()

	// BFS frontier seeded from every class already in the participating
	// set (populated by prior Seed calls).
	queue := make([]core.ClassInfo, 0, len(b.classes))
	for desc := range b.classes {
		queue = append(queue, desc)
	}

	for len(queue) > 0 {
		desc := queue[0]
		queue = queue[1:]

		for _, derivedDesc := range b.derivedOf[desc] {
			if _, ok := b.classes[derivedDesc]; ok {
				continue
			}
			b.classFor(derivedDesc)
			queue = append(queue, derivedDesc)
		}
	}
}

// InitBases wires DirectBases/DirectDerived between Class nodes, but only
// for bases that themselves ended up in the participating set (spec
// §4.1 "initBases"). Must run after Seed/Scoop have populated b.classes.
func (b *Builder) InitBases() {
	for _, c := range b.classes {
		for _, baseDesc := range c.Desc.DirectBases() {
			if base, ok := b.classes[baseDesc]; ok {
				c.DirectBases = append(c.DirectBases, base)
				base.DirectDerived = append(base.DirectDerived, c)
			}
		}
		for _, ifaceDesc := range c.Desc.Interfaces() {
			if iface, ok := b.classes[ifaceDesc]; ok {
				c.DirectBases = append(c.DirectBases, iface)
				iface.DirectDerived = append(iface.DirectDerived, c)
			}
		}
	}
}

// Layer topologically orders the participating set bases-before-derived
// via Kahn-style iteration: each emitted layer consists of every node
// whose direct bases are all already in earlier layers. Within a layer,
// nodes are sorted by Name for determinism (spec §4.1 "layer").
//
// Precondition: InitBases has run. Cycles cannot occur (the host type
// system's precondition); Layer does not defend against them and would
// silently drop unreachable nodes if the precondition were violated.
func (b *Builder) Layer() []*core.Class {
	remaining := make(map[*core.Class]int, len(b.classes))
	for _, c := range b.classes {
		remaining[c] = len(c.DirectBases)
	}

	ordered := make([]*core.Class, 0, len(b.classes))
	for len(ordered) < len(b.classes) {
		ready := make([]*core.Class, 0)
		for c, n := range remaining {
			if n == 0 {
				ready = append(ready, c)
			}
		}
		if len(ready) == 0 {
			// Precondition violated (a cycle); stop rather than loop forever.
			break
		}
		sort.Slice(ready, func(i, j int) bool { return ready[i].Name < ready[j].Name })

		for _, c := range ready {
			delete(remaining, c)
			ordered = append(ordered, c)
			for _, d := range c.DirectDerived {
				remaining[d]--
			}
		}
	}

	return ordered
}

// Classes returns every Class node currently in the participating set,
// keyed by its originating descriptor. Exposed for callers (e.g. the
// Runtime facade) that need to resolve a ClassInfo to its Class node
// after Seed/Scoop without re-deriving the map themselves.
func (b *Builder) Classes() map[core.ClassInfo]*core.Class {
	return b.classes
}
