package table

import (
	"math/big"

	"github.com/go-openmethods/openmethods/core"
	"github.com/go-openmethods/openmethods/group"
	"github.com/go-openmethods/openmethods/specificity"
)

// Build computes method's per-dimension groups, strides, and flat
// dispatch table, fills the IndexVector cell of every concrete class
// that conforms to one of method's declared virtual parameters, and
// precomputes every override's next-most-specific link (spec §4.5,
// §4.6's "next-pointer fixup").
//
// Precondition: method.Params, method.Specs, and method.Slots are fully
// populated (classgraph, group membership via Conforming, and package
// slot have all run), and every participating concrete class already
// has its IndexVector allocated (package slot).
func Build(method *core.Method) {
	k := method.Arity()
	groups := make([]*group.Groups, k)
	for i, v := range method.Params {
		groups[i] = group.BuildGroups(method, i, v)
	}

	strides := make([]int, k)
	total := 1
	for i := 0; i < k; i++ {
		strides[i] = total
		total *= groups[i].Count
	}

	dispatchTable := make([]core.Fn, total)
	fillTable(method, groups, strides, dispatchTable)

	method.Strides = strides
	method.DispatchTable = dispatchTable

	for i := range method.Params {
		for class, g := range groups[i].ClassGroup {
			class.IndexVector[method.Slots[i]-class.FirstUsedSlot] = int32(g)
		}
	}

	for _, spec := range method.Specs {
		specificity.FindNext(spec, method.Specs)
	}
}

// fillTable enumerates every combination of per-dimension group indices
// and writes the resolved Fn at its linearized offset.
func fillTable(method *core.Method, groups []*group.Groups, strides []int, table []core.Fn) {
	k := len(groups)

	var walk func(dim, offset int, mask *big.Int)
	walk = func(dim, offset int, mask *big.Int) {
		if dim == k {
			table[offset] = resolve(method, mask)
			return
		}
		for g := 0; g < groups[dim].Count; g++ {
			next := groups[dim].Masks[g]
			if dim > 0 {
				next = new(big.Int).And(mask, groups[dim].Masks[g])
			}
			walk(dim+1, offset+g*strides[dim], next)
		}
	}
	walk(0, 0, nil)
}

// resolve picks the Fn to install at a table cell whose applicable
// overrides are exactly the set bits of mask over method.Specs.
func resolve(method *core.Method, mask *big.Int) core.Fn {
	var applicable []*core.Spec
	for j, spec := range method.Specs {
		if mask.Bit(j) == 1 {
			applicable = append(applicable, spec)
		}
	}

	if len(applicable) == 0 {
		return method.ThrowUndefined
	}

	best := specificity.Best(applicable)
	if len(best) == 1 {
		return best[0].Pf
	}

	return method.ThrowAmbiguous
}
