package group

import (
	"math/big"
	"sort"

	"github.com/go-openmethods/openmethods/core"
)

// Groups is the result of BuildGroups for one (method, virtual-parameter)
// dimension: how many groups exist, which group each concrete class
// belongs to, and each group's override-applicability bitmask (needed by
// package table to intersect dimensions and pick the best override).
type Groups struct {
	// Count is G_i, the number of distinct groups on this dimension.
	Count int

	// ClassGroup maps each concrete class in conforming(V) to its dense
	// group index in [0, Count).
	ClassGroup map[*core.Class]int

	// Masks[g] is the override-applicability bitmask shared by every
	// class in group g: bit j set iff method.Specs[j] applies to that
	// group's classes at this parameter position.
	Masks []*big.Int
}

// BuildGroups partitions the concrete classes conforming to v (the
// declared virtual-parameter class at position param of method) into
// groups, per spec §4.4.
func BuildGroups(method *core.Method, param int, v *core.Class) *Groups {
	candidates := make([]*core.Class, 0, len(v.Conforming))
	for _, x := range v.Conforming {
		if x.IsConcrete {
			candidates = append(candidates, x)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })

	g := &Groups{
		ClassGroup: make(map[*core.Class]int, len(candidates)),
	}
	maskToGroup := make(map[string]int, len(candidates))

	for _, x := range candidates {
		mask := applicabilityMask(method, param, x)
		key := mask.String()

		idx, ok := maskToGroup[key]
		if !ok {
			idx = len(g.Masks)
			maskToGroup[key] = idx
			g.Masks = append(g.Masks, mask)
		}
		g.ClassGroup[x] = idx
	}
	g.Count = len(g.Masks)

	return g
}

// applicabilityMask builds the bitmask of method.Specs applicable to
// class x at virtual-parameter position param: bit j is set iff x
// conforms to method.Specs[j].Params[param].
func applicabilityMask(method *core.Method, param int, x *core.Class) *big.Int {
	mask := new(big.Int)
	for j, spec := range method.Specs {
		if _, ok := spec.Params[param].Conforming[x]; ok {
			mask.SetBit(mask, j, 1)
		}
	}

	return mask
}
