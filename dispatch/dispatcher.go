package dispatch

import (
	"sync/atomic"

	"github.com/go-openmethods/openmethods/core"
)

// ClassOf resolves a host-supplied class descriptor to the engine's
// internal Class node. Runtime satisfies this directly with the map
// classgraph.Builder.Classes returns; callers outside this module should
// not need to implement it themselves.
type ClassOf interface {
	ClassOf(desc core.ClassInfo) (*core.Class, bool)
}

// Call resolves and invokes method's override for args, the Go rendition
// of spec §4.7's dispatcher: for each virtual argument, it reads the
// argument's dynamic Class, looks up the compact group index that class
// was assigned for method's slot at that position, and accumulates a
// flat offset via method.Strides — exactly the O(k) multiply-add the
// slot/stride scheme exists to make possible, no reflection involved.
//
// sealed must be true (Update has completed) or Call returns a
// core.ErrSetupMisuse-wrapped error rather than reading a half-built
// table. A nil argument, an argument whose class is unknown to lookup,
// or a dynamic class that never conformed to method's declared virtual
// parameter at that position are all surfaced the same way.
func Call(lookup ClassOf, sealed *atomic.Bool, method *core.Method, args ...core.Instance) (interface{}, error) {
	if !sealed.Load() {
		return nil, core.WrapMisuse("dispatch before Update() completed for method '%s'", method.Name)
	}
	if len(args) != method.Arity() {
		return nil, core.WrapMisuse("method '%s' expects %d virtual argument(s), got %d", method.Name, method.Arity(), len(args))
	}

	offset := 0
	for i, arg := range args {
		if arg == nil {
			return nil, core.WrapMisuse("method '%s': virtual argument %d is nil", method.Name, i)
		}
		desc := arg.ClassInfo()
		if desc == nil {
			return nil, core.WrapMisuse("method '%s': virtual argument %d has a nil ClassInfo", method.Name, i)
		}

		class, ok := lookup.ClassOf(desc)
		if !ok {
			return nil, core.WrapMisuse("method '%s': argument %d's class '%s' is not registered", method.Name, i, desc.Name())
		}
		if !class.IsConcrete {
			return nil, core.WrapMisuse("method '%s': argument %d's class '%s' is not concrete", method.Name, i, desc.Name())
		}

		if _, ok := method.Params[i].Conforming[class]; !ok {
			return nil, core.WrapMisuse("method '%s': argument %d's class '%s' does not conform to its declared virtual type", method.Name, i, desc.Name())
		}

		slot := method.Slots[i]
		group := int(class.IndexVector[slot-class.FirstUsedSlot])
		offset += group * method.Strides[i]
	}

	boxed := make([]interface{}, len(args))
	for i, arg := range args {
		boxed[i] = arg
	}

	return method.DispatchTable[offset](boxed)
}
