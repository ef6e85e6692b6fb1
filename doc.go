// Package openmethods implements an open multi-methods dispatch engine:
// free functions ("methods") whose implementation ("override") is chosen
// at call time from the runtime classes of more than one argument, with
// the usual single-dispatch virtual-call rule ("most specific override
// wins") generalized to every declared virtual parameter at once.
//
// Runtime is the setup/dispatch facade over the seven algorithm packages
// that do the actual work:
//
//	classgraph  - builds the participating class hierarchy from a core.ClassSource
//	conform     - computes each class's conformance (assignability) closure
//	slot        - allocates per-(method,parameter) slots, reusing them across unrelated hierarchies
//	group       - partitions classes into applicability groups per dimension
//	table       - builds the flat dispatch table and fills each class's index vector
//	specificity - orders overrides by specificity and resolves ties
//	dispatch    - the runtime call path: class lookup, offset, invoke
//
// A typical session:
//
//	rt := openmethods.New(source)
//	animal := rt.Class(animalDesc)
//	dog := rt.Class(dogDesc)
//	kick := core.NewMethod("kick", []*core.Class{animal})
//	rt.Register(kick)
//	core.NewSpec(kick, []*core.Class{dog}, func(args []interface{}) (interface{}, error) {
//		return "bark", nil
//	})
//	rt.Update()
//	result, err := rt.Call(kick, someDogInstance)
//
// Register/RegisterSpec/Update mutate Runtime state under a mutex and
// must complete before the first Call; once Update returns, every
// structure Call reads is immutable and Call itself takes no locks
// (spec §5).
package openmethods
