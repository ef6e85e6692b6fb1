package core

// NoSlot is the sentinel value of Class.FirstUsedSlot meaning "this class
// reserves no slots" (its compact index array has length 0).
const NoSlot = -1

// ClassInfo is the abstract class-introspection capability the dispatch
// engine consumes (spec §6, "Consumed: Class introspection interface").
// A host application implements it over whatever hierarchy it models —
// struct embedding, interface satisfaction, or a generated description.
// Implementations must be comparable: ClassInfo values are used as map
// keys throughout the engine, so a pointer receiver or a comparable
// struct value is required.
type ClassInfo interface {
	// Name returns a diagnostic name for this class. Layering breaks ties
	// by sorting on Name; callers whose hierarchy mixes same-named types
	// from different packages should return a fully qualified name.
	Name() string

	// DirectBases returns this class's immediate base classes, in
	// declaration order.
	DirectBases() []ClassInfo

	// Interfaces returns the interfaces this class directly implements.
	// The engine treats these identically to DirectBases when scooping
	// and layering the participating set; they are kept distinct only for
	// diagnostics.
	Interfaces() []ClassInfo

	// IsConcrete reports whether this class may appear as the dynamic
	// type of an object (false for abstract classes/interfaces).
	IsConcrete() bool
}

// ClassSource enumerates all classes a host application knows about.
// classgraph.Builder.Scoop consults it to discover descendants of seeded
// virtual parameter types (spec §4.1).
type ClassSource interface {
	// Classes returns every ClassInfo known to the host application, in
	// no particular order.
	Classes() []ClassInfo
}

// Instance is implemented by values passed as virtual arguments to
// dispatch.Call: the Go rendition of "introspection of an object's
// dynamic type" (spec §6).
type Instance interface {
	// ClassInfo returns the dynamic class descriptor of this instance.
	ClassInfo() ClassInfo
}

// Fn is a type-erased, directly callable override or trampoline body.
// It is the idiomatic Go rendition of "a concrete function pointer":
// a host language that cannot express "a function of k statically-typed
// virtual parameters" as one concrete type when k and the parameter
// types vary per method falls back to boxing the arguments, at no cost
// to the dispatch engine's O(k) offset computation (see SPEC_FULL.md §3).
type Fn func(args []interface{}) (interface{}, error)

// MethodParam names one (method, virtual-parameter-position) pair for
// which a Class is the declared virtual type. Class.MethodParams holds
// these so the slot allocator (package slot) knows what to assign.
type MethodParam struct {
	Method *Method
	Param  int
}

// Class is a node in the participating class hierarchy (spec §3).
type Class struct {
	// Desc is the externally-owned class descriptor this Class wraps.
	Desc ClassInfo

	// Name mirrors Desc.Name() for diagnostics and layering tie-breaks.
	Name string

	// DirectBases/DirectDerived are wired by classgraph.Builder.InitBases
	// to only the Class nodes actually in the participating set.
	DirectBases   []*Class
	DirectDerived []*Class

	// Conforming maps a class D assignable to this Class to itself: the
	// conforming set (spec §3). Built by package conform. Invariant:
	// this Class is always a member of its own Conforming set.
	Conforming map[*Class]*Class

	// IsConcrete mirrors Desc.IsConcrete().
	IsConcrete bool

	// NextSlot is one past the highest slot index reserved in this
	// class; FirstUsedSlot is the lowest slot index actually consumed,
	// or NoSlot if this class declares no (method, param) pairs and
	// reserves no slot via propagation. Set by package slot.
	NextSlot      int
	FirstUsedSlot int

	// MethodParams lists the (method, parameter-position) pairs for
	// which this Class is the declared virtual type. Populated by
	// classgraph.Builder.Seed.
	MethodParams []MethodParam

	// IndexVector is this class's compact per-class index array: a
	// sub-slice of the engine's GIV arena, length NextSlot-FirstUsedSlot.
	// Entry at slot s-FirstUsedSlot holds the group index this class
	// belongs to, for the method/param that slot s identifies (spec I1).
	// Allocated by package slot (nil for a class that reserves no slot)
	// and filled by package table.
	IndexVector []int32
}

// NewClass wraps desc as a fresh, unpopulated Class node.
func NewClass(desc ClassInfo) *Class {
	return &Class{
		Desc:          desc,
		Name:          desc.Name(),
		IsConcrete:    desc.IsConcrete(),
		FirstUsedSlot: NoSlot,
		Conforming:    make(map[*Class]*Class),
	}
}

// Method is a registered open function name and arity (spec §3).
type Method struct {
	// Name is the method's diagnostic and error-message name.
	Name string

	// Params holds the declared virtual parameter classes, in order;
	// k = len(Params), k >= 1.
	Params []*Class

	// Specs holds every registered override of this method.
	Specs []*Spec

	// Slots[i] is the slot assigned to virtual parameter i, one value
	// per declared class that participates (spec §4.3). Populated by
	// package slot.
	Slots []int

	// Strides[i] is the per-dimension multiplier into DispatchTable
	// (spec §4.5). Populated by package table.
	Strides []int

	// DispatchTable is the flat array of Fn values; length = product of
	// per-dimension group counts (spec I3, P6). Populated by table.
	DispatchTable []Fn

	// ThrowUndefined/ThrowAmbiguous are the sentinel Fn values installed
	// at table entries lacking a unique best override (spec §4.8).
	ThrowUndefined Fn
	ThrowAmbiguous Fn
}

// NewMethod registers the skeleton of a method with the given name and
// declared virtual parameter classes. params must be non-empty (k >= 1).
func NewMethod(name string, params []*Class) *Method {
	m := &Method{
		Name:   name,
		Params: params,
		Slots:  make([]int, len(params)),
	}
	m.ThrowUndefined = func(args []interface{}) (interface{}, error) {
		return nil, errUndefined(m.Name)
	}
	m.ThrowAmbiguous = func(args []interface{}) (interface{}, error) {
		return nil, errAmbiguous(m.Name)
	}

	return m
}

// Arity returns the number of virtual parameters k of m.
func (m *Method) Arity() int { return len(m.Params) }

// Spec is one override (concrete implementation) of a Method (spec §3).
type Spec struct {
	// Method back-points to the owning Method.
	Method *Method

	// Params holds the declared types for each virtual parameter, in
	// order; len(Params) == Method.Arity().
	Params []*Class

	// Pf is the concrete function this override invokes.
	Pf Fn

	// NextPf is populated by package specificity with the unique
	// next-most-specific override's Pf, or nil if none/ambiguous. An
	// override body may read it (via the Spec it was invoked through)
	// to delegate to "super" without re-dispatching (spec §4.6).
	NextPf Fn
}

// NewSpec registers an override of m with declared parameter classes
// params and implementation pf.
func NewSpec(m *Method, params []*Class, pf Fn) *Spec {
	s := &Spec{Method: m, Params: params, Pf: pf}
	m.Specs = append(m.Specs, s)

	return s
}
