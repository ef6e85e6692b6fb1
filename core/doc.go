// Package core defines the data model of the open multi-methods dispatch
// engine: Class, Method, and Spec (override) descriptors, the abstract
// class-introspection interfaces a host application implements, sentinel
// errors, and the error trampolines installed into dispatch tables.
//
// core holds no algorithms. Class graph construction lives in classgraph,
// conformance-set computation in conform, slot assignment in slot, table
// compression in group, dispatch table assembly in table, override
// ranking in specificity, and the runtime call path in dispatch. Each of
// those packages imports core; core imports none of them.
//
// Concurrency:
//
//   - During setup (before a Runtime's Update completes) callers must
//     serialize access to Class/Method/Spec mutation; core itself applies
//     no locking beyond what Runtime (package openmethods) provides.
//   - After setup, every structure here is read-only and safe for
//     unsynchronized concurrent reads from any number of goroutines,
//     per the dispatcher's lock-free call path.
package core
