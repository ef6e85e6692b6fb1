// Package discovery is an optional, non-core adapter that derives a
// core.ClassSource from real Go source using golang.org/x/tools/go/packages
// and go/types (spec §4.10, ADD).
//
// FromPackages loads the named packages, walks every exported named
// struct and interface type, and exposes it as a core.ClassInfo: an
// embedded field becomes a DirectBases entry, a satisfied interface
// becomes an Interfaces entry, and a type with neither is a root. This
// mirrors tmc-mirror-go.tools' own pattern of walking *types.Named /
// *types.Struct to recover a type's embedding and method set — the
// mechanical basis the pointer and ssa analyses in that package build on
// — narrowed here to "does this type have a base" instead of full
// points-to analysis.
//
// core and every algorithm package remain importable without pulling in
// golang.org/x/tools; this package is a consumer of core.ClassSource,
// never a dependency of it.
package discovery
