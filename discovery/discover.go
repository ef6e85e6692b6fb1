package discovery

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/go-openmethods/openmethods/core"
)

// classInfo wraps a *types.Named as a core.ClassInfo.
type classInfo struct {
	named      *types.Named
	bases      []core.ClassInfo
	interfaces []core.ClassInfo
	concrete   bool
}

func (c *classInfo) Name() string {
	obj := c.named.Obj()
	if pkg := obj.Pkg(); pkg != nil {
		return pkg.Path() + "." + obj.Name()
	}

	return obj.Name()
}

func (c *classInfo) DirectBases() []core.ClassInfo { return c.bases }
func (c *classInfo) Interfaces() []core.ClassInfo  { return c.interfaces }
func (c *classInfo) IsConcrete() bool              { return c.concrete }

type source struct {
	classes []core.ClassInfo
}

func (s *source) Classes() []core.ClassInfo { return s.classes }

// FromPackages loads patterns with go/packages and returns a ClassSource
// over every exported named struct or interface type it type-checks
// (spec §4.10). An embedded struct/interface field becomes a
// DirectBases entry; a distinct discovered interface the type satisfies
// becomes an Interfaces entry.
func FromPackages(patterns ...string) (core.ClassSource, error) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName | packages.NeedDeps | packages.NeedImports | packages.NeedSyntax,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("openmethods/discovery: loading packages: %w", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		return nil, fmt.Errorf("openmethods/discovery: one or more packages failed to type-check")
	}

	byNamed := make(map[*types.Named]*classInfo)
	var order []*types.Named

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			tn, ok := scope.Lookup(name).(*types.TypeName)
			if !ok || !tn.Exported() {
				continue
			}
			named, ok := tn.Type().(*types.Named)
			if !ok {
				continue
			}
			switch named.Underlying().(type) {
			case *types.Struct, *types.Interface:
			default:
				continue
			}
			if _, seen := byNamed[named]; seen {
				continue
			}

			ci := &classInfo{named: named}
			byNamed[named] = ci
			order = append(order, named)
		}
	}

	var interfaces []*types.Named
	for _, named := range order {
		if _, ok := named.Underlying().(*types.Interface); ok {
			interfaces = append(interfaces, named)
		}
	}

	for _, named := range order {
		ci := byNamed[named]

		if st, ok := named.Underlying().(*types.Struct); ok {
			ci.concrete = true
			for i := 0; i < st.NumFields(); i++ {
				field := st.Field(i)
				if !field.Embedded() {
					continue
				}
				if base, ok := byNamed[namedOf(field.Type())]; ok {
					ci.bases = append(ci.bases, base)
				}
			}
		}

		for _, iface := range interfaces {
			if iface == named {
				continue
			}
			ifaceType := iface.Underlying().(*types.Interface)
			if types.Implements(named, ifaceType) || types.Implements(types.NewPointer(named), ifaceType) {
				ci.interfaces = append(ci.interfaces, byNamed[iface])
			}
		}
	}

	classes := make([]core.ClassInfo, 0, len(order))
	for _, named := range order {
		classes = append(classes, byNamed[named])
	}

	return &source{classes: classes}, nil
}

// namedOf unwraps a pointer type to its underlying *types.Named, or nil
// if t is neither a named type nor a pointer to one.
func namedOf(t types.Type) *types.Named {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, _ := t.(*types.Named)

	return named
}
