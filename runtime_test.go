package openmethods_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-openmethods/openmethods"
	"github.com/go-openmethods/openmethods/core"
)

// stubClass is a minimal core.ClassInfo a test fixture can declare a
// small hierarchy with, independent of any real Go type system.
type stubClass struct {
	name    string
	bases   []core.ClassInfo
	concete bool
}

func (s *stubClass) Name() string                  { return s.name }
func (s *stubClass) DirectBases() []core.ClassInfo { return s.bases }
func (s *stubClass) Interfaces() []core.ClassInfo  { return nil }
func (s *stubClass) IsConcrete() bool              { return s.concete }

// fixtureSource exposes a fixed, closed set of stubClass descriptors as
// a core.ClassSource.
type fixtureSource struct{ classes []core.ClassInfo }

func (f *fixtureSource) Classes() []core.ClassInfo { return f.classes }

// instance is the minimal core.Instance a test passes to Runtime.Call.
type instance struct{ desc core.ClassInfo }

func (i *instance) ClassInfo() core.ClassInfo { return i.desc }

// animalHierarchy builds spec §8 scenario 1's descriptors: interface
// Animal; Dog:Animal; Pitbull:Dog; Cat:Animal.
func animalHierarchy() (source *fixtureSource, animal, dog, pitbull, cat core.ClassInfo) {
	animal = &stubClass{name: "Animal", concete: false}
	dog = &stubClass{name: "Dog", bases: []core.ClassInfo{animal}, concete: true}
	pitbull = &stubClass{name: "Pitbull", bases: []core.ClassInfo{dog}, concete: true}
	cat = &stubClass{name: "Cat", bases: []core.ClassInfo{animal}, concete: true}

	source = &fixtureSource{classes: []core.ClassInfo{animal, dog, pitbull, cat}}

	return source, animal, dog, pitbull, cat
}

func TestRuntime_RegisterAndCallHappyPath(t *testing.T) {
	source, animalDesc, dogDesc, pitbullDesc, catDesc := animalHierarchy()
	rt := openmethods.New(source)

	animal := rt.Class(animalDesc)
	dog := rt.Class(dogDesc)
	pitbull := rt.Class(pitbullDesc)
	rt.Class(catDesc)

	kick := core.NewMethod("kick", []*core.Class{animal})
	require.NoError(t, rt.Register(kick))

	dogSpec := core.NewSpec(kick, []*core.Class{dog}, func(a []interface{}) (interface{}, error) { return "bark", nil })
	pitbullSpec := core.NewSpec(kick, []*core.Class{pitbull}, func(a []interface{}) (interface{}, error) { return "bite", nil })
	require.NoError(t, rt.RegisterSpec(dogSpec))
	require.NoError(t, rt.RegisterSpec(pitbullSpec))

	require.NoError(t, rt.Update())

	result, err := rt.Call(kick, &instance{desc: dogDesc})
	require.NoError(t, err)
	assert.Equal(t, "bark", result)

	result, err = rt.Call(kick, &instance{desc: pitbullDesc})
	require.NoError(t, err)
	assert.Equal(t, "bite", result)

	result, err = rt.Call(kick, &instance{desc: catDesc})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, core.ErrUndefinedCall)
}

func TestRuntime_CallBeforeUpdateIsSetupMisuse(t *testing.T) {
	source, animalDesc, dogDesc, _, _ := animalHierarchy()
	rt := openmethods.New(source)

	animal := rt.Class(animalDesc)
	kick := core.NewMethod("kick", []*core.Class{animal})
	require.NoError(t, rt.Register(kick))

	result, err := rt.Call(kick, &instance{desc: dogDesc})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, core.ErrSetupMisuse)
}

func TestRuntime_DoubleUpdateIsSetupMisuse(t *testing.T) {
	source, animalDesc, _, _, _ := animalHierarchy()
	rt := openmethods.New(source)
	rt.Class(animalDesc)

	require.NoError(t, rt.Update())
	assert.ErrorIs(t, rt.Update(), core.ErrSetupMisuse)
}

func TestRuntime_RegisterNilMethodIsSetupMisuse(t *testing.T) {
	source, _, _, _, _ := animalHierarchy()
	rt := openmethods.New(source)

	assert.ErrorIs(t, rt.Register(nil), core.ErrSetupMisuse)
}

func TestRuntime_RegisterSpecUnreachableClassIsSetupMisuse(t *testing.T) {
	source, animalDesc, dogDesc, _, _ := animalHierarchy()
	rt := openmethods.New(source)

	animal := rt.Class(animalDesc)
	kick := core.NewMethod("kick", []*core.Class{animal})
	require.NoError(t, rt.Register(kick))

	// strayDog's Class node is built with core.NewClass, never through
	// rt.Class, so the runtime has never seen the class this spec uses.
	strayDog := core.NewClass(&stubClass{name: "StrayDog", concete: true})
	strayDog.Conforming = map[*core.Class]*core.Class{strayDog: strayDog}
	stray := core.NewSpec(kick, []*core.Class{strayDog}, func(a []interface{}) (interface{}, error) { return "bark", nil })

	err := rt.RegisterSpec(stray)
	assert.ErrorIs(t, err, core.ErrSetupMisuse)

	_ = dogDesc
}

func TestRuntime_PermissiveValidationSkipsReachabilityCheck(t *testing.T) {
	source, animalDesc, _, _, _ := animalHierarchy()
	rt := openmethods.New(source, openmethods.WithStrictValidation(false))

	animal := rt.Class(animalDesc)
	kick := core.NewMethod("kick", []*core.Class{animal})
	require.NoError(t, rt.Register(kick))

	strayDog := core.NewClass(&stubClass{name: "StrayDog", concete: true})
	stray := core.NewSpec(kick, []*core.Class{strayDog}, func(a []interface{}) (interface{}, error) { return "bark", nil })

	assert.NoError(t, rt.RegisterSpec(stray))
}
