package specificity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-openmethods/openmethods/core"
	"github.com/go-openmethods/openmethods/specificity"
)

type stubClass struct{ name string }

func (s *stubClass) Name() string                  { return s.name }
func (s *stubClass) DirectBases() []core.ClassInfo { return nil }
func (s *stubClass) Interfaces() []core.ClassInfo  { return nil }
func (s *stubClass) IsConcrete() bool              { return true }

func conforming(self *core.Class, others ...*core.Class) map[*core.Class]*core.Class {
	m := map[*core.Class]*core.Class{self: self}
	for _, o := range others {
		m[o] = o
	}

	return m
}

// meetFixture builds spec §8 scenario 2: meet(virtual Animal, virtual
// Animal) with overrides (Animal,Animal), (Dog,Dog), (Dog,Cat).
func meetFixture() (animal, dog, cat, dolphin *core.Class, m *core.Method, generic, dogDog, dogCat *core.Spec) {
	animal = core.NewClass(&stubClass{"Animal"})
	animal.IsConcrete = false
	dog = core.NewClass(&stubClass{"Dog"})
	cat = core.NewClass(&stubClass{"Cat"})
	dolphin = core.NewClass(&stubClass{"Dolphin"})

	dog.Conforming = conforming(dog)
	cat.Conforming = conforming(cat)
	dolphin.Conforming = conforming(dolphin)
	animal.Conforming = conforming(animal, dog, cat, dolphin)

	m = core.NewMethod("meet", []*core.Class{animal, animal})
	generic = core.NewSpec(m, []*core.Class{animal, animal}, func(a []interface{}) (interface{}, error) { return "ignore", nil })
	dogDog = core.NewSpec(m, []*core.Class{dog, dog}, func(a []interface{}) (interface{}, error) { return "wag tail", nil })
	dogCat = core.NewSpec(m, []*core.Class{dog, cat}, func(a []interface{}) (interface{}, error) { return "chase", nil })

	return
}

func TestMoreSpecific_DogDogBeatsGeneric(t *testing.T) {
	_, _, _, _, _, generic, dogDog, _ := meetFixture()
	assert.True(t, specificity.MoreSpecific(dogDog, generic))
	assert.False(t, specificity.MoreSpecific(generic, dogDog))
}

func TestMoreSpecific_Irreflexive(t *testing.T) {
	_, _, _, _, _, generic, _, _ := meetFixture()
	assert.False(t, specificity.MoreSpecific(generic, generic))
}

func TestMoreSpecific_IncomparableSiblingsNeitherDominates(t *testing.T) {
	_, _, _, _, _, _, dogDog, dogCat := meetFixture()
	assert.False(t, specificity.MoreSpecific(dogDog, dogCat))
	assert.False(t, specificity.MoreSpecific(dogCat, dogDog))
}

func TestBest_KeepsOnlyMaximal(t *testing.T) {
	_, _, _, _, _, generic, dogDog, dogCat := meetFixture()
	best := specificity.Best([]*core.Spec{generic, dogDog, dogCat})
	assert.ElementsMatch(t, []*core.Spec{dogDog, dogCat}, best)
}

func TestBest_AmbiguousSiblingsBothSurvive(t *testing.T) {
	_, _, _, _, _, _, dogDog, dogCat := meetFixture()
	best := specificity.Best([]*core.Spec{dogDog, dogCat})
	assert.Len(t, best, 2, "P3: two mutually-incomparable overrides must both remain in Best")
}

func TestFindNext_ChainsToMostSpecificAncestor(t *testing.T) {
	_, _, _, _, m, generic, dogDog, _ := meetFixture()
	next := specificity.FindNext(dogDog, m.Specs)
	assert.Same(t, generic, next)
	assert.NotNil(t, dogDog.NextPf)
}

func TestFindNext_NoneBelowGeneric(t *testing.T) {
	_, _, _, _, m, generic, _, _ := meetFixture()
	next := specificity.FindNext(generic, m.Specs)
	assert.Nil(t, next)
	assert.Nil(t, generic.NextPf)
}
