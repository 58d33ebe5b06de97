package actor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/bundle"
)

var (
	_ bundle.Record = (*Actor)(nil)
	_ bundle.Record = (*Squad)(nil)
)

// go test -run ^TestActorLookup$ . -count 1
func TestActorLookup(t *testing.T) {
	a := &Actor{Velocity: Velocity{DX: 1}}

	v, ok := bundle.GetComponent[Velocity](a)
	require.True(t, ok)
	assert.Same(t, &a.Velocity, v, "the field named after the type wins over boost")

	_, ok = bundle.GetComponent[Health](a)
	assert.False(t, ok)

	bundle.MutComponent[AttackDamage](a).Damage = 12
	assert.Equal(t, float32(12), a.AttackDamage.Damage)
}

// go test -run ^TestActorMisnamedField$ . -count 1
func TestActorMisnamedField(t *testing.T) {
	a := &Actor{}
	a.Boost(Velocity{DX: 5})

	// Two Velocity fields: the named one first, then boost.
	v1, v2, ok := bundle.GetMutComponents2[Velocity, Velocity](a)
	require.True(t, ok)
	assert.Same(t, &a.Velocity, v1)
	assert.Same(t, &a.boost, v2)
	assert.Equal(t, float32(5), v2.DX)

	_, _, _, ok = bundle.GetComponents3[Velocity, Velocity, Velocity](a)
	assert.False(t, ok)
}

// go test -run ^TestActorQueryOrder$ . -count 1
func TestActorQueryOrder(t *testing.T) {
	a := &Actor{Transform: Transform{X: 1}, Velocity: Velocity{DX: 2, DY: 3}}

	tr, dmg, ok := bundle.GetMutComponents2[Transform, AttackDamage](a)
	require.True(t, ok)
	assert.Same(t, &a.Transform, tr)
	assert.Same(t, &a.AttackDamage, dmg)

	a.Step(1)
	assert.Equal(t, Transform{X: 3, Y: 3}, *tr)
}

// go test -run ^TestSquadPositional$ . -count 1
func TestSquadPositional(t *testing.T) {
	s := &Squad{Health: Health{Current: 3, Max: 10}}

	lead, ok := bundle.GetComponent[Transform](s)
	require.True(t, ok)
	assert.Same(t, &s.Leader, lead)

	h, ok := bundle.GetComponent[Health](s)
	require.True(t, ok)
	assert.Equal(t, 10, h.Max)

	hp, l, w, ok := bundle.GetMutComponents3[Health, Transform, Transform](s)
	require.True(t, ok)
	assert.Same(t, &s.Health, hp)
	assert.Same(t, &s.Leader, l)
	assert.Same(t, &s.Wingman, w)
}

// go test -run ^TestGeneratedMatchesReflection$ . -count 1
func TestGeneratedMatchesReflection(t *testing.T) {
	a := &Actor{}
	assert.Equal(t, bundle.Of(a).FieldTypes(), a.FieldTypes())
	assert.Equal(t, []reflect.Type{
		reflect.TypeFor[Transform](),
		reflect.TypeFor[Velocity](),
		reflect.TypeFor[AttackDamage](),
		reflect.TypeFor[Velocity](),
	}, a.FieldTypes())

	generated, _ := bundle.GetComponent[Velocity](a)
	reflected, _ := bundle.GetComponent[Velocity](bundle.Of(a))
	assert.Same(t, generated, reflected)

	s := &Squad{}
	gs := s.Slots(bundle.Shared)
	rs := bundle.Of(s, bundle.Positional()).Slots(bundle.Shared)
	require.Len(t, rs, len(gs))
	for i := range gs {
		assert.Equal(t, gs[i].Type(), rs[i].Type())
		assert.Same(t, gs[i].Ref(), rs[i].Ref())
	}
}

// go test -run ^TestExplainActor$ . -count 1
func TestExplainActor(t *testing.T) {
	err := bundle.Explain(&Actor{}, reflect.TypeFor[Transform](), reflect.TypeFor[Health]())
	require.ErrorIs(t, err, bundle.ErrTupleUnsatisfiable)
	assert.Contains(t, err.Error(), "actor.Actor")
	assert.Contains(t, err.Error(), "actor.Health")
}
