package bundle_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/bundle"
)

func typesOf(slots []bundle.Slot) []reflect.Type {
	out := make([]reflect.Type, len(slots))
	for i, s := range slots {
		out[i] = s.Type()
	}
	return out
}

// go test -run ^TestReorder$ . -count 1
func TestReorder(t *testing.T) {
	var (
		i  int
		f  float32
		s  string
		u1 uint32
		u2 uint32
	)
	intT, f32T, strT, u32T := reflect.TypeFor[int](), reflect.TypeFor[float32](), reflect.TypeFor[string](), reflect.TypeFor[uint32]()
	slots := func() []bundle.Slot {
		return []bundle.Slot{
			bundle.NewSlot(&i, bundle.Shared),
			bundle.NewSlot(&u1, bundle.Shared),
			bundle.NewSlot(&f, bundle.Shared),
			bundle.NewSlot(&u2, bundle.Shared),
			bundle.NewSlot(&s, bundle.Shared),
		}
	}

	t.Run("QueryOrder", func(t *testing.T) {
		out, ok := bundle.Reorder(slots(), []reflect.Type{strT, intT, f32T})
		require.True(t, ok)
		assert.Equal(t, []reflect.Type{strT, intT, f32T}, typesOf(out))
		assert.Same(t, &s, out[0].Ref())
		assert.Same(t, &i, out[1].Ref())
	})

	t.Run("ConsumesInput", func(t *testing.T) {
		in := slots()
		out, ok := bundle.Reorder(in, []reflect.Type{u32T})
		require.True(t, ok)
		assert.Same(t, &u1, out[0].Ref(), "first-declared wins")
		assert.True(t, in[1].IsZero(), "taken slot leaves a placeholder")
		assert.False(t, in[3].IsZero())
	})

	t.Run("RepeatedTypeTakesNextOccurrence", func(t *testing.T) {
		out, ok := bundle.Reorder(slots(), []reflect.Type{u32T, u32T})
		require.True(t, ok)
		assert.Same(t, &u1, out[0].Ref())
		assert.Same(t, &u2, out[1].Ref())

		_, ok = bundle.Reorder(slots(), []reflect.Type{u32T, u32T, u32T})
		assert.False(t, ok)
	})

	t.Run("MissingFailsWhole", func(t *testing.T) {
		out, ok := bundle.Reorder(slots(), []reflect.Type{intT, reflect.TypeFor[bool]()})
		assert.False(t, ok)
		assert.Nil(t, out)
	})

	t.Run("LongerThanRecord", func(t *testing.T) {
		order := []reflect.Type{intT, intT, intT, intT, intT, intT}
		_, ok := bundle.Reorder(slots(), order)
		assert.False(t, ok)
	})

	t.Run("EmptySlotsNeverMatch", func(t *testing.T) {
		in := []bundle.Slot{{}, bundle.NewSlot(&i, bundle.Shared)}
		out, ok := bundle.Reorder(in, []reflect.Type{intT})
		require.True(t, ok)
		assert.Same(t, &i, out[0].Ref())

		_, ok = bundle.Reorder([]bundle.Slot{{}}, []reflect.Type{nil})
		assert.False(t, ok)
	})

	t.Run("EmptyOrder", func(t *testing.T) {
		out, ok := bundle.Reorder(slots(), nil)
		assert.True(t, ok)
		assert.Empty(t, out)
	})
}

// go test -run ^TestSlot$ . -count 1
func TestSlot(t *testing.T) {
	v := Velocity{DX: 2}
	s := bundle.NewSlot(&v, bundle.Exclusive)
	assert.False(t, s.IsZero())
	assert.Equal(t, bundle.Exclusive, s.Mode())
	assert.True(t, s.Is(reflect.TypeFor[Velocity]()))
	assert.False(t, s.Is(reflect.TypeFor[Transform]()))

	p, ok := bundle.Downcast[Velocity](s)
	require.True(t, ok)
	assert.Same(t, &v, p)

	_, ok = bundle.Downcast[Transform](s)
	assert.False(t, ok)

	var zero bundle.Slot
	assert.True(t, zero.IsZero())
	assert.Nil(t, zero.Type())
	_, ok = bundle.Downcast[Velocity](zero)
	assert.False(t, ok)

	assert.True(t, bundle.NewSlot[Velocity](nil, bundle.Shared).IsZero())
}

// go test -run ^TestDescriptorChecks$ . -count 1
func TestDescriptorChecks(t *testing.T) {
	var (
		tr  Transform
		v   Velocity
		tag Tag
	)
	d := bundle.Tuple2[Transform, Velocity]{}
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Transform](), reflect.TypeFor[Velocity]()}, d.WantedTypes())

	t.Run("Shared", func(t *testing.T) {
		refs, ok := d.TryBuildShared([]bundle.Slot{
			bundle.NewSlot(&tr, bundle.Shared),
			bundle.NewSlot(&v, bundle.Shared),
		})
		require.True(t, ok)
		assert.Same(t, &tr, refs.C1)
		assert.Same(t, &v, refs.C2)
	})

	t.Run("WrongCount", func(t *testing.T) {
		_, ok := d.TryBuildShared([]bundle.Slot{bundle.NewSlot(&tr, bundle.Shared)})
		assert.False(t, ok)
	})

	t.Run("WrongOrder", func(t *testing.T) {
		refs, ok := d.TryBuildShared([]bundle.Slot{
			bundle.NewSlot(&v, bundle.Shared),
			bundle.NewSlot(&tr, bundle.Shared),
		})
		assert.False(t, ok)
		assert.Nil(t, refs.C1)
		assert.Nil(t, refs.C2)
	})

	t.Run("WrongMode", func(t *testing.T) {
		_, ok := d.TryBuildExclusive([]bundle.Slot{
			bundle.NewSlot(&tr, bundle.Shared),
			bundle.NewSlot(&v, bundle.Shared),
		})
		assert.False(t, ok)
	})

	t.Run("EmptySlot", func(t *testing.T) {
		_, ok := d.TryBuildShared([]bundle.Slot{bundle.NewSlot(&tr, bundle.Shared), {}})
		assert.False(t, ok)
	})

	t.Run("ExclusiveAlias", func(t *testing.T) {
		same := bundle.Tuple2[Transform, Transform]{}
		_, ok := same.TryBuildExclusive([]bundle.Slot{
			bundle.NewSlot(&tr, bundle.Exclusive),
			bundle.NewSlot(&tr, bundle.Exclusive),
		})
		assert.False(t, ok)

		// Shared views of one field are fine.
		refs, ok := same.TryBuildShared([]bundle.Slot{
			bundle.NewSlot(&tr, bundle.Shared),
			bundle.NewSlot(&tr, bundle.Shared),
		})
		require.True(t, ok)
		assert.Same(t, refs.C1, refs.C2)
	})

	t.Run("ZeroSizedFieldsMayShareAddress", func(t *testing.T) {
		tags := bundle.Tuple2[Tag, Tag]{}
		_, ok := tags.TryBuildExclusive([]bundle.Slot{
			bundle.NewSlot(&tag, bundle.Exclusive),
			bundle.NewSlot(&tag, bundle.Exclusive),
		})
		assert.True(t, ok)
	})
}

// go test -run ^TestExtract$ . -count 1
func TestExtract(t *testing.T) {
	e := &entity{}
	rec := bundle.Of(e)

	refs, ok := bundle.Extract[bundle.Refs3[AttackDamage, Velocity, Transform]](
		rec, bundle.Tuple3[AttackDamage, Velocity, Transform]{}, bundle.Exclusive)
	require.True(t, ok)
	assert.Same(t, &e.AttackDamage, refs.C1)
	assert.Same(t, &e.velocity, refs.C2)
	assert.Same(t, &e.Transform, refs.C3)

	dup, ok := bundle.Extract[bundle.Refs3[AttackDamage, Velocity, Velocity]](
		rec, bundle.Tuple3[AttackDamage, Velocity, Velocity]{}, bundle.Shared)
	assert.False(t, ok)
	assert.Nil(t, dup.C1)
}
