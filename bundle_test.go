package bundle_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/bundle"
)

// --- Test Components ---
type Transform struct{ X, Y float32 }
type Velocity struct{ DX, DY float32 }
type AttackDamage struct{ Damage float32 }
type Tag struct{}

// sampleBundle has fields named by position, so it is adapted with
// bundle.Positional().
type sampleBundle struct {
	F0 int
	F1 float32
	F2 string
}

type entity struct {
	Transform    Transform
	velocity     Velocity
	AttackDamage AttackDamage
}

// mislabeled holds a Velocity under a name that does not match its type.
type mislabeled struct {
	Transform Transform
	vel       Velocity
}

type twins struct {
	A uint32
	B uint32
	C string
}

func newSample() *sampleBundle {
	return &sampleBundle{F0: 123, F1: 456.0, F2: "Hallo"}
}

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}

// go test -run ^TestGetComponent$ . -count 1
func TestGetComponent(t *testing.T) {
	s := newSample()
	rec := bundle.Of(s, bundle.Positional())

	f, ok := bundle.GetComponent[float32](rec)
	require.True(t, ok)
	assert.Same(t, &s.F1, f)
	assert.Equal(t, float32(456.0), *f)

	b, ok := bundle.GetComponent[bool](rec)
	assert.False(t, ok)
	assert.Nil(t, b)

	assert.True(t, bundle.Has[string](rec))
	assert.False(t, bundle.Has[bool](rec))
}

// go test -run ^TestGetComponentIdempotent$ . -count 1
func TestGetComponentIdempotent(t *testing.T) {
	rec := bundle.Of(newSample(), bundle.Positional())
	first, ok := bundle.GetComponent[string](rec)
	require.True(t, ok)
	for range 5 {
		again, ok := bundle.GetComponent[string](rec)
		require.True(t, ok)
		assert.Same(t, first, again)
	}
}

// go test -run ^TestGetMutComponent$ . -count 1
func TestGetMutComponent(t *testing.T) {
	e := &entity{Transform: Transform{X: 1}}
	rec := bundle.Of(e)

	tr, ok := bundle.GetMutComponent[Transform](rec)
	require.True(t, ok)
	tr.X = 42
	assert.Equal(t, float32(42), e.Transform.X)

	// Unexported fields are reachable as long as their name matches.
	v, ok := bundle.GetMutComponent[Velocity](rec)
	require.True(t, ok)
	v.DX = 3
	assert.Equal(t, float32(3), e.velocity.DX)
}

// go test -run ^TestGetComponentsOrder$ . -count 1
func TestGetComponentsOrder(t *testing.T) {
	s := newSample()
	rec := bundle.Of(s, bundle.Positional())

	f, i, ok := bundle.GetComponents2[float32, int](rec)
	require.True(t, ok)
	assert.Same(t, &s.F1, f)
	assert.Same(t, &s.F0, i)

	str, f2, i2, ok := bundle.GetComponents3[string, float32, int](rec)
	require.True(t, ok)
	assert.Same(t, &s.F2, str)
	assert.Same(t, &s.F1, f2)
	assert.Same(t, &s.F0, i2)
}

// go test -run ^TestGetComponentsMissing$ . -count 1
func TestGetComponentsMissing(t *testing.T) {
	rec := bundle.Of(newSample(), bundle.Positional())

	f, b, ok := bundle.GetComponents2[float32, bool](rec)
	assert.False(t, ok)
	assert.Nil(t, f, "no partial tuple")
	assert.Nil(t, b)

	_, _, _, ok = bundle.GetMutComponents3[bool, int, string](rec)
	assert.False(t, ok)
}

// go test -run ^TestGetComponentsTooMany$ . -count 1
func TestGetComponentsTooMany(t *testing.T) {
	rec := bundle.Of(newSample(), bundle.Positional())
	_, _, _, _, ok := bundle.GetComponents4[int, float32, string, int](rec)
	assert.False(t, ok)
}

// go test -run ^TestDuplicateTypes$ . -count 1
func TestDuplicateTypes(t *testing.T) {
	t.Run("TwoFieldsTwoRequests", func(t *testing.T) {
		tw := &twins{A: 1, B: 2}
		rec := bundle.Of(tw, bundle.Positional())

		a, b, ok := bundle.GetMutComponents2[uint32, uint32](rec)
		require.True(t, ok)
		assert.NotSame(t, a, b)
		assert.Same(t, &tw.A, a, "first-declared field fills the first request")
		assert.Same(t, &tw.B, b)

		*a, *b = 10, 20
		assert.Equal(t, uint32(10), tw.A)
		assert.Equal(t, uint32(20), tw.B)
	})

	t.Run("OneFieldTwoRequests", func(t *testing.T) {
		rec := bundle.Of(newSample(), bundle.Positional())
		a, b, ok := bundle.GetMutComponents2[int, int](rec)
		assert.False(t, ok)
		assert.Nil(t, a)
		assert.Nil(t, b)

		_, _, ok = bundle.GetComponents2[int, int](rec)
		assert.False(t, ok, "shared queries consume distinct fields too")
	})

	t.Run("SingleLookupTakesFirst", func(t *testing.T) {
		tw := &twins{}
		rec := bundle.Of(tw, bundle.Positional())
		a, ok := bundle.GetComponent[uint32](rec)
		require.True(t, ok)
		assert.Same(t, &tw.A, a)
	})
}

// go test -run ^TestNamedFieldBoundary$ . -count 1
func TestNamedFieldBoundary(t *testing.T) {
	m := &mislabeled{}
	rec := bundle.Of(m)

	_, ok := bundle.GetComponent[Velocity](rec)
	assert.False(t, ok, "vel is not named after Velocity")
	assert.Equal(t, []string{"Transform"}, rec.Reachable())
	assert.Equal(t, []reflect.Type{reflect.TypeFor[Transform](), reflect.TypeFor[Velocity]()}, rec.FieldTypes())

	// Multi-component queries enumerate every field.
	v, tr, ok := bundle.GetComponents2[Velocity, Transform](rec)
	require.True(t, ok)
	assert.Same(t, &m.vel, v)
	assert.Same(t, &m.Transform, tr)

	// Positional adaption makes every field reachable.
	pos := bundle.Of(m, bundle.Positional())
	v2, ok := bundle.GetComponent[Velocity](pos)
	require.True(t, ok)
	assert.Same(t, &m.vel, v2)
}

// go test -run ^TestEmbeddedAndBlankFields$ . -count 1
func TestEmbeddedAndBlankFields(t *testing.T) {
	type record struct {
		Transform
		*Velocity
		_  [8]byte
		Hp int
	}
	r := &record{Velocity: &Velocity{DX: 1}}
	rec := bundle.Of(r)

	tr, ok := bundle.GetComponent[Transform](rec)
	require.True(t, ok)
	assert.Same(t, &r.Transform, tr)

	_, ok = bundle.GetComponent[*Velocity](rec)
	assert.False(t, ok, "pointer types have no simple name")

	assert.Len(t, rec.FieldTypes(), 3, "blank fields are not components")
	v, hp, ok := bundle.GetComponents2[*Velocity, int](rec)
	require.True(t, ok)
	assert.Same(t, r.Velocity, *v)
	assert.Same(t, &r.Hp, hp)
}

// go test -run ^TestComponentPanics$ . -count 1
func TestComponentPanics(t *testing.T) {
	e := &entity{AttackDamage: AttackDamage{Damage: 7}}
	rec := bundle.Of(e)

	assert.Equal(t, float32(7), bundle.Component[AttackDamage](rec).Damage)
	bundle.MutComponent[AttackDamage](rec).Damage = 9
	assert.Equal(t, float32(9), e.AttackDamage.Damage)

	err := recoverError(func() { bundle.Component[Tag](rec) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, bundle.ErrTypeNotFound))
	var nf *bundle.TypeNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, reflect.TypeFor[Tag](), nf.Type)
	assert.Equal(t, reflect.TypeFor[entity](), nf.Record)
	assert.Contains(t, err.Error(), "bundle_test.Tag")

	err = recoverError(func() { bundle.MutComponent[Tag](rec) })
	assert.ErrorIs(t, err, bundle.ErrTypeNotFound)
}

// go test -run ^TestComponentsPanics$ . -count 1
func TestComponentsPanics(t *testing.T) {
	e := &entity{}
	rec := bundle.Of(e)

	tr, dmg := bundle.MutComponents2[Transform, AttackDamage](rec)
	assert.Same(t, &e.Transform, tr)
	assert.Same(t, &e.AttackDamage, dmg)

	err := recoverError(func() { bundle.Components2[Transform, Tag](rec) })
	require.ErrorIs(t, err, bundle.ErrTupleUnsatisfiable)
	var ue *bundle.UnsatisfiableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 1, ue.Position)
	assert.False(t, ue.Exhausted)
}

// go test -run ^TestExplain$ . -count 1
func TestExplain(t *testing.T) {
	rec := bundle.Of(newSample(), bundle.Positional())
	intT, f32T, boolT := reflect.TypeFor[int](), reflect.TypeFor[float32](), reflect.TypeFor[bool]()

	assert.NoError(t, bundle.Explain(rec, f32T, intT))

	var ue *bundle.UnsatisfiableError
	err := bundle.Explain(rec, intT, boolT)
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 1, ue.Position)
	assert.Equal(t, boolT, ue.Type)
	assert.False(t, ue.Exhausted)
	assert.Contains(t, err.Error(), "absent")

	err = bundle.Explain(rec, intT, intT)
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 1, ue.Position)
	assert.True(t, ue.Exhausted)

	err = bundle.Explain(rec, intT, intT, intT, intT)
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, -1, ue.Position)
	assert.ErrorIs(t, err, bundle.ErrTupleUnsatisfiable)
}

// go test -run ^TestReflectInvalid$ . -count 1
func TestReflectInvalid(t *testing.T) {
	var nilEntity *entity
	n := 3
	for name, v := range map[string]any{
		"Nil":           nil,
		"Value":         entity{},
		"NilPointer":    nilEntity,
		"PointerToBase": &n,
	} {
		t.Run(name, func(t *testing.T) {
			a, err := bundle.Reflect(v)
			assert.Nil(t, a)
			assert.ErrorIs(t, err, bundle.ErrInvalidRecord)
		})
	}

	err := recoverError(func() { bundle.Of(entity{}) })
	var ie *bundle.InvalidRecordError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, reflect.TypeFor[entity](), ie.Type)
}

// go test -run ^TestMaxArity$ . -count 1
func TestMaxArity(t *testing.T) {
	type wide struct {
		A0, A1, A2, A3, A4, A5, A6, A7 int8
		B0, B1, B2, B3, B4, B5, B6, B7 int16
	}
	w := &wide{A0: 1, B7: 2}
	rec := bundle.Of(w, bundle.Positional())
	a0, _, _, _, _, _, _, _, _, _, _, _, _, _, _, b7, ok := bundle.GetMutComponents16[
		int8, int8, int8, int8, int8, int8, int8, int8,
		int16, int16, int16, int16, int16, int16, int16, int16](rec)
	require.True(t, ok)
	assert.Same(t, &w.A0, a0)
	assert.Same(t, &w.B7, b7)
}

// go test -run ^TestAccessString$ . -count 1
func TestAccessString(t *testing.T) {
	assert.Equal(t, "shared", bundle.Shared.String())
	assert.Equal(t, "exclusive", bundle.Exclusive.String())
	assert.Equal(t, "Access(7)", bundle.Access(7).String())
}

// go test -run ^TestFieldTypes$ . -count 1
func TestFieldTypes(t *testing.T) {
	rec := bundle.Of(&entity{})
	types := bundle.FieldTypes(rec)
	require.Len(t, types, 3)
	types[0] = nil
	assert.Equal(t, reflect.TypeFor[Transform](), rec.FieldTypes()[0], "callers get a copy")
	assert.Nil(t, bundle.FieldTypes(nil))
	assert.Equal(t, reflect.TypeFor[entity](), rec.Type())
}

// go test -run ^TestNilRecord$ . -count 1
func TestNilRecord(t *testing.T) {
	var rec bundle.Record

	v, ok := bundle.GetComponent[Velocity](rec)
	assert.False(t, ok)
	assert.Nil(t, v)
	_, ok = bundle.GetMutComponent[Velocity](rec)
	assert.False(t, ok)
	assert.False(t, bundle.Has[Velocity](rec))

	tr, v, ok := bundle.GetMutComponents2[Transform, Velocity](rec)
	assert.False(t, ok)
	assert.Nil(t, tr)
	assert.Nil(t, v)

	assert.NoError(t, bundle.Explain(rec))
	assert.ErrorIs(t, bundle.Explain(rec, reflect.TypeFor[Velocity]()), bundle.ErrTupleUnsatisfiable)

	err := recoverError(func() { bundle.Component[Velocity](rec) })
	var nf *bundle.TypeNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Nil(t, nf.Record)
	assert.Empty(t, nf.Available)

	err = recoverError(func() { bundle.Components2[Transform, Velocity](rec) })
	var ue *bundle.UnsatisfiableError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, -1, ue.Position)
}
