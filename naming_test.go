package bundle_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edwinsyarief/bundle"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

// go test -run ^TestNameMatches$ . -count 1
func TestNameMatches(t *testing.T) {
	tests := []struct {
		field, typ string
		want       bool
	}{
		{"Velocity", "Velocity", true},
		{"velocity", "Velocity", true},
		{"attackDamage", "AttackDamage", true},
		{"attack_damage", "AttackDamage", true},
		{"AttackDamage", "AttackDamage", true},
		{"dmg", "AttackDamage", false},
		{"vel", "Velocity", false},
		{"_", "Velocity", false},
		{"Velocity", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bundle.NameMatches(tt.field, tt.typ), "%s %s", tt.field, tt.typ)
	}
}

// go test -run ^TestSimpleName$ . -count 1
func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Velocity", bundle.SimpleName(reflect.TypeFor[Velocity]()))
	assert.Equal(t, "Pair", bundle.SimpleName(reflect.TypeFor[Pair[int, string]]()))
	assert.Equal(t, "float32", bundle.SimpleName(reflect.TypeFor[float32]()))
	assert.Equal(t, "", bundle.SimpleName(reflect.TypeFor[*Velocity]()))
	assert.Equal(t, "", bundle.SimpleName(reflect.TypeFor[[]int]()))
	assert.Equal(t, "", bundle.SimpleName(nil))
}

// go test -run ^TestGenericFieldNamedAfterType$ . -count 1
func TestGenericFieldNamedAfterType(t *testing.T) {
	r := &struct {
		Pair Pair[int, string]
	}{}
	p, ok := bundle.GetComponent[Pair[int, string]](bundle.Of(r))
	assert.True(t, ok)
	assert.Same(t, &r.Pair, p)
}
