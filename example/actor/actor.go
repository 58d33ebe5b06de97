// Package actor holds records whose type-indexed accessors are generated by
// bundlegen.
package actor

//go:generate go run github.com/edwinsyarief/bundle/cmd/bundlegen actor.go

type Transform struct{ X, Y float32 }

type Velocity struct{ DX, DY float32 }

type AttackDamage struct{ Damage float32 }

type Health struct{ Current, Max int }

// Actor is a moving entity that can hit things.
//
//bundle:derive
type Actor struct {
	Transform    Transform
	Velocity     Velocity
	AttackDamage AttackDamage
	// boost is not named after its type: GetComponent cannot see it,
	// multi-component queries can.
	boost Velocity
}

// Squad is addressed by position, so every field takes part in lookups.
//
//bundle:derive positional
type Squad struct {
	Leader  Transform
	Wingman Transform
	Health
}

// Step moves a by its velocity, scaled by dt.
func (a *Actor) Step(dt float32) {
	a.Transform.X += (a.Velocity.DX + a.boost.DX) * dt
	a.Transform.Y += (a.Velocity.DY + a.boost.DY) * dt
}

// Boost sets the extra velocity applied by Step.
func (a *Actor) Boost(v Velocity) { a.boost = v }
