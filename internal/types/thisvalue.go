package types

import "github.com/moznion/go-optional"

// ThisValue records where a callable's `this` binding comes from: either
// it was passed explicitly at the call site (a method call, `.call()`,
// or a `new` target) or it should be looked up from the enclosing scope
// (an arrow function closing over its definition site). Modeled on the
// Rust original's ThisValue::Passed/UseParent split.
//
//sumtype:decl
type ThisValue interface{ isThisValue() }

func (Passed) isThisValue()    {}
func (UseParent) isThisValue() {}

// Passed carries an explicit `this` type, e.g. the receiver of a method
// call or the object under construction for `new`.
type Passed struct {
	Type TypeId
}

// UseParent defers to whatever `this` is bound in the surrounding scope;
// Fallback is substituted when no enclosing scope provides one (top-level
// arrow functions see `globalThis`, non-strict functions see `undefined`).
type UseParent struct {
	Fallback optional.Option[TypeId]
}

// Resolve returns the concrete TypeId this value denotes, given the
// `this` of the enclosing scope (None at the top level).
func (t Passed) Resolve(optional.Option[TypeId]) TypeId { return t.Type }

func (t UseParent) Resolve(enclosing optional.Option[TypeId]) TypeId {
	if enclosing.IsSome() {
		return enclosing.Unwrap()
	}
	return t.Fallback.TakeOrElse(func() TypeId { return UndefinedType })
}
