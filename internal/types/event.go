package types

import "github.com/moznion/go-optional"

// Event is the closed sum of side effects a function body records while
// it is checked, replayed at each call site by substituting the
// recorded argument types for the callee's parameters. Grounded on the
// Rust original's Event enum (checker/src/types/calling.rs); only the
// variant call resolution itself needs to interpret (CallsType) is fully
// modeled, the rest are kept opaque payloads so replay can walk them
// uniformly without needing to know their internals.
//
//sumtype:decl
type Event interface{ isEvent() }

func (*CallsType) isEvent()          {}
func (*PropertyRead) isEvent()       {}
func (*PropertyWrite) isEvent()      {}
func (*Declaration) isEvent()        {}
func (*Returns) isEvent()            {}

// CallsType records one nested call made while the body of another
// function was being checked: which callable was invoked, with what
// arguments, and what it returned. ReplayEffects re-issues this call
// against the substituted argument types rather than trusting the
// recorded ReturnedType verbatim, so a generic callee invoked at a
// different instantiation each time still gets the right answer.
type CallsType struct {
	Id           CallId
	Callee       TypeId
	Arguments    []TypeId
	CalledWith   CalledWithNew
	ReturnedType TypeId
	// ReflectsDependency is set to the Constructor::FunctionResult this
	// call's return type was wrapped in, when the poly-dispatch path
	// decided the inner result could not be returned as-is or a
	// constant-function call was deferred because of a dependent argument.
	ReflectsDependency optional.Option[TypeId]
	At                  Timing
}

// CalledWithNew records whether a recorded call used `new`, and if so
// what `new.target` was bound to.
//
//sumtype:decl
type CalledWithNew interface{ isCalledWithNew() }

func (NewCall) isCalledWithNew()           {}
func (SpecialSuperCall) isCalledWithNew()  {}
func (NotCalledWithNew) isCalledWithNew()  {}

type NewCall struct{ On TypeId }
type SpecialSuperCall struct{ ThisType TypeId }
type NotCalledWithNew struct{}

// PropertyRead/PropertyWrite/Declaration record effects this engine
// replays opaquely: it substitutes their type fields but does not
// interpret what property or binding they refer to, since reading and
// assigning object properties is out of scope.
type PropertyRead struct {
	On   TypeId
	Type TypeId
	At   Timing
}

type PropertyWrite struct {
	On   TypeId
	Type TypeId
	At   Timing
}

type Declaration struct {
	Type TypeId
	At   Timing
}

// Returns marks the point a function body's control flow exits with a
// value; ReplayEffects stops at the first one reached and uses its
// substituted type as the early return.
type Returns struct {
	Type TypeId
	At   Timing
}

// Timing orders events within one function body's recorded effect log.
type Timing int
