// Package facts is component C2: the per-call-stack-frame record of
// recorded effects and closure values call resolution reads and writes
// while it checks and replays a function body. It is modeled on the
// teacher's internal/checker.Scope (parent-chaining lookup, panics on
// double-definition in the same frame) generalized from variable
// bindings to the Events/ClosureCurrentValues/PolyBase facts component
// C6/C7 need.
package facts

import (
	"fmt"

	"github.com/callcheck/callcheck/internal/types"
)

// Environment is one frame of the call stack: the effects recorded while
// checking the current function body, the live value bound to each
// closed-over variable, and (for a poly-base callee) what concrete type
// its type parameter currently resolves to. Frames chain to a Parent the
// same way Scope does, so a lookup that misses locally falls through to
// the enclosing call.
type Environment struct {
	Parent *Environment

	events    []types.Event
	closure   map[string]types.TypeId
	polyBase  map[types.TypeId]types.TypeId
	callCount int
}

// NewEnvironment creates a root frame with no parent, used for the
// top-level call into the engine.
func NewEnvironment() *Environment {
	return &Environment{
		closure:  make(map[string]types.TypeId),
		polyBase: make(map[types.TypeId]types.TypeId),
	}
}

// Child opens a new frame for a nested call, chained to e so closure
// lookups that miss locally fall through to the caller's bindings.
func (e *Environment) Child() *Environment {
	return &Environment{
		Parent:   e,
		closure:  make(map[string]types.TypeId),
		polyBase: make(map[types.TypeId]types.TypeId),
	}
}

// RecordEvent appends ev to this frame's effect log. It returns nothing;
// callers tag a CallsType with a CallId from NextCallId beforehand.
func (e *Environment) RecordEvent(ev types.Event) {
	e.events = append(e.events, ev)
}

// Events returns this frame's recorded effect log in recording order.
func (e *Environment) Events() []types.Event {
	return e.events
}

// NextCallId allocates the next CallId in this frame, used to tag a
// CallsType event before it is recorded.
func (e *Environment) NextCallId() types.CallId {
	id := types.CallId(e.callCount)
	e.callCount++
	return id
}

// BindClosure seeds a closed-over variable's current value for this
// frame. Panics on a duplicate bind within the same frame, matching the
// teacher's Scope.setValue behavior for redeclaration.
func (e *Environment) BindClosure(name string, t types.TypeId) {
	if _, ok := e.closure[name]; ok {
		panic(fmt.Sprintf("facts: %q already bound in this frame", name))
	}
	e.closure[name] = t
}

// LookupClosure walks from e up through Parent frames for name's current
// value, the same chaining Scope.GetValue performs for variable lookups.
func (e *Environment) LookupClosure(name string) (types.TypeId, bool) {
	for f := e; f != nil; f = f.Parent {
		if t, ok := f.closure[name]; ok {
			return t, true
		}
	}
	return types.ErrorType, false
}

// SetPolyBase records that, for the remainder of this frame, occurrences
// of the type parameter root should resolve to concrete. Used when a
// poly-typed callee (e.g. a captured generic function value) is invoked
// and its base must be pinned before ResolveCallable proceeds.
func (e *Environment) SetPolyBase(root, concrete types.TypeId) {
	e.polyBase[root] = concrete
}

// GetPolyBase looks up a pinned poly-base substitution, walking to
// Parent frames the way LookupClosure does.
func (e *Environment) GetPolyBase(root types.TypeId) (types.TypeId, bool) {
	for f := e; f != nil; f = f.Parent {
		if t, ok := f.polyBase[root]; ok {
			return t, true
		}
	}
	return types.ErrorType, false
}
