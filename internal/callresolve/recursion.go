package callresolve

import "github.com/callcheck/callcheck/internal/types"

// RecursionGuard tracks which FunctionIds are currently being called on
// the active stack, grounded on original_source's
// `behavior.in_recursive_cycle` check consulted at the top of
// FunctionType::call. It is per check-run, not per Environment frame,
// since recursion must be caught across nested Environment.Child calls.
type RecursionGuard struct {
	active map[types.FunctionId]bool
}

// NewRecursionGuard returns an empty guard for a fresh top-level CallType
// invocation.
func NewRecursionGuard() *RecursionGuard {
	return &RecursionGuard{active: make(map[types.FunctionId]bool)}
}

// InCycle reports whether id is already on the active call stack.
func (g *RecursionGuard) InCycle(id types.FunctionId) bool {
	return g.active[id]
}

// Enter marks id as active; callers must defer the returned func to
// unmark it once the call returns, by value or by error.
func (g *RecursionGuard) Enter(id types.FunctionId) (leave func()) {
	g.active[id] = true
	return func() { delete(g.active, id) }
}
