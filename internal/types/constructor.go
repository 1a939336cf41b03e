package types

// Constructor is the closed sum of dependent, not-yet-reducible type
// shapes. It mirrors the Rust original's Constructor enum, trimmed to the
// two variants call resolution actually produces: a generic instantiation
// (Array<string>, Promise<number>, ...) and the open result of a call
// whose return type still mentions one of the callee's type parameters.
//
//sumtype:decl
type Constructor interface{ isConstructor() }

func (*StructureGenerics) isConstructor() {}
func (*FunctionResult) isConstructor()    {}

// StructureGenerics is a generic nominal type applied to arguments, e.g.
// Array<T> applied to string giving Array<string>.
type StructureGenerics struct {
	On        TypeId
	Arguments StructureGenericArguments
}

// StructureGenericArguments maps each of the base type's declared
// parameters to the TypeId it was instantiated with.
type StructureGenericArguments struct {
	Entries map[TypeId]TypeId
}

// Get looks up the argument bound to parameter p.
func (a StructureGenericArguments) Get(p TypeId) (TypeId, bool) {
	t, ok := a.Entries[p]
	return t, ok
}

// FunctionResult is the dependent result of a call: it names the call
// that produced it (so effect replay can find the recorded event) and
// carries the return type as it looked before substitution.
type FunctionResult struct {
	Call           CallId
	UnderlyingType TypeId
}

// CallId identifies one particular call in the order it was evaluated,
// used to correlate a FunctionResult with the CallsType event that
// produced it during effect replay.
type CallId int
