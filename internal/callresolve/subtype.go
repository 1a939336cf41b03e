package callresolve

import "github.com/callcheck/callcheck/internal/types"

// SeedingContext accumulates inferred type-argument bindings while C5
// walks a call's arguments, acting as a sink for fresh bindings. Keyed
// by the TypeId of the RootPolyType(Parameter) node a generic
// parameter's declared type resolves to.
type SeedingContext struct {
	TypeArguments    map[types.TypeId]types.TypeId
	TypeRestrictions map[types.TypeId]types.TypeId
}

// NewSeedingContext returns an empty context ready for C5 to populate.
func NewSeedingContext() *SeedingContext {
	return &SeedingContext{
		TypeArguments:    make(map[types.TypeId]types.TypeId),
		TypeRestrictions: make(map[types.TypeId]types.TypeId),
	}
}

// Seed directly binds param to value without going through isSubtype,
// used for missing-value defaults and rest-parameter positions that
// skip checking.
func (sc *SeedingContext) Seed(param, value types.TypeId) {
	sc.TypeArguments[param] = value
}

// Resolve returns the concrete binding for id if one was seeded, else id
// itself unchanged.
func (sc *SeedingContext) Resolve(id types.TypeId) types.TypeId {
	if v, ok := sc.TypeArguments[id]; ok {
		return v
	}
	return id
}

// isSubtype runs the subtyping check argument synthesis needs: param
// type ⊒ arg type, with the seeding context as a sink for fresh
// bindings. A free type-parameter root on the parameter side always
// succeeds and binds;
// otherwise this performs the narrow structural comparison this engine's
// scope requires (exact TypeId match, ERROR_TYPE absorption already
// handled by the caller, Array<T> element-wise recursion, and literal
// value equality) — full subtyping over unions/objects/structural
// shapes belongs to a checker's unify step, out of scope here.
func isSubtype(store *types.Store, sc *SeedingContext, param, arg types.TypeId) bool {
	if param == arg {
		return true
	}

	if poly, ok := store.Get(param).(*types.RootPolyType); ok {
		if _, isParam := poly.Nature.(*types.ParameterNature); isParam {
			sc.Seed(param, arg)
			return true
		}
	}

	paramType := store.Get(param)
	argType := store.Get(arg)

	pCtor, pIsArray := arrayElementType(paramType)
	aCtor, aIsArray := arrayElementType(argType)
	if pIsArray && aIsArray {
		return isSubtype(store, sc, pCtor, aCtor)
	}

	return types.Equals(paramType, argType)
}

// arrayElementType pattern-matches t as StructureGenerics{on: ARRAY,
// arguments: {T: elem}} and returns elem.
func arrayElementType(t types.Type) (types.TypeId, bool) {
	ct, ok := t.(*types.ConstructorType)
	if !ok {
		return 0, false
	}
	sg, ok := ct.Constructor.(*types.StructureGenerics)
	if !ok || sg.On != types.ArrayType {
		return 0, false
	}
	elem, ok := sg.Arguments.Get(types.TType)
	return elem, ok
}
