package callresolve

import "github.com/callcheck/callcheck/internal/types"

// FunctionTypeArguments is the substitution environment effect replay
// threads through Substitute: Local bindings (this call's own inferred
// type arguments) take precedence over Structure (the antecedent
// inherited from an enclosing Logical::Implies layer): local argument
// binding wins over structure argument binding.
type FunctionTypeArguments struct {
	Local     map[types.TypeId]types.TypeId
	Structure *types.StructureGenericArguments
}

func (fta FunctionTypeArguments) lookup(id types.TypeId) (types.TypeId, bool) {
	if v, ok := fta.Local[id]; ok {
		return v, true
	}
	if fta.Structure != nil {
		if v, ok := fta.Structure.Get(id); ok {
			return v, true
		}
	}
	return id, false
}

// Substitute rebuilds t through fta: a TypeId equal to a bound parameter
// is replaced outright; compound types are rebuilt with substituted
// children and interned fresh only if a child actually changed.
func Substitute(store *types.Store, id types.TypeId, fta FunctionTypeArguments) types.TypeId {
	if v, ok := fta.lookup(id); ok {
		return v
	}

	switch v := store.Get(id).(type) {
	case *types.AndType:
		a, b := Substitute(store, v.A, fta), Substitute(store, v.B, fta)
		if a == v.A && b == v.B {
			return id
		}
		return store.Register(&types.AndType{A: a, B: b})

	case *types.OrType:
		a, b := Substitute(store, v.A, fta), Substitute(store, v.B, fta)
		if a == v.A && b == v.B {
			return id
		}
		return store.Register(&types.OrType{A: a, B: b})

	case *types.ConstructorType:
		return substituteConstructor(store, id, v, fta)

	default:
		return id
	}
}

func substituteConstructor(store *types.Store, id types.TypeId, ct *types.ConstructorType, fta FunctionTypeArguments) types.TypeId {
	switch c := ct.Constructor.(type) {
	case *types.StructureGenerics:
		changed := false
		entries := make(map[types.TypeId]types.TypeId, len(c.Arguments.Entries))
		for k, v := range c.Arguments.Entries {
			nv := Substitute(store, v, fta)
			if nv != v {
				changed = true
			}
			entries[k] = nv
		}
		if !changed {
			return id
		}
		return store.Register(&types.ConstructorType{
			Constructor: &types.StructureGenerics{On: c.On, Arguments: types.StructureGenericArguments{Entries: entries}},
		})

	case *types.FunctionResult:
		u := Substitute(store, c.UnderlyingType, fta)
		if u == c.UnderlyingType {
			return id
		}
		return store.Register(&types.ConstructorType{Constructor: &types.FunctionResult{Call: c.Call, UnderlyingType: u}})

	default:
		return id
	}
}

// ReplayResult carries the substituted value of the first Returns event
// reached, if any; replay stops at that event, since it signals an early
// return.
type ReplayResult struct {
	EarlyReturn *types.TypeId
}

// ReplayEffects is C7: replay a function's recorded effect log into the
// caller's environment, substituting every embedded TypeId through fta.
// Grounded on original_source's apply_event, generalized to the opaque
// PropertyRead/PropertyWrite/Declaration/Returns variants beyond the
// CallsType case alone.
func ReplayEffects(ctx *CallContext, effects []types.Event, fta FunctionTypeArguments) ReplayResult {
	var result ReplayResult

	for _, ev := range effects {
		switch e := ev.(type) {
		case *types.CallsType:
			replayCall(ctx, e, fta)

		case *types.PropertyRead:
			ctx.Env.RecordEvent(&types.PropertyRead{
				On:   Substitute(ctx.Store, e.On, fta),
				Type: Substitute(ctx.Store, e.Type, fta),
				At:   e.At,
			})

		case *types.PropertyWrite:
			ctx.Env.RecordEvent(&types.PropertyWrite{
				On:   Substitute(ctx.Store, e.On, fta),
				Type: Substitute(ctx.Store, e.Type, fta),
				At:   e.At,
			})

		case *types.Declaration:
			ctx.Env.RecordEvent(&types.Declaration{
				Type: Substitute(ctx.Store, e.Type, fta),
				At:   e.At,
			})

		case *types.Returns:
			t := Substitute(ctx.Store, e.Type, fta)
			result.EarlyReturn = &t
			return result
		}
	}

	return result
}

// replayCall re-issues a recorded nested call against its substituted
// callee and arguments rather than trusting the recorded ReturnedType
// verbatim, so a generic callee invoked at a different instantiation
// each time still gets the right answer, which is the whole reason
// effect replay exists rather than trusting a cached return type.
func replayCall(ctx *CallContext, e *types.CallsType, fta FunctionTypeArguments) {
	callee := Substitute(ctx.Store, e.Callee, fta)
	args := make([]SynthesisedArgument, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = SynthesisedArgument{Type: Substitute(ctx.Store, a, fta)}
	}

	result, errs := CallType(ctx, callee, args, CallingInput{CallConstant: true})
	returned := e.ReturnedType
	if len(errs) == 0 {
		returned = result.ReturnedType
	}

	ctx.Env.RecordEvent(&types.CallsType{
		Id:           e.Id,
		Callee:       callee,
		Arguments:    argumentTypes(args),
		CalledWith:   e.CalledWith,
		ReturnedType: returned,
		At:           e.At,
	})
}
