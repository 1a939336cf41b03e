package callresolve

import (
	"strconv"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/sourcepos"
	"github.com/callcheck/callcheck/internal/types"
)

// FunctionRef is the payload a resolved Logical tree bottoms out at: a
// concrete FunctionId together with the `this` it should be invoked
// with, matching the `Logical<(FunctionId, ThisValue)>` shape a callee
// resolves to.
type FunctionRef struct {
	Function types.FunctionId
	This     types.ThisValue
}

// ResolveCallable is C3: from a TypeId, derive either nothing (not
// callable), a specific diagnostic (a generic alias or union case this
// iteration declines to support), or a Logical<FunctionRef> tree.
// Grounded on the teacher's callee-type switch in
// internal/checker/infer_expr.go (handleFuncCall) and, for the cases the
// teacher's snapshot never reached, original_source's
// get_logical_callable_from_type.
func ResolveCallable(store *types.Store, id types.TypeId, this types.ThisValue, span sourcepos.Span) (types.Logical[FunctionRef], diagnostic.Error) {
	t := store.Get(id)
	switch v := t.(type) {
	case *types.FunctionType:
		return types.Pure[FunctionRef]{Value: FunctionRef{Function: v.Function, This: v.This}}, nil
	case *types.FunctionReferenceType:
		return types.Pure[FunctionRef]{Value: FunctionRef{Function: v.Function, This: v.This}}, nil

	case *types.OrType:
		left, lErr := ResolveCallable(store, v.A, this, span)
		if lErr != nil {
			return nil, lErr
		}
		right, rErr := ResolveCallable(store, v.B, this, span)
		if rErr != nil {
			return nil, rErr
		}
		if left == nil || right == nil {
			// A non-callable side collapses the whole union.
			return nil, nil
		}
		return types.Or[FunctionRef]{Left: left, Right: right}, nil

	case *types.ConstructorType:
		switch c := v.Constructor.(type) {
		case *types.StructureGenerics:
			inner, err := ResolveCallable(store, c.On, this, span)
			if err != nil {
				return nil, err
			}
			if inner == nil {
				return nil, nil
			}
			return types.Implies[FunctionRef]{
				Value:      inner,
				Antecedent: antecedentOf(c.Arguments),
			}, nil
		default:
			// FunctionResult and any other Constructor shape: unsupported
			// in this iteration, callers treat it as not callable.
			return nil, nil
		}

	case *types.AliasType:
		if len(v.Parameters) > 0 {
			return nil, diagnostic.NewUnsupportedGenericAliasError(id, span)
		}
		return ResolveCallable(store, v.To, this, span)

	case *types.NamedRootedType, *types.ConstantType, *types.ObjectType:
		// A named rooted type, a constant, or a plain object can never be
		// called directly. Grounded on original_source's
		// get_logical_callable_from_type, which matches these three
		// shapes to None outright.
		return nil, nil

	default:
		// AndType, RootPolyType, SpecialObjectType: unsupported in this
		// iteration, treated as not callable.
		return nil, nil
	}
}

func antecedentOf(args types.StructureGenericArguments) types.SpecializeCondition {
	subs := make(map[string]types.TypeId, len(args.Entries))
	for k, v := range args.Entries {
		subs[strconv.Itoa(int(k))] = v
	}
	return types.SpecializeCondition{Substitutions: subs}
}
