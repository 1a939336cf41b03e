package callresolve

import (
	"github.com/moznion/go-optional"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/types"
)

// bindThisAndNewTarget seeds `this` and NEW_TARGET_ARG, returning the
// instance TypeId a `new` call under Function/Constructor behavior will
// need at result assembly time (types.ErrorType when not applicable).
func bindThisAndNewTarget(ctx *CallContext, fd *types.FunctionDescriptor, this types.ThisValue, input CallingInput, sc *SeedingContext, errs *[]diagnostic.Error) types.TypeId {
	instanceType := types.ErrorType

	switch b := fd.Behavior.(type) {
	case types.ArrowFunctionBehavior:
		// this is lexically inherited; nothing to seed here since an
		// arrow function's body never references a FreeThis placeholder.

	case types.MethodBehavior:
		passed, ok := this.(types.Passed)
		if !ok {
			panic("callresolve: method called without a receiver")
		}
		sc.Seed(b.FreeThisId, passed.Type)

	case types.FunctionBehavior:
		if input.CalledWithNew == New {
			instanceType = ctx.Store.Register(&types.ObjectType{Nature: types.RealDeal})
			sc.Seed(b.FreeThisId, instanceType)
		} else {
			sc.Seed(b.FreeThisId, resolveThisValue(ctx, this))
		}

	case types.ConstructorBehavior:
		if input.CalledWithNew != New {
			*errs = append(*errs, diagnostic.NewNeedsNewKeywordError(input.CallSite))
			return types.ErrorType
		}
		instanceType = ctx.Store.Register(&types.ObjectType{Nature: types.RealDeal})
		sc.Seed(b.InstanceType, instanceType)
	}

	if input.CalledWithNew == New {
		// NEW_TARGET_ARG is the callee that was `new`'d, not the freshly
		// allocated instance -- a derived class's constructor sees its
		// own reference here even while running through a base
		// constructor's call frame.
		sc.Seed(types.NewTargetArg, input.NewTargetOn)
	} else {
		sc.Seed(types.NewTargetArg, types.UndefinedType)
	}

	return instanceType
}

func resolveThisValue(ctx *CallContext, this types.ThisValue) types.TypeId {
	switch v := this.(type) {
	case types.Passed:
		return v.Type
	case types.UseParent:
		// This engine does not track a distinct "enclosing this" chain
		// separate from closure capture; UseParent always falls back to
		// its own Fallback (globalThis/undefined per the caller's setup).
		return v.Resolve(optional.None[types.TypeId]())
	default:
		return types.UndefinedType
	}
}
