package callresolve

import (
	"github.com/moznion/go-optional"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/types"
)

// callConcrete is the inner half of C6: recursion guard,
// constant-function dispatch, `this`/`new.target` binding, argument
// synthesis (C5), restriction enforcement, effect replay (C7), and
// result assembly. Grounded on original_source's FunctionType::call.
func callConcrete(ctx *CallContext, fd *types.FunctionDescriptor, this types.ThisValue, args []SynthesisedArgument, input CallingInput, parentArgs *types.StructureGenericArguments) (FunctionCallResult, []diagnostic.Error) {
	if ctx.Stack.InCycle(fd.Id) {
		id := fd.Id
		return FunctionCallResult{ReturnedType: types.ErrorType, Called: &id}, nil
	}
	leave := ctx.Stack.Enter(fd.Id)
	defer leave()

	sc := NewSeedingContext()

	if restrictionErrs := seedCallSiteTypeArguments(ctx, fd, input, sc); len(restrictionErrs) > 0 {
		return FunctionCallResult{ReturnedType: types.ErrorType}, restrictionErrs
	}

	if fd.ConstantFunction.IsSome() && input.CallConstant {
		name := fd.ConstantFunction.Unwrap()
		if result, errs, handled := dispatchConstant(ctx, fd, name, this, args, input); handled {
			return result, errs
		}
	}

	var newErrs []diagnostic.Error
	instanceType := bindThisAndNewTarget(ctx, fd, this, input, sc, &newErrs)
	if len(newErrs) > 0 {
		return FunctionCallResult{ReturnedType: types.ErrorType}, newErrs
	}

	argErrs := SynthesizeArguments(ctx.Store, fd, args, sc, true)
	if len(argErrs) > 0 {
		return FunctionCallResult{ReturnedType: types.ErrorType}, argErrs
	}

	if restrictionErrs := enforceRestrictions(ctx, sc); len(restrictionErrs) > 0 {
		return FunctionCallResult{ReturnedType: types.ErrorType}, restrictionErrs
	}

	fta := FunctionTypeArguments{Local: sc.TypeArguments, Structure: parentArgs}
	replay := ReplayEffects(ctx, fd.Effects, fta)

	if len(fd.ClosedOver) > 0 {
		closureID := ctx.Env.NextCallId()
		for _, capture := range fd.ClosedOver {
			current, ok := ctx.Env.LookupClosure(capture.Name)
			if !ok {
				current = capture.Type
			}
			substituted := Substitute(ctx.Store, current, fta)
			ctx.Env.BindClosure(closureKey(closureID, capture.Name), substituted)
		}
	}

	returnType := resultFor(ctx, fd, input, instanceType, replay, fta)

	id := fd.Id
	return FunctionCallResult{ReturnedType: returnType, Called: &id}, nil
}

// seedCallSiteTypeArguments implements the call-site explicit
// type-argument restriction feature recovered from original_source's
// synthesise_call_site_type_arguments: each explicit `f<string>(x)`
// argument is checked against its type parameter's EagerFixed
// constraint before argument synthesis, and recorded as a restriction
// consulted after inference.
func seedCallSiteTypeArguments(ctx *CallContext, fd *types.FunctionDescriptor, input CallingInput, sc *SeedingContext) []diagnostic.Error {
	if len(input.CallSiteTypeArgs) == 0 {
		return nil
	}
	var errs []diagnostic.Error
	for i, tp := range fd.TypeParams {
		if i >= len(input.CallSiteTypeArgs) {
			break
		}
		given := input.CallSiteTypeArgs[i]
		if tp.Constraint != types.ErrorType {
			if !isSubtype(ctx.Store, sc, tp.Constraint, given) {
				errs = append(errs, diagnostic.NewInvalidArgumentTypeError(tp.Name, tp.Constraint, given, input.CallSite))
				continue
			}
		}
		sc.TypeRestrictions[paramRootID(ctx, fd, tp.Name)] = given
	}
	return errs
}

// paramRootID finds the RootPolyType TypeId a type parameter's name
// resolves to among the function's parameter types; used only to key
// the restriction map, since TypeParam itself carries no TypeId.
func paramRootID(ctx *CallContext, fd *types.FunctionDescriptor, name string) types.TypeId {
	for _, p := range fd.Params {
		if poly, ok := ctx.Store.Get(p.Type).(*types.RootPolyType); ok {
			if g, ok := poly.Nature.(*types.GenericNature); ok && g.Name == name {
				return p.Type
			}
			if pn, ok := poly.Nature.(*types.ParameterNature); ok && pn.Name == name {
				return p.Type
			}
		}
	}
	return types.ErrorType
}

// dispatchConstant implements the constant-function dispatch path: the
// always-run set fires regardless of dependence; everything else only
// runs when no argument is dependent, otherwise the call re-enters this
// function with CallConstant=false and its result is wrapped as a
// dependent FunctionResult.
func dispatchConstant(ctx *CallContext, fd *types.FunctionDescriptor, name string, this types.ThisValue, args []SynthesisedArgument, input CallingInput) (FunctionCallResult, []diagnostic.Error, bool) {
	hasDependentArg := false
	for _, a := range args {
		if isDependentType(ctx.Store, a.Type) {
			hasDependentArg = true
			break
		}
	}

	if hasDependentArg && !AlwaysRun[name] {
		deferredInput := input
		deferredInput.CallConstant = false
		inner, errs := callConcrete(ctx, fd, this, args, deferredInput, nil)
		if len(errs) > 0 {
			return inner, errs, true
		}

		callID := ctx.Env.NextCallId()
		boundRef := ctx.Store.Register(&types.FunctionType{Function: fd.Id, This: this})
		fr := &types.FunctionResult{Call: callID, UnderlyingType: inner.ReturnedType}
		wrapped := ctx.Store.Register(&types.ConstructorType{Constructor: fr})
		ctx.Env.RecordEvent(&types.CallsType{
			Id:                 callID,
			Callee:             boundRef,
			Arguments:          argumentTypes(args),
			CalledWith:         calledWithNewEvent(input),
			ReturnedType:       wrapped,
			ReflectsDependency: optional.Some(wrapped),
			At:                 types.Timing(callID),
		})
		return FunctionCallResult{ReturnedType: wrapped, Called: &fd.Id}, nil, true
	}

	reg := ctx.Registry
	if reg == nil {
		return FunctionCallResult{}, nil, false
	}
	outcome, err := reg.Dispatch(name, ctx.Store, ctx.Env, this, input.CallSiteTypeArgs, args)
	if err != nil {
		if err == BadCall {
			return FunctionCallResult{}, nil, false
		}
		return FunctionCallResult{ReturnedType: types.ErrorType}, []diagnostic.Error{
			diagnostic.NewNoLogicForIdentifierError(name, input.CallSite),
		}, true
	}

	switch v := outcome.(type) {
	case IntrinsicValue:
		special := NoSpecial
		if name == "compile_type_to_object" {
			special = CompileOut
		}
		return FunctionCallResult{ReturnedType: v.Type, Called: &fd.Id, Special: special}, nil, true
	case IntrinsicDiagnostic:
		return FunctionCallResult{
			ReturnedType: types.UndefinedType,
			Called:       &fd.Id,
			Warnings:     []string{v.Message},
			Special:      Marker,
		}, nil, true
	default:
		return FunctionCallResult{}, nil, false
	}
}
