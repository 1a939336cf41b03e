package callresolve

import (
	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/types"
)

// SynthesizeArguments is C5: walk a callee's declared parameters against
// the arguments actually supplied, filling sc.TypeArguments and
// returning any diagnostics accrued along the way. checkParameters is
// false only when the caller already trusts the arguments (re-entering
// after a skipped constant-function dispatch never needs this), matching
// the teacher's "trusting" mode for an already-validated callable.
func SynthesizeArguments(store *types.Store, fd *types.FunctionDescriptor, args []SynthesisedArgument, sc *SeedingContext, checkParameters bool) []diagnostic.Error {
	var errs []diagnostic.Error

	for i, p := range fd.Params {
		if i < len(args) {
			arg := args[i]
			if checkParameters {
				if !isSubtype(store, sc, p.Type, arg.Type) {
					errs = append(errs, diagnostic.NewInvalidArgumentTypeError(p.Name, p.Type, arg.Type, arg.Position))
				}
			} else {
				sc.Seed(p.Type, arg.Type)
			}
			continue
		}

		if p.MissingValue.IsSome() {
			sc.Seed(p.Type, p.MissingValue.Unwrap())
			continue
		}

		if p.Optional {
			sc.Seed(p.Type, types.UndefinedType)
			continue
		}

		errs = append(errs, diagnostic.NewMissingArgumentError(p.Name, p.Type, diagnostic.DefaultSpan))
	}

	if len(args) > len(fd.Params) {
		excess := args[len(fd.Params):]
		if fd.Rest != nil {
			elemType := fd.Rest.ElementType
			for _, arg := range excess {
				if checkParameters {
					if !isSubtype(store, sc, elemType, arg.Type) {
						errs = append(errs, diagnostic.NewInvalidArgumentTypeError(fd.Rest.Name, elemType, arg.Type, arg.Position))
					}
				} else {
					sc.Seed(elemType, arg.Type)
				}
			}
		} else {
			first := excess[0].Position
			last := excess[len(excess)-1].Position
			errs = append(errs, diagnostic.NewExcessArgumentsError(len(fd.Params), len(args), first, last))
		}
	}

	return errs
}
