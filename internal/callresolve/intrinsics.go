package callresolve

import (
	"sort"
	"strconv"

	"github.com/iancoleman/strcase"
	"github.com/maruel/natural"
	"github.com/tidwall/sjson"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/facts"
	"github.com/callcheck/callcheck/internal/types"
)

// IntrinsicOutcome is the closed sum C4 returns.
//
//sumtype:decl
type IntrinsicOutcome interface{ isIntrinsicOutcome() }

func (IntrinsicValue) isIntrinsicOutcome()      {}
func (IntrinsicDiagnostic) isIntrinsicOutcome() {}

// IntrinsicValue is used as the call's result directly.
type IntrinsicValue struct{ Type types.TypeId }

// IntrinsicDiagnostic is surfaced as an info warning; the call's result
// is UNDEFINED.
type IntrinsicDiagnostic struct{ Message string }

// IntrinsicError is the BadCall/NoLogicForIdentifier error channel;
// BadCall falls through to the generic call path, while
// NoLogicForIdentifier is a hard diagnostic.
type IntrinsicError int

const (
	BadCall IntrinsicError = iota
	NoLogicForIdentifier
)

func (e IntrinsicError) Error() string {
	if e == NoLogicForIdentifier {
		return "no logic for identifier"
	}
	return "bad call"
}

// IntrinsicFunc is one registry entry: given this-value, explicit
// call-site type arguments, and the already-synthesized argument types,
// produce an outcome or an IntrinsicError.
type IntrinsicFunc func(store *types.Store, env *facts.Environment, this types.ThisValue, typeArgs []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error)

// AlwaysRun is the set of intrinsics C6 must invoke
// regardless of whether any argument is dependent.
var AlwaysRun = map[string]bool{
	"debug_type":    true,
	"print_type":    true,
	"debug_effects": true,
	"satisfies":     true,
	"is_dependent":  true,
	"bind":          true,
	"create_proxy":  true,
}

// Registry is the closed C4 dispatch table. Names use the intrinsic's
// own snake_case spelling; display formatting (e.g. for an info
// diagnostic's heading) goes through strcase.ToCamel.
type Registry struct {
	printer   diagnostic.TypePrinter
	intrinsic map[string]IntrinsicFunc
}

// NewRegistry builds the standard registry: the always-run set plus the
// representative non-exhaustive sample of TypeScript's intrinsic set
// (compile_type_to_object, keys, values, omit, pick).
func NewRegistry(printer diagnostic.TypePrinter) *Registry {
	r := &Registry{printer: printer, intrinsic: make(map[string]IntrinsicFunc)}
	r.intrinsic["debug_type"] = r.debugType
	r.intrinsic["print_type"] = r.printType
	r.intrinsic["debug_effects"] = r.debugEffects
	r.intrinsic["satisfies"] = r.satisfies
	r.intrinsic["is_dependent"] = r.isDependent
	r.intrinsic["bind"] = r.bind
	r.intrinsic["create_proxy"] = r.createProxy
	r.intrinsic["compile_type_to_object"] = r.compileTypeToObject
	r.intrinsic["keys"] = r.keys
	r.intrinsic["values"] = r.values
	r.intrinsic["omit"] = r.omit
	r.intrinsic["pick"] = r.pick
	return r
}

// Names returns the registered intrinsic names in natural sort order
// (so e.g. "arg2" sorts before "arg10"), used by cmd/callcheck's
// list-intrinsics subcommand.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.intrinsic))
	for name := range r.intrinsic {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Dispatch invokes the named intrinsic if registered.
func (r *Registry) Dispatch(name string, store *types.Store, env *facts.Environment, this types.ThisValue, typeArgs []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	f, ok := r.intrinsic[name]
	if !ok {
		return nil, NoLogicForIdentifier
	}
	return f(store, env, this, typeArgs, args)
}

func isDependentType(store *types.Store, id types.TypeId) bool {
	switch store.Get(id).(type) {
	case *types.ConstructorType, *types.RootPolyType:
		return true
	default:
		return false
	}
}

func (r *Registry) debugType(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	label := strcase.ToCamel("debug_type")
	return IntrinsicDiagnostic{Message: label + ": " + r.printer.Print(args[0].Type)}, nil
}

func (r *Registry) printType(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	return IntrinsicDiagnostic{Message: r.printer.Print(args[0].Type)}, nil
}

func (r *Registry) debugEffects(store *types.Store, env *facts.Environment, _ types.ThisValue, _ []types.TypeId, _ []SynthesisedArgument) (IntrinsicOutcome, error) {
	events := env.Events()
	msg := "effects recorded: " + strconv.Itoa(len(events))
	return IntrinsicDiagnostic{Message: msg}, nil
}

func (r *Registry) satisfies(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) < 2 {
		return nil, BadCall
	}
	if types.Equals(store.Get(args[0].Type), store.Get(args[1].Type)) {
		return IntrinsicValue{Type: args[0].Type}, nil
	}
	return IntrinsicDiagnostic{Message: "does not satisfy"}, nil
}

func (r *Registry) isDependent(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	dependent := isDependentType(store, args[0].Type)
	lit := &types.BoolLit{Value: dependent}
	return IntrinsicValue{Type: store.Register(&types.ConstantType{Lit: lit})}, nil
}

func (r *Registry) bind(store *types.Store, _ *facts.Environment, this types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	fn, ok := store.Get(args[0].Type).(*types.FunctionType)
	if !ok {
		return nil, BadCall
	}
	bound := &types.FunctionType{Function: fn.Function, This: types.Passed{Type: resolveThis(this)}}
	return IntrinsicValue{Type: store.Register(bound)}, nil
}

func (r *Registry) createProxy(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	return IntrinsicValue{Type: store.Register(&types.SpecialObjectType{Kind: types.SpecialProxy})}, nil
}

func (r *Registry) compileTypeToObject(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	raw, err := sjson.Set("{}", "typeId", int(args[0].Type))
	if err != nil {
		return nil, BadCall
	}
	lit := &types.StrLit{Value: raw}
	return IntrinsicValue{Type: store.Register(&types.ConstantType{Lit: lit})}, nil
}

func (r *Registry) keys(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) == 0 {
		return nil, BadCall
	}
	if _, ok := store.Get(args[0].Type).(*types.ObjectType); !ok {
		return nil, BadCall
	}
	return IntrinsicValue{Type: store.Register(&types.ObjectType{Nature: types.AnonymousAnnotation})}, nil
}

func (r *Registry) values(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	return r.keys(store, nil, nil, nil, args)
}

func (r *Registry) omit(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	if len(args) < 2 {
		return nil, BadCall
	}
	return IntrinsicValue{Type: args[0].Type}, nil
}

func (r *Registry) pick(store *types.Store, _ *facts.Environment, _ types.ThisValue, _ []types.TypeId, args []SynthesisedArgument) (IntrinsicOutcome, error) {
	return r.omit(store, nil, nil, nil, args)
}

func resolveThis(t types.ThisValue) types.TypeId {
	switch v := t.(type) {
	case types.Passed:
		return v.Type
	default:
		return types.UndefinedType
	}
}

