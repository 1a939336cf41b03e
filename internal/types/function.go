package types

import "github.com/moznion/go-optional"

// FunctionId names one declared function signature in the store, the way
// the teacher's Checker hands out fresh TypeVarID/SymbolID values for
// each declaration it registers.
type FunctionId int

// FunctionDescriptor is the signature and behavior of one declared
// function: its parameters, return type, type parameters, and how it
// binds `this`/`new.target` when called. One descriptor backs every
// FunctionType/FunctionReferenceType value that shares the same FunctionId.
type FunctionDescriptor struct {
	Id               FunctionId
	TypeParams       []TypeParam
	Params           []FuncParam
	Rest             *RestParameter
	ReturnType       TypeId
	Behavior         Behavior
	Effects          []Event
	ClosedOver       []ClosureCapture
	TypeRestrictions []TypeId            // parallel to Params; nil entry means unrestricted
	ConstantFunction optional.Option[string]
}

// TypeParam is one declared generic parameter, e.g. the `T` in `id<T>`.
type TypeParam struct {
	Name       string
	Constraint TypeId // ErrorType when unconstrained
	Default    TypeId // ErrorType when absent
}

// FuncParam is a single fixed (non-rest) parameter. MissingValue, when
// present, is the type of the default expression substituted in when the
// call site omits this argument.
type FuncParam struct {
	Name         string
	Type         TypeId
	Optional     bool
	MissingValue optional.Option[TypeId]
}

// RestParameter is the trailing `...name: T[]` parameter, if any.
type RestParameter struct {
	Name string
	// ElementType is the element type T itself, not Array<T>;
	// synthesize.go checks each excess call-site argument against it
	// directly.
	ElementType TypeId
}

// ClosureCapture is a free variable an arrow function or closure function
// closed over at its definition site, replayed via Substitute at call
// time the same way the teacher's checker threads closed_over_variables
// through SubstituteTypeParams.
type ClosureCapture struct {
	Name string
	Type TypeId
}

// Behavior is the closed sum describing how a function's `this` and
// `new.target` are populated when it is invoked, ported from the Rust
// original's FunctionBehavior.
//
//sumtype:decl
type Behavior interface{ isBehavior() }

func (ArrowFunctionBehavior) isBehavior() {}
func (MethodBehavior) isBehavior()        {}
func (FunctionBehavior) isBehavior()      {}
func (ConstructorBehavior) isBehavior()   {}

// ArrowFunctionBehavior: `this` is lexically inherited. A `new` call on
// one is not rejected; it returns the declared return type.
type ArrowFunctionBehavior struct{}

// MethodBehavior: `this` is the receiver the call was made through.
type MethodBehavior struct {
	FreeThisId TypeId // the RootPolyType(FreeThisNature) placeholder to substitute
}

// FunctionBehavior: an ordinary `function` declaration/expression; `this`
// falls back to UseParent semantics, `new` produces a fresh instance.
type FunctionBehavior struct {
	FreeThisId TypeId
	ThisIfNew  TypeId // ErrorType if this function cannot be `new`'d
}

// ConstructorBehavior: a class constructor; always requires `new`.
type ConstructorBehavior struct {
	InstanceType TypeId
}
