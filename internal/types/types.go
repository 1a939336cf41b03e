// Package types is the interned type store together with the closed sum
// of type descriptors it holds. It is modeled on the teacher's
// internal/type_system package, generalized so that every variant is
// addressed by an opaque TypeId rather than held by direct pointer: call
// resolution builds cyclic graphs (a Constructor::FunctionResult
// referring back to its own call) that a pointer tree cannot express
// without unsafe tricks.
package types

import "math/big"

// TypeId is an opaque handle into a Store. It is stable for the life of a
// check run; the descriptor it addresses is never mutated once inserted.
type TypeId int

// Reserved sentinels, always present in a freshly constructed Store.
const (
	ErrorType TypeId = iota
	UndefinedType
	NullType
	ArrayType
	// TType is the array element parameter ("T" in Array<T>), used to
	// pattern-match rest-parameter element types in C5.
	TType
	NewTargetArg

	firstUserType
)

//sumtype:decl
type Type interface {
	isType()
}

func (*ConstantType) isType()        {}
func (*ObjectType) isType()          {}
func (*NamedRootedType) isType()     {}
func (*AliasType) isType()           {}
func (*FunctionType) isType()        {}
func (*FunctionReferenceType) isType() {}
func (*AndType) isType()             {}
func (*OrType) isType()              {}
func (*RootPolyType) isType()        {}
func (*ConstructorType) isType()     {}
func (*SpecialObjectType) isType()   {}

// Lit is the closed sum of literal values a ConstantType may hold.
//
//sumtype:decl
type Lit interface{ isLit() }

func (*BoolLit) isLit()      {}
func (*NumLit) isLit()       {}
func (*StrLit) isLit()       {}
func (*BigIntLit) isLit()    {}
func (*NullLit) isLit()      {}
func (*UndefinedLit) isLit() {}

type (
	BoolLit      struct{ Value bool }
	NumLit       struct{ Value float64 }
	StrLit       struct{ Value string }
	BigIntLit    struct{ Value big.Int }
	NullLit      struct{}
	UndefinedLit struct{}
)

// ConstantType is a single literal value type, e.g. the type of `42`.
type ConstantType struct {
	Lit Lit
}

// ObjectNature distinguishes a real runtime object from one that only
// exists as an annotation (e.g. the shape an interface declares).
type ObjectNature int

const (
	RealDeal ObjectNature = iota
	AnonymousAnnotation
)

type ObjectType struct {
	Nature ObjectNature
}

// NamedRootedType is a declared nominal type (a class or interface name).
type NamedRootedType struct {
	Name string
}

// AliasType is `type Foo<P> = To`. A non-empty Parameters marks a generic
// alias, which ResolveCallable reports rather than expands (see
// internal/callresolve).
type AliasType struct {
	To         TypeId
	Parameters []TypeId // empty for a non-generic alias
}

// FunctionType is the *value* that a callee expression can carry: a bound
// reference to a FunctionDescriptor plus the `this` it was bound with.
// This is distinct from FunctionDescriptor (the per-FunctionId shape
// below) the same way a Rust closure value is distinct from its fn item.
type FunctionType struct {
	Function FunctionId
	This     ThisValue
}

// FunctionReferenceType is an unbound reference to a function (e.g. a
// function declaration's own name before any `this` is attached).
type FunctionReferenceType struct {
	Function FunctionId
	This     ThisValue
}

type AndType struct{ A, B TypeId }
type OrType struct{ A, B TypeId }

// PolyNature distinguishes the three root-level open type variants.
//
//sumtype:decl
type PolyNature interface{ isPolyNature() }

func (*GenericNature) isPolyNature()  {}
func (*ParameterNature) isPolyNature() {}
func (*FreeThisNature) isPolyNature() {}

// GenericNature is a declared type parameter; EagerFixed is the
// constraint call-site type arguments are checked against.
type GenericNature struct {
	Name       string
	EagerFixed TypeId
}

// ParameterNature is a synthesized inference variable (e.g. for `id<T>`).
type ParameterNature struct {
	Name string
}

// FreeThisNature is the `this` parameter of a function before it is bound.
type FreeThisNature struct{}

type RootPolyType struct {
	Nature PolyNature
}

// ConstructorType wraps a dependent, not-yet-reducible value: the result
// of a call whose return type still refers to a type parameter of the
// callee, kept open until effect replay substitutes concrete arguments.
type ConstructorType struct {
	Constructor Constructor
}

// SpecialObjectKind enumerates host intrinsics (Promise, RegExp, ...).
type SpecialObjectKind int

const (
	SpecialPromise SpecialObjectKind = iota
	SpecialRegExp
	SpecialProxy
)

type SpecialObjectType struct {
	Kind SpecialObjectKind
}
