// Package diagnostic is the closed sum of error conditions the call
// resolution engine can report, styled after the teacher's
// internal/checker.Error: a single interface implemented by one struct
// per condition, each carrying just the fields its Message needs.
package diagnostic

import (
	"strconv"

	"github.com/callcheck/callcheck/internal/sourcepos"
	"github.com/callcheck/callcheck/internal/types"
)

// DefaultSpan is used by diagnostics that cannot be pinned to a specific
// source location, e.g. a cyclic-recursion error discovered deep in
// effect replay rather than at the original call's own span.
var DefaultSpan = sourcepos.NullSpan

type Error interface {
	isError()
	Span() sourcepos.Span
	Message() string
}

func (e NotCallableError) isError()                   {}
func (e MissingArgumentError) isError()                {}
func (e ExcessArgumentsError) isError()                {}
func (e InvalidArgumentTypeError) isError()            {}
func (e ReferenceRestrictionError) isError()           {}
func (e CyclicRecursionError) isError()                {}
func (e NoLogicForIdentifierError) isError()           {}
func (e NeedsNewKeywordError) isError()                {}
func (e UnsupportedUnionCallableError) isError()       {}
func (e UnsupportedGenericAliasError) isError()        {}

// NotCallableError: the callee's type has no call or construct signature.
type NotCallableError struct {
	Callee types.TypeId
	span   sourcepos.Span
}

func NewNotCallableError(callee types.TypeId, span sourcepos.Span) NotCallableError {
	return NotCallableError{Callee: callee, span: span}
}

func (e NotCallableError) Span() sourcepos.Span { return e.span }
func (e NotCallableError) Message() string {
	return "callee is not callable"
}

// MissingArgumentError: a required parameter had no corresponding
// argument at the call site.
type MissingArgumentError struct {
	ParamName string
	ParamType types.TypeId
	span      sourcepos.Span
}

func NewMissingArgumentError(name string, t types.TypeId, span sourcepos.Span) MissingArgumentError {
	return MissingArgumentError{ParamName: name, ParamType: t, span: span}
}

func (e MissingArgumentError) Span() sourcepos.Span { return e.span }
func (e MissingArgumentError) Message() string {
	return "missing argument for parameter " + strconv.Quote(e.ParamName)
}

// ExcessArgumentsError: more arguments were supplied than the callee
// accepts and it has no rest parameter to absorb the remainder. Span
// unions the first and last excess argument's positions.
type ExcessArgumentsError struct {
	Expected int
	Got      int
	span     sourcepos.Span
}

func NewExcessArgumentsError(expected, got int, first, last sourcepos.Span) ExcessArgumentsError {
	return ExcessArgumentsError{Expected: expected, Got: got, span: first.Union(last)}
}

func (e ExcessArgumentsError) Span() sourcepos.Span { return e.span }
func (e ExcessArgumentsError) Message() string {
	return "expected " + strconv.Itoa(e.Expected) + " argument(s), got " + strconv.Itoa(e.Got)
}

// InvalidArgumentTypeError: an argument's type is not a subtype of its
// parameter's (possibly restricted) type. Restriction is non-nil when
// the failure came from a call-site type-argument restriction rather
// than the parameter's own declared type, mirroring
// `FunctionCallingError::InvalidArgumentType`'s `restriction: Option<...>`
// field in original_source.
type InvalidArgumentTypeError struct {
	ParamName   string
	Expected    types.TypeId
	Got         types.TypeId
	Restriction *types.TypeId
	span        sourcepos.Span
}

func NewInvalidArgumentTypeError(name string, expected, got types.TypeId, span sourcepos.Span) InvalidArgumentTypeError {
	return InvalidArgumentTypeError{ParamName: name, Expected: expected, Got: got, span: span}
}

// NewRestrictionInvalidArgumentTypeError builds the restriction-flagged
// form of InvalidArgumentTypeError, used when a call-site type-argument
// restriction rejects what was inferred for a parameter.
func NewRestrictionInvalidArgumentTypeError(name string, restriction, got types.TypeId, span sourcepos.Span) InvalidArgumentTypeError {
	return InvalidArgumentTypeError{ParamName: name, Expected: restriction, Got: got, Restriction: &restriction, span: span}
}

func (e InvalidArgumentTypeError) Span() sourcepos.Span { return e.span }
func (e InvalidArgumentTypeError) Message() string {
	if e.Restriction != nil {
		return "argument does not match the reference restriction recorded for parameter " + strconv.Quote(e.ParamName)
	}
	return "argument for parameter " + strconv.Quote(e.ParamName) + " does not satisfy its declared type"
}

// ReferenceRestrictionError is part of the closed diagnostic sum
// (mirroring original_source's ReferenceRestrictionDoesNotMatch variant)
// but is never constructed by this engine: a failed call-site
// restriction check is reported as InvalidArgumentTypeError with
// Restriction set instead, matching the original's own
// enforce_restrictions path. Kept unconstructed for the same reason
// CyclicRecursionError's variant is never built from a code path this
// engine exercises -- the declared shape documents the closed sum
// without inventing a caller for it.
type ReferenceRestrictionError struct {
	Restriction types.TypeId
	Got         types.TypeId
	span        sourcepos.Span
}

func (e ReferenceRestrictionError) Span() sourcepos.Span { return e.span }
func (e ReferenceRestrictionError) Message() string {
	return "argument does not match the reference restriction recorded for this parameter"
}

// CyclicRecursionError: a call re-entered a function already in progress
// on the stack. Nothing in internal/callresolve constructs it; its
// recursion guard returns ERROR_TYPE without a diagnostic instead.
type CyclicRecursionError struct {
	Callee types.FunctionId
}

func (e CyclicRecursionError) Span() sourcepos.Span { return DefaultSpan }
func (e CyclicRecursionError) Message() string {
	return "cyclic recursion detected while calling function"
}

// NoLogicForIdentifierError: a constant function named an intrinsic that
// the intrinsic registry has no entry for.
type NoLogicForIdentifierError struct {
	Identifier string
	span       sourcepos.Span
}

func NewNoLogicForIdentifierError(ident string, span sourcepos.Span) NoLogicForIdentifierError {
	return NoLogicForIdentifierError{Identifier: ident, span: span}
}

func (e NoLogicForIdentifierError) Span() sourcepos.Span { return e.span }
func (e NoLogicForIdentifierError) Message() string {
	return "no resolvable callable logic for " + strconv.Quote(e.Identifier)
}

// NeedsNewKeywordError: a ConstructorBehavior callee was invoked without
// `new`.
type NeedsNewKeywordError struct {
	span sourcepos.Span
}

func NewNeedsNewKeywordError(span sourcepos.Span) NeedsNewKeywordError {
	return NeedsNewKeywordError{span: span}
}

func (e NeedsNewKeywordError) Span() sourcepos.Span { return e.span }
func (e NeedsNewKeywordError) Message() string {
	return "this function needs to be called with the new keyword"
}

// UnsupportedUnionCallableError: the callee resolved to a Logical::Or
// tree. call_logical in the Rust original leaves this branch as a
// todo!(); this engine reports it as a diagnostic instead of panicking
// or silently picking a side.
type UnsupportedUnionCallableError struct {
	span sourcepos.Span
}

func NewUnsupportedUnionCallableError(span sourcepos.Span) UnsupportedUnionCallableError {
	return UnsupportedUnionCallableError{span: span}
}

func (e UnsupportedUnionCallableError) Span() sourcepos.Span { return e.span }
func (e UnsupportedUnionCallableError) Message() string {
	return "calling a union of callables with differing overloads is not yet supported"
}

// UnsupportedGenericAliasError: the callee resolved through an AliasType
// whose Parameters is non-empty. get_logical_callable_from_type in the
// Rust original requires parameters.is_none() and todo!()s otherwise;
// this engine reports it instead.
type UnsupportedGenericAliasError struct {
	Alias types.TypeId
	span  sourcepos.Span
}

func NewUnsupportedGenericAliasError(alias types.TypeId, span sourcepos.Span) UnsupportedGenericAliasError {
	return UnsupportedGenericAliasError{Alias: alias, span: span}
}

func (e UnsupportedGenericAliasError) Span() sourcepos.Span { return e.span }
func (e UnsupportedGenericAliasError) Message() string {
	return "calling through a generic type alias is not yet supported"
}
