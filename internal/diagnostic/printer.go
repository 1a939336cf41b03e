package diagnostic

import "github.com/callcheck/callcheck/internal/types"

// TypePrinter is how a diagnostic turns a TypeId into the string a user
// reads. Rendering a Type to source-like text is an external concern
// (the inverse of the parser this engine never owns); callers supply an
// implementation backed by whatever pretty-printer their checker uses.
type TypePrinter interface {
	Print(id types.TypeId) string
}

// FuncPrinter formats TypeId strings lazily for the handful of messages
// that need one, so constructing an Error never requires a Store lookup
// up front.
type FuncPrinter func(types.TypeId) string

func (f FuncPrinter) Print(id types.TypeId) string { return f(id) }
