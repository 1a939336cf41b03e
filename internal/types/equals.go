package types

import (
	"math/big"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equals performs structural comparison of two type descriptors ignoring
// unexported fields, the same way the teacher's internal/type_system
// compares Type values for its snapshot tests. Two *ConstantType{Lit:
// *NumLit{Value: 1}} values compare equal even though they're different
// pointers, since Register always allocates a fresh pointer per call.
func Equals(a, b Type) bool {
	return cmp.Equal(a, b,
		cmpopts.IgnoreUnexported(big.Int{}),
		cmp.Comparer(func(x, y big.Int) bool { return x.Cmp(&y) == 0 }),
	)
}

// LitEquals compares two literal values the way ConstantType equality
// needs to, without requiring the caller to unwrap the Lit interface.
func LitEquals(a, b Lit) bool {
	return cmp.Equal(a, b,
		cmpopts.IgnoreUnexported(big.Int{}),
		cmp.Comparer(func(x, y big.Int) bool { return x.Cmp(&y) == 0 }),
	)
}
