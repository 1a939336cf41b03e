package types

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
)

func TestStoreRegisterGet(t *testing.T) {
	s := NewStore()
	id := s.Register(&ConstantType{Lit: &NumLit{Value: 42}})

	got, ok := s.Get(id).(*ConstantType)
	assert.True(t, ok)
	assert.Equal(t, 42.0, got.Lit.(*NumLit).Value)
}

func TestStoreSentinelsPreRegistered(t *testing.T) {
	s := NewStore()
	assert.Equal(t, int(firstUserType), s.Len())

	id := s.Register(&ConstantType{Lit: &BoolLit{Value: true}})
	assert.Equal(t, firstUserType, id)
}

func TestEqualsIgnoresPointerIdentity(t *testing.T) {
	a := &ConstantType{Lit: &StrLit{Value: "hi"}}
	b := &ConstantType{Lit: &StrLit{Value: "hi"}}
	assert.True(t, Equals(a, b))

	c := &ConstantType{Lit: &StrLit{Value: "bye"}}
	assert.False(t, Equals(a, c))
}

func TestFreshTypeVarsAreDistinct(t *testing.T) {
	s := NewStore()
	a := s.FreshTypeVar("T", optional.None[TypeId]())
	b := s.FreshTypeVar("T", optional.None[TypeId]())
	assert.NotEqual(t, a, b)
}

func TestRegisterFunctionAssignsId(t *testing.T) {
	s := NewStore()
	id := s.RegisterFunction(func(fid FunctionId) *FunctionDescriptor {
		return &FunctionDescriptor{
			Params:     []FuncParam{{Name: "x", Type: TType}},
			ReturnType: TType,
			Behavior:   FunctionBehavior{},
		}
	})

	fd := s.Function(id)
	assert.Equal(t, id, fd.Id)
	assert.Len(t, fd.Params, 1)
}

func TestThisValueResolve(t *testing.T) {
	passed := Passed{Type: ArrayType}
	assert.Equal(t, ArrayType, passed.Resolve(optional.None[TypeId]()))

	useParent := UseParent{Fallback: optional.Some(UndefinedType)}
	assert.Equal(t, NullType, useParent.Resolve(optional.Some(NullType)))
	assert.Equal(t, UndefinedType, useParent.Resolve(optional.None[TypeId]()))
}

func TestMapLogicalPreservesShape(t *testing.T) {
	tree := Or[int]{
		Left:  Pure[int]{Value: 1},
		Right: Pure[int]{Value: 2},
	}

	mapped := MapLogical[int, string](tree, func(v int) string {
		if v == 1 {
			return "one"
		}
		return "two"
	})

	or, ok := mapped.(Or[string])
	assert.True(t, ok)
	assert.Equal(t, "one", or.Left.(Pure[string]).Value)
	assert.Equal(t, "two", or.Right.(Pure[string]).Value)
}
