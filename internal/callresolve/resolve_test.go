package callresolve

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/sourcepos"
	"github.com/callcheck/callcheck/internal/types"
)

func TestResolveCallableFunctionType(t *testing.T) {
	store := types.NewStore()
	fid := store.RegisterFunction(func(id types.FunctionId) *types.FunctionDescriptor {
		return &types.FunctionDescriptor{Behavior: types.ArrowFunctionBehavior{}, ReturnType: types.UndefinedType}
	})
	callee := store.Register(&types.FunctionType{Function: fid, This: types.UseParent{}})

	logical, err := ResolveCallable(store, callee, types.UseParent{}, sourcepos.NullSpan)
	require.Nil(t, err)
	pure, ok := logical.(types.Pure[FunctionRef])
	require.True(t, ok)
	assert.Equal(t, fid, pure.Value.Function)
}

func TestResolveCallableNotCallableReturnsNil(t *testing.T) {
	store := types.NewStore()
	notCallable := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 3}})

	logical, err := ResolveCallable(store, notCallable, types.UseParent{}, sourcepos.NullSpan)
	assert.Nil(t, err)
	assert.Nil(t, logical)
}

func TestResolveCallableGenericAliasUnsupported(t *testing.T) {
	store := types.NewStore()
	alias := store.Register(&types.AliasType{
		To:         types.ErrorType,
		Parameters: []types.TypeId{types.TType},
	})

	logical, err := ResolveCallable(store, alias, types.UseParent{}, sourcepos.NullSpan)
	assert.Nil(t, logical)
	_, ok := err.(diagnostic.UnsupportedGenericAliasError)
	assert.True(t, ok)
}

func TestResolveCallableOrTypeBothCallableProducesOr(t *testing.T) {
	store := types.NewStore()
	fidA := store.RegisterFunction(func(id types.FunctionId) *types.FunctionDescriptor {
		return &types.FunctionDescriptor{Behavior: types.ArrowFunctionBehavior{}, ReturnType: types.UndefinedType}
	})
	fidB := store.RegisterFunction(func(id types.FunctionId) *types.FunctionDescriptor {
		return &types.FunctionDescriptor{Behavior: types.ArrowFunctionBehavior{}, ReturnType: types.UndefinedType}
	})
	a := store.Register(&types.FunctionType{Function: fidA, This: types.UseParent{}})
	b := store.Register(&types.FunctionType{Function: fidB, This: types.UseParent{}})
	or := store.Register(&types.OrType{A: a, B: b})

	logical, err := ResolveCallable(store, or, types.UseParent{}, sourcepos.NullSpan)
	require.Nil(t, err)
	_, ok := logical.(types.Or[FunctionRef])
	assert.True(t, ok)
}

func TestResolveCallableOrTypeOneSideNotCallableCollapses(t *testing.T) {
	store := types.NewStore()
	fidA := store.RegisterFunction(func(id types.FunctionId) *types.FunctionDescriptor {
		return &types.FunctionDescriptor{Behavior: types.ArrowFunctionBehavior{}, ReturnType: types.UndefinedType}
	})
	a := store.Register(&types.FunctionType{Function: fidA, This: types.UseParent{}})
	notCallable := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 1}})
	or := store.Register(&types.OrType{A: a, B: notCallable})

	logical, err := ResolveCallable(store, or, types.UseParent{}, sourcepos.NullSpan)
	assert.Nil(t, err)
	assert.Nil(t, logical)
}

func TestIsSubtypeBindsFreeParameter(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	arg := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})

	assert.True(t, isSubtype(store, sc, param, arg))
	assert.Equal(t, arg, sc.TypeArguments[param])
}

func TestIsSubtypeArrayElementRecursion(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	numType := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 1}})
	paramArr := store.Register(&types.ConstructorType{Constructor: &types.StructureGenerics{
		On:        types.ArrayType,
		Arguments: types.StructureGenericArguments{Entries: map[types.TypeId]types.TypeId{types.TType: param}},
	}})
	argArr := store.Register(&types.ConstructorType{Constructor: &types.StructureGenerics{
		On:        types.ArrayType,
		Arguments: types.StructureGenericArguments{Entries: map[types.TypeId]types.TypeId{types.TType: numType}},
	}})

	assert.True(t, isSubtype(store, sc, paramArr, argArr))
	assert.Equal(t, numType, sc.TypeArguments[param])
}

func TestIsSubtypeFallsBackToStructuralEquality(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	a := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	b := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	c := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "y"}})

	assert.True(t, isSubtype(store, sc, a, b))
	assert.False(t, isSubtype(store, sc, a, c))
}
