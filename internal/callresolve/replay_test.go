package callresolve

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcheck/callcheck/internal/types"
)

func TestSubstituteReplacesBoundParameter(t *testing.T) {
	store := types.NewStore()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})

	fta := FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{param: strType}}
	assert.Equal(t, strType, Substitute(store, param, fta))
}

func TestSubstituteLeavesUnboundTypeUnchanged(t *testing.T) {
	store := types.NewStore()
	numType := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 1}})

	fta := FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{}}
	assert.Equal(t, numType, Substitute(store, numType, fta))
}

func TestSubstituteRebuildsAndTypeOnlyWhenChildChanges(t *testing.T) {
	store := types.NewStore()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	and := store.Register(&types.AndType{A: param, B: types.UndefinedType})

	fta := FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{param: strType}}
	got := Substitute(store, and, fta)
	require.NotEqual(t, and, got)

	rebuilt, ok := store.Get(got).(*types.AndType)
	require.True(t, ok)
	assert.Equal(t, strType, rebuilt.A)
	assert.Equal(t, types.UndefinedType, rebuilt.B)

	unchanged := Substitute(store, and, FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{}})
	assert.Equal(t, and, unchanged)
}

func TestLocalBindingWinsOverStructureBinding(t *testing.T) {
	store := types.NewStore()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	localType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "local"}})
	structureType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "structure"}})

	fta := FunctionTypeArguments{
		Local: map[types.TypeId]types.TypeId{param: localType},
		Structure: &types.StructureGenericArguments{
			Entries: map[types.TypeId]types.TypeId{param: structureType},
		},
	}
	assert.Equal(t, localType, Substitute(store, param, fta))
}

func TestReplayEffectsSubstitutesReturnsForEarlyReturn(t *testing.T) {
	store := types.NewStore()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	ctx := newCtx(store)

	result := ReplayEffects(ctx, []types.Event{
		&types.Returns{Type: param},
	}, FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{param: strType}})

	require.NotNil(t, result.EarlyReturn)
	assert.Equal(t, strType, *result.EarlyReturn)
}

func TestReplayEffectsStopsAtFirstReturn(t *testing.T) {
	store := types.NewStore()
	ctx := newCtx(store)

	result := ReplayEffects(ctx, []types.Event{
		&types.Returns{Type: types.UndefinedType},
		&types.Declaration{Type: types.NullType},
	}, FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{}})

	require.NotNil(t, result.EarlyReturn)
	assert.Equal(t, types.UndefinedType, *result.EarlyReturn)
	assert.Empty(t, ctx.Env.Events())
}

func TestReplayEffectsRecordsSubstitutedDeclaration(t *testing.T) {
	store := types.NewStore()
	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	ctx := newCtx(store)

	result := ReplayEffects(ctx, []types.Event{
		&types.Declaration{Type: param},
	}, FunctionTypeArguments{Local: map[types.TypeId]types.TypeId{param: strType}})

	assert.Nil(t, result.EarlyReturn)
	require.Len(t, ctx.Env.Events(), 1)
	decl, ok := ctx.Env.Events()[0].(*types.Declaration)
	require.True(t, ok)
	assert.Equal(t, strType, decl.Type)
}
