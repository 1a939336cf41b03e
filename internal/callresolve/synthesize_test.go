package callresolve

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callcheck/callcheck/internal/diagnostic"
	"github.com/callcheck/callcheck/internal/types"
)

func TestSynthesizeArgumentsUsesMissingValueDefault(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "default"}})
	fd := &types.FunctionDescriptor{
		Params: []types.FuncParam{{Name: "x", Type: strType, MissingValue: optional.Some(strType)}},
	}

	errs := SynthesizeArguments(store, fd, nil, sc, true)
	assert.Empty(t, errs)
	assert.Equal(t, strType, sc.TypeArguments[strType])
}

func TestSynthesizeArgumentsOptionalParamDefaultsToUndefined(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	param := store.FreshTypeVar("T", optional.None[types.TypeId]())
	fd := &types.FunctionDescriptor{
		Params: []types.FuncParam{{Name: "x", Type: param, Optional: true}},
	}

	errs := SynthesizeArguments(store, fd, nil, sc, true)
	assert.Empty(t, errs)
	assert.Equal(t, types.UndefinedType, sc.TypeArguments[param])
}

func TestSynthesizeArgumentsRestParameterChecksElementType(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	numType := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 1}})
	strType := store.Register(&types.ConstantType{Lit: &types.StrLit{Value: "x"}})
	fd := &types.FunctionDescriptor{
		Rest: &types.RestParameter{Name: "rest", ElementType: numType},
	}

	errs := SynthesizeArguments(store, fd, []SynthesisedArgument{{Type: strType}}, sc, true)
	require.Len(t, errs, 1)
	_, ok := errs[0].(diagnostic.InvalidArgumentTypeError)
	assert.True(t, ok)
}

func TestSynthesizeArgumentsRestParameterAcceptsMatchingElements(t *testing.T) {
	store := types.NewStore()
	sc := NewSeedingContext()

	numType := store.Register(&types.ConstantType{Lit: &types.NumLit{Value: 1}})
	fd := &types.FunctionDescriptor{
		Rest: &types.RestParameter{Name: "rest", ElementType: numType},
	}

	errs := SynthesizeArguments(store, fd, []SynthesisedArgument{{Type: numType}, {Type: numType}}, sc, true)
	assert.Empty(t, errs)
}
