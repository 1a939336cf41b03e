package facts

import (
	"testing"

	"github.com/callcheck/callcheck/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClosureLookupFallsThroughToParent(t *testing.T) {
	parent := NewEnvironment()
	parent.BindClosure("x", types.ArrayType)

	child := parent.Child()
	got, ok := child.LookupClosure("x")
	assert.True(t, ok)
	assert.Equal(t, types.ArrayType, got)
}

func TestClosureLookupMissing(t *testing.T) {
	e := NewEnvironment()
	_, ok := e.LookupClosure("nope")
	assert.False(t, ok)
}

func TestBindClosureDuplicatePanics(t *testing.T) {
	e := NewEnvironment()
	e.BindClosure("x", types.ArrayType)
	assert.Panics(t, func() {
		e.BindClosure("x", types.NullType)
	})
}

func TestRecordEventAppendsInOrder(t *testing.T) {
	e := NewEnvironment()
	e.RecordEvent(&types.Returns{Type: types.ArrayType, At: 0})
	e.RecordEvent(&types.Returns{Type: types.NullType, At: 1})

	events := e.Events()
	assert.Len(t, events, 2)
	assert.Equal(t, types.ArrayType, events[0].(*types.Returns).Type)
	assert.Equal(t, types.NullType, events[1].(*types.Returns).Type)
}

func TestPolyBaseChainsToParent(t *testing.T) {
	parent := NewEnvironment()
	parent.SetPolyBase(types.TType, types.ArrayType)

	child := parent.Child()
	got, ok := child.GetPolyBase(types.TType)
	assert.True(t, ok)
	assert.Equal(t, types.ArrayType, got)
}

func TestNextCallIdIncrements(t *testing.T) {
	e := NewEnvironment()
	a := e.NextCallId()
	b := e.NextCallId()
	assert.NotEqual(t, a, b)
}
