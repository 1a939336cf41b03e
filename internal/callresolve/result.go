package callresolve

import (
	"strconv"

	"github.com/callcheck/callcheck/internal/types"
)

// resultFor assembles the final return type for a concrete call.
func resultFor(ctx *CallContext, fd *types.FunctionDescriptor, input CallingInput, instanceType types.TypeId, replay ReplayResult, fta FunctionTypeArguments) types.TypeId {
	if input.CalledWithNew == New {
		switch fd.Behavior.(type) {
		case types.FunctionBehavior, types.ConstructorBehavior:
			return instanceType
		}
	}

	if replay.EarlyReturn != nil {
		return *replay.EarlyReturn
	}
	return Substitute(ctx.Store, fd.ReturnType, fta)
}

// closureKey produces a stable per-call, per-capture key for
// Environment.BindClosure, so replaying the same closure-capturing
// function at two different call sites never collides.
func closureKey(id types.CallId, name string) string {
	return strconv.Itoa(int(id)) + ":" + name
}
