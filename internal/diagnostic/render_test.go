package diagnostic

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	"github.com/callcheck/callcheck/internal/sourcepos"
	"github.com/callcheck/callcheck/internal/types"
)

func TestRenderPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{out: &buf}

	errs := []Error{
		NewNotCallableError(types.ErrorType, sourcepos.NullSpan),
	}
	r.Render(errs)

	assert.Contains(t, buf.String(), "callee is not callable")
}

func TestNormalizeIdentifierIsIdempotent(t *testing.T) {
	once := NormalizeIdentifier("café")
	twice := NormalizeIdentifier(once)
	assert.Equal(t, once, twice)
}

// TestRenderBatchSnapshot pins the exact line-by-line rendering of a
// mixed diagnostic batch (padded gutter widths, message wording) the
// way the parser's own *_test.go files snapshot a token or AST node.
func TestRenderBatchSnapshot(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{out: &buf}

	strParam := types.ErrorType
	errs := []Error{
		NewMissingArgumentError("message", strParam, sourcepos.NullSpan),
		NewExcessArgumentsError(1, 3, sourcepos.NullSpan, sourcepos.NullSpan),
		NewNotCallableError(types.ErrorType, sourcepos.NullSpan),
	}
	r.Render(errs)

	snaps.MatchSnapshot(t, buf.String())
}
