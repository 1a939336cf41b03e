package diagnostic

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/unicode/norm"
)

// NormalizeIdentifier brings an identifier quoted inside a diagnostic
// message to NFC form before it's printed, matching the normalization
// the lexer itself applies to identifiers during parsing so a
// diagnostic never shows a visually-identical-but-byte-different
// spelling of the name the user actually typed.
func NormalizeIdentifier(s string) string {
	return string(norm.NFC.Bytes([]byte(s)))
}

// Renderer writes a sequence of Errors to an output stream, colorizing
// the message when the stream is a real terminal and padding the gutter
// to the widest rendered line so multi-line diagnostics stay aligned
// even with wide (e.g. CJK) characters in a quoted identifier.
type Renderer struct {
	out     io.Writer
	profile termenv.Profile
	color   bool
}

// NewRenderer builds a Renderer for w, auto-detecting color support by
// running isatty on fd (the descriptor w writes to); a non-nil
// forceColor overrides detection.
func NewRenderer(w io.Writer, fd uintptr, forceColor *bool) *Renderer {
	color := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if forceColor != nil {
		color = *forceColor
	}
	return &Renderer{
		out:     w,
		profile: termenv.ColorProfile(),
		color:   color,
	}
}

// Render writes one diagnostic line per error, e.g.:
//
//	42:3-42:9: callee is not callable
//
// The location column is padded to the widest span in the batch so the
// messages line up even when one identifier is a wide CJK character.
func (r *Renderer) Render(errs []Error) {
	locWidth := 0
	locs := make([]string, len(errs))
	for i, e := range errs {
		loc := e.Span().String()
		locs[i] = loc
		if w := runewidth.StringWidth(loc); w > locWidth {
			locWidth = w
		}
	}

	for i, e := range errs {
		loc := runewidth.FillRight(locs[i], locWidth)
		line := fmt.Sprintf("%s: %s", loc, e.Message())
		if r.color {
			style := termenv.String(line).Foreground(r.profile.Color("9"))
			if _, ok := e.(CyclicRecursionError); ok {
				style = style.Bold()
			}
			line = style.String()
		}
		fmt.Fprintln(r.out, line)
	}
}
