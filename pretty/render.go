package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the page width used when a caller passes a non-positive
// width to Render.
const DefaultWidth = 80

// InvalidTextError reports a Text fragment that contains a line break.
// This is a defect in the code that produced the document, not in user
// input: the rendered output cannot be trusted, so rendering fails.
type InvalidTextError struct {
	Text string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("pretty: text fragment contains line break: %q", e.Text)
}

// renderMode tells how line breaks inside a frame are rendered.
type renderMode int

const (
	// modeBreak renders soft and hard lines as newlines plus indentation.
	modeBreak renderMode = iota
	// modeFlat renders soft lines as single spaces. Hard lines never occur
	// in flat frames; the fit measurement rejects them up front.
	modeFlat
)

// frame is one unit of pending work for the renderer.
type frame struct {
	indent int
	mode   renderMode
	doc    Doc
}

// Render lays out doc against the given page width and returns the
// resulting text. Rendering is a pure function of (doc, width): there is
// no hidden state and the same inputs always produce the same output.
//
// Lines never carry trailing whitespace; indentation is only emitted when
// a line turns out to contain text. A text fragment wider than the page
// width overflows the width rather than failing, since the engine promises
// best-effort fitting, not a hard bound.
func Render(doc Doc, width int) (string, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	var out strings.Builder

	// col is the logical cursor column, including queued indentation that
	// has not been written yet. pending holds spaces owed before the next
	// text fragment; discarding it at a line break is what keeps lines
	// free of trailing whitespace.
	col := 0
	pending := 0

	stack := []frame{{indent: 0, mode: modeBreak, doc: doc}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch d := f.doc.(type) {
		case empty:

		case text:
			s := string(d)
			if strings.ContainsRune(s, '\n') {
				return "", &InvalidTextError{Text: s}
			}
			if pending > 0 {
				out.WriteString(strings.Repeat(" ", pending))
				pending = 0
			}
			out.WriteString(s)
			col += runewidth.StringWidth(s)

		case concat:
			stack = append(stack, frame{f.indent, f.mode, d.b}, frame{f.indent, f.mode, d.a})

		case nest:
			stack = append(stack, frame{f.indent + d.indent, f.mode, d.doc})

		case line:
			if f.mode == modeFlat && !d.hard {
				pending++
				col++
				continue
			}
			out.WriteByte('\n')
			pending = f.indent
			col = f.indent

		case group:
			mode := modeBreak
			if fits(width-col, frame{f.indent, modeFlat, d.doc}, stack) {
				mode = modeFlat
			}
			stack = append(stack, frame{f.indent, mode, d.doc})
		}
	}

	return out.String(), nil
}

// fits reports whether head, rendered flat, fits in the remaining width.
// Measurement runs from the current column up to the next mandatory line
// break or the end of the document, whichever comes first: frames already
// committed to break mode end the measurement at their first line break.
// A hard line inside the flattened head can never be flattened, so it
// fails the measurement outright. The boundary is inclusive: content that
// measures to exactly the remaining width fits.
func fits(remaining int, head frame, rest []frame) bool {
	if remaining < 0 {
		return false
	}

	// local holds flattened work; rest is consumed read-only from the top.
	local := []frame{head}
	next := len(rest) - 1

	for remaining >= 0 {
		var f frame
		switch {
		case len(local) > 0:
			f = local[len(local)-1]
			local = local[:len(local)-1]
		case next >= 0:
			f = rest[next]
			next--
		default:
			return true
		}

		switch d := f.doc.(type) {
		case empty:

		case text:
			remaining -= runewidth.StringWidth(string(d))

		case concat:
			local = append(local, frame{f.indent, f.mode, d.b}, frame{f.indent, f.mode, d.a})

		case nest:
			local = append(local, frame{f.indent + d.indent, f.mode, d.doc})

		case line:
			if f.mode == modeBreak {
				return true
			}
			if d.hard {
				return false
			}
			remaining--

		case group:
			// Nested groups are measured flat as well; a hard line inside
			// them surfaces here and fails the enclosing measurement.
			local = append(local, frame{f.indent, modeFlat, d.doc})
		}
	}

	return false
}
