// Package pretty implements a document layout algebra for printing source
// code within a target line width.
//
// A Doc describes text fragments, line breaks, indentation, and groups.
// Groups are the unit of layout choice: a group is rendered either fully
// flattened on a single line or fully broken, never mixed. The renderer
// decides per group, at render time, based on whether the flattened form
// fits in the remaining width.
//
// The algebra follows Wadler's "A prettier printer", restricted to the
// strict two-mode form: instead of a union of layouts, every group carries
// exactly two possible renderings (flat and broken), which keeps rendering
// linear in the size of the document.
package pretty

import "strings"

// Doc is an immutable layout document.
type Doc interface {
	isDoc()
}

func (empty) isDoc()  {}
func (text) isDoc()   {}
func (line) isDoc()   {}
func (concat) isDoc() {}
func (nest) isDoc()   {}
func (group) isDoc()  {}

// empty renders as nothing.
type empty struct{}

// text is a literal fragment. It must not contain a line break; multi-line
// content has to be decomposed into text/HardLine sequences by the producer.
type text string

// line is a line break. A hard line always breaks. A soft line breaks only
// when its enclosing group is rendered in broken mode; flattened it becomes
// a single space.
type line struct {
	hard bool
}

type concat struct {
	a, b Doc
}

// nest adds indentation to every break produced inside its document.
type nest struct {
	indent int
	doc    Doc
}

// group marks a layout choice point.
type group struct {
	doc Doc
}

// Empty is the document that renders as nothing.
var Empty Doc = empty{}

// HardLine is a line break that always occurs. A group containing a hard
// line never fits on one line and is always rendered broken.
var HardLine Doc = line{hard: true}

// SoftLine is a line break that occurs only when the enclosing group is
// broken; otherwise it renders as a single space.
var SoftLine Doc = line{hard: false}

// Text creates a literal text fragment. The string must not contain "\n";
// the renderer rejects such fragments as a producer defect.
func Text(s string) Doc {
	return text(s)
}

// Concat concatenates documents left to right. Empty documents are elided
// so they do not grow the tree.
func Concat(docs ...Doc) Doc {
	var out Doc = empty{}
	for _, d := range docs {
		if d == nil {
			continue
		}
		if _, ok := d.(empty); ok {
			continue
		}
		if _, ok := out.(empty); ok {
			out = d
			continue
		}
		out = concat{out, d}
	}
	return out
}

// Nest indents every line break inside doc by indent additional spaces.
func Nest(indent int, doc Doc) Doc {
	return nest{indent: indent, doc: doc}
}

// Group renders doc on a single line when its flattened form fits in the
// remaining width, and broken otherwise.
func Group(doc Doc) Doc {
	return group{doc: doc}
}

// Join concatenates docs with sep between consecutive elements. There is
// no separator after the last element.
func Join(sep Doc, docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return Empty
	case 1:
		return docs[0]
	}

	parts := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// Words joins docs with single spaces. The result carries no group, so it
// never introduces wrapping on its own.
func Words(docs ...Doc) Doc {
	return Join(Text(" "), docs...)
}

// Lines joins docs with hard line breaks.
func Lines(docs ...Doc) Doc {
	return Join(HardLine, docs...)
}

// TextLines splits s on line breaks and joins the pieces with hard lines,
// producing a valid document from multi-line content.
func TextLines(s string) Doc {
	parts := strings.Split(s, "\n")
	docs := make([]Doc, len(parts))
	for i, p := range parts {
		docs[i] = Text(p)
	}
	return Lines(docs...)
}
