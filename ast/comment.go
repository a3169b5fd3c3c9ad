package ast

// Comment is a structured doc comment: an ordered sequence of parts.
// Order among parts is significant and survives both rendering and tag
// extraction.
type Comment struct {
	Parts []CommentPart
}

// CommentPart is the interface implemented by the three part forms:
// Markdown prose, a verbatim code block, and a @doc tag line.
type CommentPart interface {
	isCommentPart()
}

func (*Markdown) isCommentPart() {}
func (*CodeBlock) isCommentPart() {}
func (*DocTags) isCommentPart()  {}

// Markdown is prose content. It is re-wrapped to the target width when
// the comment is rendered.
type Markdown struct {
	Text string
}

// CodeBlock is example code. It is emitted with a fixed indent and never
// re-wrapped.
type CodeBlock struct {
	Text string
}

// DocTags is a `@doc name1, name2, ...` line. A file-level comment may
// contain several DocTags parts; together they drive the ordering of the
// module's exposing clause.
type DocTags struct {
	Names []string
}

// TagGroups returns the names of every DocTags part in document order,
// one group per part. This is the handoff consumed by export ordering.
func (c *Comment) TagGroups() [][]string {
	if c == nil {
		return nil
	}
	var groups [][]string
	for _, part := range c.Parts {
		if tags, ok := part.(*DocTags); ok {
			groups = append(groups, tags.Names)
		}
	}
	return groups
}
