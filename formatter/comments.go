package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/elmfmt/ast"
)

// codeIndent is the fixed indentation for code blocks inside comments.
// Example code is preserved exactly and never re-wrapped.
const codeIndent = "    "

// reflow renders a structured comment to prose re-wrapped at the target
// width. Markdown parts are word-wrapped greedily, preserving paragraph
// breaks; code blocks keep their exact content under a fixed indent; a
// DocTags part becomes a single `@doc a, b, c` line exempt from
// wrapping.
func (c *converter) reflow(comment *ast.Comment, width int) string {
	var blocks []string

	for _, part := range comment.Parts {
		switch p := part.(type) {
		case *ast.Markdown:
			blocks = append(blocks, c.wrapMarkdown(p.Text, width))

		case *ast.CodeBlock:
			lines := strings.Split(strings.TrimRight(p.Text, "\n"), "\n")
			for i, line := range lines {
				if line != "" {
					lines[i] = codeIndent + line
				}
			}
			blocks = append(blocks, strings.Join(lines, "\n"))

		case *ast.DocTags:
			blocks = append(blocks, "@doc "+strings.Join(p.Names, ", "))
		}
	}

	return strings.Join(blocks, "\n\n")
}

// wrapMarkdown word-wraps prose at the target width. Blank lines separate
// paragraphs and reset the wrap buffer. Fenced code blocks (```) inside
// the prose are passed through verbatim; an unterminated fence is
// recovered by treating the remaining lines as ordinary prose, with a
// diagnostic.
func (c *converter) wrapMarkdown(text string, width int) string {
	var out []string

	lines := strings.Split(text, "\n")
	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			// Paragraph break; collapse runs of blank lines to one.
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			i++

		case strings.HasPrefix(trimmed, "```"):
			fence, rest, ok := scanFence(lines, i)
			if !ok {
				c.diagnose(MalformedComment, "```",
					"comment has an unterminated code fence; treating the remainder as text")
				out = append(out, c.wrapParagraphs(lines[i:], width)...)
				return strings.Join(out, "\n")
			}
			out = append(out, fence...)
			i = rest

		default:
			paragraph, rest := scanParagraph(lines, i)
			out = append(out, wrapWords(paragraph, width)...)
			i = rest
		}
	}

	// Drop a trailing paragraph separator.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

// wrapParagraphs wraps the given lines as plain prose, keeping paragraph
// structure. Used for the unterminated-fence fallback, so fence markers
// are treated as ordinary words here.
func (c *converter) wrapParagraphs(lines []string, width int) []string {
	var out []string
	i := 0
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "" {
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}
			i++
			continue
		}
		j := i
		for j < len(lines) && strings.TrimSpace(lines[j]) != "" {
			j++
		}
		out = append(out, wrapWords(lines[i:j], width)...)
		i = j
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// scanFence collects a fenced code block starting at lines[start],
// including both fence markers. It reports failure when the closing
// fence is missing.
func scanFence(lines []string, start int) ([]string, int, bool) {
	for i := start + 1; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
			return lines[start : i+1], i + 1, true
		}
	}
	return nil, start, false
}

// scanParagraph collects consecutive non-blank, non-fence lines into a
// single paragraph and returns the index of the first line after it.
func scanParagraph(lines []string, start int) ([]string, int) {
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "```") {
			break
		}
		i++
	}
	return lines[start:i], i
}

// wrapWords greedily packs the paragraph's words into lines of at most
// width display columns. A word wider than the width gets a line of its
// own and overflows; the wrap is best-effort, not a hard bound.
func wrapWords(paragraph []string, width int) []string {
	words := strings.Fields(strings.Join(paragraph, " "))
	if len(words) == 0 {
		return nil
	}

	var out []string
	line := words[0]
	col := runewidth.StringWidth(words[0])

	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if col+1+w > width {
			out = append(out, line)
			line = word
			col = w
			continue
		}
		line += " " + word
		col += 1 + w
	}

	return append(out, line)
}
