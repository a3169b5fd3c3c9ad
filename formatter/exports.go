package formatter

import (
	"golang.org/x/exp/slices"
)

// OrderExports computes the export order a module's exposing list would
// receive when formatted, without formatting the whole module. The
// returned slice is always a permutation of declared.
func OrderExports(tagGroups [][]string, declared []string) ([]string, []Diagnostic) {
	c := newConverter(New())
	ordered := c.orderExports(tagGroups, declared)
	return ordered, c.diags
}

// orderExports derives the order of a module's exposed names from the
// @doc tag groups of its file-level comment.
//
// The tag groups are flattened into one sequence, keeping both group
// order and in-group order. Tags that match a declared name form the
// head of the result; declared names never mentioned by a tag follow in
// their original declaration order. The result is therefore always a
// permutation of declared: nothing is invented, dropped, or duplicated.
//
// A tag with no matching declared name contributes no position and is
// surfaced as a non-fatal diagnostic.
func (c *converter) orderExports(tagGroups [][]string, declared []string) []string {
	ordered := make([]string, 0, len(declared))
	used := make(map[string]bool, len(declared))

	for _, group := range tagGroups {
		for _, tag := range group {
			if !slices.Contains(declared, tag) {
				c.diagnose(UnknownDocTag, tag,
					"@doc tag %q does not match any exposed name", tag)
				continue
			}
			if used[tag] {
				continue
			}
			used[tag] = true
			ordered = append(ordered, tag)
		}
	}

	for _, name := range declared {
		if !used[name] {
			ordered = append(ordered, name)
		}
	}

	return ordered
}
