package pretty

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRenderFlat(t *testing.T) {
	tests := []struct {
		name     string
		doc      Doc
		width    int
		expected string
	}{
		{
			name:     "Empty",
			doc:      Empty,
			width:    80,
			expected: "",
		},
		{
			name:     "Text",
			doc:      Text("hello"),
			width:    80,
			expected: "hello",
		},
		{
			name:     "Concat",
			doc:      Concat(Text("a"), Text("b"), Text("c")),
			width:    80,
			expected: "abc",
		},
		{
			name:     "ConcatElidesEmpty",
			doc:      Concat(Empty, Text("x"), nil, Empty),
			width:    80,
			expected: "x",
		},
		{
			name:     "GroupFitsFlat",
			doc:      Group(Concat(Text("a"), SoftLine, Text("b"))),
			width:    80,
			expected: "a b",
		},
		{
			name:     "Words",
			doc:      Words(Text("one"), Text("two"), Text("three")),
			width:    80,
			expected: "one two three",
		},
		{
			name:     "JoinComma",
			doc:      Join(Text(", "), Text("a"), Text("b"), Text("c")),
			width:    80,
			expected: "a, b, c",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := Render(test.doc, test.width)
			assert.NoError(t, err)
			assert.Equal(t, test.expected, result)
		})
	}
}

func TestRenderBreaking(t *testing.T) {
	t.Run("GroupBreaksWhenTooWide", func(t *testing.T) {
		doc := Group(Concat(Text("alpha"), SoftLine, Text("beta")))

		result, err := Render(doc, 8)
		assert.NoError(t, err)
		assert.Equal(t, "alpha\nbeta", result)
	})

	t.Run("ExactFitStaysFlat", func(t *testing.T) {
		// "ab cd" is exactly five columns wide.
		doc := Group(Concat(Text("ab"), SoftLine, Text("cd")))

		result, err := Render(doc, 5)
		assert.NoError(t, err)
		assert.Equal(t, "ab cd", result)
	})

	t.Run("OneOverBreaks", func(t *testing.T) {
		doc := Group(Concat(Text("ab"), SoftLine, Text("cd")))

		result, err := Render(doc, 4)
		assert.NoError(t, err)
		assert.Equal(t, "ab\ncd", result)
	})

	t.Run("HardLineForcesBreak", func(t *testing.T) {
		doc := Group(Concat(Text("a"), HardLine, Text("b")))

		result, err := Render(doc, 80)
		assert.NoError(t, err)
		assert.Equal(t, "a\nb", result)
	})

	t.Run("GroupBreaksAllOrNothing", func(t *testing.T) {
		doc := Group(Concat(Text("one"), SoftLine, Text("two"), SoftLine, Text("three")))

		result, err := Render(doc, 9)
		assert.NoError(t, err)
		assert.Equal(t, "one\ntwo\nthree", result)
	})

	t.Run("InnerGroupFitsAfterOuterBreaks", func(t *testing.T) {
		inner := Group(Concat(Text("b"), SoftLine, Text("c")))
		doc := Group(Concat(Text("aaaaaaaa"), SoftLine, inner))

		result, err := Render(doc, 10)
		assert.NoError(t, err)
		assert.Equal(t, "aaaaaaaa\nb c", result)
	})

	t.Run("NestIndentsAfterBreak", func(t *testing.T) {
		doc := Group(Concat(Text("head"), Nest(4, Concat(SoftLine, Text("body")))))

		result, err := Render(doc, 6)
		assert.NoError(t, err)
		assert.Equal(t, "head\n    body", result)
	})

	t.Run("NestDoesNotIndentFlat", func(t *testing.T) {
		doc := Group(Concat(Text("head"), Nest(4, Concat(SoftLine, Text("body")))))

		result, err := Render(doc, 80)
		assert.NoError(t, err)
		assert.Equal(t, "head body", result)
	})

	t.Run("FitMeasuredFromCurrentColumn", func(t *testing.T) {
		// The prefix eats six columns, so the group no longer fits at
		// width ten even though it would on its own.
		doc := Concat(Text("prefix"), Group(Concat(Text("ab"), SoftLine, Text("cd"))))

		result, err := Render(doc, 10)
		assert.NoError(t, err)
		assert.Equal(t, "prefixab\ncd", result)

		result, err = Render(doc, 11)
		assert.NoError(t, err)
		assert.Equal(t, "prefixab cd", result)
	})
}

func TestRenderWhitespace(t *testing.T) {
	t.Run("NoTrailingSpacesOnBlankLine", func(t *testing.T) {
		doc := Nest(4, Concat(Text("a"), HardLine, HardLine, Text("b")))

		result, err := Render(doc, 80)
		assert.NoError(t, err)
		assert.Equal(t, "a\n\n    b", result)
		for _, line := range strings.Split(result, "\n") {
			assert.Equal(t, strings.TrimRight(line, " "), line)
		}
	})

	t.Run("IndentNotEmittedBeforeNothing", func(t *testing.T) {
		doc := Nest(4, Concat(Text("a"), HardLine))

		result, err := Render(doc, 80)
		assert.NoError(t, err)
		assert.Equal(t, "a\n", result)
	})
}

func TestRenderInvalidText(t *testing.T) {
	doc := Text("oops\nnewline")

	_, err := Render(doc, 80)
	assert.Error(t, err)

	var invalid *InvalidTextError
	assert.True(t, errors.As(err, &invalid))
}

func TestTextLines(t *testing.T) {
	doc := TextLines("first\nsecond\nthird")

	result, err := Render(doc, 3)
	assert.NoError(t, err)
	assert.Equal(t, "first\nsecond\nthird", result)
}

func FuzzRender(f *testing.F) {
	f.Add("alpha beta gamma", 10)
	f.Add("one", 1)
	f.Add("a b c d e f g h", 0)
	f.Add("word another word yet more words to lay out", 25)

	f.Fuzz(func(t *testing.T, input string, width int) {
		words := strings.Fields(input)
		docs := make([]Doc, len(words))
		for i, w := range words {
			docs[i] = Text(w)
		}
		doc := Group(Nest(2, Join(SoftLine, docs...)))

		first, err := Render(doc, width)
		assert.NoError(t, err)

		second, err := Render(doc, width)
		assert.NoError(t, err)
		assert.Equal(t, first, second)

		for _, line := range strings.Split(first, "\n") {
			assert.Equal(t, strings.TrimRight(line, " "), line)
		}
	})
}

func TestRenderDeepNesting(t *testing.T) {
	doc := Text("leaf")
	for i := 0; i < 100000; i++ {
		doc = Group(Nest(1, doc))
	}

	result, err := Render(doc, 80)
	assert.NoError(t, err)
	assert.Equal(t, "leaf", result)
}
