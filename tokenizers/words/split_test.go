package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n  ", nil},
		{"words and punctuation", "Hello, world!", []string{"hello", ",", "world", "!"}},
		{"case folding", "The THE the", []string{"the", "the", "the"}},
		{"numbers kept whole", "in 2023!", []string{"in", "2023", "!"}},
		{"contraction", "don't", []string{"don", "'", "t"}},
		{"brackets", "(word)", []string{"(", "word", ")"}},
		{"hyphenated", "well-known", []string{"well", "-", "known"}},
		{"unsupported symbols skipped", "a @ b # c", []string{"a", "b", "c"}},
		{"symbols inside a word", "a@b", []string{"a", "b"}},
		{"non-ascii skipped", "café", []string{"caf"}},
		{"mixed runs", "abc123def", []string{"abc", "123", "def"}},
		{"all punctuation classes", `.,!?;:"'()[]{}-`,
			[]string{".", ",", "!", "?", ";", ":", `"`, "'", "(", ")", "[", "]", "{", "}", "-"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.text))
		})
	}
}

func TestSplitIdempotentUnderLowercasing(t *testing.T) {
	// Splitting is insensitive to the case of the input: lowering first must
	// not change the result.
	for _, text := range []string{"Hello, World!", "THE CAT sat.", "It's 42 DEGREES (outside)."} {
		assert.Equal(t, Split(text), Split(strings.ToLower(text)), "text=%q", text)
	}
}
