package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trainedDecoder returns a decoder over a vocabulary holding the given tokens,
// in order, starting at id 2.
func trainedDecoder(tokens ...string) *Decoder {
	v := NewVocabulary()
	v.AddTokens(tokens)
	return NewDecoder(v)
}

func TestDecoderDecode(t *testing.T) {
	testCases := []struct {
		name   string
		tokens []string
		ids    []int
		want   string
	}{
		{"empty", nil, []int{}, ""},
		{"words joined with spaces", []string{"the", "cat", "sat"}, []int{2, 3, 4}, "the cat sat"},
		{"unknown id becomes UNK word", []string{"the", "cat", "sat"}, []int{2, 1, 4}, "the <UNK> sat"},
		{"out of range id becomes UNK word", []string{"the"}, []int{2, 999}, "the <UNK>"},
		{"pad skipped entirely", []string{"hello"}, []int{0, 2, 0}, "hello"},
		{"pad between words leaves one space", []string{"a", "b"}, []int{2, 0, 3}, "a b"},
		{"punctuation attaches left", []string{"end", "."}, []int{2, 3}, "end."},
		{"word after closing punctuation", []string{"end", ".", "start"}, []int{2, 3, 4}, "end. start"},
		{"opening punctuation attaches right", []string{"(", "word", ")"}, []int{2, 3, 4}, "(word)"},
		{"quoted word", []string{`"`, "word", `"`}, []int{2, 3, 2}, `"word"`},
		{"punctuation after punctuation", []string{"a", ")", "."}, []int{2, 3, 4}, "a)."},
		{"pad does not become previous token", []string{"(", "word"}, []int{2, 0, 3}, "(word"},
		{"only pads", []string{"x"}, []int{0, 0, 0}, ""},
		{"leading punctuation trimmed spacing", []string{".", "ok"}, []int{2, 3}, ". ok"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := trainedDecoder(tc.tokens...)
			assert.Equal(t, tc.want, d.Decode(tc.ids))
		})
	}
}

func TestDecoderDecodeFromString(t *testing.T) {
	d := trainedDecoder("hello", "world") // ids 2 and 3

	testCases := []struct {
		name    string
		idsText string
		want    string
	}{
		{"valid ids", "2 3", "hello world"},
		{"malformed entries skipped", "2 abc 3", "hello world"},
		{"all malformed", "abc x1 2.5", ""},
		{"empty", "", ""},
		{"blank", "   ", ""},
		{"extra whitespace", " 2\t 3 \n", "hello world"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, d.DecodeFromString(tc.idsText))
		})
	}
}

func TestDecoderDecodeDetails(t *testing.T) {
	d := trainedDecoder("hello") // id 2

	details := d.DecodeDetails("0 1 2 99 abc")
	assert.Contains(t, details, "0 -> '<PAD>' [PAD]")
	assert.Contains(t, details, "1 -> '<UNK>' [UNK]")
	assert.Contains(t, details, "2 -> 'hello'\n")
	assert.Contains(t, details, "99 -> '<UNK>' [INVALID]")
	assert.Contains(t, details, `"abc" -> [INVALID - not a number]`)
	assert.Contains(t, details, "Decoded text: hello <UNK>")

	assert.Equal(t, "No IDs provided", d.DecodeDetails("  "))
}

func TestDecoderRoundTrip(t *testing.T) {
	tok := New()
	tok.Train(`he said "the cat sat on the mat", then left.`)

	// For text made only of known tokens, decode(encode(text)) reproduces the
	// token sequence up to the spacing heuristic.
	got := tok.Decode(tok.Encode(`He said "the cat sat", then left.`))
	require.Equal(t, `he said "the cat sat", then left.`, got)
}

func TestIsPunctuation(t *testing.T) {
	assert.True(t, isPunctuation("."))
	assert.True(t, isPunctuation("("))
	assert.False(t, isPunctuation("a"))
	assert.False(t, isPunctuation("7"))
	assert.False(t, isPunctuation("<UNK>"))
	assert.False(t, isPunctuation("ab"))
}

func TestIsOpeningPunctuation(t *testing.T) {
	for _, token := range []string{"(", "[", "{", `"`, "'"} {
		assert.True(t, isOpeningPunctuation(token), "token=%q", token)
	}
	for _, token := range []string{")", "]", "}", ".", ",", "a", ""} {
		assert.False(t, isOpeningPunctuation(token), "token=%q", token)
	}
}
