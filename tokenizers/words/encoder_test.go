package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderEncode(t *testing.T) {
	tok := New()
	stats := tok.Train("the cat sat")
	require.Equal(t, 3, stats.TokenCount)
	require.Equal(t, 5, stats.VocabSize)

	testCases := []struct {
		name string
		text string
		want []int
	}{
		{"all known", "the cat sat", []int{2, 3, 4}},
		{"unseen word degrades to UNK", "the dog sat", []int{2, 1, 4}},
		{"case insensitive", "The CAT", []int{2, 3}},
		{"empty", "", []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tok.Encode(tc.text))
		})
	}
}

func TestEncoderEncodeToString(t *testing.T) {
	tok := New()
	tok.Train("the cat sat")

	assert.Equal(t, "2 1 4", tok.Encoder().EncodeToString("the dog sat"))
	assert.Equal(t, "", tok.Encoder().EncodeToString(""))
}

func TestEncoderEncodeDetails(t *testing.T) {
	tok := New()
	tok.Train("the cat sat")

	details := tok.Encoder().EncodeDetails("the dog sat")
	assert.Contains(t, details, "'dog' -> 1 [UNKNOWN]")
	assert.Contains(t, details, "'the' -> 2\n")
	assert.Contains(t, details, "'sat' -> 4\n")
	assert.NotContains(t, details, "'the' -> 2 [UNKNOWN]")
}

func TestEncoderIsDeterministicAndReadOnly(t *testing.T) {
	tok := New()
	tok.Train("the cat sat")
	sizeBefore := tok.Vocab().Size()

	first := tok.Encode("the unknown dog")
	second := tok.Encode("the unknown dog")

	assert.Equal(t, first, second)
	assert.Equal(t, sizeBefore, tok.Vocab().Size(), "encoding must not grow the vocabulary")
}
