package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gutentok/gutentok/tokenizers/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedTokenizer() *words.Tokenizer {
	tok := words.New()
	tok.Train("the cat sat")
	return tok
}

func TestREPLEncodeThenExit(t *testing.T) {
	in := strings.NewReader("1\nthe dog sat\n3\n")
	var out bytes.Buffer

	err := runREPL(trainedTokenizer(), in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "'dog' -> 1 [UNKNOWN]")
	assert.Contains(t, out.String(), "Encoded IDs (copy for decoding): 2 1 4")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestREPLDecodeThenExit(t *testing.T) {
	in := strings.NewReader("2\n2 1 4\n3\n")
	var out bytes.Buffer

	err := runREPL(trainedTokenizer(), in, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Decoded text: the <UNK> sat")
}

func TestREPLInvalidChoice(t *testing.T) {
	in := strings.NewReader("9\n3\n")
	var out bytes.Buffer

	err := runREPL(trainedTokenizer(), in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid choice. Please enter 1, 2, or 3.")
}

func TestREPLEndOfInputIsCleanExit(t *testing.T) {
	var out bytes.Buffer

	err := runREPL(trainedTokenizer(), strings.NewReader(""), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Input stream closed. Goodbye!")
}

func TestREPLEmptyEncodeInput(t *testing.T) {
	in := strings.NewReader("1\n   \n3\n")
	var out bytes.Buffer

	err := runREPL(trainedTokenizer(), in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No input provided.")
}
