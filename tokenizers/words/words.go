// Package words implements a word-level tokenizer: text is split into word,
// number and punctuation tokens, and a trained vocabulary maps tokens to
// integer ids and back.
//
// A Tokenizer starts with an empty Vocabulary (only the reserved <PAD> and
// <UNK> entries) and learns new tokens during Train. After training it is
// meant to be used read-only: Encode and Decode never mutate the vocabulary,
// unseen input degrades to <UNK> instead.
package words

import (
	"github.com/gutentok/gutentok/tokenizers/api"
	"github.com/pkg/errors"
)

// Tokenizer composes a Vocabulary with an Encoder and a Decoder over it.
type Tokenizer struct {
	vocab   *Vocabulary
	encoder *Encoder
	decoder *Decoder
}

// Compile time assert that words.Tokenizer implements the tokenizers API.
var _ api.Tokenizer = &Tokenizer{}

// New creates a Tokenizer with a fresh vocabulary, holding only the reserved
// <PAD> and <UNK> tokens. Use Train to populate it from corpus texts.
func New() *Tokenizer {
	vocab := NewVocabulary()
	return &Tokenizer{
		vocab:   vocab,
		encoder: NewEncoder(vocab),
		decoder: NewDecoder(vocab),
	}
}

// TrainStats reports the outcome of a Train call, for display purposes.
type TrainStats struct {
	// TokenCount is the total number of tokens seen, duplicates included.
	TokenCount int

	// VocabSize is the number of distinct tokens in the vocabulary after
	// training, including <PAD> and <UNK>.
	VocabSize int
}

// Train feeds each text through Split and adds every token to the vocabulary.
// It can be called multiple times, all texts accumulate into the same
// vocabulary. Duplicate tokens are no-ops.
func (t *Tokenizer) Train(texts ...string) TrainStats {
	total := 0
	for _, text := range texts {
		tokens := Split(text)
		t.vocab.AddTokens(tokens)
		total += len(tokens)
	}
	return TrainStats{TokenCount: total, VocabSize: t.vocab.Size()}
}

// Vocab returns the underlying vocabulary.
func (t *Tokenizer) Vocab() *Vocabulary { return t.vocab }

// Encoder returns the encoder view over the tokenizer's vocabulary.
func (t *Tokenizer) Encoder() *Encoder { return t.encoder }

// Decoder returns the decoder view over the tokenizer's vocabulary.
func (t *Tokenizer) Decoder() *Decoder { return t.decoder }

// Encode returns the text encoded into a sequence of ids.
func (t *Tokenizer) Encode(text string) []int {
	return t.encoder.Encode(text)
}

// Decode returns the text reconstructed from a sequence of ids.
func (t *Tokenizer) Decode(ids []int) string {
	return t.decoder.Decode(ids)
}

// SpecialTokenID returns the id for the given special token, or an error if not known.
func (t *Tokenizer) SpecialTokenID(token api.SpecialToken) (int, error) {
	switch token {
	case api.TokPad:
		return PadID, nil
	case api.TokUnknown:
		return UnkID, nil
	}
	return 0, errors.Errorf("unknown special token: %s (%d)", token, token)
}
