// Package tokenizers creates tokenizers by class name.
//
// The only class currently registered is "WordTokenizer", implemented by the
// words sub-package. Additional classes can be plugged in with
// RegisterTokenizerClass.
package tokenizers

import (
	"github.com/gutentok/gutentok/tokenizers/api"
	"github.com/gutentok/gutentok/tokenizers/words"
	"github.com/pkg/errors"
)

// Tokenizer interface allows one to convert text to "tokens" (integer ids) and back.
type Tokenizer = api.Tokenizer

// SpecialToken is an enum of commonly used special tokens.
type SpecialToken = api.SpecialToken

const (
	TokPad     = api.TokPad
	TokUnknown = api.TokUnknown
)

// New creates a new, untrained tokenizer of the given class.
//
// It returns an error for unknown classes. See WordTokenizerClass for the
// default word-level implementation.
func New(class string) (Tokenizer, error) {
	constructor, found := registerOfClasses[class]
	if !found {
		return nil, errors.Errorf("unknown tokenizer class %q", class)
	}
	return constructor(), nil
}

// WordTokenizerClass is the class name of the word-level tokenizer.
const WordTokenizerClass = "WordTokenizer"

// TokenizerConstructor is used by Tokenizer implementations to provide
// implementations for different tokenizer classes.
type TokenizerConstructor func() api.Tokenizer

// RegisterTokenizerClass used by Tokenizer implementations.
func RegisterTokenizerClass(name string, constructor TokenizerConstructor) {
	registerOfClasses[name] = constructor
}

var registerOfClasses = make(map[string]TokenizerConstructor)

func init() {
	RegisterTokenizerClass(WordTokenizerClass, func() api.Tokenizer { return words.New() })
}
