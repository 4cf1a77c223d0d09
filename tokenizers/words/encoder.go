package words

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoder maps text to id sequences through a Vocabulary.
//
// Encoding is a pure function of the text and the current vocabulary state:
// tokens absent from the vocabulary degrade silently to UnkID, so encoding
// never fails but is lossy for unseen words.
type Encoder struct {
	vocab *Vocabulary
}

// NewEncoder creates an Encoder over the given vocabulary.
func NewEncoder(vocab *Vocabulary) *Encoder {
	return &Encoder{vocab: vocab}
}

// Encode splits text and maps each token to its id, with UnkID for unknowns.
func (e *Encoder) Encode(text string) []int {
	tokens := Split(text)
	ids := make([]int, len(tokens))
	for i, token := range tokens {
		ids[i] = e.vocab.TokenID(token)
	}
	return ids
}

// EncodeToString returns the encoded ids as a whitespace-joined string of
// decimal numbers, ready to be pasted into Decoder.DecodeFromString.
func (e *Encoder) EncodeToString(text string) string {
	ids := e.Encode(text)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

// EncodeDetails returns a multi-line rendering pairing each token with its id
// and flagging tokens that fell back to <UNK>.
func (e *Encoder) EncodeDetails(text string) string {
	tokens := Split(text)
	ids := e.Encode(text)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Tokens: %v\n", tokens)
	fmt.Fprintf(&sb, "IDs:    %v\n", ids)

	sb.WriteString("\nToken -> ID mapping:\n")
	for i, token := range tokens {
		marker := ""
		if ids[i] == UnkID {
			marker = " [UNKNOWN]"
		}
		fmt.Fprintf(&sb, "  '%s' -> %d%s\n", token, ids[i], marker)
	}
	return sb.String()
}
