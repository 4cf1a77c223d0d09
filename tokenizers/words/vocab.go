package words

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Reserved tokens, always present in every Vocabulary.
const (
	// PadToken is structural filler used when batching sequences. Decoding
	// discards it.
	PadToken = "<PAD>"
	PadID    = 0

	// UnkToken is the fallback for tokens and ids with no known mapping.
	UnkToken = "<UNK>"
	UnkID    = 1
)

// Vocabulary is a bidirectional token<->id table.
//
// The two maps are always mutual inverses: every token maps to exactly one id
// and vice versa. All mutation goes through AddToken, which preserves the
// invariant by construction. New tokens get monotonically increasing ids,
// starting at 2 after the reserved entries.
//
// Vocabulary is not safe for concurrent mutation. The intended lifecycle is a
// single training phase followed by read-only lookups.
type Vocabulary struct {
	tokenToID map[string]int
	idToToken map[int]string
	nextID    int
}

// NewVocabulary creates a Vocabulary seeded with the reserved tokens:
// <PAD> at id 0 and <UNK> at id 1.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		tokenToID: make(map[string]int),
		idToToken: make(map[int]string),
	}
	v.AddToken(PadToken) // id 0
	v.AddToken(UnkToken) // id 1
	return v
}

// AddToken inserts token and returns its id. It is idempotent: if the token is
// already present its existing id is returned and nothing changes.
func (v *Vocabulary) AddToken(token string) int {
	if id, found := v.tokenToID[token]; found {
		return id
	}
	id := v.nextID
	v.nextID++
	v.tokenToID[token] = id
	v.idToToken[id] = token
	return id
}

// AddTokens applies AddToken to each token in order. Duplicates within the
// sequence are no-ops.
func (v *Vocabulary) AddTokens(tokens []string) {
	for _, token := range tokens {
		v.AddToken(token)
	}
}

// TokenID returns the id for token, or UnkID if the token is not in the
// vocabulary. The lookup is exact on the already-lowercased token string.
func (v *Vocabulary) TokenID(token string) int {
	if id, found := v.tokenToID[token]; found {
		return id
	}
	return UnkID
}

// Token returns the token for id, or UnkToken if the id was never assigned,
// including negative and out-of-range ids.
func (v *Vocabulary) Token(id int) string {
	if token, found := v.idToToken[id]; found {
		return token
	}
	return UnkToken
}

// ContainsToken reports whether token is in the vocabulary.
func (v *Vocabulary) ContainsToken(token string) bool {
	_, found := v.tokenToID[token]
	return found
}

// ContainsID reports whether id was assigned to some token.
func (v *Vocabulary) ContainsID(id int) bool {
	_, found := v.idToToken[id]
	return found
}

// Size returns the number of distinct tokens, the reserved ones included.
func (v *Vocabulary) Size() int {
	return len(v.tokenToID)
}

// Stats returns a one-line human-readable summary of the vocabulary.
func (v *Vocabulary) Stats() string {
	return fmt.Sprintf("Vocabulary size: %s tokens (including %s and %s)",
		humanize.Comma(int64(v.Size())), PadToken, UnkToken)
}
