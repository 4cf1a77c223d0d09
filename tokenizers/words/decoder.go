package words

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// openingPunctuation are the marks that attach to the next token: no space is
// emitted after them.
const openingPunctuation = `([{"'`

// Decoder maps id sequences back to text through a Vocabulary.
//
// Reconstruction is approximate: all tokens are lowercase by construction and
// the original spacing is gone, so Decode re-joins tokens with a heuristic
// that attaches punctuation to what precedes it and suppresses the space
// after opening punctuation. It is not a faithful inverse of Encode.
type Decoder struct {
	vocab *Vocabulary
}

// NewDecoder creates a Decoder over the given vocabulary.
func NewDecoder(vocab *Vocabulary) *Decoder {
	return &Decoder{vocab: vocab}
}

// Decode reconstructs text from ids.
//
// PAD ids are skipped entirely and contribute nothing, not even to the
// "previous token" state. Unknown ids resolve to <UNK>. The space-or-not
// decision looks only at the current token and the previously emitted one:
//
//  1. word after word -> space
//  2. anything after opening punctuation -> no space ("(word")
//  3. word after non-opening punctuation -> space ("end. start")
//  4. punctuation after anything else -> no space ("word.")
func (d *Decoder) Decode(ids []int) string {
	var sb strings.Builder
	prev := ""

	for _, id := range ids {
		if id == PadID {
			continue
		}
		token := d.vocab.Token(id)

		isPunc := isPunctuation(token)
		if prev != "" {
			prevIsPunc := isPunctuation(prev)
			switch {
			case !isPunc && !prevIsPunc:
				sb.WriteByte(' ')
			case isOpeningPunctuation(prev):
				// token attaches directly after its opener
			case !isPunc && prevIsPunc:
				sb.WriteByte(' ')
			}
		}

		sb.WriteString(token)
		prev = token
	}

	return strings.TrimSpace(sb.String())
}

// DecodeFromString parses a whitespace-separated string of decimal ids and
// decodes it. Entries that do not parse as integers are skipped with a
// warning, and decoding proceeds with the remaining valid ids.
func (d *Decoder) DecodeFromString(idsText string) string {
	parts := strings.Fields(idsText)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			log.Printf("Warning: invalid ID %q - skipping", part)
			continue
		}
		ids = append(ids, id)
	}
	return d.Decode(ids)
}

// DecodeDetails returns a multi-line rendering listing each id, its resolved
// token and a marker for PAD, UNK, out-of-vocabulary ids and entries that are
// not numbers, followed by the final decoded text.
func (d *Decoder) DecodeDetails(idsText string) string {
	parts := strings.Fields(idsText)
	if len(parts) == 0 {
		return "No IDs provided"
	}

	var sb strings.Builder
	sb.WriteString("ID -> Token mapping:\n")

	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			fmt.Fprintf(&sb, "  %q -> [INVALID - not a number]\n", part)
			continue
		}
		ids = append(ids, id)

		marker := ""
		switch {
		case id == PadID:
			marker = " [PAD]"
		case id == UnkID:
			marker = " [UNK]"
		case !d.vocab.ContainsID(id):
			marker = " [INVALID]"
		}
		fmt.Fprintf(&sb, "  %d -> '%s'%s\n", id, d.vocab.Token(id), marker)
	}

	sb.WriteString("\nDecoded text: ")
	sb.WriteString(d.Decode(ids))
	return sb.String()
}

// isPunctuation reports whether token is a single non-alphanumeric character.
// Multi-character tokens, <UNK> included, count as words.
func isPunctuation(token string) bool {
	if utf8.RuneCountInString(token) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(token)
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// isOpeningPunctuation reports whether token is one of `( [ { " '`.
func isOpeningPunctuation(token string) bool {
	return token != "" && strings.Contains(openingPunctuation, token)
}
