package words

import "regexp"

// tokenRegexp matches, in order of preference, a run of ASCII letters (a
// word), a run of ASCII digits (a number) or one single punctuation character.
// Input is lowercased before matching, so upper-case ranges are not needed.
// Anything outside these classes (whitespace, unsupported symbols, non-ASCII)
// matches nothing and is skipped.
var tokenRegexp = regexp.MustCompile(`[a-z]+|[0-9]+|[.,!?;:"'()\[\]{}-]`)

// Split breaks text into an ordered sequence of word, number and punctuation
// tokens. The whole input is lowercased first, so "The" and "the" produce the
// same token. Empty input yields no tokens. Split cannot fail.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	return tokenRegexp.FindAllString(lowerASCII(text), -1)
}

// lowerASCII lowercases A-Z only. Non-ASCII letters are never tokenized, so
// there is no need for full Unicode case folding.
func lowerASCII(text string) string {
	hasUpper := false
	for i := 0; i < len(text); i++ {
		if text[i] >= 'A' && text[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return text
	}
	b := []byte(text)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
