package corpus

import "strings"

// Project Gutenberg marker strings delimiting the actual book content.
// Older texts use the "THIS" variants.
const (
	startMarker    = "*** START OF THE PROJECT GUTENBERG EBOOK"
	altStartMarker = "*** START OF THIS PROJECT GUTENBERG EBOOK"
	endMarker      = "*** END OF THE PROJECT GUTENBERG EBOOK"
	altEndMarker   = "*** END OF THIS PROJECT GUTENBERG EBOOK"
)

// StripBoilerplate removes the administrative header and footer Project
// Gutenberg adds around each book (license, credits, terms of use), so they
// don't pollute the vocabulary.
//
// It scans for the standard START/END marker lines. Content begins on the
// line after the start marker and stops before the end marker. A missing
// marker falls back to the beginning or end of the text.
func StripBoilerplate(text string) string {
	start := strings.Index(text, startMarker)
	if start == -1 {
		start = strings.Index(text, altStartMarker)
	}
	if start != -1 {
		// Move past the marker line itself.
		start = strings.Index(text[start:], "\n") + start + 1
	} else {
		start = 0
	}

	end := strings.Index(text, endMarker)
	if end == -1 {
		end = strings.Index(text, altEndMarker)
	}
	if end == -1 || end < start {
		end = len(text)
	}

	return strings.TrimSpace(text[start:end])
}
