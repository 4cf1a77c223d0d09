package corpus

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Source identifies one book: where to download it from and the file name
// used to cache it locally.
type Source struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// String implements fmt.Stringer.
func (s Source) String() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Filename
}

// DefaultLibrary returns the books used to train the vocabulary when no
// library file is given.
func DefaultLibrary() []Source {
	return []Source{
		{Title: "Frankenstein", URL: "https://www.gutenberg.org/cache/epub/84/pg84.txt", Filename: "frankenstein.txt"},
		{Title: "Pride and Prejudice", URL: "https://www.gutenberg.org/cache/epub/1342/pg1342.txt", Filename: "pride_and_prejudice.txt"},
		{Title: "Alice's Adventures in Wonderland", URL: "https://www.gutenberg.org/cache/epub/11/pg11.txt", Filename: "alice_in_wonderland.txt"},
	}
}

// ParseLibraryFile parses the given file (holding a JSON list of sources) into a library.
func ParseLibraryFile(filePath string) ([]Source, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %q", filePath)
	}
	library, err := ParseLibraryContent(content)
	if err != nil {
		return nil, errors.WithMessagef(err, "read from file %q", filePath)
	}
	return library, nil
}

// ParseLibraryContent parses the given json content (a list of sources with
// "title", "url" and "filename" fields) into a library.
func ParseLibraryContent(jsonContent []byte) ([]Source, error) {
	var library []Source
	if err := json.Unmarshal(jsonContent, &library); err != nil {
		return nil, errors.Wrapf(err, "failed to parse library json content")
	}
	if len(library) == 0 {
		return nil, errors.Errorf("library holds no sources")
	}
	for i, src := range library {
		if src.URL == "" || src.Filename == "" {
			return nil, errors.Errorf("library source #%d (%q) is missing its url or filename", i, src)
		}
	}
	return library, nil
}
