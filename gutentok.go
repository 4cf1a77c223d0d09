// Package gutentok only holds the version of the gutentok word-level tokenizer toolkit.
//
// There are 3 main sub-packages:
//
//   - corpus: to download and cache plain-text books from Project Gutenberg, and strip their boilerplate.
//   - tokenizers: to create tokenizers by class name.
//   - tokenizers/words: the word-level tokenizer, with its vocabulary, encoder and decoder.
package gutentok

// Version of the library.
// Manually kept in sync with project releases.
var Version = "v0.0.0-dev"
