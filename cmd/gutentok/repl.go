package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gutentok/gutentok/tokenizers/words"
	"github.com/pkg/errors"
)

const menu = `
1) Encode text to token IDs
2) Decode token IDs to text
3) Exit`

// runREPL runs the interactive menu loop until the user exits or the input
// stream closes. End-of-input is a clean termination signal, not an error.
func runREPL(tok *words.Tokenizer, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprintln(out, menu)
		fmt.Fprint(out, "Enter your choice (1-3): ")

		line, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out, "\nInput stream closed. Goodbye!")
			return errors.Wrap(scanner.Err(), "while reading choice")
		}

		switch line {
		case "1":
			if err := handleEncode(tok, scanner, out); err != nil {
				return err
			}
		case "2":
			if err := handleDecode(tok, scanner, out); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(out, "\nInvalid choice. Please enter 1, 2, or 3.")
		}
	}
}

func handleEncode(tok *words.Tokenizer, scanner *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\n=== ENCODE TEXT ===")
	fmt.Fprint(out, "Enter text to encode: ")
	line, ok := readLine(scanner)
	if !ok {
		return errors.Wrap(scanner.Err(), "while reading text to encode")
	}
	if strings.TrimSpace(line) == "" {
		fmt.Fprintln(out, "\nNo input provided.")
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tok.Encoder().EncodeDetails(line))
	fmt.Fprintln(out, "Encoded IDs (copy for decoding):", tok.Encoder().EncodeToString(line))
	return nil
}

func handleDecode(tok *words.Tokenizer, scanner *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, "\n=== DECODE IDs ===")
	fmt.Fprint(out, "Enter space-separated token IDs: ")
	line, ok := readLine(scanner)
	if !ok {
		return errors.Wrap(scanner.Err(), "while reading ids to decode")
	}
	if strings.TrimSpace(line) == "" {
		fmt.Fprintln(out, "\nNo input provided.")
		return nil
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tok.Decoder().DecodeDetails(line))
	return nil
}

// readLine returns the next trimmed input line, or ok=false on end-of-input.
func readLine(scanner *bufio.Scanner) (line string, ok bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}
