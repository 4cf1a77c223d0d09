// Command gutentok downloads a small library of Project Gutenberg books,
// trains a word-level vocabulary on them, and lets the user encode text to
// token ids and decode ids back to text.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gutentok/gutentok"
	"github.com/gutentok/gutentok/corpus"
	"github.com/gutentok/gutentok/tokenizers/words"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	flagCacheDir   string
	flagLibrary    string
	flagNoProgress bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gutentok",
		Short:         "Word-level tokenizer trained on Project Gutenberg books",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := trainTokenizer(cmd)
			if err != nil {
				return err
			}
			return runREPL(tok, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().StringVar(&flagCacheDir, "cache-dir", "",
		"directory where downloaded books are cached (default "+corpus.DefaultCacheDir()+")")
	rootCmd.PersistentFlags().StringVar(&flagLibrary, "library", "",
		"JSON file listing the books to train on, instead of the built-in library")
	rootCmd.PersistentFlags().BoolVar(&flagNoProgress, "no-progress", false,
		"disable the download progress bar")

	rootCmd.AddCommand(newEncodeCommand(), newDecodeCommand(), newVersionCommand())
	return rootCmd
}

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode TEXT...",
		Short: "Train on the library, encode TEXT to token ids, and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := trainTokenizer(cmd)
			if err != nil {
				return err
			}
			text := strings.Join(args, " ")
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), tok.Encoder().EncodeDetails(text))
			fmt.Fprintln(cmd.OutOrStdout(), "Encoded IDs (copy for decoding):", tok.Encoder().EncodeToString(text))
			return nil
		},
	}
}

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode ID...",
		Short: "Train on the library, decode space-separated token ids, and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := trainTokenizer(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), tok.Decoder().DecodeDetails(strings.Join(args, " ")))
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gutentok", gutentok.Version)
		},
	}
}

// trainTokenizer fetches every book of the library (from cache when
// available), strips its boilerplate and trains a fresh tokenizer on it.
// Any acquisition failure aborts: a partial vocabulary is not usable.
func trainTokenizer(cmd *cobra.Command) (*words.Tokenizer, error) {
	library := corpus.DefaultLibrary()
	if flagLibrary != "" {
		var err error
		library, err = corpus.ParseLibraryFile(flagLibrary)
		if err != nil {
			return nil, err
		}
	}

	fetcher := corpus.New().WithProgressBar(!flagNoProgress)
	if flagCacheDir != "" {
		fetcher.WithCacheDir(flagCacheDir)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Downloading and processing books from Project Gutenberg...")
	totalTokens := 0
	tok := words.New()
	for _, src := range library {
		fmt.Fprintln(out, src)
		content, err := fetcher.Fetch(cmd.Context(), src)
		if err != nil {
			return nil, errors.WithMessagef(err, "while acquiring the training corpus")
		}
		stats := tok.Train(corpus.StripBoilerplate(content))
		fmt.Fprintf(out, "  Tokens extracted: %s\n", humanize.Comma(int64(stats.TokenCount)))
		totalTokens += stats.TokenCount
	}

	fmt.Fprintf(out, "\nTotal tokens processed: %s\n", humanize.Comma(int64(totalTokens)))
	fmt.Fprintln(out, tok.Vocab().Stats())
	fmt.Fprintln(out)
	return tok, nil
}
