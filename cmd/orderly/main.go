// Command orderly classifies café order sentences and prints their leftmost derivations.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/alecthomas/orderly"
	"github.com/alecthomas/orderly/lexicon"
)

var (
	version string = "dev"
	cli     struct {
		Version kong.VersionFlag
		Lexicon string `short:"l" type:"existingfile" help:"Vocabulary file (.yaml, .yml, .toml or .json)."`
		Trace   bool   `help:"Trace classification and validation to stderr."`
		Short   bool   `help:"Abbreviate derivations after the customer."`

		Batch    batchCmd    `cmd:"" default:"withargs" help:"Derive sentences without validating them."`
		Repl     replCmd     `cmd:"" help:"Read sentences from stdin, validating and deriving each."`
		Grammar  grammarCmd  `cmd:"" help:"Print the grammar."`
		Railroad railroadCmd `cmd:"" help:"Generate HTML railroad diagrams of the grammar."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`Classify café order sentences and derive them from the order grammar.`),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	grammar, err := newGrammar(cli.Lexicon, cli.Trace, cli.Short)
	kctx.FatalIfErrorf(err)
	err = kctx.Run(grammar)
	kctx.FatalIfErrorf(err)
}

func newGrammar(path string, trace, short bool) (*orderly.Grammar, error) {
	options := []orderly.Option{}
	if path != "" {
		lex, err := lexicon.Load(path)
		if err != nil {
			return nil, err
		}
		options = append(options, orderly.WithLexicon(lex))
	}
	if trace {
		options = append(options, orderly.Trace(os.Stderr))
	}
	if short {
		options = append(options, orderly.Shortcut())
	}
	return orderly.New(options...)
}
