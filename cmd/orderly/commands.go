package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/alecthomas/orderly"
	"github.com/alecthomas/orderly/lexer"
	"github.com/alecthomas/orderly/railroad"
)

// Sentences derived by "batch" when none are given.
var examples = []string{
	"Alice orders Coffee",
	"Bob orders Latte, Sandwich with Sugar",
	"Carla orders Espresso, Bagel",
	"David orders Tea, Muffin with Milk",
	"Alice orders Coffee, Muffin, Sandwich extra Shot",
}

type batchCmd struct {
	Sentences []string `arg:"" optional:"" help:"Sentences to derive (defaults to built-in examples)."`
}

func (c *batchCmd) Run(ctx *kong.Context, grammar *orderly.Grammar) error {
	sentences := c.Sentences
	if len(sentences) == 0 {
		sentences = examples
	}
	batch(ctx.Stdout, grammar, sentences)
	return nil
}

type replCmd struct{}

func (c *replCmd) Help() string {
	return `
Reads one sentence per line. Each sentence must name the customer, what they
order and how they pay, eg.

  Bob orders Latte, Sandwich with Sugar and pays using Cash

Type "exit" to quit.
`
}

func (c *replCmd) Run(ctx *kong.Context, grammar *orderly.Grammar) error {
	return repl(os.Stdin, ctx.Stdout, grammar)
}

type grammarCmd struct {
	EBNF bool `help:"Print the grammar as EBNF."`
}

func (c *grammarCmd) Run(ctx *kong.Context, grammar *orderly.Grammar) error {
	if c.EBNF {
		fmt.Fprintln(ctx.Stdout, grammar.EBNF())
		return nil
	}
	fmt.Fprintln(ctx.Stdout, grammar)
	return nil
}

type railroadCmd struct {
	Output string `short:"o" help:"Output file."`
}

func (c *railroadCmd) Run(ctx *kong.Context, grammar *orderly.Grammar) error {
	ast, err := grammar.ParseEBNF()
	if err != nil {
		return err
	}
	out := ctx.Stdout
	if c.Output != "" {
		w, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer w.Close()
		out = w
	}
	_, err = io.WriteString(out, railroad.Generate("orderly", ast))
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stderr, "copy railroad-diagrams.{css,js} from https://github.com/tabatkins/railroad-diagrams")
	return nil
}

// batch derives each sentence independently, without validation.
func batch(w io.Writer, grammar *orderly.Grammar, sentences []string) {
	fmt.Fprintf(w, "Grammar:\n%s\n", grammar)
	for _, sentence := range sentences {
		report(w, grammar, sentence, orderly.SkipValidation())
	}
}

// repl validates and derives one sentence per line of r until "exit" or EOF.
func repl(r io.Reader, w io.Writer, grammar *orderly.Grammar) error {
	fmt.Fprintf(w, "Grammar:\n%s\n", grammar)
	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\n> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "exit") {
			return nil
		}
		if line == "" {
			continue
		}
		if report(w, grammar, line) {
			fmt.Fprintln(w, "✓ Accepted")
		}
	}
}

// report the classification and derivation of a sentence, returning true if it was accepted.
//
// Acceptance is decided by validation alone. A derivation that stops early is noted but does not
// reject the sentence.
func report(w io.Writer, grammar *orderly.Grammar, sentence string, options ...orderly.ParseOption) bool {
	fmt.Fprintf(w, "\n=== %s ===\n", sentence)
	result, err := grammar.ParseString(sentence, options...)
	if len(result.Tokens) > 0 {
		fmt.Fprintln(w, "\nTokens:")
		printTokens(w, result.Tokens)
	}
	var mismatch *orderly.MismatchError
	switch {
	case errors.Is(err, orderly.ErrNoTokens):
		fmt.Fprintln(w, "✗ Rejected: no valid tokens")
		return false
	case errors.As(err, &mismatch):
		fmt.Fprintf(w, "✗ Rejected: input %s\n", mismatch)
		return false
	case err != nil:
		fmt.Fprintf(w, "✗ Rejected: %s\n", err)
		return false
	}
	fmt.Fprintln(w, "\nDerivation:")
	fmt.Fprintln(w, result.Derivation)
	if !result.Derivation.Complete() {
		fmt.Fprintln(w, "⚠ Derivation stopped: the remaining tokens do not follow the grammar")
	}
	return true
}

func printTokens(w io.Writer, tokens lexer.Tokens) {
	width := 0
	for _, token := range tokens {
		if n := len([]rune(token.Value)); n > width {
			width = n
		}
	}
	for _, token := range tokens {
		fmt.Fprintf(w, "%-*s → %s\n", width, token.Value, token.Category)
	}
}
