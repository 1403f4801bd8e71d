package orderly

import (
	"fmt"
	"io"

	"github.com/alecthomas/orderly/lexer"
	"github.com/alecthomas/orderly/lexicon"
)

// A Grammar classifies, validates and derives order sentences.
//
// A Grammar is immutable once constructed and is safe for concurrent use.
type Grammar struct {
	lex         *lexicon.Lexicon
	lexer       *lexer.Lexer
	productions []Production
	ebnf        string
	trace       io.Writer
	shortcut    bool
}

// New creates a Grammar.
//
// The default vocabulary is lexicon.Default(), see WithLexicon.
func New(options ...Option) (*Grammar, error) {
	g := &Grammar{lex: lexicon.Default()}
	for _, option := range options {
		if err := option(g); err != nil {
			return nil, err
		}
	}
	var lexerOptions []lexer.Option
	if g.trace != nil {
		lexerOptions = append(lexerOptions, lexer.Trace(g.trace))
	}
	var err error
	g.lexer, err = lexer.New(g.lex, lexerOptions...)
	if err != nil {
		return nil, err
	}
	g.productions = buildProductions(g)
	g.ebnf = renderEBNF(g.productions)
	if err := verifyEBNF(g.ebnf); err != nil {
		return nil, fmt.Errorf("invalid grammar: %w", err)
	}
	return g, nil
}

// MustNew calls New(options...) and panics if an error occurs.
func MustNew(options ...Option) *Grammar {
	g, err := New(options...)
	if err != nil {
		panic(err)
	}
	return g
}

// Lexicon of the Grammar.
func (g *Grammar) Lexicon() *lexicon.Lexicon { return g.lex }

// Tokenize classifies the words of input. See lexer.Lexer.Tokenize.
func (g *Grammar) Tokenize(input string) lexer.Tokens {
	return g.lexer.Tokenize(input)
}

// Result of parsing a sentence.
type Result struct {
	Input  string
	Tokens lexer.Tokens
	// Derivation is nil if the input was rejected.
	Derivation Derivation
}

// ParseString tokenizes, validates and derives input.
//
// The Result is returned even when an error occurs, so that the classified tokens can be
// reported. The error is ErrNoTokens if no word was classified, or a *MismatchError if the
// tokens were rejected by Validate.
func (g *Grammar) ParseString(input string, options ...ParseOption) (*Result, error) {
	ctx := &parseContext{}
	for _, option := range options {
		option(ctx)
	}
	result := &Result{Input: input, Tokens: g.Tokenize(input)}
	if len(result.Tokens) == 0 {
		return result, ErrNoTokens
	}
	if !ctx.skipValidation {
		if err := g.Validate(result.Tokens); err != nil {
			return result, err
		}
	}
	derivation, err := g.Derive(result.Tokens)
	if err != nil {
		return result, err
	}
	result.Derivation = derivation
	return result, nil
}

func (g *Grammar) tracef(format string, args ...interface{}) {
	if g.trace != nil {
		fmt.Fprintf(g.trace, format+"\n", args...)
	}
}
