package orderly

import (
	"fmt"
	"io"

	"github.com/alecthomas/orderly/lexicon"
)

// An Option to modify the behaviour of the Grammar.
type Option func(g *Grammar) error

// WithLexicon sets the vocabulary of the grammar. The default is lexicon.Default().
func WithLexicon(lex *lexicon.Lexicon) Option {
	return func(g *Grammar) error {
		if lex == nil {
			return fmt.Errorf("lexicon is required")
		}
		g.lex = lex
		return nil
	}
}

// Trace tokenization and validation to "w".
func Trace(w io.Writer) Option {
	return func(g *Grammar) error {
		g.trace = w
		return nil
	}
}

// Shortcut abbreviates derivations: after the customer is expanded, the next step is the final
// form. That form keeps its nonterminals if the derivation stopped early.
func Shortcut() Option {
	return func(g *Grammar) error {
		g.shortcut = true
		return nil
	}
}

// ParseOption modifies how an individual parse is performed.
type ParseOption func(p *parseContext)

type parseContext struct {
	skipValidation bool
}

// SkipValidation derives the input without first checking it against the acceptance rules.
//
// This is the batch behaviour: every input with at least one token is derived as far as it
// agrees with the grammar.
func SkipValidation() ParseOption {
	return func(p *parseContext) {
		p.skipValidation = true
	}
}
