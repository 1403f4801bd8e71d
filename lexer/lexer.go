package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/orderly/lexicon"
)

// An Option to modify the behaviour of the Lexer.
type Option func(l *Lexer) error

// Trace each classification decision to w.
func Trace(w io.Writer) Option {
	return func(l *Lexer) error {
		l.trace = w
		return nil
	}
}

// Rules replaces the default classification rules.
func Rules(rules ...Rule) Option {
	return func(l *Lexer) error {
		for _, rule := range rules {
			if rule.Match == nil {
				return fmt.Errorf("rule %q has no matcher", rule.Name)
			}
		}
		l.rules = rules
		return nil
	}
}

// Lexer classifies order sentences against a Lexicon.
//
// A Lexer holds no per-input state and is safe for concurrent use.
type Lexer struct {
	lex   *lexicon.Lexicon
	rules []Rule
	trace io.Writer
}

// New creates a Lexer for the given vocabulary.
func New(lex *lexicon.Lexicon, options ...Option) (*Lexer, error) {
	if lex == nil {
		return nil, fmt.Errorf("lexicon is required")
	}
	l := &Lexer{lex: lex, rules: DefaultRules()}
	for _, option := range options {
		if err := option(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Must takes the result of New and panics if it errored.
func Must(l *Lexer, err error) *Lexer {
	if err != nil {
		panic(err)
	}
	return l
}

// Lexicon the Lexer classifies against.
func (l *Lexer) Lexicon() *lexicon.Lexicon { return l.lex }

// RuleNames returns the names of the classification rules in priority order.
func (l *Lexer) RuleNames() []string {
	out := make([]string, len(l.rules))
	for i, rule := range l.rules {
		out[i] = rule.Name
	}
	return out
}

// Tokenize classifies the words of input.
//
// The input is split into comma separated segments, each of which is split into words. Words
// that match no rule are silently dropped, so the result may be shorter than the input. A ","
// Delimiter token separates the tokens of consecutive segments.
func (l *Lexer) Tokenize(input string) Tokens {
	tokens := Tokens{}
	segments := strings.Split(input, ",")
	for s, segment := range segments {
		words := strings.Fields(segment)
		for i := 0; i < len(words); {
			token, width, rule := l.classify(words, i)
			if width == 0 {
				l.tracef("%q dropped", words[i])
				i++
				continue
			}
			l.tracef("%q %s (%s)", token.Value, token.Category, rule)
			tokens = append(tokens, token)
			i += width
		}
		if s < len(segments)-1 {
			tokens = append(tokens, Token{Value: ",", Category: Delimiter})
		}
	}
	return tokens
}

func (l *Lexer) classify(words []string, i int) (Token, int, string) {
	for _, rule := range l.rules {
		value, width := rule.Match(l.lex, words, i)
		if width > 0 {
			return Token{Value: value, Category: rule.Category}, width, rule.Name
		}
	}
	return Token{}, 0, ""
}

func (l *Lexer) tracef(format string, args ...interface{}) {
	if l.trace != nil {
		fmt.Fprintf(l.trace, format+"\n", args...)
	}
}
