package lexer

import (
	"strings"

	"github.com/alecthomas/orderly/lexicon"
)

// A Rule classifies the word at words[i].
//
// Match returns the matched text and the number of words it consumed, or a width of 0 if
// the rule does not apply. The width is never more than 1+Lookahead.
type Rule struct {
	Name      string
	Category  Category
	Lookahead int
	Match     func(lex *lexicon.Lexicon, words []string, i int) (value string, width int)
}

// DefaultRules returns the classification rules in priority order.
//
// The order is part of the grammar: a word is classified by the first rule that matches it.
func DefaultRules() []Rule {
	return []Rule{
		word("title", Title, (*lexicon.Lexicon).IsTitle),
		word("name", Name, (*lexicon.Lexicon).IsName),
		word("order-keyword", OrderKeyword, func(lex *lexicon.Lexicon, w string) bool { return w == lex.OrderKeyword() }),
		word("quantity", Quantity, (*lexicon.Lexicon).IsQuantity),
		word("food", Food, (*lexicon.Lexicon).IsFood),
		word("drink", Drink, (*lexicon.Lexicon).IsDrink),
		{Name: "modifier", Category: Modifier, Lookahead: 1, Match: matchModifier},
		{Name: "extra-shot", Category: Modifier, Lookahead: 1, Match: matchExtraShot},
		{Name: "payment-keyword", Category: PaymentKeyword, Lookahead: 2, Match: matchPaymentKeyword},
		{Name: "payment", Category: Payment, Lookahead: 1, Match: matchPayment},
		word("delimiter", Delimiter, func(_ *lexicon.Lexicon, w string) bool { return w == "," }),
	}
}

func word(name string, category Category, member func(lex *lexicon.Lexicon, word string) bool) Rule {
	return Rule{
		Name:     name,
		Category: category,
		Match: func(lex *lexicon.Lexicon, words []string, i int) (string, int) {
			if member(lex, words[i]) {
				return words[i], 1
			}
			return "", 0
		},
	}
}

// phrase joins n words starting at i, if there are that many.
func phrase(words []string, i, n int) (string, bool) {
	if i+n > len(words) {
		return "", false
	}
	return strings.Join(words[i:i+n], " "), true
}

// "with" followed by a word completing a modifier, eg. "with Milk".
func matchModifier(lex *lexicon.Lexicon, words []string, i int) (string, int) {
	if words[i] != "with" {
		return "", 0
	}
	if p, ok := phrase(words, i, 2); ok && lex.IsModifier(p) {
		return p, 2
	}
	return "", 0
}

func matchExtraShot(_ *lexicon.Lexicon, words []string, i int) (string, int) {
	if p, ok := phrase(words, i, 2); ok && p == "extra Shot" {
		return p, 2
	}
	return "", 0
}

func matchPaymentKeyword(lex *lexicon.Lexicon, words []string, i int) (string, int) {
	keyword := lex.PaymentKeyword()
	n := len(strings.Fields(keyword))
	if p, ok := phrase(words, i, n); ok && p == keyword {
		return p, n
	}
	return "", 0
}

// Two word payment methods take precedence over one word methods.
func matchPayment(lex *lexicon.Lexicon, words []string, i int) (string, int) {
	if p, ok := phrase(words, i, 2); ok && lex.IsPayment(p) {
		return p, 2
	}
	if lex.IsPayment(words[i]) {
		return words[i], 1
	}
	return "", 0
}
