package orderly

import (
	"github.com/alecthomas/orderly/lexer"
)

// MinimumTokens is the length below which a sentence is rejected outright.
const MinimumTokens = 5

// Validate checks tokens against the sentence-level acceptance rules, in order:
//
//  1. There are at least MinimumTokens tokens.
//  2. The sentence opens with a customer, either <title> <name> or <name>.
//  3. The order keyword follows the customer.
//  4. The payment keyword phrase occurs somewhere.
//  5. A <payment> occurs somewhere.
//
// The order items are not checked, nor are the positions of the payment clause tokens. A
// sentence with no items is therefore accepted as long as the rest is present.
//
// The first failing rule is returned as a *MismatchError.
func (g *Grammar) Validate(tokens lexer.Tokens) error {
	err := g.validate(tokens)
	if err != nil {
		g.tracef("validate: %s rule failed at token %d", err.Rule, err.Pos)
		return err
	}
	g.tracef("validate: accepted")
	return nil
}

// Accepts reports whether Validate accepts tokens.
func (g *Grammar) Accepts(tokens lexer.Tokens) bool {
	return g.validate(tokens) == nil
}

func (g *Grammar) validate(tokens lexer.Tokens) *MismatchError {
	if len(tokens) < MinimumTokens {
		return mismatchf("length", len(tokens), "expected at least %d tokens but got %d", MinimumTokens, len(tokens))
	}
	cursor := 0
	switch tokens[0].Category {
	case lexer.Title:
		if tokens[1].Category != lexer.Name {
			return mismatchf("customer", 1, "expected %s after %s %q but got %q", lexer.Name, lexer.Title, tokens[0].Value, tokens[1].Value)
		}
		cursor = 2
	case lexer.Name:
		cursor = 1
	default:
		return mismatchf("customer", 0, "expected sentence to start with %s or %s but got %q", lexer.Title, lexer.Name, tokens[0].Value)
	}
	if tokens[cursor].Category != lexer.OrderKeyword {
		return mismatchf("order-keyword", cursor, "expected %q but got %q", g.lex.OrderKeyword(), tokens[cursor].Value)
	}
	if !tokens.Contains(g.lex.PaymentKeyword()) {
		return mismatchf("payment-keyword", len(tokens), "missing %q", g.lex.PaymentKeyword())
	}
	if !tokens.Has(lexer.Payment) {
		return mismatchf("payment", len(tokens), "missing %s", lexer.Payment)
	}
	return nil
}
