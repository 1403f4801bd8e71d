package orderly_test

import (
	"bytes"
	"errors"
	"testing"

	require "github.com/alecthomas/assert/v2"
	"github.com/alecthomas/repr"
	"github.com/sebdah/goldie/v2"

	"github.com/alecthomas/orderly"
	"github.com/alecthomas/orderly/lexer"
	"github.com/alecthomas/orderly/lexicon"
)

func mustGrammar(t *testing.T, options ...orderly.Option) *orderly.Grammar {
	t.Helper()
	g, err := orderly.New(options...)
	require.NoError(t, err)
	return g
}

func tok(category lexer.Category, value string) lexer.Token {
	return lexer.Token{Value: value, Category: category}
}

func TestTokenizeThreeTokens(t *testing.T) {
	g := mustGrammar(t)
	require.Equal(t, lexer.Tokens{
		tok(lexer.Name, "Alice"), tok(lexer.OrderKeyword, "orders"), tok(lexer.Drink, "Coffee"),
	}, g.Tokenize("Alice orders Coffee"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rule  string
		pos   int
		err   string
	}{
		{name: "Full", input: "Bob orders Latte, Sandwich with Sugar and pays using Cash"},
		{name: "Title", input: "Dr David orders Tea and pays using Credit Card"},
		{name: "NoItems", input: "Mr Bob orders and pays using Cash"},
		{name: "PaymentClauseAnywhere", input: "Alice orders Cash Coffee and pays using"},
		{name: "TooShort", input: "Alice orders Coffee and pays",
			rule: "length", pos: 3, err: "does not match the grammar: expected at least 5 tokens but got 3"},
		{name: "NoCustomer", input: "Coffee orders Latte and pays using Cash",
			rule: "customer", pos: 0, err: `does not match the grammar: expected sentence to start with <title> or <name> but got "Coffee"`},
		{name: "TitleWithoutName", input: "Dr orders Latte and pays using Cash",
			rule: "customer", pos: 1, err: `does not match the grammar: expected <name> after <title> "Dr" but got "orders"`},
		{name: "NoOrderKeyword", input: "Alice wants Latte, Bagel and pays using Cash",
			rule: "order-keyword", pos: 1, err: `does not match the grammar: expected "orders" but got "Latte"`},
		{name: "NoPaymentKeyword", input: "Alice orders Latte, Bagel, Tea, Cash",
			rule: "payment-keyword", pos: 9, err: `does not match the grammar: missing "and pays using"`},
		{name: "NoPayment", input: "Alice orders Latte, Bagel and pays using cheque",
			rule: "payment", pos: 6, err: "does not match the grammar: missing <payment>"},
	}
	g := mustGrammar(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokens := g.Tokenize(test.input)
			err := g.Validate(tokens)
			if test.err == "" {
				require.NoError(t, err, repr.String(tokens))
				require.True(t, g.Accepts(tokens))
				return
			}
			require.EqualError(t, err, test.err)
			require.False(t, g.Accepts(tokens))
			var mismatch *orderly.MismatchError
			require.True(t, errors.As(err, &mismatch))
			require.Equal(t, test.rule, mismatch.Rule)
			require.Equal(t, test.pos, mismatch.Position())
		})
	}
}

func TestValidateRejectsShortSequences(t *testing.T) {
	g := mustGrammar(t)
	tokens := lexer.Tokens{
		tok(lexer.Name, "Alice"), tok(lexer.OrderKeyword, "orders"),
		tok(lexer.PaymentKeyword, "and pays using"), tok(lexer.Payment, "Cash"),
	}
	for i := 0; i <= len(tokens); i++ {
		require.False(t, g.Accepts(tokens[:i]))
	}
}

func TestDeriveFinalForm(t *testing.T) {
	g := mustGrammar(t)
	d, err := g.Derive(g.Tokenize("Bob orders Latte, Sandwich with Sugar"))
	require.NoError(t, err)
	require.True(t, d.Complete())
	require.Equal(t, "Bob orders Latte , Sandwich with Sugar", d.Final().String())
}

func TestDeriveTwoItems(t *testing.T) {
	g := mustGrammar(t)
	tokens := g.Tokenize("Carla orders Espresso, Bagel")
	require.Equal(t, lexer.Tokens{
		tok(lexer.Name, "Carla"), tok(lexer.OrderKeyword, "orders"), tok(lexer.Drink, "Espresso"),
		tok(lexer.Delimiter, ","), tok(lexer.Food, "Bagel"),
	}, tokens)
	d, err := g.Derive(tokens)
	require.NoError(t, err)
	expanded := map[string][]string{}
	for _, step := range d {
		expanded[step.LHS] = append(expanded[step.LHS], orderly.Step{Form: step.RHS}.String())
	}
	require.Equal(t, []string{"<drink>", "<food>"}, expanded[orderly.ItemSymbol])
	require.Equal(t, []string{"<order-item> , <order>", "<order-item>"}, expanded[orderly.OrderSymbol])
	require.Equal(t, []string(nil), expanded[lexer.Modifier.Name()])
	require.Equal(t, "Carla orders Espresso , Bagel", d.Final().String())
	require.True(t, d.Complete())
}

func TestDeriveLeftmost(t *testing.T) {
	g := mustGrammar(t)
	d, err := g.Derive(g.Tokenize("Mr Bob orders one Latte extra Shot, Tea, Muffin with Milk and pays using Cash"))
	require.NoError(t, err)
	require.True(t, d.Complete())
	for i, step := range d[1:] {
		prev := d[i].Form
		// The expanded nonterminal is the leftmost one of the previous form.
		at := -1
		for j, symbol := range prev {
			if !symbol.Terminal {
				at = j
				break
			}
		}
		require.NotEqual(t, -1, at)
		require.Equal(t, step.LHS, prev[at].Value)
		require.Equal(t, len(prev)-1+len(step.RHS), len(step.Form))
		require.Equal(t, prev[:at], step.Form[:at])
	}
}

func TestDeriveGolden(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		options []orderly.Option
	}{
		{"derive-modifier", "Bob orders Latte, Sandwich with Sugar", nil},
		{"derive-payment", "Dr David orders two Tea with Milk, Bagel and pays using Credit Card", nil},
		{"derive-shortcut", "Dr David orders two Tea with Milk, Bagel and pays using Credit Card", []orderly.Option{orderly.Shortcut()}},
	}
	gold := goldie.New(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := mustGrammar(t, test.options...)
			result, err := g.ParseString(test.input, orderly.SkipValidation())
			require.NoError(t, err)
			gold.Assert(t, test.name, []byte(result.Derivation.String()+"\n"))
		})
	}
}

func TestDeriveIncomplete(t *testing.T) {
	tests := []struct {
		name  string
		input string
		final string
	}{
		{"NoCustomer", "orders Coffee", "<customer> orders <order>"},
		{"TitleOnly", "Dr orders Coffee", "<customer> orders <order>"},
		{"NoOrderKeyword", "Alice Coffee", "Alice orders <order>"},
		{"NoItems", "Alice orders and pays using Cash", "Alice orders <order> <payment-clause>"},
		{"SecondItemMissing", "Alice orders Coffee, Cash", "Alice orders Coffee , <order>"},
		{"NoPayment", "Alice orders Coffee and pays using", "Alice orders Coffee and pays using <payment>"},
	}
	g := mustGrammar(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := g.Derive(g.Tokenize(test.input))
			require.NoError(t, err)
			require.False(t, d.Complete())
			require.Equal(t, test.final, d.Final().String())
		})
	}
}

func TestDeriveShortcut(t *testing.T) {
	g := mustGrammar(t, orderly.Shortcut())
	tests := []struct {
		name     string
		input    string
		lines    []string
		complete bool
	}{
		{"Complete", "Bob orders Latte, Sandwich with Sugar and pays using Cash", []string{
			"<sentence>",
			"→ <customer> orders <order> <payment-clause>",
			"→ <name> orders <order> <payment-clause>",
			"→ Bob orders <order> <payment-clause>",
			"→ Bob orders Latte , Sandwich with Sugar and pays using Cash",
		}, true},
		{"SecondItemMissing", "Alice orders Coffee, Cash", []string{
			"<sentence>",
			"→ <customer> orders <order>",
			"→ <name> orders <order>",
			"→ Alice orders <order>",
			"→ Alice orders Coffee , <order>",
		}, false},
		{"NoItems", "Mr Bob orders and pays using Cash", []string{
			"<sentence>",
			"→ <customer> orders <order> <payment-clause>",
			"→ <title> <name> orders <order> <payment-clause>",
			"→ Mr <name> orders <order> <payment-clause>",
			"→ Mr Bob orders <order> <payment-clause>",
		}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := g.Derive(g.Tokenize(test.input))
			require.NoError(t, err)
			require.Equal(t, test.lines, d.Lines())
			require.Equal(t, test.complete, d.Complete())
		})
	}

	d, err := g.Derive(g.Tokenize("Alice orders Coffee, Cash"))
	require.NoError(t, err)
	require.Equal(t, "", d.Final().LHS)
	require.Equal(t, "Coffee , <order>", orderly.Step{Form: d.Final().RHS}.String())
}

func TestDeriveIgnoresTrailingDelimiter(t *testing.T) {
	g := mustGrammar(t)
	d, err := g.Derive(g.Tokenize("Alice orders Coffee,"))
	require.NoError(t, err)
	require.True(t, d.Complete())
	require.Equal(t, "Alice orders Coffee", d.Final().String())
}

func TestDeriveNoTokens(t *testing.T) {
	g := mustGrammar(t)
	_, err := g.Derive(nil)
	require.IsError(t, err, orderly.ErrNoTokens)
	require.False(t, orderly.Derivation(nil).Complete())
}

func TestDerivationLines(t *testing.T) {
	g := mustGrammar(t)
	d, err := g.Derive(g.Tokenize("Alice orders Coffee"))
	require.NoError(t, err)
	require.Equal(t, []string{
		"<sentence>",
		"→ <customer> orders <order>",
		"→ <name> orders <order>",
		"→ Alice orders <order>",
		"→ Alice orders <order-item>",
		"→ Alice orders <item>",
		"→ Alice orders <drink>",
		"→ Alice orders Coffee",
	}, d.Lines())
}

func TestParseString(t *testing.T) {
	g := mustGrammar(t)

	result, err := g.ParseString("hello there")
	require.IsError(t, err, orderly.ErrNoTokens)
	require.Equal(t, 0, len(result.Tokens))
	require.Equal(t, orderly.Derivation(nil), result.Derivation)

	result, err = g.ParseString("Alice orders Coffee")
	require.Error(t, err)
	var mismatch orderly.Error
	require.True(t, errors.As(err, &mismatch))
	require.Equal(t, "expected at least 5 tokens but got 3", mismatch.Message())
	require.Equal(t, 3, len(result.Tokens))
	require.Equal(t, orderly.Derivation(nil), result.Derivation)

	result, err = g.ParseString("Alice orders Coffee", orderly.SkipValidation())
	require.NoError(t, err)
	require.True(t, result.Derivation.Complete())

	result, err = g.ParseString("Alice orders Coffee and pays using Cash")
	require.NoError(t, err)
	require.Equal(t, "Alice orders Coffee and pays using Cash", result.Derivation.Final().String())
}

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	g := mustGrammar(t, orderly.Trace(w))
	_, err := g.ParseString("Alice orders Coffee")
	require.Error(t, err)
	require.Equal(t, `"Alice" <name> (name)
"orders" <order-keyword> (order-keyword)
"Coffee" <drink> (drink)
validate: length rule failed at token 3
`, w.String())
}

func TestNewWithLexicon(t *testing.T) {
	lex, err := lexicon.New(lexicon.Config{
		Names:          []string{"Eve"},
		OrderKeyword:   "wants",
		Foods:          []string{"Scone"},
		PaymentKeyword: "and pays with",
		Payments:       []string{"Cash"},
	})
	require.NoError(t, err)
	g := mustGrammar(t, orderly.WithLexicon(lex))
	require.Equal(t, lex, g.Lexicon())
	result, err := g.ParseString("Eve wants Scone, Scone and pays with Cash")
	require.NoError(t, err)
	require.Equal(t, "Eve wants Scone , Scone and pays with Cash", result.Derivation.Final().String())

	_, err = orderly.New(orderly.WithLexicon(nil))
	require.EqualError(t, err, "lexicon is required")
}
