package orderly

import (
	"fmt"
	"strings"

	"github.com/alecthomas/orderly/lexer"
)

// Step of a leftmost derivation.
type Step struct {
	// LHS is the nonterminal that was expanded. It is empty for the first step, and for an
	// abbreviated step replacing every remaining nonterminal at once.
	LHS string
	// RHS replaced the leftmost occurrence of LHS.
	RHS []Symbol
	// Form is the sentential form after the step.
	Form []Symbol
}

// String renders the sentential form, eg. "Bob orders <order>".
func (s Step) String() string {
	parts := make([]string, len(s.Form))
	for i, symbol := range s.Form {
		parts[i] = symbol.String()
	}
	return strings.Join(parts, " ")
}

// Derivation is the sequence of sentential forms from <sentence> to the input.
type Derivation []Step

// Final step of the derivation.
func (d Derivation) Final() Step {
	if len(d) == 0 {
		return Step{}
	}
	return d[len(d)-1]
}

// Complete reports whether the final form consists only of terminals.
//
// A derivation stops early at the first point where the tokens disagree with the grammar.
func (d Derivation) Complete() bool {
	if len(d) == 0 {
		return false
	}
	for _, symbol := range d.Final().Form {
		if !symbol.Terminal {
			return false
		}
	}
	return true
}

// Lines renders each step on its own line. Every line after the first starts with "→ ".
func (d Derivation) Lines() []string {
	out := make([]string, len(d))
	for i, step := range d {
		if i == 0 {
			out[i] = step.String()
		} else {
			out[i] = "→ " + step.String()
		}
	}
	return out
}

func (d Derivation) String() string { return strings.Join(d.Lines(), "\n") }

// Derive replays the leftmost derivation of tokens from <sentence>.
//
// Tokens are usually validated first, but need not be: derivation proceeds as far as the tokens
// agree with the grammar and stops at the first disagreement, leaving the derivation incomplete.
// Tokens following an item in the same comma separated segment are ignored.
func (g *Grammar) Derive(tokens lexer.Tokens) (Derivation, error) {
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}
	d := &deriver{
		tokens: tokens,
		form:   []Symbol{N(SentenceSymbol)},
	}
	d.steps = Derivation{{Form: d.form}}

	// The order ends where the payment clause begins.
	end := tokens.Index(lexer.PaymentKeyword, 0)
	paying := end != -1
	if !paying {
		end = len(tokens)
	}
	if paying {
		d.expand(SentenceSymbol, N(CustomerSymbol), T(g.lex.OrderKeyword()), N(OrderSymbol), N(PaymentClauseSymbol))
	} else {
		d.expand(SentenceSymbol, N(CustomerSymbol), T(g.lex.OrderKeyword()), N(OrderSymbol))
	}

	cursor, ok := d.customer()
	if !ok {
		return d.steps, nil
	}
	if cursor >= len(tokens) || tokens[cursor].Category != lexer.OrderKeyword {
		return d.steps, nil
	}
	cursor++

	mark := len(d.steps)
	if d.order(cursor, end) && paying {
		d.paymentClause(end)
	}
	if g.shortcut {
		d.abbreviate(mark)
	}
	return d.steps, nil
}

type deriver struct {
	tokens lexer.Tokens
	form   []Symbol
	steps  Derivation
}

// expand replaces the leftmost nonterminal, which must be lhs, with rhs.
func (d *deriver) expand(lhs string, rhs ...Symbol) {
	i := d.leftmost()
	if i == -1 || d.form[i].Value != lhs {
		panic(fmt.Sprintf("expected <%s> to be the leftmost nonterminal of %q", lhs, Step{Form: d.form}.String()))
	}
	form := make([]Symbol, 0, len(d.form)+len(rhs)-1)
	form = append(form, d.form[:i]...)
	form = append(form, rhs...)
	form = append(form, d.form[i+1:]...)
	d.form = form
	d.steps = append(d.steps, Step{LHS: lhs, RHS: rhs, Form: form})
}

// substitute the literal value of token for its category nonterminal.
func (d *deriver) substitute(token lexer.Token) {
	d.expand(token.Category.Name(), T(token.Value))
}

func (d *deriver) leftmost() int {
	for i, symbol := range d.form {
		if !symbol.Terminal {
			return i
		}
	}
	return -1
}

func (d *deriver) is(i int, category lexer.Category) bool {
	return i < len(d.tokens) && d.tokens[i].Category == category
}

// customer expands <customer> and returns the index of the token following it.
func (d *deriver) customer() (int, bool) {
	switch {
	case d.is(0, lexer.Title) && d.is(1, lexer.Name):
		d.expand(CustomerSymbol, category(lexer.Title), category(lexer.Name))
		d.substitute(d.tokens[0])
		d.substitute(d.tokens[1])
		return 2, true
	case d.is(0, lexer.Name):
		d.expand(CustomerSymbol, category(lexer.Name))
		d.substitute(d.tokens[0])
		return 1, true
	}
	return 0, false
}

// order expands <order> over tokens[start:end], recursing once per comma separated item.
func (d *deriver) order(start, end int) bool {
	item, ok := d.item(start, end)
	if !ok {
		return false
	}
	next := d.tokens[:end].Index(lexer.Delimiter, item)
	if next != -1 && next+1 < end {
		d.expand(OrderSymbol, N(OrderItemSymbol), T(","), N(OrderSymbol))
		d.orderItem(start, item)
		return d.order(next+1, end)
	}
	d.expand(OrderSymbol, N(OrderItemSymbol))
	d.orderItem(start, item)
	return true
}

// item locates the item of the order item starting at start, skipping a leading quantity.
func (d *deriver) item(start, end int) (int, bool) {
	i := start
	if i < end && d.is(i, lexer.Quantity) {
		i++
	}
	if i < end && (d.is(i, lexer.Drink) || d.is(i, lexer.Food)) {
		return i, true
	}
	return 0, false
}

func (d *deriver) orderItem(start, item int) {
	quantity := item > start
	modifier := d.is(item+1, lexer.Modifier)
	rhs := []Symbol{}
	if quantity {
		rhs = append(rhs, category(lexer.Quantity))
	}
	rhs = append(rhs, N(ItemSymbol))
	if modifier {
		rhs = append(rhs, category(lexer.Modifier))
	}
	d.expand(OrderItemSymbol, rhs...)
	if quantity {
		d.substitute(d.tokens[start])
	}
	d.expand(ItemSymbol, category(d.tokens[item].Category))
	d.substitute(d.tokens[item])
	if modifier {
		d.substitute(d.tokens[item+1])
	}
}

// paymentClause expands <payment-clause> using the payment keyword at index at.
func (d *deriver) paymentClause(at int) {
	d.expand(PaymentClauseSymbol, T(d.tokens[at].Value), category(lexer.Payment))
	if payment := d.tokens.Index(lexer.Payment, at+1); payment != -1 {
		d.substitute(d.tokens[payment])
	}
}

// abbreviate collapses the steps following steps[mark-1] into a single step to the final form.
//
// If the derivation stopped early the final form still contains nonterminals.
func (d *deriver) abbreviate(mark int) {
	if len(d.steps) <= mark {
		return
	}
	at := 0
	for _, symbol := range d.steps[mark-1].Form {
		if !symbol.Terminal {
			break
		}
		at++
	}
	rhs := append([]Symbol{}, d.form[at:]...)
	d.steps = append(d.steps[:mark], Step{RHS: rhs, Form: d.form})
}
