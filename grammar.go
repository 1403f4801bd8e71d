package orderly

import (
	"strconv"
	"strings"

	"github.com/alecthomas/orderly/lexer"
)

// Nonterminals of the grammar. Terminal categories are named by lexer.Category.Name().
const (
	SentenceSymbol      = "sentence"
	CustomerSymbol      = "customer"
	OrderSymbol         = "order"
	OrderItemSymbol     = "order-item"
	ItemSymbol          = "item"
	PaymentClauseSymbol = "payment-clause"
)

// Symbol in a production or sentential form.
type Symbol struct {
	// Value is the literal text of a terminal, or the name of a nonterminal.
	Value    string
	Terminal bool
}

// N creates a nonterminal Symbol.
func N(name string) Symbol { return Symbol{Value: name} }

// T creates a terminal Symbol.
func T(value string) Symbol { return Symbol{Value: value, Terminal: true} }

func category(c lexer.Category) Symbol { return N(c.Name()) }

func (s Symbol) String() string {
	if s.Terminal {
		return s.Value
	}
	return "<" + s.Value + ">"
}

// Production rule of the grammar.
type Production struct {
	Name         string
	Alternatives [][]Symbol
	// Lexical productions enumerate the lexicon members of a terminal category.
	Lexical bool
}

// String renders the production as "<lhs> → alt | alt".
//
// Terminals of structural productions are quoted, lexicon members are not.
func (p Production) String() string {
	alternatives := make([]string, len(p.Alternatives))
	for i, alternative := range p.Alternatives {
		symbols := make([]string, len(alternative))
		for j, symbol := range alternative {
			if symbol.Terminal && !p.Lexical {
				symbols[j] = strconv.Quote(symbol.Value)
			} else {
				symbols[j] = symbol.String()
			}
		}
		alternatives[i] = strings.Join(symbols, " ")
	}
	return N(p.Name).String() + " → " + strings.Join(alternatives, " | ")
}

// Productions of the grammar, structural rules first followed by the lexical rules.
//
// Alternatives that would need an empty lexicon category are omitted.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// String returns the production rules, one per line.
func (g *Grammar) String() string {
	lines := make([]string, len(g.productions))
	for i, p := range g.productions {
		lines[i] = p.String()
	}
	return strings.Join(lines, "\n")
}

func buildProductions(g *Grammar) []Production {
	lex := g.lex
	var (
		title    = category(lexer.Title)
		name     = category(lexer.Name)
		quantity = category(lexer.Quantity)
		modifier = category(lexer.Modifier)
		payment  = category(lexer.Payment)
	)
	customer := [][]Symbol{{name}}
	if len(lex.Titles()) > 0 {
		customer = [][]Symbol{{title, name}, {name}}
	}
	items := [][]Symbol{}
	if len(lex.Drinks()) > 0 {
		items = append(items, []Symbol{category(lexer.Drink)})
	}
	if len(lex.Foods()) > 0 {
		items = append(items, []Symbol{category(lexer.Food)})
	}
	orderItem := [][]Symbol{{N(ItemSymbol)}}
	if len(lex.Modifiers()) > 0 {
		orderItem = append(orderItem, []Symbol{N(ItemSymbol), modifier})
	}
	if len(lex.Quantities()) > 0 {
		orderItem = append(orderItem, []Symbol{quantity, N(ItemSymbol)})
		if len(lex.Modifiers()) > 0 {
			orderItem = append(orderItem, []Symbol{quantity, N(ItemSymbol), modifier})
		}
	}
	out := []Production{
		{Name: SentenceSymbol, Alternatives: [][]Symbol{
			{N(CustomerSymbol), T(lex.OrderKeyword()), N(OrderSymbol)},
			{N(CustomerSymbol), T(lex.OrderKeyword()), N(OrderSymbol), N(PaymentClauseSymbol)},
		}},
		{Name: CustomerSymbol, Alternatives: customer},
		{Name: OrderSymbol, Alternatives: [][]Symbol{
			{N(OrderItemSymbol)},
			{N(OrderItemSymbol), T(","), N(OrderSymbol)},
		}},
		{Name: OrderItemSymbol, Alternatives: orderItem},
		{Name: ItemSymbol, Alternatives: items},
		{Name: PaymentClauseSymbol, Alternatives: [][]Symbol{{T(lex.PaymentKeyword()), payment}}},
	}
	for _, terminals := range []struct {
		category lexer.Category
		members  []string
	}{
		{lexer.Title, lex.Titles()},
		{lexer.Name, lex.Names()},
		{lexer.Quantity, lex.Quantities()},
		{lexer.Drink, lex.Drinks()},
		{lexer.Food, lex.Foods()},
		{lexer.Modifier, lex.Modifiers()},
		{lexer.Payment, lex.Payments()},
	} {
		if len(terminals.members) == 0 {
			continue
		}
		p := Production{Name: terminals.category.Name(), Lexical: true}
		for _, member := range terminals.members {
			p.Alternatives = append(p.Alternatives, []Symbol{T(member)})
		}
		out = append(out, p)
	}
	return out
}
