package lexer

import (
	"fmt"
	"strings"
)

// Category of a Token.
type Category int

// Token categories, in the order they are checked by the default rules.
const (
	Customer Category = iota
	Title
	Name
	OrderKeyword
	Quantity
	Food
	Drink
	Modifier
	PaymentKeyword
	Payment
	Delimiter
)

var categoryNames = [...]string{
	Customer:       "customer",
	Title:          "title",
	Name:           "name",
	OrderKeyword:   "order-keyword",
	Quantity:       "quantity",
	Food:           "food",
	Drink:          "drink",
	Modifier:       "modifier",
	PaymentKeyword: "payment-keyword",
	Payment:        "payment",
	Delimiter:      "delimiter",
}

// Categories returns every Category.
func Categories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// Name of the category, eg. "drink".
func (c Category) Name() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// String returns the grammar symbol for the category, eg. "<drink>".
func (c Category) String() string { return "<" + c.Name() + ">" }

// A Token classified by a Lexer.
type Token struct {
	// Value is the exact text matched, possibly several words.
	Value    string
	Category Category
}

func (t Token) String() string { return t.Value + " → " + t.Category.String() }

func (t Token) GoString() string {
	return fmt.Sprintf("Token{%s, %q}", t.Category, t.Value)
}

// Tokens in source order.
type Tokens []Token

// Index returns the position of the first token of the given category at or after from, or -1.
func (t Tokens) Index(category Category, from int) int {
	for i := from; i < len(t); i++ {
		if t[i].Category == category {
			return i
		}
	}
	return -1
}

// Has reports whether any token is of the given category.
func (t Tokens) Has(category Category) bool { return t.Index(category, 0) != -1 }

// Contains reports whether any token has exactly the given value.
func (t Tokens) Contains(value string) bool {
	for _, token := range t {
		if token.Value == value {
			return true
		}
	}
	return false
}

// Values returns the text of each token.
func (t Tokens) Values() []string {
	out := make([]string, len(t))
	for i, token := range t {
		out[i] = token.Value
	}
	return out
}

func (t Tokens) String() string { return strings.Join(t.Values(), " ") }
