// Package lexicon contains the vocabulary tables of the order grammar.
//
// A Lexicon maps each terminal category to the surface strings it recognises.
// It is immutable once constructed and may be shared freely.
package lexicon

import (
	"fmt"
	"strings"
)

// Config is the serialised form of a Lexicon.
type Config struct {
	Titles         []string `yaml:"titles" toml:"titles" json:"titles"`
	Names          []string `yaml:"names" toml:"names" json:"names"`
	OrderKeyword   string   `yaml:"order_keyword" toml:"order_keyword" json:"order_keyword"`
	Quantities     []string `yaml:"quantities" toml:"quantities" json:"quantities"`
	Foods          []string `yaml:"foods" toml:"foods" json:"foods"`
	Drinks         []string `yaml:"drinks" toml:"drinks" json:"drinks"`
	Modifiers      []string `yaml:"modifiers" toml:"modifiers" json:"modifiers"`
	PaymentKeyword string   `yaml:"payment_keyword" toml:"payment_keyword" json:"payment_keyword"`
	Payments       []string `yaml:"payments" toml:"payments" json:"payments"`
}

// A set of surface strings that remembers insertion order.
type set struct {
	order   []string
	members map[string]bool
}

func newSet(values []string) set {
	s := set{members: make(map[string]bool, len(values))}
	for _, v := range values {
		if s.members[v] {
			continue
		}
		s.members[v] = true
		s.order = append(s.order, v)
	}
	return s
}

func (s set) list() []string { return append([]string(nil), s.order...) }

// Lexicon is the immutable vocabulary of the grammar.
type Lexicon struct {
	titles         set
	names          set
	quantities     set
	foods          set
	drinks         set
	modifiers      set
	payments       set
	orderKeyword   string
	paymentKeyword string
}

// New validates config and constructs a Lexicon from it.
func New(config Config) (*Lexicon, error) {
	if err := check(config); err != nil {
		return nil, err
	}
	return &Lexicon{
		titles:         newSet(config.Titles),
		names:          newSet(config.Names),
		quantities:     newSet(config.Quantities),
		foods:          newSet(config.Foods),
		drinks:         newSet(config.Drinks),
		modifiers:      newSet(config.Modifiers),
		payments:       newSet(config.Payments),
		orderKeyword:   config.OrderKeyword,
		paymentKeyword: config.PaymentKeyword,
	}, nil
}

// Must takes the result of a Lexicon constructor and panics if it errored.
//
// eg.
//
//	lex = lexicon.Must(lexicon.Load("menu.yaml"))
func Must(lex *Lexicon, err error) *Lexicon {
	if err != nil {
		panic(err)
	}
	return lex
}

// IsTitle reports whether word is a title, eg. "Dr".
func (l *Lexicon) IsTitle(word string) bool { return l.titles.members[word] }

// IsName reports whether word is a customer name.
func (l *Lexicon) IsName(word string) bool { return l.names.members[word] }

// IsQuantity reports whether word is a quantity, eg. "two".
func (l *Lexicon) IsQuantity(word string) bool { return l.quantities.members[word] }

// IsFood reports whether word is a food item.
func (l *Lexicon) IsFood(word string) bool { return l.foods.members[word] }

// IsDrink reports whether word is a drink item.
func (l *Lexicon) IsDrink(word string) bool { return l.drinks.members[word] }

// IsModifier reports whether phrase is a modifier, eg. "with Milk".
func (l *Lexicon) IsModifier(phrase string) bool { return l.modifiers.members[phrase] }

// IsPayment reports whether phrase is a payment method, eg. "Cash" or "Credit Card".
func (l *Lexicon) IsPayment(phrase string) bool { return l.payments.members[phrase] }

// Titles in configuration order. The returned slice is a copy, as for the accessors below.
func (l *Lexicon) Titles() []string { return l.titles.list() }

// Names of customers.
func (l *Lexicon) Names() []string { return l.names.list() }

// Quantities that may precede an item.
func (l *Lexicon) Quantities() []string { return l.quantities.list() }

// Foods on the menu.
func (l *Lexicon) Foods() []string { return l.foods.list() }

// Drinks on the menu.
func (l *Lexicon) Drinks() []string { return l.drinks.list() }

// Modifiers, each of two words.
func (l *Lexicon) Modifiers() []string { return l.modifiers.list() }

// Payments lists the payment methods, each of one or two words.
func (l *Lexicon) Payments() []string { return l.payments.list() }

// OrderKeyword is the single word joining the customer to the order, eg. "orders".
func (l *Lexicon) OrderKeyword() string { return l.orderKeyword }

// PaymentKeyword is the phrase introducing the payment clause, eg. "and pays using".
func (l *Lexicon) PaymentKeyword() string { return l.paymentKeyword }

// Config returns a copy of the configuration the Lexicon was built from.
func (l *Lexicon) Config() Config {
	return Config{
		Titles:         l.Titles(),
		Names:          l.Names(),
		OrderKeyword:   l.orderKeyword,
		Quantities:     l.Quantities(),
		Foods:          l.Foods(),
		Drinks:         l.Drinks(),
		Modifiers:      l.Modifiers(),
		PaymentKeyword: l.paymentKeyword,
		Payments:       l.Payments(),
	}
}

func check(config Config) error {
	if len(config.Names) == 0 {
		return fmt.Errorf("names: at least one name is required")
	}
	if len(config.Foods)+len(config.Drinks) == 0 {
		return fmt.Errorf("foods, drinks: at least one item is required")
	}
	if config.OrderKeyword == "" {
		return fmt.Errorf("order_keyword: required")
	}
	if n := words(config.OrderKeyword); n != 1 {
		return fmt.Errorf("order_keyword: %q must be a single word", config.OrderKeyword)
	}
	if config.PaymentKeyword == "" {
		return fmt.Errorf("payment_keyword: required")
	}
	if n := words(config.PaymentKeyword); n != 3 {
		return fmt.Errorf("payment_keyword: %q must be three words, not %d", config.PaymentKeyword, n)
	}
	if len(config.Payments) == 0 {
		return fmt.Errorf("payments: at least one payment method is required")
	}
	single := []struct {
		field  string
		values []string
	}{
		{"titles", config.Titles},
		{"names", config.Names},
		{"quantities", config.Quantities},
		{"foods", config.Foods},
		{"drinks", config.Drinks},
	}
	owner := map[string]string{config.OrderKeyword: "order_keyword"}
	for _, s := range single {
		for _, v := range s.values {
			if words(v) != 1 {
				return fmt.Errorf("%s: %q must be a single word", s.field, v)
			}
			if prev, ok := owner[v]; ok && prev != s.field {
				return fmt.Errorf("%s: %q is already a member of %s", s.field, v, prev)
			}
			owner[v] = s.field
		}
	}
	for _, v := range config.Modifiers {
		if words(v) != 2 {
			return fmt.Errorf("modifiers: %q must be two words", v)
		}
	}
	for _, v := range config.Payments {
		if n := words(v); n < 1 || n > 2 {
			return fmt.Errorf("payments: %q must be one or two words", v)
		}
		if n := words(v); n == 1 {
			if prev, ok := owner[v]; ok {
				return fmt.Errorf("payments: %q is already a member of %s", v, prev)
			}
		}
	}
	return nil
}

// words counts the whitespace delimited words in s, requiring single spaces between them.
func words(s string) int {
	fields := strings.Fields(s)
	if strings.Join(fields, " ") != s {
		return -1
	}
	return len(fields)
}
