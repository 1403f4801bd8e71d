package orderly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/ebnf"
	xebnf "golang.org/x/exp/ebnf"
)

// EBNF returns the grammar in EBNF.
//
// Productions are always upper case. The notation only uses alternation and sequences, so it
// is accepted by both golang.org/x/exp/ebnf and participle's ebnf package.
func (g *Grammar) EBNF() string {
	return g.ebnf
}

// ParseEBNF returns the participle EBNF AST of the grammar.
func (g *Grammar) ParseEBNF() (*ebnf.EBNF, error) {
	return ebnf.ParseString(g.ebnf)
}

// ebnfName converts a symbol name such as "order-item" to a production name, "OrderItem".
func ebnfName(name string) string {
	parts := strings.Split(name, "-")
	for i, part := range parts {
		if part != "" {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, "")
}

func renderEBNF(productions []Production) string {
	out := []string{}
	for _, p := range productions {
		alternatives := make([]string, len(p.Alternatives))
		for i, alternative := range p.Alternatives {
			terms := make([]string, len(alternative))
			for j, symbol := range alternative {
				if symbol.Terminal {
					terms[j] = strconv.Quote(symbol.Value)
				} else {
					terms[j] = ebnfName(symbol.Value)
				}
			}
			alternatives[i] = strings.Join(terms, " ")
		}
		out = append(out, fmt.Sprintf("%s = %s .", ebnfName(p.Name), strings.Join(alternatives, " | ")))
	}
	return strings.Join(out, "\n")
}

// verifyEBNF checks that every production is defined and reachable from the sentence.
func verifyEBNF(src string) error {
	grammar, err := xebnf.Parse("orderly.ebnf", strings.NewReader(src))
	if err != nil {
		return err
	}
	return xebnf.Verify(grammar, ebnfName(SentenceSymbol))
}
