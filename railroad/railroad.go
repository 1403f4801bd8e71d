// Package railroad renders railroad diagrams of a grammar from its EBNF.
//
// The output is an HTML page using https://github.com/tabatkins/railroad-diagrams, which must be
// available alongside it as railroad-diagrams.{css,js}.
package railroad

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/ebnf"
	"github.com/alecthomas/repr"
)

type production struct {
	*ebnf.Production
	refs int
	// Productions made only of literals.
	literal bool
}

type generator struct {
	productions map[string]*production
	out         strings.Builder
}

// Generate an HTML page with one diagram per production of grammar.
//
// Productions consisting only of literals and referenced exactly once are drawn inline at their
// point of use rather than as a separate diagram.
func Generate(title string, grammar *ebnf.EBNF) string {
	g := &generator{productions: map[string]*production{}}
	for _, p := range grammar.Productions {
		g.productions[p.Production] = &production{Production: p, literal: literalOnly(p.Expression)}
	}
	for _, p := range grammar.Productions {
		g.count(p.Expression)
	}
	fmt.Fprintf(&g.out, `<!DOCTYPE html>
<title>%s</title>
<style>
body {
	background-color: hsl(30,20%%, 95%%);
}
h1 {
	font-family: sans-serif;
	font-size: 1em;
}
</style>
<link rel='stylesheet' href='railroad-diagrams.css'>
<script src='railroad-diagrams.js'></script>
<body>
`, title)
	for _, p := range grammar.Productions {
		if g.inline(p.Production) {
			continue
		}
		fmt.Fprintf(&g.out, "<h1 id=%q>%s</h1>\n<script>\nDiagram(%s).addTo();\n</script>\n",
			p.Production, p.Production, g.generate(p.Expression))
	}
	g.out.WriteString("</body>\n")
	return g.out.String()
}

func (g *generator) inline(name string) bool {
	p, ok := g.productions[name]
	return ok && p.literal && p.refs == 1
}

func (g *generator) generate(n ebnf.Node) string {
	switch n := n.(type) {
	case *ebnf.Expression:
		alternatives := make([]string, len(n.Alternatives))
		for i, a := range n.Alternatives {
			alternatives[i] = g.generate(a)
		}
		if len(alternatives) == 1 {
			return alternatives[0]
		}
		return "Choice(0, " + strings.Join(alternatives, ", ") + ")"

	case *ebnf.SubExpression:
		return g.generate(n.Expr)

	case *ebnf.Sequence:
		terms := make([]string, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = g.generate(t)
		}
		if len(terms) == 1 {
			return terms[0]
		}
		return "Sequence(" + strings.Join(terms, ", ") + ")"

	case *ebnf.Term:
		var s string
		switch {
		case n.Name != "" && g.inline(n.Name):
			s = g.generate(g.productions[n.Name].Expression)
		case n.Name != "":
			s = fmt.Sprintf("NonTerminal(%q, {href:\"#%s\"})", n.Name, n.Name)
		case n.Group != nil:
			s = g.generate(n.Group)
		case n.Literal != "":
			s = fmt.Sprintf("Terminal(%s)", n.Literal)
		case n.Token != "":
			s = fmt.Sprintf("NonTerminal(%q)", n.Token)
		default:
			panic(repr.String(n))
		}
		switch n.Repetition {
		case "*":
			s = "ZeroOrMore(" + s + ")"
		case "+":
			s = "OneOrMore(" + s + ")"
		case "?":
			s = "Optional(" + s + ")"
		}
		return s

	default:
		panic(repr.String(n))
	}
}

func (g *generator) count(n ebnf.Node) {
	switch n := n.(type) {
	case *ebnf.Expression:
		for _, a := range n.Alternatives {
			g.count(a)
		}
	case *ebnf.SubExpression:
		g.count(n.Expr)
	case *ebnf.Sequence:
		for _, t := range n.Terms {
			g.count(t)
		}
	case *ebnf.Term:
		if p, ok := g.productions[n.Name]; ok {
			p.refs++
		} else if n.Group != nil {
			g.count(n.Group)
		}
	default:
		panic(repr.String(n))
	}
}

func literalOnly(e *ebnf.Expression) bool {
	for _, a := range e.Alternatives {
		for _, t := range a.Terms {
			if t.Literal == "" || t.Repetition != "" {
				return false
			}
		}
	}
	return true
}
