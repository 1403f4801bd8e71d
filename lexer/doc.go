// Package lexer classifies the words of an order sentence into grammar terminals.
//
// Classification is driven by an ordered table of rules (see DefaultRules). The first rule
// matching a word wins, and a rule may consume further lookahead words to recognise compound
// terminals such as "with Milk" or "and pays using". Words no rule matches are dropped.
package lexer
