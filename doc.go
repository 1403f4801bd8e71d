// Package orderly classifies café order sentences against a small fixed grammar and replays
// their leftmost derivation.
//
// The grammar is:
//
//	<sentence>       → <customer> "orders" <order> | <customer> "orders" <order> <payment-clause>
//	<customer>       → <title> <name> | <name>
//	<order>          → <order-item> | <order-item> "," <order>
//	<order-item>     → <item> | <item> <modifier> | <quantity> <item> | <quantity> <item> <modifier>
//	<item>           → <drink> | <food>
//	<payment-clause> → "and pays using" <payment>
//
// The terminals (names, drinks, payment methods, ...) come from a lexicon.Lexicon.
//
// Here's an example:
//
//	grammar := orderly.MustNew()
//	result, err := grammar.ParseString("Bob orders Latte, Sandwich with Sugar and pays using Cash")
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Derivation)
package orderly
