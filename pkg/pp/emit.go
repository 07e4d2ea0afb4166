package pp

import "github.com/ckeaney/kcc/pkg/pptok"

// Flatten walks an executed tree in pre-order and emits the pp-tokens
// of its surviving text lines and non-directives, in source order,
// terminated by eof. Directive lines never reach the output; the
// executor has already replaced them.
func Flatten(file *Node, eof pptok.Token) []pptok.Token {
	out := flattenSurvivors(file, nil)
	return append(out, eof)
}

func flattenSurvivors(n *Node, out []pptok.Token) []pptok.Token {
	if n == nil {
		return out
	}
	switch n.Name {
	case TextLine, NonDirective:
		return collectTerminals(n, out)
	case ControlLine, IfSection:
		// Anything of these shapes left in an executed tree is dead.
		return out
	}
	for _, c := range n.Children {
		out = flattenSurvivors(c, out)
	}
	return out
}

// collectTerminals gathers every PREPROCESSING_TOKEN terminal under n
// in pre-order. New-line leaves are line structure, not tokens.
func collectTerminals(n *Node, out []pptok.Token) []pptok.Token {
	if n == nil {
		return out
	}
	if n.Name == PreprocessingToken && n.Terminal != nil {
		return append(out, *n.Terminal)
	}
	for _, c := range n.Children {
		out = collectTerminals(c, out)
	}
	return out
}

// TokensOf returns the raw pp-token sequence under any subtree, used
// for #if operands and replacement lists.
func TokensOf(n *Node) []pptok.Token {
	return collectTerminals(n, nil)
}
