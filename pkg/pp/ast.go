// Package pp implements the C preprocessor: lexing raw text into
// preprocessing tokens, parsing them into a directive tree, executing
// the tree against a macro symbol table, and flattening the survivors
// back into a pp-token stream.
package pp

import (
	"fmt"
	"io"

	"github.com/ckeaney/kcc/pkg/pptok"
)

// NodeName selects the non-terminal a directive-tree node represents.
type NodeName int

const (
	NodeError NodeName = iota
	PreprocessingFile
	Group
	GroupPart
	IfSection
	IfGroup
	ElifGroups
	ElifGroup
	ElseGroup
	EndifLine
	ControlLine
	TextLine
	NonDirective
	Lparen
	ReplacementList
	PPTokens
	PreprocessingToken
	NewLine
	IdentifierList
	ConstantExpression
)

var nodeNameStrings = [...]string{
	NodeError:          "ERROR",
	PreprocessingFile:  "PREPROCESSING_FILE",
	Group:              "GROUP",
	GroupPart:          "GROUP_PART",
	IfSection:          "IF_SECTION",
	IfGroup:            "IF_GROUP",
	ElifGroups:         "ELIF_GROUPS",
	ElifGroup:          "ELIF_GROUP",
	ElseGroup:          "ELSE_GROUP",
	EndifLine:          "ENDIF_LINE",
	ControlLine:        "CONTROL_LINE",
	TextLine:           "TEXT_LINE",
	NonDirective:       "NON_DIRECTIVE",
	Lparen:             "LPAREN",
	ReplacementList:    "REPLACEMENT_LIST",
	PPTokens:           "PP_TOKENS",
	PreprocessingToken: "PREPROCESSING_TOKEN",
	NewLine:            "NEW_LINE",
	IdentifierList:     "IDENTIFIER_LIST",
	ConstantExpression: "CONSTANT_EXPRESSION",
}

func (n NodeName) String() string {
	if int(n) < len(nodeNameStrings) {
		return nodeNameStrings[n]
	}
	return "UNKNOWN"
}

// NodeAlt selects which production of the non-terminal was used.
type NodeAlt int

const (
	AltError NodeAlt = iota
	PreprocessingFile1
	Group1
	Group2
	GroupPart1 // if-section
	GroupPart2 // control-line
	GroupPart3 // text-line
	GroupPart4 // # non-directive
	IfSection1
	IfGroup1 // # if
	IfGroup2 // # ifdef
	IfGroup3 // # ifndef
	ElifGroups1
	ElifGroups2
	ElifGroup1
	ElseGroup1
	EndifLine1
	ControlLine1  // # include
	ControlLine2  // # define object-like
	ControlLine3  // # define ( identifier-list? )
	ControlLine4  // # define ( ... )
	ControlLine5  // # define ( identifier-list , ... )
	ControlLine6  // # undef
	ControlLine7  // # line
	ControlLine8  // # error
	ControlLine9  // # pragma
	ControlLine10 // # alone
	TextLine1
	NonDirective1
	Lparen1
	ReplacementList1
	PPTokens1
	PPTokens2
	PreprocessingToken1 // header-name
	PreprocessingToken2 // identifier
	PreprocessingToken3 // pp-number
	PreprocessingToken4 // character-constant
	PreprocessingToken5 // string-literal
	PreprocessingToken6 // punctuator
	PreprocessingToken7 // error token
	NewLine1
	IdentifierList1
	IdentifierList2
	ConstantExpression1
)

var nodeAltStrings = [...]string{
	AltError:            "ERROR",
	PreprocessingFile1:  "PREPROCESSING_FILE_1",
	Group1:              "GROUP_1",
	Group2:              "GROUP_2",
	GroupPart1:          "GROUP_PART_1",
	GroupPart2:          "GROUP_PART_2",
	GroupPart3:          "GROUP_PART_3",
	GroupPart4:          "GROUP_PART_4",
	IfSection1:          "IF_SECTION_1",
	IfGroup1:            "IF_GROUP_1",
	IfGroup2:            "IF_GROUP_2",
	IfGroup3:            "IF_GROUP_3",
	ElifGroups1:         "ELIF_GROUPS_1",
	ElifGroups2:         "ELIF_GROUPS_2",
	ElifGroup1:          "ELIF_GROUP_1",
	ElseGroup1:          "ELSE_GROUP_1",
	EndifLine1:          "ENDIF_LINE_1",
	ControlLine1:        "CONTROL_LINE_1",
	ControlLine2:        "CONTROL_LINE_2",
	ControlLine3:        "CONTROL_LINE_3",
	ControlLine4:        "CONTROL_LINE_4",
	ControlLine5:        "CONTROL_LINE_5",
	ControlLine6:        "CONTROL_LINE_6",
	ControlLine7:        "CONTROL_LINE_7",
	ControlLine8:        "CONTROL_LINE_8",
	ControlLine9:        "CONTROL_LINE_9",
	ControlLine10:       "CONTROL_LINE_10",
	TextLine1:           "TEXT_LINE_1",
	NonDirective1:       "NON_DIRECTIVE_1",
	Lparen1:             "LPAREN_1",
	ReplacementList1:    "REPLACEMENT_LIST_1",
	PPTokens1:           "PP_TOKENS_1",
	PPTokens2:           "PP_TOKENS_2",
	PreprocessingToken1: "PREPROCESSING_TOKEN_1",
	PreprocessingToken2: "PREPROCESSING_TOKEN_2",
	PreprocessingToken3: "PREPROCESSING_TOKEN_3",
	PreprocessingToken4: "PREPROCESSING_TOKEN_4",
	PreprocessingToken5: "PREPROCESSING_TOKEN_5",
	PreprocessingToken6: "PREPROCESSING_TOKEN_6",
	PreprocessingToken7: "PREPROCESSING_TOKEN_7",
	NewLine1:            "NEW_LINE_1",
	IdentifierList1:     "IDENTIFIER_LIST_1",
	IdentifierList2:     "IDENTIFIER_LIST_2",
	ConstantExpression1: "CONSTANT_EXPRESSION_1",
}

func (a NodeAlt) String() string {
	if int(a) < len(nodeAltStrings) {
		return nodeAltStrings[a]
	}
	return "UNKNOWN"
}

// Node is one directive-tree node. Leaves carry a terminal pp-token
// and no children; interior nodes carry children and no terminal.
// Execution never mutates a node in place; it builds replacement
// subtrees.
type Node struct {
	Name     NodeName
	Alt      NodeAlt
	Terminal *pptok.Token
	Children []*Node
	Val      uint64
}

func newNode(name NodeName, alt NodeAlt, children ...*Node) *Node {
	return &Node{Name: name, Alt: alt, Children: children}
}

func newLeaf(name NodeName, alt NodeAlt, tok pptok.Token) *Node {
	t := tok
	return &Node{Name: name, Alt: alt, Terminal: &t}
}

// tokenLeaf wraps a pp-token in a PREPROCESSING_TOKEN leaf, choosing
// the alternative from the token's name.
func tokenLeaf(tok pptok.Token) *Node {
	var alt NodeAlt
	switch tok.Name {
	case pptok.HeaderName:
		alt = PreprocessingToken1
	case pptok.Identifier:
		alt = PreprocessingToken2
	case pptok.PPNumber:
		alt = PreprocessingToken3
	case pptok.CharacterConstant:
		alt = PreprocessingToken4
	case pptok.StringLiteral:
		alt = PreprocessingToken5
	case pptok.Punctuator:
		alt = PreprocessingToken6
	default:
		alt = PreprocessingToken7
	}
	return newLeaf(PreprocessingToken, alt, tok)
}

// ppTokensNode wraps a pp-token run in a PP_TOKENS node. Returns nil
// for an empty run.
func ppTokensNode(toks []pptok.Token) *Node {
	if len(toks) == 0 {
		return nil
	}
	alt := PPTokens1
	if len(toks) > 1 {
		alt = PPTokens2
	}
	n := newNode(PPTokens, alt)
	for _, t := range toks {
		n.Children = append(n.Children, tokenLeaf(t))
	}
	return n
}

// Dump writes the subtree rooted at n, one node per line, with the
// connector prefixes the CLI's directive-tree debug output uses.
func (n *Node) Dump(w io.Writer) {
	n.dump(w, "", "")
}

func (n *Node) dump(w io.Writer, parentPrefix, childPrefix string) {
	fmt.Fprintf(w, "%sname=%s,alt=%s", parentPrefix, n.Name, n.Alt)
	if n.Terminal != nil {
		fmt.Fprintf(w, "<PreprocessingToken={%q,%s,%s}>",
			n.Terminal.Text(), n.Terminal.Name, n.Terminal.Form)
	}
	fmt.Fprintln(w)
	for i, c := range n.Children {
		if i < len(n.Children)-1 {
			c.dump(w, childPrefix+"|____", childPrefix+"|    ")
		} else {
			c.dump(w, childPrefix+"|____", childPrefix+"     ")
		}
	}
}
