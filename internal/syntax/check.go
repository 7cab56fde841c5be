// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// The tree-sitter grammar is more permissive than the Python 3 compiler:
// it accepts Python 2 print and exec statements, does not enforce the
// order of call arguments, and tolerates misaligned statements. The
// checks below reject what the compiler rejects.

const (
	msgUnexpectedIndent = "unexpected indent"
	msgUnindentMismatch = "unindent does not match any outer indentation level"
	msgIndentedBlock    = "expected an indented block"
)

// headerNames describes the construct that owns a block, as the compiler
// words it in "expected an indented block after ...".
var headerNames = map[string]string{
	"if_statement":        "'if' statement",
	"elif_clause":         "'elif' statement",
	"else_clause":         "'else' statement",
	"while_statement":     "'while' statement",
	"for_statement":       "'for' statement",
	"with_statement":      "'with' statement",
	"try_statement":       "'try' statement",
	"except_clause":       "'except' statement",
	"finally_clause":      "'finally' statement",
	"function_definition": "function definition",
	"class_definition":    "class definition",
}

// checkTree returns the first error the compiler would report that the
// grammar let through, or nil.
func checkTree(root *sitter.Node) *SyntaxError {
	c := &checker{indents: statementIndents(root)}

	Walk(root, func(n *sitter.Node) bool {
		switch n.Type() {
		case "print_statement":
			c.report(newSyntaxError(n, "Missing parentheses in call to 'print'. Did you mean print(...)?"))
		case "exec_statement":
			c.report(newSyntaxError(n, "Missing parentheses in call to 'exec'. Did you mean exec(...)?"))
		case "argument_list":
			c.checkArguments(n)
		case "module":
			c.checkAligned(Statements(n), 0)
		case "block":
			c.checkBlock(n)
		}
		return true
	})
	return c.first
}

type checker struct {
	indents []rowIndent
	first   *SyntaxError
}

// report keeps the error that comes first in the source.
func (c *checker) report(se *SyntaxError) {
	c.first = earliest(c.first, se)
}

// checkArguments enforces positional, then keyword and *args, then
// **kwargs ordering inside a call.
func (c *checker) checkArguments(args *sitter.Node) {
	seenKeyword, seenDictSplat := false, false
	for i := 0; i < int(args.NamedChildCount()); i++ {
		arg := args.NamedChild(i)
		switch arg.Type() {
		case "comment":
		case "keyword_argument":
			seenKeyword = true
		case "dictionary_splat":
			seenDictSplat = true
		case "list_splat":
			if seenDictSplat {
				c.report(newSyntaxError(arg, "iterable argument unpacking follows keyword argument unpacking"))
				return
			}
		default:
			if seenDictSplat {
				c.report(newSyntaxError(arg, "positional argument follows keyword argument unpacking"))
				return
			}
			if seenKeyword {
				c.report(newSyntaxError(arg, "positional argument follows keyword argument"))
				return
			}
		}
	}
}

// checkBlock requires the body of a compound statement to be indented
// past its header and its statements to share one column. Bodies written
// on the header line are not checked.
func (c *checker) checkBlock(block *sitter.Node) {
	header := block.Parent()
	if header == nil {
		return
	}
	colon := colonRow(header, block)
	stmts := Statements(block)

	if len(stmts) == 0 {
		c.report(&SyntaxError{
			Line:    int(colon) + 2,
			Column:  1,
			Message: indentedBlockMessage(header),
		})
		return
	}

	first := stmts[0]
	if first.StartPoint().Row == colon {
		return
	}
	if first.StartPoint().Column <= header.StartPoint().Column {
		c.report(newSyntaxError(first, indentedBlockMessage(header)))
		return
	}
	c.checkAligned(stmts, first.StartPoint().Column)
}

// checkAligned reports the first statement that does not start at column
// want. Statements sharing a line with the previous one are skipped.
func (c *checker) checkAligned(stmts []*sitter.Node, want uint32) {
	for i, s := range stmts {
		start := s.StartPoint()
		if i > 0 && start.Row == stmts[i-1].EndPoint().Row {
			continue
		}
		if start.Column == want {
			continue
		}
		msg := msgUnindentMismatch
		if start.Column > c.previousIndent(start.Row) {
			msg = msgUnexpectedIndent
		}
		c.report(newSyntaxError(s, msg))
		return
	}
}

// rowIndent is the column of the leftmost statement starting on a row.
type rowIndent struct {
	row, column uint32
}

// statementIndents records where statements start, sorted by row.
func statementIndents(root *sitter.Node) []rowIndent {
	byRow := make(map[uint32]uint32)
	Walk(root, func(n *sitter.Node) bool {
		if n.Type() != "module" && n.Type() != "block" {
			return true
		}
		for _, s := range Statements(n) {
			p := s.StartPoint()
			if col, ok := byRow[p.Row]; !ok || p.Column < col {
				byRow[p.Row] = p.Column
			}
		}
		return true
	})

	indents := make([]rowIndent, 0, len(byRow))
	for row, col := range byRow {
		indents = append(indents, rowIndent{row: row, column: col})
	}
	sort.Slice(indents, func(i, j int) bool { return indents[i].row < indents[j].row })
	return indents
}

// previousIndent returns the indentation of the closest statement line
// above row, or zero at the top of the snippet.
func (c *checker) previousIndent(row uint32) uint32 {
	i := sort.Search(len(c.indents), func(i int) bool { return c.indents[i].row >= row })
	if i == 0 {
		return 0
	}
	return c.indents[i-1].column
}

// colonRow returns the row of the colon that opens block.
func colonRow(header, block *sitter.Node) uint32 {
	row := header.StartPoint().Row
	for i := 0; i < int(header.ChildCount()); i++ {
		child := header.Child(i)
		if child.StartByte() >= block.StartByte() {
			break
		}
		if child.Type() == ":" {
			row = child.StartPoint().Row
		}
	}
	return row
}

func indentedBlockMessage(header *sitter.Node) string {
	name, ok := headerNames[header.Type()]
	if !ok {
		return msgIndentedBlock
	}
	return fmt.Sprintf("%s after %s on line %d", msgIndentedBlock, name, Line(header))
}
