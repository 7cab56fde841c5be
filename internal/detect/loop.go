// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/snipfix/internal/syntax"
)

// InfiniteLoop reports the first while loop, outermost first, that can
// never terminate: its condition is the literal True, or it is a
// comparison none of whose names is reassigned in the body. Loops with a
// top-level break or return in their body are ignored.
func InfiniteLoop(ctx context.Context, code string) *Finding {
	tree, err := syntax.Parse(ctx, code)
	if err != nil {
		return nil
	}

	var finding *Finding
	syntax.WalkBreadth(tree.Root, func(n *sitter.Node) bool {
		if n.Type() != "while_statement" {
			return true
		}
		body := n.ChildByFieldName("body")
		stmts := syntax.Statements(body)
		if len(stmts) == 0 || !neverExits(n, body, tree.Source) || hasExit(stmts) {
			return true
		}

		last := stmts[len(stmts)-1]
		finding = &Finding{
			Kind:        KindInfiniteLoop,
			Line:        syntax.Line(n),
			InsertAfter: syntax.EndLine(last),
			Indent:      lineIndent(code, syntax.Line(last)),
		}
		return false
	})
	return finding
}

// neverExits classifies the loop condition.
func neverExits(loop, body *sitter.Node, src []byte) bool {
	cond := syntax.Unparen(loop.ChildByFieldName("condition"))
	if cond == nil {
		return false
	}
	switch cond.Type() {
	case "true":
		return true
	case "comparison_operator":
		assigned := syntax.AssignedNames(body, src)
		for _, name := range syntax.NamesIn(cond, src) {
			if assigned[name] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// hasExit reports whether any statement at the top level of the body is a
// break or return.
func hasExit(stmts []*sitter.Node) bool {
	for _, s := range stmts {
		switch s.Type() {
		case "break_statement", "return_statement":
			return true
		}
	}
	return false
}

// lineIndent returns the leading whitespace of a 1-based line.
func lineIndent(code string, line int) string {
	lines := strings.Split(code, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := lines[line-1]
	return text[:len(text)-len(strings.TrimLeft(text, " \t"))]
}
