// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk visits n and its descendants depth-first in document order. The
// children of a node are skipped when fn returns false for it.
func Walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		Walk(n.Child(i), fn)
	}
}

// WalkBreadth visits n and its descendants level by level, so an outer
// construct is always seen before the constructs nested inside it.
// Traversal stops when fn returns false.
func WalkBreadth(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	queue := []*sitter.Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fn(cur) {
			return
		}
		for i := 0; i < int(cur.ChildCount()); i++ {
			if c := cur.Child(i); c != nil {
				queue = append(queue, c)
			}
		}
	}
}

// Unparen strips any number of enclosing parentheses from an expression.
func Unparen(n *sitter.Node) *sitter.Node {
	for n != nil && n.Type() == "parenthesized_expression" && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	return n
}

// Line returns the 1-based line a node starts on.
func Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}

// EndLine returns the 1-based line holding the last character of a node.
// A node that ends at column zero of a later row actually ends on the
// row before.
func EndLine(n *sitter.Node) int {
	start, end := n.StartPoint(), n.EndPoint()
	row := end.Row
	if end.Column == 0 && row > start.Row {
		row--
	}
	return int(row) + 1
}

// Statements returns the statements of a block node.
func Statements(block *sitter.Node) []*sitter.Node {
	if block == nil {
		return nil
	}
	var stmts []*sitter.Node
	for i := 0; i < int(block.NamedChildCount()); i++ {
		c := block.NamedChild(i)
		if c == nil || c.Type() == "comment" {
			continue
		}
		stmts = append(stmts, c)
	}
	return stmts
}

// sameNode reports whether a and b denote the same syntax node.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}

// isField reports whether child sits in the named field of parent.
func isField(parent, child *sitter.Node, field string) bool {
	return sameNode(parent.ChildByFieldName(field), child)
}
