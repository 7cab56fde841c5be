// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package syntax parses Python snippets with tree-sitter and extracts the
// names they define and read.
package syntax

import (
	"context"
	"fmt"
	"strconv"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Tree is a parsed snippet. Root is never nil.
type Tree struct {
	Root   *sitter.Node
	Source []byte
}

// SyntaxError describes the first parse failure in a snippet.
type SyntaxError struct {
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based)
	Message string // Parser message, e.g. "invalid syntax"
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse parses code as Python 3. It returns a *SyntaxError for the first
// problem in the source: an ERROR or MISSING node, a Python 2 print or
// exec statement, misordered call arguments, or bad indentation. The
// tree is not returned in that case. Context cancellation is returned as
// is.
func Parse(ctx context.Context, code string) (*Tree, error) {
	src := []byte(code)
	root, err := sitter.ParseCtx(ctx, src, python.GetLanguage())
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, &SyntaxError{Line: 1, Column: 1, Message: "invalid syntax"}
	}

	se := checkTree(root)
	if root.HasError() {
		fe := firstError(root)
		if fe == nil {
			fe = &SyntaxError{Line: 1, Column: 1, Message: "invalid syntax"}
		}
		se = earliest(se, fe)
	}
	if se != nil {
		return nil, se
	}
	return &Tree{Root: root, Source: src}, nil
}

// earliest returns whichever error comes first in the source. Either may
// be nil.
func earliest(a, b *SyntaxError) *SyntaxError {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.Line < a.Line || (b.Line == a.Line && b.Column < a.Column):
		return b
	default:
		return a
	}
}

// firstError returns the first ERROR or MISSING node in document order.
func firstError(root *sitter.Node) *SyntaxError {
	var found *SyntaxError
	Walk(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}
		if n.IsMissing() {
			found = newSyntaxError(n, "expected "+strconv.Quote(n.Type()))
			return false
		}
		if n.Type() == "ERROR" {
			found = newSyntaxError(n, "invalid syntax")
			return false
		}
		// Only descend into subtrees that contain the error.
		return n.HasError()
	})
	return found
}

func newSyntaxError(n *sitter.Node, msg string) *SyntaxError {
	p := n.StartPoint()
	return &SyntaxError{
		Line:    int(p.Row) + 1,
		Column:  int(p.Column) + 1,
		Message: msg,
	}
}
