// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/petar-djukic/snipfix/pkg/types"
)

// Collect parses code and builds its symbol table. Defined names come
// from plain name assignments and function definitions at any depth;
// used names are every identifier read in a load context. A snippet
// that fails to parse yields an empty table, never an error.
//
// Destructuring targets, attribute and subscript targets, augmented
// assignment, comprehension variables, parameters, imports and scoping
// are not modeled.
func Collect(ctx context.Context, code string) *SymbolTable {
	tree, err := Parse(ctx, code)
	if err != nil {
		return newSymbolTable()
	}
	return Symbols(tree)
}

// Symbols builds the symbol table of an already parsed tree.
func Symbols(tree *Tree) *SymbolTable {
	c := &collector{src: tree.Source, table: newSymbolTable()}
	c.visit(tree.Root, false)
	return c.table
}

// NamesIn returns the distinct names read inside n, sorted.
func NamesIn(n *sitter.Node, src []byte) []string {
	c := &collector{src: src, table: newSymbolTable()}
	c.visit(n, false)
	return c.table.Names(types.Used)
}

// AssignedNames returns the names bound by plain name assignments
// anywhere inside n. Chained assignments contribute every name.
func AssignedNames(n *sitter.Node, src []byte) map[string]bool {
	names := make(map[string]bool)
	Walk(n, func(node *sitter.Node) bool {
		if name, ok := assignedName(node, src); ok {
			names[name] = true
		}
		return true
	})
	return names
}

// assignedName returns the target of a plain `name = value` assignment.
// Annotated assignments do not count.
func assignedName(n *sitter.Node, src []byte) (string, bool) {
	if n.Type() != "assignment" || n.ChildByFieldName("type") != nil {
		return "", false
	}
	left := n.ChildByFieldName("left")
	if left == nil || left.Type() != "identifier" {
		return "", false
	}
	return left.Content(src), true
}

// collector walks a tree tracking whether the current position binds
// names (store) or reads them (load).
type collector struct {
	src   []byte
	table *SymbolTable
}

func (c *collector) define(n *sitter.Node) {
	c.table.add(types.Symbol{Name: n.Content(c.src), Role: types.Defined, Line: Line(n)})
}

func (c *collector) use(n *sitter.Node) {
	c.table.add(types.Symbol{Name: n.Content(c.src), Role: types.Used, Line: Line(n)})
}

func (c *collector) visit(n *sitter.Node, store bool) {
	if n == nil {
		return
	}

	switch n.Type() {
	case "identifier":
		if !store {
			c.use(n)
		}

	case "assignment":
		if _, ok := assignedName(n, c.src); ok {
			c.define(n.ChildByFieldName("left"))
		}
		c.visitFields(n, map[string]bool{"left": true})

	case "augmented_assignment", "for_statement", "for_in_clause":
		c.visitFields(n, map[string]bool{"left": true})

	case "named_expression":
		c.visitFields(n, map[string]bool{"name": true})

	case "as_pattern":
		c.visitFields(n, map[string]bool{"alias": true})

	case "delete_statement":
		c.visitChildren(n, true)

	case "except_clause":
		afterAs := false
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			c.visit(child, afterAs && child.Type() == "identifier")
			afterAs = child.Type() == "as"
		}

	case "function_definition":
		if name := n.ChildByFieldName("name"); name != nil {
			c.define(name)
		}
		c.visitParams(n.ChildByFieldName("parameters"))
		c.visit(n.ChildByFieldName("return_type"), false)
		c.visit(n.ChildByFieldName("body"), false)

	case "lambda":
		c.visitParams(n.ChildByFieldName("parameters"))
		c.visit(n.ChildByFieldName("body"), false)

	case "class_definition":
		c.visit(n.ChildByFieldName("superclasses"), false)
		c.visit(n.ChildByFieldName("body"), false)

	case "keyword_argument":
		c.visit(n.ChildByFieldName("value"), false)

	case "attribute":
		c.visit(n.ChildByFieldName("object"), false)

	case "subscript", "call", "decorator", "type":
		c.visitChildren(n, false)

	case "import_statement", "import_from_statement", "future_import_statement",
		"global_statement", "nonlocal_statement":
		// Bindings from these are not modeled.

	default:
		c.visitChildren(n, store)
	}
}

// visitChildren visits every child of n with the same binding mode.
func (c *collector) visitChildren(n *sitter.Node, store bool) {
	for i := 0; i < int(n.ChildCount()); i++ {
		c.visit(n.Child(i), store)
	}
}

// visitFields visits every child of n, treating the children held in one
// of the store fields as binding positions.
func (c *collector) visitFields(n *sitter.Node, storeFields map[string]bool) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		store := false
		for field := range storeFields {
			if isField(n, child, field) {
				store = true
				break
			}
		}
		c.visit(child, store)
	}
}

// visitParams reads default values and annotations of a parameter list
// and skips the parameter names themselves.
func (c *collector) visitParams(params *sitter.Node) {
	if params == nil {
		return
	}
	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		c.visit(p.ChildByFieldName("type"), false)
		c.visit(p.ChildByFieldName("value"), false)
	}
}
