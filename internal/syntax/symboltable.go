// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

import (
	"sort"

	"github.com/petar-djukic/snipfix/pkg/types"
)

// SymbolTable holds the symbols extracted from one snippet and provides
// lookup operations by name and role. A table is built per call and
// never shared.
type SymbolTable struct {
	symbols []types.Symbol
	byName  map[string][]int
	byRole  map[types.Role][]int
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		byName: make(map[string][]int),
		byRole: make(map[types.Role][]int),
	}
}

func (st *SymbolTable) add(sym types.Symbol) {
	idx := len(st.symbols)
	st.symbols = append(st.symbols, sym)
	st.byName[sym.Name] = append(st.byName[sym.Name], idx)
	st.byRole[sym.Role] = append(st.byRole[sym.Role], idx)
}

// All returns every symbol in the table in source order.
func (st *SymbolTable) All() []types.Symbol {
	result := make([]types.Symbol, len(st.symbols))
	copy(result, st.symbols)
	return result
}

// ByName returns all occurrences of the given name.
func (st *SymbolTable) ByName(name string) []types.Symbol {
	return st.lookup(st.byName[name])
}

// ByRole returns all symbols with the given role.
func (st *SymbolTable) ByRole(role types.Role) []types.Symbol {
	return st.lookup(st.byRole[role])
}

// Has reports whether name occurs with the given role.
func (st *SymbolTable) Has(name string, role types.Role) bool {
	for _, idx := range st.byName[name] {
		if st.symbols[idx].Role == role {
			return true
		}
	}
	return false
}

// Names returns the distinct names with the given role, sorted.
func (st *SymbolTable) Names(role types.Role) []string {
	seen := make(map[string]bool)
	var names []string
	for _, idx := range st.byRole[role] {
		name := st.symbols[idx].Name
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Undefined returns the names that are used but neither defined in the
// snippet nor builtin, sorted.
func (st *SymbolTable) Undefined() []string {
	var names []string
	for _, name := range st.Names(types.Used) {
		if st.Has(name, types.Defined) || IsBuiltin(name) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Len returns the total number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// lookup returns symbols at the given indices.
func (st *SymbolTable) lookup(indices []int) []types.Symbol {
	if len(indices) == 0 {
		return nil
	}
	result := make([]types.Symbol, len(indices))
	for i, idx := range indices {
		result[i] = st.symbols[idx]
	}
	return result
}
