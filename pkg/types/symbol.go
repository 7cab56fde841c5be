// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines shared types used across snipfix packages.
package types

// Role distinguishes a name binding from a name read.
type Role int

const (
	Defined Role = iota // Name is bound by an assignment or def
	Used                // Name is read in a load context
)

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case Defined:
		return "defined"
	case Used:
		return "used"
	default:
		return "unknown"
	}
}

// Symbol is a name observed in a snippet together with its role.
// Symbols are recomputed for every call and never cached.
type Symbol struct {
	Name string // Identifier text
	Role Role   // Defined or used
	Line int    // Line number (1-based)
}
