// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Suggestion is a labeled candidate repair of a snippet. Suggestions are
// returned in priority order; the first one is the most likely fix.
type Suggestion struct {
	Label string `json:"label"` // Human-readable description of the fix
	Code  string `json:"code"`  // Full repaired snippet text
}

// ExecResult holds the outcome of executing a snippet.
type ExecResult struct {
	Output string `json:"output"` // Everything the snippet wrote to stdout
	Error  string `json:"error"`  // Failure message; empty on success
}

// OK reports whether the execution finished without an error.
func (r *ExecResult) OK() bool {
	return r.Error == ""
}
