// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package detect runs an ordered chain of narrow defect heuristics over a
// snippet. The first detector that matches wins; the chain is not a
// general static analyzer and makes no soundness claims.
package detect

import (
	"context"
)

// Kind identifies which detector produced a finding.
type Kind int

const (
	KindNone             Kind = iota // No detector matched
	KindInfiniteLoop                 // Condition loop that can never exit
	KindMissingSeparator             // print call with space-separated arguments
	KindSyntaxError                  // Snippet does not parse
	KindUndefinedName                // Name read but never defined
)

// String returns the detector name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInfiniteLoop:
		return "infinite_loop"
	case KindMissingSeparator:
		return "missing_separator"
	case KindSyntaxError:
		return "syntax_error"
	case KindUndefinedName:
		return "undefined_name"
	default:
		return "unknown"
	}
}

// Finding describes a single detector match with enough detail for the
// suggestion generator to build repairs.
type Finding struct {
	Kind    Kind
	Line    int    // Line the defect is reported at (1-based)
	Message string // Parser message for syntax errors

	// Infinite loop: insert Indent + "break" after InsertAfter (1-based).
	InsertAfter int
	Indent      string

	// Missing separator: full replacement text for Line.
	Replacement string

	// Undefined name: the name and the defined names to offer in its place.
	Name       string
	Candidates []string
}

// Detector inspects a snippet and reports a finding, or nil when it does
// not match. Detectors are pure functions of the snippet text.
type Detector func(ctx context.Context, code string) *Finding

// Chain is an ordered list of detectors.
type Chain []Detector

// Default returns the detectors in priority order.
func Default() Chain {
	return Chain{
		InfiniteLoop,
		MissingSeparator,
		SyntaxError,
		UndefinedName,
	}
}

// Run tries each detector in order and returns the first finding. When no
// detector matches it returns a KindNone finding.
func (c Chain) Run(ctx context.Context, code string) *Finding {
	for _, d := range c {
		if f := d(ctx, code); f != nil {
			return f
		}
	}
	return &Finding{Kind: KindNone}
}
