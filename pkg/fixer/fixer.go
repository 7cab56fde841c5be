// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fixer defines the public interface for snipfix: rule-based
// diagnosis and repair of Python snippets, and snippet execution.
package fixer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/petar-djukic/snipfix/pkg/types"
)

// ErrInvalidConfig is returned by New when the configuration is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures a Service.
type Config struct {
	Interpreter string        // Python executable for Run (default "python3")
	Timeout     time.Duration // Run time limit; zero means none, as in the original design
	Logger      *slog.Logger  // Structured logger (default discards)
}

// Service diagnoses and executes snippets. Both operations are stateless
// and safe to call concurrently.
type Service interface {
	// GetFixes runs the detector chain over code and returns the repairs
	// proposed by the first detector that matches, most likely first.
	// The result always holds at least one suggestion.
	GetFixes(ctx context.Context, code string) []types.Suggestion

	// Run executes code with input on its stdin. Failures are reported in
	// the result's Error field; the snippet runs with full host
	// privileges and no resource limits beyond Config.Timeout.
	Run(ctx context.Context, code, input string) *types.ExecResult
}
