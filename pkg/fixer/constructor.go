// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package fixer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/petar-djukic/snipfix/internal/detect"
	"github.com/petar-djukic/snipfix/internal/sandbox"
	"github.com/petar-djukic/snipfix/internal/suggest"
	"github.com/petar-djukic/snipfix/pkg/types"
)

const defaultInterpreter = "python3"

// New validates the config and returns a ready-to-use Service.
func New(cfg Config) (Service, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	applyDefaults(&cfg)

	return &service{
		chain: detect.Default(),
		sandbox: sandbox.New(sandbox.Config{
			Interpreter: cfg.Interpreter,
			Timeout:     cfg.Timeout,
			Logger:      cfg.Logger,
		}),
		logger: cfg.Logger,
	}, nil
}

// service wires the detector chain, suggestion generator and sandbox to
// the public Service interface.
type service struct {
	chain   detect.Chain
	sandbox *sandbox.Sandbox
	logger  *slog.Logger
}

func (s *service) GetFixes(ctx context.Context, code string) []types.Suggestion {
	finding := s.chain.Run(ctx, code)
	suggestions := suggest.Generate(code, finding)

	s.logger.Debug("snippet diagnosed",
		"detector", finding.Kind.String(),
		"line", finding.Line,
		"suggestions", len(suggestions))

	return suggestions
}

func (s *service) Run(ctx context.Context, code, input string) *types.ExecResult {
	return s.sandbox.Run(ctx, code, input)
}

// validateConfig checks field values.
func validateConfig(cfg Config) error {
	if cfg.Timeout < 0 {
		return fmt.Errorf("Timeout must not be negative, got %v", cfg.Timeout)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Interpreter == "" {
		cfg.Interpreter = defaultInterpreter
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}
