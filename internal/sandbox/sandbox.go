// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sandbox executes Python snippets in a child interpreter with
// per-call input and output buffers.
//
// The sandbox is not an isolation boundary. Snippets run with the full
// privileges of the host process, with no memory limit and, unless a
// Timeout is configured, no time limit. A snippet that never terminates
// blocks its caller until the context is canceled.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/petar-djukic/snipfix/pkg/types"
)

const (
	defaultInterpreter = "python3"
	scriptName         = "snippet.py"

	// waitDelay bounds how long Run waits for output pipes after the
	// interpreter has been killed.
	waitDelay = 2 * time.Second
)

// Config configures the sandbox.
type Config struct {
	Interpreter string        // Python executable (default "python3")
	Timeout     time.Duration // Execution limit; zero means none
	Logger      *slog.Logger  // Debug logging (default discards)
}

// Sandbox runs snippets. It holds no per-call state and is safe for
// concurrent use.
type Sandbox struct {
	cfg Config
}

// New returns a sandbox with defaults applied to cfg.
func New(cfg Config) *Sandbox {
	if cfg.Interpreter == "" {
		cfg.Interpreter = defaultInterpreter
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Sandbox{cfg: cfg}
}

// Run executes code with input on its stdin and returns everything the
// snippet printed to stdout. Any failure, from a Python exception to a
// missing interpreter, is reported in ExecResult.Error; Run never
// returns a Go error. An exception is reported as str(e); an exit with a
// non-zero status and no exception as "exit status N".
func (s *Sandbox) Run(ctx context.Context, code, input string) *types.ExecResult {
	start := time.Now()

	dir, err := os.MkdirTemp("", "snipfix-*")
	if err != nil {
		return &types.ExecResult{Error: fmt.Sprintf("creating workspace: %v", err)}
	}
	defer os.RemoveAll(dir)

	script := filepath.Join(dir, scriptName)
	if err := os.WriteFile(script, []byte(code), 0o600); err != nil {
		return &types.ExecResult{Error: fmt.Sprintf("writing snippet: %v", err)}
	}

	runCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, s.cfg.Interpreter, "-c", bootstrap, script)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "PYTHONIOENCODING=utf-8")
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdin = strings.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := &types.ExecResult{
		Output: stdout.String(),
		Error:  s.errorText(ctx, runCtx, runErr, stderr.String()),
	}

	s.cfg.Logger.Debug("snippet executed",
		"duration", time.Since(start),
		"exit_code", cmd.ProcessState.ExitCode(),
		"ok", result.OK())

	return result
}

// errorText reduces a run failure to a message string.
func (s *Sandbox) errorText(parent, runCtx context.Context, err error, stderr string) string {
	if err == nil {
		return ""
	}
	if parent.Err() != nil {
		return fmt.Sprintf("execution canceled: %v", parent.Err())
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("execution timed out after %v", s.cfg.Timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if msg, ok := exceptionMessage(stderr); ok {
			return msg
		}
		return exitErr.Error()
	}
	return err.Error()
}
