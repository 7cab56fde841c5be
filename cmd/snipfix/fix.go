// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/petar-djukic/snipfix/internal/scan"
	"github.com/petar-djukic/snipfix/internal/suggest"
	"github.com/petar-djukic/snipfix/pkg/types"
)

var (
	pathColor    = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgYellow)
	addedColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed)
)

// snippet is one unit of input to fix. Path is empty for stdin.
type snippet struct {
	Path string
	Code string
}

// fileFixes is the per-snippet result printed by fix.
type fileFixes struct {
	Path  string             `json:"path,omitempty"`
	Fixes []types.Suggestion `json:"fixes"`
}

// newFixCmd creates the "fix" command.
func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Suggest repairs for Python snippets",
		Long:  "Fix diagnoses each file (directories are scanned for .py files; no paths or \"-\" reads stdin) and prints the proposed repairs.",
		RunE:  runFix,
	}

	cmd.Flags().String("format", "json", "Output format (json, text)")
	cmd.Flags().Bool("diff", false, "Show suggestions as patches in text output")
	cmd.Flags().Bool("write", false, "Write the first suggestion back to each file")

	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	showDiff, _ := cmd.Flags().GetBool("diff")
	write, _ := cmd.Flags().GetBool("write")

	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q", format)
	}

	snippets, err := collectSnippets(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	svc, err := newService(cmd)
	if err != nil {
		return err
	}
	logger := loggerFor(cmd)

	results := make([]fileFixes, len(snippets))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, s := range snippets {
		i, s := i, s
		g.Go(func() error {
			results[i] = fileFixes{Path: s.Path, Fixes: svc.GetFixes(gctx, s.Code)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if write {
		for i, s := range snippets {
			if s.Path == "" {
				continue
			}
			best := results[i].Fixes[0]
			if best.Code == s.Code {
				continue
			}
			if err := scan.WriteFile(s.Path, []byte(best.Code)); err != nil {
				return fmt.Errorf("writing %s: %w", s.Path, err)
			}
			logger.Info("applied fix", "path", s.Path, "label", best.Label)
		}
	}

	out := cmd.OutOrStdout()
	if format == "text" {
		for i, r := range results {
			printFixesText(out, r, snippets[i].Code, showDiff)
		}
		return nil
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}
	return nil
}

// collectSnippets resolves the command arguments to snippets. Directories
// expand to the .py files under them; "-" or no arguments read stdin.
func collectSnippets(args []string, stdin io.Reader) ([]snippet, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var snippets []snippet
	readStdin := false
	for _, arg := range args {
		if arg == "-" {
			if readStdin {
				continue
			}
			readStdin = true
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			snippets = append(snippets, snippet{Code: string(data)})
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		paths := []string{arg}
		if info.IsDir() {
			if paths, err = scan.Dir(arg); err != nil {
				return nil, err
			}
		}
		for _, p := range paths {
			data, err := os.ReadFile(p)
			if err != nil {
				return nil, err
			}
			snippets = append(snippets, snippet{Path: p, Code: string(data)})
		}
	}
	return snippets, nil
}

// printFixesText writes one snippet's suggestions in human readable form.
func printFixesText(w io.Writer, r fileFixes, original string, showDiff bool) {
	name := r.Path
	if name == "" {
		name = "<stdin>"
	}
	pathColor.Fprintln(w, name)

	for i, s := range r.Fixes {
		labelColor.Fprintf(w, "  [%d] %s\n", i+1, s.Label)
		if !showDiff {
			fmt.Fprintln(w, indent(s.Code, "      "))
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(suggest.Diff(original, s.Code), "\n"), "\n") {
			switch {
			case line == "":
			case strings.HasPrefix(line, "+"):
				addedColor.Fprintln(w, "      "+line)
			case strings.HasPrefix(line, "-"):
				removedColor.Fprintln(w, "      "+line)
			default:
				fmt.Fprintln(w, "      "+line)
			}
		}
	}
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
