// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package scan finds Python snippets on disk and writes repaired files
// back in place.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotDir is returned by Dir when the path is not a directory.
var ErrNotDir = errors.New("not a directory")

// skipDirs contains directory names that Dir never descends into.
var skipDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
	"__pycache__":  true,
	".venv":        true,
}

// Dir walks the tree rooted at dir and returns the paths of all .py
// files, sorted. Paths matching a pattern in the root .gitignore are
// left out. Unreadable entries are skipped.
func Dir(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}

	ignorer := loadGitignore(dir)

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if skipDirs[d.Name()] || ignorer.isIgnored(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".py") || ignorer.isIgnored(rel) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}

// gitignorer matches paths against the patterns of a root .gitignore.
type gitignorer struct {
	patterns []string
}

// loadGitignore reads .gitignore from root. A missing or unreadable file
// yields an ignorer that matches nothing.
func loadGitignore(root string) gitignorer {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return gitignorer{}
	}
	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		patterns = append(patterns, line)
	}
	return gitignorer{patterns: patterns}
}

// isIgnored reports whether a relative path matches any pattern, either
// on one of its components or on the whole path. Only the simple glob
// subset of gitignore is supported.
func (g gitignorer) isIgnored(relPath string) bool {
	parts := strings.Split(relPath, string(filepath.Separator))
	full := filepath.ToSlash(relPath)
	for _, pattern := range g.patterns {
		trimmed := strings.TrimPrefix(strings.TrimSuffix(pattern, "/"), "/")
		for _, part := range parts {
			if matched, _ := filepath.Match(trimmed, part); matched {
				return true
			}
		}
		if matched, _ := filepath.Match(trimmed, full); matched {
			return true
		}
	}
	return false
}
