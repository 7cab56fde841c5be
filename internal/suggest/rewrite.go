// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package suggest

import (
	"regexp"
	"strings"
)

// InsertLine inserts text as a new line after the 1-based line after.
// An out-of-range position appends at the end. The original line
// endings are kept.
func InsertLine(code string, after int, text string) string {
	lines := strings.Split(code, "\n")
	if after < 0 {
		after = 0
	}
	if after > len(lines) {
		after = len(lines)
	}
	// A trailing newline leaves an empty last element; insert before it.
	if after == len(lines) && lines[len(lines)-1] == "" {
		after--
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:after]...)
	out = append(out, text)
	out = append(out, lines[after:]...)
	return strings.Join(out, "\n")
}

// ReplaceLine replaces the 1-based line with text. Out-of-range lines
// leave the code unchanged.
func ReplaceLine(code string, line int, text string) string {
	lines := strings.Split(code, "\n")
	if line < 1 || line > len(lines) {
		return code
	}
	lines[line-1] = text
	return strings.Join(lines, "\n")
}

// ReplaceWord substitutes every whole-word occurrence of old with repl
// across the whole snippet. It does not know about scopes, strings or
// comments, so unrelated tokens with the same spelling change too.
func ReplaceWord(code, old, repl string) string {
	if old == "" {
		return code
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(old) + `\b`)
	return re.ReplaceAllLiteralString(code, repl)
}

// Prepend puts line before the snippet.
func Prepend(code, line string) string {
	return line + "\n" + code
}
