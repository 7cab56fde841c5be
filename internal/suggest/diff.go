// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package suggest

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineRuneBase is the first rune used to stand for a line. It sits in the
// private use area so every index maps to a valid rune.
const lineRuneBase = 0xE000

// Diff renders the change from original to fixed line by line, prefixing
// each line with "+", "-" or " ". It returns an empty string when the two
// are identical.
func Diff(original, fixed string) string {
	if original == fixed {
		return ""
	}

	var lines []string
	index := make(map[string]rune)
	encode := func(text string) []rune {
		var out []rune
		for _, line := range strings.SplitAfter(text, "\n") {
			if line == "" {
				continue
			}
			r, ok := index[line]
			if !ok {
				r = rune(lineRuneBase + len(lines))
				index[line] = r
				lines = append(lines, line)
			}
			out = append(out, r)
		}
		return out
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(encode(original), encode(fixed), false)

	var buf strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, r := range d.Text {
			line := lines[r-lineRuneBase]
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteString("\n")
			}
		}
	}
	return buf.String()
}
