// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"
	"regexp"
	"strings"
)

var (
	// Whole word on purpose: pprint( and blueprint( do not qualify.
	printCallRegex = regexp.MustCompile(`\bprint\(`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// arithmeticChars rule a line out: an operator means the spaces are
// probably part of one expression.
const arithmeticChars = "+-*/%"

// MissingSeparator reports the first print call whose argument text holds
// whitespace but no comma or arithmetic operator. It works on raw lines
// and also fires on snippets that do not parse.
func MissingSeparator(_ context.Context, code string) *Finding {
	lines := strings.Split(code, "\n")
	for i, line := range lines {
		fixed, ok := separateArgs(line)
		if !ok {
			continue
		}
		if fixed == line {
			return nil
		}
		return &Finding{
			Kind:        KindMissingSeparator,
			Line:        i + 1,
			Replacement: fixed,
		}
	}
	return nil
}

// separateArgs rewrites one line. The boolean reports whether the line
// qualifies at all.
func separateArgs(line string) (string, bool) {
	loc := printCallRegex.FindStringIndex(line)
	if loc == nil || strings.Contains(line, ",") {
		return "", false
	}
	if !strings.HasSuffix(strings.TrimRight(line, " \t\r"), ")") {
		return "", false
	}

	start := loc[1]
	end := strings.LastIndex(line, ")")
	if start >= end {
		return "", false
	}

	args := line[start:end]
	if !whitespaceRun.MatchString(args) || strings.ContainsAny(args, arithmeticChars) {
		return "", false
	}

	newArgs := whitespaceRun.ReplaceAllLiteralString(strings.TrimSpace(args), ", ")
	return line[:start] + newArgs + line[end:], true
}
