// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertLine(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		after int
		want  string
	}{
		{"middle", "a\nb\nc", 1, "a\nX\nb\nc"},
		{"last line", "a\nb", 2, "a\nb\nX"},
		{"before trailing newline", "a\nb\n", 2, "a\nb\nX\n"},
		{"out of range", "a\n", 9, "a\nX\n"},
		{"start", "a", 0, "X\na"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InsertLine(tt.code, tt.after, "X"))
		})
	}
}

func TestReplaceLine(t *testing.T) {
	assert.Equal(t, "a\nX\nc", ReplaceLine("a\nb\nc", 2, "X"))
	assert.Equal(t, "a\r\nX", ReplaceLine("a\r\nb", 2, "X"))
	assert.Equal(t, "a", ReplaceLine("a", 5, "X"))
}

func TestReplaceWord_WholeWordsOnly(t *testing.T) {
	code := "y = 1\nyy = y + 1\nprint(y, my_y)"
	assert.Equal(t, "x = 1\nyy = x + 1\nprint(x, my_y)", ReplaceWord(code, "y", "x"))
}

func TestReplaceWord_NotScopeAware(t *testing.T) {
	code := "print(total)\nmsg = \"total\"\n"
	assert.Equal(t, "print(count)\nmsg = \"count\"\n", ReplaceWord(code, "total", "count"))
}

func TestReplaceWord_EmptyName(t *testing.T) {
	assert.Equal(t, "a b", ReplaceWord("a b", "", "x"))
}

func TestPrepend(t *testing.T) {
	assert.Equal(t, "y = 0\nprint(y)", Prepend("print(y)", "y = 0"))
}

func TestDiff(t *testing.T) {
	assert.Equal(t, "", Diff("same\n", "same\n"))
	assert.Equal(t, "-print(a b)\n+print(a, b)\n", Diff("print(a b)", "print(a, b)"))
	assert.Equal(t, " a\n b\n+break\n", Diff("a\nb\n", "a\nb\nbreak\n"))
}
