// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petar-djukic/snipfix/internal/detect"
	"github.com/petar-djukic/snipfix/pkg/types"
)

func generate(t *testing.T, code string) []types.Suggestion {
	t.Helper()
	f := detect.Default().Run(context.Background(), code)
	return Generate(code, f)
}

func TestGenerate_InfiniteLoopInsertsBreak(t *testing.T) {
	code := "n = 0\nwhile True:\n    n = n + 1\n    print(n)\nprint(\"end\")\n"

	got := generate(t, code)
	require.Len(t, got, 1)
	assert.Equal(t, "infinite loop at line 2, adding break", got[0].Label)
	assert.Equal(t, "n = 0\nwhile True:\n    n = n + 1\n    print(n)\n    break\nprint(\"end\")\n", got[0].Code)
}

func TestGenerate_MissingSeparator(t *testing.T) {
	got := generate(t, "x = 1\nprint(x y)\n")
	require.Len(t, got, 1)
	assert.Equal(t, "possibly missing comma at line 2", got[0].Label)
	assert.Equal(t, "x = 1\nprint(x, y)\n", got[0].Code)
}

func TestGenerate_SyntaxErrorKeepsCode(t *testing.T) {
	code := "x = 1\ny = = 2\n"
	got := generate(t, code)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Label, "syntax error at line 2: ")
	assert.Equal(t, code, got[0].Code)
}

func TestGenerate_UndefinedName(t *testing.T) {
	code := "x = 1\nprint(y)"

	got := generate(t, code)
	require.Len(t, got, 2)
	assert.Equal(t, types.Suggestion{Label: "replace y with x", Code: "x = 1\nprint(x)"}, got[0])
	assert.Equal(t, types.Suggestion{Label: "introduce variable y = 0", Code: "y = 0\nx = 1\nprint(y)"}, got[1])
}

func TestGenerate_UndefinedNameCandidatesSorted(t *testing.T) {
	code := "beta = 1\nalpha = 2\nprint(gamma)\n"

	got := generate(t, code)
	require.Len(t, got, 3)
	assert.Equal(t, "replace gamma with alpha", got[0].Label)
	assert.Equal(t, "beta = 1\nalpha = 2\nprint(alpha)\n", got[0].Code)
	assert.Equal(t, "replace gamma with beta", got[1].Label)
	assert.Equal(t, "introduce variable gamma = 0", got[2].Label)
}

func TestGenerate_UndefinedNameWithoutCandidates(t *testing.T) {
	got := generate(t, "print(y)\n")
	require.Len(t, got, 1)
	assert.Equal(t, "y = 0\nprint(y)\n", got[0].Code)
}

func TestGenerate_Clean(t *testing.T) {
	code := "x = 1\nprint(x)\n"

	got := generate(t, code)
	require.Len(t, got, 1)
	assert.Equal(t, types.Suggestion{Label: "no errors detected", Code: code}, got[0])

	// Feeding the fallback back in yields the same result.
	assert.Equal(t, got, generate(t, got[0].Code))
}

func TestGenerate_NilFinding(t *testing.T) {
	got := Generate("pass", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "pass", got[0].Code)
}
