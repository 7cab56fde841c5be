// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntaxError_ReportsLine(t *testing.T) {
	f := SyntaxError(context.Background(), "x = 1\ny = = 2\n")
	require.NotNil(t, f)
	assert.Equal(t, KindSyntaxError, f.Kind)
	assert.Equal(t, 2, f.Line)
	assert.NotEmpty(t, f.Message)
}

func TestChain_GrammarPermissiveSnippetsAreSyntaxErrors(t *testing.T) {
	tests := []struct {
		code string
		line int
	}{
		{`print "hello"`, 1},
		{"x = 1\nprint x", 2},
		{`exec "x = 1"`, 1},
		{"x = 1\n    y = 2", 2},
		{"if True:\n    a = 1\n  b = 2", 3},
		{"x = 1\nif x:\nprint(x)", 3},
		{"while True:\nprint(1)", 2},
		{"f(**k, *a)", 1},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			f := Default().Run(context.Background(), tt.code)
			assert.Equal(t, KindSyntaxError, f.Kind)
			assert.Equal(t, tt.line, f.Line)

			assert.Nil(t, InfiniteLoop(context.Background(), tt.code))
			assert.Nil(t, UndefinedName(context.Background(), tt.code))
		})
	}
}

func TestSyntaxError_ValidCode(t *testing.T) {
	assert.Nil(t, SyntaxError(context.Background(), "x = 1\n"))
}

func TestUndefinedName_SmallestName(t *testing.T) {
	f := UndefinedName(context.Background(), "x = 1\nprint(zeta, alpha)\n")
	require.NotNil(t, f)
	assert.Equal(t, KindUndefinedName, f.Kind)
	assert.Equal(t, "alpha", f.Name)
	assert.Equal(t, 2, f.Line)
	assert.Equal(t, []string{"x"}, f.Candidates)
}

func TestUndefinedName_NoneMissing(t *testing.T) {
	assert.Nil(t, UndefinedName(context.Background(), "x = 1\nprint(x)\n"))
}

func TestUndefinedName_UnparseableSnippet(t *testing.T) {
	assert.Nil(t, UndefinedName(context.Background(), "print(y\n"))
}

func TestChain_Priority(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Kind
	}{
		{"loop before undefined", "while True:\n    print(y)\n", KindInfiniteLoop},
		{"separator before syntax", "print(a b)\n", KindMissingSeparator},
		{"syntax before undefined", "print(y\n", KindSyntaxError},
		{"undefined", "x = 1\nprint(y)", KindUndefinedName},
		{"clean", "x = 1\nprint(x)\n", KindNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default().Run(context.Background(), tt.code)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Kind)
		})
	}
}

func TestChain_StopsAtFirstMatch(t *testing.T) {
	var calls []string
	record := func(name string, match bool) Detector {
		return func(context.Context, string) *Finding {
			calls = append(calls, name)
			if match {
				return &Finding{Kind: KindSyntaxError}
			}
			return nil
		}
	}

	chain := Chain{record("first", false), record("second", true), record("third", true)}
	f := chain.Run(context.Background(), "")

	assert.Equal(t, KindSyntaxError, f.Kind)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestChain_EmptyFallsBack(t *testing.T) {
	f := Chain{}.Run(context.Background(), "anything")
	assert.Equal(t, KindNone, f.Kind)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "infinite_loop", KindInfiniteLoop.String())
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
