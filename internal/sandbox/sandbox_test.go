// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sandbox

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePython skips the test when no python3 interpreter is installed.
func requirePython(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath(defaultInterpreter); err != nil {
		t.Skipf("%s not available: %v", defaultInterpreter, err)
	}
}

func TestRun_CapturesOutput(t *testing.T) {
	requirePython(t)

	result := New(Config{}).Run(context.Background(), "print(1+1)", "")
	assert.Equal(t, "2\n", result.Output)
	assert.Equal(t, "", result.Error)
	assert.True(t, result.OK())
}

func TestRun_DivisionByZero(t *testing.T) {
	requirePython(t)

	result := New(Config{}).Run(context.Background(), "x = 1/0", "")
	assert.Equal(t, "", result.Output)
	assert.Contains(t, result.Error, "division by zero")
}

func TestRun_FeedsInput(t *testing.T) {
	requirePython(t)

	code := "name = input()\nage = int(input())\nprint('hi', name, age + 1)\n"
	result := New(Config{}).Run(context.Background(), code, "bob\n41")
	assert.Equal(t, "hi bob 42\n", result.Output)
	assert.Empty(t, result.Error)
}

func TestRun_OutputBeforeFailureIsKept(t *testing.T) {
	requirePython(t)

	result := New(Config{}).Run(context.Background(), "print('a')\nraise ValueError('bad value')\n", "")
	assert.Equal(t, "a\n", result.Output)
	assert.Equal(t, "bad value", result.Error)
}

func TestRun_FailureKinds(t *testing.T) {
	requirePython(t)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"bare exception", "raise RuntimeError", "RuntimeError"},
		{"name error", "print(missing)", "name 'missing' is not defined"},
		{"input exhausted", "input()", "EOF when reading a line"},
		{"exit status", "import sys\nsys.exit(3)", "exit status 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(Config{}).Run(context.Background(), tt.code, "")
			assert.Equal(t, tt.want, result.Error)
		})
	}
}

func TestRun_SyntaxErrorHasLine(t *testing.T) {
	requirePython(t)

	result := New(Config{}).Run(context.Background(), "x = 1\nif x\n    pass\n", "")
	assert.Contains(t, result.Error, "(<string>, line 2)")
}

func TestRun_ErrorIsExceptionString(t *testing.T) {
	requirePython(t)

	tests := []struct {
		name string
		code string
		want string
	}{
		{"multi-line message", "raise ValueError('a\\nb')", "a\nb"},
		{"name error without hint", "x = 1\nprint(xx)", "name 'xx' is not defined"},
		{"custom exception", "class Boom(Exception):\n    pass\nraise Boom('bang')", "bang"},
		{"key error repr", "{}['k']", "'k'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := New(Config{}).Run(context.Background(), tt.code, "")
			assert.Equal(t, tt.want, result.Error)
		})
	}
}

func TestRun_SnippetStderrIsNotTheError(t *testing.T) {
	requirePython(t)

	code := "import sys\nsys.stderr.write('warning: noisy\\n')\nprint('ok')\n"
	result := New(Config{}).Run(context.Background(), code, "")
	assert.Equal(t, "ok\n", result.Output)
	assert.Empty(t, result.Error)
}

func TestRun_MainGuardRuns(t *testing.T) {
	requirePython(t)

	result := New(Config{}).Run(context.Background(), "if __name__ == '__main__':\n    print('main')\n", "")
	assert.Equal(t, "main\n", result.Output)
}

func TestRun_MissingInterpreter(t *testing.T) {
	result := New(Config{Interpreter: "snipfix-no-such-python"}).Run(context.Background(), "print(1)", "")
	assert.Empty(t, result.Output)
	assert.NotEmpty(t, result.Error)
}

func TestRun_Timeout(t *testing.T) {
	requirePython(t)

	sb := New(Config{Timeout: 300 * time.Millisecond})
	result := sb.Run(context.Background(), "while True:\n    pass\n", "")
	assert.Equal(t, "execution timed out after 300ms", result.Error)
}

func TestRun_ParentCanceled(t *testing.T) {
	requirePython(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := New(Config{}).Run(ctx, "print(1)", "")
	assert.Contains(t, result.Error, "execution canceled")
}

func TestRun_ConcurrentCallsDoNotShareStreams(t *testing.T) {
	requirePython(t)

	sb := New(Config{})
	const n = 8
	results := make([]string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := "import time\nv = input()\ntime.sleep(0.05)\nprint(v)\n"
			results[i] = sb.Run(context.Background(), code, fmt.Sprintf("call-%d", i)).Output
		}(i)
	}
	wg.Wait()

	for i, out := range results {
		require.Equal(t, fmt.Sprintf("call-%d\n", i), out)
	}
}
