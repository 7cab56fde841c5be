// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package sandbox

import "strings"

// errorMarker precedes the exception message the bootstrap writes to
// stderr when the snippet raises.
const errorMarker = "__snipfix_error__:"

// bootstrap is passed to the interpreter with -c and runs the snippet file
// named by its first argument. The snippet is compiled under the name
// "<string>", so syntax errors read as they do for exec(code). When the
// snippet raises an Exception, str(e) (or the exception type when that is
// empty) is written after errorMarker and the interpreter exits with 1.
// SystemExit and other BaseExceptions propagate unchanged.
const bootstrap = `import sys
path = sys.argv[1]
sys.argv = sys.argv[1:]
with open(path, encoding="utf-8") as f:
    source = f.read()
scope = {"__name__": "__main__", "__file__": path, "__builtins__": __builtins__}
try:
    exec(compile(source, "<string>", "exec"), scope)
except Exception as e:
    sys.stdout.flush()
    sys.stderr.write("\n` + errorMarker + `" + (str(e) or type(e).__name__))
    sys.stderr.flush()
    sys.exit(1)
`

// exceptionMessage returns the message the bootstrap reported in stderr,
// or false when the snippet did not fail with an exception.
func exceptionMessage(stderr string) (string, bool) {
	i := strings.LastIndex(stderr, errorMarker)
	if i < 0 {
		return "", false
	}
	return stderr[i+len(errorMarker):], true
}
