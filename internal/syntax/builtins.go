// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package syntax

// builtins lists names that are always considered defined. It is read-only
// after package initialization.
var builtins = map[string]bool{}

func init() {
	for _, name := range []string{
		// Builtin functions and types.
		"abs", "all", "any", "ascii", "bin", "bool", "bytearray", "bytes", "callable",
		"chr", "classmethod", "compile", "complex", "delattr", "dict", "dir", "divmod",
		"enumerate", "eval", "exec", "filter", "float", "format", "frozenset", "getattr",
		"globals", "hasattr", "hash", "help", "hex", "id", "input", "int", "isinstance",
		"issubclass", "iter", "len", "list", "locals", "map", "max", "memoryview", "min",
		"next", "object", "oct", "open", "ord", "pow", "print", "property", "range",
		"repr", "reversed", "round", "set", "setattr", "slice", "sorted", "str", "sum",
		"super", "tuple", "type", "vars", "zip", "import",

		// Exceptions.
		"BaseException", "Exception", "ArithmeticError", "AssertionError",
		"AttributeError", "EOFError", "FileNotFoundError", "ImportError",
		"IndexError", "KeyError", "KeyboardInterrupt", "LookupError",
		"MemoryError", "ModuleNotFoundError", "NameError", "NotImplementedError",
		"OSError", "OverflowError", "RecursionError", "RuntimeError",
		"StopIteration", "SyntaxError", "SystemExit", "TypeError",
		"UnicodeError", "ValueError", "ZeroDivisionError", "NotImplemented",
		"Ellipsis",

		// Module attributes.
		"__name__", "__file__", "__doc__", "__builtins__",
	} {
		builtins[name] = true
	}
}

// IsBuiltin reports whether name is always considered defined.
func IsBuiltin(name string) bool {
	return builtins[name]
}
