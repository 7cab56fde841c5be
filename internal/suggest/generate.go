// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package suggest turns detector findings into labeled repaired snippets
// and renders them as patches.
package suggest

import (
	"fmt"

	"github.com/petar-djukic/snipfix/internal/detect"
	"github.com/petar-djukic/snipfix/pkg/types"
)

// defaultValue initializes a name introduced for an undefined reference.
const defaultValue = "0"

// Generate builds the ordered suggestions for a finding. It always returns
// at least one suggestion; a KindNone finding echoes the snippet back.
func Generate(code string, f *detect.Finding) []types.Suggestion {
	if f == nil {
		return []types.Suggestion{clean(code)}
	}

	switch f.Kind {
	case detect.KindInfiniteLoop:
		return []types.Suggestion{{
			Label: fmt.Sprintf("infinite loop at line %d, adding break", f.Line),
			Code:  InsertLine(code, f.InsertAfter, f.Indent+"break"),
		}}

	case detect.KindMissingSeparator:
		return []types.Suggestion{{
			Label: fmt.Sprintf("possibly missing comma at line %d", f.Line),
			Code:  ReplaceLine(code, f.Line, f.Replacement),
		}}

	case detect.KindSyntaxError:
		return []types.Suggestion{{
			Label: fmt.Sprintf("syntax error at line %d: %s", f.Line, f.Message),
			Code:  code,
		}}

	case detect.KindUndefinedName:
		return undefinedName(code, f)

	default:
		return []types.Suggestion{clean(code)}
	}
}

// undefinedName offers one rename per defined candidate, in order, then
// an initialization of the missing name.
func undefinedName(code string, f *detect.Finding) []types.Suggestion {
	suggestions := make([]types.Suggestion, 0, len(f.Candidates)+1)
	for _, candidate := range f.Candidates {
		if candidate == f.Name {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			Label: fmt.Sprintf("replace %s with %s", f.Name, candidate),
			Code:  ReplaceWord(code, f.Name, candidate),
		})
	}

	assignment := fmt.Sprintf("%s = %s", f.Name, defaultValue)
	suggestions = append(suggestions, types.Suggestion{
		Label: "introduce variable " + assignment,
		Code:  Prepend(code, assignment),
	})
	return suggestions
}

func clean(code string) types.Suggestion {
	return types.Suggestion{Label: "no errors detected", Code: code}
}
