// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"
	"errors"

	"github.com/petar-djukic/snipfix/internal/syntax"
)

// SyntaxError parses the snippet on its own and reports the first parse
// failure. It never proposes a repair.
func SyntaxError(ctx context.Context, code string) *Finding {
	_, err := syntax.Parse(ctx, code)
	var se *syntax.SyntaxError
	if !errors.As(err, &se) {
		return nil
	}
	return &Finding{
		Kind:    KindSyntaxError,
		Line:    se.Line,
		Message: se.Message,
	}
}
