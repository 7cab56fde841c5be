// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"context"

	"github.com/petar-djukic/snipfix/internal/syntax"
	"github.com/petar-djukic/snipfix/pkg/types"
)

// UndefinedName reports the alphabetically first name that is read but
// neither defined nor builtin. Every defined name becomes a rename
// candidate.
func UndefinedName(ctx context.Context, code string) *Finding {
	st := syntax.Collect(ctx, code)
	undefined := st.Undefined()
	if len(undefined) == 0 {
		return nil
	}

	name := undefined[0]
	line := 0
	if occ := st.ByName(name); len(occ) > 0 {
		line = occ[0].Line
	}
	return &Finding{
		Kind:       KindUndefinedName,
		Line:       line,
		Name:       name,
		Candidates: st.Names(types.Defined),
	}
}
