// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// CurrentBranch returns the checked-out branch of the repository containing
// dir, or "" when it cannot be determined. A detached HEAD yields "HEAD".
func CurrentBranch(ctx context.Context, runner Runner, dir string) string {
	out, err := runner.Run(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("dir", dir).Msg("git branch lookup failed")
		return ""
	}
	return strings.TrimSpace(out)
}
