// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var targetRe = regexp.MustCompile(`^(.+?):(\d+)(?:-(\d+))?$`)

// parseTarget splits FILE[:LINE[-END]]. A target without a line refers to
// line 1; end is zero unless a range is given.
func parseTarget(arg string) (file string, line, end int, err error) {
	if arg == "" {
		return "", 0, 0, errors.New("empty target")
	}

	m := targetRe.FindStringSubmatch(arg)
	if m == nil {
		return arg, 1, 0, nil
	}

	if line, err = strconv.Atoi(m[2]); err != nil || line < 1 {
		return "", 0, 0, fmt.Errorf("invalid line in %q", arg)
	}
	if m[3] != "" {
		if end, err = strconv.Atoi(m[3]); err != nil || end < 1 {
			return "", 0, 0, fmt.Errorf("invalid end line in %q", arg)
		}
	}
	return m[1], line, end, nil
}
