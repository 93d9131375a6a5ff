// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reference

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// mockChooser mocks the Chooser interface.
type mockChooser struct {
	mock.Mock
}

func (m *mockChooser) Choose(_ context.Context, placeholder string, choices []string) (string, bool, error) {
	ret := m.Called(placeholder, choices)
	return ret.String(0), ret.Bool(1), ret.Error(2)
}

// mockRunner mocks git.Runner.
type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	ret := m.Called(dir, args)
	return ret.String(0), ret.Error(1)
}

var allChoices = []string{"Symbol", "Filename (with line)", "Filename (no line)"}
