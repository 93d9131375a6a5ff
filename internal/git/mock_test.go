// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"
)

// mockRunner mocks the Runner interface.
type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	ret := m.Called(dir, args)
	return ret.String(0), ret.Error(1)
}

func newMockRunner(dir string, args []string, stdout string, err error) *mockRunner {
	r := &mockRunner{}
	r.On("Run", dir, args).Return(stdout, err).Once()
	return r
}

var errCommandFailed = errors.New("exit status 128")
