/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package update

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockUpdater implements Updater for testing
type MockUpdater struct {
	mock.Mock
}

func (m *MockUpdater) Run(ctx context.Context, dryRun bool) error {
	args := m.Called(ctx, dryRun)
	return args.Error(0)
}

func (m *MockUpdater) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
