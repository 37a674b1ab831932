/*
Copyright © 2025 Navgen Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"github.com/stretchr/testify/mock"
)

// MockSettingsProvider implements SettingsProvider for testing
type MockSettingsProvider struct {
	mock.Mock
}

func (m *MockSettingsProvider) Load() (*Settings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}
