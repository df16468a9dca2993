package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore is a mock implementation of storage.Store
type MockStore struct {
	mock.Mock
}

// Load mocks the Load method
func (m *MockStore) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Save mocks the Save method
func (m *MockStore) Save(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

// Close mocks the Close method
func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
