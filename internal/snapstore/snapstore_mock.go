package snapstore

import (
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotManager is a mock implementation of SnapshotManager for testing.
type MockSnapshotManager struct {
	mock.Mock
}

var _ contract.SnapshotManager = &MockSnapshotManager{} // Compile-time check

// GetSnapshotStore implements the SnapshotManager interface.
func (m *MockSnapshotManager) GetSnapshotStore() contract.SnapshotStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.SnapshotStore)
	return store
}

// MockSnapshotStore is a mock implementation of SnapshotStore for testing.
type MockSnapshotStore struct {
	mock.Mock
}

var _ contract.SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Get implements the SnapshotStore interface.
func (m *MockSnapshotStore) Get(key string) ([]byte, int, int64, error) {
	args := m.Called(key)
	return args.Get(0).([]byte), args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the SnapshotStore interface.
func (m *MockSnapshotStore) Set(key string, data []byte, version int, ts int64) error {
	args := m.Called(key, data, version, ts)
	return args.Error(0)
}

// GetAll implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetAll() (map[string][]byte, error) {
	args := m.Called()
	payloads, _ := args.Get(0).(map[string][]byte)
	return payloads, args.Error(1)
}

// Close implements the SnapshotStore interface.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetStatus implements the SnapshotStore interface.
func (m *MockSnapshotStore) GetStatus() (schema.SnapshotStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SnapshotStatus), args.Error(1)
}
