package state

import "sync"

// Storage is the injected persistence boundary for session tokens and
// display settings. The container never reads ambient state (environment,
// browser storage); hosts supply whatever backing they have.
type Storage interface {
	// Token returns the persisted session token, if any.
	Token() (string, bool)

	// SetToken persists the session token. An empty token clears it.
	SetToken(token string)

	// DarkMode returns the persisted dark-mode flag.
	DarkMode() bool

	// SetDarkMode persists the dark-mode flag.
	SetDarkMode(enabled bool)
}

// MemoryStorage is an in-process Storage, used in tests and by hosts
// without durable settings.
type MemoryStorage struct {
	mu       sync.Mutex
	token    string
	darkMode bool
}

var _ Storage = &MemoryStorage{} // Compile-time check

// Token implements Storage.
func (m *MemoryStorage) Token() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

// SetToken implements Storage.
func (m *MemoryStorage) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// DarkMode implements Storage.
func (m *MemoryStorage) DarkMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.darkMode
}

// SetDarkMode implements Storage.
func (m *MemoryStorage) SetDarkMode(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.darkMode = enabled
}
