package state

import (
	"context"
	"errors"
	"testing"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/notify"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient is a testify mock of the upstream dashboard API.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Login(ctx context.Context, creds schema.Credentials) (schema.Session, error) {
	args := m.Called(ctx, creds)
	return args.Get(0).(schema.Session), args.Error(1)
}

func (m *MockClient) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockClient) Register(ctx context.Context, reg schema.Registration) (schema.Session, error) {
	args := m.Called(ctx, reg)
	return args.Get(0).(schema.Session), args.Error(1)
}

func (m *MockClient) CurrentUser(ctx context.Context, token string) (schema.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(schema.User), args.Error(1)
}

func (m *MockClient) ProjectsOverview(ctx context.Context, token string) (schema.ProjectsOverview, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(schema.ProjectsOverview), args.Error(1)
}

func newTestContainer(t *testing.T) (*Container, *MockClient, *MemoryStorage, *notify.Center) {
	t.Helper()
	api := &MockClient{}
	storage := &MemoryStorage{}
	notes := notify.NewCenter(contract.RealClock{})
	return NewContainer(api, storage, notes), api, storage, notes
}

func testSession() schema.Session {
	return schema.Session{
		Token: "tok-123",
		User:  schema.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}
}

func TestLoginSuccess(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	creds := schema.Credentials{Email: "ada@example.com", Password: "secret"}
	api.On("Login", mock.Anything, creds).Return(testSession(), nil)

	require.NoError(t, c.Login(context.Background(), creds))

	state := c.State()
	assert.True(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Error)
	require.NotNil(t, state.User)
	assert.Equal(t, "Ada", state.User.Name)

	token, ok := storage.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)

	items := notes.List()
	require.Len(t, items, 1)
	assert.Equal(t, schema.SuccessNotification, items[0].Kind)
	assert.Equal(t, "Welcome back, Ada", items[0].Message)
	api.AssertExpectations(t)
}

func TestLoginFailure(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	creds := schema.Credentials{Email: "ada@example.com", Password: "wrong"}
	api.On("Login", mock.Anything, creds).Return(schema.Session{}, errors.New("invalid credentials"))

	err := c.Login(context.Background(), creds)
	require.Error(t, err)

	state := c.State()
	assert.False(t, state.IsAuthenticated)
	assert.False(t, state.IsLoading)
	assert.Equal(t, "Login failed: invalid credentials", state.Error)
	assert.Nil(t, state.User)

	_, ok := storage.Token()
	assert.False(t, ok, "failed login must not persist a token")

	items := notes.List()
	require.Len(t, items, 1)
	assert.Equal(t, schema.ErrorNotification, items[0].Kind)
}

func TestRegisterSuccess(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	reg := schema.Registration{Name: "Ada", Email: "ada@example.com", Password: "secret"}
	api.On("Register", mock.Anything, reg).Return(testSession(), nil)

	require.NoError(t, c.Register(context.Background(), reg))

	state := c.State()
	assert.True(t, state.IsAuthenticated)
	token, _ := storage.Token()
	assert.Equal(t, "tok-123", token)

	items := notes.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Account created", items[0].Message)
}

func TestLogoutClearsSessionEvenOnUpstreamError(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	api.On("Login", mock.Anything, mock.Anything).Return(testSession(), nil)
	api.On("Logout", mock.Anything, "tok-123").Return(errors.New("server unreachable"))

	require.NoError(t, c.Login(context.Background(), schema.Credentials{}))
	c.Logout(context.Background())

	state := c.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.Nil(t, state.Overview)

	_, ok := storage.Token()
	assert.False(t, ok, "logout always clears the persisted token")

	var warned bool
	for _, n := range notes.List() {
		if n.Kind == schema.WarningNotification {
			warned = true
		}
	}
	assert.True(t, warned, "upstream failure surfaces as a warning")
}

func TestStaleAuthResolutionDropped(t *testing.T) {
	c, api, _, _ := newTestContainer(t)

	// A login resolves only after logout has bumped the auth generation, so
	// its resolution is stale and must not re-authenticate the container.
	api.On("Logout", mock.Anything, "").Return(nil)
	gen := c.beginAuth()
	c.Logout(context.Background())
	c.resolveAuth(gen, func() {
		c.apply(loginOK{testSession()})
	})

	state := c.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
	assert.False(t, state.IsLoading, "logout clears the flag the dropped resolution would have cleared")
}

func TestRestoreSession(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	storage.SetToken("tok-123")
	api.On("CurrentUser", mock.Anything, "tok-123").Return(schema.User{ID: "u1", Name: "Ada"}, nil)

	c.RestoreSession(context.Background())

	state := c.State()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "Ada", state.User.Name)
	assert.Empty(t, notes.List(), "silent restore fires no notifications")
}

func TestRestoreSessionRejectedToken(t *testing.T) {
	c, api, storage, notes := newTestContainer(t)
	storage.SetToken("expired")
	api.On("CurrentUser", mock.Anything, "expired").Return(schema.User{}, errors.New("401"))

	c.RestoreSession(context.Background())

	state := c.State()
	assert.False(t, state.IsAuthenticated)
	assert.Empty(t, state.Error, "an expired session is not an error state")

	_, ok := storage.Token()
	assert.False(t, ok, "rejected token is cleared")
	assert.Empty(t, notes.List())
}

func TestRestoreSessionWithoutToken(t *testing.T) {
	c, api, _, _ := newTestContainer(t)

	c.RestoreSession(context.Background())

	assert.False(t, c.State().IsAuthenticated)
	api.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestFetchOverview(t *testing.T) {
	c, api, _, _ := newTestContainer(t)
	overview := schema.ProjectsOverview{Projects: []schema.ProjectMetrics{{Name: "alpha", Score: 0.9}}}
	api.On("Login", mock.Anything, mock.Anything).Return(testSession(), nil)
	api.On("ProjectsOverview", mock.Anything, "tok-123").Return(overview, nil)

	require.NoError(t, c.Login(context.Background(), schema.Credentials{}))
	require.NoError(t, c.FetchOverview(context.Background()))

	state := c.State()
	require.NotNil(t, state.Overview)
	assert.Equal(t, "alpha", state.Overview.Projects[0].Name)
	assert.Empty(t, state.Error)
	assert.False(t, state.IsLoading)
}

func TestFetchOverviewFailure(t *testing.T) {
	c, api, _, notes := newTestContainer(t)
	api.On("ProjectsOverview", mock.Anything, "").Return(schema.ProjectsOverview{}, errors.New("503"))

	err := c.FetchOverview(context.Background())
	require.Error(t, err)

	state := c.State()
	assert.Nil(t, state.Overview)
	assert.Equal(t, "Failed to load dashboard: 503", state.Error)
	require.Len(t, notes.List(), 1)
}

func TestToggleDarkMode(t *testing.T) {
	c, _, storage, _ := newTestContainer(t)

	assert.True(t, c.ToggleDarkMode())
	assert.True(t, storage.DarkMode(), "toggle persists to storage")
	assert.True(t, c.State().DarkMode)

	assert.False(t, c.ToggleDarkMode())
	assert.False(t, storage.DarkMode())
}

func TestDarkModeRestoredOnConstruction(t *testing.T) {
	storage := &MemoryStorage{}
	storage.SetDarkMode(true)
	c := NewContainer(&MockClient{}, storage, notify.NewCenter(contract.RealClock{}))
	assert.True(t, c.State().DarkMode)
}
