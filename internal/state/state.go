// Package state owns the app-wide state container: session/auth, the
// dashboard overview payload and the dark-mode flag. All mutation flows
// through reducer-style actions applied under one lock; collaborators
// (upstream API client, storage, notification center) are injected.
package state

import (
	"context"
	"sync"

	"github.com/pulseboard/pulseboard/internal/dashapi"
	"github.com/pulseboard/pulseboard/internal/notify"
	"github.com/pulseboard/pulseboard/schema"
)

// AppState is the single aggregate owned by the container. Readers get
// copies; nothing here is mutated outside the reducer.
type AppState struct {
	User            *schema.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	DarkMode        bool
	Overview        *schema.ProjectsOverview
}

// action is a reducer input. Every state transition is one of these.
type action interface{ isAction() }

type (
	setLoading   struct{ loading bool }
	loginOK      struct{ session schema.Session }
	loggedOut    struct{}
	setError     struct{ message string }
	setOverview  struct{ overview schema.ProjectsOverview }
	setDarkMode  struct{ enabled bool }
)

func (setLoading) isAction()  {}
func (loginOK) isAction()     {}
func (loggedOut) isAction()   {}
func (setError) isAction()    {}
func (setOverview) isAction() {}
func (setDarkMode) isAction() {}

// Container is the state container. Auth side effects are delegated to the
// injected dashapi.Client; the container only applies the resulting
// transitions. Each auth call carries a generation token: when a newer call
// starts before an older one resolves, the stale resolution is dropped.
type Container struct {
	mu      sync.Mutex
	state   AppState
	token   string
	authGen uint64

	api     dashapi.Client
	storage Storage
	notes   *notify.Center
}

// NewContainer wires a container from its collaborators. The dark-mode flag
// is restored from storage immediately; session restoration is a separate,
// explicitly invoked step since it needs a network round trip.
func NewContainer(api dashapi.Client, storage Storage, notes *notify.Center) *Container {
	c := &Container{api: api, storage: storage, notes: notes}
	c.state.DarkMode = storage.DarkMode()
	return c
}

// State returns a copy of the current state.
func (c *Container) State() AppState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// apply is the reducer: one action in, one synchronous transition out.
// Callers must hold c.mu.
func (c *Container) apply(a action) {
	switch act := a.(type) {
	case setLoading:
		c.state.IsLoading = act.loading
	case loginOK:
		user := act.session.User
		c.state.User = &user
		c.state.IsAuthenticated = true
		c.state.Error = ""
		c.token = act.session.Token
	case loggedOut:
		c.state.User = nil
		c.state.IsAuthenticated = false
		c.state.IsLoading = false // an in-flight auth call no longer owns the flag
		c.state.Overview = nil
		c.token = ""
	case setError:
		c.state.Error = act.message
	case setOverview:
		overview := act.overview
		c.state.Overview = &overview
	case setDarkMode:
		c.state.DarkMode = act.enabled
	}
}

// beginAuth bumps the auth generation and marks loading. The returned
// generation must accompany the matching resolution.
func (c *Container) beginAuth() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authGen++
	c.apply(setLoading{true})
	return c.authGen
}

// resolveAuth applies finish under the lock unless a newer auth call has
// started in the meantime, in which case the resolution is stale and
// dropped on the floor.
func (c *Container) resolveAuth(gen uint64, finish func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.authGen {
		return
	}
	c.apply(setLoading{false})
	finish()
}

// fail records an error string and fires an error notification. Callers
// must hold c.mu.
func (c *Container) fail(message string) {
	c.apply(setError{message})
	c.notes.Add(schema.ErrorNotification, message, 0)
}

// Login authenticates against the upstream API and applies the session on
// success. Failures set the global error string and fire an error
// notification as well as returning the error.
func (c *Container) Login(ctx context.Context, creds schema.Credentials) error {
	gen := c.beginAuth()
	session, err := c.api.Login(ctx, creds)
	c.resolveAuth(gen, func() {
		if err != nil {
			c.fail("Login failed: " + err.Error())
			return
		}
		c.apply(loginOK{session})
		c.storage.SetToken(session.Token)
		c.notes.Add(schema.SuccessNotification, "Welcome back, "+session.User.Name, 0)
	})
	return err
}

// Register creates an account and logs it in on success. Failure semantics
// match Login.
func (c *Container) Register(ctx context.Context, reg schema.Registration) error {
	gen := c.beginAuth()
	session, err := c.api.Register(ctx, reg)
	c.resolveAuth(gen, func() {
		if err != nil {
			c.fail("Registration failed: " + err.Error())
			return
		}
		c.apply(loginOK{session})
		c.storage.SetToken(session.Token)
		c.notes.Add(schema.SuccessNotification, "Account created", 0)
	})
	return err
}

// Logout invalidates the upstream session. The local session is always
// cleared, even when the upstream call fails: the container never stays in
// an authenticated-but-broken state, so the upstream error is absorbed.
func (c *Container) Logout(ctx context.Context) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	err := c.api.Logout(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.authGen++ // any in-flight auth resolution is now stale
	c.apply(loggedOut{})
	c.storage.SetToken("")
	if err != nil {
		c.notes.Add(schema.WarningNotification, "Server logout failed; session cleared locally", 0)
	}
}

// RestoreSession resumes a persisted session by resolving its user. A
// missing or rejected token leaves the container logged out without firing
// an error notification: an expired session is an expected state.
func (c *Container) RestoreSession(ctx context.Context) {
	token, ok := c.storage.Token()
	if !ok {
		return
	}
	gen := c.beginAuth()
	user, err := c.api.CurrentUser(ctx, token)
	c.resolveAuth(gen, func() {
		if err != nil {
			c.apply(loggedOut{})
			c.storage.SetToken("")
			return
		}
		c.apply(loginOK{schema.Session{Token: token, User: user}})
	})
}

// FetchOverview loads the dashboard landing payload. Failures set the
// global error string and fire an error notification.
func (c *Container) FetchOverview(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.apply(setLoading{true})
	c.mu.Unlock()

	overview, err := c.api.ProjectsOverview(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(setLoading{false})
	if err != nil {
		c.fail("Failed to load dashboard: " + err.Error())
		return err
	}
	c.apply(setOverview{overview})
	c.apply(setError{""})
	return nil
}

// ToggleDarkMode flips the dark-mode flag and persists it.
func (c *Container) ToggleDarkMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apply(setDarkMode{!c.state.DarkMode})
	c.storage.SetDarkMode(c.state.DarkMode)
	return c.state.DarkMode
}
