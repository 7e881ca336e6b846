// Package dashapi is the client boundary to the upstream dashboard API.
// The session container only ever sees the Client interface, so auth flows
// are testable without a network.
package dashapi

import (
	"context"

	"github.com/pulseboard/pulseboard/schema"
)

// Client defines the upstream operations the state container delegates to.
// Every call is an independent asynchronous operation; callers await
// completion before applying the resulting state transition.
type Client interface {
	// Login exchanges credentials for a session.
	Login(ctx context.Context, creds schema.Credentials) (schema.Session, error)

	// Logout invalidates the server-side session for the token.
	Logout(ctx context.Context, token string) error

	// Register creates an account and returns its initial session.
	Register(ctx context.Context, reg schema.Registration) (schema.Session, error)

	// CurrentUser resolves the user behind a token.
	CurrentUser(ctx context.Context, token string) (schema.User, error)

	// ProjectsOverview fetches the dashboard landing payload.
	ProjectsOverview(ctx context.Context, token string) (schema.ProjectsOverview, error)
}
