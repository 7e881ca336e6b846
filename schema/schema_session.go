package schema

import "time"

// User is the authenticated dashboard user as returned by the upstream API.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Credentials carries a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries a signup request.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful login or registration.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// ProjectsOverview is the dashboard landing payload: per-project metric
// series ready for formatting.
type ProjectsOverview struct {
	Projects []ProjectMetrics `json:"projects"`
}

// ProjectMetrics bundles the metric series of one project.
type ProjectMetrics struct {
	Name   string        `json:"name"`
	Score  float64       `json:"score"` // Health score in [0,1]
	Series []MetricPoint `json:"series"`
}
