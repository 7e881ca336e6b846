package dashapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsCredentialsAndDecodesSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"), "login carries no token")

		var creds schema.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds.Email)

		_ = json.NewEncoder(w).Encode(schema.Session{
			Token: "tok-123",
			User:  schema.User{ID: "u1", Name: "Ada"},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	session, err := client.Login(context.Background(), schema.Credentials{
		Email:    "ada@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "Ada", session.User.Name)
}

func TestCurrentUserSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(schema.User{ID: "u1", Name: "Ada"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL + "/") // trailing slash is normalized
	user, err := client.CurrentUser(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestLogoutAcceptsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	assert.NoError(t, client.Logout(context.Background(), "tok-123"))
}

func TestNon2xxBecomesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.CurrentUser(context.Background(), "expired")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "invalid token")
}

func TestDecodeErrorSurfacesPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	_, err := client.ProjectsOverview(context.Background(), "tok-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/projects/overview")
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHTTPClient(server.URL)
	err := client.Logout(ctx, "tok-123")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
