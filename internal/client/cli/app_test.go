package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidstream/account-system/internal/client/api"
	"github.com/vidstream/account-system/internal/client/guard"
	"github.com/vidstream/account-system/internal/client/session"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "Sign in successful",
			"user": {"id":"1","username":"alice","email":"alice@x.com"},
			"token": "tok-123"
		}`))
	})
	mux.HandleFunc("/api/auth/check-auth", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"message":"invalid token"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"1","username":"alice","email":"alice@x.com"}}`))
	})
	mux.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Signed out successfully"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, srv *httptest.Server) (*App, *session.Store, *bytes.Buffer) {
	t.Helper()
	store, err := session.Open(filepath.Join(t.TempDir(), "auth-storage.json"))
	require.NoError(t, err)
	out := &bytes.Buffer{}
	return NewApp(api.NewClient(srv.URL), store, out), store, out
}

func TestApp_GuardedCommandRequiresLogin(t *testing.T) {
	srv := newTestServer(t)
	app, store, out := newTestApp(t, srv)

	err := app.Run(context.Background(), []string{"whoami"})
	assert.ErrorIs(t, err, guard.ErrLoginRequired)
	assert.Contains(t, out.String(), "login required")
	assert.Equal(t, "whoami", store.ReturnTo())
}

func TestApp_LoginResumesPendingCommand(t *testing.T) {
	srv := newTestServer(t)
	app, store, out := newTestApp(t, srv)

	// Guard records the attempted location.
	_ = app.Run(context.Background(), []string{"whoami"})
	require.Equal(t, "whoami", store.ReturnTo())

	err := app.Run(context.Background(), []string{"login", "-email", "alice@x.com", "-password", "Secret1"})
	require.NoError(t, err)

	// Session established and the pending command ran through the guard.
	assert.Equal(t, "tok-123", store.Token())
	assert.Contains(t, out.String(), "resuming whoami")
	assert.Contains(t, out.String(), "alice <alice@x.com>")
	assert.Empty(t, store.ReturnTo())
}

func TestApp_LogoutClearsSession(t *testing.T) {
	srv := newTestServer(t)
	app, store, out := newTestApp(t, srv)

	require.NoError(t, app.Run(context.Background(), []string{"login", "-email", "alice@x.com", "-password", "Secret1"}))
	require.NotNil(t, store.User())

	require.NoError(t, app.Run(context.Background(), []string{"logout"}))
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	assert.Contains(t, out.String(), "signed out")
}
