package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/signup", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "User registered successfully",
			"user": {"id":"1","username":"alice","email":"alice@x.com"},
			"token": "tok-123"
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Register(context.Background(), "alice", "alice@x.com", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "tok-123", res.Token)
	assert.Equal(t, "User registered successfully", res.Message)
}

func TestClient_Login_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Invalid email or password"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "alice@x.com", "wrongpass")

	// The server message is surfaced verbatim in a normalized error.
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestClient_Login_EmptyErrorBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "alice@x.com", "pass")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Failed to login", apiErr.Message)
}

func TestClient_TransportErrorNotNormalized(t *testing.T) {
	// Point at a closed server so the transport itself fails.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Login(context.Background(), "alice@x.com", "pass")

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport errors must propagate unchanged")
}

func TestClient_AuthTokenHeader(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"1","username":"alice","email":"alice@x.com"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	// No token set yet: no Authorization header.
	_, err := c.CheckAuth(context.Background())
	require.NoError(t, err)

	c.SetAuthToken("tok-123")
	_, err = c.CheckAuth(context.Background())
	require.NoError(t, err)

	c.ClearAuthToken()
	_, err = c.CheckAuth(context.Background())
	require.NoError(t, err)

	require.Len(t, gotAuth, 3)
	assert.Empty(t, gotAuth[0])
	assert.Equal(t, "Bearer tok-123", gotAuth[1])
	assert.Empty(t, gotAuth[2])
}

func TestClient_GetUsers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","username":"alice","email":"alice@x.com"},
			{"id":"2","username":"bob","email":"bob@x.com"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	users, err := c.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[1].Username)
}

func TestClient_Signout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/signout", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"message":"Signed out successfully"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetAuthToken("tok-123")
	require.NoError(t, c.Signout(context.Background()))
}
