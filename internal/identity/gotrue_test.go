package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *GoTrueClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewGoTrueClient(GoTrueConfig{
		URL:        srv.URL,
		AnonKey:    "anon",
		Timeout:    2 * time.Second,
		RetryCount: 1,
		RetrySleep: time.Millisecond,
	})
}

func TestGoTrue_SignInWithPassword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		if body["password"] != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600,"user":{"id":"u1","email":"a@b.c"}}`))
	})

	s, err := client.SignInWithPassword(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	assert.Equal(t, "at", s.AccessToken)
	assert.Equal(t, "u1", s.User.ID)

	_, err = client.SignInWithPassword(context.Background(), "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGoTrue_GetUserSendsBearer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"msg":"invalid JWT"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.c","user_metadata":{"name":"Ada"}}`))
	})

	u, err := client.GetUser(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.DisplayName())

	_, err = client.GetUser(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGoTrue_ServerErrorIsRetriedThenUnavailable(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetUser(context.Background(), "any")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGoTrue_SignUpWithoutSessionRequiresConfirmation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"name": "Ada"}, body["data"])
		_, _ = w.Write([]byte(`{"id":"u1","email":"a@b.c"}`))
	})

	res, err := client.SignUp(context.Background(), "a@b.c", "secret1", map[string]interface{}{"name": "Ada"})
	require.NoError(t, err)
	assert.Nil(t, res.Session)
	assert.Equal(t, "u1", res.User.ID)
}

func TestGoTrue_SignUpExistingUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`))
	})

	_, err := client.SignUp(context.Background(), "a@b.c", "secret1", nil)
	assert.True(t, errors.Is(err, ErrUserExists))
}

func TestGoTrue_ExchangeCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pkce", r.URL.Query().Get("grant_type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["auth_code"] != "abc" || body["code_verifier"] != "v" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"invalid flow state"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","user":{"id":"u1"}}`))
	})

	s, err := client.ExchangeCodeForSession(context.Background(), "abc", "v")
	require.NoError(t, err)
	assert.Equal(t, "rt", s.RefreshToken)

	_, err = client.ExchangeCodeForSession(context.Background(), "abc", "other")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGoTrue_AuthorizeURL(t *testing.T) {
	client := NewGoTrueClient(GoTrueConfig{URL: "https://proj.example.co/", AnonKey: "anon"})

	raw, err := client.AuthorizeURL(OAuthRequest{
		Provider:      "google",
		RedirectTo:    "https://site/auth/callback",
		CodeChallenge: "challenge",
		QueryParams:   map[string]string{"prompt": "consent"},
	})
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/auth/v1/authorize", u.Path)
	assert.Equal(t, "google", u.Query().Get("provider"))
	assert.Equal(t, "s256", u.Query().Get("code_challenge_method"))
	assert.Equal(t, "consent", u.Query().Get("prompt"))

	_, err = client.AuthorizeURL(OAuthRequest{})
	assert.Error(t, err)
}
