package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func responseCookies(w *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, ck := range (&http.Response{Header: w.Header()}).Cookies() {
		out[ck.Name] = ck
	}
	return out
}

func TestCurrentUser_NoCookies(t *testing.T) {
	p := NewMockProvider()
	m := NewSessionManager(p, nil, SessionOptions{})
	c, _ := newContext()

	u, err := m.CurrentUser(c)
	assert.NoError(t, err)
	assert.Nil(t, u)
	assert.Empty(t, p.Calls)
}

func TestCurrentUser_ValidTokenViaProvider(t *testing.T) {
	p := NewMockProvider()
	p.AddUser("u1", "a@b.c", "pw")
	m := NewSessionManager(p, nil, SessionOptions{})
	c, _ := newContext(&http.Cookie{Name: AccessTokenCookie, Value: "token-u1"})

	u, err := m.CurrentUser(c)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
}

func TestCurrentUser_ExpiredTokenIsRefreshedAndCookiesWritten(t *testing.T) {
	p := NewMockProvider()
	p.AddUser("u1", "a@b.c", "pw")
	m := NewSessionManager(p, NewTokenVerifier("s3cret"), SessionOptions{})

	expired := signToken(t, "s3cret", "u1", time.Now().Add(-time.Minute))
	c, w := newContext(
		&http.Cookie{Name: AccessTokenCookie, Value: expired},
		&http.Cookie{Name: RefreshTokenCookie, Value: "refresh-u1"},
	)

	u, err := m.CurrentUser(c)
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, 1, p.CallCount("RefreshSession"))

	cookies := responseCookies(w)
	require.Contains(t, cookies, AccessTokenCookie)
	assert.Equal(t, "token-u1", cookies[AccessTokenCookie].Value)
	assert.True(t, cookies[AccessTokenCookie].HttpOnly)
}

func TestCurrentUser_InvalidWithoutRefreshClearsCookies(t *testing.T) {
	p := NewMockProvider()
	m := NewSessionManager(p, nil, SessionOptions{})
	c, w := newContext(&http.Cookie{Name: AccessTokenCookie, Value: "token-ghost"})

	u, err := m.CurrentUser(c)
	assert.NoError(t, err)
	assert.Nil(t, u)

	cookies := responseCookies(w)
	require.Contains(t, cookies, AccessTokenCookie)
	assert.Equal(t, "", cookies[AccessTokenCookie].Value)
}

func TestCurrentUser_ProviderUnavailable(t *testing.T) {
	p := NewMockProvider()
	p.Err = ErrUnavailable
	m := NewSessionManager(p, nil, SessionOptions{})
	c, _ := newContext(&http.Cookie{Name: AccessTokenCookie, Value: "token-u1"})

	u, err := m.CurrentUser(c)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Nil(t, u)
}

func TestBeginOAuthAndExchangeCode(t *testing.T) {
	p := NewMockProvider()
	p.AddUser("u1", "a@b.c", "pw")
	p.Codes["abc"] = "u1"
	m := NewSessionManager(p, nil, SessionOptions{})

	c, w := newContext()
	authURL, err := m.BeginOAuth(c, "google", "http://site/auth/callback", map[string]string{"prompt": "consent"})
	require.NoError(t, err)
	assert.Contains(t, authURL, "provider=google")
	verifier := responseCookies(w)[CodeVerifierCookie]
	require.NotNil(t, verifier)
	assert.NotEmpty(t, verifier.Value)

	c2, w2 := newContext(verifier)
	s, err := m.ExchangeCode(c2, "abc")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.User.ID)

	cookies := responseCookies(w2)
	assert.Equal(t, "token-u1", cookies[AccessTokenCookie].Value)
	assert.Equal(t, "", cookies[CodeVerifierCookie].Value)
}

func TestCodeChallengeIsDeterministic(t *testing.T) {
	assert.Equal(t, codeChallenge("abc"), codeChallenge("abc"))
	assert.NotEqual(t, codeChallenge("abc"), codeChallenge("abd"))
	assert.NotContains(t, codeChallenge("abc"), "=")
}
