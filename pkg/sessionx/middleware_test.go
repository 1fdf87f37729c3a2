package sessionx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func gatedEcho(t *testing.T, store *Store) http.Handler {
	t.Helper()
	return Require(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := Username(r.Context())
		require.True(t, ok, "gate should place username in context")
		_, _ = w.Write([]byte(username))
	}))
}

func TestRequire_NoCookieRedirects(t *testing.T) {
	store := NewStore(time.Hour)
	h := gatedEcho(t, store)

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, LoginRedirectPath, rec.Header().Get("Location"))
}

func TestRequire_UnknownSessionRedirects(t *testing.T) {
	store := NewStore(time.Hour)
	h := gatedEcho(t, store)

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "forged-or-stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, LoginRedirectPath, rec.Header().Get("Location"))
}

func TestRequire_LiveSessionPasses(t *testing.T) {
	store := NewStore(time.Hour)
	h := gatedEcho(t, store)

	sess, err := store.Create("usuario1", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "usuario1", rec.Body.String())
}

func TestRequire_InvalidatedSessionRedirects(t *testing.T) {
	store := NewStore(time.Hour)
	h := gatedEcho(t, store)

	sess, err := store.Create("usuario1", "")
	require.NoError(t, err)
	store.Invalidate(sess.ID)

	req := httptest.NewRequest(http.MethodGet, "/panel", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, LoginRedirectPath, rec.Header().Get("Location"))
}

func TestUsername_AbsentWithoutGate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Username(req.Context())
	require.False(t, ok)
}

func TestCookieRoundTrip(t *testing.T) {
	store := NewStore(time.Hour)
	sess, err := store.Create("usuario1", "")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	SetCookie(rec, sess, false)

	res := rec.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, CookieName, c.Name)
	require.Equal(t, sess.ID, c.Value)
	require.True(t, c.HttpOnly, "session cookie must be HttpOnly")
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	id, ok := FromRequest(req)
	require.True(t, ok)
	require.Equal(t, sess.ID, id)
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec, false)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
