package sessionx

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// LoginRedirectPath is where unauthenticated requests to protected resources
// are sent. The logout marker distinguishes "sent here by the gate" from a
// direct visit.
const LoginRedirectPath = "/login?logout"

// Require gates protected resources. Requests without a live session are
// redirected to the login entry point; requests with one proceed with the
// authenticated username available via Username.
func Require(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromRequest(r)
			if !ok {
				http.Redirect(w, r, LoginRedirectPath, http.StatusFound)
				return
			}

			sess, ok := store.Get(id)
			if !ok {
				http.Redirect(w, r, LoginRedirectPath, http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Username returns the authenticated username placed in the context by
// Require. ok is false on requests that did not pass through the gate.
func Username(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(ctxKey{}).(string)
	return u, ok && u != ""
}
