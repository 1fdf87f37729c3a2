package http

import (
	"net/http"

	"github.com/couriersync/couriersync/pkg/sessionx"
)

type LogoutHandler struct {
	Sessions     *sessionx.Store
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Invalidate the current session and redirect to the login page.
//	@Description	Invalidation is terminal: the session identifier can never be used again.
//	@Tags			Auth
//	@Success		302	{string}	string	"redirect to /login?logout"
//	@Router			/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if id, ok := sessionx.FromRequest(r); ok {
		h.Sessions.Invalidate(id)
	}

	sessionx.ClearCookie(w, h.CookieSecure)
	http.Redirect(w, r, sessionx.LoginRedirectPath, http.StatusFound)
}
