package http

import (
	"errors"
	"net/http"

	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/couriersync/couriersync/pkg/httpx"
	"github.com/couriersync/couriersync/pkg/sessionx"
	"github.com/couriersync/couriersync/pkg/slogx"
)

type ProfileHandler struct {
	Store store.Store
}

// ServeHTTP godoc
//
//	@Summary		Profile Endpoint
//	@Description	Return the authenticated user's profile. Never includes the password hash or MFA secret.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	domain.Profile
//	@Failure	302	{string}	string	"redirect to /login?logout"
//	@Router			/v1/profile [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username, ok := sessionx.Username(ctx)
	if !ok {
		// The gate middleware puts the username in context; reaching here
		// without one means the handler was wired without it.
		http.Redirect(w, r, sessionx.LoginRedirectPath, http.StatusFound)
		return
	}

	u, err := h.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Session outlived the account.
			http.Redirect(w, r, sessionx.LoginRedirectPath, http.StatusFound)
			return
		}
		log.Error("failed to load profile", "username", username, "err", err)
		httpx.WriteText(w, http.StatusInternalServerError, msgServerError)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, u.Profile())
}
