package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/service"
	"github.com/couriersync/couriersync/pkg/httpx"
	"github.com/couriersync/couriersync/pkg/sessionx"
	"github.com/couriersync/couriersync/pkg/slogx"
)

type LoginHandler struct {
	LoginService *service.LoginService
	CookieSecure bool
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate with username, password, and role claim. Issues a fresh session cookie on success.
//	@Description	Unknown usernames, wrong passwords, and role mismatches all return the same 401 response.
//	@Tags			Auth
//	@Accept			json
//	@Produce		plain
//	@Param			request	body		domain.LoginRequest	true	"Login credentials"
//	@Success		200		{string}	string				"Login successful"
//	@Failure		400		{object}	map[string]string	"field validation errors"
//	@Failure		401		{string}	string				"Invalid credentials"
//	@Router			/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	// Any session cookie the client already holds is rotated away on
	// success so a pre-login identifier never survives authentication.
	prior, _ := sessionx.FromRequest(r)

	sess, err := h.LoginService.Login(ctx, req, prior)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.WriteJSON(w, http.StatusBadRequest, verr.Fields)
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteText(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			log.Error("login failed", "err", err)
			httpx.WriteText(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	sessionx.SetCookie(w, sess, h.CookieSecure)
	httpx.WriteText(w, http.StatusOK, msgLoginOK)
}
