package http

import (
	"net/http"

	"github.com/couriersync/couriersync/pkg/httpx"
)

// PanelHandler godoc
//
//	@Summary		Internal Panel Endpoint
//	@Description	Sample protected resource. Reachable only with a live session; otherwise redirects to the login page.
//	@Tags			Panel
//	@Produce		plain
//	@Success		200	{string}	string	"Contenido interno"
//	@Failure		302	{string}	string	"redirect to /login?logout"
//	@Router			/panel [get].
func PanelHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteText(w, http.StatusOK, "Contenido interno")
	}
}
