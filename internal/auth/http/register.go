package http

import (
	"encoding/json"
	"net/http"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/service"
	"github.com/couriersync/couriersync/pkg/httpx"
	"github.com/couriersync/couriersync/pkg/slogx"
)

type RegisterHandler struct {
	RegisterService *service.RegisterService
}

// ServeHTTP godoc
//
//	@Summary		Registration Endpoint
//	@Description	Create a new user account. Username, email, and phone number must be unused.
//	@Tags			Auth
//	@Accept			json
//	@Produce		plain
//	@Param			request	body		domain.RegisterRequest	true	"Registration data"
//	@Success		200		{string}	string					"Usuario creado con éxito"
//	@Failure		400		{object}	map[string]string		"field validation errors or contract message"
//	@Router			/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteText(w, http.StatusBadRequest, "Cuerpo de la petición inválido.")
		return
	}

	if _, err := h.RegisterService.Register(ctx, req); err != nil {
		writeRegisterError(w, log, err)
		return
	}

	httpx.WriteText(w, http.StatusOK, msgRegisterOK)
}
