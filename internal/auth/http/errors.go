package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/service"
	"github.com/couriersync/couriersync/pkg/httpx"
)

// User-facing rejection messages. These are part of the API contract and
// are returned byte for byte; clients match on them.
const (
	msgLoginOK            = "Login successful"
	msgRegisterOK         = "Usuario creado con éxito"
	msgInvalidCredentials = "Invalid credentials"
	msgPasswordMismatch   = "Las contraseñas no coinciden."
	msgUsernameTaken      = "El nombre de usuario ya está en uso."
	msgEmailTaken         = "El correo electrónico ya está en uso."
	msgCelularTaken       = "El número de celular ya está en uso."
	msgCedulaTaken        = "La cédula ya está registrada."
	msgServerError        = "Error interno del servidor."
)

// writeRegisterError translates a registration failure into its HTTP shape.
// Validation failures come back as a JSON field map; business rejections
// as plain text with the contract message.
func writeRegisterError(w http.ResponseWriter, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteJSON(w, http.StatusBadRequest, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrPasswordMismatch):
		httpx.WriteText(w, http.StatusBadRequest, msgPasswordMismatch)
	case errors.Is(err, service.ErrUsernameTaken):
		httpx.WriteText(w, http.StatusBadRequest, msgUsernameTaken)
	case errors.Is(err, service.ErrEmailTaken):
		httpx.WriteText(w, http.StatusBadRequest, msgEmailTaken)
	case errors.Is(err, service.ErrCelularTaken):
		httpx.WriteText(w, http.StatusBadRequest, msgCelularTaken)
	case errors.Is(err, service.ErrCedulaTaken):
		httpx.WriteText(w, http.StatusBadRequest, msgCedulaTaken)
	default:
		log.Error("registration failed", "err", err)
		httpx.WriteText(w, http.StatusInternalServerError, msgServerError)
	}
}
