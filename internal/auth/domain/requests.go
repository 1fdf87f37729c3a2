package domain

// RegisterRequest is the inbound registration body. Field names follow the
// public API contract (source locale).
type RegisterRequest struct {
	Username             string `json:"usuario"`
	Cedula               string `json:"cedula"`
	Nombre               string `json:"nombre"`
	Apellido             string `json:"apellido"`
	Email                string `json:"email"`
	Celular              string `json:"celular"`
	Password             string `json:"contraseña"`
	PasswordConfirmation string `json:"confirmarContraseña"`
	Role                 *int   `json:"rol"`
}

// Validate checks required fields. It returns nil when the request is
// well-formed; password/confirmation equality and duplicate identities are
// business rules checked by the registration service, not here.
func (r RegisterRequest) Validate() *ValidationError {
	var v validator
	v.requireNotBlank("usuario", r.Username)
	v.requireNotBlank("cedula", r.Cedula)
	v.requireNotBlank("nombre", r.Nombre)
	v.requireNotBlank("apellido", r.Apellido)
	v.requireNotBlank("email", r.Email)
	v.requireNotBlank("celular", r.Celular)
	v.requireNotBlank("contraseña", r.Password)
	v.requireNotBlank("confirmarContraseña", r.PasswordConfirmation)

	if r.Role == nil {
		v.addError("rol", "es obligatorio")
	} else if _, err := ParseRole(*r.Role); err != nil {
		v.addError("rol", "no es un rol válido")
	}

	return v.err()
}

// LoginRequest is the inbound login body. Role is a defense-in-depth claim
// checked against the stored role, not an authorization input.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"contraseña"`
	Role     *int   `json:"rol"`
}

// Validate checks required fields. Messages never reveal whether a given
// username exists; that is the login service's concern.
func (r LoginRequest) Validate() *ValidationError {
	var v validator
	v.requireNotBlank("username", r.Username)
	v.requireNotBlank("contraseña", r.Password)
	if r.Role == nil {
		v.addError("rol", "es obligatorio")
	} else if _, err := ParseRole(*r.Role); err != nil {
		v.addError("rol", "no es un rol válido")
	}
	return v.err()
}
