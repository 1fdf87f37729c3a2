package domain

import "time"

// User is a registered identity, keyed by national identifier (cédula).
// Username, Email, and Celular are unique across all users; the database
// enforces this with unique indexes, the registration service only
// pre-checks.
type User struct {
	Cedula       string // primary key, immutable once created
	Username     string // login handle, unique
	Nombre       string
	Apellido     string
	Email        string // unique
	Celular      string // unique
	PasswordHash string // argon2id encoded, never serialized outward
	Role         Role
	MFA          MFA
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the outward-facing projection of a User. It deliberately has no
// slot for the password hash or MFA secret.
type Profile struct {
	Cedula     string `json:"cedula"`
	Username   string `json:"usuario"`
	Nombre     string `json:"nombre"`
	Apellido   string `json:"apellido"`
	Email      string `json:"email"`
	Celular    string `json:"celular"`
	Role       int    `json:"rol"`
	MFAEnabled bool   `json:"mfa_estado"`
}

func (u User) Profile() Profile {
	return Profile{
		Cedula:     u.Cedula,
		Username:   u.Username,
		Nombre:     u.Nombre,
		Apellido:   u.Apellido,
		Email:      u.Email,
		Celular:    u.Celular,
		Role:       int(u.Role),
		MFAEnabled: u.MFA.Enabled(),
	}
}
