package domain

// MFA is the TOTP enrollment slot on a user. The zero value means MFA is
// disabled; enrollment is represented by the presence of an encrypted secret,
// so "secret implies enabled" holds by construction and the two can never
// disagree. Secret generation and code verification are handled elsewhere
// (not in this service).
type MFA struct {
	secret string
}

// TOTPEnrolled returns an enabled MFA slot holding the encrypted secret.
// An empty secret yields the disabled zero value.
func TOTPEnrolled(secret string) MFA {
	return MFA{secret: secret}
}

// Enabled reports whether the user has MFA enrolled.
func (m MFA) Enabled() bool { return m.secret != "" }

// Secret returns the encrypted TOTP secret, ok=false when MFA is disabled.
func (m MFA) Secret() (string, bool) {
	if m.secret == "" {
		return "", false
	}
	return m.secret, true
}
