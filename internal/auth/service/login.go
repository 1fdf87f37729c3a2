package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/couriersync/couriersync/pkg/cryptox"
	"github.com/couriersync/couriersync/pkg/sessionx"
	"github.com/couriersync/couriersync/pkg/slogx"
)

// ErrInvalidCredentials covers every authentication failure: unknown user,
// wrong password, and role mismatch all collapse into it so the caller
// cannot probe which one occurred.
var ErrInvalidCredentials = errors.New("invalid credentials")

type LoginService struct {
	Store    store.Store
	Sessions *sessionx.Store
}

// Login authenticates the request and, on success, issues a fresh session
// bound to the username. priorSessionID is the session cookie the client
// presented (if any); it is rotated away on success so a pre-login
// identifier never survives authentication.
func (s *LoginService) Login(ctx context.Context, req domain.LoginRequest, priorSessionID string) (sessionx.Session, error) {
	log := slogx.FromContext(ctx)

	if verr := req.Validate(); verr != nil {
		return sessionx.Session{}, verr
	}

	u, err := s.Store.Users().GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a verification against a throwaway digest so an unknown
			// username costs the same as a wrong password.
			cryptox.VerifyPassword(req.Password, cryptox.DummyHash())
			return sessionx.Session{}, ErrInvalidCredentials
		}
		return sessionx.Session{}, err
	}

	if !cryptox.VerifyPassword(req.Password, u.PasswordHash) {
		log.Info("password verification failed", slog.String("username", req.Username))
		return sessionx.Session{}, ErrInvalidCredentials
	}

	// The claimed role must match the stored one. A mismatch is not its own
	// error: that would tell an unauthenticated caller which role the
	// account holds.
	if domain.Role(*req.Role) != u.Role {
		log.Info("role claim mismatch", slog.String("username", req.Username))
		return sessionx.Session{}, ErrInvalidCredentials
	}

	sess, err := s.Sessions.Create(u.Username, priorSessionID)
	if err != nil {
		log.Error("failed to create session", slog.Any("error", err))
		return sessionx.Session{}, err
	}

	log.Info("login successful", slog.String("username", u.Username))
	return sess, nil
}
