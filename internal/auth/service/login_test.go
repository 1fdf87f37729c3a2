package service

import (
	"context"
	"testing"
	"time"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/couriersync/couriersync/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, st store.Store, username, password string, role int) {
	t.Helper()

	svc := &RegisterService{Store: st}
	req := domain.RegisterRequest{
		Username:             username,
		Cedula:               "1000000" + username,
		Nombre:               "Nombre",
		Apellido:             "Apellido",
		Email:                username + "@gmail.com",
		Celular:              "310" + username,
		Password:             password,
		PasswordConfirmation: password,
		Role:                 intPtr(role),
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
}

func loginService(t *testing.T, st store.Store) (*LoginService, *sessionx.Store) {
	t.Helper()
	sessions := sessionx.NewStore(time.Hour)
	return &LoginService{Store: st, Sessions: sessions}, sessions
}

func TestLogin_Success(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, sessions := loginService(t, st)

	req := domain.LoginRequest{Username: "usuario1", Password: "1234", Role: intPtr(1)}
	sess, err := svc.Login(context.Background(), req, "")
	require.NoError(t, err)
	require.Equal(t, "usuario1", sess.Username)
	require.NotEmpty(t, sess.ID)

	// The issued session is live in the store
	got, ok := sessions.Get(sess.ID)
	require.True(t, ok)
	require.Equal(t, "usuario1", got.Username)
}

func TestLogin_WrongPassword(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, _ := loginService(t, st)

	req := domain.LoginRequest{Username: "usuario1", Password: "1235", Role: intPtr(1)}
	_, err := svc.Login(context.Background(), req, "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, _ := loginService(t, st)

	req := domain.LoginRequest{Username: "nadie", Password: "1234", Role: intPtr(1)}
	_, err := svc.Login(context.Background(), req, "")

	// Indistinguishable from a wrong password
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RoleMismatch(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, _ := loginService(t, st)

	req := domain.LoginRequest{Username: "usuario1", Password: "1234", Role: intPtr(3)}
	_, err := svc.Login(context.Background(), req, "")

	// A role claim mismatch collapses into the same error as bad credentials
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_ValidationFailure(t *testing.T) {
	st := newTestStore(t)
	svc, _ := loginService(t, st)

	req := domain.LoginRequest{Username: "", Password: "", Role: nil}
	_, err := svc.Login(context.Background(), req, "")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "username")
	require.Contains(t, verr.Fields, "contraseña")
	require.Contains(t, verr.Fields, "rol")
}

func TestLogin_RotatesPriorSession(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, sessions := loginService(t, st)
	ctx := context.Background()

	req := domain.LoginRequest{Username: "usuario1", Password: "1234", Role: intPtr(1)}

	first, err := svc.Login(ctx, req, "")
	require.NoError(t, err)

	second, err := svc.Login(ctx, req, first.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// The session presented at login never survives authentication
	_, ok := sessions.Get(first.ID)
	require.False(t, ok)

	_, ok = sessions.Get(second.ID)
	require.True(t, ok)
}

func TestLogin_FailureIssuesNoSession(t *testing.T) {
	st := newTestStore(t)
	seedUser(t, st, "usuario1", "1234", 1)
	svc, sessions := loginService(t, st)

	prior, err := sessions.Create("usuario1", "")
	require.NoError(t, err)

	req := domain.LoginRequest{Username: "usuario1", Password: "wrong", Role: intPtr(1)}
	_, err = svc.Login(context.Background(), req, prior.ID)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// A failed login neither issues a session nor touches the prior one
	_, ok := sessions.Get(prior.ID)
	require.True(t, ok)
}
