package sqlite

import (
	"context"
	"testing"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func testUser(cedula, username, email, celular string) domain.User {
	return domain.User{
		Cedula:       cedula,
		Username:     username,
		Nombre:       "David",
		Apellido:     "Tovar",
		Email:        email,
		Celular:      celular,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleCustomer,
	}
}

func TestUsers_CreateAndGet(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := testUser("1122233", "usuario2", "david@gmail.com", "3001234567")
	require.NoError(t, st.Users().Create(ctx, u))

	got, err := st.Users().GetByUsername(ctx, "usuario2")
	require.NoError(t, err)
	require.Equal(t, u.Cedula, got.Cedula)
	require.Equal(t, u.Username, got.Username)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, domain.RoleCustomer, got.Role)
	require.False(t, got.MFA.Enabled())
	require.False(t, got.CreatedAt.IsZero())

	byCedula, err := st.Users().GetByCedula(ctx, "1122233")
	require.NoError(t, err)
	require.Equal(t, got.Username, byCedula.Username)
}

func TestUsers_GetNotFound(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.Users().GetByUsername(ctx, "nobody")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Users().GetByCedula(ctx, "0000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_Exists(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Users().Create(ctx,
		testUser("1122233", "usuario2", "david@gmail.com", "3001234567")))

	for name, check := range map[string]struct {
		fn  func(context.Context, string) (bool, error)
		hit string
	}{
		"username": {st.Users().ExistsByUsername, "usuario2"},
		"email":    {st.Users().ExistsByEmail, "david@gmail.com"},
		"celular":  {st.Users().ExistsByCelular, "3001234567"},
	} {
		t.Run(name, func(t *testing.T) {
			found, err := check.fn(ctx, check.hit)
			require.NoError(t, err)
			require.True(t, found)

			found, err = check.fn(ctx, "missing")
			require.NoError(t, err)
			require.False(t, found)
		})
	}
}

func TestUsers_CreateConflicts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Users().Create(ctx,
		testUser("1122233", "usuario2", "david@gmail.com", "3001234567")))

	tests := []struct {
		name  string
		user  domain.User
		field string
	}{
		{
			"duplicate username",
			testUser("7654321", "usuario2", "other@gmail.com", "3009999999"),
			"usuario",
		},
		{
			"duplicate email",
			testUser("7654321", "otro", "david@gmail.com", "3009999999"),
			"email",
		},
		{
			"duplicate celular",
			testUser("7654321", "otro", "other@gmail.com", "3001234567"),
			"celular",
		},
		{
			"duplicate cedula",
			testUser("1122233", "otro", "other@gmail.com", "3009999999"),
			"cedula",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.Users().Create(ctx, tt.user)
			require.Error(t, err)

			var conflict *store.ConflictError
			require.ErrorAs(t, err, &conflict)
			require.Equal(t, tt.field, conflict.Field)
		})
	}

	// The losing inserts must not have written anything
	n, err := st.Users().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestUsers_MFASecretRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	u := testUser("1122233", "usuario2", "david@gmail.com", "3001234567")
	u.MFA = domain.TOTPEnrolled("JBSWY3DPEHPK3PXP")
	require.NoError(t, st.Users().Create(ctx, u))

	got, err := st.Users().GetByUsername(ctx, "usuario2")
	require.NoError(t, err)
	require.True(t, got.MFA.Enabled())
	secret, ok := got.MFA.Secret()
	require.True(t, ok)
	require.Equal(t, "JBSWY3DPEHPK3PXP", secret)
}

func TestStore_WithTx(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	t.Run("commit on success", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().Create(ctx,
				testUser("1111111", "uno", "uno@gmail.com", "3000000001"))
		})
		require.NoError(t, err)

		_, err = st.Users().GetByUsername(ctx, "uno")
		require.NoError(t, err)
	})

	t.Run("rollback on error", func(t *testing.T) {
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().Create(ctx,
				testUser("2222222", "dos", "dos@gmail.com", "3000000002")); err != nil {
				return err
			}
			// Second insert conflicts; the whole transaction must unwind
			return tx.Users().Create(ctx,
				testUser("2222222", "tres", "tres@gmail.com", "3000000003"))
		})
		require.Error(t, err)

		_, err = st.Users().GetByUsername(ctx, "dos")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestStore_Ping(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Ping(context.Background()))
}
