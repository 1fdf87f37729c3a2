package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/couriersync/couriersync/internal/auth/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `cedula, usuario, nombres, apellidos, email, celular, password_hash, rol, mfa_secreto, created_at, updated_at`

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE usuario = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) GetByCedula(ctx context.Context, cedula string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE cedula = ?`, cedula)
	return scanUser(row)
}

func (r *usersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE usuario = ?)`, username)
}

func (r *usersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email)
}

func (r *usersRepo) ExistsByCelular(ctx context.Context, celular string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE celular = ?)`, celular)
}

func (r *usersRepo) exists(ctx context.Context, query string, arg string) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	secret, _ := u.MFA.Secret()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Cedula,
		u.Username,
		u.Nombre,
		u.Apellido,
		u.Email,
		u.Celular,
		u.PasswordHash,
		int(u.Role),
		nullString(secret),
		u.CreatedAt,
		u.UpdatedAt,
	)
	return mapConflict(err)
}

func (r *usersRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		role      int
		mfaSecret sql.NullString
	)

	err := row.Scan(
		&u.Cedula,
		&u.Username,
		&u.Nombre,
		&u.Apellido,
		&u.Email,
		&u.Celular,
		&u.PasswordHash,
		&role,
		&mfaSecret,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	// Role values are CHECK-constrained in the schema; an unknown value here
	// means the database was modified out of band.
	u.Role = domain.Role(role)
	if mfaSecret.Valid {
		u.MFA = domain.TOTPEnrolled(mfaSecret.String)
	}

	return u, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
