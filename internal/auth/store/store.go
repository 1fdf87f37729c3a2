package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/couriersync/couriersync/internal/auth/domain"
)

var ErrNotFound = errors.New("store: not found")

// ConflictError reports that an insert lost a uniqueness race: the unique
// index rejected the row even though the caller's pre-check passed. Field
// names the conflicting column ("usuario", "email", "celular", "cedula").
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("store: conflict on %s", e.Field)
}

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Uniqueness of username, email, and phone is enforced here,
// atomically at insert; service-level existence checks are early rejects only.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, rolling back when fn errors
	// and committing otherwise. Preferred over Tx for multi-step writes.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetByUsername is used during login.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// GetByCedula returns a user by national identifier (primary key).
	GetByCedula(ctx context.Context, cedula string) (domain.User, error)

	// ExistsByUsername reports whether the login handle is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail mirrors the email uniqueness constraint.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByCelular mirrors the phone uniqueness constraint.
	ExistsByCelular(ctx context.Context, celular string) (bool, error)

	// Create inserts a new user. A uniqueness violation returns a
	// *ConflictError naming the field; this is the authoritative duplicate
	// check under concurrency.
	Create(ctx context.Context, u domain.User) error

	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
