package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couriersync/couriersync/internal/auth/domain"
	"github.com/couriersync/couriersync/internal/auth/store"
	"github.com/couriersync/couriersync/pkg/cryptox"
	"github.com/couriersync/couriersync/pkg/slogx"
)

var (
	ErrPasswordMismatch = errors.New("password confirmation mismatch")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrEmailTaken       = errors.New("email already taken")
	ErrCelularTaken     = errors.New("phone number already taken")
	ErrCedulaTaken      = errors.New("cedula already registered")
)

type RegisterService struct {
	Store store.Store
}

// Register validates a registration request and persists the new identity.
//
// The existence checks up front are early rejects for the common case; the
// unique indexes at insert time are the real guarantee, so two requests
// racing on the same username still end with exactly one success. No write
// happens on any rejection path.
func (s *RegisterService) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	log := slogx.FromContext(ctx)

	if verr := req.Validate(); verr != nil {
		return domain.User{}, verr
	}

	if req.Password != req.PasswordConfirmation {
		return domain.User{}, ErrPasswordMismatch
	}

	// Validate() already rejected nil/unknown roles.
	role, err := domain.ParseRole(*req.Role)
	if err != nil {
		return domain.User{}, err
	}

	users := s.Store.Users()

	taken, err := users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, ErrUsernameTaken
	}

	taken, err = users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, ErrEmailTaken
	}

	taken, err = users.ExistsByCelular(ctx, req.Celular)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, ErrCelularTaken
	}

	if _, err := users.GetByCedula(ctx, req.Cedula); err == nil {
		return domain.User{}, ErrCedulaTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		Cedula:       req.Cedula,
		Username:     req.Username,
		Nombre:       req.Nombre,
		Apellido:     req.Apellido,
		Email:        req.Email,
		Celular:      req.Celular,
		PasswordHash: hash,
		Role:         role,
		// MFA zero value: disabled, no secret slot occupied.
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		// A conflict here means we lost a race after the pre-checks passed.
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			log.Warn("registration lost uniqueness race",
				slog.String("field", conflict.Field),
				slog.String("username", req.Username),
			)
			return domain.User{}, conflictToDuplicate(conflict)
		}
		log.Error("failed to create user",
			slog.String("username", req.Username),
			slog.Any("error", err),
		)
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("cedula", u.Cedula),
		slog.String("username", u.Username),
		slog.String("role", u.Role.String()),
	)

	return u, nil
}

// conflictToDuplicate maps a storage-layer uniqueness race to the same
// duplicate-identity error the early checks produce, so callers see one
// error class regardless of which layer caught it.
func conflictToDuplicate(c *store.ConflictError) error {
	switch c.Field {
	case "usuario":
		return ErrUsernameTaken
	case "email":
		return ErrEmailTaken
	case "celular":
		return ErrCelularTaken
	default:
		return ErrCedulaTaken
	}
}
