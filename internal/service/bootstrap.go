package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/store"
)

// Bootstrapper seeds accounts the application needs at startup.
type Bootstrapper struct {
	users  UserService
	logger *slog.Logger
}

// NewBootstrapper creates a Bootstrapper that registers accounts through users.
func NewBootstrapper(users UserService, logger *slog.Logger) *Bootstrapper {
	return &Bootstrapper{
		users:  users,
		logger: logger.With("component", "bootstrap"),
	}
}

// EnsureAdmin registers the admin account, with its cart, unless a user with
// that username already exists. It is safe to call on every start; created
// reports whether a user was added.
func (b *Bootstrapper) EnsureAdmin(ctx context.Context, username, password string) (created bool, err error) {
	_, err = b.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		b.logger.Debug("admin user already exists", "username", username)
		return false, nil
	case !store.IsNotFoundError(err):
		return false, fmt.Errorf("failed to check for admin user: %w", err)
	}

	if _, err := b.users.CreateUser(ctx, username, password, password); err != nil {
		// Another instance may have created it since the lookup.
		if errors.Is(err, store.ErrUsernameExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	b.logger.Info("created admin user", "username", username)
	return true, nil
}
