package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
)

// UserService provides registration and user lookups
type UserService interface {
	// CreateUser registers a user together with an empty cart
	CreateUser(ctx context.Context, username, password, confirmPassword string) (*domain.User, error)

	// GetUser retrieves a user by their ID
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)

	// GetUserByUsername retrieves a user by their username
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	cartStore  store.CartStore
	hasher     auth.PasswordHasher
	transactor store.Transactor
	logger     *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	cartStore store.CartStore,
	hasher auth.PasswordHasher,
	transactor store.Transactor,
	logger *slog.Logger,
) UserService {
	return &UserServiceImpl{
		userStore:  userStore,
		cartStore:  cartStore,
		hasher:     hasher,
		transactor: transactor,
		logger:     logger.With("component", "user_service"),
	}
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by id",
				"user_id", userID)
		} else {
			s.logger.Error("failed to retrieve user",
				"error", err,
				"user_id", userID)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	s.logger.Debug("retrieved user successfully",
		"user_id", userID,
		"username", user.Username)

	return user, nil
}

// GetUserByUsername retrieves a user by their username
func (s *UserServiceImpl) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found by username",
				"username", username)
		} else {
			s.logger.Error("failed to retrieve user by username",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to retrieve user by username: %w", err)
	}

	return user, nil
}

// CreateUser validates the registration, hashes the password and stores the
// user and a new empty cart in one transaction. Nothing is stored if any step
// fails.
func (s *UserServiceImpl) CreateUser(
	ctx context.Context,
	username, password, confirmPassword string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, password, confirmPassword)
	if err != nil {
		s.logger.Debug("rejected user registration",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", user.Username)
		return nil, NewServiceError("user", "create", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	cart := domain.NewCart(user.ID)
	user.CartID = cart.ID

	err = s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		// The carts.user_id foreign key is deferred, so the cart can go first.
		if err := s.cartStore.WithTx(tx).Create(ctx, cart); err != nil {
			return fmt.Errorf("failed to create cart: %w", err)
		}
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to create user with existing username",
				"username", user.Username)
		} else {
			s.logger.Error("failed to save user to database",
				"error", err,
				"username", user.Username)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created successfully in transaction",
		"user_id", user.ID,
		"cart_id", cart.ID,
		"username", user.Username)

	return user, nil
}
