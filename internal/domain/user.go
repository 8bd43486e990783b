package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Password rules for registration.
const (
	// MinPasswordLength counts characters, not bytes.
	MinPasswordLength = 7
	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72
)

// User validation errors. All of them wrap ErrValidation.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyUsername       = fmt.Errorf("%w: username cannot be empty", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, MinPasswordLength)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most %d bytes long", ErrValidation, MaxPasswordLength)
	ErrPasswordMismatch    = fmt.Errorf("%w: password and confirmation do not match", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User is a registered shopper. Every user owns exactly one Cart, linked
// through Cart.UserID.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Password       string    `json:"-"` // plaintext, only set between registration and hashing
	HashedPassword string    `json:"-"`
	CartID         uuid.UUID `json:"cart_id"` // read from carts, not stored on users
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a User from a registration request. The password must be
// at least MinPasswordLength characters and equal to confirmPassword.
//
// The returned user carries the plaintext password; the caller hashes it
// before the user is stored.
func NewUser(username, password, confirmPassword string) (*User, error) {
	if err := ValidateRegistration(username, password, confirmPassword); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  strings.TrimSpace(username),
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateRegistration applies the registration policy to the raw request values.
func ValidateRegistration(username, password, confirmPassword string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// Validate checks if the User can be persisted. A stored user must have a
// hashed password; the plaintext is never written.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}
	if strings.TrimSpace(u.Username) == "" {
		return ErrEmptyUsername
	}
	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}
	return nil
}
