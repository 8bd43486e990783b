package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("  test_username ", "test_password", "test_password")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if user.Username != "test_username" {
		t.Errorf("Expected trimmed username, got %q", user.Username)
	}
	if user.Password != "test_password" {
		t.Errorf("Expected plaintext password to be carried for hashing")
	}
	if user.HashedPassword != "" {
		t.Error("Expected no hash before the password is hashed")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

func TestValidateRegistration(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		wantErr  error
	}{
		{"valid", "alice", "1234567", "1234567", nil},
		{"empty username", " ", "1234567", "1234567", ErrEmptyUsername},
		{"empty password", "alice", "", "", ErrEmptyPassword},
		{"six characters", "alice", "123456", "123456", ErrPasswordTooShort},
		{"four multibyte characters", "alice", "éééé", "éééé", ErrPasswordTooShort},
		{"seven multibyte characters", "alice", "ééééééé", "ééééééé", nil},
		{"too long", "alice", strings.Repeat("a", 73), strings.Repeat("a", 73), ErrPasswordTooLong},
		{"too long in bytes", "alice", strings.Repeat("é", 37), strings.Repeat("é", 37), ErrPasswordTooLong},
		{"mismatch", "alice", "1234567", "1234568", ErrPasswordMismatch},
		{"missing confirmation", "alice", "1234567", "", ErrPasswordMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistration(tt.username, tt.password, tt.confirm)
			if err != tt.wantErr {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrValidation) {
				t.Errorf("Expected %v to wrap ErrValidation", err)
			}
		})
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "alice",
		HashedPassword: "hashed",
	}

	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	invalidUser = validUser
	invalidUser.Username = ""
	if err := invalidUser.Validate(); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	invalidUser = validUser
	invalidUser.HashedPassword = ""
	invalidUser.Password = "plaintext"
	if err := invalidUser.Validate(); err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}
