package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswords(t *testing.T) {
	hasher := auth.NewBcryptHasher(4)
	var out bytes.Buffer

	err := hashPasswords(strings.NewReader("password1\ntest@#$%^&*()\n"), &out, hasher)
	require.NoError(t, err)

	hashes := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, hashes, 2)
	assert.NoError(t, hasher.Compare(hashes[0], "password1"))
	assert.NoError(t, hasher.Compare(hashes[1], "test@#$%^&*()"))
}

func TestHashPasswordsRejectsShortPassword(t *testing.T) {
	var out bytes.Buffer

	err := hashPasswords(strings.NewReader("password1\nshort\n"), &out, auth.NewBcryptHasher(4))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestHashPasswordsCountsCharacters(t *testing.T) {
	var out bytes.Buffer

	err := hashPasswords(strings.NewReader("éééé\n"), &out, auth.NewBcryptHasher(4))

	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)
	assert.Empty(t, out.String())
}
