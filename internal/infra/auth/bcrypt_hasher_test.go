package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerrors "cafemeetup/internal/domain/errors"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("Str0ng-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng-pass", hash)

	assert.True(t, hasher.Check("Str0ng-pass", hash))
	assert.False(t, hasher.Check("wrong-pass", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("Str0ng-pass")
	require.NoError(t, err)
	second, err := hasher.Hash("Str0ng-pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid password", password: "Str0ng-pass"},
		{name: "too short", password: "Ab1!", wantErr: "at least 8 characters"},
		{name: "missing lowercase", password: "STR0NG-PASS", wantErr: "lowercase"},
		{name: "missing uppercase", password: "str0ng-pass", wantErr: "uppercase"},
		{name: "missing number", password: "Strong-pass", wantErr: "number"},
		{name: "forbidden word", password: "MyPassword1", wantErr: "forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
