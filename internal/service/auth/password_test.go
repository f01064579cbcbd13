package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainSchemeStoresVerbatim(t *testing.T) {
	t.Parallel()
	scheme := NewPlainScheme()

	stored, err := scheme.Hash("secret123")
	require.NoError(t, err)
	assert.Equal(t, "secret123", stored)
}

func TestPlainSchemeCompare(t *testing.T) {
	t.Parallel()
	scheme := NewPlainScheme()

	tests := []struct {
		name      string
		stored    string
		candidate string
		wantErr   error
	}{
		{name: "exact match", stored: "secret123", candidate: "secret123"},
		{name: "wrong password", stored: "secret123", candidate: "secret124", wantErr: ErrPasswordMismatch},
		{name: "case differs", stored: "Secret123", candidate: "secret123", wantErr: ErrPasswordMismatch},
		{name: "whitespace differs", stored: "secret123", candidate: "secret123 ", wantErr: ErrPasswordMismatch},
		{name: "empty candidate", stored: "secret123", candidate: "", wantErr: ErrPasswordMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := scheme.Compare(tc.stored, tc.candidate)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBcryptSchemeRoundTrip(t *testing.T) {
	t.Parallel()
	scheme := NewBcryptScheme()

	stored, err := scheme.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored, "bcrypt must not store plaintext")

	assert.NoError(t, scheme.Compare(stored, "secret123"))
	assert.ErrorIs(t, scheme.Compare(stored, "secret124"), ErrPasswordMismatch)
}

func TestSchemeByName(t *testing.T) {
	t.Parallel()

	plain, err := SchemeByName("plain")
	require.NoError(t, err)
	assert.IsType(t, &PlainScheme{}, plain)

	bc, err := SchemeByName("bcrypt")
	require.NoError(t, err)
	assert.IsType(t, &BcryptScheme{}, bc)

	_, err = SchemeByName("argon2")
	assert.Error(t, err)
}
