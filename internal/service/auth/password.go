package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme defines how credentials are stored at signup and compared
// at login. Everything outside the scheme treats the stored credential as
// opaque.
type PasswordScheme interface {
	// Hash converts a plaintext password into its stored form.
	Hash(password string) (string, error)

	// Compare compares a stored credential with a plaintext candidate.
	// Returns nil on success, or ErrPasswordMismatch on failure.
	Compare(stored, password string) error
}

// PlainScheme stores passwords verbatim and compares by case-sensitive
// exact equality. This is the documented external behavior and the shipped
// default; it offers no protection for the credential file and new
// deployments should prefer BcryptScheme.
type PlainScheme struct{}

// NewPlainScheme creates a new PlainScheme.
func NewPlainScheme() *PlainScheme {
	return &PlainScheme{}
}

// Hash implements PasswordScheme by returning the password unchanged.
func (s *PlainScheme) Hash(password string) (string, error) {
	return password, nil
}

// Compare implements PasswordScheme using exact equality.
func (s *PlainScheme) Compare(stored, password string) error {
	if stored != password {
		return ErrPasswordMismatch
	}
	return nil
}

// BcryptScheme implements PasswordScheme using bcrypt.
type BcryptScheme struct {
	cost int
}

// NewBcryptScheme creates a new BcryptScheme with the default cost.
func NewBcryptScheme() *BcryptScheme {
	return &BcryptScheme{cost: bcrypt.DefaultCost}
}

// Hash implements PasswordScheme using bcrypt.
func (s *BcryptScheme) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Compare implements PasswordScheme using bcrypt.
func (s *BcryptScheme) Compare(stored, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// SchemeByName resolves a configured scheme name.
func SchemeByName(name string) (PasswordScheme, error) {
	switch name {
	case "plain":
		return NewPlainScheme(), nil
	case "bcrypt":
		return NewBcryptScheme(), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
