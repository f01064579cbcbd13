package domain

// User represents a registered account.
//
// Password holds whatever the configured password scheme stored at signup:
// the raw password under the plain scheme, a bcrypt hash under the bcrypt
// scheme. It is opaque to everything except the scheme that wrote it.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // Never expose the stored credential in JSON
}

// NewUser creates a User with the given username and stored credential.
// Returns an error if either field is empty.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username: username,
		Password: password,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Usernames are case-sensitive and compared by exact equality, so the only
// structural requirement is that neither field is empty.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if u.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
