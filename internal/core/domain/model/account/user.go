package account

import (
	"errors"

	"gelsin/internal/pkg/errs"
)

const (
	userFullNameMinLen = 2
	userFullNameMaxLen = 120
	userEmailMinLen    = 5
	userEmailMaxLen    = 255
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrPasswordHashIsRequired is returned when attempting to create a user
	// without a hashed credential.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// User represents an authenticated account in the system: a customer, a
// restaurant owner, a courier, or an admin. The engine never inspects users
// beyond their identity and role; credentials are the transport layer's
// concern.
//
// Identity is assigned by the store: a user built with NewUser carries no
// identifier until persisted, and repositories return the persisted entity.
type User struct {
	id            int64
	fullName      string
	email         string
	passwordHash  string
	role          Role
	isConstructed bool
}

// NewUser creates a new User pending persistence. The identifier is zero
// until the store assigns one.
func NewUser(fullName, email, passwordHash string, role Role) (*User, error) {
	user := &User{isConstructed: true}

	if err := errors.Join(
		user.setFullName(fullName),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a persisted User from storage, including its
// store-assigned identifier.
func RestoreUser(id int64, fullName, email, passwordHash string, role Role) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	user, err := NewUser(fullName, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	user.id = id
	return user, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, or zero before persistence.
func (u *User) ID() int64 {
	return u.id
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setFullName(fullName string) error {
	if len(fullName) < userFullNameMinLen || len(fullName) > userFullNameMaxLen {
		return errs.NewValueIsOutOfRangeError("fullName", len(fullName), userFullNameMinLen, userFullNameMaxLen)
	}
	u.fullName = fullName
	return nil
}

func (u *User) setEmail(email string) error {
	if len(email) < userEmailMinLen || len(email) > userEmailMaxLen {
		return errs.NewValueIsOutOfRangeError("email", len(email), userEmailMinLen, userEmailMaxLen)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
