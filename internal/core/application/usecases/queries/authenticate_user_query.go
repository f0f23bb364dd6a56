package queries

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/guard"
)

var (
	// ErrAuthenticateUserQueryIsNotConstructed is returned when an
	// AuthenticateUserQuery bypassed its constructor.
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrEmailIsRequired is returned when the email is missing.
	ErrEmailIsRequired = errors.New("email is required")

	// ErrPasswordIsRequired is returned when the password is missing.
	ErrPasswordIsRequired = errors.New("password is required")
)

// AuthenticateUserQuery checks login credentials against the store.
// A read-side operation: it mutates nothing and returns the identity the
// transport layer turns into a bearer token.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credential-check query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	authQuery := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		authQuery.setEmail(email),
		authQuery.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return authQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the claimed email.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the clear-text password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	q.email = email
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	q.password = password
	return nil
}

// AuthenticateUserQueryResponse is the verified identity of a user.
type AuthenticateUserQueryResponse struct {
	UserID   int64
	FullName string
	Role     account.Role
}
