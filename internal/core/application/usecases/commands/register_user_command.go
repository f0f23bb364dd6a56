package commands

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("full name is required")
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a new account with a
// role. The password travels in clear only as far as the handler, which
// hashes it before anything touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	fullName string
	email    string
	password string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Length bounds on name, email and password are enforced by the user
// entity and the password hasher respectively.
func NewRegisterUserCommand(fullName, email, password string, role account.Role) (RegisterUserCommand, error) {
	registerCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setFullName(fullName),
		registerCommand.setEmail(email),
		registerCommand.setPassword(password),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// FullName returns the display name for the new account.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// Email returns the unique email for the new account.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the clear-text password to hash.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the role for the new account.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

func (c *RegisterUserCommand) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
