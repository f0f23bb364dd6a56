package commands

import (
	"errors"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateRestaurantCommand represents a restaurant owner's request to
// register their restaurant in the catalog. Each owner has at most one.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor   account.Actor
	name    string
	address string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(actor account.Actor, name, address string) (CreateRestaurantCommand, error) {
	createCommand := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setActor(actor),
		createCommand.setName(name),
		createCommand.setAddress(address),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// Actor returns the owner registering the restaurant.
func (c CreateRestaurantCommand) Actor() account.Actor {
	return c.actor
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant's street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

func (c *CreateRestaurantCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRestaurantCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}
