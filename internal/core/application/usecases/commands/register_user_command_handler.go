package commands

import (
	"context"

	"gelsin/internal/core/domain/model/account"
)

// RegisterUserCommandHandler handles account creation: hashes the password,
// builds the user entity and persists it. Email uniqueness is enforced by
// the repository against the store's constraint.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the identifier of
// the persisted user.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	passwordHash, err := account.HashPassword(cmd.Password())
	if err != nil {
		return 0, err
	}

	user, err := account.NewUser(cmd.FullName(), cmd.Email(), passwordHash, cmd.Role())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	persisted, err := uow.AccountRepository().Add(ctx, user)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return persisted.ID(), nil
}
