package commands_test

import (
	"testing"

	"gelsin/internal/core/application/usecases/commands"
	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		"Ayse Yilmaz", "ayse@example.com", "hunter22", account.RoleCustomer,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *account.User) bool {
			// The clear-text password never reaches the repository.
			return u.Email() == "ayse@example.com" &&
				u.PasswordHash() != "" &&
				u.PasswordHash() != "hunter22" &&
				account.CheckPassword("hunter22", u.PasswordHash())
		})).Return(mustUser(t, 5, "ayse@example.com"), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	userID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
	accountRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_EmailTaken(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		"Ayse Yilmaz", "ayse@example.com", "hunter22", account.RoleCustomer,
	)
	require.NoError(t, err)

	accountRepo := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		accountRepo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).
			Return(nil, errs.NewValueIsInvalidError("email is already registered")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ShortPassword(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterUserCommand(
		"Ayse Yilmaz", "ayse@example.com", "abc", account.RoleCustomer,
	)
	require.NoError(t, err)

	factory := new(MockAccountUoWFactory)

	h := commands.NewRegisterUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertNotCalled(t, "Create")
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{} // not constructed properly

	h := commands.NewRegisterUserCommandHandler(new(MockAccountUoWFactory))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrRegisterUserCommandIsNotConstructed)
}

func mustUser(t *testing.T, id int64, email string) *account.User {
	t.Helper()
	hash, err := account.HashPassword("hunter22")
	require.NoError(t, err)
	user, err := account.RestoreUser(id, "Ayse Yilmaz", email, hash, account.RoleCustomer)
	require.NoError(t, err)
	return user
}
