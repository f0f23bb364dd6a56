package commands_test

import (
	"testing"
	"time"

	"gelsin/internal/core/application/usecases/commands"
	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/core/domain/model/order"
	"gelsin/internal/core/ports"
	"gelsin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustPlaceOrderCommand(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(
		mustActor(t, 1, account.RoleCustomer),
		4,
		"Kebap St 1",
		[]commands.OrderLine{{MenuItemID: 7, Qty: 2}},
		ports.PaymentInstrument{MockSuccess: true},
	)
	require.NoError(t, err)
	return cmd
}

func persistedOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	item, err := order.RestoreOrderItem(100, 7, "Lahmacun", mustMoney(t, 25.50), 2)
	require.NoError(t, err)
	delivery, err := order.RestoreDelivery(200, nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(
		id, 1, 4, "Kebap St 1", order.StatusPaid,
		mustMoney(t, 51.00), time.Now().UTC(),
		[]*order.OrderItem{item}, delivery,
	)
	require.NoError(t, err)
	return o
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, true, 2), nil).Once(),
		restaurantRepo.On("GetMenuItem", mock.Anything, int64(7)).
			Return(mustMenuItem(t, 7, 4, 25.50, true), nil).Once(),
		payments.On("Authorize",
			mock.Anything,
			mock.MatchedBy(func(amount kernel.Money) bool {
				return amount.IsEqual(mustMoney(t, 51.00))
			}),
			ports.PaymentInstrument{MockSuccess: true},
		).Return(ports.PaymentAuthorization{Reference: "ref-1"}, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(persistedOrder(t, 42), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, payments)
	orderID, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)
	restaurantRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_WrongRole(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		mustActor(t, 8, account.RoleCourier),
		4,
		"Kebap St 1",
		[]commands.OrderLine{{MenuItemID: 7, Qty: 2}},
		ports.PaymentInstrument{MockSuccess: true},
	)
	require.NoError(t, err)

	factory := new(MockOrderingUoWFactory)
	payments := new(MockPaymentProvider)

	h := commands.NewPlaceOrderCommandHandler(factory, payments)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_RestaurantNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(nil, errs.NewObjectNotFoundError("restaurant", int64(4))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_RestaurantClosed(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, false, 2), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ForeignMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, true, 2), nil).Once(),
		restaurantRepo.On("GetMenuItem", mock.Anything, int64(7)).
			Return(mustMenuItem(t, 7, 99, 25.50, true), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_InactiveMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, true, 2), nil).Once(),
		restaurantRepo.On("GetMenuItem", mock.Anything, int64(7)).
			Return(mustMenuItem(t, 7, 4, 25.50, false), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd := mustPlaceOrderCommand(t)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, true, 2), nil).Once(),
		restaurantRepo.On("GetMenuItem", mock.Anything, int64(7)).
			Return(nil, errs.NewObjectNotFoundError("menuItem", int64(7))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	// An unknown item id is a validation failure, not a not-found result.
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PaymentDeclined(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		mustActor(t, 1, account.RoleCustomer),
		4,
		"Kebap St 1",
		[]commands.OrderLine{{MenuItemID: 7, Qty: 2}},
		ports.PaymentInstrument{MockSuccess: false},
	)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	orderRepo := new(MockOrderRepository)
	payments := new(MockPaymentProvider)
	uow := new(MockOrderingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, int64(4)).
			Return(mustRestaurant(t, 4, true, 2), nil).Once(),
		restaurantRepo.On("GetMenuItem", mock.Anything, int64(7)).
			Return(mustMenuItem(t, 7, 4, 25.50, true), nil).Once(),
		payments.On("Authorize", mock.Anything, mock.Anything, ports.PaymentInstrument{MockSuccess: false}).
			Return(ports.PaymentAuthorization{}, errs.NewPaymentDeclinedError("51.00")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, payments)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPaymentDeclined)
	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	h := commands.NewPlaceOrderCommandHandler(new(MockOrderingUoWFactory), new(MockPaymentProvider))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}
