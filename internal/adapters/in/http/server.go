package http

import (
	"errors"
	"net/http"

	"gelsin/internal/core/application/usecases/commands"
	"gelsin/internal/core/application/usecases/queries"
	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/core/domain/model/order"
	"gelsin/internal/core/ports"
	"gelsin/internal/generated/servers"
	"gelsin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	auth Auth

	// Command handlers
	registerUserHandler     commands.RegisterUserCommandHandler
	createRestaurantHandler commands.CreateRestaurantCommandHandler
	addMenuItemHandler      commands.AddMenuItemCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	transitionOrderHandler  commands.TransitionOrderCommandHandler

	// Query handlers
	authenticateUserHandler queries.AuthenticateUserQueryHandler
	listRestaurantsHandler  queries.ListRestaurantsQueryHandler
	listMenuHandler         queries.ListMenuQueryHandler
	myOrdersHandler         queries.MyOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	auth Auth,
	registerUserHandler commands.RegisterUserCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	authenticateUserHandler queries.AuthenticateUserQueryHandler,
	listRestaurantsHandler queries.ListRestaurantsQueryHandler,
	listMenuHandler queries.ListMenuQueryHandler,
	myOrdersHandler queries.MyOrdersQueryHandler,
) *Server {
	return &Server{
		auth:                    auth,
		registerUserHandler:     registerUserHandler,
		createRestaurantHandler: createRestaurantHandler,
		addMenuItemHandler:      addMenuItemHandler,
		placeOrderHandler:       placeOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		authenticateUserHandler: authenticateUserHandler,
		listRestaurantsHandler:  listRestaurantsHandler,
		listMenuHandler:         listMenuHandler,
		myOrdersHandler:         myOrdersHandler,
	}
}

// RegisterUser handles POST /auth/register - creates a new user account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request servers.RegisterRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := account.RoleFromString(request.Role)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	cmd, err := commands.NewRegisterUserCommand(request.FullName, request.Email, request.Password, role)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	userID, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: userID})
}

// LoginUser handles POST /auth/login - verifies credentials and issues a token.
func (s *Server) LoginUser(ctx echo.Context) error {
	var request servers.LoginRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewAuthenticateUserQuery(request.Email, request.Password)
	if err != nil {
		return badRequest(ctx, "Invalid credentials format: "+err.Error())
	}

	identity, err := s.authenticateUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	token, err := s.auth.IssueToken(identity.UserID, identity.Role)
	if err != nil {
		return internalError(ctx, "Failed to issue token")
	}

	return ctx.JSON(http.StatusOK, servers.AuthToken{Token: token})
}

// ListRestaurants handles GET /restaurants - lists all restaurants.
func (s *Server) ListRestaurants(ctx echo.Context) error {
	query := queries.NewListRestaurantsQuery()

	restaurants, err := s.listRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]servers.Restaurant, len(restaurants))
	for i, restaurant := range restaurants {
		response[i] = servers.Restaurant{
			Id:      restaurant.ID,
			Name:    restaurant.Name,
			Address: restaurant.Address,
			IsOpen:  restaurant.IsOpen,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateRestaurant handles POST /restaurants - registers the
// acting owner's restaurant.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var request servers.NewRestaurant
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRestaurantCommand(actor, request.Name, request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	restaurantID, err := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrOwnerAlreadyHasRestaurant) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: err.Error(),
			})
		}
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: restaurantID})
}

// ListMenu handles GET /restaurants/{restaurantId}/menu - lists
// the restaurant's active menu items.
func (s *Server) ListMenu(ctx echo.Context, restaurantID int64) error {
	query, err := queries.NewListMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	items, err := s.listMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Id:    item.ID,
			Name:  item.Name,
			Price: item.Price.Amount().InexactFloat64(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /restaurants/{restaurantId}/menu - adds
// a menu item to the acting owner's restaurant.
func (s *Server) AddMenuItem(ctx echo.Context, restaurantID int64) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var request servers.NewMenuItem
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(request.Price)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	cmd, err := commands.NewAddMenuItemCommand(actor, restaurantID, request.Name, price)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	itemID, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: itemID})
}

// PlaceOrder handles POST /orders - places and pays for a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	var request servers.NewOrder
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.OrderLine, len(request.Lines))
	for i, line := range request.Lines {
		lines[i] = commands.OrderLine{
			MenuItemID: line.MenuItemId,
			Qty:        line.Qty,
		}
	}

	instrument := ports.PaymentInstrument{
		MockSuccess: request.MockPaymentSuccess,
		Token:       request.PaymentToken,
	}

	cmd, err := commands.NewPlaceOrderCommand(actor, request.RestaurantId, request.AddressText, lines, instrument)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return handlerError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID})
}

// GetMyOrders handles GET /orders/me - lists the orders visible
// to the acting user.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	query, err := queries.NewMyOrdersQuery(actor)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.myOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return handlerError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		items := make([]servers.OrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = servers.OrderItem{
				MenuItemId: item.MenuItemID,
				Name:       item.Name,
				Price:      item.Price.Amount().InexactFloat64(),
				Qty:        item.Qty,
			}
		}

		response[i] = servers.Order{
			Id:           o.ID,
			CustomerId:   o.CustomerID,
			RestaurantId: o.RestaurantID,
			Status:       o.Status,
			AddressText:  o.AddressText,
			Total:        o.Total.Amount().InexactFloat64(),
			CreatedAt:    o.CreatedAt,
			Items:        items,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles PATCH /orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID int64) error {
	return s.transitionOrder(ctx, orderID, order.OperationCancel)
}

// AcceptOrder handles PATCH /orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderID int64) error {
	return s.transitionOrder(ctx, orderID, order.OperationAccept)
}

// RejectOrder handles PATCH /orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderID int64) error {
	return s.transitionOrder(ctx, orderID, order.OperationReject)
}

// PickupOrder handles PATCH /orders/{orderId}/pickup.
func (s *Server) PickupOrder(ctx echo.Context, orderID int64) error {
	return s.transitionOrder(ctx, orderID, order.OperationPickup)
}

// DeliverOrder handles PATCH /orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderID int64) error {
	return s.transitionOrder(ctx, orderID, order.OperationDeliver)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// transitionOrder runs a lifecycle operation against an order on behalf
// of the acting user. All five transition routes share this path; the
// engine decides per role and state, the HTTP layer only translates errors.
func (s *Server) transitionOrder(ctx echo.Context, orderID int64, operation order.Operation) error {
	actor, ok := actorFrom(ctx)
	if !ok {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, operation, actor)
	if err != nil {
		return badRequest(ctx, "Invalid transition request: "+err.Error())
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return handlerError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// handlerError translates an application-layer error into the HTTP
// response contract. Ownership failures already surface as not-found
// from the core, so the mapping never distinguishes them here.
func handlerError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

// statusFor maps the error taxonomy of the core onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrPaymentDeclined):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, servers.Error{
		Code:    http.StatusUnauthorized,
		Message: "Authentication required",
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
