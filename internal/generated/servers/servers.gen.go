// Package servers provides the server seam for the OpenAPI contract:
// request/response types, the ServerInterface the HTTP adapter implements,
// and echo route registration with typed path-parameter binding.
package servers

import (
	"fmt"
	"time"

	"gelsin/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created defines model for Created.
type Created struct {
	Id int64 `json:"id"`
}

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthToken defines model for AuthToken.
type AuthToken struct {
	Token string `json:"token"`
}

// Restaurant defines model for Restaurant.
type Restaurant struct {
	Id      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	IsOpen  bool   `json:"is_open"`
}

// NewRestaurant defines model for NewRestaurant.
type NewRestaurant struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// MenuItem defines model for MenuItem.
type MenuItem struct {
	Id    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewMenuItem defines model for NewMenuItem.
type NewMenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderLine defines model for OrderLine.
type OrderLine struct {
	MenuItemId int64 `json:"menu_item_id"`
	Qty        int   `json:"qty"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	RestaurantId       int64       `json:"restaurant_id"`
	AddressText        string      `json:"address_text"`
	Lines              []OrderLine `json:"lines"`
	MockPaymentSuccess bool        `json:"mock_payment_success"`
	PaymentToken       string      `json:"payment_token,omitempty"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	MenuItemId int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int     `json:"qty"`
}

// Order defines model for Order.
type Order struct {
	Id           int64       `json:"id"`
	CustomerId   int64       `json:"customer_id"`
	RestaurantId int64       `json:"restaurant_id"`
	Status       string      `json:"status"`
	AddressText  string      `json:"address_text"`
	Total        float64     `json:"total"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Exchange credentials for a bearer token
	// (POST /auth/login)
	LoginUser(ctx echo.Context) error
	// Register a new user account
	// (POST /auth/register)
	RegisterUser(ctx echo.Context) error
	// Liveness probe
	// (GET /health)
	GetHealth(ctx echo.Context) error
	// List the orders visible to the caller
	// (GET /orders/me)
	GetMyOrders(ctx echo.Context) error
	// Place and pay for a new order
	// (POST /orders)
	PlaceOrder(ctx echo.Context) error
	// Accept a paid order for preparation
	// (PATCH /orders/{orderId}/accept)
	AcceptOrder(ctx echo.Context, orderId int64) error
	// Cancel an order before acceptance
	// (PATCH /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId int64) error
	// Complete the delivery of a picked-up order
	// (PATCH /orders/{orderId}/deliver)
	DeliverOrder(ctx echo.Context, orderId int64) error
	// Pick up an accepted order
	// (PATCH /orders/{orderId}/pickup)
	PickupOrder(ctx echo.Context, orderId int64) error
	// Reject a paid order
	// (PATCH /orders/{orderId}/reject)
	RejectOrder(ctx echo.Context, orderId int64) error
	// List all restaurants
	// (GET /restaurants)
	ListRestaurants(ctx echo.Context) error
	// Create the caller's restaurant
	// (POST /restaurants)
	CreateRestaurant(ctx echo.Context) error
	// List a restaurant's active menu items
	// (GET /restaurants/{restaurantId}/menu)
	ListMenu(ctx echo.Context, restaurantId int64) error
	// Add a menu item to the caller's restaurant
	// (POST /restaurants/{restaurantId}/menu)
	AddMenuItem(ctx echo.Context, restaurantId int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// LoginUser converts echo context to params.
func (w *ServerInterfaceWrapper) LoginUser(ctx echo.Context) error {
	return w.Handler.LoginUser(ctx)
}

// RegisterUser converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterUser(ctx echo.Context) error {
	return w.Handler.RegisterUser(ctx)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// GetMyOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetMyOrders(ctx echo.Context) error {
	return w.Handler.GetMyOrders(ctx)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

// AcceptOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AcceptOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcceptOrder(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CancelOrder(ctx, orderId)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeliverOrder(ctx, orderId)
}

// PickupOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PickupOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PickupOrder(ctx, orderId)
}

// RejectOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RejectOrder(ctx echo.Context) error {
	orderId, err := bindOrderId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RejectOrder(ctx, orderId)
}

// ListRestaurants converts echo context to params.
func (w *ServerInterfaceWrapper) ListRestaurants(ctx echo.Context) error {
	return w.Handler.ListRestaurants(ctx)
}

// CreateRestaurant converts echo context to params.
func (w *ServerInterfaceWrapper) CreateRestaurant(ctx echo.Context) error {
	return w.Handler.CreateRestaurant(ctx)
}

// ListMenu converts echo context to params.
func (w *ServerInterfaceWrapper) ListMenu(ctx echo.Context) error {
	restaurantId, err := bindRestaurantId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListMenu(ctx, restaurantId)
}

// AddMenuItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddMenuItem(ctx echo.Context) error {
	restaurantId, err := bindRestaurantId(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddMenuItem(ctx, restaurantId)
}

func bindOrderId(ctx echo.Context) (int64, error) {
	var orderId int64
	err := runtime.BindStyledParameterWithOptions(
		"simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		},
	)
	if err != nil {
		return 0, echo.NewHTTPError(400, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindRestaurantId(ctx echo.Context) (int64, error) {
	var restaurantId int64
	err := runtime.BindStyledParameterWithOptions(
		"simple", "restaurantId", ctx.Param("restaurantId"), &restaurantId,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		},
	)
	if err != nil {
		return 0, echo.NewHTTPError(400, fmt.Sprintf("Invalid format for parameter restaurantId: %s", err))
	}
	return restaurantId, nil
}

// EchoRouter is the subset of echo.Echo (or echo.Group) used to register
// the generated routes.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers all routes with a prefix, so the
// paths can be served under a base URL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/login", wrapper.LoginUser)
	router.POST(baseURL+"/auth/register", wrapper.RegisterUser)
	router.GET(baseURL+"/health", wrapper.GetHealth)
	router.GET(baseURL+"/orders/me", wrapper.GetMyOrders)
	router.POST(baseURL+"/orders", wrapper.PlaceOrder)
	router.PATCH(baseURL+"/orders/:orderId/accept", wrapper.AcceptOrder)
	router.PATCH(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
	router.PATCH(baseURL+"/orders/:orderId/deliver", wrapper.DeliverOrder)
	router.PATCH(baseURL+"/orders/:orderId/pickup", wrapper.PickupOrder)
	router.PATCH(baseURL+"/orders/:orderId/reject", wrapper.RejectOrder)
	router.GET(baseURL+"/restaurants", wrapper.ListRestaurants)
	router.POST(baseURL+"/restaurants", wrapper.CreateRestaurant)
	router.GET(baseURL+"/restaurants/:restaurantId/menu", wrapper.ListMenu)
	router.POST(baseURL+"/restaurants/:restaurantId/menu", wrapper.AddMenuItem)
}

// GetSwagger returns the OpenAPI document the routes were derived from.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	return swagger, nil
}
