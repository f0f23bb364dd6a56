package queries

import (
	"context"
	"time"

	"gelsin/internal/core/domain/model/account"
	"gelsin/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MyOrdersQueryHandler retrieves the role-dependent order projection from
// the database. Orders are returned most-recently-created first; identifiers
// are assigned monotonically, so descending id is descending creation time.
type MyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewMyOrdersQueryHandler creates a handler for order visibility queries.
// Requires a GORM database connection for query execution.
func NewMyOrdersQueryHandler(db *gorm.DB) MyOrdersQueryHandler {
	return MyOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the orders visible to the actor,
// each with its snapshotted items. A restaurant owner without a restaurant
// gets an empty list rather than an error.
func (h MyOrdersQueryHandler) Handle(
	ctx context.Context,
	query MyOrdersQuery,
) ([]MyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()

	baseQuery := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.status,
			o.address_text,
			o.total,
			o.created_at
		FROM orders o
	`
	var filter string
	args := make([]any, 0, 1)

	switch actor.Role() {
	case account.RoleCustomer:
		filter = "WHERE o.customer_id = ?"
		args = append(args, actor.ID())
	case account.RoleRestaurant:
		filter = "WHERE o.restaurant_id IN (SELECT r.id FROM restaurants r WHERE r.owner_user_id = ?)"
		args = append(args, actor.ID())
	case account.RoleCourier:
		filter = "WHERE o.id IN (SELECT d.order_id FROM deliveries d WHERE d.courier_id = ?)"
		args = append(args, actor.ID())
	default:
		// Admin: unfiltered.
	}

	rows, err := h.db.WithContext(ctx).Raw(
		baseQuery+filter+" ORDER BY o.id DESC", args...,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]MyOrdersQueryResponse, 0)
	orderIDs := make([]int64, 0)
	byID := make(map[int64]int)

	for rows.Next() {
		var (
			resp      MyOrdersQueryResponse
			total     decimal.Decimal
			createdAt time.Time
		)

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.RestaurantID,
			&resp.Status,
			&resp.AddressText,
			&total,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		totalMoney, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Total = totalMoney
		resp.CreatedAt = createdAt
		resp.Items = make([]MyOrdersItemResponse, 0)

		byID[resp.ID] = len(orders)
		orderIDs = append(orderIDs, resp.ID)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachItems(ctx, orders, byID, orderIDs); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h MyOrdersQueryHandler) attachItems(
	ctx context.Context,
	orders []MyOrdersQueryResponse,
	byID map[int64]int,
	orderIDs []int64,
) error {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.menu_item_id,
			i.name_snapshot,
			i.price_snapshot,
			i.qty
		FROM order_items i
		WHERE i.order_id = ANY(?)
		ORDER BY i.id
	`, pq.Array(orderIDs)).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			item    MyOrdersItemResponse
			price   decimal.Decimal
		)

		err = rows.Scan(
			&orderID,
			&item.MenuItemID,
			&item.Name,
			&price,
			&item.Qty,
		)
		if err != nil {
			return err
		}

		priceMoney, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return moneyErr
		}
		item.Price = priceMoney

		idx, ok := byID[orderID]
		if !ok {
			continue
		}
		orders[idx].Items = append(orders[idx].Items, item)
	}

	return rows.Err()
}
