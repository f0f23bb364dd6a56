package queries

import (
	"context"
	"errors"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenuQueryHandler retrieves one restaurant's active menu items from
// the database. Inactive items stay stored for historical orders but are
// never listed.
type ListMenuQueryHandler struct {
	db *gorm.DB
}

// NewListMenuQueryHandler creates a handler for menu listings.
// Requires a GORM database connection for query execution.
func NewListMenuQueryHandler(db *gorm.DB) ListMenuQueryHandler {
	return ListMenuQueryHandler{db: db}
}

// Handle executes the query and returns the restaurant's active items
// sorted by id. An unknown restaurant id yields a not-found error rather
// than an empty menu.
func (h ListMenuQueryHandler) Handle(
	ctx context.Context,
	query ListMenuQuery,
) ([]ListMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).Raw(
		"SELECT COUNT(1) FROM restaurants WHERE id = ?", query.RestaurantID(),
	).Scan(&exists).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price
		FROM menu_items
		WHERE restaurant_id = ? AND is_active
		ORDER BY id
	`, query.RestaurantID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ListMenuQueryResponse, 0)

	for rows.Next() {
		var (
			resp  ListMenuQueryResponse
			price decimal.Decimal
		)

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&price,
		)
		if err != nil {
			return nil, err
		}

		priceMoney, moneyErr := kernel.NewMoney(price)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Price = priceMoney

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
