package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListRestaurantsQueryHandler retrieves the restaurant catalog from the
// database. Results are sorted by id for stable output.
type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewListRestaurantsQueryHandler creates a handler for catalog listings.
// Requires a GORM database connection for query execution.
func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle executes the query and returns every restaurant, open or closed.
// Closed restaurants stay listed; they only refuse new orders.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]ListRestaurantsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			is_open
		FROM restaurants
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]ListRestaurantsQueryResponse, 0)

	for rows.Next() {
		var resp ListRestaurantsQueryResponse

		err = rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Address,
			&resp.IsOpen,
		)
		if err != nil {
			return nil, err
		}

		restaurants = append(restaurants, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
