// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"gelsin/internal/core/domain/model/kernel"
	"gelsin/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Items and the delivery record are owned rows, written and
// loaded together with the order.
type OrderDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	CustomerID   int64  `gorm:"index"`
	RestaurantID int64  `gorm:"index"`
	AddressText  string `gorm:"type:text"`
	Status       string `gorm:"type:varchar(16);index"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt    time.Time
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID"`
	Delivery     DeliveryDTO    `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one snapshotted order line. Rows are immutable
// once written; catalog edits never touch them.
type OrderItemDTO struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	OrderID       int64 `gorm:"index"`
	MenuItemID    int64
	NameSnapshot  string          `gorm:"type:text"`
	PriceSnapshot decimal.Decimal `gorm:"type:numeric(12,2)"`
	Qty           int
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// DeliveryDTO represents the delivery record of one order. CourierID stays
// null until a courier picks the order up; the unique order reference keeps
// it one-to-one.
type DeliveryDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"uniqueIndex"`
	CourierID *int64 `gorm:"index"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts an order aggregate to its database representation.
// Store-assigned identifiers are zero for new aggregates and filled in by
// the insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:            item.ID(),
			OrderID:       aggregate.ID(),
			MenuItemID:    item.MenuItemID(),
			NameSnapshot:  item.NameSnapshot(),
			PriceSnapshot: item.PriceSnapshot().Amount(),
			Qty:           item.Qty(),
		})
	}

	delivery := aggregate.Delivery()

	return OrderDTO{
		ID:           aggregate.ID(),
		CustomerID:   aggregate.CustomerID(),
		RestaurantID: aggregate.RestaurantID(),
		AddressText:  aggregate.AddressText(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total().Amount(),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        items,
		Delivery: DeliveryDTO{
			ID:        delivery.ID(),
			OrderID:   aggregate.ID(),
			CourierID: delivery.CourierID(),
		},
	}
}

// toDomain converts a database DTO to an order aggregate, reconstructing
// items and the delivery record through the restore constructors.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		price, priceErr := kernel.NewMoney(itemDTO.PriceSnapshot)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreOrderItem(
			itemDTO.ID, itemDTO.MenuItemID, itemDTO.NameSnapshot, price, itemDTO.Qty,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	delivery, err := order.RestoreDelivery(dto.Delivery.ID, dto.Delivery.CourierID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.RestaurantID,
		dto.AddressText,
		status,
		total,
		dto.CreatedAt,
		items,
		delivery,
	)
}
