// Package restaurantrepo provides data transfer objects and mapping
// functions for catalog persistence: restaurants and their menu items.
package restaurantrepo

import (
	"gelsin/internal/core/domain/model/catalog"
	"gelsin/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting
// restaurants. The unique owner index enforces one restaurant per owner.
type RestaurantDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255)"`
	Address     string `gorm:"type:text"`
	IsOpen      bool
	OwnerUserID int64 `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
// Deactivated items stay stored; historical orders keep referencing them.
type MenuItemDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64  `gorm:"index"`
	Name         string `gorm:"type:varchar(255)"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsActive     bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// restaurantFromDomain converts a restaurant entity to its database
// representation.
func restaurantFromDomain(restaurant *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          restaurant.ID(),
		Name:        restaurant.Name(),
		Address:     restaurant.Address(),
		IsOpen:      restaurant.IsOpen(),
		OwnerUserID: restaurant.OwnerUserID(),
	}
}

// restaurantToDomain converts a database DTO to a restaurant entity.
func restaurantToDomain(dto RestaurantDTO) (*catalog.Restaurant, error) {
	return catalog.RestoreRestaurant(dto.ID, dto.Name, dto.Address, dto.IsOpen, dto.OwnerUserID)
}

// menuItemFromDomain converts a menu item entity to its database
// representation.
func menuItemFromDomain(item *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID(),
		RestaurantID: item.RestaurantID(),
		Name:         item.Name(),
		Price:        item.Price().Amount(),
		IsActive:     item.IsActive(),
	}
}

// menuItemToDomain converts a database DTO to a menu item entity.
func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreMenuItem(dto.ID, dto.RestaurantID, dto.Name, price, dto.IsActive)
}
