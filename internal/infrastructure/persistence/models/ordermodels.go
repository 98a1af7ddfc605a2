package models

import (
	"time"

	"github.com/smmpanel/panel/internal/shared/constants"
)

// OrderModel is a customer order placed against a service.
type OrderModel struct {
	ID              uint    `gorm:"primarykey"`
	UserID          uint    `gorm:"not null;index:idx_orders_user_id"`
	ServiceID       uint    `gorm:"not null;index:idx_orders_service_id"`
	Link            string  `gorm:"not null;size:1000"`
	Quantity        int     `gorm:"not null"`
	Charge          float64 `gorm:"not null;default:0"`
	StartCount      int     `gorm:"not null;default:0"`
	Remains         int     `gorm:"not null;default:0"`
	Status          string  `gorm:"not null;size:20;default:pending"`
	ProviderOrderID string  `gorm:"size:100"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM.
func (OrderModel) TableName() string {
	return constants.TableOrders
}

// CancelRequestModel is a customer request to cancel an order.
type CancelRequestModel struct {
	ID        uint   `gorm:"primarykey"`
	OrderID   uint   `gorm:"not null;index:idx_cancel_requests_order_id"`
	UserID    uint   `gorm:"not null"`
	Reason    string `gorm:"size:1000"`
	Status    string `gorm:"not null;size:20;default:pending"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (CancelRequestModel) TableName() string {
	return constants.TableCancelRequests
}

// RefillRequestModel is a customer request to refill an order.
type RefillRequestModel struct {
	ID               uint   `gorm:"primarykey"`
	OrderID          uint   `gorm:"not null;index:idx_refill_requests_order_id"`
	UserID           uint   `gorm:"not null"`
	Status           string `gorm:"not null;size:20;default:pending"`
	ProviderRefillID string `gorm:"size:100"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM.
func (RefillRequestModel) TableName() string {
	return constants.TableRefillRequests
}

// FavoriteServiceModel marks a service as a user's favorite.
type FavoriteServiceModel struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorite_services_user_service"`
	ServiceID uint `gorm:"not null;uniqueIndex:idx_favorite_services_user_service"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM.
func (FavoriteServiceModel) TableName() string {
	return constants.TableFavoriteService
}
