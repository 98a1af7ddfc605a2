package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/shared/constants"
)

// ServiceModel is a sellable service. ProviderID nil means it was created in the panel itself.
type ServiceModel struct {
	ID                uint    `gorm:"primarykey"`
	CategoryID        uint    `gorm:"not null;index:idx_services_category_id"`
	ServiceTypeID     *uint   `gorm:"index:idx_services_service_type_id"`
	ProviderID        *uint   `gorm:"index:idx_services_provider_id"`
	ProviderServiceID string  `gorm:"size:100"`
	Name              string  `gorm:"not null;size:255"`
	Rate              float64 `gorm:"not null;default:0"`
	MinQuantity       int     `gorm:"not null;default:1"`
	MaxQuantity       int     `gorm:"not null;default:1"`
	Status            string  `gorm:"not null;size:20;default:active"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (ServiceModel) TableName() string {
	return constants.TableServices
}

// CategoryModel groups services for display.
type CategoryModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	Position  int    `gorm:"not null;default:0"`
	Status    string `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (CategoryModel) TableName() string {
	return constants.TableCategories
}

// ServiceTypeModel groups services by kind. Deletion uses deleted_at like every other table.
type ServiceTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	Status    string `gorm:"not null;size:20;default:active"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (ServiceTypeModel) TableName() string {
	return constants.TableServiceTypes
}
