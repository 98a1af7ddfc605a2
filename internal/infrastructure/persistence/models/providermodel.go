package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/shared/constants"
)

// ProviderModel represents the database persistence model for API providers.
// APIURL is nil when no endpoint is configured so the unique index ignores it.
type ProviderModel struct {
	ID                 uint    `gorm:"primarykey"`
	Name               string  `gorm:"not null;size:255;uniqueIndex:idx_api_providers_name"`
	APIKey             string  `gorm:"column:api_key;not null;size:255"`
	APIURL             *string `gorm:"column:api_url;size:500;uniqueIndex:idx_api_providers_api_url"`
	HTTPMethod         string  `gorm:"column:http_method;not null;size:10;default:POST"`
	Status             string  `gorm:"not null;size:20;default:inactive;index:idx_api_providers_status"`
	IsCustom           bool    `gorm:"not null;default:true"`
	CurrentBalance     float64 `gorm:"not null;default:0"`
	BalanceLastUpdated *time.Time
	APIConfig          datatypes.JSON `gorm:"column:api_config"`
	CreatedAt          time.Time      `gorm:"index:idx_api_providers_created_at"`
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM.
func (ProviderModel) TableName() string {
	return constants.TableProviders
}

// BeforeCreate hook for GORM.
func (m *ProviderModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "inactive"
	}
	if m.HTTPMethod == "" {
		m.HTTPMethod = "POST"
	}
	return nil
}

// ProviderAPIConfigColumn is the JSON document stored in api_config.
type ProviderAPIConfigColumn struct {
	APIKeyParam        string `json:"api_key_param"`
	ActionParam        string `json:"action_param"`
	ServicesAction     string `json:"services_action"`
	AddOrderAction     string `json:"add_order_action"`
	OrderStatusAction  string `json:"order_status_action"`
	BalanceAction      string `json:"balance_action"`
	RefillAction       string `json:"refill_action"`
	RefillStatusAction string `json:"refill_status_action"`
	CancelAction       string `json:"cancel_action"`
	ServiceIDParam     string `json:"service_id_param"`
	LinkParam          string `json:"link_param"`
	QuantityParam      string `json:"quantity_param"`
	OrderIDParam       string `json:"order_id_param"`
	OrdersParam        string `json:"orders_param"`
	ResponseFormat     string `json:"response_format"`
}
