package dto

import (
	"strings"
	"time"

	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
)

// APIConfigDTO is the request shape of a provider API as exchanged with the admin UI.
type APIConfigDTO struct {
	APIKeyParam        string `json:"apiKeyParam" yaml:"api_key_param"`
	ActionParam        string `json:"actionParam" yaml:"action_param"`
	ServicesAction     string `json:"servicesAction" yaml:"services_action"`
	AddOrderAction     string `json:"addOrderAction" yaml:"add_order_action"`
	OrderStatusAction  string `json:"orderStatusAction" yaml:"order_status_action"`
	BalanceAction      string `json:"balanceAction" yaml:"balance_action"`
	RefillAction       string `json:"refillAction" yaml:"refill_action"`
	RefillStatusAction string `json:"refillStatusAction" yaml:"refill_status_action"`
	CancelAction       string `json:"cancelAction" yaml:"cancel_action"`
	ServiceIDParam     string `json:"serviceIdParam" yaml:"service_id_param"`
	LinkParam          string `json:"linkParam" yaml:"link_param"`
	QuantityParam      string `json:"quantityParam" yaml:"quantity_param"`
	OrderIDParam       string `json:"orderIdParam" yaml:"order_id_param"`
	OrdersParam        string `json:"ordersParam" yaml:"orders_param"`
	ResponseFormat     string `json:"responseFormat" yaml:"response_format"`
}

// ToDomain converts the DTO into a domain config; blank fields stay blank.
func (d APIConfigDTO) ToDomain() provider.APIConfig {
	return provider.APIConfig{
		APIKeyParam:        d.APIKeyParam,
		ActionParam:        d.ActionParam,
		ServicesAction:     d.ServicesAction,
		AddOrderAction:     d.AddOrderAction,
		OrderStatusAction:  d.OrderStatusAction,
		BalanceAction:      d.BalanceAction,
		RefillAction:       d.RefillAction,
		RefillStatusAction: d.RefillStatusAction,
		CancelAction:       d.CancelAction,
		ServiceIDParam:     d.ServiceIDParam,
		LinkParam:          d.LinkParam,
		QuantityParam:      d.QuantityParam,
		OrderIDParam:       d.OrderIDParam,
		OrdersParam:        d.OrdersParam,
		ResponseFormat:     d.ResponseFormat,
	}
}

// FromAPIConfig converts a domain config into its DTO.
func FromAPIConfig(c provider.APIConfig) APIConfigDTO {
	return APIConfigDTO{
		APIKeyParam:        c.APIKeyParam,
		ActionParam:        c.ActionParam,
		ServicesAction:     c.ServicesAction,
		AddOrderAction:     c.AddOrderAction,
		OrderStatusAction:  c.OrderStatusAction,
		BalanceAction:      c.BalanceAction,
		RefillAction:       c.RefillAction,
		RefillStatusAction: c.RefillStatusAction,
		CancelAction:       c.CancelAction,
		ServiceIDParam:     c.ServiceIDParam,
		LinkParam:          c.LinkParam,
		QuantityParam:      c.QuantityParam,
		OrderIDParam:       c.OrderIDParam,
		OrdersParam:        c.OrdersParam,
		ResponseFormat:     c.ResponseFormat,
	}
}

// ProviderDTO represents a provider in API responses
type ProviderDTO struct {
	ID                 uint         `json:"id"`
	Name               string       `json:"name"`
	APIKey             string       `json:"apiKey"`
	APIURL             string       `json:"apiUrl"`
	HTTPMethod         string       `json:"httpMethod"`
	Status             string       `json:"status"`
	IsCustom           bool         `json:"isCustom"`
	CurrentBalance     float64      `json:"currentBalance"`
	BalanceLastUpdated *time.Time   `json:"balanceLastUpdated"`
	APIConfig          APIConfigDTO `json:"apiConfig"`
	TotalServices      int64        `json:"totalServices"`
	ActiveServices     int64        `json:"activeServices"`
	InactiveServices   int64        `json:"inactiveServices"`
	OrderCount         int64        `json:"orderCount"`
	CreatedAt          time.Time    `json:"createdAt"`
	UpdatedAt          time.Time    `json:"updatedAt"`
	DeletedAt          *time.Time   `json:"deletedAt"`
}

// ToProviderDTO converts a provider and its counters into a response DTO.
// stats may be nil for providers without services.
func ToProviderDTO(p *provider.Provider, stats *catalog.ServiceStats) *ProviderDTO {
	if p == nil {
		return nil
	}

	d := &ProviderDTO{
		ID:                 p.ID(),
		Name:               p.Name(),
		APIKey:             MaskSecret(p.APIKey()),
		APIURL:             p.APIURL(),
		HTTPMethod:         p.HTTPMethod(),
		Status:             p.Status().String(),
		IsCustom:           p.IsCustom(),
		CurrentBalance:     p.CurrentBalance(),
		BalanceLastUpdated: p.BalanceLastUpdated(),
		APIConfig:          FromAPIConfig(p.APIConfig()),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
		DeletedAt:          p.DeletedAt(),
	}
	if stats != nil {
		d.TotalServices = stats.Total
		d.ActiveServices = stats.Active
		d.InactiveServices = stats.Inactive
		d.OrderCount = stats.Orders
	}
	return d
}

// MaskSecret hides all but the last four characters of a credential.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

// ListProvidersResult is the body of a provider listing.
type ListProvidersResult struct {
	Providers  []*ProviderDTO `json:"providers"`
	Total      int            `json:"total"`
	Configured int            `json:"configured"`
	Available  int            `json:"available"`
	Custom     int            `json:"custom"`
}

// ContainerOutcome reports what a cascade did to categories or service types.
type ContainerOutcome struct {
	Removed   []uint `json:"removed"`
	Preserved []uint `json:"preserved"`
}

// DeleteProviderResult summarises a provider cascade.
type DeleteProviderResult struct {
	ProviderID       uint             `json:"providerId"`
	Mode             string           `json:"mode"`
	ServicesAffected int64            `json:"servicesAffected"`
	Categories       ContainerOutcome `json:"categories"`
	ServiceTypes     ContainerOutcome `json:"serviceTypes"`
}

// RestoreProviderResult summarises a restore.
type RestoreProviderResult struct {
	ProviderID           uint   `json:"providerId"`
	ServicesRestored     int64  `json:"servicesRestored"`
	RestoredCategories   []uint `json:"restoredCategories"`
	RestoredServiceTypes []uint `json:"restoredServiceTypes"`
}
