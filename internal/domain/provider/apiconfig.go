package provider

import "strings"

// Default request shape of the common SMM provider API (v2 style).
const (
	DefaultAPIKeyParam        = "key"
	DefaultActionParam        = "action"
	DefaultServicesAction     = "services"
	DefaultAddOrderAction     = "add"
	DefaultOrderStatusAction  = "status"
	DefaultBalanceAction      = "balance"
	DefaultRefillAction       = "refill"
	DefaultRefillStatusAction = "refill_status"
	DefaultCancelAction       = "cancel"
	DefaultServiceIDParam     = "service"
	DefaultLinkParam          = "link"
	DefaultQuantityParam      = "quantity"
	DefaultOrderIDParam       = "order"
	DefaultOrdersParam        = "orders"
	DefaultResponseFormat     = "json"
	DefaultHTTPMethod         = "POST"
)

// APIConfig describes parameter and action names a provider's API expects.
// It is stored as is; this subsystem never calls the provider.
type APIConfig struct {
	APIKeyParam        string
	ActionParam        string
	ServicesAction     string
	AddOrderAction     string
	OrderStatusAction  string
	BalanceAction      string
	RefillAction       string
	RefillStatusAction string
	CancelAction       string
	ServiceIDParam     string
	LinkParam          string
	QuantityParam      string
	OrderIDParam       string
	OrdersParam        string
	ResponseFormat     string
}

// DefaultAPIConfig returns the configuration with every field at its default.
func DefaultAPIConfig() APIConfig {
	return APIConfig{}.WithDefaults()
}

// WithDefaults returns a copy with blank fields replaced by their defaults.
func (c APIConfig) WithDefaults() APIConfig {
	fill := func(v *string, def string) {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			*v = def
		}
	}

	fill(&c.APIKeyParam, DefaultAPIKeyParam)
	fill(&c.ActionParam, DefaultActionParam)
	fill(&c.ServicesAction, DefaultServicesAction)
	fill(&c.AddOrderAction, DefaultAddOrderAction)
	fill(&c.OrderStatusAction, DefaultOrderStatusAction)
	fill(&c.BalanceAction, DefaultBalanceAction)
	fill(&c.RefillAction, DefaultRefillAction)
	fill(&c.RefillStatusAction, DefaultRefillStatusAction)
	fill(&c.CancelAction, DefaultCancelAction)
	fill(&c.ServiceIDParam, DefaultServiceIDParam)
	fill(&c.LinkParam, DefaultLinkParam)
	fill(&c.QuantityParam, DefaultQuantityParam)
	fill(&c.OrderIDParam, DefaultOrderIDParam)
	fill(&c.OrdersParam, DefaultOrdersParam)
	fill(&c.ResponseFormat, DefaultResponseFormat)
	return c
}

// Merge overlays the non-blank fields of patch onto c.
func (c APIConfig) Merge(patch APIConfig) APIConfig {
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}

	set(&c.APIKeyParam, patch.APIKeyParam)
	set(&c.ActionParam, patch.ActionParam)
	set(&c.ServicesAction, patch.ServicesAction)
	set(&c.AddOrderAction, patch.AddOrderAction)
	set(&c.OrderStatusAction, patch.OrderStatusAction)
	set(&c.BalanceAction, patch.BalanceAction)
	set(&c.RefillAction, patch.RefillAction)
	set(&c.RefillStatusAction, patch.RefillStatusAction)
	set(&c.CancelAction, patch.CancelAction)
	set(&c.ServiceIDParam, patch.ServiceIDParam)
	set(&c.LinkParam, patch.LinkParam)
	set(&c.QuantityParam, patch.QuantityParam)
	set(&c.OrderIDParam, patch.OrderIDParam)
	set(&c.OrdersParam, patch.OrdersParam)
	set(&c.ResponseFormat, patch.ResponseFormat)
	return c
}
