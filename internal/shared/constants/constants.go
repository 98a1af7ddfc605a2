package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableProviders       = "api_providers"
	TableServices        = "services"
	TableCategories      = "categories"
	TableServiceTypes    = "service_types"
	TableOrders          = "orders"
	TableCancelRequests  = "cancel_requests"
	TableRefillRequests  = "refill_requests"
	TableFavoriteService = "favorite_services"

	// Permission resources and actions
	ResourceProvider = "provider"
	ActionRead       = "read"
	ActionWrite      = "write"
)
