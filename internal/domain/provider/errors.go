package provider

import "errors"

var (
	// ErrProviderNotFound indicates the provider row does not exist
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderNotTrashed indicates a restore was requested for a provider that is not in trash
	ErrProviderNotTrashed = errors.New("provider is not in trash")

	// ErrNameRequired indicates the provider name is empty after trimming
	ErrNameRequired = errors.New("name is required")

	// ErrAPIKeyRequired indicates the API key is empty after trimming
	ErrAPIKeyRequired = errors.New("apiKey is required")

	// ErrNameExists indicates another provider already uses the name
	ErrNameExists = errors.New("provider with this name already exists")

	// ErrAPIURLExists indicates another provider already uses the API URL
	ErrAPIURLExists = errors.New("provider with this apiUrl already exists")

	// ErrMissingCredentials indicates an activation without both apiUrl and apiKey
	ErrMissingCredentials = errors.New("apiUrl and apiKey are required to activate a provider")

	// ErrInvalidAPIURL indicates the apiUrl is not an absolute http(s) URL
	ErrInvalidAPIURL = errors.New("apiUrl must be a valid http or https URL")

	// ErrInvalidHTTPMethod indicates an HTTP method other than GET or POST
	ErrInvalidHTTPMethod = errors.New("httpMethod must be GET or POST")

	// ErrInvalidStatus indicates a status outside active/inactive
	ErrInvalidStatus = errors.New("invalid provider status")

	// ErrInvalidFilter indicates a list filter outside the supported set
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidDeleteMode indicates a delete type other than trash or permanent
	ErrInvalidDeleteMode = errors.New("invalid delete type")
)
