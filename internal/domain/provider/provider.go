// Package provider provides the domain model for upstream SMM API providers.
package provider

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/smmpanel/panel/internal/shared/biztime"
)

// Status represents the activation state of a provider
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// Provider is the aggregate root for an upstream API provider.
// An empty apiURL means the provider has no endpoint configured yet.
type Provider struct {
	id                 uint
	name               string
	apiKey             string
	apiURL             string
	httpMethod         string
	status             Status
	isCustom           bool
	currentBalance     float64
	balanceLastUpdated *time.Time
	apiConfig          APIConfig
	createdAt          time.Time
	updatedAt          time.Time
	deletedAt          *time.Time
}

// NewProvider creates an inactive custom provider.
func NewProvider(name, apiKey, apiURL, httpMethod string, cfg APIConfig) (*Provider, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}
	method, err := normalizeHTTPMethod(httpMethod)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &Provider{
		name:       name,
		apiKey:     apiKey,
		apiURL:     strings.TrimSpace(apiURL),
		httpMethod: method,
		status:     StatusInactive,
		isCustom:   true,
		apiConfig:  cfg.WithDefaults(),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructProvider reconstructs a provider from persistence
func ReconstructProvider(
	id uint,
	name, apiKey, apiURL, httpMethod, status string,
	isCustom bool,
	currentBalance float64,
	balanceLastUpdated *time.Time,
	cfg APIConfig,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Provider, error) {
	if id == 0 {
		return nil, fmt.Errorf("provider ID cannot be zero")
	}
	s := Status(status)
	if !s.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if httpMethod == "" {
		httpMethod = DefaultHTTPMethod
	}

	return &Provider{
		id:                 id,
		name:               name,
		apiKey:             apiKey,
		apiURL:             apiURL,
		httpMethod:         httpMethod,
		status:             s,
		isCustom:           isCustom,
		currentBalance:     currentBalance,
		balanceLastUpdated: balanceLastUpdated,
		apiConfig:          cfg.WithDefaults(),
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		deletedAt:          deletedAt,
	}, nil
}

func (p *Provider) ID() uint                       { return p.id }
func (p *Provider) Name() string                   { return p.name }
func (p *Provider) APIKey() string                 { return p.apiKey }
func (p *Provider) APIURL() string                 { return p.apiURL }
func (p *Provider) HTTPMethod() string             { return p.httpMethod }
func (p *Provider) Status() Status                 { return p.status }
func (p *Provider) IsCustom() bool                 { return p.isCustom }
func (p *Provider) CurrentBalance() float64        { return p.currentBalance }
func (p *Provider) BalanceLastUpdated() *time.Time { return p.balanceLastUpdated }
func (p *Provider) APIConfig() APIConfig           { return p.apiConfig }
func (p *Provider) CreatedAt() time.Time           { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time           { return p.updatedAt }
func (p *Provider) DeletedAt() *time.Time          { return p.deletedAt }

// IsActive reports whether the provider is active
func (p *Provider) IsActive() bool {
	return p.status == StatusActive
}

// IsTrashed reports whether the provider is in trash
func (p *Provider) IsTrashed() bool {
	return p.deletedAt != nil
}

// IsConfigured reports whether both endpoint and key are present
func (p *Provider) IsConfigured() bool {
	return p.apiURL != "" && p.apiKey != ""
}

// SetID sets the provider ID (only for persistence layer use)
func (p *Provider) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("provider ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("provider ID cannot be zero")
	}
	p.id = id
	return nil
}

// Rename changes the provider name
func (p *Provider) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if p.name == name {
		return nil
	}
	p.name = name
	p.touch()
	return nil
}

// ChangeAPIKey replaces the API key.
func (p *Provider) ChangeAPIKey(apiKey string) error {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ErrAPIKeyRequired
	}
	if p.apiKey == apiKey {
		return nil
	}
	p.apiKey = apiKey
	p.touch()
	return nil
}

// ChangeAPIURL replaces the endpoint. The URL is only checked when the provider is activated.
func (p *Provider) ChangeAPIURL(apiURL string) error {
	apiURL = strings.TrimSpace(apiURL)
	if p.apiURL == apiURL {
		return nil
	}
	p.apiURL = apiURL
	p.touch()
	return nil
}

// ChangeHTTPMethod sets GET or POST
func (p *Provider) ChangeHTTPMethod(method string) error {
	m, err := normalizeHTTPMethod(method)
	if err != nil {
		return err
	}
	if p.httpMethod == m {
		return nil
	}
	p.httpMethod = m
	p.touch()
	return nil
}

// UpdateAPIConfig overlays the non-blank fields of patch
func (p *Provider) UpdateAPIConfig(patch APIConfig) {
	merged := p.apiConfig.Merge(patch)
	if merged == p.apiConfig {
		return
	}
	p.apiConfig = merged
	p.touch()
}

// Activate makes the provider usable. Both credentials must be present and
// the URL must be absolute http(s); otherwise status is left untouched.
func (p *Provider) Activate() error {
	if err := checkCredentials(p.apiURL, p.apiKey); err != nil {
		return err
	}
	if p.status == StatusActive {
		return nil
	}
	p.status = StatusActive
	p.touch()
	return nil
}

// Deactivate marks the provider inactive
func (p *Provider) Deactivate() {
	if p.status == StatusInactive {
		return
	}
	p.status = StatusInactive
	p.touch()
}

func (p *Provider) touch() {
	p.updatedAt = biztime.NowUTC()
}

// ValidateAPIURL checks that s is an absolute http or https URL with a host.
func ValidateAPIURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return ErrInvalidAPIURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}
	return nil
}

func checkCredentials(apiURL, apiKey string) error {
	if strings.TrimSpace(apiURL) == "" || strings.TrimSpace(apiKey) == "" {
		return ErrMissingCredentials
	}
	return ValidateAPIURL(apiURL)
}

func normalizeHTTPMethod(method string) (string, error) {
	m := strings.ToUpper(strings.TrimSpace(method))
	switch m {
	case "":
		return DefaultHTTPMethod, nil
	case "GET", "POST":
		return m, nil
	default:
		return "", ErrInvalidHTTPMethod
	}
}
