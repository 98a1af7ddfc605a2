package provider

import (
	"context"
	"time"
)

// Repository defines the interface for provider persistence operations.
// Every lookup sees trashed rows too; filtering on trash state is explicit.
type Repository interface {
	// Create inserts the provider and assigns its ID
	Create(ctx context.Context, p *Provider) error

	// Update persists name, credentials, method, status and API config
	Update(ctx context.Context, p *Provider) error

	// GetByID returns nil, nil when no row exists
	GetByID(ctx context.Context, id uint) (*Provider, error)

	// ExistsByName reports whether another provider (trashed included) uses name
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)

	// ExistsByAPIURL reports whether another provider (trashed included) uses apiURL
	ExistsByAPIURL(ctx context.Context, apiURL string, excludeID uint) (bool, error)

	// List returns providers matching the filter, newest first
	List(ctx context.Context, filter ListFilter) ([]*Provider, error)

	// MarkTrashed sets deleted_at on the provider row
	MarkTrashed(ctx context.Context, id uint, at time.Time) error

	// Restore clears deleted_at and touches updated_at
	Restore(ctx context.Context, id uint, at time.Time) error

	// HardDelete removes the provider row
	HardDelete(ctx context.Context, id uint) error
}
