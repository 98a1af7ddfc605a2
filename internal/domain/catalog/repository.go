package catalog

import (
	"context"
	"time"
)

// CascadeRepository holds the catalog statements a provider lifecycle change runs.
// Callers are expected to invoke these inside one transaction.
type CascadeRepository interface {
	// ListServiceRefsByProvider loads the provider's services regardless of
	// deletion state, or only the trashed ones when onlyTrashed is set
	ListServiceRefsByProvider(ctx context.Context, providerID uint, onlyTrashed bool) ([]ServiceRef, error)

	// TrashServicesByProvider sets deleted_at on every service of the provider
	TrashServicesByProvider(ctx context.Context, providerID uint, at time.Time) (int64, error)

	// RestoreServicesByProvider clears deleted_at on the provider's trashed services
	RestoreServicesByProvider(ctx context.Context, providerID uint) (int64, error)

	// DeleteOrderArtifacts removes favorites, cancel requests, refill requests
	// and orders that reference the given services
	DeleteOrderArtifacts(ctx context.Context, serviceIDs []uint) error

	// DeleteServicesByProvider hard-deletes the provider's services
	DeleteServicesByProvider(ctx context.Context, providerID uint) (int64, error)

	// CountSurvivors counts live self-created services inside a container
	CountSurvivors(ctx context.Context, kind ContainerKind, id uint) (int64, error)

	// CountReferences counts every service row of any owner, trashed or not, inside a container
	CountReferences(ctx context.Context, kind ContainerKind, id uint) (int64, error)

	// TrashContainer sets deleted_at on a category or service type
	TrashContainer(ctx context.Context, kind ContainerKind, id uint, at time.Time) error

	// DeleteContainer removes a category or service type row
	DeleteContainer(ctx context.Context, kind ContainerKind, id uint) error

	// TouchContainer bumps updated_at only
	TouchContainer(ctx context.Context, kind ContainerKind, id uint, at time.Time) error

	// RestoreContainer clears deleted_at when it is still set
	RestoreContainer(ctx context.Context, kind ContainerKind, id uint, at time.Time) (bool, error)

	// ServiceStatsByProviders counts services per provider; trashed services
	// are included only when includeTrashed is set
	ServiceStatsByProviders(ctx context.Context, providerIDs []uint, includeTrashed bool) (map[uint]*ServiceStats, error)

	// OrderCountsByProviders counts orders per provider across all services
	OrderCountsByProviders(ctx context.Context, providerIDs []uint) (map[uint]int64, error)
}
