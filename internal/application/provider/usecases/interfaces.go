package usecases

import (
	"context"

	"github.com/smmpanel/panel/internal/application/provider/dto"
)

// Transactor runs fn inside one database transaction carried by the context it receives.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ListProvidersExecutor interface {
	Execute(ctx context.Context, query ListProvidersQuery) (*dto.ListProvidersResult, error)
}

type CreateProviderExecutor interface {
	Execute(ctx context.Context, cmd CreateProviderCommand) (*dto.ProviderDTO, error)
}

type UpdateProviderExecutor interface {
	Execute(ctx context.Context, cmd UpdateProviderCommand) (*dto.ProviderDTO, error)
}

type DeleteProviderExecutor interface {
	Execute(ctx context.Context, cmd DeleteProviderCommand) (*dto.DeleteProviderResult, error)
}

type RestoreProviderExecutor interface {
	Execute(ctx context.Context, cmd RestoreProviderCommand) (*dto.RestoreProviderResult, error)
}
