package provider

import (
	"context"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/application/provider/usecases"
)

// Use case interfaces for Handler

type listProvidersUseCase interface {
	Execute(ctx context.Context, query usecases.ListProvidersQuery) (*dto.ListProvidersResult, error)
}

type createProviderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateProviderCommand) (*dto.ProviderDTO, error)
}

type updateProviderUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateProviderCommand) (*dto.ProviderDTO, error)
}

type deleteProviderUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeleteProviderCommand) (*dto.DeleteProviderResult, error)
}

type restoreProviderUseCase interface {
	Execute(ctx context.Context, cmd usecases.RestoreProviderCommand) (*dto.RestoreProviderResult, error)
}
