package http

import (
	"github.com/smmpanel/panel/internal/application/provider/usecases"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	listProvidersUC   *usecases.ListProvidersUseCase
	createProviderUC  *usecases.CreateProviderUseCase
	updateProviderUC  *usecases.UpdateProviderUseCase
	deleteProviderUC  *usecases.DeleteProviderUseCase
	restoreProviderUC *usecases.RestoreProviderUseCase
}

func newUseCases(repos *repositories, tx usecases.Transactor, log logger.Interface) *allUseCases {
	return &allUseCases{
		listProvidersUC:   usecases.NewListProvidersUseCase(repos.providerRepo, repos.catalogRepo, log),
		createProviderUC:  usecases.NewCreateProviderUseCase(repos.providerRepo, log),
		updateProviderUC:  usecases.NewUpdateProviderUseCase(repos.providerRepo, tx, log),
		deleteProviderUC:  usecases.NewDeleteProviderUseCase(repos.providerRepo, repos.catalogRepo, tx, log),
		restoreProviderUC: usecases.NewRestoreProviderUseCase(repos.providerRepo, repos.catalogRepo, tx, log),
	}
}
