package usecases

import (
	"context"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/biztime"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// RestoreProviderCommand selects the trashed provider to restore.
type RestoreProviderCommand struct {
	ID uint
}

// RestoreProviderUseCase takes a provider and its trashed subtree out of trash.
type RestoreProviderUseCase struct {
	repo    provider.Repository
	catalog catalog.CascadeRepository
	tx      Transactor
	logger  logger.Interface
}

// NewRestoreProviderUseCase creates a new RestoreProviderUseCase
func NewRestoreProviderUseCase(repo provider.Repository, catalogRepo catalog.CascadeRepository, tx Transactor, logger logger.Interface) *RestoreProviderUseCase {
	return &RestoreProviderUseCase{
		repo:    repo,
		catalog: catalogRepo,
		tx:      tx,
		logger:  logger,
	}
}

// Execute restores the provider, its trashed services and any container they sit in
// that is still trashed. Containers restored independently are left as they are.
func (uc *RestoreProviderUseCase) Execute(ctx context.Context, cmd RestoreProviderCommand) (*dto.RestoreProviderResult, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("Provider ID is required")
	}

	result := &dto.RestoreProviderResult{
		ProviderID:           cmd.ID,
		RestoredCategories:   []uint{},
		RestoredServiceTypes: []uint{},
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return provider.ErrProviderNotFound
		}
		if !p.IsTrashed() {
			return provider.ErrProviderNotTrashed
		}

		refs, err := uc.catalog.ListServiceRefsByProvider(ctx, p.ID(), true)
		if err != nil {
			return err
		}
		affected := catalog.Collect(refs)
		now := biztime.NowUTC()

		if err := uc.repo.Restore(ctx, p.ID(), now); err != nil {
			return err
		}
		if result.ServicesRestored, err = uc.catalog.RestoreServicesByProvider(ctx, p.ID()); err != nil {
			return err
		}

		for _, kind := range []catalog.ContainerKind{catalog.ContainerCategory, catalog.ContainerServiceType} {
			for _, id := range affected.Containers(kind) {
				restored, err := uc.catalog.RestoreContainer(ctx, kind, id, now)
				if err != nil {
					return err
				}
				if !restored {
					continue
				}
				if kind == catalog.ContainerCategory {
					result.RestoredCategories = append(result.RestoredCategories, id)
				} else {
					result.RestoredServiceTypes = append(result.RestoredServiceTypes, id)
				}
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("provider restore rolled back", "id", cmd.ID, "error", err)
		return nil, toAppError("restore provider", err)
	}

	uc.logger.Infow("provider restored",
		"id", cmd.ID,
		"services", result.ServicesRestored,
		"categories", len(result.RestoredCategories),
		"service_types", len(result.RestoredServiceTypes),
	)
	return result, nil
}
