package usecases

import (
	"context"
	"time"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/biztime"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// DeleteProviderCommand selects the provider and how it is deleted.
type DeleteProviderCommand struct {
	ID   uint
	Mode provider.DeleteMode
}

// DeleteProviderUseCase trashes or permanently deletes a provider with its catalog subtree.
// Categories and service types are only removed when no live self-created service remains in them.
type DeleteProviderUseCase struct {
	repo    provider.Repository
	catalog catalog.CascadeRepository
	tx      Transactor
	logger  logger.Interface
}

// NewDeleteProviderUseCase creates a new DeleteProviderUseCase
func NewDeleteProviderUseCase(repo provider.Repository, catalogRepo catalog.CascadeRepository, tx Transactor, logger logger.Interface) *DeleteProviderUseCase {
	return &DeleteProviderUseCase{
		repo:    repo,
		catalog: catalogRepo,
		tx:      tx,
		logger:  logger,
	}
}

// Execute runs the whole cascade in one transaction; any failure rolls everything back.
func (uc *DeleteProviderUseCase) Execute(ctx context.Context, cmd DeleteProviderCommand) (*dto.DeleteProviderResult, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("Provider ID is required")
	}
	if cmd.Mode == "" {
		cmd.Mode = provider.DeleteModePermanent
	}
	if cmd.Mode != provider.DeleteModeTrash && cmd.Mode != provider.DeleteModePermanent {
		return nil, toAppError("delete provider", provider.ErrInvalidDeleteMode)
	}

	result := &dto.DeleteProviderResult{ProviderID: cmd.ID, Mode: cmd.Mode.String()}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			return err
		}
		if p == nil {
			return provider.ErrProviderNotFound
		}

		refs, err := uc.catalog.ListServiceRefsByProvider(ctx, p.ID(), false)
		if err != nil {
			return err
		}
		affected := catalog.Collect(refs)
		now := biztime.NowUTC()

		if cmd.Mode == provider.DeleteModeTrash {
			if err := uc.repo.MarkTrashed(ctx, p.ID(), now); err != nil {
				return err
			}
			if result.ServicesAffected, err = uc.catalog.TrashServicesByProvider(ctx, p.ID(), now); err != nil {
				return err
			}
		} else {
			if err := uc.catalog.DeleteOrderArtifacts(ctx, affected.ServiceIDs); err != nil {
				return err
			}
			if result.ServicesAffected, err = uc.catalog.DeleteServicesByProvider(ctx, p.ID()); err != nil {
				return err
			}
		}

		if result.Categories, err = uc.settleContainers(ctx, catalog.ContainerCategory, affected, cmd.Mode, now); err != nil {
			return err
		}
		if result.ServiceTypes, err = uc.settleContainers(ctx, catalog.ContainerServiceType, affected, cmd.Mode, now); err != nil {
			return err
		}

		if cmd.Mode == provider.DeleteModePermanent {
			return uc.repo.HardDelete(ctx, p.ID())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("provider delete rolled back", "id", cmd.ID, "mode", cmd.Mode, "error", err)
		return nil, toAppError("delete provider", err)
	}

	uc.logger.Infow("provider deleted",
		"id", cmd.ID,
		"mode", cmd.Mode,
		"services", result.ServicesAffected,
		"categories_removed", len(result.Categories.Removed),
		"service_types_removed", len(result.ServiceTypes.Removed),
	)
	return result, nil
}

// settleContainers removes each container with no live self-created service and
// touches the others. A permanent delete falls back to trashing a container that
// other rows still point at (another provider's services or trashed ones), so no
// service is left referencing a missing row.
func (uc *DeleteProviderUseCase) settleContainers(
	ctx context.Context,
	kind catalog.ContainerKind,
	affected catalog.Affected,
	mode provider.DeleteMode,
	now time.Time,
) (dto.ContainerOutcome, error) {
	outcome := dto.ContainerOutcome{Removed: []uint{}, Preserved: []uint{}}

	for _, id := range affected.Containers(kind) {
		survivors, err := uc.catalog.CountSurvivors(ctx, kind, id)
		if err != nil {
			return outcome, err
		}

		if survivors > 0 {
			if err := uc.catalog.TouchContainer(ctx, kind, id, now); err != nil {
				return outcome, err
			}
			outcome.Preserved = append(outcome.Preserved, id)
			continue
		}

		if err := uc.removeContainer(ctx, kind, id, mode, now); err != nil {
			return outcome, err
		}
		outcome.Removed = append(outcome.Removed, id)
	}
	return outcome, nil
}

func (uc *DeleteProviderUseCase) removeContainer(ctx context.Context, kind catalog.ContainerKind, id uint, mode provider.DeleteMode, now time.Time) error {
	if mode == provider.DeleteModeTrash {
		return uc.catalog.TrashContainer(ctx, kind, id, now)
	}

	refs, err := uc.catalog.CountReferences(ctx, kind, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		uc.logger.Warnw("container still referenced by other services, trashing instead of deleting",
			"kind", kind, "id", id, "services", refs)
		return uc.catalog.TrashContainer(ctx, kind, id, now)
	}
	return uc.catalog.DeleteContainer(ctx, kind, id)
}
