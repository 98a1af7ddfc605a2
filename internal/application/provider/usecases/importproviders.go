package usecases

import (
	"context"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// ImportProviderEntry is one provider of a bulk import.
type ImportProviderEntry struct {
	Create   CreateProviderCommand
	Activate bool
}

// ImportFailure records why an entry was skipped.
type ImportFailure struct {
	Name   string
	Reason string
}

// ImportProvidersResult lists what a bulk import did, entry by entry.
type ImportProvidersResult struct {
	Created []*dto.ProviderDTO
	Failed  []ImportFailure
}

// ImportProvidersUseCase creates providers one by one through the regular create
// and update paths. A failing entry does not stop the ones after it.
type ImportProvidersUseCase struct {
	create CreateProviderExecutor
	update UpdateProviderExecutor
	logger logger.Interface
}

// NewImportProvidersUseCase creates a new ImportProvidersUseCase
func NewImportProvidersUseCase(create CreateProviderExecutor, update UpdateProviderExecutor, logger logger.Interface) *ImportProvidersUseCase {
	return &ImportProvidersUseCase{
		create: create,
		update: update,
		logger: logger,
	}
}

// Execute imports entries in order.
func (uc *ImportProvidersUseCase) Execute(ctx context.Context, entries []ImportProviderEntry) (*ImportProvidersResult, error) {
	result := &ImportProvidersResult{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		created, err := uc.create.Execute(ctx, entry.Create)
		if err != nil {
			result.Failed = append(result.Failed, ImportFailure{Name: entry.Create.Name, Reason: failureReason(err)})
			uc.logger.Warnw("provider import entry skipped", "name", entry.Create.Name, "error", err)
			continue
		}

		if entry.Activate {
			active := "active"
			activated, err := uc.update.Execute(ctx, UpdateProviderCommand{ID: created.ID, Status: &active})
			if err != nil {
				result.Failed = append(result.Failed, ImportFailure{Name: created.Name, Reason: "created but not activated: " + failureReason(err)})
				uc.logger.Warnw("imported provider left inactive", "id", created.ID, "error", err)
				result.Created = append(result.Created, created)
				continue
			}
			created = activated
		}

		result.Created = append(result.Created, created)
	}

	uc.logger.Infow("provider import finished", "created", len(result.Created), "failed", len(result.Failed))
	return result, nil
}

func failureReason(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
