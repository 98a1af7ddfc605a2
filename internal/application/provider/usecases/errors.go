package usecases

import (
	stderrors "errors"

	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/errors"
)

var validationErrors = []error{
	provider.ErrNameRequired,
	provider.ErrAPIKeyRequired,
	provider.ErrMissingCredentials,
	provider.ErrInvalidAPIURL,
	provider.ErrInvalidHTTPMethod,
	provider.ErrInvalidStatus,
	provider.ErrInvalidFilter,
	provider.ErrInvalidDeleteMode,
}

// toAppError maps domain errors onto the HTTP-facing taxonomy.
// Anything unrecognised is a persistence failure of the operation named by op.
func toAppError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.IsAppError(err) {
		return err
	}

	switch {
	case stderrors.Is(err, provider.ErrProviderNotFound):
		return errors.NewNotFoundError("Provider not found")
	case stderrors.Is(err, provider.ErrProviderNotTrashed):
		return errors.NewNotFoundError("Provider not found in trash")
	case stderrors.Is(err, provider.ErrNameExists), stderrors.Is(err, provider.ErrAPIURLExists):
		return errors.NewConflictError(err.Error())
	}

	for _, target := range validationErrors {
		if stderrors.Is(err, target) {
			return errors.NewValidationError(err.Error())
		}
	}

	return errors.NewPersistenceError("failed to "+op, err)
}
