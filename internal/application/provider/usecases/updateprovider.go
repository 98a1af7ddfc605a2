package usecases

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// UpdateProviderCommand is a partial update; nil fields are left untouched.
type UpdateProviderCommand struct {
	ID         uint
	Status     *string
	Name       *string
	APIKey     *string
	APIURL     *string
	HTTPMethod *string
	APIConfig  *provider.APIConfig
}

// UpdateProviderUseCase applies partial updates, including activation and deactivation
type UpdateProviderUseCase struct {
	repo      provider.Repository
	tx        Transactor
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

// NewUpdateProviderUseCase creates a new UpdateProviderUseCase
func NewUpdateProviderUseCase(repo provider.Repository, tx Transactor, logger logger.Interface) *UpdateProviderUseCase {
	return &UpdateProviderUseCase{
		repo:      repo,
		tx:        tx,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Execute validates the whole patch against the stored row before writing anything.
func (uc *UpdateProviderUseCase) Execute(ctx context.Context, cmd UpdateProviderCommand) (*dto.ProviderDTO, error) {
	if cmd.ID == 0 {
		return nil, errors.NewValidationError("Provider ID is required")
	}

	var target provider.Status
	if cmd.Status != nil {
		target = provider.Status(*cmd.Status)
		if !target.IsValid() {
			return nil, toAppError("update provider", provider.ErrInvalidStatus)
		}
	}

	var updated *provider.Provider
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, cmd.ID)
		if err != nil {
			uc.logger.Errorw("failed to get provider", "id", cmd.ID, "error", err)
			return err
		}
		if p == nil {
			return provider.ErrProviderNotFound
		}

		if target == provider.StatusInactive {
			p.Deactivate()
		}
		if err := uc.applyFields(ctx, p, cmd); err != nil {
			return err
		}
		if target == provider.StatusActive {
			if err := p.Activate(); err != nil {
				uc.logger.Warnw("provider activation rejected", "id", p.ID(), "reason", err)
				return err
			}
		}

		if err := uc.repo.Update(ctx, p); err != nil {
			uc.logger.Errorw("failed to save provider", "id", p.ID(), "error", err)
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, toAppError("update provider", err)
	}

	uc.logger.Infow("provider updated", "id", updated.ID(), "status", updated.Status())
	return dto.ToProviderDTO(updated, nil), nil
}

// applyFields applies the credential and shape fields. Activation is checked
// afterwards against the patched pair.
func (uc *UpdateProviderUseCase) applyFields(ctx context.Context, p *provider.Provider, cmd UpdateProviderCommand) error {
	if cmd.Name != nil {
		name := sanitizeName(uc.sanitizer, *cmd.Name)
		if err := p.Rename(name); err != nil {
			return err
		}
		exists, err := uc.repo.ExistsByName(ctx, p.Name(), p.ID())
		if err != nil {
			return err
		}
		if exists {
			return provider.ErrNameExists
		}
	}

	if cmd.APIKey != nil {
		if err := p.ChangeAPIKey(*cmd.APIKey); err != nil {
			return err
		}
	}

	if cmd.APIURL != nil {
		if err := p.ChangeAPIURL(*cmd.APIURL); err != nil {
			return err
		}
		if p.APIURL() != "" {
			exists, err := uc.repo.ExistsByAPIURL(ctx, p.APIURL(), p.ID())
			if err != nil {
				return err
			}
			if exists {
				return provider.ErrAPIURLExists
			}
		}
	}

	if cmd.HTTPMethod != nil {
		if err := p.ChangeHTTPMethod(*cmd.HTTPMethod); err != nil {
			return err
		}
	}

	if cmd.APIConfig != nil {
		p.UpdateAPIConfig(*cmd.APIConfig)
	}
	return nil
}
