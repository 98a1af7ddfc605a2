package usecases

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// CreateProviderCommand carries the fields of a new provider.
type CreateProviderCommand struct {
	Name       string
	APIKey     string
	APIURL     string
	HTTPMethod string
	APIConfig  provider.APIConfig
}

// CreateProviderUseCase registers a new, inactive custom provider
type CreateProviderUseCase struct {
	repo      provider.Repository
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

// NewCreateProviderUseCase creates a new CreateProviderUseCase
func NewCreateProviderUseCase(repo provider.Repository, logger logger.Interface) *CreateProviderUseCase {
	return &CreateProviderUseCase{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

// Execute creates the provider. No activation is attempted.
func (uc *CreateProviderUseCase) Execute(ctx context.Context, cmd CreateProviderCommand) (*dto.ProviderDTO, error) {
	p, err := provider.NewProvider(sanitizeName(uc.sanitizer, cmd.Name), cmd.APIKey, cmd.APIURL, cmd.HTTPMethod, cmd.APIConfig)
	if err != nil {
		return nil, toAppError("create provider", err)
	}

	exists, err := uc.repo.ExistsByName(ctx, p.Name(), 0)
	if err != nil {
		uc.logger.Errorw("failed to check provider name existence", "name", p.Name(), "error", err)
		return nil, toAppError("create provider", err)
	}
	if exists {
		return nil, toAppError("create provider", provider.ErrNameExists)
	}

	if p.APIURL() != "" {
		exists, err = uc.repo.ExistsByAPIURL(ctx, p.APIURL(), 0)
		if err != nil {
			uc.logger.Errorw("failed to check provider apiUrl existence", "api_url", p.APIURL(), "error", err)
			return nil, toAppError("create provider", err)
		}
		if exists {
			return nil, toAppError("create provider", provider.ErrAPIURLExists)
		}
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to save provider", "name", p.Name(), "error", err)
		return nil, toAppError("create provider", err)
	}

	uc.logger.Infow("provider created", "id", p.ID(), "name", p.Name())
	return dto.ToProviderDTO(p, nil), nil
}

// sanitizeName strips markup from a provider name while keeping plain text such as "&" intact.
func sanitizeName(policy *bluemonday.Policy, name string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(name)))
}
