package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/shared/mapper"
)

// ProviderMapper handles the conversion between domain entities and persistence models.
type ProviderMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.ProviderModel) (*provider.Provider, error)

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *provider.Provider) (*models.ProviderModel, error)

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.ProviderModel) ([]*provider.Provider, error)
}

// ProviderMapperImpl is the concrete implementation of ProviderMapper.
type ProviderMapperImpl struct{}

// NewProviderMapper creates a new provider mapper.
func NewProviderMapper() ProviderMapper {
	return &ProviderMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ProviderMapperImpl) ToEntity(model *models.ProviderModel) (*provider.Provider, error) {
	if model == nil {
		return nil, nil
	}

	var column models.ProviderAPIConfigColumn
	if len(model.APIConfig) > 0 {
		if err := json.Unmarshal(model.APIConfig, &column); err != nil {
			return nil, fmt.Errorf("failed to unmarshal api_config: %w", err)
		}
	}

	var apiURL string
	if model.APIURL != nil {
		apiURL = *model.APIURL
	}

	var deletedAt *time.Time
	if model.DeletedAt.Valid {
		t := model.DeletedAt.Time
		deletedAt = &t
	}

	entity, err := provider.ReconstructProvider(
		model.ID,
		model.Name,
		model.APIKey,
		apiURL,
		model.HTTPMethod,
		model.Status,
		model.IsCustom,
		model.CurrentBalance,
		model.BalanceLastUpdated,
		apiConfigFromColumn(column),
		model.CreatedAt,
		model.UpdatedAt,
		deletedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct provider entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *ProviderMapperImpl) ToModel(entity *provider.Provider) (*models.ProviderModel, error) {
	if entity == nil {
		return nil, nil
	}

	configJSON, err := json.Marshal(apiConfigToColumn(entity.APIConfig()))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal api_config: %w", err)
	}

	var apiURL *string
	if u := entity.APIURL(); u != "" {
		apiURL = &u
	}

	var deletedAt gorm.DeletedAt
	if entity.DeletedAt() != nil {
		deletedAt = gorm.DeletedAt{Time: *entity.DeletedAt(), Valid: true}
	}

	return &models.ProviderModel{
		ID:                 entity.ID(),
		Name:               entity.Name(),
		APIKey:             entity.APIKey(),
		APIURL:             apiURL,
		HTTPMethod:         entity.HTTPMethod(),
		Status:             entity.Status().String(),
		IsCustom:           entity.IsCustom(),
		CurrentBalance:     entity.CurrentBalance(),
		BalanceLastUpdated: entity.BalanceLastUpdated(),
		APIConfig:          datatypes.JSON(configJSON),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
		DeletedAt:          deletedAt,
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ProviderMapperImpl) ToEntities(modelList []*models.ProviderModel) ([]*provider.Provider, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ProviderModel) uint { return model.ID })
}

func apiConfigFromColumn(c models.ProviderAPIConfigColumn) provider.APIConfig {
	return provider.APIConfig{
		APIKeyParam:        c.APIKeyParam,
		ActionParam:        c.ActionParam,
		ServicesAction:     c.ServicesAction,
		AddOrderAction:     c.AddOrderAction,
		OrderStatusAction:  c.OrderStatusAction,
		BalanceAction:      c.BalanceAction,
		RefillAction:       c.RefillAction,
		RefillStatusAction: c.RefillStatusAction,
		CancelAction:       c.CancelAction,
		ServiceIDParam:     c.ServiceIDParam,
		LinkParam:          c.LinkParam,
		QuantityParam:      c.QuantityParam,
		OrderIDParam:       c.OrderIDParam,
		OrdersParam:        c.OrdersParam,
		ResponseFormat:     c.ResponseFormat,
	}
}

func apiConfigToColumn(c provider.APIConfig) models.ProviderAPIConfigColumn {
	return models.ProviderAPIConfigColumn{
		APIKeyParam:        c.APIKeyParam,
		ActionParam:        c.ActionParam,
		ServicesAction:     c.ServicesAction,
		AddOrderAction:     c.AddOrderAction,
		OrderStatusAction:  c.OrderStatusAction,
		BalanceAction:      c.BalanceAction,
		RefillAction:       c.RefillAction,
		RefillStatusAction: c.RefillStatusAction,
		CancelAction:       c.CancelAction,
		ServiceIDParam:     c.ServiceIDParam,
		LinkParam:          c.LinkParam,
		QuantityParam:      c.QuantityParam,
		OrderIDParam:       c.OrderIDParam,
		OrdersParam:        c.OrdersParam,
		ResponseFormat:     c.ResponseFormat,
	}
}
