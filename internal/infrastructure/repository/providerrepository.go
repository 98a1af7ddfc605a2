package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/mappers"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/shared/db"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// ProviderRepositoryImpl implements the provider.Repository interface.
// All statements run on the transaction carried by ctx when there is one.
type ProviderRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProviderMapper
	logger logger.Interface
}

// NewProviderRepository creates a new provider repository instance.
func NewProviderRepository(db *gorm.DB, logger logger.Interface) provider.Repository {
	return &ProviderRepositoryImpl{
		db:     db,
		mapper: mappers.NewProviderMapper(),
		logger: logger,
	}
}

// Create creates a new provider in the database.
func (r *ProviderRepositoryImpl) Create(ctx context.Context, p *provider.Provider) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map provider entity to model", "error", err)
		return fmt.Errorf("failed to map provider entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("provider with this name or apiUrl already exists")
		}
		r.logger.Errorw("failed to create provider in database", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create provider: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set provider ID", "error", err)
		return fmt.Errorf("failed to set provider ID: %w", err)
	}

	r.logger.Infow("provider created successfully", "id", model.ID, "name", model.Name)
	return nil
}

// Update persists the mutable provider columns.
func (r *ProviderRepositoryImpl) Update(ctx context.Context, p *provider.Provider) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map provider entity to model", "error", err)
		return fmt.Errorf("failed to map provider entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Unscoped().Model(&models.ProviderModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":        model.Name,
			"api_key":     model.APIKey,
			"api_url":     model.APIURL,
			"http_method": model.HTTPMethod,
			"status":      model.Status,
			"api_config":  model.APIConfig,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("provider with this name or apiUrl already exists")
		}
		r.logger.Errorw("failed to update provider", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update provider: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return provider.ErrProviderNotFound
	}

	r.logger.Infow("provider updated successfully", "id", model.ID, "status", model.Status)
	return nil
}

// GetByID retrieves a provider by ID, including trashed rows.
func (r *ProviderRepositoryImpl) GetByID(ctx context.Context, id uint) (*provider.Provider, error) {
	var model models.ProviderModel

	if err := db.GetTxFromContext(ctx, r.db).Unscoped().First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get provider by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map provider model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map provider: %w", err)
	}

	return entity, nil
}

// ExistsByName checks if another provider uses the name.
func (r *ProviderRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error) {
	return r.exists(ctx, "name = ?", name, excludeID)
}

// ExistsByAPIURL checks if another provider uses the API URL.
func (r *ProviderRepositoryImpl) ExistsByAPIURL(ctx context.Context, apiURL string, excludeID uint) (bool, error) {
	return r.exists(ctx, "api_url = ?", apiURL, excludeID)
}

func (r *ProviderRepositoryImpl) exists(ctx context.Context, cond string, value string, excludeID uint) (bool, error) {
	query := db.GetTxFromContext(ctx, r.db).Unscoped().Model(&models.ProviderModel{}).Where(cond, value)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check provider existence", "condition", cond, "error", err)
		return false, fmt.Errorf("failed to check provider existence: %w", err)
	}
	return count > 0, nil
}

// List retrieves providers matching the filter, newest first.
func (r *ProviderRepositoryImpl) List(ctx context.Context, filter provider.ListFilter) ([]*provider.Provider, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProviderModel{})

	switch filter {
	case provider.FilterActive, provider.FilterWithServices:
		query = query.Where("status = ?", provider.StatusActive)
	case provider.FilterInactive:
		query = query.Where("status = ?", provider.StatusInactive)
	case provider.FilterTrash:
		query = query.Unscoped().Scopes(db.OnlyDeleted())
	case provider.FilterAll:
		query = query.Unscoped()
	default:
		return nil, fmt.Errorf("%w: %q", provider.ErrInvalidFilter, filter)
	}

	var modelList []*models.ProviderModel
	if err := query.Order("created_at DESC").Order("id DESC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list providers", "filter", filter, "error", err)
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		r.logger.Errorw("failed to map provider models to entities", "error", err)
		return nil, fmt.Errorf("failed to map providers: %w", err)
	}

	return entities, nil
}

// MarkTrashed moves the provider into trash.
func (r *ProviderRepositoryImpl) MarkTrashed(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Unscoped().Model(&models.ProviderModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"deleted_at": at,
			"updated_at": at,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to trash provider", "id", id, "error", result.Error)
		return fmt.Errorf("failed to trash provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return provider.ErrProviderNotFound
	}
	return nil
}

// Restore takes the provider out of trash.
func (r *ProviderRepositoryImpl) Restore(ctx context.Context, id uint, at time.Time) error {
	result := db.GetTxFromContext(ctx, r.db).Unscoped().Model(&models.ProviderModel{}).
		Where("id = ?", id).
		Scopes(db.OnlyDeleted()).
		UpdateColumns(map[string]any{
			"deleted_at": nil,
			"updated_at": at,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to restore provider", "id", id, "error", result.Error)
		return fmt.Errorf("failed to restore provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return provider.ErrProviderNotTrashed
	}
	return nil
}

// HardDelete removes the provider row.
func (r *ProviderRepositoryImpl) HardDelete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Unscoped().Delete(&models.ProviderModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete provider", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete provider: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return provider.ErrProviderNotFound
	}
	return nil
}
