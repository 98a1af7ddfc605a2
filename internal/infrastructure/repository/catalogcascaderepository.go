package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/shared/constants"
	"github.com/smmpanel/panel/internal/shared/db"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// CatalogCascadeRepositoryImpl implements catalog.CascadeRepository.
// Every statement sees trashed rows unless it filters on deleted_at itself.
type CatalogCascadeRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCatalogCascadeRepository creates a new catalog cascade repository instance.
func NewCatalogCascadeRepository(db *gorm.DB, logger logger.Interface) catalog.CascadeRepository {
	return &CatalogCascadeRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogCascadeRepositoryImpl) tx(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).Unscoped()
}

func containerModel(kind catalog.ContainerKind) any {
	if kind == catalog.ContainerServiceType {
		return &models.ServiceTypeModel{}
	}
	return &models.CategoryModel{}
}

func containerColumn(kind catalog.ContainerKind) string {
	if kind == catalog.ContainerServiceType {
		return "service_type_id"
	}
	return "category_id"
}

// ListServiceRefsByProvider loads the ids the cascade fans out from.
func (r *CatalogCascadeRepositoryImpl) ListServiceRefsByProvider(ctx context.Context, providerID uint, onlyTrashed bool) ([]catalog.ServiceRef, error) {
	query := r.tx(ctx).Model(&models.ServiceModel{}).
		Select("id", "category_id", "service_type_id").
		Where("provider_id = ?", providerID)
	if onlyTrashed {
		query = query.Scopes(db.OnlyDeleted())
	}

	var rows []models.ServiceModel
	if err := query.Order("id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list provider services", "provider_id", providerID, "error", err)
		return nil, fmt.Errorf("failed to list provider services: %w", err)
	}

	refs := make([]catalog.ServiceRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, catalog.ServiceRef{
			ID:            row.ID,
			CategoryID:    row.CategoryID,
			ServiceTypeID: row.ServiceTypeID,
		})
	}
	return refs, nil
}

// TrashServicesByProvider soft deletes every service of the provider, already trashed ones included.
func (r *CatalogCascadeRepositoryImpl) TrashServicesByProvider(ctx context.Context, providerID uint, at time.Time) (int64, error) {
	result := r.tx(ctx).Model(&models.ServiceModel{}).
		Where("provider_id = ?", providerID).
		UpdateColumn("deleted_at", at)
	if result.Error != nil {
		r.logger.Errorw("failed to trash provider services", "provider_id", providerID, "error", result.Error)
		return 0, fmt.Errorf("failed to trash provider services: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// RestoreServicesByProvider clears deleted_at on the provider's trashed services.
func (r *CatalogCascadeRepositoryImpl) RestoreServicesByProvider(ctx context.Context, providerID uint) (int64, error) {
	result := r.tx(ctx).Model(&models.ServiceModel{}).
		Where("provider_id = ?", providerID).
		Scopes(db.OnlyDeleted()).
		UpdateColumn("deleted_at", nil)
	if result.Error != nil {
		r.logger.Errorw("failed to restore provider services", "provider_id", providerID, "error", result.Error)
		return 0, fmt.Errorf("failed to restore provider services: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOrderArtifacts removes rows that reference the services through orders, then the orders.
func (r *CatalogCascadeRepositoryImpl) DeleteOrderArtifacts(ctx context.Context, serviceIDs []uint) error {
	if len(serviceIDs) == 0 {
		return nil
	}

	orderIDs := func() *gorm.DB {
		return r.tx(ctx).Model(&models.OrderModel{}).Select("id").Where("service_id IN ?", serviceIDs)
	}

	steps := []struct {
		table string
		run   func() *gorm.DB
	}{
		{constants.TableFavoriteService, func() *gorm.DB {
			return r.tx(ctx).Where("service_id IN ?", serviceIDs).Delete(&models.FavoriteServiceModel{})
		}},
		{constants.TableCancelRequests, func() *gorm.DB {
			return r.tx(ctx).Where("order_id IN (?)", orderIDs()).Delete(&models.CancelRequestModel{})
		}},
		{constants.TableRefillRequests, func() *gorm.DB {
			return r.tx(ctx).Where("order_id IN (?)", orderIDs()).Delete(&models.RefillRequestModel{})
		}},
		{constants.TableOrders, func() *gorm.DB {
			return r.tx(ctx).Where("service_id IN ?", serviceIDs).Delete(&models.OrderModel{})
		}},
	}

	for _, step := range steps {
		result := step.run()
		if result.Error != nil {
			r.logger.Errorw("failed to delete order artifacts", "table", step.table, "services", len(serviceIDs), "error", result.Error)
			return fmt.Errorf("failed to delete %s: %w", step.table, result.Error)
		}
		r.logger.Debugw("order artifacts deleted", "table", step.table, "rows", result.RowsAffected)
	}
	return nil
}

// DeleteServicesByProvider hard deletes the provider's services.
func (r *CatalogCascadeRepositoryImpl) DeleteServicesByProvider(ctx context.Context, providerID uint) (int64, error) {
	result := r.tx(ctx).Where("provider_id = ?", providerID).Delete(&models.ServiceModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete provider services", "provider_id", providerID, "error", result.Error)
		return 0, fmt.Errorf("failed to delete provider services: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// CountSurvivors counts live self-created services in the container.
func (r *CatalogCascadeRepositoryImpl) CountSurvivors(ctx context.Context, kind catalog.ContainerKind, id uint) (int64, error) {
	var count int64
	err := r.tx(ctx).Model(&models.ServiceModel{}).
		Scopes(db.NotDeleted()).
		Where(containerColumn(kind)+" = ?", id).
		Where("provider_id IS NULL").
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count surviving services", "kind", kind, "id", id, "error", err)
		return 0, fmt.Errorf("failed to count surviving services in %s %d: %w", kind, id, err)
	}
	return count, nil
}

// CountReferences counts every service row in the container, whoever owns it.
func (r *CatalogCascadeRepositoryImpl) CountReferences(ctx context.Context, kind catalog.ContainerKind, id uint) (int64, error) {
	var count int64
	err := r.tx(ctx).Model(&models.ServiceModel{}).
		Where(containerColumn(kind)+" = ?", id).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to count container references", "kind", kind, "id", id, "error", err)
		return 0, fmt.Errorf("failed to count services in %s %d: %w", kind, id, err)
	}
	return count, nil
}

// TrashContainer soft deletes a category or service type.
func (r *CatalogCascadeRepositoryImpl) TrashContainer(ctx context.Context, kind catalog.ContainerKind, id uint, at time.Time) error {
	err := r.tx(ctx).Model(containerModel(kind)).
		Where("id = ?", id).
		UpdateColumn("deleted_at", at).Error
	if err != nil {
		r.logger.Errorw("failed to trash container", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("failed to trash %s %d: %w", kind, id, err)
	}
	return nil
}

// DeleteContainer hard deletes a category or service type.
func (r *CatalogCascadeRepositoryImpl) DeleteContainer(ctx context.Context, kind catalog.ContainerKind, id uint) error {
	if err := r.tx(ctx).Delete(containerModel(kind), id).Error; err != nil {
		r.logger.Errorw("failed to delete container", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("failed to delete %s %d: %w", kind, id, err)
	}
	return nil
}

// TouchContainer bumps updated_at so the change shows up in the catalog.
func (r *CatalogCascadeRepositoryImpl) TouchContainer(ctx context.Context, kind catalog.ContainerKind, id uint, at time.Time) error {
	err := r.tx(ctx).Model(containerModel(kind)).
		Where("id = ?", id).
		UpdateColumn("updated_at", at).Error
	if err != nil {
		r.logger.Errorw("failed to touch container", "kind", kind, "id", id, "error", err)
		return fmt.Errorf("failed to touch %s %d: %w", kind, id, err)
	}
	return nil
}

// RestoreContainer clears deleted_at; containers restored by someone else are left alone.
func (r *CatalogCascadeRepositoryImpl) RestoreContainer(ctx context.Context, kind catalog.ContainerKind, id uint, at time.Time) (bool, error) {
	result := r.tx(ctx).Model(containerModel(kind)).
		Where("id = ?", id).
		Scopes(db.OnlyDeleted()).
		UpdateColumns(map[string]any{
			"deleted_at": nil,
			"updated_at": at,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to restore container", "kind", kind, "id", id, "error", result.Error)
		return false, fmt.Errorf("failed to restore %s %d: %w", kind, id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

type providerStatusCount struct {
	ProviderID uint
	Status     string
	Count      int64
}

// ServiceStatsByProviders counts services per provider and status.
func (r *CatalogCascadeRepositoryImpl) ServiceStatsByProviders(ctx context.Context, providerIDs []uint, includeTrashed bool) (map[uint]*catalog.ServiceStats, error) {
	stats := make(map[uint]*catalog.ServiceStats, len(providerIDs))
	if len(providerIDs) == 0 {
		return stats, nil
	}

	query := r.tx(ctx).Model(&models.ServiceModel{}).
		Select("provider_id, status, COUNT(*) AS count").
		Where("provider_id IN ?", providerIDs)
	if !includeTrashed {
		query = query.Scopes(db.NotDeleted())
	}

	var rows []providerStatusCount
	if err := query.Group("provider_id, status").Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count provider services", "providers", len(providerIDs), "error", err)
		return nil, fmt.Errorf("failed to count provider services: %w", err)
	}

	for _, row := range rows {
		s, ok := stats[row.ProviderID]
		if !ok {
			s = &catalog.ServiceStats{}
			stats[row.ProviderID] = s
		}
		s.Total += row.Count
		switch row.Status {
		case "active":
			s.Active += row.Count
		case "inactive":
			s.Inactive += row.Count
		}
	}
	return stats, nil
}

type providerCount struct {
	ProviderID uint
	Count      int64
}

// OrderCountsByProviders counts orders of every service of each provider.
func (r *CatalogCascadeRepositoryImpl) OrderCountsByProviders(ctx context.Context, providerIDs []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(providerIDs))
	if len(providerIDs) == 0 {
		return counts, nil
	}

	var rows []providerCount
	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableOrders+" AS o").
		Select("s.provider_id AS provider_id, COUNT(*) AS count").
		Joins("JOIN "+constants.TableServices+" AS s ON s.id = o.service_id").
		Where("s.provider_id IN ?", providerIDs).
		Group("s.provider_id").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count provider orders", "providers", len(providerIDs), "error", err)
		return nil, fmt.Errorf("failed to count provider orders: %w", err)
	}

	for _, row := range rows {
		counts[row.ProviderID] = row.Count
	}
	return counts, nil
}
