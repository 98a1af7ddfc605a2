package usecases

import (
	"context"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// ListProvidersQuery carries the raw filter value from the request.
type ListProvidersQuery struct {
	Filter string
}

// ListProvidersUseCase lists providers with their service and order counters.
// It never writes.
type ListProvidersUseCase struct {
	repo    provider.Repository
	catalog catalog.CascadeRepository
	logger  logger.Interface
}

// NewListProvidersUseCase creates a new ListProvidersUseCase
func NewListProvidersUseCase(repo provider.Repository, catalogRepo catalog.CascadeRepository, logger logger.Interface) *ListProvidersUseCase {
	return &ListProvidersUseCase{
		repo:    repo,
		catalog: catalogRepo,
		logger:  logger,
	}
}

// Execute lists providers matching the filter, newest first
func (uc *ListProvidersUseCase) Execute(ctx context.Context, query ListProvidersQuery) (*dto.ListProvidersResult, error) {
	filter, err := provider.ParseListFilter(query.Filter)
	if err != nil {
		return nil, toAppError("list providers", err)
	}

	providers, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list providers", "filter", filter, "error", err)
		return nil, toAppError("list providers", err)
	}

	stats, err := uc.collectStats(ctx, providers)
	if err != nil {
		return nil, toAppError("count provider services", err)
	}

	result := &dto.ListProvidersResult{Providers: make([]*dto.ProviderDTO, 0, len(providers))}
	for _, p := range providers {
		s := stats[p.ID()]
		if filter == provider.FilterWithServices && s.Total == 0 {
			continue
		}

		result.Providers = append(result.Providers, dto.ToProviderDTO(p, s))
		if p.IsConfigured() {
			result.Configured++
		}
		if p.IsCustom() {
			result.Custom++
		}
	}
	result.Total = len(result.Providers)

	return result, nil
}

// collectStats returns counters for every provider. Trashed providers count
// their trashed services too, since those were trashed with them.
func (uc *ListProvidersUseCase) collectStats(ctx context.Context, providers []*provider.Provider) (map[uint]*catalog.ServiceStats, error) {
	var liveIDs, trashedIDs, allIDs []uint
	for _, p := range providers {
		allIDs = append(allIDs, p.ID())
		if p.IsTrashed() {
			trashedIDs = append(trashedIDs, p.ID())
		} else {
			liveIDs = append(liveIDs, p.ID())
		}
	}

	stats := make(map[uint]*catalog.ServiceStats, len(providers))
	for _, group := range []struct {
		ids            []uint
		includeTrashed bool
	}{
		{liveIDs, false},
		{trashedIDs, true},
	} {
		counts, err := uc.catalog.ServiceStatsByProviders(ctx, group.ids, group.includeTrashed)
		if err != nil {
			uc.logger.Errorw("failed to count provider services", "providers", len(group.ids), "error", err)
			return nil, err
		}
		for id, s := range counts {
			stats[id] = s
		}
	}

	orders, err := uc.catalog.OrderCountsByProviders(ctx, allIDs)
	if err != nil {
		uc.logger.Errorw("failed to count provider orders", "providers", len(allIDs), "error", err)
		return nil, err
	}

	for _, id := range allIDs {
		s, ok := stats[id]
		if !ok {
			s = &catalog.ServiceStats{}
			stats[id] = s
		}
		s.Orders = orders[id]
	}
	return stats, nil
}
