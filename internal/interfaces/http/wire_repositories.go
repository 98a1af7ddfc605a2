package http

import (
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/repository"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	providerRepo provider.Repository
	catalogRepo  catalog.CascadeRepository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		providerRepo: repository.NewProviderRepository(db, log),
		catalogRepo:  repository.NewCatalogCascadeRepository(db, log),
	}
}
