package http

import (
	"github.com/smmpanel/panel/internal/interfaces/http/handlers/admin/provider"
	"github.com/smmpanel/panel/internal/interfaces/http/handlers/health"
	"github.com/smmpanel/panel/internal/shared/logger"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	providerHandler *provider.Handler
	healthHandler   *health.Handler
}

func newHandlers(ucs *allUseCases, db health.Pinger, log logger.Interface) *allHandlers {
	return &allHandlers{
		providerHandler: provider.NewHandler(
			ucs.listProvidersUC,
			ucs.createProviderUC,
			ucs.updateProviderUC,
			ucs.deleteProviderUC,
			ucs.restoreProviderUC,
			log,
		),
		healthHandler: health.NewHandler(db, log),
	}
}
