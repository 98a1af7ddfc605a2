package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
)

func TestProviderMapper_ToModel(t *testing.T) {
	m := NewProviderMapper()

	t.Run("empty url maps to NULL", func(t *testing.T) {
		p, err := provider.NewProvider("Acme", "k", "", "", provider.APIConfig{})
		require.NoError(t, err)

		model, err := m.ToModel(p)
		require.NoError(t, err)
		assert.Nil(t, model.APIURL)
		assert.False(t, model.DeletedAt.Valid)
		assert.Contains(t, string(model.APIConfig), `"refill_status_action":"refill_status"`)
	})

	t.Run("nil entity", func(t *testing.T) {
		model, err := m.ToModel(nil)
		assert.NoError(t, err)
		assert.Nil(t, model)
	})
}

func TestProviderMapper_ToEntity(t *testing.T) {
	m := NewProviderMapper()
	now := time.Now().UTC()
	apiURL := "http://acme.test/api"

	t.Run("legacy rows get defaults for missing config keys", func(t *testing.T) {
		model := &models.ProviderModel{
			ID:         7,
			Name:       "Acme",
			APIKey:     "k",
			APIURL:     &apiURL,
			HTTPMethod: "GET",
			Status:     "active",
			APIConfig:  datatypes.JSON(`{"action_param":"act"}`),
			CreatedAt:  now,
			UpdatedAt:  now,
			DeletedAt:  gorm.DeletedAt{Time: now, Valid: true},
		}

		p, err := m.ToEntity(model)
		require.NoError(t, err)
		assert.Equal(t, uint(7), p.ID())
		assert.Equal(t, apiURL, p.APIURL())
		assert.Equal(t, "act", p.APIConfig().ActionParam)
		assert.Equal(t, provider.DefaultServicesAction, p.APIConfig().ServicesAction)
		require.NotNil(t, p.DeletedAt())
		assert.True(t, p.DeletedAt().Equal(now))
	})

	t.Run("corrupt config", func(t *testing.T) {
		_, err := m.ToEntity(&models.ProviderModel{ID: 1, Status: "inactive", APIConfig: datatypes.JSON(`{`)})
		assert.ErrorContains(t, err, "api_config")
	})

	t.Run("list keeps ids in errors", func(t *testing.T) {
		_, err := m.ToEntities([]*models.ProviderModel{
			{ID: 1, Name: "ok", Status: "inactive"},
			{ID: 9, Name: "bad", Status: "deleted"},
		})
		assert.ErrorContains(t, err, "failed to map item ID 9")
	})
}
