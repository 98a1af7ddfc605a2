package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/testdb"
	"github.com/smmpanel/panel/internal/shared/errors"
	"github.com/smmpanel/panel/internal/shared/logger"
)

func newTestProvider(t *testing.T, name, apiURL string) *provider.Provider {
	t.Helper()
	p, err := provider.NewProvider(name, "secret-"+name, apiURL, "", provider.APIConfig{})
	require.NoError(t, err)
	return p
}

func TestProviderRepository_CreateAndGet(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	ctx := context.Background()

	p := newTestProvider(t, "Acme", "http://acme.test/api")
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID())

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.Name())
	assert.Equal(t, "http://acme.test/api", found.APIURL())
	assert.Equal(t, provider.StatusInactive, found.Status())
	assert.True(t, found.IsCustom())
	assert.Equal(t, provider.DefaultAddOrderAction, found.APIConfig().AddOrderAction)

	missing, err := repo.GetByID(ctx, 9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProviderRepository_UniqueConstraints(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestProvider(t, "Acme", "")))
	require.NoError(t, repo.Create(ctx, newTestProvider(t, "Beta", "")), "two providers without url must coexist")

	err := repo.Create(ctx, newTestProvider(t, "Acme", "http://other.test"))
	assert.True(t, errors.IsConflictError(err))

	exists, err := repo.ExistsByName(ctx, "Acme", 0)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestProviderRepository_ExistsSeesTrash(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	ctx := context.Background()

	p := newTestProvider(t, "Acme", "http://acme.test/api")
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.MarkTrashed(ctx, p.ID(), time.Now().UTC()))

	exists, err := repo.ExistsByName(ctx, "Acme", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByAPIURL(ctx, "http://acme.test/api", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "Acme", p.ID())
	require.NoError(t, err)
	assert.False(t, exists, "own row is excluded")
}

func TestProviderRepository_Update(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	ctx := context.Background()

	p := newTestProvider(t, "Acme", "http://acme.test/api")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.Activate())
	require.NoError(t, p.ChangeHTTPMethod("GET"))
	p.UpdateAPIConfig(provider.APIConfig{BalanceAction: "get_balance"})
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, provider.StatusActive, found.Status())
	assert.Equal(t, "GET", found.HTTPMethod())
	assert.Equal(t, "get_balance", found.APIConfig().BalanceAction)

	ghost, err := provider.ReconstructProvider(404, "Ghost", "k", "", "POST", "inactive", true, 0, nil,
		provider.APIConfig{}, time.Now(), time.Now(), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Update(ctx, ghost), provider.ErrProviderNotFound)
}

func TestProviderRepository_List(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	ctx := context.Background()

	inactive := newTestProvider(t, "Inactive", "")
	require.NoError(t, repo.Create(ctx, inactive))

	active := newTestProvider(t, "Active", "http://active.test")
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, active.Activate())
	require.NoError(t, repo.Update(ctx, active))

	trashed := newTestProvider(t, "Trashed", "")
	require.NoError(t, repo.Create(ctx, trashed))
	require.NoError(t, repo.MarkTrashed(ctx, trashed.ID(), time.Now().UTC()))

	names := func(filter provider.ListFilter) []string {
		list, err := repo.List(ctx, filter)
		require.NoError(t, err)
		out := make([]string, 0, len(list))
		for _, p := range list {
			out = append(out, p.Name())
		}
		return out
	}

	assert.Equal(t, []string{"Active"}, names(provider.FilterActive))
	assert.Equal(t, []string{"Inactive"}, names(provider.FilterInactive))
	assert.Equal(t, []string{"Trashed"}, names(provider.FilterTrash))
	assert.Equal(t, []string{"Trashed", "Active", "Inactive"}, names(provider.FilterAll), "newest first")

	_, err := repo.List(ctx, provider.ListFilter("bogus"))
	assert.ErrorIs(t, err, provider.ErrInvalidFilter)
}

func TestProviderRepository_TrashRestoreDelete(t *testing.T) {
	db := testdb.New(t)
	repo := NewProviderRepository(db, logger.NewLogger())
	seed := testdb.NewSeeder(t, db)
	ctx := context.Background()

	p := newTestProvider(t, "Acme", "")
	require.NoError(t, repo.Create(ctx, p))

	assert.ErrorIs(t, repo.Restore(ctx, p.ID(), time.Now().UTC()), provider.ErrProviderNotTrashed)

	require.NoError(t, repo.MarkTrashed(ctx, p.ID(), time.Now().UTC()))
	assert.NotNil(t, seed.DeletedAt(&models.ProviderModel{}, p.ID()))

	require.NoError(t, repo.Restore(ctx, p.ID(), time.Now().UTC()))
	assert.Nil(t, seed.DeletedAt(&models.ProviderModel{}, p.ID()))

	require.NoError(t, repo.HardDelete(ctx, p.ID()))
	assert.False(t, seed.Exists(&models.ProviderModel{}, p.ID()))
	assert.ErrorIs(t, repo.HardDelete(ctx, p.ID()), provider.ErrProviderNotFound)
	assert.ErrorIs(t, repo.MarkTrashed(ctx, p.ID(), time.Now().UTC()), provider.ErrProviderNotFound)
}
