package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/smmpanel/panel/internal/application/provider/dto"
	"github.com/smmpanel/panel/internal/application/provider/testutil"
	"github.com/smmpanel/panel/internal/domain/catalog"
	"github.com/smmpanel/panel/internal/domain/provider"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/models"
	"github.com/smmpanel/panel/internal/infrastructure/persistence/testdb"
	"github.com/smmpanel/panel/internal/infrastructure/repository"
	shareddb "github.com/smmpanel/panel/internal/shared/db"
	"github.com/smmpanel/panel/internal/shared/errors"
)

type fixture struct {
	db        *gorm.DB
	seed      *testdb.Seeder
	providers provider.Repository
	catalog   catalog.CascadeRepository
	tx        Transactor

	list    *ListProvidersUseCase
	create  *CreateProviderUseCase
	update  *UpdateProviderUseCase
	del     *DeleteProviderUseCase
	restore *RestoreProviderUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testdb.New(t)
	log := testutil.NewMockLogger()
	providers := repository.NewProviderRepository(db, log)
	cascade := repository.NewCatalogCascadeRepository(db, log)
	tx := shareddb.NewTransactionManager(db)

	return &fixture{
		db:        db,
		seed:      testdb.NewSeeder(t, db),
		providers: providers,
		catalog:   cascade,
		tx:        tx,
		list:      NewListProvidersUseCase(providers, cascade, log),
		create:    NewCreateProviderUseCase(providers, log),
		update:    NewUpdateProviderUseCase(providers, tx, log),
		del:       NewDeleteProviderUseCase(providers, cascade, tx, log),
		restore:   NewRestoreProviderUseCase(providers, cascade, tx, log),
	}
}

func (f *fixture) mustCreate(t *testing.T, name, apiURL string) *dto.ProviderDTO {
	t.Helper()
	p, err := f.create.Execute(context.Background(), CreateProviderCommand{Name: name, APIKey: "key-" + name, APIURL: apiURL})
	require.NoError(t, err)
	return p
}

func (f *fixture) providerRow(t *testing.T, id uint) models.ProviderModel {
	t.Helper()
	var row models.ProviderModel
	require.NoError(t, f.db.Unscoped().First(&row, id).Error)
	return row
}

func strPtr(s string) *string { return &s }

func TestAcmeScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("self-created survivor keeps the category", func(t *testing.T) {
		f := newFixture(t)
		acme := f.mustCreate(t, "Acme", "http://acme.test/api")
		c1 := f.seed.Category("C1")
		linked := f.seed.Service("linked", testdb.Ptr(acme.ID), c1.ID, nil)
		self := f.seed.Service("self", nil, c1.ID, nil)

		result, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModeTrash})
		require.NoError(t, err)

		assert.NotNil(t, f.seed.DeletedAt(&models.ProviderModel{}, acme.ID))
		assert.NotNil(t, f.seed.DeletedAt(&models.ServiceModel{}, linked.ID))
		assert.Nil(t, f.seed.DeletedAt(&models.ServiceModel{}, self.ID))
		assert.Nil(t, f.seed.DeletedAt(&models.CategoryModel{}, c1.ID))
		assert.Equal(t, []uint{c1.ID}, result.Categories.Preserved)
		assert.Empty(t, result.Categories.Removed)
	})

	t.Run("no survivor trashes the category", func(t *testing.T) {
		f := newFixture(t)
		acme := f.mustCreate(t, "Acme", "http://acme.test/api")
		c1 := f.seed.Category("C1")
		linked := f.seed.Service("linked", testdb.Ptr(acme.ID), c1.ID, nil)
		self := f.seed.Service("self", nil, c1.ID, nil)
		require.NoError(t, f.db.Unscoped().Delete(&models.ServiceModel{}, self.ID).Error)

		result, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModeTrash})
		require.NoError(t, err)

		assert.NotNil(t, f.seed.DeletedAt(&models.ServiceModel{}, linked.ID))
		assert.NotNil(t, f.seed.DeletedAt(&models.CategoryModel{}, c1.ID))
		assert.Equal(t, []uint{c1.ID}, result.Categories.Removed)
		assert.Equal(t, int64(1), result.ServicesAffected)
	})
}

func TestDeleteProvider_PermanentCascade(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "http://acme.test/api")
	beta := f.mustCreate(t, "Beta", "http://beta.test/api")

	onlyAcme := f.seed.Category("only acme")
	mixedSelf := f.seed.Category("acme and self")
	mixedBeta := f.seed.Category("acme and beta")
	acmeType := f.seed.ServiceType("acme type")
	sharedType := f.seed.ServiceType("shared type")

	s1 := f.seed.Service("s1", testdb.Ptr(acme.ID), onlyAcme.ID, &acmeType.ID)
	s2 := f.seed.Service("s2", testdb.Ptr(acme.ID), mixedSelf.ID, &sharedType.ID)
	s3 := f.seed.Service("s3", testdb.Ptr(acme.ID), mixedBeta.ID, nil)
	self := f.seed.Service("self", nil, mixedSelf.ID, &sharedType.ID)
	betaSvc := f.seed.Service("beta", testdb.Ptr(beta.ID), mixedBeta.ID, nil)
	f.seed.Order(s1.ID)
	f.seed.Order(s2.ID)
	keptOrder := f.seed.Order(self.ID)

	result, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID})
	require.NoError(t, err)
	assert.Equal(t, "permanent", result.Mode)
	assert.Equal(t, int64(3), result.ServicesAffected)

	assert.False(t, f.seed.Exists(&models.ProviderModel{}, acme.ID))
	for _, id := range []uint{s1.ID, s2.ID, s3.ID} {
		assert.False(t, f.seed.Exists(&models.ServiceModel{}, id))
	}
	assert.True(t, f.seed.Exists(&models.ServiceModel{}, self.ID))
	assert.True(t, f.seed.Exists(&models.ServiceModel{}, betaSvc.ID))

	assert.Equal(t, int64(1), f.seed.Count(&models.OrderModel{}))
	assert.True(t, f.seed.Exists(&models.OrderModel{}, keptOrder.ID))
	assert.Equal(t, int64(1), f.seed.Count(&models.CancelRequestModel{}))
	assert.Equal(t, int64(1), f.seed.Count(&models.RefillRequestModel{}))
	assert.Equal(t, int64(1), f.seed.Count(&models.FavoriteServiceModel{}))

	assert.False(t, f.seed.Exists(&models.CategoryModel{}, onlyAcme.ID))
	assert.Nil(t, f.seed.DeletedAt(&models.CategoryModel{}, mixedSelf.ID))
	assert.True(t, f.seed.Exists(&models.CategoryModel{}, mixedBeta.ID), "beta's service still points at it")
	assert.NotNil(t, f.seed.DeletedAt(&models.CategoryModel{}, mixedBeta.ID))
	assert.False(t, f.seed.Exists(&models.ServiceTypeModel{}, acmeType.ID))
	assert.Nil(t, f.seed.DeletedAt(&models.ServiceTypeModel{}, sharedType.ID))

	assert.ElementsMatch(t, []uint{onlyAcme.ID, mixedBeta.ID}, result.Categories.Removed)
	assert.Equal(t, []uint{mixedSelf.ID}, result.Categories.Preserved)
	assert.Equal(t, []uint{acmeType.ID}, result.ServiceTypes.Removed)
	assert.Equal(t, []uint{sharedType.ID}, result.ServiceTypes.Preserved)
}

func TestDeleteProvider_PermanentKeepsReferencedContainers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "")
	cat := f.seed.Category("C1")
	f.seed.Service("acme", testdb.Ptr(acme.ID), cat.ID, nil)
	oldSelf := f.seed.Service("old self", nil, cat.ID, nil)
	f.seed.Trash(&models.ServiceModel{}, oldSelf.ID)

	result, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModePermanent})
	require.NoError(t, err)

	assert.Equal(t, []uint{cat.ID}, result.Categories.Removed)
	assert.True(t, f.seed.Exists(&models.CategoryModel{}, cat.ID), "trashed services still point at it")
	assert.NotNil(t, f.seed.DeletedAt(&models.CategoryModel{}, cat.ID))
}

// Another provider's live services do not keep a container; only self-created ones do.
func TestDeleteProvider_TrashIgnoresOtherProviders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "")
	beta := f.mustCreate(t, "Beta", "")
	cat := f.seed.Category("C")
	st := f.seed.ServiceType("T")
	f.seed.Service("acme", testdb.Ptr(acme.ID), cat.ID, &st.ID)
	betaSvc := f.seed.Service("beta", testdb.Ptr(beta.ID), cat.ID, &st.ID)

	result, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModeTrash})
	require.NoError(t, err)

	assert.NotNil(t, f.seed.DeletedAt(&models.CategoryModel{}, cat.ID))
	assert.NotNil(t, f.seed.DeletedAt(&models.ServiceTypeModel{}, st.ID))
	assert.Nil(t, f.seed.DeletedAt(&models.ServiceModel{}, betaSvc.ID))
	assert.Equal(t, []uint{cat.ID}, result.Categories.Removed)
	assert.Equal(t, []uint{st.ID}, result.ServiceTypes.Removed)
}

// A live self-created service keeps its containers in both modes.
func TestDeleteProvider_SelfCreatedContainersSurvive(t *testing.T) {
	for _, mode := range []provider.DeleteMode{provider.DeleteModeTrash, provider.DeleteModePermanent} {
		t.Run(mode.String(), func(t *testing.T) {
			f := newFixture(t)
			acme := f.mustCreate(t, "Acme", "")
			cat := f.seed.Category("C1")
			st := f.seed.ServiceType("T1")
			for i := 0; i < 5; i++ {
				f.seed.Service("acme", testdb.Ptr(acme.ID), cat.ID, &st.ID)
			}
			f.seed.Service("self", nil, cat.ID, &st.ID)

			_, err := f.del.Execute(context.Background(), DeleteProviderCommand{ID: acme.ID, Mode: mode})
			require.NoError(t, err)

			assert.Nil(t, f.seed.DeletedAt(&models.CategoryModel{}, cat.ID))
			assert.Nil(t, f.seed.DeletedAt(&models.ServiceTypeModel{}, st.ID))
		})
	}
}

func TestDeleteProvider_RollsBackOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "")
	cat := f.seed.Category("C1")
	svc := f.seed.Service("acme", testdb.Ptr(acme.ID), cat.ID, nil)
	order := f.seed.Order(svc.ID)

	failing := &failingCascade{CascadeRepository: f.catalog, err: stderrors.New("database is locked")}
	del := NewDeleteProviderUseCase(f.providers, failing, f.tx, testutil.NewMockLogger())

	_, err := del.Execute(ctx, DeleteProviderCommand{ID: acme.ID})
	require.Error(t, err)
	assert.True(t, errors.IsPersistenceError(err))
	assert.Contains(t, errors.GetAppError(err).Message, "database is locked")

	assert.True(t, f.seed.Exists(&models.ProviderModel{}, acme.ID))
	assert.True(t, f.seed.Exists(&models.ServiceModel{}, svc.ID))
	assert.True(t, f.seed.Exists(&models.OrderModel{}, order.ID))
	assert.True(t, f.seed.Exists(&models.CategoryModel{}, cat.ID))
}

// failingCascade fails when a container is about to be removed, after services are already gone.
type failingCascade struct {
	catalog.CascadeRepository
	err error
}

func (c *failingCascade) DeleteContainer(ctx context.Context, kind catalog.ContainerKind, id uint) error {
	return c.err
}

func TestDeleteProvider_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.del.Execute(ctx, DeleteProviderCommand{ID: 0})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.del.Execute(ctx, DeleteProviderCommand{ID: 1, Mode: provider.DeleteMode("archive")})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.del.Execute(ctx, DeleteProviderCommand{ID: 999, Mode: provider.DeleteModeTrash})
	assert.True(t, errors.IsNotFoundError(err))
}

type visibleState struct {
	providerStatus string
	providerName   string
	providerLive   bool
	services       map[uint]string
	liveContainers map[string]bool
}

func snapshot(t *testing.T, f *fixture, providerID uint, categoryIDs, typeIDs []uint) visibleState {
	t.Helper()
	row := f.providerRow(t, providerID)
	state := visibleState{
		providerStatus: row.Status,
		providerName:   row.Name,
		providerLive:   !row.DeletedAt.Valid,
		services:       map[uint]string{},
		liveContainers: map[string]bool{},
	}

	var services []models.ServiceModel
	require.NoError(t, f.db.Where("provider_id = ?", providerID).Find(&services).Error)
	for _, s := range services {
		state.services[s.ID] = s.Status
	}
	for _, id := range categoryIDs {
		state.liveContainers[fmt.Sprintf("category/%d", id)] = f.seed.DeletedAt(&models.CategoryModel{}, id) == nil
	}
	for _, id := range typeIDs {
		state.liveContainers[fmt.Sprintf("service_type/%d", id)] = f.seed.DeletedAt(&models.ServiceTypeModel{}, id) == nil
	}
	return state
}

// Trash followed by restore gives back the visible state.
func TestRestoreProvider_InverseOfTrash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "http://acme.test/api")
	onlyAcme := f.seed.Category("only acme")
	mixed := f.seed.Category("mixed")
	st := f.seed.ServiceType("T1")
	f.seed.Service("a", testdb.Ptr(acme.ID), onlyAcme.ID, &st.ID)
	inactive := f.seed.Service("b", testdb.Ptr(acme.ID), mixed.ID, nil)
	require.NoError(t, f.db.Model(&models.ServiceModel{}).Where("id = ?", inactive.ID).Update("status", "inactive").Error)
	f.seed.Service("self", nil, mixed.ID, nil)

	categories := []uint{onlyAcme.ID, mixed.ID}
	types := []uint{st.ID}
	before := snapshot(t, f, acme.ID, categories, types)

	_, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModeTrash})
	require.NoError(t, err)
	trashed := snapshot(t, f, acme.ID, categories, types)
	assert.False(t, trashed.providerLive)
	assert.Empty(t, trashed.services)

	result, err := f.restore.Execute(ctx, RestoreProviderCommand{ID: acme.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ServicesRestored)
	assert.Equal(t, []uint{onlyAcme.ID}, result.RestoredCategories)
	assert.Equal(t, []uint{st.ID}, result.RestoredServiceTypes)

	assert.Equal(t, before, snapshot(t, f, acme.ID, categories, types))
}

func TestRestoreProvider_LeavesIndependentlyRestoredContainers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	acme := f.mustCreate(t, "Acme", "")
	cat := f.seed.Category("C1")
	f.seed.Service("a", testdb.Ptr(acme.ID), cat.ID, nil)

	_, err := f.del.Execute(ctx, DeleteProviderCommand{ID: acme.ID, Mode: provider.DeleteModeTrash})
	require.NoError(t, err)
	require.NoError(t, f.db.Unscoped().Model(&models.CategoryModel{}).Where("id = ?", cat.ID).UpdateColumn("deleted_at", nil).Error)

	result, err := f.restore.Execute(ctx, RestoreProviderCommand{ID: acme.ID})
	require.NoError(t, err)
	assert.Empty(t, result.RestoredCategories)
	assert.Nil(t, f.seed.DeletedAt(&models.CategoryModel{}, cat.ID))
}

func TestRestoreProvider_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	live := f.mustCreate(t, "Live", "")

	_, err := f.restore.Execute(ctx, RestoreProviderCommand{ID: 0})
	assert.True(t, errors.IsValidationError(err))

	_, err = f.restore.Execute(ctx, RestoreProviderCommand{ID: 404})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.restore.Execute(ctx, RestoreProviderCommand{ID: live.ID})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "Provider not found in trash", errors.GetAppError(err).Message)
}

// Activation is rejected without a usable endpoint and key, and nothing is written.
func TestUpdateProvider_ActivationGuard(t *testing.T) {
	tests := []struct {
		name      string
		storedURL string
		patch     UpdateProviderCommand
	}{
		{name: "stored url empty", storedURL: ""},
		{name: "patched url whitespace", storedURL: "http://ok.test", patch: UpdateProviderCommand{APIURL: strPtr("   ")}},
		{name: "patched url unparseable", storedURL: "", patch: UpdateProviderCommand{APIURL: strPtr("not a url")}},
		{name: "patched url relative", storedURL: "", patch: UpdateProviderCommand{APIURL: strPtr("/api/v2")}},
		{name: "patched key empty", storedURL: "http://ok.test", patch: UpdateProviderCommand{APIKey: strPtr(" ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			p := f.mustCreate(t, "Acme", tt.storedURL)
			before := f.providerRow(t, p.ID)

			cmd := tt.patch
			cmd.ID = p.ID
			cmd.Status = strPtr("active")
			_, err := f.update.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
			after := f.providerRow(t, p.ID)
			assert.Equal(t, "inactive", after.Status)
			assert.Equal(t, before.APIURL, after.APIURL)
			assert.Equal(t, before.APIKey, after.APIKey)
		})
	}
}

func TestUpdateProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("activate with patched url", func(t *testing.T) {
		f := newFixture(t)
		p := f.mustCreate(t, "Acme", "")

		updated, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, Status: strPtr("active"), APIURL: strPtr("https://acme.test/api/v2")})
		require.NoError(t, err)
		assert.Equal(t, "active", updated.Status)
		assert.Equal(t, "active", f.providerRow(t, p.ID).Status)
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		f := newFixture(t)
		p := f.mustCreate(t, "Acme", "http://acme.test")

		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, HTTPMethod: strPtr("get"), APIConfig: &provider.APIConfig{BalanceAction: "bal"}})
		require.NoError(t, err)

		row := f.providerRow(t, p.ID)
		assert.Equal(t, "GET", row.HTTPMethod)
		assert.Equal(t, "Acme", row.Name)
		assert.Equal(t, "key-Acme", row.APIKey)
		require.NotNil(t, row.APIURL)
		assert.Equal(t, "http://acme.test", *row.APIURL)
		assert.Contains(t, string(row.APIConfig), `"balance_action":"bal"`)
		assert.Contains(t, string(row.APIConfig), `"cancel_action":"cancel"`)
	})

	t.Run("clear url on an active provider without status", func(t *testing.T) {
		f := newFixture(t)
		p := f.mustCreate(t, "Acme", "http://acme.test")
		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, Status: strPtr("active")})
		require.NoError(t, err)

		updated, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, APIURL: strPtr("")})
		require.NoError(t, err)
		assert.Equal(t, "", updated.APIURL)

		row := f.providerRow(t, p.ID)
		assert.Equal(t, "active", row.Status)
		assert.Nil(t, row.APIURL)
	})

	t.Run("deactivate and clear url in one patch", func(t *testing.T) {
		f := newFixture(t)
		p := f.mustCreate(t, "Acme", "http://acme.test")
		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, Status: strPtr("active")})
		require.NoError(t, err)

		_, err = f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, Status: strPtr("inactive"), APIURL: strPtr("")})
		require.NoError(t, err)
		row := f.providerRow(t, p.ID)
		assert.Equal(t, "inactive", row.Status)
		assert.Nil(t, row.APIURL)
	})

	t.Run("rename onto another provider", func(t *testing.T) {
		f := newFixture(t)
		f.mustCreate(t, "Acme", "http://acme.test")
		beta := f.mustCreate(t, "Beta", "http://beta.test")

		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: beta.ID, Name: strPtr("Acme")})
		assert.True(t, errors.IsConflictError(err))

		_, err = f.update.Execute(ctx, UpdateProviderCommand{ID: beta.ID, APIURL: strPtr("http://acme.test")})
		assert.True(t, errors.IsConflictError(err))
		assert.Equal(t, "Beta", f.providerRow(t, beta.ID).Name)
	})

	t.Run("missing provider", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: 42, Status: strPtr("active")})
		assert.True(t, errors.IsNotFoundError(err))

		_, err = f.update.Execute(ctx, UpdateProviderCommand{ID: 42, Name: strPtr("x")})
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		p := f.mustCreate(t, "Acme", "")
		_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: p.ID, Status: strPtr("deleted")})
		assert.True(t, errors.IsValidationError(err))
	})
}

// A duplicate name is rejected and leaves the first row untouched.
func TestCreateProvider_DuplicateRejection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.mustCreate(t, "Acme", "http://acme.test/api")
	before := f.providerRow(t, first.ID)

	_, err := f.create.Execute(ctx, CreateProviderCommand{Name: "Acme", APIKey: "other", APIURL: "http://other.test", HTTPMethod: "GET"})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 400, errors.GetAppError(err).Code)
	assert.Equal(t, before, f.providerRow(t, first.ID))

	_, err = f.create.Execute(ctx, CreateProviderCommand{Name: "Other", APIKey: "k", APIURL: " http://acme.test/api "})
	assert.True(t, errors.IsConflictError(err), "same url after trimming")

	_, err = f.del.Execute(ctx, DeleteProviderCommand{ID: first.ID, Mode: provider.DeleteModeTrash})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateProviderCommand{Name: "Acme", APIKey: "k"})
	assert.True(t, errors.IsConflictError(err), "trashed providers keep their name")
}

func TestCreateProvider(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("defaults and sanitised name", func(t *testing.T) {
		p, err := f.create.Execute(ctx, CreateProviderCommand{
			Name:      `<b>Fast & Cheap</b><script>alert(1)</script>`,
			APIKey:    "abcdef123456",
			APIConfig: provider.APIConfig{ServicesAction: "list"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Fast & Cheap", p.Name)
		assert.Equal(t, "inactive", p.Status)
		assert.True(t, p.IsCustom)
		assert.Equal(t, "POST", p.HTTPMethod)
		assert.Equal(t, "********3456", p.APIKey)
		assert.Equal(t, "list", p.APIConfig.ServicesAction)
		assert.Equal(t, "key", p.APIConfig.APIKeyParam)
		assert.Equal(t, "json", p.APIConfig.ResponseFormat)
	})

	t.Run("required fields", func(t *testing.T) {
		_, err := f.create.Execute(ctx, CreateProviderCommand{Name: " ", APIKey: "k"})
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "name is required", errors.GetAppError(err).Message)

		_, err = f.create.Execute(ctx, CreateProviderCommand{Name: "NoKey"})
		assert.True(t, errors.IsValidationError(err))

		_, err = f.create.Execute(ctx, CreateProviderCommand{Name: "<i></i>", APIKey: "k"})
		assert.True(t, errors.IsValidationError(err), "markup-only name is empty")
	})
}

func TestListProviders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	empty := f.mustCreate(t, "Empty", "")
	busy := f.mustCreate(t, "Busy", "http://busy.test")
	_, err := f.update.Execute(ctx, UpdateProviderCommand{ID: busy.ID, Status: strPtr("active")})
	require.NoError(t, err)
	idle := f.mustCreate(t, "Idle", "http://idle.test")
	_, err = f.update.Execute(ctx, UpdateProviderCommand{ID: idle.ID, Status: strPtr("active")})
	require.NoError(t, err)
	gone := f.mustCreate(t, "Gone", "")

	cat := f.seed.Category("C1")
	b1 := f.seed.Service("b1", testdb.Ptr(busy.ID), cat.ID, nil)
	b2 := f.seed.Service("b2", testdb.Ptr(busy.ID), cat.ID, nil)
	require.NoError(t, f.db.Model(&models.ServiceModel{}).Where("id = ?", b2.ID).Update("status", "inactive").Error)
	f.seed.Order(b1.ID)
	f.seed.Service("g1", testdb.Ptr(gone.ID), cat.ID, nil)
	f.seed.Service("g2", testdb.Ptr(gone.ID), cat.ID, nil)
	_, err = f.del.Execute(ctx, DeleteProviderCommand{ID: gone.ID, Mode: provider.DeleteModeTrash})
	require.NoError(t, err)

	names := func(r *dto.ListProvidersResult) []string {
		out := []string{}
		for _, p := range r.Providers {
			out = append(out, p.Name)
		}
		return out
	}

	active, err := f.list.Execute(ctx, ListProvidersQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Idle", "Busy"}, names(active))
	assert.Equal(t, 2, active.Total)
	assert.Equal(t, 2, active.Configured)
	assert.Equal(t, 0, active.Available)
	assert.Equal(t, 2, active.Custom)

	busyDTO := active.Providers[1]
	assert.Equal(t, int64(2), busyDTO.TotalServices)
	assert.Equal(t, int64(1), busyDTO.ActiveServices)
	assert.Equal(t, int64(1), busyDTO.InactiveServices)
	assert.Equal(t, int64(1), busyDTO.OrderCount)

	withServices, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "with-services"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Busy"}, names(withServices))

	inactive, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "inactive"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Empty"}, names(inactive))
	assert.Equal(t, 0, inactive.Configured)
	assert.Equal(t, empty.ID, inactive.Providers[0].ID)

	trash, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "trash"})
	require.NoError(t, err)
	require.Equal(t, []string{"Gone"}, names(trash))
	assert.Equal(t, int64(2), trash.Providers[0].TotalServices, "trashed provider counts its trashed services")

	all, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "all"})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Total)

	_, err = f.list.Execute(ctx, ListProvidersQuery{Filter: "deleted"})
	assert.True(t, errors.IsValidationError(err))
}

// Listing is read-only and stable.
func TestListProviders_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p := f.mustCreate(t, "Acme", "http://acme.test")
	cat := f.seed.Category("C1")
	svc := f.seed.Service("s", testdb.Ptr(p.ID), cat.ID, nil)
	f.seed.Order(svc.ID)
	rowBefore := f.providerRow(t, p.ID)

	first, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "all"})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := f.list.Execute(ctx, ListProvidersQuery{Filter: "all"})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, rowBefore, f.providerRow(t, p.ID))
}

func TestTransactionsWrapCascades(t *testing.T) {
	f := newFixture(t)
	tx := testutil.NewMockTransactor()
	tx.SetError(stderrors.New("begin failed"))

	del := NewDeleteProviderUseCase(f.providers, f.catalog, tx, testutil.NewMockLogger())
	restore := NewRestoreProviderUseCase(f.providers, f.catalog, tx, testutil.NewMockLogger())

	_, err := del.Execute(context.Background(), DeleteProviderCommand{ID: 1})
	assert.True(t, errors.IsPersistenceError(err))
	_, err = restore.Execute(context.Background(), RestoreProviderCommand{ID: 1})
	assert.True(t, errors.IsPersistenceError(err))
	assert.Equal(t, 2, tx.Calls())
}
