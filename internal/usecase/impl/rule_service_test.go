package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	domainsvc "shipway/internal/domain/service"
	mockRepo "shipway/internal/mocks/repository"
	mockSvc "shipway/internal/mocks/service"
	"shipway/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRuleService(t *testing.T) (
	usecase.RuleUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockRuleRepository,
	*mockSvc.MockCatalogService,
	*mockSvc.MockEventPublisher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ruleRepo := mockRepo.NewMockRuleRepository(t)
	catalog := mockSvc.NewMockCatalogService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewRuleService(RuleServiceParams{
		TxManager: txManager,
		RuleRepo:  ruleRepo,
		Catalog:   catalog,
		Publisher: publisher,
		Logger:    logger,
	})

	return service, txManager, ruleRepo, catalog, publisher
}

// newTxFactory wires the transaction mock so Execute runs the callback against
// a factory handing out the given repositories, propagating the callback error.
func newTxFactory(t *testing.T, txManager *mockRepo.MockTransactionManager, ruleRepo *mockRepo.MockRuleRepository, catalogRepo *mockRepo.MockCatalogRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRuleRepository().Return(ruleRepo).Maybe()
	factory.EXPECT().NewCatalogRepository().Return(catalogRepo).Maybe()

	txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func validSaveInput() *usecase.SaveRuleInput {
	return &usecase.SaveRuleInput{
		Shop:         "demo.myshopify.com",
		Country:      "Pakistan",
		DeliveryTime: "2-3 days",
		Resources: []usecase.RuleResourceInput{
			{Kind: entity.ResourceProduct, ID: "gid://shopify/Product/123", Title: "Test Product"},
		},
	}
}

func TestRuleService_SaveRule_ValidationErrors(t *testing.T) {
	service, _, _, _, _ := createTestRuleService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(input *usecase.SaveRuleInput)
		wantErr error
	}{
		{
			name:    "missing country",
			mutate:  func(input *usecase.SaveRuleInput) { input.Country = "" },
			wantErr: domainerrors.ErrCountryRequired,
		},
		{
			name:    "no resources",
			mutate:  func(input *usecase.SaveRuleInput) { input.Resources = nil },
			wantErr: domainerrors.ErrResourceRequired,
		},
		{
			name: "unknown resource kind",
			mutate: func(input *usecase.SaveRuleInput) {
				input.Resources = []usecase.RuleResourceInput{{Kind: "bundle", ID: "1"}}
			},
			wantErr: domainerrors.ErrResourceRequired,
		},
		{
			name: "start after end",
			mutate: func(input *usecase.SaveRuleInput) {
				input.StartDate = "2030-05-10"
				input.EndDate = "2030-05-01"
			},
			wantErr: domainerrors.ErrDateOrder,
		},
		{
			name:    "end date in the past",
			mutate:  func(input *usecase.SaveRuleInput) { input.EndDate = "2020-01-01" },
			wantErr: domainerrors.ErrEndDatePast,
		},
		{
			name:    "malformed date",
			mutate:  func(input *usecase.SaveRuleInput) { input.StartDate = "05/10/2030" },
			wantErr: domainerrors.ErrInvalidDate,
		},
		{
			name:    "delivery time too short",
			mutate:  func(input *usecase.SaveRuleInput) { input.DeliveryTime = "2d" },
			wantErr: domainerrors.ErrDeliveryTimeTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSaveInput()
			tt.mutate(input)

			_, err := service.SaveRule(ctx, input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRuleService_SaveRule_InvalidZipSpec(t *testing.T) {
	service, _, _, _, _ := createTestRuleService(t)

	input := validSaveInput()
	input.ZipCodes = "75500,AB12"

	_, err := service.SaveRule(context.Background(), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid zip code format: AB12")
}

func TestRuleService_SaveRule_CreatesRule(t *testing.T) {
	service, txManager, _, _, _ := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	ruleID := uuid.New()

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", []entity.ResourceRef{ref}).
		Return(nil, repository.ErrRuleNotFound)
	txRuleRepo.EXPECT().
		FindConflictingRules(ctx, input.Shop, "Pakistan", "", entity.ZipInclusive, []entity.ResourceRef{ref}).
		Return(nil, nil)
	txRuleRepo.EXPECT().CreateRule(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Rule).ID = ruleID
		}).
		Return(nil)
	txCatalogRepo.EXPECT().UpsertResource(ctx, mock.Anything).Return(nil)
	txRuleRepo.EXPECT().UpsertAssociation(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			assoc := args.Get(1).(*entity.ResourceAssociation)
			assert.Equal(t, ruleID, assoc.RuleID)
			assert.Equal(t, "123", assoc.ResourceID)
		}).
		Return(nil)

	result, err := service.SaveRule(ctx, input)

	require.NoError(t, err)
	assert.False(t, result.Updated)
	assert.Equal(t, ruleID, result.Rule.ID)
	assert.Equal(t, entity.ZipInclusive, result.Rule.ZipCodeType)
	assert.Len(t, result.Rule.Associations, 1)
}

func TestRuleService_SaveRule_ConflictRejected(t *testing.T) {
	service, txManager, _, _, _ := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()
	input.ZipCodes = "75500"
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", []entity.ResourceRef{ref}).
		Return(nil, repository.ErrRuleNotFound)
	txRuleRepo.EXPECT().
		FindConflictingRules(ctx, input.Shop, "Pakistan", "75500", entity.ZipInclusive, []entity.ResourceRef{ref}).
		Return([]*entity.Rule{{ID: uuid.New()}}, nil)

	_, err := service.SaveRule(ctx, input)

	assert.ErrorIs(t, err, domainerrors.ErrRuleConflict)
}

func TestRuleService_SaveRule_UpdatesOverlappingRule(t *testing.T) {
	service, txManager, _, _, _ := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	existing := &entity.Rule{
		ID:        uuid.New(),
		Shop:      input.Shop,
		Country:   "Pakistan",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Associations: []entity.ResourceAssociation{
			{Kind: entity.ResourceProduct, ResourceID: "123", Excluded: false},
		},
	}

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", []entity.ResourceRef{ref}).
		Return(existing, nil)
	txRuleRepo.EXPECT().UpdateRule(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			rule := args.Get(1).(*entity.Rule)
			assert.Equal(t, existing.ID, rule.ID)
			assert.Equal(t, existing.CreatedAt, rule.CreatedAt)
		}).
		Return(nil)
	txCatalogRepo.EXPECT().UpsertResource(ctx, mock.Anything).Return(nil)
	txRuleRepo.EXPECT().UpsertAssociation(ctx, mock.Anything).Return(nil)

	result, err := service.SaveRule(ctx, input)

	require.NoError(t, err)
	assert.True(t, result.Updated)
	assert.Equal(t, existing.ID, result.Rule.ID)
}

func TestRuleService_SaveRule_PublishesReinclusion(t *testing.T) {
	service, txManager, _, _, publisher := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()
	input.Resources[0].NotificationsEnabled = true
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	existing := &entity.Rule{
		ID:      uuid.New(),
		Shop:    input.Shop,
		Country: "Pakistan",
		Associations: []entity.ResourceAssociation{
			{Kind: entity.ResourceProduct, ResourceID: "123", Excluded: true},
		},
	}

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", []entity.ResourceRef{ref}).
		Return(existing, nil)
	txRuleRepo.EXPECT().UpdateRule(ctx, mock.Anything).Return(nil)
	txCatalogRepo.EXPECT().UpsertResource(ctx, mock.Anything).Return(nil)
	txRuleRepo.EXPECT().UpsertAssociation(ctx, mock.Anything).Return(nil)

	publisher.EXPECT().PublishResourceIncluded(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*domainsvc.ResourceIncludedEvent)
			assert.Equal(t, input.Shop, event.Shop)
			assert.Equal(t, "Pakistan", event.Country)
			assert.Equal(t, []entity.ResourceRef{ref}, event.Resources)
		}).
		Return(nil)

	result, err := service.SaveRule(ctx, input)

	require.NoError(t, err)
	assert.True(t, result.Updated)
}

func TestRuleService_SaveRule_StillExcludedDoesNotPublish(t *testing.T) {
	service, txManager, _, _, _ := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()
	input.Resources[0].Excluded = true
	input.Resources[0].NotificationsEnabled = true
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	existing := &entity.Rule{
		ID:      uuid.New(),
		Shop:    input.Shop,
		Country: "Pakistan",
		Associations: []entity.ResourceAssociation{
			{Kind: entity.ResourceProduct, ResourceID: "123", Excluded: true},
		},
	}

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", []entity.ResourceRef{ref}).
		Return(existing, nil)
	txRuleRepo.EXPECT().UpdateRule(ctx, mock.Anything).Return(nil)
	txCatalogRepo.EXPECT().UpsertResource(ctx, mock.Anything).Return(nil)
	txRuleRepo.EXPECT().UpsertAssociation(ctx, mock.Anything).Return(nil)

	_, err := service.SaveRule(ctx, input)

	require.NoError(t, err)
}

func TestRuleService_SaveRule_TransactionErrorPropagates(t *testing.T) {
	service, txManager, _, _, _ := createTestRuleService(t)

	txRuleRepo := mockRepo.NewMockRuleRepository(t)
	txCatalogRepo := mockRepo.NewMockCatalogRepository(t)
	newTxFactory(t, txManager, txRuleRepo, txCatalogRepo)

	ctx := context.Background()
	input := validSaveInput()

	txRuleRepo.EXPECT().FindOverlappingRule(ctx, input.Shop, "Pakistan", mock.Anything).
		Return(nil, errors.New("connection refused"))

	_, err := service.SaveRule(ctx, input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find overlapping rule")
}

func TestRuleService_ListRules(t *testing.T) {
	service, _, ruleRepo, _, _ := createTestRuleService(t)

	ctx := context.Background()
	rules := []*entity.Rule{{ID: uuid.New(), Shop: "demo.myshopify.com"}}

	ruleRepo.EXPECT().ListRules(ctx, "demo.myshopify.com").Return(rules, nil)

	got, err := service.ListRules(ctx, "demo.myshopify.com")

	require.NoError(t, err)
	assert.Equal(t, rules, got)
}

func TestRuleService_GetCatalog(t *testing.T) {
	service, _, _, catalog, _ := createTestRuleService(t)

	ctx := context.Background()
	snapshot := &entity.CatalogSnapshot{
		Products: []entity.CatalogProduct{{ID: "123", Title: "Test Product"}},
	}

	catalog.EXPECT().FetchCatalog(ctx, "demo.myshopify.com").Return(snapshot, nil)

	got, err := service.GetCatalog(ctx, "demo.myshopify.com")

	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
}

func TestRuleService_SearchCatalog(t *testing.T) {
	service, _, _, catalog, _ := createTestRuleService(t)

	ctx := context.Background()

	catalog.EXPECT().SearchResources(ctx, "demo.myshopify.com", entity.ResourceVendor, "Acme").
		Return([]string{"Acme Co"}, nil)

	got, err := service.SearchCatalog(ctx, "demo.myshopify.com", entity.ResourceVendor, "Acme")

	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Co"}, got)
}
