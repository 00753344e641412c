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

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockRuleRepository,
	*mockRepo.MockSignupRepository,
	*mockSvc.MockMailer,
) {
	ruleRepo := mockRepo.NewMockRuleRepository(t)
	signupRepo := mockRepo.NewMockSignupRepository(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewNotificationService(NotificationServiceParams{
		RuleRepo:   ruleRepo,
		SignupRepo: signupRepo,
		Mailer:     mailer,
		Logger:     logger,
	})
	service.(*notificationService).retryDelay = time.Millisecond

	return service, ruleRepo, signupRepo, mailer
}

func TestNotificationService_Signup_InvalidEmail(t *testing.T) {
	service, _, _, _ := createTestNotificationService(t)

	_, err := service.Signup(context.Background(), &usecase.SignupInput{
		Email:     "not an email",
		ProductID: "123",
		Country:   "Pakistan",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)
}

func TestNotificationService_Signup_NotificationsNotEnabled(t *testing.T) {
	service, ruleRepo, _, _ := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	ruleRepo.EXPECT().FindNotifiableAssociation(ctx, ref, "Pakistan").
		Return(nil, repository.ErrAssociationNotFound)

	_, err := service.Signup(ctx, &usecase.SignupInput{
		Email:     "shopper@example.com",
		ProductID: "gid://shopify/Product/123",
		Country:   "Pakistan",
	})

	assert.ErrorIs(t, err, domainerrors.ErrNotificationsNotEnabled)
}

func TestNotificationService_Signup_Success(t *testing.T) {
	service, ruleRepo, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	assoc := &entity.ResourceAssociation{
		Kind: entity.ResourceProduct, ResourceID: "123", NotificationsEnabled: true,
	}

	ruleRepo.EXPECT().FindNotifiableAssociation(ctx, ref, "Pakistan").Return(assoc, nil)
	signupRepo.EXPECT().CreateSignup(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			signup := args.Get(1).(*entity.NotificationSignup)
			assert.Equal(t, "shopper@example.com", signup.Email)
			assert.Equal(t, entity.ResourceProduct, signup.Kind)
			assert.Equal(t, "123", signup.ResourceID)
			assert.Nil(t, signup.NotifiedAt)
		}).
		Return(nil)
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Notification Signup Confirmation", mock.Anything).Return(nil)

	result, err := service.Signup(ctx, &usecase.SignupInput{
		Email:     "shopper@example.com",
		ProductID: "123",
		Country:   "Pakistan",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "You'll be notified when available!", result.Message)
}

func TestNotificationService_Signup_CollectionFallback(t *testing.T) {
	service, ruleRepo, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	productRef := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	collectionRef := entity.ResourceRef{Kind: entity.ResourceCollection, ID: "55"}
	assoc := &entity.ResourceAssociation{
		Kind: entity.ResourceCollection, ResourceID: "55", NotificationsEnabled: true,
	}

	ruleRepo.EXPECT().FindNotifiableAssociation(ctx, productRef, "Pakistan").
		Return(nil, repository.ErrAssociationNotFound)
	ruleRepo.EXPECT().FindNotifiableAssociation(ctx, collectionRef, "Pakistan").Return(assoc, nil)
	signupRepo.EXPECT().CreateSignup(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			signup := args.Get(1).(*entity.NotificationSignup)
			assert.Equal(t, entity.ResourceCollection, signup.Kind)
			assert.Equal(t, "55", signup.ResourceID)
		}).
		Return(nil)
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Notification Signup Confirmation", mock.Anything).Return(nil)

	result, err := service.Signup(ctx, &usecase.SignupInput{
		Email:        "shopper@example.com",
		ProductID:    "123",
		CollectionID: "55",
		Country:      "Pakistan",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestNotificationService_Signup_EmailFailureSoftens(t *testing.T) {
	service, ruleRepo, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	assoc := &entity.ResourceAssociation{
		Kind: entity.ResourceProduct, ResourceID: "123", NotificationsEnabled: true,
	}

	ruleRepo.EXPECT().FindNotifiableAssociation(ctx, ref, "Pakistan").Return(assoc, nil)
	signupRepo.EXPECT().CreateSignup(ctx, mock.Anything).Return(nil)
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Notification Signup Confirmation", mock.Anything).
		Return(errors.New("550 mailbox unavailable"))

	result, err := service.Signup(ctx, &usecase.SignupInput{
		Email:     "shopper@example.com",
		ProductID: "123",
		Country:   "Pakistan",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Unable to send email. Please use a verified email or try later.", result.Message)
}

func TestNotificationService_DispatchIncluded_StampsNotified(t *testing.T) {
	service, _, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	signup := &entity.NotificationSignup{
		ID:         uuid.New(),
		Email:      "shopper@example.com",
		Kind:       entity.ResourceProduct,
		ResourceID: "123",
		Country:    "Pakistan",
	}

	signupRepo.EXPECT().FindPendingSignups(ctx, ref, "Pakistan").
		Return([]*entity.NotificationSignup{signup}, nil)
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Now available in Pakistan!", mock.Anything).Return(nil)
	signupRepo.EXPECT().MarkNotified(ctx, signup.ID, mock.Anything).Return(nil)

	err := service.DispatchIncluded(ctx, &domainsvc.ResourceIncludedEvent{
		Shop:      "demo.myshopify.com",
		Country:   "Pakistan",
		Resources: []entity.ResourceRef{ref},
	})

	require.NoError(t, err)
}

func TestNotificationService_DispatchIncluded_RetriesThenSucceeds(t *testing.T) {
	service, _, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	signup := &entity.NotificationSignup{ID: uuid.New(), Email: "shopper@example.com"}

	signupRepo.EXPECT().FindPendingSignups(ctx, ref, "Pakistan").
		Return([]*entity.NotificationSignup{signup}, nil)
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Now available in Pakistan!", mock.Anything).
		Return(errors.New("timeout")).Twice()
	mailer.EXPECT().Send(ctx, "shopper@example.com", "Now available in Pakistan!", mock.Anything).
		Return(nil).Once()
	signupRepo.EXPECT().MarkNotified(ctx, signup.ID, mock.Anything).Return(nil)

	err := service.DispatchIncluded(ctx, &domainsvc.ResourceIncludedEvent{
		Country:   "Pakistan",
		Resources: []entity.ResourceRef{ref},
	})

	require.NoError(t, err)
}

func TestNotificationService_DispatchIncluded_ExhaustedRetriesSkips(t *testing.T) {
	service, _, signupRepo, mailer := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	failing := &entity.NotificationSignup{ID: uuid.New(), Email: "bad@example.com"}
	healthy := &entity.NotificationSignup{ID: uuid.New(), Email: "good@example.com"}

	signupRepo.EXPECT().FindPendingSignups(ctx, ref, "Pakistan").
		Return([]*entity.NotificationSignup{failing, healthy}, nil)
	mailer.EXPECT().Send(ctx, "bad@example.com", mock.Anything, mock.Anything).
		Return(errors.New("bounced")).Times(3)
	mailer.EXPECT().Send(ctx, "good@example.com", mock.Anything, mock.Anything).Return(nil)
	signupRepo.EXPECT().MarkNotified(ctx, healthy.ID, mock.Anything).Return(nil)

	err := service.DispatchIncluded(ctx, &domainsvc.ResourceIncludedEvent{
		Country:   "Pakistan",
		Resources: []entity.ResourceRef{ref},
	})

	require.NoError(t, err)
}

func TestNotificationService_DispatchIncluded_RepoErrorPropagates(t *testing.T) {
	service, _, signupRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}

	signupRepo.EXPECT().FindPendingSignups(ctx, ref, "Pakistan").
		Return(nil, errors.New("connection refused"))

	err := service.DispatchIncluded(ctx, &domainsvc.ResourceIncludedEvent{
		Country:   "Pakistan",
		Resources: []entity.ResourceRef{ref},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load pending signups")
}

func TestNotificationService_PendingSignups(t *testing.T) {
	service, _, signupRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	ref := entity.ResourceRef{Kind: entity.ResourceProduct, ID: "123"}
	signups := []*entity.NotificationSignup{{ID: uuid.New()}}

	signupRepo.EXPECT().FindPendingSignups(ctx, ref, "Pakistan").Return(signups, nil)

	got, err := service.PendingSignups(ctx, ref, "Pakistan")

	require.NoError(t, err)
	assert.Equal(t, signups, got)
}
