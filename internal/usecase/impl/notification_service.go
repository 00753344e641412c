package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/domain/service"
	"shipway/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxSendAttempts  = 3
	defaultSendRetry = time.Second
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type notificationService struct {
	ruleRepo   repository.RuleRepository
	signupRepo repository.SignupRepository
	mailer     service.Mailer
	logger     *slog.Logger
	now        func() time.Time
	retryDelay time.Duration
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	RuleRepo   repository.RuleRepository
	SignupRepo repository.SignupRepository
	Mailer     service.Mailer
	Logger     *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		ruleRepo:   params.RuleRepo,
		signupRepo: params.SignupRepo,
		mailer:     params.Mailer,
		logger:     params.Logger,
		now:        time.Now,
		retryDelay: defaultSendRetry,
	}
}

// NewIncludedDispatcher exposes the notification usecase as the in-process
// event dispatcher used when no message broker is configured.
func NewIncludedDispatcher(notifications usecase.NotificationUsecase) service.IncludedDispatcher {
	return notifications
}

// Signup records a notification request after verifying that the targeted
// resource has notifications enabled in the given country.
func (s *notificationService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupResult, error) {
	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.ErrInvalidEmail
	}

	refs := buildRefs(
		entity.NormalizeResourceID(entity.ResourceProduct, input.ProductID),
		entity.NormalizeResourceID(entity.ResourceCollection, input.CollectionID),
	)

	var target *entity.ResourceRef
	for _, ref := range refs {
		_, err := s.ruleRepo.FindNotifiableAssociation(ctx, ref, input.Country)
		if err != nil {
			if errors.Is(err, repository.ErrAssociationNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to check notification eligibility")
		}

		target = &ref

		break
	}

	if target == nil {
		return nil, domainerrors.ErrNotificationsNotEnabled
	}

	signup := &entity.NotificationSignup{
		Email:      input.Email,
		Kind:       target.Kind,
		ResourceID: target.ID,
		Country:    input.Country,
	}
	if err := s.signupRepo.CreateSignup(ctx, signup); err != nil {
		return nil, errors.Wrap(err, "failed to create signup")
	}

	// The signup is stored either way; a failed confirmation email softens
	// the response instead of rolling anything back.
	if err := s.mailer.Send(ctx, input.Email, "Notification Signup Confirmation", confirmationBody(target, input.Country)); err != nil {
		s.logger.Error("confirmation email failed",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return &usecase.SignupResult{
			Success: false,
			Message: "Unable to send email. Please use a verified email or try later.",
		}, nil
	}

	return &usecase.SignupResult{
		Success: true,
		Message: "You'll be notified when available!",
	}, nil
}

// DispatchIncluded emails every pending signup for the event's resources.
// Send failures are retried, then logged and skipped; NotifiedAt is stamped
// only after a successful send so the signup stays pending for the next run.
func (s *notificationService) DispatchIncluded(ctx context.Context, event *service.ResourceIncludedEvent) error {
	for _, ref := range event.Resources {
		signups, err := s.signupRepo.FindPendingSignups(ctx, ref, event.Country)
		if err != nil {
			return errors.Wrap(err, "failed to load pending signups")
		}

		for _, signup := range signups {
			if !s.sendWithRetry(ctx, signup, ref, event) {
				s.logger.Error("notification email failed after retries",
					slog.String("email", signup.Email),
					slog.String("resource_id", ref.ID),
				)

				continue
			}

			if err := s.signupRepo.MarkNotified(ctx, signup.ID, s.now()); err != nil {
				s.logger.Error("failed to stamp notified signup",
					slog.String("email", signup.Email),
					slog.Any("error", err),
				)
			}
		}
	}

	return nil
}

// PendingSignups lists un-notified signups for a resource and country.
func (s *notificationService) PendingSignups(ctx context.Context, ref entity.ResourceRef, country string) ([]*entity.NotificationSignup, error) {
	return s.signupRepo.FindPendingSignups(ctx, ref, country)
}

func (s *notificationService) sendWithRetry(ctx context.Context, signup *entity.NotificationSignup, ref entity.ResourceRef, event *service.ResourceIncludedEvent) bool {
	subject := fmt.Sprintf("Now available in %s!", event.Country)
	body := availabilityBody(ref, event)

	for attempt := 1; attempt <= maxSendAttempts; attempt++ {
		err := s.mailer.Send(ctx, signup.Email, subject, body)
		if err == nil {
			return true
		}

		s.logger.Warn("notification email attempt failed",
			slog.String("email", signup.Email),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt < maxSendAttempts {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(s.retryDelay):
			}
		}
	}

	return false
}

func confirmationBody(ref *entity.ResourceRef, country string) string {
	return fmt.Sprintf(
		"<h1>Thank You for Signing Up!</h1>"+
			"<p>You will be notified when the product is available in %s.</p>"+
			"<p>%s ID: %s</p>",
		country, refLabel(ref.Kind), ref.ID,
	)
}

func availabilityBody(ref entity.ResourceRef, event *service.ResourceIncludedEvent) string {
	deliveryTime := event.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = standardShipping
	}

	return fmt.Sprintf(
		"<h2>Your requested item is now available!</h2>"+
			"<p><strong>%s:</strong> %s</p>"+
			"<p><strong>Country:</strong> %s</p>"+
			"<p><strong>Estimated Delivery:</strong> %s</p>"+
			"<p>Thank you for subscribing!</p>",
		refLabel(ref.Kind), ref.ID, event.Country, deliveryTime,
	)
}

func refLabel(kind entity.ResourceKind) string {
	switch kind {
	case entity.ResourceProduct:
		return "Product"
	case entity.ResourceCollection:
		return "Collection"
	case entity.ResourceVendor:
		return "Vendor"
	case entity.ResourceTag:
		return "Tag"
	default:
		return "Resource"
	}
}
