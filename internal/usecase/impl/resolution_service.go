package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"time"

	"shipway/config"
	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/domain/repository"
	"shipway/internal/domain/service"
	"shipway/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultDeliveryDays      = 3
	standardShipping         = "Standard shipping"
	standardIntlShipping     = "Standard international shipping"
	degradedCountryInfoLabel = "United States"
	degradedCountryInfoSpeed = "3-5 business days"
)

// merchantTZ is the shop's home timezone; date windows open by merchant-local
// calendar day rather than UTC.
var merchantTZ = time.FixedZone("PKT", 5*60*60)

var leadingDigitsPattern = regexp.MustCompile(`\d+`)

type resolutionService struct {
	ruleRepo repository.RuleRepository
	resolver service.CountryResolver
	config   *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// ResolutionServiceParams holds dependencies for ResolutionService, injected by Fx.
type ResolutionServiceParams struct {
	fx.In

	RuleRepo repository.RuleRepository
	Resolver service.CountryResolver
	Config   *config.Config
	Logger   *slog.Logger
}

// NewResolutionService creates a new resolution service instance
func NewResolutionService(params ResolutionServiceParams) usecase.ResolutionUsecase {
	return &resolutionService{
		ruleRepo: params.RuleRepo,
		resolver: params.Resolver,
		config:   params.Config,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// ResolveDelivery resolves a delivery query to exactly one verdict.
func (s *resolutionService) ResolveDelivery(ctx context.Context, query *usecase.DeliveryQuery) (*entity.Verdict, error) {
	productID := entity.NormalizeResourceID(entity.ResourceProduct, query.ProductID)
	collectionID := entity.NormalizeResourceID(entity.ResourceCollection, query.CollectionID)

	if productID == "" && collectionID == "" {
		return nil, domainerrors.ErrResourceRefRequired
	}

	country := query.Country
	if country == "" {
		country = s.resolver.Resolve(ctx, query.IP)
	}

	verdict, err := s.resolveAgainstRules(ctx, productID, collectionID, country, query.ZipCode)
	if err != nil {
		// Storefront reads never fail hard: mask the error into a
		// fallback-available verdict and record why.
		s.logger.Error("delivery resolution failed, serving fallback",
			slog.String("product_id", productID),
			slog.String("collection_id", collectionID),
			slog.String("country", country),
			slog.Any("error", err),
		)

		degraded := s.fallbackVerdict(productID, collectionID, s.config.Geo.FallbackCountry, query.ZipCode)
		degraded.Message = withZipSuffix("This product is available (fallback)", query.ZipCode)
		degraded.Degraded = err.Error()
		degraded.Debug = entity.VerdictDebug{Error: err.Error(), ZipCode: query.ZipCode}

		return degraded, nil
	}

	verdict.Debug.IPUsed = query.IP

	return verdict, nil
}

func (s *resolutionService) resolveAgainstRules(ctx context.Context, productID, collectionID, country, zipCode string) (*entity.Verdict, error) {
	refs := buildRefs(productID, collectionID)

	// Exclusions come first: an excluded association vetoes every other rule.
	for _, ref := range refs {
		rule, err := s.ruleRepo.FindExcludedRule(ctx, ref, country)
		if err != nil {
			if errors.Is(err, repository.ErrRuleNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to check exclusions")
		}

		return s.excludedVerdict(rule, ref, productID, collectionID, country, zipCode), nil
	}

	rules, err := s.ruleRepo.FindRulesForResources(ctx, refs, country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rules")
	}

	valid := s.filterActive(rules, zipCode)
	if len(valid) > 0 {
		rule := s.selectRule(valid, refs)

		return s.activeRuleVerdict(rule, productID, collectionID, country, zipCode), nil
	}

	// A zip-restricted rule exists but the shopper's zip missed it.
	if zipCode != "" {
		zipScoped, err := s.ruleRepo.CountZipScopedRules(ctx, refs, country)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count zip scoped rules")
		}

		if zipScoped > 0 {
			verdict := &entity.Verdict{
				Available:    false,
				Country:      country,
				ProductID:    productID,
				CollectionID: collectionID,
				ZipCode:      zipCode,
				Message:      fmt.Sprintf("This %s is not available in %s (zip code: %s).", resourceNoun(productID), country, zipCode),
				Debug: entity.VerdictDebug{
					CountryDetected: country,
					ZipCode:         zipCode,
					TotalRules:      int(zipScoped),
				},
			}

			return verdict, nil
		}
	}

	verdict := s.fallbackVerdict(productID, collectionID, country, zipCode)
	verdict.Debug.TotalRules = len(rules)

	return verdict, nil
}

// excludedVerdict answers a query that hit an excluded association. A zip
// specification on the excluding rule can carve the shopper's zip back in.
func (s *resolutionService) excludedVerdict(rule *entity.Rule, ref entity.ResourceRef, productID, collectionID, country, zipCode string) *entity.Verdict {
	notificationsEnabled := false
	if assoc := rule.AssociationFor(ref); assoc != nil {
		notificationsEnabled = assoc.NotificationsEnabled
	}

	if zipCode != "" && MatchesZipCode(zipCode, rule.ZipCodes, rule.ZipCodeType) {
		verdict := s.fallbackVerdict(productID, collectionID, country, zipCode)

		return verdict
	}

	message := fmt.Sprintf("This %s is not available in %s%s and notifications are off.",
		resourceNoun(productID), country, zipSuffix(zipCode))
	if notificationsEnabled {
		message = fmt.Sprintf("This %s is not available in %s%s, but you can sign up for notifications.",
			resourceNoun(productID), country, zipSuffix(zipCode))
	}

	return &entity.Verdict{
		Available:            false,
		Country:              country,
		ProductID:            productID,
		CollectionID:         collectionID,
		ZipCode:              zipCode,
		Message:              message,
		NotificationsEnabled: notificationsEnabled,
		Debug: entity.VerdictDebug{
			CountryDetected: country,
			ZipCode:         zipCode,
		},
	}
}

// activeRuleVerdict answers from the selected governing rule.
func (s *resolutionService) activeRuleVerdict(rule *entity.Rule, productID, collectionID, country, zipCode string) *entity.Verdict {
	message := rule.Message
	if message == "" {
		message = withZipSuffix(fmt.Sprintf("Available for delivery in %s", country), zipCode)
	}

	deliveryTime := rule.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = standardShipping
	}

	notificationsEnabled := false
	for i := range rule.Associations {
		if rule.Associations[i].NotificationsEnabled {
			notificationsEnabled = true

			break
		}
	}

	estimated := s.now().Add(time.Duration(deliveryDays(rule.DeliveryTime)) * 24 * time.Hour)

	verdict := &entity.Verdict{
		Available:            true,
		Country:              country,
		ProductID:            productID,
		CollectionID:         collectionID,
		ZipCode:              zipCode,
		Message:              message,
		DeliveryTime:         deliveryTime,
		ShippingMethod:       rule.ShippingMethod,
		EventName:            rule.EventName,
		PickupAvailable:      rule.PickupAvailable,
		LocalDelivery:        rule.LocalDelivery,
		EstimatedDelivery:    &estimated,
		NotificationsEnabled: notificationsEnabled,
		Debug: entity.VerdictDebug{
			CountryDetected: country,
			RuleID:          rule.ID.String(),
			ZipCode:         zipCode,
		},
	}

	if rule.StartDate != nil {
		verdict.AvailableFrom = formatMerchantDate(*rule.StartDate)
		verdict.Debug.StartDate = rule.StartDate.Format(time.RFC3339)
	}
	if rule.EndDate != nil {
		end := endOfDay(*rule.EndDate)
		verdict.AvailableUntil = formatMerchantDate(end)
		verdict.EndDate = end.Format(time.RFC3339)
		verdict.Debug.EndDate = end.Format(time.RFC3339)
	}

	return verdict
}

// fallbackVerdict is the whole-country available answer used when no rule
// confidently governs the query.
func (s *resolutionService) fallbackVerdict(productID, collectionID, country, zipCode string) *entity.Verdict {
	return &entity.Verdict{
		Available:    true,
		Country:      country,
		ProductID:    productID,
		CollectionID: collectionID,
		ZipCode:      zipCode,
		Fallback:     true,
		Message:      withZipSuffix(fmt.Sprintf("Available for delivery in %s", country), zipCode),
		DeliveryTime: standardIntlShipping,
		Debug: entity.VerdictDebug{
			CountryDetected: country,
			ZipCode:         zipCode,
		},
	}
}

// filterActive keeps rules whose date window is open and whose zip scope
// admits the shopper's zip.
func (s *resolutionService) filterActive(rules []*entity.Rule, zipCode string) []*entity.Rule {
	now := s.now()
	today := now.In(merchantTZ).Format(time.DateOnly)

	valid := make([]*entity.Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.EndDate != nil && now.After(endOfDay(*rule.EndDate)) {
			continue
		}
		if rule.StartDate != nil && today < rule.StartDate.Format(time.DateOnly) {
			continue
		}
		if rule.HasZipScope() && zipCode != "" && !MatchesZipCode(zipCode, rule.ZipCodes, rule.ZipCodeType) {
			continue
		}

		valid = append(valid, rule)
	}

	return valid
}

// selectRule picks the governing rule deterministically: most specific
// association kind first, then newest, then lowest id.
func (s *resolutionService) selectRule(valid []*entity.Rule, refs []entity.ResourceRef) *entity.Rule {
	specificity := func(rule *entity.Rule) int {
		best := entity.ResourceKind("").Specificity()
		for _, ref := range refs {
			if assoc := rule.AssociationFor(ref); assoc != nil && ref.Kind.Specificity() < best {
				best = ref.Kind.Specificity()
			}
		}

		return best
	}

	sort.SliceStable(valid, func(i, j int) bool {
		si, sj := specificity(valid[i]), specificity(valid[j])
		if si != sj {
			return si < sj
		}
		if !valid[i].CreatedAt.Equal(valid[j].CreatedAt) {
			return valid[i].CreatedAt.After(valid[j].CreatedAt)
		}

		return valid[i].ID.String() < valid[j].ID.String()
	})

	return valid[0]
}

// ResolveCountry answers whether a resource is deliverable in a named country.
func (s *resolutionService) ResolveCountry(ctx context.Context, query *usecase.CountryQuery) (*entity.Verdict, error) {
	if query.Country != "" && !entity.IsValidCountry(query.Country) {
		return nil, domainerrors.ErrInvalidCountryName
	}

	productID := entity.NormalizeResourceID(entity.ResourceProduct, query.ProductID)
	collectionID := entity.NormalizeResourceID(entity.ResourceCollection, query.CollectionID)

	if query.Country == "" && productID == "" && collectionID == "" {
		return nil, domainerrors.ErrCountryParamRequired
	}

	verdict, err := s.resolveCountryAgainstRules(ctx, productID, collectionID, query.Country)
	if err != nil {
		s.logger.Error("country resolution failed, serving fallback",
			slog.String("product_id", productID),
			slog.String("collection_id", collectionID),
			slog.String("country", query.Country),
			slog.Any("error", err),
		)

		return &entity.Verdict{
			Available:    true,
			Country:      degradedCountryInfoLabel,
			Message:      "This product is available (fallback)",
			DeliveryTime: degradedCountryInfoSpeed,
			Fallback:     true,
			Degraded:     err.Error(),
			Debug:        entity.VerdictDebug{Error: err.Error()},
		}, nil
	}

	return verdict, nil
}

func (s *resolutionService) resolveCountryAgainstRules(ctx context.Context, productID, collectionID, country string) (*entity.Verdict, error) {
	refs := buildRefs(productID, collectionID)

	rules, err := s.ruleRepo.FindRulesForResources(ctx, refs, country)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rules")
	}

	countryLabel := country
	if countryLabel == "" {
		countryLabel = "Unknown"
	}

	// An excluded association anywhere in scope wins.
	for _, rule := range rules {
		if !hasExcludedAssociation(rule, refs) {
			continue
		}

		message := "This product is not available"
		if country != "" {
			message = fmt.Sprintf("This product is not available in %s", country)
		}

		verdict := &entity.Verdict{
			Available:    false,
			Country:      countryLabel,
			ProductID:    productID,
			CollectionID: collectionID,
			Message:      message,
			DeliveryTime: rule.DeliveryTime,
		}
		if rule.StartDate != nil {
			verdict.AvailableFrom = formatUTCDate(*rule.StartDate)
		}
		if rule.EndDate != nil {
			verdict.AvailableUntil = formatUTCDate(*rule.EndDate)
		}

		return verdict, nil
	}

	today := s.now().UTC().Truncate(24 * time.Hour)

	for _, rule := range rules {
		if rule.StartDate != nil && rule.StartDate.After(today) {
			continue
		}
		if rule.EndDate != nil && rule.EndDate.Before(today) {
			continue
		}

		deliveryTime := rule.DeliveryTime
		if deliveryTime == "" {
			deliveryTime = standardShipping
		}

		message := "This product is available"
		if country != "" {
			message = fmt.Sprintf("This product is available in %s", country)
		}

		verdict := &entity.Verdict{
			Available:    true,
			Country:      countryLabel,
			ProductID:    productID,
			CollectionID: collectionID,
			Message:      message,
			DeliveryTime: deliveryTime,
		}
		if rule.StartDate != nil {
			verdict.AvailableFrom = formatUTCDate(*rule.StartDate)
		}
		if rule.EndDate != nil {
			verdict.AvailableUntil = formatUTCDate(*rule.EndDate)
		}

		return verdict, nil
	}

	message := "Available for delivery"
	if country != "" {
		message = fmt.Sprintf("Available for delivery in %s", country)
	}

	return &entity.Verdict{
		Available:    true,
		Country:      countryLabel,
		ProductID:    productID,
		CollectionID: collectionID,
		Message:      message,
		DeliveryTime: standardIntlShipping,
	}, nil
}

// --- Helpers ---

func buildRefs(productID, collectionID string) []entity.ResourceRef {
	refs := make([]entity.ResourceRef, 0, 2)
	if productID != "" {
		refs = append(refs, entity.ResourceRef{Kind: entity.ResourceProduct, ID: productID})
	}
	if collectionID != "" {
		refs = append(refs, entity.ResourceRef{Kind: entity.ResourceCollection, ID: collectionID})
	}

	return refs
}

func hasExcludedAssociation(rule *entity.Rule, refs []entity.ResourceRef) bool {
	for _, ref := range refs {
		if assoc := rule.AssociationFor(ref); assoc != nil && assoc.Excluded {
			return true
		}
	}

	return false
}

func resourceNoun(productID string) string {
	if productID != "" {
		return "product"
	}

	return "collection"
}

func zipSuffix(zipCode string) string {
	if zipCode == "" {
		return ""
	}

	return fmt.Sprintf(" (zip code: %s)", zipCode)
}

func withZipSuffix(message, zipCode string) string {
	return message + zipSuffix(zipCode)
}

// deliveryDays extracts the leading day count from delivery time text, e.g.
// "2-3 days" yields 2. Unparseable text yields the default.
func deliveryDays(deliveryTime string) int {
	match := leadingDigitsPattern.FindString(deliveryTime)
	if match == "" {
		return defaultDeliveryDays
	}

	days, err := strconv.Atoi(match)
	if err != nil {
		return defaultDeliveryDays
	}

	return days
}

// endOfDay extends a date bound to the last instant of its UTC day.
func endOfDay(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999_000_000, time.UTC)
}

// formatMerchantDate renders a date in the merchant's timezone, e.g. "5 March 2025".
func formatMerchantDate(t time.Time) string {
	return t.In(merchantTZ).Format("2 January 2006")
}

// formatUTCDate renders a date bound as a short UTC date, e.g. "5 Mar 2025".
func formatUTCDate(t time.Time) string {
	return t.UTC().Format("2 Jan 2006")
}
