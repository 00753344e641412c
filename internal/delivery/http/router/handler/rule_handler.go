package handler

import (
	"log/slog"
	"net/http"

	"shipway/internal/delivery/http/middleware"
	"shipway/internal/delivery/http/response"
	"shipway/internal/domain/entity"
	"shipway/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RuleHandler holds dependencies for the admin rule authoring handlers.
// The shop domain comes from the session token via the auth middleware.
type RuleHandler struct {
	uc     usecase.RuleUsecase
	logger *slog.Logger
}

// NewRuleHandler is the constructor for RuleHandler, injected by Fx.
func NewRuleHandler(uc usecase.RuleUsecase, logger *slog.Logger) *RuleHandler {
	return &RuleHandler{
		uc:     uc,
		logger: logger,
	}
}

type ruleResourceRequest struct {
	Kind                 string `json:"kind" validate:"required,oneof=product collection vendor tag"`
	ID                   string `json:"id" validate:"required"`
	Title                string `json:"title"`
	Excluded             bool   `json:"excluded"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

type saveRuleRequest struct {
	Country         string                `json:"country" validate:"required"`
	DeliveryTime    string                `json:"deliveryTime"`
	Message         string                `json:"message"`
	EventName       string                `json:"eventName"`
	StartDate       string                `json:"startDate"`
	EndDate         string                `json:"endDate"`
	ShippingMethod  string                `json:"shippingMethod"`
	PickupAvailable bool                  `json:"pickupAvailable"`
	LocalDelivery   string                `json:"localDelivery"`
	ZipCodes        string                `json:"zipCodes"`
	ZipCodeType     string                `json:"zipCodeType" validate:"omitempty,oneof=inclusive exclusive"`
	Resources       []ruleResourceRequest `json:"resources" validate:"required,min=1,dive"`
}

// SaveRule handles POST /api/rules.
func (h *RuleHandler) SaveRule(c echo.Context) error {
	var req saveRuleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rule input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.SaveRuleInput{
		Shop:            middleware.ShopFromContext(c),
		Country:         req.Country,
		DeliveryTime:    req.DeliveryTime,
		Message:         req.Message,
		EventName:       req.EventName,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ShippingMethod:  req.ShippingMethod,
		PickupAvailable: req.PickupAvailable,
		LocalDelivery:   req.LocalDelivery,
		ZipCodes:        req.ZipCodes,
		ZipCodeType:     entity.ZipCodeType(req.ZipCodeType),
		Resources:       make([]usecase.RuleResourceInput, 0, len(req.Resources)),
	}
	for _, res := range req.Resources {
		input.Resources = append(input.Resources, usecase.RuleResourceInput{
			Kind:                 entity.ResourceKind(res.Kind),
			ID:                   res.ID,
			Title:                res.Title,
			Excluded:             res.Excluded,
			NotificationsEnabled: res.NotificationsEnabled,
		})
	}

	result, err := h.uc.SaveRule(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	if result.Updated {
		return response.Success(c, http.StatusOK, result.Rule, "Rule updated successfully")
	}

	return response.Success(c, http.StatusCreated, result.Rule, "Rule created successfully")
}

// ListRules handles GET /api/rules.
func (h *RuleHandler) ListRules(c echo.Context) error {
	rules, err := h.uc.ListRules(c.Request().Context(), middleware.ShopFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rules, "")
}

// GetCatalog handles GET /api/catalog.
func (h *RuleHandler) GetCatalog(c echo.Context) error {
	snapshot, err := h.uc.GetCatalog(c.Request().Context(), middleware.ShopFromContext(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, snapshot, "")
}

type searchCatalogRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=vendor tag"`
	Query string `json:"query" validate:"required"`
}

// SearchCatalog handles POST /api/catalog/search.
func (h *RuleHandler) SearchCatalog(c echo.Context) error {
	var req searchCatalogRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	names, err := h.uc.SearchCatalog(c.Request().Context(), middleware.ShopFromContext(c), entity.ResourceKind(req.Kind), req.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, names, "")
}
