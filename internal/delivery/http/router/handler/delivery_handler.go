// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shipway/internal/domain/entity"
	domainerrors "shipway/internal/domain/errors"
	"shipway/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// fallbackClientIP is the address used when no client IP header is present,
// so local development still resolves to a real country.
const fallbackClientIP = "8.8.8.8"

// DeliveryHandler serves the storefront availability widget. Its responses
// are flat JSON bodies consumed directly by the widget, not the admin envelope.
type DeliveryHandler struct {
	resolution    usecase.ResolutionUsecase
	notifications usecase.NotificationUsecase
	logger        *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler, injected by Fx.
func NewDeliveryHandler(resolution usecase.ResolutionUsecase, notifications usecase.NotificationUsecase, logger *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{
		resolution:    resolution,
		notifications: notifications,
		logger:        logger,
	}
}

// deliveryInfoResponse is the storefront verdict body.
type deliveryInfoResponse struct {
	Available            bool                `json:"available"`
	Country              string              `json:"country"`
	ProductID            string              `json:"productId,omitempty"`
	CollectionID         string              `json:"collectionId,omitempty"`
	ZipCode              string              `json:"zipCode,omitempty"`
	Fallback             bool                `json:"fallback,omitempty"`
	Message              string              `json:"message"`
	DeliveryTime         string              `json:"deliveryTime,omitempty"`
	ShippingMethod       string              `json:"shippingMethod,omitempty"`
	EventName            string              `json:"eventName,omitempty"`
	AvailableFrom        string              `json:"availableFrom,omitempty"`
	AvailableUntil       string              `json:"availableUntil,omitempty"`
	EndDate              string              `json:"endDate,omitempty"`
	EstimatedDelivery    string              `json:"estimatedDelivery,omitempty"`
	PickupAvailable      bool                `json:"pickupAvailable,omitempty"`
	LocalDelivery        string              `json:"localDelivery,omitempty"`
	NotificationsEnabled bool                `json:"notificationsEnabled"`
	Debug                entity.VerdictDebug `json:"debug"`
}

func toDeliveryInfoResponse(verdict *entity.Verdict) *deliveryInfoResponse {
	resp := &deliveryInfoResponse{
		Available:            verdict.Available,
		Country:              verdict.Country,
		ProductID:            verdict.ProductID,
		CollectionID:         verdict.CollectionID,
		ZipCode:              verdict.ZipCode,
		Fallback:             verdict.Fallback,
		Message:              verdict.Message,
		DeliveryTime:         verdict.DeliveryTime,
		ShippingMethod:       verdict.ShippingMethod,
		EventName:            verdict.EventName,
		AvailableFrom:        verdict.AvailableFrom,
		AvailableUntil:       verdict.AvailableUntil,
		EndDate:              verdict.EndDate,
		PickupAvailable:      verdict.PickupAvailable,
		LocalDelivery:        verdict.LocalDelivery,
		NotificationsEnabled: verdict.NotificationsEnabled,
		Debug:                verdict.Debug,
	}
	if verdict.EstimatedDelivery != nil {
		resp.EstimatedDelivery = verdict.EstimatedDelivery.Format(time.RFC3339)
	}

	return resp
}

// GetDeliveryInfo answers GET /api/delivery-info.
// An internal failure is served as HTTP 500 with a full fallback-available
// body, so the widget never sees an opaque error.
func (h *DeliveryHandler) GetDeliveryInfo(c echo.Context) error {
	query := &usecase.DeliveryQuery{
		ProductID:    c.QueryParam("productId"),
		CollectionID: c.QueryParam("collectionId"),
		Country:      c.QueryParam("country"),
		ZipCode:      c.QueryParam("zipCode"),
		IP:           clientIP(c),
	}

	verdict, err := h.resolution.ResolveDelivery(c.Request().Context(), query)
	if err != nil {
		return storefrontError(c, err)
	}

	status := http.StatusOK
	if verdict.Degraded != "" {
		status = http.StatusInternalServerError
	}

	return c.JSON(status, toDeliveryInfoResponse(verdict))
}

// notifyRequest is the form body of the storefront signup action.
type notifyRequest struct {
	ActionType   string `form:"actionType" json:"actionType"`
	Email        string `form:"email" json:"email"`
	ProductID    string `form:"productId" json:"productId"`
	CollectionID string `form:"collectionId" json:"collectionId"`
	Country      string `form:"country" json:"country"`
}

// PostDeliveryInfo answers POST /api/delivery-info (actionType=notify).
func (h *DeliveryHandler) PostDeliveryInfo(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if req.ActionType != "notify" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid action type"})
	}

	result, err := h.notifications.Signup(c.Request().Context(), &usecase.SignupInput{
		Email:        req.Email,
		ProductID:    req.ProductID,
		CollectionID: req.CollectionID,
		Country:      req.Country,
	})
	if err != nil {
		return storefrontError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": result.Success,
		"message": result.Message,
	})
}

// countryInfoResponse is the reduced body of the country-only endpoint.
type countryInfoResponse struct {
	Available      bool   `json:"available"`
	Country        string `json:"country"`
	ProductID      string `json:"productId,omitempty"`
	CollectionID   string `json:"collectionId,omitempty"`
	Message        string `json:"message"`
	DeliveryTime   string `json:"deliveryTime"`
	AvailableFrom  string `json:"availableFrom,omitempty"`
	AvailableUntil string `json:"availableUntil,omitempty"`
	Fallback       bool   `json:"fallback,omitempty"`
}

// GetCountryInfo answers GET /api/delivery-country-info.
func (h *DeliveryHandler) GetCountryInfo(c echo.Context) error {
	query := &usecase.CountryQuery{
		ProductID:    c.QueryParam("productId"),
		CollectionID: c.QueryParam("collectionId"),
		Country:      c.QueryParam("country"),
	}

	verdict, err := h.resolution.ResolveCountry(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCountryName) {
			return c.JSON(http.StatusBadRequest, map[string]any{
				"error":    domainerrors.ErrInvalidCountryName.Message(),
				"fallback": true,
			})
		}

		return storefrontError(c, err)
	}

	status := http.StatusOK
	if verdict.Degraded != "" {
		status = http.StatusInternalServerError
	}

	return c.JSON(status, &countryInfoResponse{
		Available:      verdict.Available,
		Country:        verdict.Country,
		ProductID:      verdict.ProductID,
		CollectionID:   verdict.CollectionID,
		Message:        verdict.Message,
		DeliveryTime:   verdict.DeliveryTime,
		AvailableFrom:  verdict.AvailableFrom,
		AvailableUntil: verdict.AvailableUntil,
		Fallback:       verdict.Fallback,
	})
}

// storefrontError renders validation failures as the flat {"error": ...} body
// the widget expects; anything else goes to the error middleware.
func storefrontError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})
	}

	return errors.WithStack(err)
}

// clientIP resolves the shopper's IP from proxy headers, in CDN priority order.
func clientIP(c echo.Context) string {
	if ip := c.Request().Header.Get("cf-connecting-ip"); ip != "" {
		return ip
	}
	if forwarded := c.Request().Header.Get("x-forwarded-for"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := c.Request().Header.Get("x-real-ip"); ip != "" {
		return ip
	}

	return fallbackClientIP
}
