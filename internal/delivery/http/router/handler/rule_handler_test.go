package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipway/internal/delivery/http/middleware"
	"shipway/internal/delivery/http/validator"
	"shipway/internal/domain/entity"
	mockUC "shipway/internal/mocks/usecase"
	"shipway/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRuleHandler(t *testing.T) (*RuleHandler, *mockUC.MockRuleUsecase) {
	uc := mockUC.NewMockRuleUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewRuleHandler(uc, logger), uc
}

func ruleContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(method, target, bytes.NewBuffer(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ShopContextKey, "demo.myshopify.com")

	return c, rec
}

func validRuleBody() map[string]any {
	return map[string]any{
		"country":      "Pakistan",
		"deliveryTime": "2-3 days",
		"resources": []map[string]any{
			{"kind": "product", "id": "123", "title": "Demo Product"},
		},
	}
}

func TestRuleHandler_SaveRule_Creates(t *testing.T) {
	handler, uc := createTestRuleHandler(t)

	uc.EXPECT().SaveRule(mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			input := args.Get(1).(*usecase.SaveRuleInput)
			assert.Equal(t, "demo.myshopify.com", input.Shop)
			assert.Equal(t, "Pakistan", input.Country)
			require.Len(t, input.Resources, 1)
			assert.Equal(t, entity.ResourceProduct, input.Resources[0].Kind)
		}).
		Return(&usecase.SaveRuleResult{Rule: &entity.Rule{Country: "Pakistan"}}, nil)

	c, rec := ruleContext(t, http.MethodPost, "/api/rules", validRuleBody())

	err := handler.SaveRule(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rule created successfully")
}

func TestRuleHandler_SaveRule_Updates(t *testing.T) {
	handler, uc := createTestRuleHandler(t)

	uc.EXPECT().SaveRule(mock.Anything, mock.Anything).
		Return(&usecase.SaveRuleResult{Rule: &entity.Rule{Country: "Pakistan"}, Updated: true}, nil)

	c, rec := ruleContext(t, http.MethodPost, "/api/rules", validRuleBody())

	err := handler.SaveRule(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rule updated successfully")
}

func TestRuleHandler_SaveRule_MissingResources(t *testing.T) {
	handler, _ := createTestRuleHandler(t)

	body := validRuleBody()
	delete(body, "resources")

	c, _ := ruleContext(t, http.MethodPost, "/api/rules", body)

	err := handler.SaveRule(c)

	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestRuleHandler_ListRules(t *testing.T) {
	handler, uc := createTestRuleHandler(t)

	uc.EXPECT().ListRules(mock.Anything, "demo.myshopify.com").
		Return([]*entity.Rule{{Country: "Pakistan"}, {Country: "France"}}, nil)

	c, rec := ruleContext(t, http.MethodGet, "/api/rules", nil)

	err := handler.ListRules(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pakistan")
	assert.Contains(t, rec.Body.String(), "France")
}

func TestRuleHandler_SearchCatalog(t *testing.T) {
	handler, uc := createTestRuleHandler(t)

	uc.EXPECT().SearchCatalog(mock.Anything, "demo.myshopify.com", entity.ResourceVendor, "acme").
		Return([]string{"Acme Corp"}, nil)

	c, rec := ruleContext(t, http.MethodPost, "/api/catalog/search", map[string]any{
		"kind":  "vendor",
		"query": "acme",
	})

	err := handler.SearchCatalog(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Acme Corp")
}
