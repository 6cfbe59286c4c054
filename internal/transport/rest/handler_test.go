package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	perrors "github.com/sound1ust/product-service/internal/errors"
	"github.com/sound1ust/product-service/internal/service"
	"github.com/stretchr/testify/assert"
)

// mockProductService is a mock implementation of the ProductService interface
type mockProductService struct {
	product  *service.ProductDto
	products []service.ProductDto
	error    error

	gotKeyword  string
	gotCategory string
	gotLimit    int32
}

func (m *mockProductService) Create(_ context.Context, _ service.ProductCreateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindByID(_ context.Context, _ int64) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) FindAll(_ context.Context, keyword, category string, limit int32) ([]service.ProductDto, error) {
	m.gotKeyword = keyword
	m.gotCategory = category
	m.gotLimit = limit
	if m.error != nil {
		return nil, m.error
	}
	return m.products, nil
}

func (m *mockProductService) Update(_ context.Context, _ int64, _ service.ProductUpdateDto) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

func (m *mockProductService) DeleteByID(_ context.Context, _ int64) (*service.ProductDto, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.product, nil
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	ValidationErrors map[string]string `json:"validation_errors"`
}

// toJSON is a helper function to convert a struct to JSON string
func toJSON(t *testing.T, v interface{}) string {
	t.Helper()
	bytes, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal to JSON: %v", err)
	}
	return string(bytes)
}

func newTestHandler(mockService *mockProductService) *Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return NewHandler(mockService, logger)
}

func Test_ProductAPI_Create(t *testing.T) {
	price := decimal.RequireFromString("599.99")
	testCases := []struct {
		name         string
		mockService  mockProductService
		requestBody  string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product created",
			mockService: mockProductService{
				product: &service.ProductDto{ID: 1, Name: "Smartphone X", Category: "electronics", Price: price},
			},
			requestBody:  `{"name":"Smartphone X","category":"electronics","price":599.99}`,
			expectedCode: http.StatusCreated,
			expectedBody: toJSON(t, service.ProductDto{ID: 1, Name: "Smartphone X", Category: "electronics", Price: price}),
		},
		{
			name: "Error - name already taken",
			mockService: mockProductService{
				error: perrors.ErrProductExists,
			},
			requestBody:  `{"name":"Smartphone X","price":599.99}`,
			expectedCode: http.StatusConflict,
			expectedBody: toJSON(t, ErrorResponse{Error: `Product with name "Smartphone X" already exists`}),
		},
		{
			name:         "Error - malformed body",
			mockService:  mockProductService{},
			requestBody:  `{"name":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid request body"}),
		},
		{
			name:         "Error - missing name",
			mockService:  mockProductService{},
			requestBody:  `{"category":"electronics","price":599.99}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Name": "failed on rule: required"}}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			requestBody:  `{"name":"Smartphone X","price":599.99}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to create product"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(tc.requestBody))
			rr := httptest.NewRecorder()

			// when
			api.Create(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_FindByID(t *testing.T) {
	price := decimal.RequireFromString("599.99")
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product found",
			mockService: mockProductService{
				product: &service.ProductDto{ID: 1, Name: "Smartphone X", Category: "electronics", Price: price},
			},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, service.ProductDto{ID: 1, Name: "Smartphone X", Category: "electronics", Price: price}),
		},
		{
			name: "Error - product not found",
			mockService: mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 999 not found"}),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockProductService{},
			productID:    "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: abc"}),
		},
		{
			name:         "Error - non-positive id",
			mockService:  mockProductService{},
			productID:    "0",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: 0"}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			productID:    "2",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to retrieve product with ID 2"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.FindByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_FindAll(t *testing.T) {
	price := decimal.RequireFromString("24.99")
	testCases := []struct {
		name         string
		mockService  mockProductService
		query        string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - products found",
			mockService: mockProductService{
				products: []service.ProductDto{
					{ID: 1, Name: "Smartphone Case", Category: "accessories", Price: price},
					{ID: 3, Name: "Phone Charger", Price: price},
				},
			},
			query:        "?keyword=phone",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, []service.ProductDto{
				{ID: 1, Name: "Smartphone Case", Category: "accessories", Price: price},
				{ID: 3, Name: "Phone Charger", Price: price},
			}),
		},
		{
			name: "Error - no products matched",
			mockService: mockProductService{
				error: perrors.ErrProductsNotFound,
			},
			query:        "?keyword=phone",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "No products found"}),
		},
		{
			name:         "Error - missing keyword",
			mockService:  mockProductService{},
			query:        "",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "keyword url parameter is required"}),
		},
		{
			name:         "Error - blank keyword",
			mockService:  mockProductService{},
			query:        "?keyword=%20%20",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "keyword url parameter is required"}),
		},
		{
			name:         "Error - limit not a number",
			mockService:  mockProductService{},
			query:        "?keyword=phone&limit=abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid limit number: abc"}),
		},
		{
			name:         "Error - limit not positive",
			mockService:  mockProductService{},
			query:        "?keyword=phone&limit=0",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid limit number: 0"}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			query:        "?keyword=phone",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to fetch products"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products"+tc.query, nil)
			rr := httptest.NewRecorder()

			// when
			api.FindAll(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_FindAll_PassesFilters(t *testing.T) {
	// given
	mockService := &mockProductService{
		products: []service.ProductDto{{ID: 1, Name: "Phone Charger", Category: "electronics", Price: decimal.RequireFromString("24.99")}},
	}
	api := newTestHandler(mockService)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?keyword=phone&category=electronics&limit=5", nil)
	rr := httptest.NewRecorder()

	// when
	api.FindAll(rr, req)

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "phone", mockService.gotKeyword)
	assert.Equal(t, "electronics", mockService.gotCategory)
	assert.Equal(t, int32(5), mockService.gotLimit)
}

func Test_ProductAPI_Update(t *testing.T) {
	price := decimal.RequireFromString("799.00")
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		requestBody  string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - product updated",
			mockService: mockProductService{
				product: &service.ProductDto{ID: 1, Name: "Smartphone X Pro", Category: "electronics", Price: price},
			},
			productID:    "1",
			requestBody:  `{"name":"Smartphone X Pro","category":"electronics","price":799.00}`,
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, service.ProductDto{ID: 1, Name: "Smartphone X Pro", Category: "electronics", Price: price}),
		},
		{
			name: "Error - product not found",
			mockService: mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			requestBody:  `{"name":"Smartphone X Pro","price":799.00}`,
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 999 not found"}),
		},
		{
			name: "Error - name already taken",
			mockService: mockProductService{
				error: perrors.ErrProductExists,
			},
			productID:    "1",
			requestBody:  `{"name":"Smartphone X Pro","price":799.00}`,
			expectedCode: http.StatusConflict,
			expectedBody: toJSON(t, ErrorResponse{Error: `Product with name "Smartphone X Pro" already exists`}),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockProductService{},
			productID:    "abc",
			requestBody:  `{"name":"Smartphone X Pro","price":799.00}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: abc"}),
		},
		{
			name:         "Error - missing name",
			mockService:  mockProductService{},
			productID:    "1",
			requestBody:  `{"price":799.00}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ValidationErrorResponse{ValidationErrors: map[string]string{"Name": "failed on rule: required"}}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			productID:    "1",
			requestBody:  `{"name":"Smartphone X Pro","price":799.00}`,
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to update product with ID 1"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+tc.productID, strings.NewReader(tc.requestBody))
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.Update(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}

func Test_ProductAPI_DeleteByID(t *testing.T) {
	price := decimal.RequireFromString("599.00")
	testCases := []struct {
		name         string
		mockService  mockProductService
		productID    string
		expectedCode int
		expectedBody string
	}{
		{
			name: "Success - returns the deleted product",
			mockService: mockProductService{
				product: &service.ProductDto{ID: 1, Name: "Google Pixel 8", Category: "electronics", Price: price},
			},
			productID:    "1",
			expectedCode: http.StatusOK,
			expectedBody: toJSON(t, service.ProductDto{ID: 1, Name: "Google Pixel 8", Category: "electronics", Price: price}),
		},
		{
			name: "Error - product not found",
			mockService: mockProductService{
				error: perrors.ErrProductNotFound,
			},
			productID:    "999",
			expectedCode: http.StatusNotFound,
			expectedBody: toJSON(t, ErrorResponse{Error: "Product with ID 999 not found"}),
		},
		{
			name:         "Error - invalid id",
			mockService:  mockProductService{},
			productID:    "abc",
			expectedCode: http.StatusBadRequest,
			expectedBody: toJSON(t, ErrorResponse{Error: "Invalid ID: abc"}),
		},
		{
			name: "Error - service error",
			mockService: mockProductService{
				error: errors.New("service unavailable"),
			},
			productID:    "2",
			expectedCode: http.StatusInternalServerError,
			expectedBody: toJSON(t, ErrorResponse{Error: "Failed to delete product with ID 2"}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			api := newTestHandler(&tc.mockService)
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/"+tc.productID, nil)
			req.SetPathValue("id", tc.productID)
			rr := httptest.NewRecorder()

			// when
			api.DeleteByID(rr, req)

			// then
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "response body should match")
		})
	}
}
