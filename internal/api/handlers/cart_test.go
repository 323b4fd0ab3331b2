package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cordilleraweaves/marketplace-api/internal/api/handlers"
	appErrors "github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/services/mocks"
	"github.com/cordilleraweaves/marketplace-api/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func emptyCart(customerID uuid.UUID) *models.Cart {
	return &models.Cart{ID: uuid.New(), UserID: customerID, Items: map[string]models.CartItem{}}
}

func TestGetCartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		mockService.On("GetCart", mock.Anything, customerID).Return(emptyCart(customerID), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/carts", nil, customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/carts", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.GetCart().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeNotLoggedIn, resp.Error.Code)
		mockService.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestAddItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		cart := emptyCart(customerID)
		cart.Items["7"] = models.CartItem{ProductID: 7, Quantity: 1, UnitPrice: 1200, TotalPrice: 1200}

		mockService.On("AddItem", mock.Anything, customerID, mock.MatchedBy(func(r *models.AddItemRequest) bool {
			return r.ProductID == 7
		})).Return(cart, nil).Once()

		body, err := json.Marshal(models.AddItemRequest{ProductID: 7})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Archived Product", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		mockService.On("AddItem", mock.Anything, customerID, mock.Anything).
			Return(nil, appErrors.BadRequestError("Product is no longer available")).Once()

		body, err := json.Marshal(models.AddItemRequest{ProductID: 9})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeBadRequest, resp.Error.Code)
	})

	t.Run("Failure - Missing Product ID", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items", bytes.NewBufferString(`{}`), uuid.New(), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.AddItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateQuantityHandler(t *testing.T) {
	t.Run("Success - Negative Quantity Reaches The Service", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		mockService.On("UpdateQuantity", mock.Anything, customerID, mock.MatchedBy(func(r *models.UpdateQuantityRequest) bool {
			return r.ProductID == 7 && r.Quantity == -1
		})).Return(emptyCart(customerID), nil).Once()

		body, err := json.Marshal(models.UpdateQuantityRequest{ProductID: 7, Quantity: -1})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/carts/items", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rec, req)

		// Assert: the stepper going below zero is a removal, not a 400.
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Line Missing", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		mockService.On("UpdateQuantity", mock.Anything, customerID, mock.Anything).
			Return(nil, appErrors.NotFoundError("Product not in cart")).Once()

		body, err := json.Marshal(models.UpdateQuantityRequest{ProductID: 99, Quantity: 2})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/carts/items", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.UpdateQuantity().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRemoveItemHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		customerID := uuid.New()
		mockService.On("RemoveItem", mock.Anything, customerID, int64(7)).Return(emptyCart(customerID), nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/carts/items/7", nil, customerID,
			map[string]string{"productId": "7"})
		rec := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Malformed Product ID", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.CartService)
		handler := handlers.NewCartHandler(mockService)

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/carts/items/seven", nil, uuid.New(),
			map[string]string{"productId": "seven"})
		rec := httptest.NewRecorder()

		// Act
		handler.RemoveItem().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClearCartHandler(t *testing.T) {
	// Arrange
	mockService := new(mocks.CartService)
	handler := handlers.NewCartHandler(mockService)

	customerID := uuid.New()
	mockService.On("ClearCart", mock.Anything, customerID).Return(emptyCart(customerID), nil).Once()

	req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/carts", nil, customerID, nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ClearCart().ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}
