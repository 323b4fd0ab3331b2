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
	"github.com/cordilleraweaves/marketplace-api/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func donationBody(t *testing.T) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(models.DonationRequest{
		CampaignID:    3,
		Amount:        500,
		PaymentOption: models.PaymentOptionGCash,
		PaymentDetail: "09171234567",
	})
	require.NoError(t, err)

	return bytes.NewBuffer(body)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestCreateDonationHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		customerID := uuid.New()
		donation := &models.Donation{ID: uuid.New(), CampaignID: 3, CustomerID: customerID, Amount: 500}

		mockService.On("Submit", mock.Anything, customerID, "test@example.com", mock.AnythingOfType("*models.DonationRequest")).
			Return(donation, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/donations", donationBody(t), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateDonation().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/donations", donationBody(t), nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateDonation().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeNotLoggedIn, resp.Error.Code)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Zero Amount Gets The Donation Code", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		customerID := uuid.New()
		mockService.On("Submit", mock.Anything, customerID, "test@example.com", mock.MatchedBy(func(r *models.DonationRequest) bool {
			return r.Amount == 0
		})).Return(nil, appErrors.InvalidAmountError("Donation amount must be greater than zero")).Once()

		body, err := json.Marshal(models.DonationRequest{
			CampaignID:    3,
			Amount:        0,
			PaymentOption: models.PaymentOptionGCash,
			PaymentDetail: "09171234567",
		})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/donations", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateDonation().ServeHTTP(rec, req)

		// Assert: the zero amount must reach the service and come back with
		// the code the dashboard keys on, not a generic validation envelope.
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeInvalidAmount, resp.Error.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Service Rejects Amount", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		customerID := uuid.New()
		mockService.On("Submit", mock.Anything, customerID, "test@example.com", mock.Anything).
			Return(nil, appErrors.InvalidAmountError("Donation amount must be greater than zero")).Once()

		body, err := json.Marshal(models.DonationRequest{
			CampaignID:    3,
			Amount:        -5,
			PaymentOption: models.PaymentOptionGCash,
			PaymentDetail: "09171234567",
		})
		require.NoError(t, err)

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/donations", bytes.NewBuffer(body), customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.CreateDonation().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, appErrors.ErrCodeInvalidAmount, resp.Error.Code)
	})
}

func TestListMyDonationsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		customerID := uuid.New()
		history := []*models.Donation{{ID: uuid.New(), CampaignID: 3, CustomerID: customerID, Amount: 500}}
		mockService.On("ListByCustomer", mock.Anything, customerID).Return(history, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/donations/me", nil, customerID, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListMyDonations().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Not Logged In", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/donations/me", nil, nil)
		rec := httptest.NewRecorder()

		// Act
		handler.ListMyDonations().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "ListByCustomer", mock.Anything, mock.Anything)
	})
}

func TestDeleteDonationHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		donationID := uuid.New()
		adminID := uuid.New()
		mockService.On("DeleteDonation", mock.Anything, donationID).Return(nil).Once()

		req := testutils.CreateTestAdminRequestWithContext(http.MethodDelete, "/api/v1/donations/"+donationID.String(), nil, adminID,
			map[string]string{"id": donationID.String()})
		rec := httptest.NewRecorder()

		// Act
		handler.DeleteDonation().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Malformed ID", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.DonationService)
		handler := handlers.NewDonationHandler(mockService)

		req := testutils.CreateTestAdminRequestWithContext(http.MethodDelete, "/api/v1/donations/not-a-uuid", nil, uuid.New(),
			map[string]string{"id": "not-a-uuid"})
		rec := httptest.NewRecorder()

		// Act
		handler.DeleteDonation().ServeHTTP(rec, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "DeleteDonation", mock.Anything, mock.Anything)
	})
}
