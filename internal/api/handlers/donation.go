package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	service "github.com/cordilleraweaves/marketplace-api/internal/services"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
	"github.com/cordilleraweaves/marketplace-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type DonationHandler struct {
	donationService service.DonationService
	validator       *validator.Validate
}

func NewDonationHandler(donationService service.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService, validator: validator.New()}
}

func (h *DonationHandler) CreateDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated donation attempt")
			response.Error(w, errors.NotLoggedInError("Please log in to donate"))
			return
		}

		var req models.DonationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid donation input")
			return
		}

		donation, err := h.donationService.Submit(r.Context(), claims.UserID, claims.Email, &req)
		if err != nil {
			logger.Error("Failed to submit donation",
				slog.Int64("campaignId", req.CampaignID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Donation recorded",
			slog.String("donationId", donation.ID.String()),
			slog.Int64("campaignId", donation.CampaignID))
		response.Success(w, http.StatusCreated, donation)
	}
}

// ListMyDonations returns the caller's giving history.
func (h *DonationHandler) ListMyDonations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthenticated donation history request")
			response.Error(w, errors.NotLoggedInError("Authentication required"))
			return
		}

		donations, err := h.donationService.ListByCustomer(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list donations", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, donations)
	}
}

// ListDonations backs the admin dashboard view across all campaigns.
func (h *DonationHandler) ListDonations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.Pagination(r)

		donations, total, err := h.donationService.ListDonations(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list donations", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     donations,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func (h *DonationHandler) DeleteDonation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid donation id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.donationService.DeleteDonation(r.Context(), id); err != nil {
			logger.Error("Failed to delete donation", slog.String("donationId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Donation deleted", slog.String("donationId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"deleted": id.String()})
	}
}
