package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	service "github.com/cordilleraweaves/marketplace-api/internal/services"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
	"github.com/cordilleraweaves/marketplace-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CampaignHandler struct {
	campaignService service.CampaignService
	validator       *validator.Validate
}

func NewCampaignHandler(campaignService service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService, validator: validator.New()}
}

// ListCampaigns serves the public fundraising page, urgent campaigns first.
func (h *CampaignHandler) ListCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		campaigns, err := h.campaignService.ListCampaigns(r.Context())
		if err != nil {
			logger.Error("Failed to list campaigns", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, campaigns)
	}
}

func (h *CampaignHandler) GetCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			logger.Warn("Invalid campaign id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		campaign, err := h.campaignService.GetCampaignByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get campaign", slog.Int64("campaignId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, campaign)
	}
}

func (h *CampaignHandler) CreateCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCampaignRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create campaign input")
			return
		}

		campaign, err := h.campaignService.CreateCampaign(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create campaign", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Campaign created successfully", slog.Int64("campaignId", campaign.ID))
		response.Success(w, http.StatusCreated, campaign)
	}
}

func (h *CampaignHandler) UpdateCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			logger.Warn("Invalid campaign id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateCampaignRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update campaign input")
			return
		}

		campaign, err := h.campaignService.UpdateCampaign(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update campaign", slog.Int64("campaignId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Campaign updated successfully", slog.Int64("campaignId", id))
		response.Success(w, http.StatusOK, campaign)
	}
}

func (h *CampaignHandler) DeleteCampaign() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			logger.Warn("Invalid campaign id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.campaignService.DeleteCampaign(r.Context(), id); err != nil {
			logger.Error("Failed to delete campaign", slog.Int64("campaignId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Campaign deleted successfully", slog.Int64("campaignId", id))
		response.Success(w, http.StatusOK, map[string]int64{"deleted": id})
	}
}
