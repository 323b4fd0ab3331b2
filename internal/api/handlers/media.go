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

type MediaHandler struct {
	mediaService service.MediaService
	validator    *validator.Validate
}

func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, validator: validator.New()}
}

func (h *MediaHandler) ListVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		videos, err := h.mediaService.ListVideos(r.Context())
		if err != nil {
			logger.Error("Failed to list videos", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, videos)
	}
}

func (h *MediaHandler) CreateVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateVideoRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create video input")
			return
		}

		video, err := h.mediaService.AddVideo(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create video", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Video created successfully", slog.Int64("videoId", video.ID))
		response.Success(w, http.StatusCreated, video)
	}
}

func (h *MediaHandler) DeleteVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			logger.Warn("Invalid video id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.mediaService.DeleteVideo(r.Context(), id); err != nil {
			logger.Error("Failed to delete video", slog.Int64("videoId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Video deleted", slog.Int64("videoId", id))
		response.Success(w, http.StatusOK, map[string]int64{"deleted": id})
	}
}

func (h *MediaHandler) ListInfographics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		infographics, err := h.mediaService.ListInfographics(r.Context())
		if err != nil {
			logger.Error("Failed to list infographics", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, infographics)
	}
}

func (h *MediaHandler) CreateInfographic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateInfographicRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create infographic input")
			return
		}

		infographic, err := h.mediaService.AddInfographic(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create infographic", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Infographic created successfully", slog.Int64("infographicId", infographic.ID))
		response.Success(w, http.StatusCreated, infographic)
	}
}

func (h *MediaHandler) DeleteInfographic() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseIntID(r, "id")
		if err != nil {
			logger.Warn("Invalid infographic id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.mediaService.DeleteInfographic(r.Context(), id); err != nil {
			logger.Error("Failed to delete infographic", slog.Int64("infographicId", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Infographic deleted", slog.Int64("infographicId", id))
		response.Success(w, http.StatusOK, map[string]int64{"deleted": id})
	}
}
