package service

import (
	"context"
	"log/slog"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/cache"
	"github.com/cordilleraweaves/marketplace-api/internal/config"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error)
	GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*models.Campaign, error)
	UpdateCampaign(ctx context.Context, id int64, req *models.UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) error
}

type campaignService struct {
	repo      repository.CampaignRepository
	cache     cache.Cache
	cfg       *config.CacheConfig
	sanitizer *bluemonday.Policy
}

func NewCampaignService(repo repository.CampaignRepository, campaignCache cache.Cache, cfg *config.CacheConfig) CampaignService {
	return &campaignService{
		repo:      repo,
		cache:     campaignCache,
		cfg:       cfg,
		// Descriptions are rendered on the public fundraising page, so any
		// markup an admin pastes in gets stripped here.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, req *models.CreateCampaignRequest) (*models.Campaign, error) {

	campaign := &models.Campaign{
		Title:       s.sanitizer.Sanitize(req.Title),
		Description: s.sanitizer.Sanitize(req.Description),
		GoalAmount:  req.GoalAmount,
		DaysLeft:    req.DaysLeft,
		Image:       req.Image,
		IsUrgent:    req.IsUrgent,
		Status:      models.CampaignStatusActive,
	}

	if err := s.repo.CreateCampaign(ctx, campaign); err != nil {
		return nil, errors.DatabaseError("Failed to create campaign").WithError(err)
	}

	s.invalidateList(ctx)

	return campaign, nil
}

func (s *campaignService) GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error) {

	campaign, err := s.repo.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Campaign not found").WithError(err)
	}

	return campaign, nil
}

// ListCampaigns serves the public fundraising page. The list is cached on a
// short TTL because donation writes move the collected totals.
func (s *campaignService) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {

	var cached []*models.Campaign

	found, err := s.cache.Get(ctx, cache.FundraisingListKey, &cached)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Campaign cache lookup failed", slog.Any("error", err))
	}

	if found {
		return cached, nil
	}

	campaigns, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch campaigns").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.FundraisingListKey, campaigns, s.cfg.CampaignTTL); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Campaign cache store failed", slog.Any("error", err))
	}

	return campaigns, nil
}

func (s *campaignService) UpdateCampaign(ctx context.Context, id int64, req *models.UpdateCampaignRequest) (*models.Campaign, error) {

	campaign, err := s.repo.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Campaign not found").WithError(err)
	}

	if req.Title != nil {
		campaign.Title = s.sanitizer.Sanitize(*req.Title)
	}
	if req.Description != nil {
		campaign.Description = s.sanitizer.Sanitize(*req.Description)
	}
	if req.GoalAmount != nil {
		campaign.GoalAmount = *req.GoalAmount
	}
	if req.DaysLeft != nil {
		campaign.DaysLeft = *req.DaysLeft
	}
	if req.Image != nil {
		campaign.Image = *req.Image
	}
	if req.IsUrgent != nil {
		campaign.IsUrgent = *req.IsUrgent
	}
	if req.Status != nil {
		campaign.Status = *req.Status
	}

	if err := s.repo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, errors.DatabaseError("Failed to update campaign").WithError(err)
	}

	s.invalidateList(ctx)

	return campaign, nil
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id int64) error {

	if err := s.repo.DeleteCampaign(ctx, id); err != nil {
		return errors.NotFoundError("Campaign not found").WithError(err)
	}

	s.invalidateList(ctx)

	return nil
}

func (s *campaignService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.FundraisingListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Campaign cache invalidation failed", slog.Any("error", err))
	}
}
