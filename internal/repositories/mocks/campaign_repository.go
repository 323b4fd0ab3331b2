package mocks

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type CampaignRepository struct {
	mock.Mock
}

func (m *CampaignRepository) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	args := m.Called(ctx, campaign)

	return args.Error(0)
}

func (m *CampaignRepository) GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)

	var campaign *models.Campaign
	if args.Get(0) != nil {
		campaign = args.Get(0).(*models.Campaign)
	}

	return campaign, args.Error(1)
}

func (m *CampaignRepository) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	args := m.Called(ctx)

	var campaigns []*models.Campaign
	if args.Get(0) != nil {
		campaigns = args.Get(0).([]*models.Campaign)
	}

	return campaigns, args.Error(1)
}

func (m *CampaignRepository) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	args := m.Called(ctx, campaign)

	return args.Error(0)
}

func (m *CampaignRepository) DeleteCampaign(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
