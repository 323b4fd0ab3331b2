package mocks

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MediaRepository struct {
	mock.Mock
}

func (m *MediaRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	args := m.Called(ctx, video)

	return args.Error(0)
}

func (m *MediaRepository) ListVideos(ctx context.Context) ([]*models.Video, error) {
	args := m.Called(ctx)

	var videos []*models.Video
	if args.Get(0) != nil {
		videos = args.Get(0).([]*models.Video)
	}

	return videos, args.Error(1)
}

func (m *MediaRepository) DeleteVideo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MediaRepository) CreateInfographic(ctx context.Context, infographic *models.Infographic) error {
	args := m.Called(ctx, infographic)

	return args.Error(0)
}

func (m *MediaRepository) ListInfographics(ctx context.Context) ([]*models.Infographic, error) {
	args := m.Called(ctx)

	var infographics []*models.Infographic
	if args.Get(0) != nil {
		infographics = args.Get(0).([]*models.Infographic)
	}

	return infographics, args.Error(1)
}

func (m *MediaRepository) DeleteInfographic(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
