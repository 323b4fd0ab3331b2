package service

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
)

// MediaService manages the storytelling content shown on the public site.
type MediaService interface {
	AddVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.Video, error)
	ListVideos(ctx context.Context) ([]*models.Video, error)
	DeleteVideo(ctx context.Context, id int64) error

	AddInfographic(ctx context.Context, req *models.CreateInfographicRequest) (*models.Infographic, error)
	ListInfographics(ctx context.Context) ([]*models.Infographic, error)
	DeleteInfographic(ctx context.Context, id int64) error
}

type mediaService struct {
	repo repository.MediaRepository
}

func NewMediaService(repo repository.MediaRepository) MediaService {
	return &mediaService{repo: repo}
}

func (s *mediaService) AddVideo(ctx context.Context, req *models.CreateVideoRequest) (*models.Video, error) {

	video := &models.Video{
		Title:       req.Title,
		Description: req.Description,
		Filepath:    req.Filepath,
	}

	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return nil, errors.DatabaseError("Failed to create video").WithError(err)
	}

	return video, nil
}

func (s *mediaService) ListVideos(ctx context.Context) ([]*models.Video, error) {

	videos, err := s.repo.ListVideos(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch videos").WithError(err)
	}

	return videos, nil
}

func (s *mediaService) DeleteVideo(ctx context.Context, id int64) error {

	if err := s.repo.DeleteVideo(ctx, id); err != nil {
		return errors.NotFoundError("Video not found").WithError(err)
	}

	return nil
}

func (s *mediaService) AddInfographic(ctx context.Context, req *models.CreateInfographicRequest) (*models.Infographic, error) {

	infographic := &models.Infographic{
		Title:     req.Title,
		ImagePath: req.ImagePath,
	}

	if err := s.repo.CreateInfographic(ctx, infographic); err != nil {
		return nil, errors.DatabaseError("Failed to create infographic").WithError(err)
	}

	return infographic, nil
}

func (s *mediaService) ListInfographics(ctx context.Context) ([]*models.Infographic, error) {

	infographics, err := s.repo.ListInfographics(ctx)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch infographics").WithError(err)
	}

	return infographics, nil
}

func (s *mediaService) DeleteInfographic(ctx context.Context, id int64) error {

	if err := s.repo.DeleteInfographic(ctx, id); err != nil {
		return errors.NotFoundError("Infographic not found").WithError(err)
	}

	return nil
}
