package repository

import (
	"context"
	"database/sql"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
)

// MediaRepository covers the story-content tables: videos and infographics.
type MediaRepository interface {
	CreateVideo(ctx context.Context, video *models.Video) error
	ListVideos(ctx context.Context) ([]*models.Video, error)
	DeleteVideo(ctx context.Context, id int64) error

	CreateInfographic(ctx context.Context, infographic *models.Infographic) error
	ListInfographics(ctx context.Context) ([]*models.Infographic, error)
	DeleteInfographic(ctx context.Context, id int64) error
}

type mediaRepository struct {
	DB *sql.DB
}

func NewMediaRepo(db *sql.DB) MediaRepository {
	return &mediaRepository{DB: db}
}

func (r *mediaRepository) CreateVideo(ctx context.Context, video *models.Video) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO videos (title, description, filepath)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, video.Title, video.Description, video.Filepath).
		Scan(&video.ID, &video.CreatedAt)
}

func (r *mediaRepository) ListVideos(ctx context.Context) ([]*models.Video, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, title, description, filepath, created_at FROM videos ORDER BY id`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var videos []*models.Video

	for rows.Next() {
		video := &models.Video{}

		if err := rows.Scan(&video.ID, &video.Title, &video.Description, &video.Filepath, &video.CreatedAt); err != nil {
			return nil, err
		}

		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return videos, nil
}

func (r *mediaRepository) DeleteVideo(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM videos WHERE id = $1`, id)
}

func (r *mediaRepository) CreateInfographic(ctx context.Context, infographic *models.Infographic) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO infographics (title, image_path)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return r.DB.QueryRowContext(dbCtx, query, infographic.Title, infographic.ImagePath).
		Scan(&infographic.ID, &infographic.CreatedAt)
}

func (r *mediaRepository) ListInfographics(ctx context.Context) ([]*models.Infographic, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, title, image_path, created_at FROM infographics ORDER BY id`)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var infographics []*models.Infographic

	for rows.Next() {
		infographic := &models.Infographic{}

		if err := rows.Scan(&infographic.ID, &infographic.Title, &infographic.ImagePath, &infographic.CreatedAt); err != nil {
			return nil, err
		}

		infographics = append(infographics, infographic)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return infographics, nil
}

func (r *mediaRepository) DeleteInfographic(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM infographics WHERE id = $1`, id)
}

func (r *mediaRepository) deleteByID(ctx context.Context, query string, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}
