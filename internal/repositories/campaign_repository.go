package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
)

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error
	GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error)
	ListCampaigns(ctx context.Context) ([]*models.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *models.Campaign) error
	DeleteCampaign(ctx context.Context, id int64) error
}

type campaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepo(db *sql.DB) CampaignRepository {
	return &campaignRepository{DB: db}
}

const campaignColumns = `id, title, description, goal_amount, collected_amount, supporters, days_left, image, is_urgent, status, created_at, updated_at`

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO campaigns (title, description, goal_amount, collected_amount, supporters, days_left, image, is_urgent, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		campaign.Title, campaign.Description, campaign.GoalAmount, campaign.CollectedAmount,
		campaign.Supporters, campaign.DaysLeft, campaign.Image, campaign.IsUrgent, campaign.Status).
		Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
}

func (r *campaignRepository) GetCampaignByID(ctx context.Context, id int64) (*models.Campaign, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	campaign := &models.Campaign{}

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&campaign.ID, &campaign.Title, &campaign.Description, &campaign.GoalAmount,
		&campaign.CollectedAmount, &campaign.Supporters, &campaign.DaysLeft,
		&campaign.Image, &campaign.IsUrgent, &campaign.Status,
		&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) ListCampaigns(ctx context.Context) ([]*models.Campaign, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY is_urgent DESC, id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var campaigns []*models.Campaign

	for rows.Next() {
		campaign := &models.Campaign{}

		err := rows.Scan(
			&campaign.ID, &campaign.Title, &campaign.Description, &campaign.GoalAmount,
			&campaign.CollectedAmount, &campaign.Supporters, &campaign.DaysLeft,
			&campaign.Image, &campaign.IsUrgent, &campaign.Status,
			&campaign.CreatedAt, &campaign.UpdatedAt)
		if err != nil {
			return nil, err
		}

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, campaign *models.Campaign) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE campaigns
		SET title = $1, description = $2, goal_amount = $3, collected_amount = $4,
		    supporters = $5, days_left = $6, image = $7, is_urgent = $8, status = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at`

	return r.DB.QueryRowContext(dbCtx, query,
		campaign.Title, campaign.Description, campaign.GoalAmount, campaign.CollectedAmount,
		campaign.Supporters, campaign.DaysLeft, campaign.Image, campaign.IsUrgent,
		campaign.Status, campaign.ID).
		Scan(&campaign.UpdatedAt)
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM campaigns WHERE id = $1`, id)
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
