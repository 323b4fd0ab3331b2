package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/cordilleraweaves/marketplace-api/internal/utils"
	"github.com/google/uuid"
)

type DonationRepository interface {
	// CreateDonation inserts the donation and bumps the campaign's
	// collected_amount and supporters in the same transaction.
	CreateDonation(ctx context.Context, donation *models.Donation) error
	// DeleteDonation removes the donation and reverses its effect on the
	// campaign, clamping collected_amount at zero.
	DeleteDonation(ctx context.Context, id uuid.UUID) error
	GetDonationByID(ctx context.Context, id uuid.UUID) (*models.Donation, error)
	ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error)
	ListDonationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error)
}

type donationRepository struct {
	DB *sql.DB
}

func NewDonationRepo(db *sql.DB) DonationRepository {
	return &donationRepository{DB: db}
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *models.Donation) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	insert := `
		INSERT INTO donations (id, campaign_id, customer_id, amount, payment_option, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at`

	err = tx.QueryRowContext(dbCtx, insert,
		donation.ID, donation.CampaignID, donation.CustomerID,
		donation.Amount, donation.PaymentOption, donation.Message).
		Scan(&donation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert donation: %w", err)
	}

	update := `
		UPDATE campaigns
		SET collected_amount = collected_amount + $1, supporters = supporters + 1, updated_at = NOW()
		WHERE id = $2`

	result, err := tx.ExecContext(dbCtx, update, donation.Amount, donation.CampaignID)
	if err != nil {
		return fmt.Errorf("failed to update campaign totals: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	var (
		campaignID int64
		amount     float64
	)

	query := `DELETE FROM donations WHERE id = $1 RETURNING campaign_id, amount`

	if err := tx.QueryRowContext(dbCtx, query, id).Scan(&campaignID, &amount); err != nil {
		if err == sql.ErrNoRows {
			return err
		}

		return fmt.Errorf("failed to delete donation: %w", err)
	}

	// GREATEST keeps the campaign total from going negative when totals
	// were edited by hand in the dashboard.
	update := `
		UPDATE campaigns
		SET collected_amount = GREATEST(collected_amount - $1, 0),
		    supporters = GREATEST(supporters - 1, 0),
		    updated_at = NOW()
		WHERE id = $2`

	if _, err := tx.ExecContext(dbCtx, update, amount, campaignID); err != nil {
		return fmt.Errorf("failed to reverse campaign totals: %w", err)
	}

	return tx.Commit()
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	donation := &models.Donation{}

	query := `
		SELECT id, campaign_id, customer_id, amount, payment_option, message, created_at
		FROM donations
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(
		&donation.ID, &donation.CampaignID, &donation.CustomerID,
		&donation.Amount, &donation.PaymentOption, &donation.Message, &donation.CreatedAt)
	if err != nil {
		return nil, err
	}

	return donation, nil
}

func (r *donationRepository) ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM donations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * size

	query := `
		SELECT id, campaign_id, customer_id, amount, payment_option, message, created_at
		FROM donations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(dbCtx, query, size, offset)
	if err != nil {
		return nil, 0, err
	}

	defer rows.Close()

	donations, err := scanDonations(rows)
	if err != nil {
		return nil, 0, err
	}

	return donations, total, nil
}

func (r *donationRepository) ListDonationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, campaign_id, customer_id, amount, payment_option, message, created_at
		FROM donations
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, customerID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanDonations(rows)
}

func scanDonations(rows *sql.Rows) ([]*models.Donation, error) {

	var donations []*models.Donation

	for rows.Next() {
		donation := &models.Donation{}

		err := rows.Scan(
			&donation.ID, &donation.CampaignID, &donation.CustomerID,
			&donation.Amount, &donation.PaymentOption, &donation.Message, &donation.CreatedAt)
		if err != nil {
			return nil, err
		}

		donations = append(donations, donation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
