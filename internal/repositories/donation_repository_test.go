package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonationRepo(t *testing.T) (repository.DonationRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewDonationRepo(db), mock
}

func TestCreateDonation(t *testing.T) {
	ctx := context.Background()

	donation := &models.Donation{
		ID:            uuid.New(),
		CampaignID:    3,
		CustomerID:    uuid.New(),
		Amount:        500,
		PaymentOption: models.PaymentOptionGCash,
		Message:       "Para sa mga manghahabi",
	}

	t.Run("Success - Insert And Campaign Bump Commit Together", func(t *testing.T) {
		// Arrange
		repo, mock := newDonationRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donations")).
			WithArgs(donation.ID, donation.CampaignID, donation.CustomerID,
				donation.Amount, donation.PaymentOption, donation.Message).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
			WithArgs(donation.Amount, donation.CampaignID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.CreateDonation(ctx, donation)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Missing Campaign Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := newDonationRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donations")).
			WithArgs(donation.ID, donation.CampaignID, donation.CustomerID,
				donation.Amount, donation.PaymentOption, donation.Message).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns")).
			WithArgs(donation.Amount, donation.CampaignID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		// Act
		err := repo.CreateDonation(ctx, donation)

		// Assert
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insert Error Rolls Back", func(t *testing.T) {
		// Arrange
		repo, mock := newDonationRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO donations")).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		// Act
		err := repo.CreateDonation(ctx, donation)

		// Assert
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteDonation(t *testing.T) {
	ctx := context.Background()
	donationID := uuid.New()

	t.Run("Success - Campaign Totals Reversed", func(t *testing.T) {
		// Arrange
		repo, mock := newDonationRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM donations WHERE id = $1 RETURNING campaign_id, amount")).
			WithArgs(donationID).
			WillReturnRows(sqlmock.NewRows([]string{"campaign_id", "amount"}).AddRow(int64(3), 500.0))
		mock.ExpectExec(regexp.QuoteMeta("GREATEST(collected_amount - $1, 0)")).
			WithArgs(500.0, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		// Act
		err := repo.DeleteDonation(ctx, donationID)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unknown Donation", func(t *testing.T) {
		// Arrange
		repo, mock := newDonationRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM donations")).
			WithArgs(donationID).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		// Act
		err := repo.DeleteDonation(ctx, donationID)

		// Assert
		assert.Equal(t, sql.ErrNoRows, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListDonationsByCustomer(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	// Arrange
	repo, mock := newDonationRepo(t)

	rows := sqlmock.NewRows([]string{"id", "campaign_id", "customer_id", "amount", "payment_option", "message", "created_at"}).
		AddRow(uuid.New(), int64(3), customerID, 500.0, models.PaymentOptionGCash, "Salamat", time.Now()).
		AddRow(uuid.New(), int64(4), customerID, 1000.0, models.PaymentOptionPayPal, "", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM donations")).
		WithArgs(customerID).
		WillReturnRows(rows)

	// Act
	donations, err := repo.ListDonationsByCustomer(ctx, customerID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, donations, 2)
	assert.Equal(t, 500.0, donations[0].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
