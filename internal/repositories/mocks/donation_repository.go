package mocks

import (
	"context"

	"github.com/cordilleraweaves/marketplace-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type DonationRepository struct {
	mock.Mock
}

func (m *DonationRepository) CreateDonation(ctx context.Context, donation *models.Donation) error {
	args := m.Called(ctx, donation)

	return args.Error(0)
}

func (m *DonationRepository) DeleteDonation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *DonationRepository) GetDonationByID(ctx context.Context, id uuid.UUID) (*models.Donation, error) {
	args := m.Called(ctx, id)

	var donation *models.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*models.Donation)
	}

	return donation, args.Error(1)
}

func (m *DonationRepository) ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error) {
	args := m.Called(ctx, page, size)

	var donations []*models.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*models.Donation)
	}

	return donations, args.Int(1), args.Error(2)
}

func (m *DonationRepository) ListDonationsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error) {
	args := m.Called(ctx, customerID)

	var donations []*models.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]*models.Donation)
	}

	return donations, args.Error(1)
}
