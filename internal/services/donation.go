package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/cordilleraweaves/marketplace-api/internal/api/middleware"
	"github.com/cordilleraweaves/marketplace-api/internal/cache"
	"github.com/cordilleraweaves/marketplace-api/internal/errors"
	"github.com/cordilleraweaves/marketplace-api/internal/models"
	repository "github.com/cordilleraweaves/marketplace-api/internal/repositories"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

type DonationService interface {
	Submit(ctx context.Context, customerID uuid.UUID, customerEmail string, req *models.DonationRequest) (*models.Donation, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error)
	ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error)
	DeleteDonation(ctx context.Context, id uuid.UUID) error
}

type donationService struct {
	repo          repository.DonationRepository
	campaignRepo  repository.CampaignRepository
	cache         cache.Cache
	notifications NotificationService
	sanitizer     *bluemonday.Policy
}

func NewDonationService(repo repository.DonationRepository, campaignRepo repository.CampaignRepository, campaignCache cache.Cache, notifications NotificationService) DonationService {
	return &donationService{
		repo:          repo,
		campaignRepo:  campaignRepo,
		cache:         campaignCache,
		notifications: notifications,
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// Submit records a donation against a campaign. The amount and payment
// detail are checked here rather than by struct tags so each failure maps to
// its own error code.
func (s *donationService) Submit(ctx context.Context, customerID uuid.UUID, customerEmail string, req *models.DonationRequest) (*models.Donation, error) {

	if req.Amount <= 0 {
		return nil, errors.InvalidAmountError("Donation amount must be greater than zero")
	}

	if req.PaymentDetail == "" {
		return nil, errors.MissingPaymentDetailError(paymentDetailPrompt(req.PaymentOption))
	}

	campaign, err := s.campaignRepo.GetCampaignByID(ctx, req.CampaignID)
	if err != nil {
		return nil, errors.NotFoundError("Campaign not found").WithError(err)
	}

	donation := &models.Donation{
		ID:            uuid.New(),
		CampaignID:    req.CampaignID,
		CustomerID:    customerID,
		Amount:        req.Amount,
		PaymentOption: req.PaymentOption,
		Message:       s.sanitizer.Sanitize(req.Message),
	}

	if err := s.repo.CreateDonation(ctx, donation); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundError("Campaign not found").WithError(err)
		}

		return nil, errors.DatabaseError("Failed to record donation").WithError(err)
	}

	s.invalidateList(ctx)

	// Receipt is best effort: a donation is recorded even when the email
	// provider is down.
	s.sendReceipt(ctx, customerEmail, campaign.Title, donation)

	return donation, nil
}

func (s *donationService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Donation, error) {

	donations, err := s.repo.ListDonationsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to fetch donations").WithError(err)
	}

	return donations, nil
}

func (s *donationService) ListDonations(ctx context.Context, page, size int) ([]*models.Donation, int, error) {

	donations, total, err := s.repo.ListDonations(ctx, page, size)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to fetch donations").WithError(err)
	}

	return donations, total, nil
}

// DeleteDonation removes a donation from the dashboard and rolls its amount
// back out of the campaign totals.
func (s *donationService) DeleteDonation(ctx context.Context, id uuid.UUID) error {

	if err := s.repo.DeleteDonation(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.NotFoundError("Donation not found").WithError(err)
		}

		return errors.DatabaseError("Failed to delete donation").WithError(err)
	}

	s.invalidateList(ctx)

	return nil
}

func (s *donationService) invalidateList(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.FundraisingListKey); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Campaign cache invalidation failed", slog.Any("error", err))
	}
}

func (s *donationService) sendReceipt(ctx context.Context, email, campaignTitle string, donation *models.Donation) {

	if email == "" {
		return
	}

	_, err := s.notifications.SendEmail(ctx, &models.EmailNotificationRequest{
		To:      email,
		Subject: "Thank you for supporting " + campaignTitle,
		Content: fmt.Sprintf("We received your donation of PHP %.2f to %q. Salamat!", donation.Amount, campaignTitle),
		Metadata: map[string]any{
			"donation_id": donation.ID.String(),
			"campaign_id": donation.CampaignID,
		},
	})
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Donation receipt email failed",
			slog.String("donationId", donation.ID.String()), slog.Any("error", err))
	}
}

func paymentDetailPrompt(option string) string {
	switch option {
	case models.PaymentOptionGCash:
		return "GCash number is required"
	case models.PaymentOptionPayPal:
		return "PayPal email is required"
	case models.PaymentOptionCreditCard:
		return "Card number is required"
	default:
		return "Payment detail is required"
	}
}
