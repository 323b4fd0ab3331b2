package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentOptionGCash      = "gcash"
	PaymentOptionPayPal     = "paypal"
	PaymentOptionCreditCard = "credit_card"
)

type Donation struct {
	ID            uuid.UUID `json:"id"`
	CampaignID    int64     `json:"campaign_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
	Amount        float64   `json:"amount"`
	PaymentOption string    `json:"payment_option"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// DonationRequest carries the payment detail (phone number, PayPal email or
// card number depending on the option) for validation only. It is never
// stored and never leaves this service.
//
// Amount carries no validator tag: the service rejects any amount <= 0 with
// INVALID_AMOUNT, the code the dashboard keys its inline message on. A
// required tag would intercept a zero amount with a generic validation error.
type DonationRequest struct {
	CampaignID    int64   `json:"campaign_id" validate:"required"`
	Amount        float64 `json:"amount"`
	PaymentOption string  `json:"payment_option" validate:"required,oneof=gcash paypal credit_card"`
	PaymentDetail string  `json:"payment_detail"`
	Message       string  `json:"message,omitempty" validate:"omitempty,max=500"`
}
