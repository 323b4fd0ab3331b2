package models

import "time"

const (
	CampaignStatusActive = "Active"
	CampaignStatusClosed = "Closed"
)

type Campaign struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	GoalAmount      float64   `json:"goal_amount"`
	CollectedAmount float64   `json:"collected_amount"`
	Supporters      int       `json:"supporters"`
	DaysLeft        int       `json:"days_left"`
	Image           string    `json:"image,omitempty"`
	IsUrgent        bool      `json:"is_urgent"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Title       string  `json:"title" validate:"required,min=3,max=200"`
	Description string  `json:"description,omitempty"`
	GoalAmount  float64 `json:"goal_amount" validate:"required,gt=0"`
	DaysLeft    int     `json:"days_left" validate:"gte=0"`
	Image       string  `json:"image,omitempty"`
	IsUrgent    bool    `json:"is_urgent"`
}

type UpdateCampaignRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Description *string  `json:"description,omitempty"`
	GoalAmount  *float64 `json:"goal_amount,omitempty" validate:"omitempty,gt=0"`
	DaysLeft    *int     `json:"days_left,omitempty" validate:"omitempty,gte=0"`
	Image       *string  `json:"image,omitempty"`
	IsUrgent    *bool    `json:"is_urgent,omitempty"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=Active Closed"`
}
