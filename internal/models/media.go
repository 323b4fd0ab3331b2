package models

import "time"

// Story content managed from the dashboard: videos and infographics. Both
// are hard-deleted, unlike products which are archived.

type Video struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filepath    string    `json:"filepath"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Filepath    string `json:"filepath" validate:"required"`
}

type Infographic struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ImagePath string    `json:"image_path"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateInfographicRequest struct {
	Title     string `json:"title" validate:"required"`
	ImagePath string `json:"image_path" validate:"required"`
}
