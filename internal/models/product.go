package models

import "time"

const (
	ProductStatusAvailable = "Available"
	ProductStatusArchived  = "Archived"
)

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Weaver      string    `json:"weaver,omitempty"`
	Community   string    `json:"community,omitempty"`
	Status      string    `json:"status"`
	IsArchived  bool      `json:"is_archived"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=200"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Weaver      string  `json:"weaver,omitempty"`
	Community   string  `json:"community,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Weaver      *string  `json:"weaver,omitempty"`
	Community   *string  `json:"community,omitempty"`
	IsArchived  *bool    `json:"is_archived,omitempty"`
}
