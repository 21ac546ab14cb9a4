package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type UpdateCategoryRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=2"`
	Active *bool   `json:"active"`
}

type CategoryResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Active bool      `json:"active"`
}
