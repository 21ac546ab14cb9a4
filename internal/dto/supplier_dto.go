package dto

type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Website       *string `json:"website"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Industry      *string `json:"industry"`
	Notes         *string `json:"notes"`
	Image         *string `json:"image" validate:"omitempty,url"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Website       *string `json:"website"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Industry      *string `json:"industry"`
	Notes         *string `json:"notes"`
	Image         *string `json:"image" validate:"omitempty,url"`
	Active        *bool   `json:"active"`
}

type SupplierResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Website       *string `json:"website,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Address       *string `json:"address,omitempty"`
	Industry      *string `json:"industry,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	Image         *string `json:"image,omitempty"`
	Active        bool    `json:"active"`
}
