package dto

import "github.com/google/uuid"

type AddToCartDTO struct {
	ProductID uuid.UUID `json:"productId" validate:"required" msg:"Product ID is required"`
	Quantity  int       `json:"quantity" validate:"min=1" msg:"Quantity must be at least 1"`
}

// Normalize 沒給數量時視為1
func (d *AddToCartDTO) Normalize() {
	if d.Quantity == 0 {
		d.Quantity = 1
	}
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity" validate:"min=1" msg:"Quantity must be at least 1"`
}
