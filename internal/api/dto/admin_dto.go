package dto

import (
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

// AdminUpdateUserDTO 未提供的欄位不修改
type AdminUpdateUserDTO struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=50" msg:"Name must be between 2 and 50 characters"`
	Email      *string `json:"email" validate:"omitempty,email" msg:"Please provide a valid email"`
	Phone      *string `json:"phone" validate:"omitempty,max=30" msg:"Please provide a valid phone number"`
	Role       *string `json:"role" validate:"omitempty,oneof=user admin" msg:"Role must be user or admin"`
	IsVerified *bool   `json:"isVerified"`
}

func (d *AdminUpdateUserDTO) Normalize() {
	if d.Name != nil {
		name := strings.TrimSpace(*d.Name)
		d.Name = &name
	}
	if d.Email != nil {
		email := strings.TrimSpace(*d.Email)
		d.Email = &email
	}
}

func (d *AdminUpdateUserDTO) ToParams() service.AdminUpdateUserParams {
	params := service.AdminUpdateUserParams{
		Name:       d.Name,
		Email:      d.Email,
		Phone:      d.Phone,
		IsVerified: d.IsVerified,
	}
	if d.Role != nil {
		role := model.Role(*d.Role)
		params.Role = &role
	}
	return params
}
