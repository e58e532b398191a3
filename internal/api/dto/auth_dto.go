package dto

import (
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type RegisterDTO struct {
	Name     string `json:"name" validate:"min=2,max=50" msg:"Name must be between 2 and 50 characters"`
	Email    string `json:"email" validate:"required,email" msg:"Please provide a valid email"`
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters"`
	Phone    string `json:"phone" validate:"omitempty,max=30" msg:"Please provide a valid phone number"`
}

func (d *RegisterDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
}

func (d *RegisterDTO) ToParams() service.RegisterParams {
	return service.RegisterParams{
		Name:     d.Name,
		Email:    d.Email,
		Password: d.Password,
		Phone:    d.Phone,
	}
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email" msg:"Please provide a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

func (d *LoginDTO) Normalize() {
	d.Email = strings.TrimSpace(d.Email)
}

type AddressDTO struct {
	Street     string `json:"street" validate:"max=200"`
	City       string `json:"city" validate:"max=100"`
	State      string `json:"state" validate:"max=100"`
	PostalCode string `json:"postalCode" validate:"max=20"`
	Country    string `json:"country" validate:"max=100"`
}

// UpdateProfileDTO 未提供的欄位不修改
type UpdateProfileDTO struct {
	Name    *string     `json:"name" validate:"omitempty,min=2,max=50" msg:"Name must be between 2 and 50 characters"`
	Phone   *string     `json:"phone" validate:"omitempty,max=30" msg:"Please provide a valid phone number"`
	Address *AddressDTO `json:"address"`
}

func (d *UpdateProfileDTO) Normalize() {
	if d.Name != nil {
		name := strings.TrimSpace(*d.Name)
		d.Name = &name
	}
}

func (d *UpdateProfileDTO) ToParams() service.UpdateProfileParams {
	params := service.UpdateProfileParams{Name: d.Name, Phone: d.Phone}
	if d.Address != nil {
		params.Address = &model.UserAddress{
			Street:     d.Address.Street,
			City:       d.Address.City,
			State:      d.Address.State,
			PostalCode: d.Address.PostalCode,
			Country:    d.Address.Country,
		}
	}
	return params
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" validate:"required" msg:"Current password is required"`
	NewPassword     string `json:"newPassword" validate:"min=6" msg:"New password must be at least 6 characters"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" validate:"required,email" msg:"Please provide a valid email"`
}

func (d *ForgotPasswordDTO) Normalize() {
	d.Email = strings.TrimSpace(d.Email)
}

type ResetPasswordDTO struct {
	Password string `json:"password" validate:"min=6" msg:"Password must be at least 6 characters"`
}
