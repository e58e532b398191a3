package dto

import (
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductImageDTO struct {
	URL      string `json:"url" validate:"notblank" msg:"Image url is required"`
	PublicID string `json:"public_id"`
}

func toImages(images []ProductImageDTO) []model.ProductImage {
	result := make([]model.ProductImage, 0, len(images))
	for _, image := range images {
		result = append(result, model.ProductImage{URL: image.URL, PublicID: image.PublicID})
	}
	return result
}

type CreateProductDTO struct {
	Name        string            `json:"name" validate:"notblank,max=100" msg:"Product name is required and cannot exceed 100 characters"`
	Description string            `json:"description" validate:"max=2000" msg:"Description cannot exceed 2000 characters"`
	Price       decimal.Decimal   `json:"price"`
	Category    string            `json:"category" validate:"notblank,max=50" msg:"Product category is required"`
	Brand       string            `json:"brand" validate:"max=50" msg:"Brand cannot exceed 50 characters"`
	Stock       int               `json:"stock"`
	IsActive    *bool             `json:"isActive"`
	IsFeatured  bool              `json:"isFeatured"`
	Images      []ProductImageDTO `json:"images" validate:"dive"`
}

func (d *CreateProductDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.Brand = strings.TrimSpace(d.Brand)
}

func (d *CreateProductDTO) ToParams() service.ProductParams {
	return service.ProductParams{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Brand:       d.Brand,
		Stock:       d.Stock,
		IsActive:    d.IsActive,
		IsFeatured:  d.IsFeatured,
		Images:      toImages(d.Images),
	}
}

// UpdateProductDTO 未提供的欄位不修改, images 提供時整批取代
type UpdateProductDTO struct {
	Name        *string            `json:"name" validate:"omitempty,notblank,max=100" msg:"Product name is required and cannot exceed 100 characters"`
	Description *string            `json:"description" validate:"omitempty,max=2000" msg:"Description cannot exceed 2000 characters"`
	Price       *decimal.Decimal   `json:"price"`
	Category    *string            `json:"category" validate:"omitempty,notblank,max=50" msg:"Product category is required"`
	Brand       *string            `json:"brand" validate:"omitempty,max=50" msg:"Brand cannot exceed 50 characters"`
	Stock       *int               `json:"stock"`
	IsActive    *bool              `json:"isActive"`
	IsFeatured  *bool              `json:"isFeatured"`
	Images      *[]ProductImageDTO `json:"images" validate:"omitempty,dive"`
}

func (d *UpdateProductDTO) Normalize() {
	if d.Category != nil {
		category := strings.TrimSpace(*d.Category)
		d.Category = &category
	}
}

func (d *UpdateProductDTO) ToParams() service.UpdateProductParams {
	params := service.UpdateProductParams{
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		Brand:       d.Brand,
		Stock:       d.Stock,
		IsActive:    d.IsActive,
		IsFeatured:  d.IsFeatured,
	}
	if d.Images != nil {
		images := toImages(*d.Images)
		params.Images = &images
	}
	return params
}

type AddReviewDTO struct {
	Rating  int    `json:"rating" validate:"min=1,max=5" msg:"Rating must be between 1 and 5"`
	Comment string `json:"comment" validate:"notblank,max=1000" msg:"Comment is required"`
}

func (d *AddReviewDTO) ToParams() service.AddReviewParams {
	return service.AddReviewParams{Rating: d.Rating, Comment: d.Comment}
}

type ProductStatusDTO struct {
	IsActive   *bool `json:"isActive"`
	IsFeatured *bool `json:"isFeatured"`
}

// BulkUpdateProductsDTO updates 的欄位白名單由service檢查
type BulkUpdateProductsDTO struct {
	ProductIDs []uuid.UUID    `json:"productIds" validate:"required,min=1" msg:"Product IDs are required"`
	Updates    map[string]any `json:"updates" validate:"required" msg:"Updates object is required"`
}
