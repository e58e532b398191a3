package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	BaseModel
	Name        string          `gorm:"size:100;not null" json:"name"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Category    string          `gorm:"size:50;not null;index" json:"category"`
	Brand       string          `gorm:"size:50" json:"brand"`
	Stock       int             `gorm:"not null" json:"stock"`
	Sold        int             `gorm:"not null" json:"sold"`
	Rating      float64         `gorm:"not null" json:"rating"`
	NumReviews  int             `gorm:"not null" json:"numReviews"`
	IsActive    bool            `gorm:"not null" json:"isActive"`
	IsFeatured  bool            `gorm:"not null" json:"isFeatured"`
	Images      []ProductImage  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images"`
	Reviews     []Review        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// PrimaryImage 第一張圖, 沒有圖時回傳預設圖
func (p *Product) PrimaryImage(fallback string) string {
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}
	return fallback
}

type ProductImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	URL       string    `gorm:"not null" json:"url"`
	PublicID  string    `json:"public_id,omitempty"`
	Position  int       `gorm:"not null" json:"-"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
