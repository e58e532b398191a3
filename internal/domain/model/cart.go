package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem 主鍵 (user_id, product_id)
type CartItem struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"addedAt"`
	UpdatedAt time.Time `json:"-"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

type CartLine struct {
	Product  *Product        `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type CartView struct {
	Items     []CartLine      `json:"items"`
	ItemCount int             `json:"itemCount"`
	CartTotal decimal.Decimal `json:"cartTotal"`
}

// NewCartView 只保留上架中的商品, itemCount 與 cartTotal 由明細推導
func NewCartView(items []CartItem) *CartView {
	view := &CartView{
		Items:     make([]CartLine, 0, len(items)),
		CartTotal: decimal.Zero,
	}
	for _, item := range items {
		if item.Product == nil || !item.Product.IsActive {
			continue
		}
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, CartLine{
			Product:  item.Product,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.ItemCount += item.Quantity
		view.CartTotal = view.CartTotal.Add(subtotal)
	}
	return view
}
