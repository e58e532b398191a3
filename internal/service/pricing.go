package service

import (
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

// PricingPolicy 訂單金額計算規則, 一律由server端計算
type PricingPolicy struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
}

type OrderPrice struct {
	Items    decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

func NewPricingPolicy(taxRate, freeShippingThreshold, flatShippingFee float64) PricingPolicy {
	return PricingPolicy{
		TaxRate:               decimal.NewFromFloat(taxRate),
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		FlatShippingFee:       decimal.NewFromFloat(flatShippingFee),
	}
}

// DefaultPricingPolicy 稅率12%, 商品金額超過100免運, 否則運費10
func DefaultPricingPolicy() PricingPolicy {
	return NewPricingPolicy(0.12, 100, 10)
}

/*
Price 計算訂單金額

	items = Σ price×quantity
	tax = items × TaxRate, 四捨五入到小數兩位
	shipping = items > FreeShippingThreshold ? 0 : FlatShippingFee
	total = items + tax + shipping - discount
*/
func (p PricingPolicy) Price(items []model.OrderItem, discount decimal.Decimal) OrderPrice {
	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.LineTotal())
	}
	itemsPrice = itemsPrice.Round(2)

	tax := itemsPrice.Mul(p.TaxRate).Round(2)
	shipping := p.FlatShippingFee.Round(2)
	if itemsPrice.GreaterThan(p.FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	discount = discount.Round(2)

	return OrderPrice{
		Items:    itemsPrice,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    itemsPrice.Add(tax).Add(shipping).Sub(discount),
	}
}
