package dto

import (
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemDTO client送來的name/price會被忽略, 以資料庫商品為準
type OrderItemDTO struct {
	Product  uuid.UUID `json:"product" validate:"required" msg:"Product ID is required"`
	Quantity int       `json:"quantity" validate:"min=1" msg:"Quantity must be at least 1"`
}

type ShippingAddressDTO struct {
	Name       string `json:"name" validate:"notblank" msg:"Shipping name is required"`
	Phone      string `json:"phone" validate:"notblank" msg:"Phone number is required"`
	Email      string `json:"email" validate:"required,email" msg:"Valid email is required"`
	Street     string `json:"street" validate:"notblank" msg:"Street address is required"`
	City       string `json:"city" validate:"notblank" msg:"City is required"`
	State      string `json:"state" validate:"notblank" msg:"State is required"`
	PostalCode string `json:"postalCode" validate:"notblank" msg:"Postal code is required"`
	Country    string `json:"country"`
}

// PlaceOrderDTO 欄位順序即驗證順序, 錯誤只回傳第一個
type PlaceOrderDTO struct {
	OrderItems      []OrderItemDTO     `json:"orderItems" validate:"required,min=1,dive" msg:"Order items are required"`
	ShippingAddress ShippingAddressDTO `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod" validate:"payment_method" msg:"Valid payment method is required"`
	CouponCode      string             `json:"couponCode" validate:"max=50"`
	Notes           string             `json:"notes" validate:"max=500"`
}

func (d *PlaceOrderDTO) Normalize() {
	a := &d.ShippingAddress
	a.Name = strings.TrimSpace(a.Name)
	a.Phone = strings.TrimSpace(a.Phone)
	a.Email = strings.TrimSpace(a.Email)
	a.Street = strings.TrimSpace(a.Street)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	d.CouponCode = strings.TrimSpace(d.CouponCode)
}

func (d *PlaceOrderDTO) ToParams() service.PlaceOrderParams {
	items := make([]service.OrderLineParam, 0, len(d.OrderItems))
	for _, item := range d.OrderItems {
		items = append(items, service.OrderLineParam{ProductID: item.Product, Quantity: item.Quantity})
	}
	a := d.ShippingAddress
	return service.PlaceOrderParams{
		Items: items,
		ShippingAddress: model.ShippingAddress{
			Name:       a.Name,
			Phone:      a.Phone,
			Email:      a.Email,
			Street:     a.Street,
			City:       a.City,
			State:      a.State,
			PostalCode: a.PostalCode,
			Country:    a.Country,
		},
		PaymentMethod: model.PaymentMethod(d.PaymentMethod),
		CouponCode:    d.CouponCode,
		Notes:         d.Notes,
	}
}

// PaymentResultDTO 金流回傳的付款結果, 原樣記錄
type PaymentResultDTO struct {
	ID           string `json:"id" validate:"max=100"`
	Status       string `json:"status" validate:"max=50"`
	UpdateTime   string `json:"update_time" validate:"max=50"`
	EmailAddress string `json:"email_address" validate:"omitempty,email" msg:"Valid email is required"`
}

func (d *PaymentResultDTO) ToModel() model.PaymentResult {
	return model.PaymentResult{
		ID:           d.ID,
		Status:       d.Status,
		UpdateTime:   d.UpdateTime,
		EmailAddress: d.EmailAddress,
	}
}

type RefundDTO struct {
	Reason   string           `json:"reason"`
	Amount   *decimal.Decimal `json:"amount"`
	RefundID string           `json:"refundId"`
}

type UpdateOrderStatusDTO struct {
	Status         string     `json:"status" validate:"order_status" msg:"Invalid order status"`
	TrackingNumber string     `json:"trackingNumber" validate:"max=100"`
	Notes          string     `json:"notes" validate:"max=500"`
	Refund         *RefundDTO `json:"refund"`
}

func (d *UpdateOrderStatusDTO) ToParams() service.UpdateStatusParams {
	params := service.UpdateStatusParams{
		Status:         model.OrderStatus(d.Status),
		TrackingNumber: strings.TrimSpace(d.TrackingNumber),
		Notes:          d.Notes,
	}
	if d.Refund != nil {
		params.Refund = &service.RefundParams{
			Reason:   d.Refund.Reason,
			Amount:   d.Refund.Amount,
			RefundID: d.Refund.RefundID,
		}
	}
	return params
}
