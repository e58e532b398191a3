package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusConfirmed      OrderStatus = "Confirmed"
	OrderStatusProcessing     OrderStatus = "Processing"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
	OrderStatusReturned       OrderStatus = "Returned"
	OrderStatusRefunded       OrderStatus = "Refunded"
)

var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusReturned,
	OrderStatusRefunded,
}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentBankTransfer   PaymentMethod = "Bank Transfer"
	PaymentUzCard         PaymentMethod = "UzCard"
	PaymentHumo           PaymentMethod = "Humo"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCashOnDelivery, PaymentCreditCard, PaymentBankTransfer, PaymentUzCard, PaymentHumo:
		return true
	default:
		return false
	}
}

type ShippingAddress struct {
	Name       string `gorm:"size:100;not null" json:"name"`
	Phone      string `gorm:"size:30;not null" json:"phone"`
	Email      string `gorm:"size:255;not null" json:"email"`
	Street     string `gorm:"size:200;not null" json:"street"`
	City       string `gorm:"size:100;not null" json:"city"`
	State      string `gorm:"size:100;not null" json:"state"`
	PostalCode string `gorm:"size:20;not null" json:"postalCode"`
	Country    string `gorm:"size:100;not null" json:"country"`
}

type PaymentResult struct {
	ID           string `gorm:"size:100" json:"id,omitempty"`
	Status       string `gorm:"size:50" json:"status,omitempty"`
	UpdateTime   string `gorm:"size:50" json:"update_time,omitempty"`
	EmailAddress string `gorm:"size:255" json:"email_address,omitempty"`
}

type RefundInfo struct {
	Reason      string              `gorm:"type:text" json:"reason,omitempty"`
	Amount      decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"amount,omitempty"`
	ProcessedAt *time.Time          `json:"processedAt,omitempty"`
	RefundID    string              `gorm:"size:100" json:"refundId,omitempty"`
}

// Order 建立後 OrderNumber 不可變, 訂單不刪除
type Order struct {
	BaseModel
	OrderNumber       string          `gorm:"size:20;not null;uniqueIndex" json:"orderNumber"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	User              *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items             []OrderItem     `gorm:"foreignKey:OrderID" json:"orderItems"`
	ShippingAddress   ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod     PaymentMethod   `gorm:"size:30;not null" json:"paymentMethod"`
	PaymentResult     PaymentResult   `gorm:"embedded;embeddedPrefix:payment_" json:"paymentResult"`
	ItemsPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"itemsPrice"`
	TaxPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"taxPrice"`
	ShippingPrice     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"shippingPrice"`
	DiscountAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"discountAmount"`
	CouponCode        string          `gorm:"size:50" json:"couponCode,omitempty"`
	TotalPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalPrice"`
	IsPaid            bool            `gorm:"not null" json:"isPaid"`
	PaidAt            *time.Time      `json:"paidAt,omitempty"`
	IsDelivered       bool            `gorm:"not null" json:"isDelivered"`
	DeliveredAt       *time.Time      `json:"deliveredAt,omitempty"`
	Status            OrderStatus     `gorm:"size:30;not null;index" json:"status"`
	StatusHistory     []StatusHistory `gorm:"foreignKey:OrderID" json:"statusHistory"`
	TrackingNumber    string          `gorm:"size:100" json:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty"`
	Notes             string          `gorm:"type:text" json:"notes,omitempty"`
	RefundInfo        RefundInfo      `gorm:"embedded;embeddedPrefix:refund_" json:"refundInfo"`
}

// OrderItem 下單當下的商品快照
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Image     string          `gorm:"not null" json:"image"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StatusHistory append only
type StatusHistory struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"-"`
	Status    OrderStatus `gorm:"size:30;not null" json:"status"`
	Timestamp time.Time   `gorm:"not null" json:"timestamp"`
	Note      string      `gorm:"type:text" json:"note"`
}

func (StatusHistory) TableName() string {
	return "order_status_histories"
}

func (h *StatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// StatusChangedNote 預設的狀態變更備註
func StatusChangedNote(status OrderStatus) string {
	return "Order status changed to " + string(status)
}
