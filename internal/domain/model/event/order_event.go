package event

import (
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	OrderPlacedEventName        EventType = "OrderPlaced"
	OrderPaidEventName          EventType = "OrderPaid"
	OrderStatusChangedEventName EventType = "OrderStatusChanged"
)

type Event interface {
	Type() EventType
	GetID() string
	// 分區用key, 同一訂單的事件落在同一partition
	PartitionKey() string
}

type BaseEvent struct {
	EventID     string    `json:"eventId"`
	AggregateID string    `json:"aggregateId"`
	CreatedAt   time.Time `json:"createdAt"`
	EventType   EventType `json:"eventType"`
}

func newBaseEvent(orderID uuid.UUID, t EventType) BaseEvent {
	return BaseEvent{
		EventID:     uuid.NewString(),
		AggregateID: orderID.String(),
		CreatedAt:   time.Now().UTC(),
		EventType:   t,
	}
}

func (e *BaseEvent) GetID() string {
	return e.EventID
}

func (e *BaseEvent) Type() EventType {
	return e.EventType
}

func (e *BaseEvent) PartitionKey() string {
	return e.AggregateID
}

type OrderLine struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderPlacedEvent struct {
	BaseEvent
	OrderNumber string          `json:"orderNumber"`
	UserID      uuid.UUID       `json:"userId"`
	Items       []OrderLine     `json:"items"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

func NewOrderPlacedEvent(order *model.Order) *OrderPlacedEvent {
	lines := make([]OrderLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, OrderLine{ProductID: item.ProductID, Quantity: item.Quantity, Price: item.Price})
	}
	return &OrderPlacedEvent{
		BaseEvent:   newBaseEvent(order.ID, OrderPlacedEventName),
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Items:       lines,
		TotalPrice:  order.TotalPrice,
	}
}

type OrderPaidEvent struct {
	BaseEvent
	OrderNumber string    `json:"orderNumber"`
	PaymentID   string    `json:"paymentId"`
	PaidAt      time.Time `json:"paidAt"`
}

func NewOrderPaidEvent(order *model.Order) *OrderPaidEvent {
	e := &OrderPaidEvent{
		BaseEvent:   newBaseEvent(order.ID, OrderPaidEventName),
		OrderNumber: order.OrderNumber,
		PaymentID:   order.PaymentResult.ID,
	}
	if order.PaidAt != nil {
		e.PaidAt = *order.PaidAt
	}
	return e
}

type OrderStatusChangedEvent struct {
	BaseEvent
	OrderNumber string            `json:"orderNumber"`
	FromStatus  model.OrderStatus `json:"fromStatus"`
	ToStatus    model.OrderStatus `json:"toStatus"`
}

func NewOrderStatusChangedEvent(order *model.Order, from model.OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseEvent:   newBaseEvent(order.ID, OrderStatusChangedEventName),
		OrderNumber: order.OrderNumber,
		FromStatus:  from,
		ToStatus:    order.Status,
	}
}
