package service

import "github.com/RoyceAzure/lab/storefront/internal/domain/model"

// StatusPolicy 決定訂單狀態能否從from轉到to
type StatusPolicy interface {
	CanTransition(from, to model.OrderStatus) bool
}

// PermissivePolicy 任何合法狀態之間都可以互轉
type PermissivePolicy struct{}

func (PermissivePolicy) CanTransition(from, to model.OrderStatus) bool {
	return to.IsValid()
}

// StrictPolicy 只允許表內的轉換, Refunded 為終態
type StrictPolicy struct{}

var strictTransitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:        {model.OrderStatusConfirmed, model.OrderStatusProcessing, model.OrderStatusCancelled},
	model.OrderStatusConfirmed:      {model.OrderStatusProcessing, model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusProcessing:     {model.OrderStatusShipped, model.OrderStatusCancelled},
	model.OrderStatusShipped:        {model.OrderStatusOutForDelivery, model.OrderStatusDelivered, model.OrderStatusReturned},
	model.OrderStatusOutForDelivery: {model.OrderStatusDelivered, model.OrderStatusReturned},
	model.OrderStatusDelivered:      {model.OrderStatusReturned, model.OrderStatusRefunded},
	model.OrderStatusReturned:       {model.OrderStatusRefunded},
	model.OrderStatusCancelled:      {model.OrderStatusRefunded},
	model.OrderStatusRefunded:       {},
}

func (StrictPolicy) CanTransition(from, to model.OrderStatus) bool {
	for _, next := range strictTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func NewStatusPolicy(strict bool) StatusPolicy {
	if strict {
		return StrictPolicy{}
	}
	return PermissivePolicy{}
}
