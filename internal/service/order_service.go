package service

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model/event"
	"github.com/RoyceAzure/lab/storefront/internal/infra/producer"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/metrics"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type OrderLineParam struct {
	ProductID uuid.UUID
	Quantity  int
}

type PlaceOrderParams struct {
	Items           []OrderLineParam
	ShippingAddress model.ShippingAddress
	PaymentMethod   model.PaymentMethod
	CouponCode      string
	Notes           string
}

type RefundParams struct {
	Reason   string
	Amount   *decimal.Decimal
	RefundID string
}

type UpdateStatusParams struct {
	Status         model.OrderStatus
	TrackingNumber string
	Notes          string
	Refund         *RefundParams
}

type OrderStatsOverview struct {
	TotalOrders  int64           `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TodayOrders  int64           `json:"todayOrders"`
	TodayRevenue decimal.Decimal `json:"todayRevenue"`
	WeekOrders   int64           `json:"weekOrders"`
	MonthOrders  int64           `json:"monthOrders"`
	MonthRevenue decimal.Decimal `json:"monthRevenue"`
}

type OrderStats struct {
	Overview        OrderStatsOverview `json:"overview"`
	StatusBreakdown []db.StatusCount   `json:"statusBreakdown"`
	RecentOrders    []model.Order      `json:"recentOrders"`
}

type IOrderService interface {
	// PlaceOrder 建立訂單並扣庫存
	//
	// 參數:
	//   - userID: 下單者
	//   - params: 商品與數量, 收件資訊, 付款方式. client送來的價格與金額一律忽略
	//
	// 返回值:
	//   - *model.Order: 狀態為 Pending 的新訂單
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 沒有商品, 數量小於1, 付款方式不合法
	//   - apperr.NotFoundCode 404: 商品不存在
	//   - apperr.InsufficientStockCode 400: 任一商品庫存不足, 所有庫存變更都會rollback
	//   - apperr.InternalErrorCode 500: 資料庫錯誤
	PlaceOrder(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*model.Order, error)
	// GetOrder 取得單筆訂單, 只有訂單擁有者或admin可以查看
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 訂單不存在
	//   - apperr.ForbiddenCode 403: 非擁有者也非admin
	GetOrder(ctx context.Context, orderID uuid.UUID, requester *token.Payload) (*model.Order, error)
	MyOrders(ctx context.Context, userID uuid.UUID, page util.PageQuery) ([]model.Order, int64, error)
	ListOrders(ctx context.Context, filter db.OrderFilter) ([]model.Order, int64, error)
	// UpdateStatus admin變更訂單狀態, 狀態相同時只更新追蹤碼與備註, 不新增歷程
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 狀態不合法, 或目前政策不允許此轉換
	//   - apperr.NotFoundCode 404: 訂單不存在
	UpdateStatus(ctx context.Context, orderID uuid.UUID, params UpdateStatusParams) (*model.Order, error)
	// MarkPaid 擁有者付款確認, 狀態改為 Confirmed
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 訂單不存在
	//   - apperr.ForbiddenCode 403: 非訂單擁有者
	//   - apperr.ConflictCode 409: 訂單已付款
	MarkPaid(ctx context.Context, orderID uuid.UUID, userID uuid.UUID, result model.PaymentResult) (*model.Order, error)
	MarkDelivered(ctx context.Context, orderID uuid.UUID) (*model.Order, error)
	Stats(ctx context.Context) (*OrderStats, error)
}

type OrderService struct {
	store       db.IStore
	publisher   producer.IEventPublisher
	metrics     *metrics.Metrics
	pricing     PricingPolicy
	policy      StatusPolicy
	orderNumber OrderNumberGenerator
	now         func() time.Time
	logger      *zerolog.Logger
}

func NewOrderService(store db.IStore, publisher producer.IEventPublisher, m *metrics.Metrics, pricing PricingPolicy, policy StatusPolicy, logger *zerolog.Logger) IOrderService {
	if reflect.ValueOf(store).IsNil() {
		panic("order service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(publisher).IsNil() {
		panic("order service initialization failed: publisher cannot be nil")
	}
	if policy == nil {
		panic("order service initialization failed: policy cannot be nil")
	}
	if logger == nil {
		panic("order service initialization failed: logger cannot be nil")
	}
	return &OrderService{
		store:       store,
		publisher:   publisher,
		metrics:     m,
		pricing:     pricing,
		policy:      policy,
		orderNumber: GenerateOrderNumber,
		now:         time.Now,
		logger:      logger,
	}
}

func validatePlaceOrder(params *PlaceOrderParams) error {
	if len(params.Items) == 0 {
		return apperr.New(apperr.ValidationFailedCode, "No order items")
	}
	for _, line := range params.Items {
		if line.ProductID == uuid.Nil {
			return apperr.New(apperr.ValidationFailedCode, "Product ID is required")
		}
		if line.Quantity < 1 {
			return apperr.New(apperr.ValidationFailedCode, "Quantity must be at least 1")
		}
	}
	if params.PaymentMethod == "" {
		params.PaymentMethod = model.PaymentCashOnDelivery
	}
	if !params.PaymentMethod.IsValid() {
		return apperr.New(apperr.ValidationFailedCode, "Valid payment method is required")
	}
	if params.ShippingAddress.Country == "" {
		params.ShippingAddress.Country = constants.DefaultCountry
	}
	return nil
}

func (s *OrderService) PlaceOrder(ctx context.Context, userID uuid.UUID, params PlaceOrderParams) (*model.Order, error) {
	if err := validatePlaceOrder(&params); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var order *model.Order

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		items := make([]model.OrderItem, 0, len(params.Items))
		for _, line := range params.Items {
			product, err := tx.GetProductByID(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, db.ErrRecordNotFound) {
					return apperr.New(apperr.NotFoundCode, "Product not found")
				}
				return apperr.Internal(err)
			}
			if line.Quantity > product.Stock {
				return apperr.Newf(apperr.InsufficientStockCode, "Insufficient stock for %s. Available: %d", product.Name, product.Stock)
			}

			// 條件式扣庫存, 併發下單時由資料庫保證不超賣
			if err := tx.DeductProductStock(ctx, product.ID, line.Quantity); err != nil {
				if errors.Is(err, db.ErrProductStockNotEnough) {
					return apperr.Newf(apperr.InsufficientStockCode, "Insufficient stock for %s. Available: %d", product.Name, product.Stock)
				}
				return apperr.Internal(err)
			}

			items = append(items, model.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Image:     product.PrimaryImage(constants.DefaultProductImage),
				Price:     product.Price,
				Quantity:  line.Quantity,
			})
		}

		price := s.pricing.Price(items, decimal.Zero)

		number, err := nextOrderNumber(ctx, tx, s.orderNumber, now)
		if err != nil {
			return apperr.Internal(err)
		}

		order = &model.Order{
			OrderNumber:     number,
			UserID:          userID,
			Items:           items,
			ShippingAddress: params.ShippingAddress,
			PaymentMethod:   params.PaymentMethod,
			ItemsPrice:      price.Items,
			TaxPrice:        price.Tax,
			ShippingPrice:   price.Shipping,
			DiscountAmount:  price.Discount,
			CouponCode:      params.CouponCode,
			TotalPrice:      price.Total,
			Status:          model.OrderStatusPending,
			Notes:           params.Notes,
			StatusHistory: []model.StatusHistory{{
				Status:    model.OrderStatusPending,
				Timestamp: now,
				Note:      model.StatusChangedNote(model.OrderStatusPending),
			}},
		}
		order.CreatedAt = now
		order.UpdatedAt = now
		if err := tx.CreateOrder(ctx, order); err != nil {
			return apperr.Internal(err)
		}

		if err := tx.ClearCart(ctx, userID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	units := 0
	for _, item := range order.Items {
		units += item.Quantity
	}
	s.metrics.OrderPlaced(units, order.TotalPrice.InexactFloat64())
	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("user_id", userID.String()).
		Str("total", order.TotalPrice.String()).
		Int("units", units).
		Msg("order placed")

	s.publish(ctx, event.NewOrderPlacedEvent(order))
	return order, nil
}

// publish 交易commit之後才發送, 發送失敗不影響已成立的訂單
func (s *OrderService) publish(ctx context.Context, evts ...event.Event) {
	if err := s.publisher.Publish(ctx, evts...); err != nil {
		s.metrics.EventPublishFailed()
		for _, evt := range evts {
			s.logger.Error().Err(err).
				Str("event_type", string(evt.Type())).
				Str("event_id", evt.GetID()).
				Str("order_id", evt.PartitionKey()).
				Msg("failed to publish order event")
		}
	}
}

func (s *OrderService) getOrder(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Order not found")
		}
		return nil, apperr.Internal(err)
	}
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID, requester *token.Payload) (*model.Order, error) {
	if requester == nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Not authorized, no token")
	}
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requester.UserID && !requester.IsAdmin() {
		return nil, apperr.New(apperr.ForbiddenCode, "Not authorized to view this order")
	}
	return order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID uuid.UUID, page util.PageQuery) ([]model.Order, int64, error) {
	orders, total, err := s.store.ListOrders(ctx, db.OrderFilter{UserID: &userID, PageQuery: page})
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return orders, total, nil
}

func (s *OrderService) ListOrders(ctx context.Context, filter db.OrderFilter) ([]model.Order, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, apperr.New(apperr.ValidationFailedCode, "Invalid order status")
	}
	orders, total, err := s.store.ListOrders(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return orders, total, nil
}

/*
applyStatus 狀態變更的副作用, 回傳是否真的變更了狀態

	Delivered: isDelivered = true, deliveredAt = now
	Shipped: estimatedDelivery 未設定時為 now + 3天
*/
func applyStatus(order *model.Order, status model.OrderStatus, now time.Time) bool {
	if order.Status == status {
		return false
	}
	order.Status = status
	switch status {
	case model.OrderStatusDelivered:
		order.IsDelivered = true
		order.DeliveredAt = &now
	case model.OrderStatusShipped:
		if order.EstimatedDelivery == nil {
			eta := now.AddDate(0, 0, constants.EstimatedDeliveryDays)
			order.EstimatedDelivery = &eta
		}
	}
	return true
}

// mutateOrder 鎖住訂單後套用fn, 有狀態變更時寫入一筆歷程
func (s *OrderService) mutateOrder(ctx context.Context, orderID uuid.UUID, fn func(order *model.Order, now time.Time) (bool, error)) (*model.Order, model.OrderStatus, bool, error) {
	now := s.now().UTC()
	var from model.OrderStatus
	var changed bool

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		order, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "Order not found")
			}
			return apperr.Internal(err)
		}
		from = order.Status

		changed, err = fn(order, now)
		if err != nil {
			return err
		}

		order.UpdatedAt = now
		if err := tx.UpdateOrder(ctx, order); err != nil {
			return apperr.Internal(err)
		}
		if changed {
			history := &model.StatusHistory{
				OrderID:   order.ID,
				Status:    order.Status,
				Timestamp: now,
				Note:      model.StatusChangedNote(order.Status),
			}
			if err := tx.AppendStatusHistory(ctx, history); err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", false, apperr.From(err)
	}

	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return nil, "", false, err
	}
	return order, from, changed, nil
}

func (s *OrderService) afterStatusChange(ctx context.Context, order *model.Order, from model.OrderStatus) {
	s.metrics.OrderStatusChanged(string(order.Status))
	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("from", string(from)).
		Str("to", string(order.Status)).
		Msg("order status changed")
	s.publish(ctx, event.NewOrderStatusChangedEvent(order, from))
}

func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, params UpdateStatusParams) (*model.Order, error) {
	if !params.Status.IsValid() {
		return nil, apperr.New(apperr.ValidationFailedCode, "Invalid order status")
	}

	order, from, changed, err := s.mutateOrder(ctx, orderID, func(order *model.Order, now time.Time) (bool, error) {
		if order.Status != params.Status && !s.policy.CanTransition(order.Status, params.Status) {
			return false, apperr.Newf(apperr.ValidationFailedCode, "Cannot change order status from %s to %s", order.Status, params.Status)
		}
		if params.TrackingNumber != "" {
			order.TrackingNumber = params.TrackingNumber
		}
		if params.Notes != "" {
			order.Notes = params.Notes
		}
		changed := applyStatus(order, params.Status, now)
		if params.Status == model.OrderStatusRefunded && params.Refund != nil {
			order.RefundInfo = model.RefundInfo{
				Reason:      params.Refund.Reason,
				RefundID:    params.Refund.RefundID,
				ProcessedAt: &now,
			}
			if params.Refund.Amount != nil {
				order.RefundInfo.Amount = decimal.NewNullDecimal(*params.Refund.Amount)
			}
		}
		return changed, nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.afterStatusChange(ctx, order, from)
	}
	return order, nil
}

func (s *OrderService) MarkPaid(ctx context.Context, orderID uuid.UUID, userID uuid.UUID, result model.PaymentResult) (*model.Order, error) {
	order, from, changed, err := s.mutateOrder(ctx, orderID, func(order *model.Order, now time.Time) (bool, error) {
		if order.UserID != userID {
			return false, apperr.New(apperr.ForbiddenCode, "Not authorized to update this order")
		}
		if order.IsPaid {
			return false, apperr.New(apperr.ConflictCode, "Order is already paid")
		}
		order.IsPaid = true
		order.PaidAt = &now
		order.PaymentResult = result
		if !s.policy.CanTransition(order.Status, model.OrderStatusConfirmed) {
			return false, nil
		}
		return applyStatus(order, model.OrderStatusConfirmed, now), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("payment_id", order.PaymentResult.ID).
		Msg("order paid")
	evts := []event.Event{event.NewOrderPaidEvent(order)}
	if changed {
		s.metrics.OrderStatusChanged(string(order.Status))
		evts = append(evts, event.NewOrderStatusChangedEvent(order, from))
	}
	s.publish(ctx, evts...)
	return order, nil
}

func (s *OrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*model.Order, error) {
	return s.UpdateStatus(ctx, orderID, UpdateStatusParams{Status: model.OrderStatusDelivered})
}

// Stats 訂單統計, 各項查詢互相獨立, 併發執行
func (s *OrderService) Stats(ctx context.Context) (*OrderStats, error) {
	now := s.now()
	today := startOfDay(now)
	week := startOfWeek(now)
	month := startOfMonth(now)

	stats := &OrderStats{}
	overview := &stats.Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.TotalOrders, err = s.store.CountOrders(gctx, "", nil)
		return
	})
	g.Go(func() (err error) {
		overview.TotalRevenue, err = s.store.SumRevenue(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		overview.TodayOrders, err = s.store.CountOrders(gctx, "", &today)
		return
	})
	g.Go(func() (err error) {
		overview.TodayRevenue, err = s.store.SumRevenue(gctx, &today)
		return
	})
	g.Go(func() (err error) {
		overview.WeekOrders, err = s.store.CountOrders(gctx, "", &week)
		return
	})
	g.Go(func() (err error) {
		overview.MonthOrders, err = s.store.CountOrders(gctx, "", &month)
		return
	})
	g.Go(func() (err error) {
		overview.MonthRevenue, err = s.store.SumRevenue(gctx, &month)
		return
	})
	g.Go(func() (err error) {
		stats.StatusBreakdown, err = s.store.ListStatusBreakdown(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.RecentOrders, err = s.store.ListRecentOrders(gctx, constants.StatsRecentOrderLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}
