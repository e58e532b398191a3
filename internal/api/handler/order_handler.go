package handler

import (
	"net/http"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

const orderNotFoundMsg = "Order not found"

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil || reflect.ValueOf(orderService).IsNil() {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary place order
// @Description 價格與金額由伺服器計算, 任一商品庫存不足時整筆訂單不成立
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.PlaceOrderDTO true "items, shipping address and payment method"
// @Success 201 {object} api.Response{data=model.Order} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed or insufficient stock"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.PlaceOrderDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	order, err := h.orderService.PlaceOrder(r.Context(), payload.UserID, req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.CreatedJSON(w, order, "")
}

// @Summary my orders
// @Tags orders
// @Produce json
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {object} api.ListResponse{data=[]model.Order} "success"
// @Security ApiKeyAuth
// @Router /orders/my-orders [get]
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	page := util.ParsePageQuery(r.URL.Query(), constants.DefaultMyOrderPagingSize)
	orders, total, err := h.orderService.MyOrders(r.Context(), payload.UserID, page)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, orders, len(orders), total, nil)
}

// @Summary order detail
// @Description 訂單擁有者或admin
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} api.Response{data=model.Order} "success"
// @Failure 403 {object} api.ResponseError "not the owner"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	id, err := uuidParam(r, "id", orderNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id, payload)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, order, "")
}

// @Summary pay order
// @Description 記錄金流回傳結果, 狀態改為 Confirmed
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param result body dto.PaymentResultDTO false "payment result"
// @Success 200 {object} api.Response{data=model.Order} "success"
// @Failure 403 {object} api.ResponseError "not the owner"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Failure 409 {object} api.ResponseError "already paid"
// @Security ApiKeyAuth
// @Router /orders/{id}/pay [put]
func (h *OrderHandler) PayOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	id, err := uuidParam(r, "id", orderNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.PaymentResultDTO
	if r.ContentLength != 0 {
		if err := bindJSON(w, r, &req); err != nil {
			api.AppErrorJSON(w, r, err)
			return
		}
	}

	order, err := h.orderService.MarkPaid(r.Context(), id, payload.UserID, req.ToModel())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, order, "")
}

// @Summary list orders
// @Tags orders
// @Produce json
// @Param status query string false "order status"
// @Param isPaid query bool false "paid"
// @Param isDelivered query bool false "delivered"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} api.ListResponse{data=[]model.Order} "success"
// @Failure 400 {object} api.ResponseError "Invalid order status"
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := db.OrderFilter{
		Status:      model.OrderStatus(q.Get("status")),
		IsPaid:      util.ParseOptionalBool(q.Get("isPaid")),
		IsDelivered: util.ParseOptionalBool(q.Get("isDelivered")),
		PageQuery:   util.ParsePageQuery(q, constants.DefaultAdminPagingSize),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		api.AppErrorJSON(w, r, apperr.New(apperr.ValidationFailedCode, "Invalid order status"))
		return
	}

	orders, total, err := h.orderService.ListOrders(r.Context(), filter)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, orders, len(orders), total, nil)
}

// @Summary order stats
// @Tags orders
// @Produce json
// @Success 200 {object} api.Response{data=service.OrderStats} "success"
// @Security ApiKeyAuth
// @Router /orders/stats/overview [get]
func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orderService.Stats(r.Context())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, stats, "")
}

// @Summary update order status
// @Description 狀態相同時只更新追蹤碼與備註
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "order id"
// @Param status body dto.UpdateOrderStatusDTO true "new status"
// @Success 200 {object} api.Response{data=model.Order} "success"
// @Failure 400 {object} api.ResponseError "invalid status or transition"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Security ApiKeyAuth
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", orderNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.UpdateOrderStatusDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, order, "")
}

// @Summary mark delivered
// @Tags orders
// @Produce json
// @Param id path string true "order id"
// @Success 200 {object} api.Response{data=model.Order} "success"
// @Failure 404 {object} api.ResponseError "Order not found"
// @Security ApiKeyAuth
// @Router /orders/{id}/deliver [put]
func (h *OrderHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", orderNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	order, err := h.orderService.MarkDelivered(r.Context(), id)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, order, "")
}
