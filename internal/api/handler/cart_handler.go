package handler

import (
	"net/http"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil || reflect.ValueOf(cartService).IsNil() {
		panic("cartService cannot be nil")
	}
	return &CartHandler{
		cartService: cartService,
	}
}

// @Summary get cart
// @Description 下架商品不列出, itemCount 與 cartTotal 由明細計算
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=model.CartView} "success"
// @Failure 401 {object} api.ResponseError "Unauthenticated"
// @Security ApiKeyAuth
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	view, err := h.cartService.View(r.Context(), payload.UserID)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, view, "")
}

// @Summary add to cart
// @Description 已在購物車內時數量累加, 累加後超過庫存則拒絕
// @Tags cart
// @Accept json
// @Produce json
// @Param item body dto.AddToCartDTO true "product and quantity"
// @Success 200 {object} api.Response{data=model.CartView} "Item added to cart"
// @Failure 400 {object} api.ResponseError "insufficient stock"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /cart/add [post]
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.AddToCartDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	view, err := h.cartService.Add(r.Context(), payload.UserID, req.ProductID, req.Quantity)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, view, "Item added to cart")
}

// @Summary update cart item
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path string true "product id"
// @Param item body dto.UpdateCartItemDTO true "quantity"
// @Success 200 {object} api.Response{data=model.CartView} "Cart updated"
// @Failure 400 {object} api.ResponseError "insufficient stock"
// @Failure 404 {object} api.ResponseError "item not in cart"
// @Security ApiKeyAuth
// @Router /cart/{productId} [put]
func (h *CartHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	productID, err := uuidParam(r, "productId", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.UpdateCartItemDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	view, err := h.cartService.Update(r.Context(), payload.UserID, productID, req.Quantity)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, view, "Cart updated")
}

// @Summary remove cart item
// @Tags cart
// @Produce json
// @Param productId path string true "product id"
// @Success 200 {object} api.Response{data=model.CartView} "Item removed from cart"
// @Security ApiKeyAuth
// @Router /cart/{productId} [delete]
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	productID, err := uuidParam(r, "productId", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	view, err := h.cartService.Remove(r.Context(), payload.UserID, productID)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, view, "Item removed from cart")
}

// @Summary clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} api.Response{data=model.CartView} "Cart cleared"
// @Security ApiKeyAuth
// @Router /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	view, err := h.cartService.Clear(r.Context(), payload.UserID)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, view, "Cart cleared")
}
