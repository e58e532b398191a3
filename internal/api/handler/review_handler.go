package handler

import (
	"net/http"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/service"
)

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	if reviewService == nil || reflect.ValueOf(reviewService).IsNil() {
		panic("reviewService cannot be nil")
	}
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// @Summary product reviews
// @Tags reviews
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=[]model.Review} "success"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	reviews, err := h.reviewService.ListReviews(r.Context(), productID)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, reviews, "")
}

// @Summary add review
// @Description 每個使用者對同一商品只能評論一次
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param review body dto.AddReviewDTO true "rating and comment"
// @Success 201 {object} api.Response "Review added"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Failure 409 {object} api.ResponseError "Product already reviewed"
// @Security ApiKeyAuth
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	productID, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.AddReviewDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if _, err := h.reviewService.AddReview(r.Context(), productID, payload.UserID, req.ToParams()); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.CreatedJSON(w, nil, "Review added")
}

// @Summary delete review
// @Description 評論者本人或admin
// @Tags reviews
// @Produce json
// @Param id path string true "product id"
// @Param reviewId path string true "review id"
// @Success 200 {object} api.Response "Review deleted"
// @Failure 403 {object} api.ResponseError "not the author"
// @Failure 404 {object} api.ResponseError "Review not found"
// @Security ApiKeyAuth
// @Router /products/{id}/reviews/{reviewId} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	productID, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	reviewID, err := uuidParam(r, "reviewId", "Review not found")
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), productID, reviewID, payload); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, nil, "Review deleted")
}
