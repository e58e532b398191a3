package handler

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
)

const userNotFoundMsg = "User not found"

// AdminHandler /api/admin 底下的路由, 全部需要admin權限
type AdminHandler struct {
	adminService service.IAdminService
}

func NewAdminHandler(adminService service.IAdminService) *AdminHandler {
	if adminService == nil || reflect.ValueOf(adminService).IsNil() {
		panic("adminService cannot be nil")
	}
	return &AdminHandler{
		adminService: adminService,
	}
}

// @Summary dashboard
// @Description 營收, 訂單, 使用者與商品統計
// @Tags admin
// @Produce json
// @Success 200 {object} api.Response{data=service.DashboardStats} "success"
// @Security ApiKeyAuth
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, stats, "")
}

// @Summary list users
// @Tags admin
// @Produce json
// @Param search query string false "name or email"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} api.ListResponse{data=[]model.User} "success"
// @Security ApiKeyAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := util.ParsePageQuery(q, constants.DefaultAdminPagingSize)

	users, total, err := h.adminService.ListUsers(r.Context(), q.Get("search"), page)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, users, len(users), total, nil)
}

// @Summary user detail
// @Tags admin
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} api.Response{data=service.UserDetail} "success"
// @Failure 404 {object} api.ResponseError "User not found"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [get]
func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", userNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	detail, err := h.adminService.GetUser(r.Context(), id)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, detail, "")
}

// @Summary update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "user id"
// @Param user body dto.AdminUpdateUserDTO true "fields to update"
// @Success 200 {object} api.Response{data=model.User} "success"
// @Failure 403 {object} api.ResponseError "target is another admin"
// @Failure 404 {object} api.ResponseError "User not found"
// @Failure 409 {object} api.ResponseError "email already exists"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	id, err := uuidParam(r, "id", userNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.AdminUpdateUserDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), payload.UserID, id, req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, user, "")
}

// @Summary delete user
// @Description 不可刪除admin或自己, 有訂單的使用者不可刪除
// @Tags admin
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} api.Response "User deleted successfully"
// @Failure 403 {object} api.ResponseError "target is an admin"
// @Failure 404 {object} api.ResponseError "User not found"
// @Failure 409 {object} api.ResponseError "user has orders"
// @Security ApiKeyAuth
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	payload, err := requirePayload(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	id, err := uuidParam(r, "id", userNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if err := h.adminService.DeleteUser(r.Context(), payload.UserID, id); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, nil, "User deleted successfully")
}

// @Summary admin product list
// @Description 包含下架商品, lowStock=true 只列出庫存小於等於10
// @Tags admin
// @Produce json
// @Param search query string false "keyword"
// @Param category query string false "category"
// @Param isActive query bool false "active"
// @Param lowStock query bool false "low stock only"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(20)
// @Success 200 {object} api.ListResponse{data=[]model.Product} "success"
// @Security ApiKeyAuth
// @Router /admin/products [get]
func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := db.ProductFilter{
		Search:    q.Get("search"),
		Category:  strings.TrimSpace(q.Get("category")),
		IsActive:  util.ParseOptionalBool(q.Get("isActive")),
		LowStock:  q.Get("lowStock") == "true",
		PageQuery: util.ParsePageQuery(q, constants.DefaultAdminPagingSize),
	}

	products, total, err := h.adminService.ListProducts(r.Context(), filter)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, products, len(products), total, nil)
}

// @Summary update product status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param status body dto.ProductStatusDTO true "isActive and isFeatured"
// @Success 200 {object} api.Response{data=model.Product} "success"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /admin/products/{id}/status [put]
func (h *AdminHandler) UpdateProductStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.ProductStatusDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	product, err := h.adminService.UpdateProductStatus(r.Context(), id, req.IsActive, req.IsFeatured)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, product, "")
}

// @Summary bulk update products
// @Description 只允許更新 price, discountPrice, stock, category, brand, isActive, isFeatured
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.BulkUpdateProductsDTO true "product ids and updates"
// @Success 200 {object} api.Response{data=service.BulkUpdateResult} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Security ApiKeyAuth
// @Router /admin/products/bulk-update [put]
func (h *AdminHandler) BulkUpdateProducts(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkUpdateProductsDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	result, err := h.adminService.BulkUpdateProducts(r.Context(), req.ProductIDs, req.Updates)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, result, fmt.Sprintf("%d products updated successfully", result.ModifiedCount))
}
