package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/api"
	"github.com/RoyceAzure/lab/storefront/internal/api/dto"
	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/go-chi/chi/v5"
)

const productNotFoundMsg = "Product not found"

type ProductHandler struct {
	productService service.IProductService
}

func NewProductHandler(productService service.IProductService) *ProductHandler {
	if productService == nil || reflect.ValueOf(productService).IsNil() {
		panic("productService cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
	}
}

// productFilter 列表與搜尋共用的查詢參數
func productFilter(r *http.Request) (db.ProductFilter, error) {
	q := r.URL.Query()
	filter := db.ProductFilter{
		Category:   strings.TrimSpace(q.Get("category")),
		IsFeatured: util.ParseOptionalBool(q.Get("isFeatured")),
		Sort:       q.Get("sort"),
		PageQuery:  util.ParsePageQuery(q, constants.DefaultProductPagingSize),
	}
	var err error
	if filter.MinPrice, err = decimalQuery(r, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = decimalQuery(r, "maxPrice"); err != nil {
		return filter, err
	}
	return filter, nil
}

// @Summary list products
// @Description 上架商品列表, sort 以逗號分隔, 欄位前加 - 為降冪
// @Tags products
// @Produce json
// @Param category query string false "category"
// @Param minPrice query number false "min price"
// @Param maxPrice query number false "max price"
// @Param isFeatured query bool false "featured only"
// @Param sort query string false "e.g. -createdAt,price"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(12)
// @Success 200 {object} api.ListResponse{data=[]model.Product} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilter(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	products, total, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	pagination := util.BuildPagination(filter.PageQuery, total)
	api.ListJSON(w, products, len(products), total, &pagination)
}

// @Summary search products
// @Tags products
// @Produce json
// @Param q query string false "keyword"
// @Param category query string false "category"
// @Param minPrice query number false "min price"
// @Param maxPrice query number false "max price"
// @Param rating query number false "min rating"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(12)
// @Success 200 {object} api.ListResponse{data=[]model.Product} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Router /products/search [get]
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilter(r)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	filter.Search = strings.TrimSpace(r.URL.Query().Get("q"))
	if filter.MinRating, err = floatQuery(r, "rating"); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	products, total, err := h.productService.SearchProducts(r.Context(), filter)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, products, len(products), total, nil)
}

// @Summary top rated products
// @Tags products
// @Produce json
// @Success 200 {object} api.Response{data=[]model.Product} "success"
// @Router /products/top [get]
func (h *ProductHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.TopProducts(r.Context())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, products, "")
}

// @Summary featured products
// @Tags products
// @Produce json
// @Success 200 {object} api.Response{data=[]model.Product} "success"
// @Router /products/featured [get]
func (h *ProductHandler) FeaturedProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.FeaturedProducts(r.Context())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, products, "")
}

// @Summary products by category
// @Tags products
// @Produce json
// @Param category path string true "category"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(12)
// @Success 200 {object} api.ListResponse{data=[]model.Product} "success"
// @Router /products/category/{category} [get]
func (h *ProductHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	page := util.ParsePageQuery(r.URL.Query(), constants.DefaultProductPagingSize)
	products, total, err := h.productService.ProductsByCategory(r.Context(), chi.URLParam(r, "category"), page)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.ListJSON(w, products, len(products), total, nil)
}

// @Summary product detail
// @Description 含評論, 下架商品回傳404
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=model.Product} "success"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, product, "")
}

// @Summary create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductDTO true "product"
// @Success 201 {object} api.Response{data=model.Product} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 403 {object} api.ResponseError "not an admin"
// @Security ApiKeyAuth
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.CreatedJSON(w, product, "")
}

// @Summary update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body dto.UpdateProductDTO true "fields to update"
// @Success 200 {object} api.Response{data=model.Product} "success"
// @Failure 400 {object} api.ResponseError "ValidationFailed"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	var req dto.UpdateProductDTO
	if err := bindJSON(w, r, &req); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, req.ToParams())
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, product, "")
}

// @Summary delete product
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response "success"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, nil, "Product deleted successfully")
}

// @Summary upload product image
// @Description multipart 欄位 image, 最大5MB, jpeg/png/gif/webp
// @Tags products
// @Accept mpfd
// @Produce json
// @Param id path string true "product id"
// @Param image formData file true "image file"
// @Success 200 {object} api.Response{data=string} "image url"
// @Failure 400 {object} api.ResponseError "not an image or too large"
// @Failure 404 {object} api.ResponseError "Product not found"
// @Security ApiKeyAuth
// @Router /products/{id}/upload-image [post]
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id", productNotFoundMsg)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}

	// multipart額外的欄位與boundary保留1MB
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxUploadSize+(1<<20))
	file, header, err := r.FormFile(constants.UploadFormField)
	var upload service.ImageUpload
	switch {
	case err == nil:
		defer file.Close()
		upload = service.ImageUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
	default:
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			api.AppErrorJSON(w, r, apperr.New(apperr.ValidationFailedCode, "File too large, maximum size is 5MB"))
			return
		}
		api.AppErrorJSON(w, r, apperr.Wrap(apperr.ValidationFailedCode, "Please upload a file", err))
		return
	}

	url, err := h.productService.UploadImage(r.Context(), id, upload)
	if err != nil {
		api.AppErrorJSON(w, r, err)
		return
	}
	api.SuccessJSON(w, url, "")
}
