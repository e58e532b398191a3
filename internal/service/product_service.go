package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const uploadURLPrefix = "/uploads/"

// products.stock 為 INTEGER
const maxStock = math.MaxInt32

var errStockTooLarge = apperr.New(apperr.ValidationFailedCode, "Stock is too large")

// 副檔名 -> 允許的content type
var allowedImageTypes = map[string][]string{
	".jpg":  {"image/jpeg", "image/jpg"},
	".jpeg": {"image/jpeg", "image/jpg"},
	".png":  {"image/png"},
	".gif":  {"image/gif"},
	".webp": {"image/webp"},
}

type ProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Brand       string
	Stock       int
	IsActive    *bool
	IsFeatured  bool
	Images      []model.ProductImage
}

// UpdateProductParams nil 表示不修改
type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Brand       *string
	Stock       *int
	IsActive    *bool
	IsFeatured  *bool
	Images      *[]model.ProductImage
}

type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

type IProductService interface {
	// ListProducts 前台商品列表, 只列出上架商品
	ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error)
	TopProducts(ctx context.Context) ([]model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, category string, page util.PageQuery) ([]model.Product, int64, error)
	// GetProduct 含評論, 下架商品視為不存在
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*model.Product, error)
	// DeleteProduct 刪除商品, 本機上傳的圖片檔一併移除
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	// UploadImage 存檔後附加到商品圖片最後, 回傳圖片url
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 商品不存在
	//   - apperr.ValidationFailedCode 400: 非圖片檔, 或超過5MB
	UploadImage(ctx context.Context, id uuid.UUID, upload ImageUpload) (string, error)
}

type ProductService struct {
	store   db.IStore
	storage storage.IFileStorage
	now     func() time.Time
	logger  *zerolog.Logger
}

func NewProductService(store db.IStore, fileStorage storage.IFileStorage, logger *zerolog.Logger) IProductService {
	if reflect.ValueOf(store).IsNil() {
		panic("product service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(fileStorage).IsNil() {
		panic("product service initialization failed: storage cannot be nil")
	}
	if logger == nil {
		panic("product service initialization failed: logger cannot be nil")
	}
	return &ProductService{
		store:   store,
		storage: fileStorage,
		now:     time.Now,
		logger:  logger,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func (s *ProductService) list(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
	filter.IsActive = boolPtr(true)
	products, total, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return products, total, nil
}

func (s *ProductService) ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
	filter.Search = ""
	return s.list(ctx, filter)
}

func (s *ProductService) SearchProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Sort == "" && filter.Search != "" {
		filter.Sort = "-rating,-numReviews"
	}
	return s.list(ctx, filter)
}

func (s *ProductService) TopProducts(ctx context.Context) ([]model.Product, error) {
	products, _, err := s.list(ctx, db.ProductFilter{
		Sort:      "-rating",
		PageQuery: util.PageQuery{Page: 1, Limit: constants.TopProductsLimit},
	})
	return products, err
}

func (s *ProductService) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	products, _, err := s.list(ctx, db.ProductFilter{
		IsFeatured: boolPtr(true),
		PageQuery:  util.PageQuery{Page: 1, Limit: constants.FeaturedProductsLimit},
	})
	return products, err
}

func (s *ProductService) ProductsByCategory(ctx context.Context, category string, page util.PageQuery) ([]model.Product, int64, error) {
	return s.list(ctx, db.ProductFilter{Category: category, PageQuery: page})
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	if !product.IsActive {
		return nil, apperr.New(apperr.NotFoundCode, "Product not found")
	}
	reviews, err := s.store.ListReviewsByProduct(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	product.Reviews = reviews
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, params ProductParams) (*model.Product, error) {
	if params.Price.IsNegative() {
		return nil, apperr.New(apperr.ValidationFailedCode, "Price cannot be negative")
	}
	if params.Stock < 0 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Stock cannot be negative")
	}
	if params.Stock > maxStock {
		return nil, errStockTooLarge
	}
	product := &model.Product{
		Name:        strings.TrimSpace(params.Name),
		Description: params.Description,
		Price:       params.Price.Round(2),
		Category:    params.Category,
		Brand:       params.Brand,
		Stock:       params.Stock,
		IsActive:    true,
		IsFeatured:  params.IsFeatured,
		Images:      params.Images,
	}
	if params.IsActive != nil {
		product.IsActive = *params.IsActive
	}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return nil, apperr.Internal(err)
	}
	s.logger.Info().Str("product_id", product.ID.String()).Str("name", product.Name).Msg("product created")
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, params UpdateProductParams) (*model.Product, error) {
	if params.Price != nil && params.Price.IsNegative() {
		return nil, apperr.New(apperr.ValidationFailedCode, "Price cannot be negative")
	}
	if params.Stock != nil && *params.Stock < 0 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Stock cannot be negative")
	}
	if params.Stock != nil && *params.Stock > maxStock {
		return nil, errStockTooLarge
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		product, err := tx.GetProductForUpdate(ctx, id)
		if err != nil {
			return productNotFound(err)
		}
		// 只寫回有帶值的欄位
		var columns []string
		if params.Name != nil {
			product.Name = strings.TrimSpace(*params.Name)
			columns = append(columns, "name")
		}
		if params.Description != nil {
			product.Description = *params.Description
			columns = append(columns, "description")
		}
		if params.Price != nil {
			product.Price = params.Price.Round(2)
			columns = append(columns, "price")
		}
		if params.Category != nil {
			product.Category = *params.Category
			columns = append(columns, "category")
		}
		if params.Brand != nil {
			product.Brand = *params.Brand
			columns = append(columns, "brand")
		}
		if params.Stock != nil {
			product.Stock = *params.Stock
			columns = append(columns, "stock")
		}
		if params.IsActive != nil {
			product.IsActive = *params.IsActive
			columns = append(columns, "is_active")
		}
		if params.IsFeatured != nil {
			product.IsFeatured = *params.IsFeatured
			columns = append(columns, "is_featured")
		}
		product.UpdatedAt = s.now().UTC()
		if err := tx.UpdateProduct(ctx, product, columns); err != nil {
			return apperr.Internal(err)
		}
		if params.Images != nil {
			if err := tx.ReplaceProductImages(ctx, id, *params.Images); err != nil {
				return apperr.Internal(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	return product, nil
}

// localImageName 本機上傳的圖片回傳檔名, 外部url回傳空字串
func localImageName(url string) string {
	if !strings.HasPrefix(url, uploadURLPrefix) {
		return ""
	}
	return path.Base(url)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return productNotFound(err)
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return productNotFound(err)
	}

	for _, image := range product.Images {
		name := localImageName(image.URL)
		if name == "" {
			continue
		}
		if err := s.storage.Remove(name); err != nil {
			s.logger.Warn().Err(err).Str("product_id", id.String()).Str("file", name).Msg("failed to remove product image file")
		}
	}
	s.logger.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

func validateImage(upload ImageUpload) (string, error) {
	if upload.Content == nil {
		return "", apperr.New(apperr.ValidationFailedCode, "Please upload a file")
	}
	if upload.Size > constants.MaxUploadSize {
		return "", apperr.New(apperr.ValidationFailedCode, "File too large, maximum size is 5MB")
	}
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	types, ok := allowedImageTypes[ext]
	if !ok {
		return "", apperr.New(apperr.ValidationFailedCode, "Only image files are allowed")
	}
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(upload.ContentType, ";")[0]))
	for _, t := range types {
		if t == contentType {
			return ext, nil
		}
	}
	return "", apperr.New(apperr.ValidationFailedCode, "Only image files are allowed")
}

func (s *ProductService) UploadImage(ctx context.Context, id uuid.UUID, upload ImageUpload) (string, error) {
	if _, err := s.store.GetProductByID(ctx, id); err != nil {
		return "", productNotFound(err)
	}
	ext, err := validateImage(upload)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%d%s", constants.UploadFilePrefix, s.now().UnixMilli(), ext)
	// 多讀1 byte判斷是否超過大小上限
	written, err := s.storage.Save(name, io.LimitReader(upload.Content, constants.MaxUploadSize+1))
	if err != nil {
		return "", apperr.Internal(err)
	}
	if written > constants.MaxUploadSize {
		_ = s.storage.Remove(name)
		return "", apperr.New(apperr.ValidationFailedCode, "File too large, maximum size is 5MB")
	}

	url := uploadURLPrefix + name
	image := &model.ProductImage{URL: url, PublicID: name}
	if err := s.store.AddProductImage(ctx, id, image); err != nil {
		_ = s.storage.Remove(name)
		if errors.Is(err, db.ErrForeignKeyViolation) {
			return "", apperr.New(apperr.NotFoundCode, "Product not found")
		}
		return "", apperr.Internal(err)
	}
	s.logger.Info().Str("product_id", id.String()).Str("file", name).Msg("product image uploaded")
	return url, nil
}
