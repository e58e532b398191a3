package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	// ErrRecordNotFound 查無資料
	ErrRecordNotFound = errors.New("record not found")
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
	// ErrDuplicateKey 違反unique限制
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKeyViolation 仍被其他資料參照
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// IStore 所有repository操作, ExecTx 內的 fn 拿到的是綁定同一個交易的 IStore
type IStore interface {
	IProductRepository
	IUserRepository
	ICartRepository
	IReviewRepository
	IOrderRepository
	IStatsRepository
	ExecTx(ctx context.Context, fn func(IStore) error) error
	Ping(ctx context.Context) error
}

type ProductFilter struct {
	Search     string
	Category   string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	MinRating  *float64
	IsActive   *bool
	IsFeatured *bool
	LowStock   bool
	Sort       string
	util.PageQuery
}

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	// GetProductForUpdate 交易內讀取並鎖住商品
	GetProductForUpdate(ctx context.Context, id uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product, columns []string) error
	ReplaceProductImages(ctx context.Context, productID uuid.UUID, images []model.ProductImage) error
	AddProductImage(ctx context.Context, productID uuid.UUID, image *model.ProductImage) error
	UpdateProductFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	BulkUpdateProducts(ctx context.Context, ids []uuid.UUID, fields map[string]any) (matched int64, modified int64, err error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	DeductProductStock(ctx context.Context, id uuid.UUID, quantity int) error
	RefreshProductRating(ctx context.Context, id uuid.UUID) (float64, int, error)
}

type UserFilter struct {
	Search string
	Role   model.Role
	util.PageQuery
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]model.User, int64, error)
	UpdateUserFields(ctx context.Context, id uuid.UUID, fields map[string]any) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type ICartRepository interface {
	ListCartItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	GetCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*model.CartItem, error)
	SetCartItemQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) error
	DeleteCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	GetReview(ctx context.Context, productID uuid.UUID, reviewID uuid.UUID) (*model.Review, error)
	HasUserReviewed(ctx context.Context, productID uuid.UUID, userID uuid.UUID) (bool, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	// ListReviewedProductIDs 使用者評論過的商品
	ListReviewedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type OrderFilter struct {
	UserID      *uuid.UUID
	Status      model.OrderStatus
	IsPaid      *bool
	IsDelivered *bool
	util.PageQuery
}

type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	OrderNumberExists(ctx context.Context, orderNumber string) (bool, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error)
	UpdateOrder(ctx context.Context, order *model.Order) error
	AppendStatusHistory(ctx context.Context, history *model.StatusHistory) error
	ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	ListRecentOrders(ctx context.Context, limit int) ([]model.Order, error)
}

type MonthlySales struct {
	Month   int             `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

type StatusCount struct {
	Status model.OrderStatus `json:"status"`
	Count  int64             `json:"count"`
}

type ProductCounts struct {
	Total      int64 `json:"total"`
	Active     int64 `json:"active"`
	LowStock   int64 `json:"lowStock"`
	OutOfStock int64 `json:"outOfStock"`
}

type IStatsRepository interface {
	// since 為nil時不限制時間
	CountUsers(ctx context.Context, role model.Role, since *time.Time) (int64, error)
	CountProducts(ctx context.Context, lowStockThreshold int) (ProductCounts, error)
	CountOrders(ctx context.Context, status model.OrderStatus, since *time.Time) (int64, error)
	SumRevenue(ctx context.Context, since *time.Time) (decimal.Decimal, error)
	ListTopSellingProducts(ctx context.Context, limit int) ([]model.Product, error)
	ListMonthlySales(ctx context.Context, since time.Time) ([]MonthlySales, error)
	ListStatusBreakdown(ctx context.Context) ([]StatusCount, error)
}

type DbDao struct {
	*gorm.DB
}

func NewStore(conn *gorm.DB) IStore {
	return &DbDao{
		DB: conn,
	}
}

// ExecTx 交易內任何錯誤都會rollback
func (d *DbDao) ExecTx(ctx context.Context, fn func(IStore) error) error {
	return d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DbDao{DB: tx})
	})
}

func (d *DbDao) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// translateErr 把gorm/pg錯誤轉成repository sentinel
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKeyViolation
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicateKey
		case "23503":
			return ErrForeignKeyViolation
		}
	}
	return err
}

var _ IStore = (*DbDao)(nil)
