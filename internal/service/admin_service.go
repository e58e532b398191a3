package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type UserOverview struct {
	Total        int64 `json:"total"`
	NewToday     int64 `json:"newToday"`
	NewThisMonth int64 `json:"newThisMonth"`
}

type OrderOverview struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Today   int64 `json:"today"`
	Monthly int64 `json:"monthly"`
}

type RevenueOverview struct {
	Total   decimal.Decimal `json:"total"`
	Today   decimal.Decimal `json:"today"`
	Monthly decimal.Decimal `json:"monthly"`
}

type DashboardOverview struct {
	Users    UserOverview     `json:"users"`
	Products db.ProductCounts `json:"products"`
	Orders   OrderOverview    `json:"orders"`
	Revenue  RevenueOverview  `json:"revenue"`
}

type DashboardCharts struct {
	MonthlySales         []db.MonthlySales `json:"monthlySales"`
	OrderStatusBreakdown []db.StatusCount  `json:"orderStatusBreakdown"`
}

type DashboardStats struct {
	Overview     DashboardOverview `json:"overview"`
	Charts       DashboardCharts   `json:"charts"`
	TopProducts  []model.Product   `json:"topProducts"`
	RecentOrders []model.Order     `json:"recentOrders"`
}

type UserDetail struct {
	User   *model.User   `json:"user"`
	Orders []model.Order `json:"orders"`
}

// AdminUpdateUserParams nil 表示不修改
type AdminUpdateUserParams struct {
	Name       *string
	Email      *string
	Phone      *string
	Role       *model.Role
	IsVerified *bool
}

type BulkUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type IAdminService interface {
	// Dashboard 後台總覽, 所有統計查詢併發執行
	Dashboard(ctx context.Context) (*DashboardStats, error)
	// ListUsers 只列出一般使用者
	ListUsers(ctx context.Context, search string, page util.PageQuery) ([]model.User, int64, error)
	// GetUser 使用者資料, 購物車與最近10筆訂單
	GetUser(ctx context.Context, id uuid.UUID) (*UserDetail, error)
	// UpdateUser 更新使用者
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 使用者不存在
	//   - apperr.ForbiddenCode 403: 目標是其他admin
	//   - apperr.ConflictCode 409: email已被使用
	UpdateUser(ctx context.Context, requesterID uuid.UUID, id uuid.UUID, params AdminUpdateUserParams) (*model.User, error)
	// DeleteUser 刪除使用者, 不可刪除admin或自己, 有訂單的使用者不可刪除
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 使用者不存在
	//   - apperr.ForbiddenCode 403: 目標是admin或自己
	//   - apperr.ConflictCode 409: 使用者仍有訂單
	DeleteUser(ctx context.Context, requesterID uuid.UUID, id uuid.UUID) error
	// ListProducts 後台商品列表, 包含下架商品
	ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error)
	UpdateProductStatus(ctx context.Context, id uuid.UUID, isActive *bool, isFeatured *bool) (*model.Product, error)
	// BulkUpdateProducts 只允許更新白名單欄位
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 沒有商品id, 沒有更新內容, 欄位不在白名單或值型別錯誤
	BulkUpdateProducts(ctx context.Context, ids []uuid.UUID, updates map[string]any) (*BulkUpdateResult, error)
}

type AdminService struct {
	store  db.IStore
	now    func() time.Time
	logger *zerolog.Logger
}

func NewAdminService(store db.IStore, logger *zerolog.Logger) IAdminService {
	if reflect.ValueOf(store).IsNil() {
		panic("admin service initialization failed: store cannot be nil")
	}
	if logger == nil {
		panic("admin service initialization failed: logger cannot be nil")
	}
	return &AdminService{store: store, now: time.Now, logger: logger}
}

func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	today := startOfDay(now)
	month := startOfMonth(now)
	year := startOfYear(now)

	stats := &DashboardStats{}
	ov := &stats.Overview

	g, gctx := errgroup.WithContext(ctx)
	// users
	g.Go(func() (err error) {
		ov.Users.Total, err = s.store.CountUsers(gctx, model.RoleUser, nil)
		return
	})
	g.Go(func() (err error) {
		ov.Users.NewToday, err = s.store.CountUsers(gctx, model.RoleUser, &today)
		return
	})
	g.Go(func() (err error) {
		ov.Users.NewThisMonth, err = s.store.CountUsers(gctx, model.RoleUser, &month)
		return
	})
	// products
	g.Go(func() (err error) {
		ov.Products, err = s.store.CountProducts(gctx, constants.LowStockThreshold)
		return
	})
	// orders
	g.Go(func() (err error) {
		ov.Orders.Total, err = s.store.CountOrders(gctx, "", nil)
		return
	})
	g.Go(func() (err error) {
		ov.Orders.Pending, err = s.store.CountOrders(gctx, model.OrderStatusPending, nil)
		return
	})
	g.Go(func() (err error) {
		ov.Orders.Today, err = s.store.CountOrders(gctx, "", &today)
		return
	})
	g.Go(func() (err error) {
		ov.Orders.Monthly, err = s.store.CountOrders(gctx, "", &month)
		return
	})
	// revenue
	g.Go(func() (err error) {
		ov.Revenue.Total, err = s.store.SumRevenue(gctx, nil)
		return
	})
	g.Go(func() (err error) {
		ov.Revenue.Today, err = s.store.SumRevenue(gctx, &today)
		return
	})
	g.Go(func() (err error) {
		ov.Revenue.Monthly, err = s.store.SumRevenue(gctx, &month)
		return
	})
	// charts & lists
	g.Go(func() (err error) {
		stats.Charts.MonthlySales, err = s.store.ListMonthlySales(gctx, year)
		return
	})
	g.Go(func() (err error) {
		stats.Charts.OrderStatusBreakdown, err = s.store.ListStatusBreakdown(gctx)
		return
	})
	g.Go(func() (err error) {
		stats.TopProducts, err = s.store.ListTopSellingProducts(gctx, constants.DashboardTopProductsLimit)
		return
	})
	g.Go(func() (err error) {
		stats.RecentOrders, err = s.store.ListRecentOrders(gctx, constants.DashboardRecentOrderLimit)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}

func (s *AdminService) ListUsers(ctx context.Context, search string, page util.PageQuery) ([]model.User, int64, error) {
	users, total, err := s.store.ListUsers(ctx, db.UserFilter{
		Search:    strings.TrimSpace(search),
		Role:      model.RoleUser,
		PageQuery: page,
	})
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return users, total, nil
}

func (s *AdminService) getUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "User not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *AdminService) GetUser(ctx context.Context, id uuid.UUID) (*UserDetail, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	var orders []model.Order
	g.Go(func() (err error) {
		orders, _, err = s.store.ListOrders(gctx, db.OrderFilter{
			UserID:    &id,
			PageQuery: util.PageQuery{Page: 1, Limit: constants.UserDetailOrderLimit},
		})
		return
	})
	g.Go(func() (err error) {
		user.CartItems, err = s.store.ListCartItems(gctx, id)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Internal(err)
	}
	return &UserDetail{User: user, Orders: orders}, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, requesterID uuid.UUID, id uuid.UUID, params AdminUpdateUserParams) (*model.User, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin() && user.ID != requesterID {
		return nil, apperr.New(apperr.ForbiddenCode, "Cannot update other admin users")
	}

	fields := map[string]any{}
	if params.Name != nil {
		fields["name"] = strings.TrimSpace(*params.Name)
	}
	if params.Email != nil {
		fields["email"] = normalizeEmail(*params.Email)
	}
	if params.Phone != nil {
		fields["phone"] = *params.Phone
	}
	if params.Role != nil {
		if !params.Role.IsValid() {
			return nil, apperr.New(apperr.ValidationFailedCode, "Invalid role")
		}
		fields["role"] = string(*params.Role)
	}
	if params.IsVerified != nil {
		fields["is_verified"] = *params.IsVerified
	}
	if len(fields) == 0 {
		return user, nil
	}
	fields["updated_at"] = s.now().UTC()

	if err := s.store.UpdateUserFields(ctx, id, fields); err != nil {
		switch {
		case errors.Is(err, db.ErrDuplicateKey):
			return nil, apperr.New(apperr.ConflictCode, "Email already exists")
		case errors.Is(err, db.ErrRecordNotFound):
			return nil, apperr.New(apperr.NotFoundCode, "User not found")
		default:
			return nil, apperr.Internal(err)
		}
	}
	s.logger.Info().Str("user_id", id.String()).Str("by", requesterID.String()).Msg("user updated by admin")
	return s.getUser(ctx, id)
}

func (s *AdminService) DeleteUser(ctx context.Context, requesterID uuid.UUID, id uuid.UUID) error {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return apperr.New(apperr.ForbiddenCode, "Cannot delete admin users")
	}
	if user.ID == requesterID {
		return apperr.New(apperr.ForbiddenCode, "Cannot delete your own account")
	}

	// 評論隨user cascade刪除, 同一交易內重算受影響商品的評分
	err = s.store.ExecTx(ctx, func(tx db.IStore) error {
		productIDs, err := tx.ListReviewedProductIDs(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.DeleteUser(ctx, id); err != nil {
			return err
		}
		for _, productID := range productIDs {
			if _, _, err := tx.RefreshProductRating(ctx, productID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, db.ErrForeignKeyViolation):
			return apperr.New(apperr.ConflictCode, "Cannot delete user with existing orders")
		case errors.Is(err, db.ErrRecordNotFound):
			return apperr.New(apperr.NotFoundCode, "User not found")
		default:
			return apperr.Internal(err)
		}
	}
	s.logger.Info().Str("user_id", id.String()).Str("by", requesterID.String()).Msg("user deleted by admin")
	return nil
}

func (s *AdminService) ListProducts(ctx context.Context, filter db.ProductFilter) ([]model.Product, int64, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	products, total, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, apperr.Internal(err)
	}
	return products, total, nil
}

func (s *AdminService) UpdateProductStatus(ctx context.Context, id uuid.UUID, isActive *bool, isFeatured *bool) (*model.Product, error) {
	fields := map[string]any{"updated_at": s.now().UTC()}
	if isActive != nil {
		fields["is_active"] = *isActive
	}
	if isFeatured != nil {
		fields["is_featured"] = *isFeatured
	}
	if err := s.store.UpdateProductFields(ctx, id, fields); err != nil {
		return nil, productNotFound(err)
	}
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, productNotFound(err)
	}
	return product, nil
}

// 可批次更新的欄位 -> 資料表欄位
var bulkUpdatableFields = map[string]string{
	"price":      "price",
	"stock":      "stock",
	"category":   "category",
	"brand":      "brand",
	"isActive":   "is_active",
	"isFeatured": "is_featured",
}

// bulkUpdateColumns 檢查白名單並轉換型別, updates 為json解出來的值
func bulkUpdateColumns(updates map[string]any) (map[string]any, error) {
	columns := make(map[string]any, len(updates))
	for field, value := range updates {
		col, ok := bulkUpdatableFields[field]
		if !ok {
			return nil, apperr.Newf(apperr.ValidationFailedCode, "Field %s cannot be bulk updated", field)
		}
		invalid := apperr.Newf(apperr.ValidationFailedCode, "Invalid value for %s", field)
		switch field {
		case "price":
			price, err := toDecimal(value)
			if err != nil || price.IsNegative() {
				return nil, invalid
			}
			columns[col] = price.Round(2)
		case "stock":
			n, ok := value.(float64)
			if !ok || n < 0 || n > maxStock || n != math.Trunc(n) {
				return nil, invalid
			}
			columns[col] = int(n)
		case "category", "brand":
			str, ok := value.(string)
			if !ok || (field == "category" && strings.TrimSpace(str) == "") {
				return nil, invalid
			}
			columns[col] = strings.TrimSpace(str)
		case "isActive", "isFeatured":
			b, ok := value.(bool)
			if !ok {
				return nil, invalid
			}
			columns[col] = b
		}
	}
	return columns, nil
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, fmt.Errorf("unsupported type %T", value)
	}
}

func (s *AdminService) BulkUpdateProducts(ctx context.Context, ids []uuid.UUID, updates map[string]any) (*BulkUpdateResult, error) {
	if len(ids) == 0 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Product IDs are required")
	}
	if len(updates) == 0 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Updates object is required")
	}
	columns, err := bulkUpdateColumns(updates)
	if err != nil {
		return nil, err
	}
	columns["updated_at"] = s.now().UTC()

	matched, modified, err := s.store.BulkUpdateProducts(ctx, ids, columns)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s.logger.Info().Int("requested", len(ids)).Int64("modified", modified).Msg("products bulk updated")
	return &BulkUpdateResult{MatchedCount: matched, ModifiedCount: modified}, nil
}
