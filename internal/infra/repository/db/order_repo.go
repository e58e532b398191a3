package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func preloadHistory(db *gorm.DB) *gorm.DB {
	return db.Order("timestamp ASC")
}

func preloadUserBrief(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

// CreateOrder 訂單明細與狀態歷程一併寫入
func (d *DbDao) CreateOrder(ctx context.Context, order *model.Order) error {
	return translateErr(d.WithContext(ctx).Omit("User").Create(order).Error)
}

func (d *DbDao) OrderNumberExists(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	err := d.WithContext(ctx).Model(&model.Order{}).
		Where("order_number = ?", orderNumber).
		Count(&count).Error
	return count > 0, err
}

func (d *DbDao) GetOrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := d.WithContext(ctx).
		Preload("User", preloadUserBrief).
		Preload("Items").
		Preload("StatusHistory", preloadHistory).
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

// GetOrderForUpdate 必須在交易內呼叫, 鎖住該筆訂單直到交易結束
func (d *DbDao) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := d.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &order, nil
}

// UpdateOrder 只更新訂單主檔, order_number 不可變
func (d *DbDao) UpdateOrder(ctx context.Context, order *model.Order) error {
	res := d.WithContext(ctx).
		Model(order).
		Omit(clause.Associations, "order_number", "user_id", "created_at").
		Select("*").
		Updates(order)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *DbDao) AppendStatusHistory(ctx context.Context, history *model.StatusHistory) error {
	return d.WithContext(ctx).Create(history).Error
}

func (d *DbDao) ListOrders(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	query := d.WithContext(ctx).Model(&model.Order{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.IsPaid != nil {
		query = query.Where("is_paid = ?", *filter.IsPaid)
	}
	if filter.IsDelivered != nil {
		query = query.Where("is_delivered = ?", *filter.IsDelivered)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []model.Order
	err := query.
		Preload("User", preloadUserBrief).
		Preload("Items").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (d *DbDao) ListRecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	var orders []model.Order
	err := d.WithContext(ctx).
		Preload("User", preloadUserBrief).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
