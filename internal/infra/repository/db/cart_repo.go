package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

func (d *DbDao) ListCartItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	err := d.WithContext(ctx).
		Preload("Product").
		Preload("Product.Images", preloadImages).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (d *DbDao) GetCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := d.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &item, nil
}

// SetCartItemQuantity upsert, 以(user_id, product_id)為唯一鍵
func (d *DbDao) SetCartItemQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) error {
	item := model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return translateErr(d.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity":   quantity,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&item).Error)
}

// DeleteCartItem 不存在也不回傳錯誤
func (d *DbDao) DeleteCartItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	return d.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{}).Error
}

func (d *DbDao) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return d.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItem{}).Error
}
