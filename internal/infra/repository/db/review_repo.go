package db

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
)

// CreateReview 同user重複評論會回傳 ErrDuplicateKey
func (d *DbDao) CreateReview(ctx context.Context, review *model.Review) error {
	return translateErr(d.WithContext(ctx).Create(review).Error)
}

func (d *DbDao) GetReview(ctx context.Context, productID uuid.UUID, reviewID uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := d.WithContext(ctx).
		Where("id = ? AND product_id = ?", reviewID, productID).
		First(&review).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &review, nil
}

func (d *DbDao) HasUserReviewed(ctx context.Context, productID uuid.UUID, userID uuid.UUID) (bool, error) {
	var count int64
	err := d.WithContext(ctx).Model(&model.Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&count).Error
	return count > 0, err
}

func (d *DbDao) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := d.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (d *DbDao) ListReviewedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := d.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ?", userID).
		Distinct().
		Pluck("product_id", &ids).Error
	return ids, err
}

func (d *DbDao) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	res := d.WithContext(ctx).Delete(&model.Review{}, "id = ?", reviewID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
