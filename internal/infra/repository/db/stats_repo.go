package db

import (
	"context"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
)

func (d *DbDao) CountUsers(ctx context.Context, role model.Role, since *time.Time) (int64, error) {
	query := d.WithContext(ctx).Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (d *DbDao) CountProducts(ctx context.Context, lowStockThreshold int) (ProductCounts, error) {
	var counts ProductCounts
	err := d.WithContext(ctx).Model(&model.Product{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active,
			COUNT(*) FILTER (WHERE stock <= ?) AS low_stock,
			COUNT(*) FILTER (WHERE stock = 0) AS out_of_stock`, lowStockThreshold).
		Scan(&counts).Error
	return counts, err
}

func (d *DbDao) CountOrders(ctx context.Context, status model.OrderStatus, since *time.Time) (int64, error) {
	query := d.WithContext(ctx).Model(&model.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

func (d *DbDao) SumRevenue(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	query := d.WithContext(ctx).Model(&model.Order{}).Select("COALESCE(SUM(total_price), 0) AS total")
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}
	var agg struct {
		Total decimal.Decimal
	}
	err := query.Scan(&agg).Error
	return agg.Total, err
}

// ListTopSellingProducts 只列出有售出的商品
func (d *DbDao) ListTopSellingProducts(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := d.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("sold > 0").
		Order("sold DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (d *DbDao) ListMonthlySales(ctx context.Context, since time.Time) ([]MonthlySales, error) {
	var sales []MonthlySales
	err := d.WithContext(ctx).Model(&model.Order{}).
		Select("EXTRACT(MONTH FROM created_at)::int AS month, COALESCE(SUM(total_price), 0) AS revenue, COUNT(*) AS orders").
		Where("created_at >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&sales).Error
	return sales, err
}

func (d *DbDao) ListStatusBreakdown(ctx context.Context) ([]StatusCount, error) {
	var breakdown []StatusCount
	err := d.WithContext(ctx).Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&breakdown).Error
	return breakdown, err
}
