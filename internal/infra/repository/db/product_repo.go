package db

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 對外sort參數 -> 欄位, 不在清單內的一律忽略
var productSortColumns = map[string]string{
	"createdAt":  "created_at",
	"price":      "price",
	"rating":     "rating",
	"name":       "name",
	"sold":       "sold",
	"stock":      "stock",
	"numReviews": "num_reviews",
}

const defaultProductOrder = "created_at DESC"

// ProductOrderClause 解析 "-price,rating" 形式的排序參數
func ProductOrderClause(sort string) string {
	var parts []string
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		if col, ok := productSortColumns[field]; ok {
			parts = append(parts, col+" "+dir)
		}
	}
	if len(parts) == 0 {
		return defaultProductOrder
	}
	return strings.Join(parts, ", ")
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (d *DbDao) CreateProduct(ctx context.Context, product *model.Product) error {
	for i := range product.Images {
		product.Images[i].Position = i
	}
	return translateErr(d.WithContext(ctx).Create(product).Error)
}

func (d *DbDao) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := d.WithContext(ctx).
		Preload("Images", preloadImages).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

func (d *DbDao) applyProductFilter(db *gorm.DB, filter ProductFilter) *gorm.DB {
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		db = db.Where("(name ILIKE ? OR description ILIKE ? OR brand ILIKE ?)", like, like, like)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		db = db.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		db = db.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		db = db.Where("rating >= ?", *filter.MinRating)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	if filter.IsFeatured != nil {
		db = db.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.LowStock {
		db = db.Where("stock <= ?", constants.LowStockThreshold)
	}
	return db
}

// ListProducts 分頁查詢商品, 回傳該頁資料與符合條件總數
func (d *DbDao) ListProducts(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	var total int64
	base := d.applyProductFilter(d.WithContext(ctx).Model(&model.Product{}), filter)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	query := d.applyProductFilter(d.WithContext(ctx), filter).
		Preload("Images", preloadImages).
		Order(ProductOrderClause(filter.Sort))
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetProductForUpdate 必須在交易內呼叫, 鎖住該商品直到交易結束, 不載入圖片
func (d *DbDao) GetProductForUpdate(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := d.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &product, nil
}

// UpdateProduct 只寫入columns列出的欄位與updated_at, 圖片用 ReplaceProductImages
// stock 不在columns時不會覆蓋同時段下單扣掉的庫存
func (d *DbDao) UpdateProduct(ctx context.Context, product *model.Product, columns []string) error {
	selected := append(append(make([]string, 0, len(columns)+1), columns...), "updated_at")
	res := d.WithContext(ctx).
		Model(product).
		Select(selected).
		Updates(product)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (d *DbDao) ReplaceProductImages(ctx context.Context, productID uuid.UUID, images []model.ProductImage) error {
	return d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if len(images) == 0 {
			return nil
		}
		for i := range images {
			images[i].ProductID = productID
			images[i].Position = i
		}
		return tx.Create(&images).Error
	})
}

// AddProductImage 附加在最後一張之後
func (d *DbDao) AddProductImage(ctx context.Context, productID uuid.UUID, image *model.ProductImage) error {
	var count int64
	if err := d.WithContext(ctx).Model(&model.ProductImage{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return err
	}
	image.ProductID = productID
	image.Position = int(count)
	return translateErr(d.WithContext(ctx).Create(image).Error)
}

func (d *DbDao) UpdateProductFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := d.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// BulkUpdateProducts postgres 的 RowsAffected 為實際被寫入的列數, 與matched相同
func (d *DbDao) BulkUpdateProducts(ctx context.Context, ids []uuid.UUID, fields map[string]any) (int64, int64, error) {
	var matched, modified int64
	err := d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Product{}).Where("id IN ?", ids).Count(&matched).Error; err != nil {
			return err
		}
		res := tx.Model(&model.Product{}).Where("id IN ?", ids).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		modified = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, translateErr(err)
	}
	return matched, modified, nil
}

// DeleteProduct 圖片, 評論, 購物車明細由外鍵cascade刪除
func (d *DbDao) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res := d.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeductProductStock 條件式扣庫存, 庫存不足時不會有任何列被更新
func (d *DbDao) DeductProductStock(ctx context.Context, id uuid.UUID, quantity int) error {
	res := d.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"sold":  gorm.Expr("sold + ?", quantity),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductStockNotEnough
	}
	return nil
}

// RefreshProductRating 依現有評論重算平均分數與數量, 沒有評論時為0
func (d *DbDao) RefreshProductRating(ctx context.Context, id uuid.UUID) (float64, int, error) {
	var agg struct {
		Avg   float64
		Count int
	}
	err := d.WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", id).
		Scan(&agg).Error
	if err != nil {
		return 0, 0, err
	}

	err = d.UpdateProductFields(ctx, id, map[string]any{
		"rating":      agg.Avg,
		"num_reviews": agg.Count,
	})
	if err != nil {
		return 0, 0, err
	}
	return agg.Avg, agg.Count, nil
}
