package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/google/uuid"
)

type ICartService interface {
	// View 取得購物車, 下架商品不列出
	View(ctx context.Context, userID uuid.UUID) (*model.CartView, error)
	// Add 加入購物車, 已存在時數量累加
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 數量小於1
	//   - apperr.NotFoundCode 404: 商品不存在或已下架
	//   - apperr.InsufficientStockCode 400: 累加後超過庫存, 購物車不變
	Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*model.CartView, error)
	// Update 設定數量
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 數量小於1
	//   - apperr.NotFoundCode 404: 商品不存在或已下架, 或購物車內沒有此商品
	//   - apperr.InsufficientStockCode 400: 超過庫存
	Update(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*model.CartView, error)
	// Remove 商品不在購物車內也視為成功
	Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*model.CartView, error)
	Clear(ctx context.Context, userID uuid.UUID) (*model.CartView, error)
}

type CartService struct {
	store db.IStore
}

func NewCartService(store db.IStore) ICartService {
	if reflect.ValueOf(store).IsNil() {
		panic("cart service initialization failed: store cannot be nil")
	}
	return &CartService{store: store}
}

func (s *CartService) View(ctx context.Context, userID uuid.UUID) (*model.CartView, error) {
	items, err := s.store.ListCartItems(ctx, userID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return model.NewCartView(items), nil
}

// availableProduct 商品必須存在且上架中
func (s *CartService) availableProduct(ctx context.Context, store db.IStore, productID uuid.UUID) (*model.Product, error) {
	product, err := store.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "Product not found or not available")
		}
		return nil, apperr.Internal(err)
	}
	if !product.IsActive {
		return nil, apperr.New(apperr.NotFoundCode, "Product not found or not available")
	}
	return product, nil
}

func stockError(product *model.Product) error {
	return apperr.Newf(apperr.InsufficientStockCode, "Only %d items available in stock", product.Stock)
}

func (s *CartService) Add(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*model.CartView, error) {
	if productID == uuid.Nil {
		return nil, apperr.New(apperr.ValidationFailedCode, "Product ID is required")
	}
	if quantity < 1 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Valid quantity is required")
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		product, err := s.availableProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if quantity > product.Stock {
			return stockError(product)
		}

		newQuantity := quantity
		existing, err := tx.GetCartItem(ctx, userID, productID)
		switch {
		case err == nil:
			newQuantity += existing.Quantity
		case errors.Is(err, db.ErrRecordNotFound):
		default:
			return apperr.Internal(err)
		}
		if newQuantity > product.Stock {
			return stockError(product)
		}

		if err := tx.SetCartItemQuantity(ctx, userID, productID, newQuantity); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return s.View(ctx, userID)
}

func (s *CartService) Update(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) (*model.CartView, error) {
	if quantity < 1 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Valid quantity is required")
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		product, err := s.availableProduct(ctx, tx, productID)
		if err != nil {
			return err
		}
		if quantity > product.Stock {
			return stockError(product)
		}

		if _, err := tx.GetCartItem(ctx, userID, productID); err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "Item not found in cart")
			}
			return apperr.Internal(err)
		}

		if err := tx.SetCartItemQuantity(ctx, userID, productID, quantity); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}
	return s.View(ctx, userID)
}

func (s *CartService) Remove(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*model.CartView, error) {
	if err := s.store.DeleteCartItem(ctx, userID, productID); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.View(ctx, userID)
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) (*model.CartView, error) {
	if err := s.store.ClearCart(ctx, userID); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.View(ctx, userID)
}
