package service

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type AddReviewParams struct {
	Rating  int
	Comment string
}

type IReviewService interface {
	ListReviews(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
	// AddReview 新增評論並重算商品平均分數, 同一交易內完成
	//
	// 錯誤:
	//   - apperr.ValidationFailedCode 400: 分數不在1~5, 或沒有內容
	//   - apperr.NotFoundCode 404: 商品或使用者不存在
	//   - apperr.ConflictCode 409: 已評論過此商品
	AddReview(ctx context.Context, productID uuid.UUID, userID uuid.UUID, params AddReviewParams) (*model.Review, error)
	// DeleteReview 只有評論者本人或admin可以刪除
	//
	// 錯誤:
	//   - apperr.NotFoundCode 404: 商品或評論不存在
	//   - apperr.ForbiddenCode 403: 非本人也非admin
	DeleteReview(ctx context.Context, productID uuid.UUID, reviewID uuid.UUID, requester *token.Payload) error
}

type ReviewService struct {
	store  db.IStore
	logger *zerolog.Logger
}

func NewReviewService(store db.IStore, logger *zerolog.Logger) IReviewService {
	if reflect.ValueOf(store).IsNil() {
		panic("review service initialization failed: store cannot be nil")
	}
	if logger == nil {
		panic("review service initialization failed: logger cannot be nil")
	}
	return &ReviewService{store: store, logger: logger}
}

func productNotFound(err error) error {
	if errors.Is(err, db.ErrRecordNotFound) {
		return apperr.New(apperr.NotFoundCode, "Product not found")
	}
	return apperr.Internal(err)
}

func (s *ReviewService) ListReviews(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	if _, err := s.store.GetProductByID(ctx, productID); err != nil {
		return nil, productNotFound(err)
	}
	reviews, err := s.store.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return reviews, nil
}

func (s *ReviewService) AddReview(ctx context.Context, productID uuid.UUID, userID uuid.UUID, params AddReviewParams) (*model.Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, apperr.New(apperr.ValidationFailedCode, "Rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(params.Comment)
	if comment == "" {
		return nil, apperr.New(apperr.ValidationFailedCode, "Comment is required")
	}

	var review *model.Review
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		if _, err := tx.GetProductByID(ctx, productID); err != nil {
			return productNotFound(err)
		}
		user, err := tx.GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "User not found")
			}
			return apperr.Internal(err)
		}

		reviewed, err := tx.HasUserReviewed(ctx, productID, userID)
		if err != nil {
			return apperr.Internal(err)
		}
		if reviewed {
			return apperr.New(apperr.ConflictCode, "Product already reviewed")
		}

		review = &model.Review{
			ProductID: productID,
			UserID:    userID,
			Name:      user.Name,
			Rating:    params.Rating,
			Comment:   comment,
		}
		if err := tx.CreateReview(ctx, review); err != nil {
			// 併發時由unique index擋下
			if errors.Is(err, db.ErrDuplicateKey) {
				return apperr.New(apperr.ConflictCode, "Product already reviewed")
			}
			return apperr.Internal(err)
		}

		if _, _, err := tx.RefreshProductRating(ctx, productID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.From(err)
	}

	s.logger.Info().
		Str("product_id", productID.String()).
		Str("user_id", userID.String()).
		Int("rating", params.Rating).
		Msg("review added")
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, productID uuid.UUID, reviewID uuid.UUID, requester *token.Payload) error {
	if requester == nil {
		return apperr.New(apperr.UnauthenticatedCode, "Not authorized, no token")
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		if _, err := tx.GetProductByID(ctx, productID); err != nil {
			return productNotFound(err)
		}
		review, err := tx.GetReview(ctx, productID, reviewID)
		if err != nil {
			if errors.Is(err, db.ErrRecordNotFound) {
				return apperr.New(apperr.NotFoundCode, "Review not found")
			}
			return apperr.Internal(err)
		}
		if review.UserID != requester.UserID && !requester.IsAdmin() {
			return apperr.New(apperr.ForbiddenCode, "Not authorized to delete this review")
		}

		if err := tx.DeleteReview(ctx, review.ID); err != nil {
			return apperr.Internal(err)
		}
		if _, _, err := tx.RefreshProductRating(ctx, productID); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return apperr.From(err)
	}
	return nil
}
