package db

import (
	"context"
	"strings"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/google/uuid"
)

func (d *DbDao) CreateUser(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(user.Email)
	return translateErr(d.WithContext(ctx).Create(user).Error)
}

func (d *DbDao) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := d.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (d *DbDao) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := d.WithContext(ctx).First(&user, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (d *DbDao) ListUsers(ctx context.Context, filter UserFilter) ([]model.User, int64, error) {
	query := d.WithContext(ctx).Model(&model.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (d *DbDao) UpdateUserFields(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	if email, ok := fields["email"].(string); ok {
		fields["email"] = strings.ToLower(email)
	}
	res := d.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteUser 購物車與評論由外鍵cascade刪除, 有訂單的user會因外鍵限制失敗
func (d *DbDao) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res := d.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
