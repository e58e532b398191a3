package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/apperr"
	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newAdminFixture(t *testing.T) (*fakeStore, *AdminService) {
	t.Helper()
	store := newFakeStore()
	logger := zerolog.Nop()
	svc := NewAdminService(store, &logger).(*AdminService)
	svc.now = func() time.Time { return fixedNow }
	return store, svc
}

func TestAdminService_DeleteUserRefreshesRating(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	admin := store.addUser("Admin", "admin@example.com", model.RoleAdmin)
	alice := store.addUser("Alice", "alice@example.com", model.RoleUser)
	carol := store.addUser("Carol", "carol@example.com", model.RoleUser)
	phone := store.addProduct("Phone", "20", 5)
	accessory := store.addProduct("Case", "5", 5)

	require.NoError(t, store.CreateReview(ctx, &model.Review{ProductID: phone.ID, UserID: alice.ID, Name: "Alice", Rating: 5}))
	require.NoError(t, store.CreateReview(ctx, &model.Review{ProductID: phone.ID, UserID: carol.ID, Name: "Carol", Rating: 2}))
	require.NoError(t, store.CreateReview(ctx, &model.Review{ProductID: accessory.ID, UserID: alice.ID, Name: "Alice", Rating: 4}))
	for _, id := range []uuid.UUID{phone.ID, accessory.ID} {
		_, _, err := store.RefreshProductRating(ctx, id)
		require.NoError(t, err)
	}
	require.Equal(t, 3.5, store.product(phone.ID).Rating)

	require.NoError(t, svc.DeleteUser(ctx, admin.ID, alice.ID))

	got := store.product(phone.ID)
	require.Equal(t, 2.0, got.Rating)
	require.Equal(t, 1, got.NumReviews)

	got = store.product(accessory.ID)
	require.Equal(t, 0.0, got.Rating)
	require.Equal(t, 0, got.NumReviews)
}

func TestAdminService_UpdateUser(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	admin := store.addUser("Admin", "admin@example.com", model.RoleAdmin)
	otherAdmin := store.addUser("Ops", "ops@example.com", model.RoleAdmin)
	user := store.addUser("Alice", "alice@example.com", model.RoleUser)
	store.addUser("Bob", "bob@example.com", model.RoleUser)

	name := "Alice B"
	verified := true
	updated, err := svc.UpdateUser(ctx, admin.ID, user.ID, AdminUpdateUserParams{Name: &name, IsVerified: &verified})
	require.NoError(t, err)
	require.Equal(t, "Alice B", updated.Name)
	require.True(t, updated.IsVerified)

	_, err = svc.UpdateUser(ctx, admin.ID, otherAdmin.ID, AdminUpdateUserParams{Name: &name})
	require.True(t, apperr.Is(err, apperr.ForbiddenCode))
	require.Equal(t, "Cannot update other admin users", apperr.From(err).Message)

	// admin 可以改自己
	_, err = svc.UpdateUser(ctx, admin.ID, admin.ID, AdminUpdateUserParams{Name: &name})
	require.NoError(t, err)

	taken := "BOB@example.com"
	_, err = svc.UpdateUser(ctx, admin.ID, user.ID, AdminUpdateUserParams{Email: &taken})
	require.True(t, apperr.Is(err, apperr.ConflictCode))
	require.Equal(t, "Email already exists", apperr.From(err).Message)

	role := model.Role("root")
	_, err = svc.UpdateUser(ctx, admin.ID, user.ID, AdminUpdateUserParams{Role: &role})
	require.True(t, apperr.Is(err, apperr.ValidationFailedCode))

	_, err = svc.UpdateUser(ctx, admin.ID, uuid.New(), AdminUpdateUserParams{Name: &name})
	require.True(t, apperr.Is(err, apperr.NotFoundCode))
}

func TestAdminService_DeleteUser(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	admin := store.addUser("Admin", "admin@example.com", model.RoleAdmin)
	otherAdmin := store.addUser("Ops", "ops@example.com", model.RoleAdmin)
	alice := store.addUser("Alice", "alice@example.com", model.RoleUser)
	bob := store.addUser("Bob", "bob@example.com", model.RoleUser)

	order := &model.Order{OrderNumber: "UZ240307AAAA", UserID: bob.ID, Status: model.OrderStatusPending}
	require.NoError(t, store.CreateOrder(ctx, order))

	err := svc.DeleteUser(ctx, admin.ID, otherAdmin.ID)
	require.Equal(t, "Cannot delete admin users", apperr.From(err).Message)

	err = svc.DeleteUser(ctx, admin.ID, admin.ID)
	require.True(t, apperr.Is(err, apperr.ForbiddenCode))

	err = svc.DeleteUser(ctx, admin.ID, bob.ID)
	require.True(t, apperr.Is(err, apperr.ConflictCode))
	require.Equal(t, "Cannot delete user with existing orders", apperr.From(err).Message)

	require.NoError(t, svc.DeleteUser(ctx, admin.ID, alice.ID))
	_, err = svc.GetUser(ctx, alice.ID)
	require.True(t, apperr.Is(err, apperr.NotFoundCode))

	detail, err := svc.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, detail.Orders, 1)
}

func TestAdminService_ListUsersOnlyRegular(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	store.addUser("Admin", "admin@example.com", model.RoleAdmin)
	store.addUser("Alice", "alice@example.com", model.RoleUser)
	store.addUser("Bob", "bob@example.com", model.RoleUser)

	users, total, err := svc.ListUsers(ctx, "", util.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, u := range users {
		require.Equal(t, model.RoleUser, u.Role)
	}

	users, total, err = svc.ListUsers(ctx, " alice ", util.PageQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Alice", users[0].Name)
}

func TestAdminService_ProductStatusAndBulk(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	phone := store.addProduct("Phone", "20", 5)
	laptop := store.addProduct("Laptop", "900", 5)

	off := false
	featured := true
	product, err := svc.UpdateProductStatus(ctx, phone.ID, &off, &featured)
	require.NoError(t, err)
	require.False(t, product.IsActive)
	require.True(t, product.IsFeatured)

	_, err = svc.UpdateProductStatus(ctx, uuid.New(), &off, nil)
	require.True(t, apperr.Is(err, apperr.NotFoundCode))

	result, err := svc.BulkUpdateProducts(ctx, []uuid.UUID{phone.ID, laptop.ID, uuid.New()}, map[string]any{
		"price":    19.999,
		"stock":    float64(42),
		"category": " Gadgets ",
		"isActive": true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, result.MatchedCount)

	for _, id := range []uuid.UUID{phone.ID, laptop.ID} {
		p := store.product(id)
		require.True(t, p.Price.Equal(decimal.NewFromInt(20)))
		require.Equal(t, 42, p.Stock)
		require.Equal(t, "Gadgets", p.Category)
		require.True(t, p.IsActive)
	}

	cases := []struct {
		name    string
		ids     []uuid.UUID
		updates map[string]any
		msg     string
	}{
		{"no ids", nil, map[string]any{"stock": float64(1)}, "Product IDs are required"},
		{"no updates", []uuid.UUID{phone.ID}, nil, "Updates object is required"},
		{"field not allowed", []uuid.UUID{phone.ID}, map[string]any{"rating": float64(5)}, "Field rating cannot be bulk updated"},
		{"negative price", []uuid.UUID{phone.ID}, map[string]any{"price": float64(-1)}, "Invalid value for price"},
		{"fractional stock", []uuid.UUID{phone.ID}, map[string]any{"stock": 1.5}, "Invalid value for stock"},
		{"stock overflows integer", []uuid.UUID{phone.ID}, map[string]any{"stock": 1e19}, "Invalid value for stock"},
		{"wrong type", []uuid.UUID{phone.ID}, map[string]any{"isFeatured": "yes"}, "Invalid value for isFeatured"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BulkUpdateProducts(ctx, tc.ids, tc.updates)
			require.True(t, apperr.Is(err, apperr.ValidationFailedCode))
			require.Equal(t, tc.msg, apperr.From(err).Message)
		})
	}
	require.Equal(t, 42, store.product(phone.ID).Stock)
}

func TestAdminService_Dashboard(t *testing.T) {
	store, svc := newAdminFixture(t)
	ctx := context.Background()
	store.addUser("Admin", "admin@example.com", model.RoleAdmin)
	buyer := store.addUser("Alice", "alice@example.com", model.RoleUser)
	phone := store.addProduct("Phone", "20", 0)
	phone.Sold = 3
	store.addProduct("Laptop", "900", 50)

	for i, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusDelivered} {
		order := &model.Order{
			OrderNumber: "UZ24030700A" + string(rune('0'+i)),
			UserID:      buyer.ID,
			Status:      status,
			TotalPrice:  decimal.RequireFromString("77.2"),
		}
		order.CreatedAt = fixedNow
		require.NoError(t, store.CreateOrder(ctx, order))
	}

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	ov := stats.Overview
	require.EqualValues(t, 1, ov.Users.Total)
	require.EqualValues(t, 2, ov.Products.Total)
	require.EqualValues(t, 1, ov.Products.OutOfStock)
	require.EqualValues(t, 1, ov.Products.LowStock)
	require.EqualValues(t, 2, ov.Orders.Total)
	require.EqualValues(t, 1, ov.Orders.Pending)
	require.EqualValues(t, 2, ov.Orders.Today)
	require.True(t, ov.Revenue.Total.Equal(decimal.RequireFromString("154.4")))
	require.True(t, ov.Revenue.Monthly.Equal(decimal.RequireFromString("154.4")))

	require.Len(t, stats.Charts.MonthlySales, 1)
	require.Equal(t, 3, stats.Charts.MonthlySales[0].Month)
	require.Len(t, stats.Charts.OrderStatusBreakdown, 2)
	require.Len(t, stats.TopProducts, 1)
	require.Equal(t, phone.ID, stats.TopProducts[0].ID)
	require.Len(t, stats.RecentOrders, 2)
}
