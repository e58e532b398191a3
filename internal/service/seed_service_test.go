package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	mock_mail "github.com/RoyceAzure/lab/storefront/internal/infra/mail/mock"
	mock_redis_repo "github.com/RoyceAzure/lab/storefront/internal/infra/repository/redis_repo/mock"
	"github.com/RoyceAzure/lab/storefront/internal/infra/storage"
	"github.com/RoyceAzure/lab/storefront/internal/token"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
admin:
  name: Admin
  email: admin@example.com
  password: adminpass
users:
  - name: Alice
    email: alice@example.com
    password: secret1
products:
  - name: Galaxy S24
    description: Flagship phone
    price: 899.99
    category: Electronics
    brand: Samsung
    stock: 25
    featured: true
    images:
      - https://cdn.example.com/s24.png
  - name: USB-C Cable
    price: 4.5
    category: Accessories
    stock: 300
`

func TestLoadSeedData(t *testing.T) {
	data, err := LoadSeedData(strings.NewReader(seedYAML))
	require.NoError(t, err)
	require.NotNil(t, data.Admin)
	require.Equal(t, "admin@example.com", data.Admin.Email)
	require.Len(t, data.Users, 1)
	require.Len(t, data.Products, 2)
	require.True(t, data.Products[0].Price.Equal(decimal.RequireFromString("899.99")))
	require.True(t, data.Products[0].IsFeatured)
	require.Equal(t, []string{"https://cdn.example.com/s24.png"}, data.Products[0].Images)

	_, err = LoadSeedData(strings.NewReader("products:\n  - name: X\n    category: Y\n    colour: red\n"))
	require.Error(t, err)

	_, err = LoadSeedData(strings.NewReader("products:\n  - name: X\n    category: Y\n    stock: -1\n"))
	require.Error(t, err)

	_, err = LoadSeedData(strings.NewReader("products:\n  - name: X\n"))
	require.Error(t, err)
}

func TestSeedService_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newFakeStore()
	logger := zerolog.Nop()
	maker, err := token.NewPasetoMaker(testSymmetricKey)
	require.NoError(t, err)
	fileStorage, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	authService := NewAuthService(store, maker, mock_redis_repo.NewMockITokenRedisRepository(ctrl),
		NewMailService(mock_mail.NewMockEmailSender(ctrl)), AuthConfig{AccessTokenDuration: time.Hour}, &logger)
	productService := NewProductService(store, fileStorage, &logger)
	svc := NewSeedService(store, authService, productService, &logger)

	data, err := LoadSeedData(strings.NewReader(seedYAML))
	require.NoError(t, err)
	ctx := context.Background()

	result, err := svc.Seed(ctx, data)
	require.NoError(t, err)
	require.Equal(t, 1, result.Users)
	require.Equal(t, 2, result.Products)
	require.Zero(t, result.Skipped)

	result, err = svc.Seed(ctx, data)
	require.NoError(t, err)
	require.Zero(t, result.Users)
	require.Zero(t, result.Products)
	require.Equal(t, 3, result.Skipped)

	admins, err := store.CountUsers(ctx, model.RoleAdmin, nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, admins)
	require.Len(t, store.state.products, 2)

	for _, p := range store.state.products {
		if p.Name == "Galaxy S24" {
			require.True(t, p.IsFeatured)
			require.True(t, p.IsActive)
			require.Len(t, p.Images, 1)
		}
	}
}
