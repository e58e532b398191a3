package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func item(price string, qty int) model.OrderItem {
	return model.OrderItem{Price: decimal.RequireFromString(price), Quantity: qty}
}

func TestPricingPolicy_Price(t *testing.T) {
	policy := DefaultPricingPolicy()

	cases := []struct {
		name     string
		items    []model.OrderItem
		discount string
		want     [5]string // items, tax, shipping, discount, total
	}{
		{
			name:  "below threshold pays shipping",
			items: []model.OrderItem{item("20", 3)},
			want:  [5]string{"60", "7.2", "10", "0", "77.2"},
		},
		{
			name:  "exactly threshold still pays shipping",
			items: []model.OrderItem{item("50", 2)},
			want:  [5]string{"100", "12", "10", "0", "122"},
		},
		{
			name:  "above threshold ships free",
			items: []model.OrderItem{item("100.01", 1)},
			want:  [5]string{"100.01", "12", "0", "0", "112.01"},
		},
		{
			name:  "tax rounds to cents",
			items: []model.OrderItem{item("9.99", 3), item("0.05", 1)},
			want:  [5]string{"30.02", "3.6", "10", "0", "43.62"},
		},
		{
			name:     "discount subtracts",
			items:    []model.OrderItem{item("200", 1)},
			discount: "25",
			want:     [5]string{"200", "24", "0", "25", "199"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			discount := decimal.Zero
			if tc.discount != "" {
				discount = decimal.RequireFromString(tc.discount)
			}
			got := policy.Price(tc.items, discount)
			for i, v := range []decimal.Decimal{got.Items, got.Tax, got.Shipping, got.Discount, got.Total} {
				require.Truef(t, v.Equal(decimal.RequireFromString(tc.want[i])), "field %d: got %s want %s", i, v, tc.want[i])
			}
		})
	}
}

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2024, time.March, 7, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^UZ240307[0-9A-Z]{4}$`)
	for i := 0; i < 50; i++ {
		require.Regexp(t, pattern, GenerateOrderNumber(now))
	}
}

func TestNextOrderNumber_RetriesOnCollision(t *testing.T) {
	store := newFakeStore()
	store.state.numbers["UZ240307AAAA"] = true

	calls := 0
	gen := func(time.Time) string {
		calls++
		if calls == 1 {
			return "UZ240307AAAA"
		}
		return "UZ240307BBBB"
	}
	number, err := nextOrderNumber(context.Background(), store, gen, time.Now())
	require.NoError(t, err)
	require.Equal(t, "UZ240307BBBB", number)
	require.Equal(t, 2, calls)

	_, err = nextOrderNumber(context.Background(), store, func(time.Time) string { return "UZ240307AAAA" }, time.Now())
	require.Error(t, err)
}

func TestStatusPolicy(t *testing.T) {
	permissive := NewStatusPolicy(false)
	require.True(t, permissive.CanTransition(model.OrderStatusDelivered, model.OrderStatusPending))
	require.True(t, permissive.CanTransition(model.OrderStatusRefunded, model.OrderStatusShipped))
	require.False(t, permissive.CanTransition(model.OrderStatusPending, model.OrderStatus("Lost")))

	strict := NewStatusPolicy(true)
	require.True(t, strict.CanTransition(model.OrderStatusPending, model.OrderStatusConfirmed))
	require.True(t, strict.CanTransition(model.OrderStatusShipped, model.OrderStatusDelivered))
	require.True(t, strict.CanTransition(model.OrderStatusCancelled, model.OrderStatusRefunded))
	require.False(t, strict.CanTransition(model.OrderStatusDelivered, model.OrderStatusPending))
	require.False(t, strict.CanTransition(model.OrderStatusPending, model.OrderStatusDelivered))
	for _, to := range model.OrderStatuses {
		require.False(t, strict.CanTransition(model.OrderStatusRefunded, to))
	}
}

func TestPeriodBoundaries(t *testing.T) {
	// 2024-03-07 是星期四
	now := time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), startOfDay(now))
	require.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), startOfWeek(now))
	require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), startOfMonth(now))
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), startOfYear(now))

	sunday := time.Date(2024, time.March, 3, 8, 0, 0, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), startOfWeek(sunday))
}
