package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/db"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	orderNumberRandomLen  = 4
	orderNumberMaxAttempt = 5
)

// OrderNumberGenerator 方便測試時替換
type OrderNumberGenerator func(now time.Time) string

// GenerateOrderNumber UZ + yyMMdd + 4碼 base36 大寫
func GenerateOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberRandomLen)
	max := big.NewInt(int64(len(orderNumberAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand 失敗時退回以時間為種子
			n = big.NewInt(now.UnixNano() % int64(len(orderNumberAlphabet)))
		}
		suffix[i] = orderNumberAlphabet[n.Int64()]
	}
	return constants.OrderNumberPrefix + now.Format("060102") + string(suffix)
}

// nextOrderNumber 產生尚未使用的訂單編號, 最多重試 orderNumberMaxAttempt 次
func nextOrderNumber(ctx context.Context, store db.IOrderRepository, gen OrderNumberGenerator, now time.Time) (string, error) {
	for i := 0; i < orderNumberMaxAttempt; i++ {
		number := gen(now)
		exists, err := store.OrderNumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique order number after %d attempts", orderNumberMaxAttempt)
}
