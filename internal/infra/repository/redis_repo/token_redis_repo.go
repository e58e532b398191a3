package redis_repo

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrResetTokenNotFound 重設密碼token不存在或已過期
	ErrResetTokenNotFound = errors.New("reset token not found or expired")
)

// ITokenRedisRepository access token 撤銷清單與重設密碼token
type ITokenRedisRepository interface {
	// RevokeToken 撤銷access token, ttl 為token剩餘有效時間, ttl<=0 時不寫入
	RevokeToken(ctx context.Context, tokenID uuid.UUID, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error)
	// SaveResetToken 只保存token的sha256
	SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	/*
		ConsumeResetToken 取出並刪除重設密碼token, 同一個token只能用一次

		錯誤:
		  - ErrResetTokenNotFound: token不存在或已過期
	*/
	ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

type TokenRedisRepo struct {
	client *redis.Client
}

func NewTokenRedisRepo(client *redis.Client) *TokenRedisRepo {
	return &TokenRedisRepo{client: client}
}

func revokedTokenKey(tokenID uuid.UUID) string {
	return fmt.Sprintf("auth:revoked:%s", tokenID.String())
}

func resetTokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("auth:reset:%s", hex.EncodeToString(sum[:]))
}

func (r *TokenRedisRepo) RevokeToken(ctx context.Context, tokenID uuid.UUID, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, revokedTokenKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (r *TokenRedisRepo) IsTokenRevoked(ctx context.Context, tokenID uuid.UUID) (bool, error) {
	n, err := r.client.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return n > 0, nil
}

func (r *TokenRedisRepo) SaveResetToken(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	if err := r.client.Set(ctx, resetTokenKey(token), userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

func (r *TokenRedisRepo) ConsumeResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.client.GetDel(ctx, resetTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrResetTokenNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to consume reset token: %w", err)
	}
	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, ErrResetTokenNotFound
	}
	return userID, nil
}

var _ ITokenRedisRepository = (*TokenRedisRepo)(nil)
