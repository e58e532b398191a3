package ratelimit

import (
	"context"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// 多個instance共用同一個bucket, 計算全部在lua內完成
const tokenBucketScript = `
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local currentTokens = tonumber(bucket[1])
	local lastRefill = tonumber(bucket[2])

	-- key 不存在時以滿容量初始化
	if currentTokens == nil then
		currentTokens = capacity
		lastRefill = now
	end

	local elapsedSeconds = math.max(0, now - lastRefill) / 1000
	currentTokens = math.min(capacity, currentTokens + elapsedSeconds * rate)

	local allowed = 0
	if currentTokens >= 1 then
		currentTokens = currentTokens - 1
		allowed = 1
	end

	redis.call('HSET', key, 'tokens', currentTokens, 'last_refill', now)
	redis.call('PEXPIRE', key, ttl)
	return allowed
`

type RedisTokenBucketLimiter struct {
	LimiterConfig
	client redis.Scripter
	script *redis.Script
}

func NewRedisTokenBucket(client redis.Scripter, config *LimiterConfig) *RedisTokenBucketLimiter {
	rb := &RedisTokenBucketLimiter{
		client: client,
		script: redis.NewScript(tokenBucketScript),
	}
	if config != nil {
		rb.LimiterConfig = *config
	} else {
		rb.LimiterConfig = GetDefaultLimiterConfig()
	}
	return rb
}

// ttl bucket 從空到滿所需時間, 過期後等同滿bucket
func (r *RedisTokenBucketLimiter) ttl() time.Duration {
	if r.Rate <= 0 {
		return r.Window
	}
	seconds := math.Ceil(float64(r.Capacity) / r.Rate)
	return time.Duration(seconds)*time.Second + time.Second
}

/*
Allow 扣除key對應bucket的一個token

錯誤:
  - redis 連線或腳本錯誤, 由呼叫端決定放行或拒絕
*/
func (r *RedisTokenBucketLimiter) Allow(ctx context.Context, key string) (bool, error) {
	result, err := r.script.Run(
		ctx,
		r.client,
		[]string{r.Key + ":" + key},
		r.Capacity,
		r.Rate,
		time.Now().UnixMilli(),
		r.ttl().Milliseconds(),
	).Int64()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}
