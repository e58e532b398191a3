package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// KeyedLimiter 依key(通常是client ip)各自限流
type KeyedLimiter interface {
	Allow(ctx context.Context, key string) bool
	Stop()
}

type localLimiter interface {
	Allow() bool
	Stop()
}

type limiterEntry struct {
	limiter  localLimiter
	lastSeen time.Time
}

/*
LocalKeyedLimiter 單機版, 每個key一個limiter
閒置超過 idleTTL 的key由背景goroutine清除
請使用 defer 呼叫 Stop()
*/
type LocalKeyedLimiter struct {
	factory func() localLimiter
	idleTTL time.Duration
	mu      sync.Mutex
	entries map[string]*limiterEntry
	cancel  chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newLocalKeyedLimiter(factory func() localLimiter, idleTTL time.Duration) *LocalKeyedLimiter {
	if idleTTL <= 0 {
		idleTTL = time.Minute
	}
	l := &LocalKeyedLimiter{
		factory: factory,
		idleTTL: idleTTL,
		entries: make(map[string]*limiterEntry),
		cancel:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	go l.janitor()
	return l
}

func (l *LocalKeyedLimiter) Allow(ctx context.Context, key string) bool {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: l.factory()}
		l.entries[key] = entry
	}
	entry.lastSeen = time.Now()
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// Len 目前追蹤的key數量
func (l *LocalKeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *LocalKeyedLimiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, entry := range l.entries {
		if now.Sub(entry.lastSeen) > l.idleTTL {
			entry.limiter.Stop()
			delete(l.entries, key)
		}
	}
}

func (l *LocalKeyedLimiter) janitor() {
	defer close(l.done)
	ticker := time.NewTicker(l.idleTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-l.cancel:
			return
		case now := <-ticker.C:
			l.evict(now)
		}
	}
}

// Stop 停止清除goroutine以及所有key的limiter
func (l *LocalKeyedLimiter) Stop() {
	l.once.Do(func() {
		close(l.cancel)
		<-l.done

		l.mu.Lock()
		defer l.mu.Unlock()
		for key, entry := range l.entries {
			entry.limiter.Stop()
			delete(l.entries, key)
		}
	})
}

// RedisKeyedLimiter 多instance共用限流狀態
type RedisKeyedLimiter struct {
	bucket *RedisTokenBucketLimiter
	logger *zerolog.Logger
}

// Allow redis異常時放行, 只記錄log
func (l *RedisKeyedLimiter) Allow(ctx context.Context, key string) bool {
	allowed, err := l.bucket.Allow(ctx, key)
	if err != nil {
		l.logger.Warn().Err(err).Str("limiter", l.bucket.Key).Msg("redis rate limiter unavailable")
		return true
	}
	return allowed
}

func (l *RedisKeyedLimiter) Stop() {}

/*
NewKeyedLimiter 依類型建立limiter

參數:

	limitType: fixed_window, token_bucket, slide_window, redis_bucket
	config: 容量與窗口
	client: 只有 redis_bucket 需要

錯誤:
  - 不支援的類型, 或 redis_bucket 沒有給client
*/
func NewKeyedLimiter(limitType RateLimitType, config LimiterConfig, client *redis.Client, logger *zerolog.Logger) (KeyedLimiter, error) {
	idleTTL := config.Window
	switch limitType {
	case FixedWindow:
		return newLocalKeyedLimiter(func() localLimiter { return NewFixedWindow(&config) }, idleTTL), nil
	case SlideWindow:
		return newLocalKeyedLimiter(func() localLimiter { return NewSlideWindow(&config) }, idleTTL), nil
	case TokenBucket:
		return newLocalKeyedLimiter(func() localLimiter { return NewTokenBucket(&config) }, idleTTL), nil
	case RedisBucket:
		if client == nil {
			return nil, fmt.Errorf("redis client is required for %s", limitType)
		}
		return &RedisKeyedLimiter{
			bucket: NewRedisTokenBucket(client, &config),
			logger: logger,
		}, nil
	default:
		return nil, fmt.Errorf("invalid rate limit type: %s", limitType)
	}
}
