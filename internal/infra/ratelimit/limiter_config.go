package ratelimit

import "time"

type RateLimitType string

var (
	FixedWindow = RateLimitType("fixed_window")
	TokenBucket = RateLimitType("token_bucket")
	SlideWindow = RateLimitType("slide_window")
	RedisBucket = RateLimitType("redis_bucket")
)

/*
LimiterConfig 各演算法共用設定

  - Capacity: 窗口內最大請求數 / bucket 容量
  - Window: 固定窗口與滑動窗口的長度
  - Rate: token bucket 每秒補充的token數
  - RefillRate: token bucket 背景補充間隔
*/
type LimiterConfig struct {
	Key        string
	Capacity   int
	Window     time.Duration
	Rate       float64
	RefillRate time.Duration
}

// NewWindowLimiterConfig 以「window內最多capacity次」描述, token bucket 的補充速率由此換算
func NewWindowLimiterConfig(key string, capacity int, window time.Duration) LimiterConfig {
	cfg := LimiterConfig{
		Key:        key,
		Capacity:   capacity,
		Window:     window,
		RefillRate: time.Second,
	}
	if window > 0 {
		cfg.Rate = float64(capacity) / window.Seconds()
	}
	return cfg
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Key:        "global",
		Capacity:   100,
		Window:     time.Minute,
		Rate:       1,
		RefillRate: time.Second,
	}
}
