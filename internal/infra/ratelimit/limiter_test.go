package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
)

type LimiterTestSuite struct {
	suite.Suite
	config *LimiterConfig
}

func (s *LimiterTestSuite) SetupTest() {
	s.config = &LimiterConfig{
		Capacity:   5,
		Window:     200 * time.Millisecond,
		Rate:       25,
		RefillRate: 20 * time.Millisecond,
	}
}

func TestLimiterSuite(t *testing.T) {
	suite.Run(t, new(LimiterTestSuite))
}

// fakeClock 手動推進時間
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newWindowWithClock(config *LimiterConfig, sliding bool) (*WindowLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)}
	w := newWindowLimiter(config, sliding)
	w.now = clock.now
	w.windowStart = clock.now()
	return w, clock
}

func (s *LimiterTestSuite) TestFixedWindowLimiter() {
	limiter, clock := newWindowWithClock(s.config, false)

	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), limiter.Allow(), "應該允許第 %d 次請求", i+1)
	}
	require.False(s.T(), limiter.Allow(), "超過容量限制應該被拒絕")

	clock.advance(s.config.Window)
	require.True(s.T(), limiter.Allow(), "新窗口應該允許請求")
}

func (s *LimiterTestSuite) TestSlideWindowLimiter() {
	limiter, clock := newWindowWithClock(s.config, true)

	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), limiter.Allow(), "應該允許第 %d 次請求", i+1)
	}
	require.False(s.T(), limiter.Allow(), "超過容量限制應該被拒絕")

	clock.advance(s.config.Window)
	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), limiter.Allow(), "舊請求滑出窗口後應該允許")
	}
}

// 窗口交界: fixed 在新窗口直接歸零, sliding 仍計算上一個窗口後段的請求
func (s *LimiterTestSuite) TestWindowBoundary() {
	fixed, fixedClock := newWindowWithClock(s.config, false)
	sliding, slidingClock := newWindowWithClock(s.config, true)

	// 窗口後段打滿
	fixedClock.advance(s.config.Window - 10*time.Millisecond)
	slidingClock.advance(s.config.Window - 10*time.Millisecond)
	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), fixed.Allow())
		require.True(s.T(), sliding.Allow())
	}

	fixedClock.advance(20 * time.Millisecond)
	slidingClock.advance(20 * time.Millisecond)
	require.True(s.T(), fixed.Allow(), "fixed 進入新窗口")
	require.False(s.T(), sliding.Allow(), "sliding 前一批請求還在窗口內")
}

func (s *LimiterTestSuite) TestTokenBucketLimiter() {
	limiter := NewTokenBucket(s.config)
	defer limiter.Stop()

	for i := 0; i < s.config.Capacity; i++ {
		require.True(s.T(), limiter.Allow(), "應該允許第 %d 次請求", i+1)
	}
	require.False(s.T(), limiter.Allow(), "應該沒有可用的token")

	// 25 token/s, 200ms 後至少補回數個token
	time.Sleep(200 * time.Millisecond)
	require.True(s.T(), limiter.Allow(), "應該有新的token可用")
}

func (s *LimiterTestSuite) TestTokenBucket_Concurrent() {
	config := *s.config
	config.Capacity = 50
	config.Rate = 0
	limiter := NewTokenBucket(&config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	var allowed atomic.Int32
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow() {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(s.T(), int32(50), allowed.Load())
}

func (s *LimiterTestSuite) TestKeyedLimiter_PerKey() {
	logger := zerolog.Nop()
	for _, limitType := range []RateLimitType{FixedWindow, SlideWindow, TokenBucket} {
		s.Run(string(limitType), func() {
			limiter, err := NewKeyedLimiter(limitType, *s.config, nil, &logger)
			require.NoError(s.T(), err)
			defer limiter.Stop()

			ctx := context.Background()
			for i := 0; i < s.config.Capacity; i++ {
				require.True(s.T(), limiter.Allow(ctx, "10.0.0.1"))
			}
			require.False(s.T(), limiter.Allow(ctx, "10.0.0.1"))
			require.True(s.T(), limiter.Allow(ctx, "10.0.0.2"), "不同key各自計算")
		})
	}
}

func (s *LimiterTestSuite) TestKeyedLimiter_InvalidType() {
	logger := zerolog.Nop()
	_, err := NewKeyedLimiter(RateLimitType("unknown"), *s.config, nil, &logger)
	require.Error(s.T(), err)

	_, err = NewKeyedLimiter(RedisBucket, *s.config, nil, &logger)
	require.Error(s.T(), err)
}

func (s *LimiterTestSuite) TestLocalKeyedLimiter_Evict() {
	limiter := newLocalKeyedLimiter(func() localLimiter { return NewFixedWindow(s.config) }, time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	limiter.Allow(ctx, "a")
	limiter.Allow(ctx, "b")
	require.Equal(s.T(), 2, limiter.Len())

	limiter.evict(time.Now().Add(2 * time.Minute))
	require.Equal(s.T(), 0, limiter.Len())
}

func TestNewWindowLimiterConfig(t *testing.T) {
	cfg := NewWindowLimiterConfig("auth", 5, 15*time.Minute)
	require.Equal(t, "auth", cfg.Key)
	require.Equal(t, 5, cfg.Capacity)
	require.InDelta(t, 5.0/900.0, cfg.Rate, 1e-9)
}

// Stop 之後不應殘留任何goroutine
func TestTokenBucket_StopNoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := NewWindowLimiterConfig("api", 10, time.Second)
	bucket := NewTokenBucket(&cfg)
	bucket.Allow()
	bucket.Stop()
	bucket.Stop()
}

func TestKeyedLimiter_StopNoLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger := zerolog.Nop()
	cfg := NewWindowLimiterConfig("api", 10, time.Second)
	limiter, err := NewKeyedLimiter(TokenBucket, cfg, nil, &logger)
	require.NoError(t, err)

	ctx := context.Background()
	for _, ip := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		limiter.Allow(ctx, ip)
	}
	limiter.Stop()
}
