package ratelimit

import (
	"sync"
	"sync/atomic"
	"time"
)

/*
背景goroutine定期補充token
請使用 defer 呼叫 Stop()
*/
type TokenBucketLimiter struct {
	LimiterConfig
	current      atomic.Int64
	lastRefilled atomic.Int64
	cancel       chan struct{}
	done         chan struct{}
	once         sync.Once
}

func NewTokenBucket(config *LimiterConfig) *TokenBucketLimiter {
	t := &TokenBucketLimiter{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
	if config != nil {
		t.LimiterConfig = *config
	} else {
		t.LimiterConfig = GetDefaultLimiterConfig()
	}
	if t.RefillRate <= 0 {
		t.RefillRate = time.Second
	}

	t.current.Store(int64(t.Capacity))
	t.lastRefilled.Store(time.Now().UnixNano())
	go t.background()
	return t
}

func (t *TokenBucketLimiter) Allow() bool {
	for {
		current := t.current.Load()
		if current <= 0 {
			return false
		}
		if t.current.CompareAndSwap(current, current-1) {
			return true
		}
	}
}

// countNewTokens 不足一個token的時間不前進lastRefilled
func (t *TokenBucketLimiter) countNewTokens(current int64, now int64) (int64, bool) {
	elapsed := time.Duration(now - t.lastRefilled.Load())
	tokenToAdd := int64(elapsed.Seconds() * t.Rate)
	if tokenToAdd <= 0 {
		return current, false
	}
	newTokens := current + tokenToAdd
	if newTokens > int64(t.Capacity) {
		newTokens = int64(t.Capacity)
	}
	return newTokens, true
}

func (t *TokenBucketLimiter) refill() {
	for {
		now := time.Now().UnixNano()
		current := t.current.Load()
		newTokens, ok := t.countNewTokens(current, now)
		if !ok {
			return
		}
		if t.current.CompareAndSwap(current, newTokens) {
			t.lastRefilled.Store(now)
			return
		}
	}
}

func (t *TokenBucketLimiter) background() {
	defer close(t.done)
	ticker := time.NewTicker(t.RefillRate)
	defer ticker.Stop()

	for {
		select {
		case <-t.cancel:
			return
		case <-ticker.C:
			t.refill()
		}
	}
}

// Stop 等待背景goroutine結束
func (t *TokenBucketLimiter) Stop() {
	t.once.Do(func() {
		close(t.cancel)
	})
	<-t.done
}
