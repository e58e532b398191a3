package ratelimit

import (
	"sync"
	"time"
)

/*
WindowLimiter 窗口內最多 Capacity 次

  - fixed: 只記數量, 窗口交界處會有突刺
  - sliding: 記錄每次請求時間, 以鎖實現, 高QPS請改用token bucket
*/
type WindowLimiter struct {
	LimiterConfig
	sliding bool
	now     func() time.Time

	mu          sync.Mutex
	windowStart time.Time
	count       int
	hits        []time.Time
}

func newWindowLimiter(config *LimiterConfig, sliding bool) *WindowLimiter {
	w := &WindowLimiter{sliding: sliding, now: time.Now}
	if config != nil {
		w.LimiterConfig = *config
	} else {
		w.LimiterConfig = GetDefaultLimiterConfig()
	}
	w.windowStart = w.now()
	return w
}

func NewFixedWindow(config *LimiterConfig) *WindowLimiter {
	return newWindowLimiter(config, false)
}

func NewSlideWindow(config *LimiterConfig) *WindowLimiter {
	return newWindowLimiter(config, true)
}

func (w *WindowLimiter) Allow() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	if w.sliding {
		return w.allowSliding(now)
	}

	if now.Sub(w.windowStart) >= w.Window {
		w.windowStart = now
		w.count = 0
	}
	if w.count >= w.Capacity {
		return false
	}
	w.count++
	return true
}

func (w *WindowLimiter) allowSliding(now time.Time) bool {
	// hits 依時間遞增, 找到第一筆仍在窗口內的
	valid := len(w.hits)
	for i, t := range w.hits {
		if now.Sub(t) < w.Window {
			valid = i
			break
		}
	}
	w.hits = w.hits[valid:]

	if len(w.hits) >= w.Capacity {
		return false
	}
	w.hits = append(w.hits, now)
	return true
}

func (w *WindowLimiter) Stop() {}
