package producer

import (
	"fmt"
	"time"
)

// Config kafka producer 設定
type Config struct {
	Brokers []string
	Topic   string

	// -1 等待所有副本確認
	RequiredAcks int
	BatchSize    int
	BatchTimeout time.Duration
	WriteTimeout time.Duration

	// 重試配置, 只對臨時錯誤重試
	RetryAttempts int
	RetryDelay    time.Duration
	RetryFactor   int
}

// DefaultConfig 回傳預設值, 呼叫端再補上 Brokers 與 Topic
func DefaultConfig() *Config {
	return &Config{
		RequiredAcks:  -1,
		BatchSize:     100,
		BatchTimeout:  10 * time.Millisecond,
		WriteTimeout:  5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    200 * time.Millisecond,
		RetryFactor:   2,
	}
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 {
		return fmt.Errorf("%w: brokers is empty", ErrInvalidateParameter)
	}
	if c.Topic == "" {
		return fmt.Errorf("%w: topic is empty", ErrInvalidateParameter)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: retry attempts must be >= 0", ErrInvalidateParameter)
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	if c.RetryFactor <= 0 {
		c.RetryFactor = 1
	}
	return nil
}

// backoff 第attempt次重試前的等待時間
func (c *Config) backoff(attempt int) time.Duration {
	d := c.RetryDelay
	for i := 0; i < attempt; i++ {
		d *= time.Duration(c.RetryFactor)
	}
	return d
}
