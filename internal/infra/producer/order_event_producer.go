package producer

import (
	"context"
	"encoding/json"
	"net"
	"sync/atomic"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model/event"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// IEventPublisher 訂單領域事件發佈
// 交易commit之後才呼叫, 發佈失敗不影響已完成的訂單操作
type IEventPublisher interface {
	Publish(ctx context.Context, evts ...event.Event) error
	Close() error
}

// kafkaWriter 抽出 *kafka.Writer 用到的方法, 方便測試替換
type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaEventPublisher struct {
	writer kafkaWriter
	cfg    *Config
	logger *zerolog.Logger
	closed atomic.Bool
}

// NewKafkaEventPublisher 建立同步寫入的kafka producer
func NewKafkaEventPublisher(cfg *Config, logger *zerolog.Logger) (*KafkaEventPublisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    cfg.BatchSize,
		BatchTimeout: cfg.BatchTimeout,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
		Async:        false,
		// 重試由Publish自己控制
		MaxAttempts: 1,
		Transport: &kafka.Transport{
			Dial: func(ctx context.Context, network string, address string) (net.Conn, error) {
				dialer := &kafka.Dialer{
					Timeout:   10 * time.Second,
					DualStack: true,
					KeepAlive: 30 * time.Second,
				}
				return dialer.DialContext(ctx, network, address)
			},
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			logger.Error().Msgf("kafka producer error: "+msg, args...)
		}),
		Compression: kafka.Snappy,
	}

	return newKafkaEventPublisher(writer, cfg, logger), nil
}

func newKafkaEventPublisher(writer kafkaWriter, cfg *Config, logger *zerolog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: writer,
		cfg:    cfg,
		logger: logger,
	}
}

// Publish 同步發送, 臨時錯誤依config退避重試
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...event.Event) error {
	if p.closed.Load() {
		return ErrProducerClosed
	}
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		msg, err := toKafkaMessage(evt)
		if err != nil {
			return NewKafkaError("Publish", p.cfg.Topic, err)
		}
		msgs = append(msgs, msg)
	}

	var err error
	for attempt := 0; attempt <= p.cfg.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return NewKafkaError("Publish", p.cfg.Topic, ctx.Err())
		}
		err = p.writer.WriteMessages(ctx, msgs...)
		if err == nil {
			return nil
		}
		if !IsTemporaryError(err) || attempt == p.cfg.RetryAttempts {
			break
		}

		p.logger.Warn().
			Err(err).
			Int("attempt", attempt+1).
			Str("topic", p.cfg.Topic).
			Msg("publish event failed, retrying")

		select {
		case <-ctx.Done():
			return NewKafkaError("Publish", p.cfg.Topic, ctx.Err())
		case <-time.After(p.cfg.backoff(attempt)):
		}
	}

	return NewKafkaError("Publish", p.cfg.Topic, err)
}

func (p *KafkaEventPublisher) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.writer.Close()
}

// toKafkaMessage key 為訂單ID, header 帶事件類型與事件ID
func toKafkaMessage(evt event.Event) (kafka.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(evt.PartitionKey()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(evt.Type())},
			{Key: "event_id", Value: []byte(evt.GetID())},
		},
	}, nil
}

// LogEventPublisher 沒有設定broker時使用, 只寫log
type LogEventPublisher struct {
	logger *zerolog.Logger
}

func NewLogEventPublisher(logger *zerolog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

func (p *LogEventPublisher) Publish(ctx context.Context, evts ...event.Event) error {
	for _, evt := range evts {
		p.logger.Info().
			Str("event_type", string(evt.Type())).
			Str("event_id", evt.GetID()).
			Str("aggregate_id", evt.PartitionKey()).
			Msg("order event")
	}
	return nil
}

func (p *LogEventPublisher) Close() error {
	return nil
}

var (
	_ IEventPublisher = (*KafkaEventPublisher)(nil)
	_ IEventPublisher = (*LogEventPublisher)(nil)
)
